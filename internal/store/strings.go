/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/store/strings.go
*/
package store

// ExpireMode selects which of EX/PX/EXAT/PXAT (if any) a SET call applies.
type ExpireMode int

const (
	ExpireNone ExpireMode = iota
	ExpireEX
	ExpirePX
	ExpireEXAT
	ExpirePXAT
)

// SetOptions carries the already syntax-validated options of a SET
// command. Mutual-exclusivity between NX/XX and between KeepTTL and
// ExpireMode is enforced by the command layer before this reaches the
// keyspace; the keyspace only applies them.
type SetOptions struct {
	NX, XX   bool
	Get      bool
	KeepTTL  bool
	Mode     ExpireMode
	ExpireAt int64 // raw value accompanying Mode: seconds or ms, relative or absolute
}

// SetString implements the SET command. It returns the previous string
// value (only meaningful when opts.Get and hadOld), whether a previous
// string value existed, whether the key existed as a non-string type
// while GET was requested (WRONGTYPE, no modification performed), and
// whether the write was actually applied (NX/XX may suppress it).
func (ks *Keyspace) SetString(key, value []byte, opts SetOptions) (old []byte, hadOld, wrongType, applied bool) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.clock.NowMs()

	e, existsAny := ks.lookupLocked(string(key), now)
	isString := existsAny && e.kind == KindString

	if opts.Get && existsAny && !isString {
		return nil, false, true, false
	}
	if opts.Get && isString {
		old = clonebytes(e.str)
		hadOld = true
	}

	applied = true
	if opts.NX && existsAny {
		applied = false
	}
	if opts.XX && !existsAny {
		applied = false
	}
	if !applied {
		return old, hadOld, false, false
	}

	var target *entry
	if isString && opts.KeepTTL {
		e.str = clonebytes(value)
		target = e
	} else {
		target = newStringEntry(clonebytes(value))
		ks.data[string(key)] = target
	}

	if opts.Mode != ExpireNone {
		target.hasTTL = true
		target.expiresAtMs = absExpireMs(opts.Mode, opts.ExpireAt, now)
	} else if !opts.KeepTTL {
		target.hasTTL = false
		target.expiresAtMs = 0
	}

	return old, hadOld, false, true
}

func absExpireMs(mode ExpireMode, val, now int64) int64 {
	switch mode {
	case ExpireEX:
		return now + val*1000
	case ExpirePX:
		return now + val
	case ExpireEXAT:
		return val * 1000
	case ExpirePXAT:
		return val
	default:
		return 0
	}
}

// Get implements GET. ok is false when the key is absent; err is
// ErrWrongType when it holds a list.
func (ks *Keyspace) Get(key []byte) (value []byte, ok bool, err error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return nil, false, nil
	}
	if e.kind != KindString {
		return nil, false, ErrWrongType
	}
	return clonebytes(e.str), true, nil
}

// IncrBy implements INCR/DECR/INCRBY/DECRBY: delta is the signed amount
// to add (DECR family negates before calling). A missing key starts at
// 0; TTL, if any, is preserved.
func (ks *Keyspace) IncrBy(key []byte, delta int64) (int64, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.clock.NowMs()
	e, exists := ks.lookupLocked(string(key), now)

	var cur int64
	if exists {
		if e.kind != KindString {
			return 0, ErrWrongType
		}
		n, ok := parseStrictInt64(e.str)
		if !ok {
			return 0, ErrNotInteger
		}
		cur = n
	}

	if addOverflows(cur, delta) {
		return 0, ErrOverflow
	}
	result := cur + delta

	if exists {
		e.str = []byte(formatInt64(result))
	} else {
		ks.data[string(key)] = newStringEntry([]byte(formatInt64(result)))
	}
	return result, nil
}

func formatInt64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
