/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/store/keyspace.go
*/
package store

import (
	"sync"

	"github.com/akashmaji946/mrdb/internal/clock"
)

// Keyspace is the single logical mutator for the entire key->value map.
// Every exported method locks for its own duration, matching the spec's
// requirement that each command execute atomically against every other.
type Keyspace struct {
	mu    sync.Mutex
	data  map[string]*entry
	clock clock.Clock
}

// New returns an empty Keyspace driven by clk.
func New(clk clock.Clock) *Keyspace {
	return &Keyspace{data: make(map[string]*entry), clock: clk}
}

func clonebytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// lookupLocked returns the entry for key if present and not expired,
// lazily deleting it first if its TTL has passed. Caller must hold mu.
func (ks *Keyspace) lookupLocked(key string, nowMs int64) (*entry, bool) {
	e, ok := ks.data[key]
	if !ok {
		return nil, false
	}
	if e.hasTTL && e.expiresAtMs <= nowMs {
		delete(ks.data, key)
		return nil, false
	}
	return e, true
}

// Exists reports whether key is present (and not expired).
func (ks *Keyspace) Exists(key []byte) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	_, ok := ks.lookupLocked(string(key), ks.clock.NowMs())
	return ok
}

// Del removes each of keys if present, returning the count actually removed.
func (ks *Keyspace) Del(keys [][]byte) int {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.clock.NowMs()
	count := 0
	for _, k := range keys {
		if _, ok := ks.lookupLocked(string(k), now); ok {
			delete(ks.data, string(k))
			count++
		}
	}
	return count
}

// TTLSeconds returns the remaining TTL in seconds: -2 absent, -1 no TTL,
// else remaining time rounded toward zero with a floor of 0.
func (ks *Keyspace) TTLSeconds(key []byte) int64 {
	return ks.ttl(key, 1000)
}

// TTLMillis is the millisecond-resolution counterpart of TTLSeconds.
func (ks *Keyspace) TTLMillis(key []byte) int64 {
	return ks.ttl(key, 1)
}

func (ks *Keyspace) ttl(key []byte, unitMs int64) int64 {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.clock.NowMs()
	e, ok := ks.lookupLocked(string(key), now)
	if !ok {
		return -2
	}
	if !e.hasTTL {
		return -1
	}
	remain := e.expiresAtMs - now
	if remain < 0 {
		remain = 0
	}
	return remain / unitMs
}

// ExpireCond is the NX/XX/GT/LT condition attached to an EXPIRE-family
// command. CondNone means no condition token was supplied.
type ExpireCond int

const (
	CondNone ExpireCond = iota
	CondNX
	CondXX
	CondGT
	CondLT
)

// SetExpireAt applies an absolute millisecond expiration to key subject to
// cond, returning 1 on success and 0 on no-op (including absent key).
func (ks *Keyspace) SetExpireAt(key []byte, absMs int64, cond ExpireCond) int64 {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.clock.NowMs()
	e, ok := ks.lookupLocked(string(key), now)
	if !ok {
		return 0
	}

	var cur int64
	hasCur := e.hasTTL
	if hasCur {
		cur = e.expiresAtMs
	}

	switch cond {
	case CondNX:
		if hasCur {
			return 0
		}
	case CondXX:
		if !hasCur {
			return 0
		}
	case CondGT:
		// absent TTL counts as already-infinite: nothing is greater than it.
		if !hasCur || absMs <= cur {
			return 0
		}
	case CondLT:
		// absent TTL counts as +infinity: any concrete time is smaller.
		if hasCur && absMs >= cur {
			return 0
		}
	}

	if absMs <= now {
		delete(ks.data, string(key))
		return 1
	}
	e.hasTTL = true
	e.expiresAtMs = absMs
	return 1
}
