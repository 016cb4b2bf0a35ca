/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/store/snapshot.go
*/
package store

// Record is the snapshot engine's view of one keyspace entry: enough to
// serialize and restore it without the snapshot package reaching into
// store internals.
type Record struct {
	Key         []byte
	Kind        Kind
	Str         []byte
	List        [][]byte
	HasTTL      bool
	ExpiresAtMs int64
}

// Export returns a point-in-time copy of every non-expired entry, ready
// for the snapshot engine to serialize. Expired keys are skipped per the
// save contract ("keys expired at the moment of SAVE are skipped").
func (ks *Keyspace) Export() []Record {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	now := ks.clock.NowMs()

	records := make([]Record, 0, len(ks.data))
	for k, e := range ks.data {
		if e.hasTTL && e.expiresAtMs <= now {
			continue
		}
		rec := Record{
			Key:         []byte(k),
			Kind:        e.kind,
			HasTTL:      e.hasTTL,
			ExpiresAtMs: e.expiresAtMs,
		}
		switch e.kind {
		case KindString:
			rec.Str = clonebytes(e.str)
		case KindList:
			for el := e.list.Front(); el != nil; el = el.Next() {
				rec.List = append(rec.List, clonebytes(el.Value.([]byte)))
			}
		}
		records = append(records, rec)
	}
	return records
}

// Replace atomically swaps the entire keyspace for the contents of
// records, as LOAD requires.
func (ks *Keyspace) Replace(records []Record) {
	data := make(map[string]*entry, len(records))
	for _, rec := range records {
		var e *entry
		switch rec.Kind {
		case KindString:
			e = newStringEntry(rec.Str)
		case KindList:
			e = newListEntry()
			for _, v := range rec.List {
				e.list.PushBack(v)
			}
		}
		e.hasTTL = rec.HasTTL
		e.expiresAtMs = rec.ExpiresAtMs
		data[string(rec.Key)] = e
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.data = data
}
