/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/store/lists.go
*/
package store

import (
	"bytes"
	"container/list"
)

// Push implements LPUSH (left=true) and RPUSH (left=false). It creates
// the list if absent and returns the new length.
func (ks *Keyspace) Push(key []byte, values [][]byte, left bool) (int64, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if exists && e.kind != KindList {
		return 0, ErrWrongType
	}
	if !exists {
		e = newListEntry()
		ks.data[string(key)] = e
	}
	for _, v := range values {
		if left {
			e.list.PushFront(clonebytes(v))
		} else {
			e.list.PushBack(clonebytes(v))
		}
	}
	return int64(e.list.Len()), nil
}

// Len implements LLEN.
func (ks *Keyspace) Len(key []byte) (int64, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return 0, nil
	}
	if e.kind != KindList {
		return 0, ErrWrongType
	}
	return int64(e.list.Len()), nil
}

// Index implements LINDEX. ok is false on out-of-range or absent key.
func (ks *Keyspace) Index(key []byte, index int64) (value []byte, ok bool, err error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return nil, false, nil
	}
	if e.kind != KindList {
		return nil, false, ErrWrongType
	}
	n := int64(e.list.Len())
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return nil, false, nil
	}
	elem := nthElement(e.list, index)
	return clonebytes(elem.Value.([]byte)), true, nil
}

// Range implements LRANGE, clamping start/stop into [0, len) after
// negative-index normalization.
func (ks *Keyspace) Range(key []byte, start, stop int64) ([][]byte, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return nil, nil
	}
	if e.kind != KindList {
		return nil, ErrWrongType
	}
	n := int64(e.list.Len())
	if n == 0 {
		return nil, nil
	}

	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return nil, nil
	}

	result := make([][]byte, 0, stop-start+1)
	i := int64(0)
	for el := e.list.Front(); el != nil; el = el.Next() {
		if i >= start && i <= stop {
			result = append(result, clonebytes(el.Value.([]byte)))
		}
		if i > stop {
			break
		}
		i++
	}
	return result, nil
}

// Set implements LSET.
func (ks *Keyspace) Set(key []byte, index int64, value []byte) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return ErrNoSuchKey
	}
	if e.kind != KindList {
		return ErrWrongType
	}
	n := int64(e.list.Len())
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return ErrIndexOutRange
	}
	nthElement(e.list, index).Value = clonebytes(value)
	return nil
}

// Rem implements LREM: count>0 removes the first count matches from the
// head, count<0 removes the last |count| from the tail, count==0 removes
// all. Returns the number removed. Deletes the key if the list empties.
func (ks *Keyspace) Rem(key []byte, count int64, value []byte) (int64, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return 0, nil
	}
	if e.kind != KindList {
		return 0, ErrWrongType
	}

	var removed int64
	limit := count
	if limit < 0 {
		limit = -limit
	}

	if count >= 0 {
		for el := e.list.Front(); el != nil; {
			next := el.Next()
			if (count == 0 || removed < limit) && bytes.Equal(el.Value.([]byte), value) {
				e.list.Remove(el)
				removed++
			}
			el = next
		}
	} else {
		for el := e.list.Back(); el != nil; {
			prev := el.Prev()
			if removed < limit && bytes.Equal(el.Value.([]byte), value) {
				e.list.Remove(el)
				removed++
			}
			el = prev
		}
	}

	if e.list.Len() == 0 {
		delete(ks.data, string(key))
	}
	return removed, nil
}

// Insert implements LINSERT. Returns the new length, 0 if key is absent,
// -1 if pivot was not found.
func (ks *Keyspace) Insert(key []byte, before bool, pivot, value []byte) (int64, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return 0, nil
	}
	if e.kind != KindList {
		return 0, ErrWrongType
	}

	for el := e.list.Front(); el != nil; el = el.Next() {
		if bytes.Equal(el.Value.([]byte), pivot) {
			if before {
				e.list.InsertBefore(clonebytes(value), el)
			} else {
				e.list.InsertAfter(clonebytes(value), el)
			}
			return int64(e.list.Len()), nil
		}
	}
	return -1, nil
}

// Pop implements LPOP/RPOP. Without a count, at most one value is popped
// (values is empty if the key is absent or the list is empty). With hasCount,
// up to count values are popped in pop order (nil, true means a null
// array reply — key absent). Deletes the key if the list empties.
func (ks *Keyspace) Pop(key []byte, left bool, hasCount bool, count int64) (values [][]byte, keyAbsent bool, err error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	e, exists := ks.lookupLocked(string(key), ks.clock.NowMs())
	if !exists {
		return nil, true, nil
	}
	if e.kind != KindList {
		return nil, false, ErrWrongType
	}

	n := int64(1)
	if hasCount {
		n = count
	}

	out := make([][]byte, 0, n)
	for i := int64(0); i < n && e.list.Len() > 0; i++ {
		var el *list.Element
		if left {
			el = e.list.Front()
		} else {
			el = e.list.Back()
		}
		out = append(out, clonebytes(el.Value.([]byte)))
		e.list.Remove(el)
	}

	if e.list.Len() == 0 {
		delete(ks.data, string(key))
	}
	return out, false, nil
}

func nthElement(l *list.List, index int64) *list.Element {
	el := l.Front()
	for i := int64(0); i < index; i++ {
		el = el.Next()
	}
	return el
}
