/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/store/entry.go
*/

// Package store owns the keyspace: the key->value map, TTL bookkeeping,
// and the semantic command implementations for strings, lists, and
// generic key operations.
package store

import "container/list"

// Kind distinguishes the value types a keyspace entry may hold.
type Kind int

const (
	KindString Kind = iota
	KindList
)

// String names Kind in human-readable form.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// entry is one keyspace slot. expiresAtMs is 0 when the key has no TTL;
// any absolute Unix-millisecond timestamp otherwise.
type entry struct {
	kind        Kind
	str         []byte
	list        *list.List // each Value is []byte
	expiresAtMs int64
	hasTTL      bool
}

func newStringEntry(v []byte) *entry {
	return &entry{kind: KindString, str: v}
}

func newListEntry() *entry {
	return &entry{kind: KindList, list: list.New()}
}
