/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/clock/clock.go
*/

// Package clock abstracts wall-clock time so TTL expiration logic can be
// driven deterministically in tests without sleeping.
package clock

import "time"

// Clock reports the current time in milliseconds since the Unix epoch,
// the resolution the keyspace's TTL fields are stored in.
type Clock interface {
	NowMs() int64
}

// Real is the production Clock backed by time.Now.
type Real struct{}

// NowMs returns the current wall-clock time in Unix milliseconds.
func (Real) NowMs() int64 { return time.Now().UnixMilli() }

// Fixed is a Clock that always reports the same instant, advanced
// explicitly by tests.
type Fixed struct {
	ms int64
}

// NewFixed returns a Fixed clock starting at ms.
func NewFixed(ms int64) *Fixed { return &Fixed{ms: ms} }

// NowMs implements Clock.
func (f *Fixed) NowMs() int64 { return f.ms }

// Advance moves the fixed clock forward by delta milliseconds.
func (f *Fixed) Advance(delta int64) { f.ms += delta }

// Set pins the fixed clock to ms.
func (f *Fixed) Set(ms int64) { f.ms = ms }
