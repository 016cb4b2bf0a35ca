package store

import "errors"

// Sentinel errors returned by keyspace operations. Their Error() text is
// the exact reply text required by the external contract; the command
// package turns them directly into error replies.
var (
	ErrWrongType     = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	ErrNotInteger    = errors.New("ERR value is not an integer or out of range")
	ErrOverflow      = errors.New("ERR increment or decrement would overflow")
	ErrNoSuchKey     = errors.New("ERR no such key")
	ErrIndexOutRange = errors.New("ERR index out of range")
	ErrSyntax        = errors.New("ERR syntax error")
	ErrMustBePositive = errors.New("ERR value is out of range, must be positive")
)
