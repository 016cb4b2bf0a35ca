package resp

// Limits bounds the sizes the streaming parser will accept before it
// treats the stream as unframable and closes the connection. The zero
// value is not usable; callers should start from DefaultLimits.
type Limits struct {
	MaxBulkLen   int64
	MaxArrayLen  int64
	MaxNesting   int
	MaxInlineLen int
}

// DefaultLimits matches the external contract documented for this server:
// 512MiB bulk strings, 1Mi-element arrays, 128 levels of array nesting,
// and 64KiB lines (simple strings, errors, integers, and length headers).
var DefaultLimits = Limits{
	MaxBulkLen:   512 * 1024 * 1024,
	MaxArrayLen:  1024 * 1024,
	MaxNesting:   128,
	MaxInlineLen: 64 * 1024,
}
