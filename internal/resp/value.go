/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: mrdb/internal/resp/value.go
*/

// Package resp implements the wire codec: a streaming parser for inbound
// request frames and an encoder for typed reply values.
package resp

// Type identifies which RESP frame a Value holds. Each constant is the
// protocol's own prefix byte, so a Value's wire form starts with byte(Type).
type Type byte

const (
	SimpleString Type = '+'
	Error        Type = '-'
	Integer      Type = ':'
	Bulk         Type = '$'
	Array        Type = '*'
)

// Value is a parsed or to-be-encoded RESP frame. Only the fields relevant
// to Type are meaningful:
//
//	SimpleString / Error : Str
//	Integer               : Int
//	Bulk                  : Bulk (Null true => "$-1\r\n", the null bulk)
//	Array                 : Array (Null true => "*-1\r\n", the null array)
type Value struct {
	Type  Type
	Str   string
	Int   int64
	Bulk  []byte
	Array []Value
	Null  bool
}

// NewSimpleString builds a "+<s>\r\n" reply.
func NewSimpleString(s string) Value { return Value{Type: SimpleString, Str: s} }

// NewError builds a "-<s>\r\n" reply.
func NewError(s string) Value { return Value{Type: Error, Str: s} }

// NewInteger builds a ":<n>\r\n" reply.
func NewInteger(n int64) Value { return Value{Type: Integer, Int: n} }

// NewBulk builds a "$<len>\r\n<bytes>\r\n" reply. A nil b is treated the
// same as an empty bulk string, never as a null — use NewNullBulk for that.
func NewBulk(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{Type: Bulk, Bulk: b}
}

// NewNullBulk builds the null bulk reply "$-1\r\n".
func NewNullBulk() Value { return Value{Type: Bulk, Null: true} }

// NewArray builds a "*<n>\r\n..." reply from its elements.
func NewArray(vals []Value) Value { return Value{Type: Array, Array: vals} }

// NewNullArray builds the null array reply "*-1\r\n".
func NewNullArray() Value { return Value{Type: Array, Null: true} }

// IsBulkString reports whether v is a non-null bulk string, i.e. a value
// legal as a request-array element.
func (v Value) IsBulkString() bool {
	return v.Type == Bulk && !v.Null
}
