package resp

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, in string) ([][]byte, *ParseError) {
	t.Helper()
	return ReadRequest(bufio.NewReader(bytes.NewBufferString(in)), DefaultLimits)
}

func TestReadRequestWellFormedArray(t *testing.T) {
	argv, perr := readAll(t, "*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n")
	require.Nil(t, perr)
	require.Equal(t, [][]byte{[]byte("GET"), []byte("foo")}, argv)
}

func TestReadRequestNullArrayIsNonFatal(t *testing.T) {
	_, perr := readAll(t, "*-1\r\n")
	require.NotNil(t, perr)
	require.False(t, perr.Fatal)
}

func TestReadRequestBareSimpleStringIsNonFatal(t *testing.T) {
	_, perr := readAll(t, "+PING\r\n")
	require.NotNil(t, perr)
	require.False(t, perr.Fatal)
}

func TestReadRequestArrayOfIntegerIsNonFatal(t *testing.T) {
	_, perr := readAll(t, "*1\r\n:1\r\n")
	require.NotNil(t, perr)
	require.False(t, perr.Fatal)
}

func TestReadRequestUnknownPrefixIsFatal(t *testing.T) {
	_, perr := readAll(t, "?\r\n")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestMissingIntegerIsFatal(t *testing.T) {
	_, perr := readAll(t, ":\r\n")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestInvalidIntegerIsFatal(t *testing.T) {
	_, perr := readAll(t, ":abc\r\n")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestMissingArrayLengthIsFatal(t *testing.T) {
	_, perr := readAll(t, "*\r\n")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestMissingBulkLengthIsFatal(t *testing.T) {
	_, perr := readAll(t, "*1\r\n$\r\n")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestInvalidBulkLengthIsFatal(t *testing.T) {
	_, perr := readAll(t, "*1\r\n$-2\r\n")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestBadBulkEncodingIsFatal(t *testing.T) {
	_, perr := readAll(t, "*1\r\n$4\r\nPINGxx")
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestBulkExceedsLimit(t *testing.T) {
	limits := Limits{MaxBulkLen: 4, MaxArrayLen: DefaultLimits.MaxArrayLen, MaxNesting: DefaultLimits.MaxNesting, MaxInlineLen: DefaultLimits.MaxInlineLen}
	_, perr := ReadRequest(bufio.NewReader(bytes.NewBufferString("*1\r\n$5\r\nabcde\r\n")), limits)
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestArrayExceedsLimit(t *testing.T) {
	limits := Limits{MaxBulkLen: DefaultLimits.MaxBulkLen, MaxArrayLen: 1, MaxNesting: DefaultLimits.MaxNesting, MaxInlineLen: DefaultLimits.MaxInlineLen}
	_, perr := ReadRequest(bufio.NewReader(bytes.NewBufferString("*2\r\n$1\r\na\r\n$1\r\nb\r\n")), limits)
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestNestingExceedsLimit(t *testing.T) {
	limits := Limits{MaxBulkLen: DefaultLimits.MaxBulkLen, MaxArrayLen: DefaultLimits.MaxArrayLen, MaxNesting: 2, MaxInlineLen: DefaultLimits.MaxInlineLen}
	_, perr := ReadRequest(bufio.NewReader(bytes.NewBufferString("*1\r\n*1\r\n*1\r\n$1\r\na\r\n")), limits)
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestInlineExceedsLimit(t *testing.T) {
	limits := Limits{MaxBulkLen: DefaultLimits.MaxBulkLen, MaxArrayLen: DefaultLimits.MaxArrayLen, MaxNesting: DefaultLimits.MaxNesting, MaxInlineLen: 4}
	_, perr := ReadRequest(bufio.NewReader(bytes.NewBufferString("+aaaaaaaaaa\r\n")), limits)
	require.NotNil(t, perr)
	require.True(t, perr.Fatal)
}

func TestReadRequestLegacyInline(t *testing.T) {
	argv, perr := readAll(t, "PING\r\n")
	require.Nil(t, perr)
	require.Equal(t, [][]byte{[]byte("PING")}, argv)
}

func TestReadRequestPipelining(t *testing.T) {
	r := bufio.NewReader(bytes.NewBufferString("*1\r\n$4\r\nPING\r\n*1\r\n$4\r\nPING\r\n"))
	argv1, perr1 := ReadRequest(r, DefaultLimits)
	require.Nil(t, perr1)
	require.Equal(t, [][]byte{[]byte("PING")}, argv1)
	argv2, perr2 := ReadRequest(r, DefaultLimits)
	require.Nil(t, perr2)
	require.Equal(t, [][]byte{[]byte("PING")}, argv2)
}

func TestWriteValueRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteValue(NewSimpleString("OK")))
	require.NoError(t, w.WriteValue(NewError("ERR bad")))
	require.NoError(t, w.WriteValue(NewInteger(42)))
	require.NoError(t, w.WriteValue(NewBulk([]byte("hello"))))
	require.NoError(t, w.WriteValue(NewNullBulk()))
	require.NoError(t, w.WriteValue(NewArray([]Value{NewInteger(1), NewInteger(2)})))
	require.NoError(t, w.WriteValue(NewNullArray()))
	require.NoError(t, w.Flush())

	expected := "+OK\r\n" + "-ERR bad\r\n" + ":42\r\n" + "$5\r\nhello\r\n" + "$-1\r\n" + "*2\r\n:1\r\n:2\r\n" + "*-1\r\n"
	require.Equal(t, expected, buf.String())
}

func TestEncodeBinarySafeBulk(t *testing.T) {
	b := []byte{0, 1, '\r', '\n', 2}
	got := Encode(NewBulk(b))
	require.Equal(t, "$5\r\n"+string(b)+"\r\n", string(got))
}
