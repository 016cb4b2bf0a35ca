package store

import (
	"testing"

	"github.com/akashmaji946/mrdb/internal/clock"
	"github.com/stretchr/testify/require"
)

func newTestKeyspace() (*Keyspace, *clock.Fixed) {
	fc := clock.NewFixed(1_000_000)
	return New(fc), fc
}

func TestSetAndGet(t *testing.T) {
	ks, _ := newTestKeyspace()
	_, _, _, applied := ks.SetString([]byte("foo"), []byte("bar"), SetOptions{})
	require.True(t, applied)

	v, ok, err := ks.Get([]byte("foo"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("bar"), v)
}

func TestSetClearsTTLByDefault(t *testing.T) {
	ks, fc := newTestKeyspace()
	ks.SetString([]byte("k"), []byte("v"), SetOptions{Mode: ExpirePX, ExpireAt: 2000})
	require.Greater(t, ks.TTLMillis([]byte("k")), int64(0))
	_ = fc

	ks.SetString([]byte("k"), []byte("w"), SetOptions{})
	require.EqualValues(t, -1, ks.TTLMillis([]byte("k")))
}

func TestSetKeepTTL(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("k"), []byte("v"), SetOptions{Mode: ExpirePX, ExpireAt: 2000})
	ttlBefore := ks.TTLMillis([]byte("k"))
	require.True(t, ttlBefore > 0 && ttlBefore <= 2000)

	ks.SetString([]byte("k"), []byte("w"), SetOptions{KeepTTL: true})
	ttlAfter := ks.TTLMillis([]byte("k"))
	require.True(t, ttlAfter > 0 && ttlAfter <= 2000)

	v, _, _ := ks.Get([]byte("k"))
	require.Equal(t, []byte("w"), v)
}

func TestSetNXGetReturnsOldRegardlessOfOutcome(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("k"), []byte("orig"), SetOptions{})

	old, hadOld, wrongType, applied := ks.SetString([]byte("k"), []byte("new"), SetOptions{NX: true, Get: true})
	require.False(t, wrongType)
	require.False(t, applied)
	require.True(t, hadOld)
	require.Equal(t, []byte("orig"), old)

	v, _, _ := ks.Get([]byte("k"))
	require.Equal(t, []byte("orig"), v)
}

func TestGetWrongType(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.Push([]byte("l"), [][]byte{[]byte("a")}, true)
	_, _, err := ks.Get([]byte("l"))
	require.ErrorIs(t, err, ErrWrongType)
}

func TestIncrDecrRoundTrip(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("x"), []byte("10"), SetOptions{})
	n, err := ks.IncrBy([]byte("x"), 1)
	require.NoError(t, err)
	require.EqualValues(t, 11, n)

	n, err = ks.IncrBy([]byte("x"), -5)
	require.NoError(t, err)
	require.EqualValues(t, 6, n)

	n, err = ks.IncrBy([]byte("x"), -6)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	v, _, _ := ks.Get([]byte("x"))
	require.Equal(t, []byte("0"), v)
}

func TestIncrOverflow(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("x"), []byte("9223372036854775807"), SetOptions{})
	_, err := ks.IncrBy([]byte("x"), 1)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestDecrOverflowOnMinInt64(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("x"), []byte("-9223372036854775808"), SetOptions{})
	_, err := ks.IncrBy([]byte("x"), -1)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestParseInt64AcceptsMinInt64Boundary(t *testing.T) {
	n, ok := ParseInt64([]byte("-9223372036854775808"))
	require.True(t, ok)
	require.EqualValues(t, -9223372036854775808, n)

	_, ok = ParseInt64([]byte("-9223372036854775809"))
	require.False(t, ok)

	_, ok = ParseInt64([]byte("9223372036854775808"))
	require.False(t, ok)
}

func TestIncrMissingKeyTreatedAsZero(t *testing.T) {
	ks, _ := newTestKeyspace()
	n, err := ks.IncrBy([]byte("fresh"), 5)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
}

func TestListPushAndRange(t *testing.T) {
	ks, _ := newTestKeyspace()
	n, err := ks.Push([]byte("L"), [][]byte{[]byte("a"), []byte("b"), []byte("c")}, true)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	r, err := ks.Range([]byte("L"), 0, -1)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("c"), []byte("b"), []byte("a")}, r)
}

func TestListLenAbsentIsZero(t *testing.T) {
	ks, _ := newTestKeyspace()
	n, err := ks.Len([]byte("missing"))
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestLRemAllThenNoop(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.Push([]byte("L"), [][]byte{[]byte("x"), []byte("y"), []byte("x")}, false)
	removed, err := ks.Rem([]byte("L"), 0, []byte("x"))
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	removed, err = ks.Rem([]byte("L"), 0, []byte("x"))
	require.NoError(t, err)
	require.EqualValues(t, 0, removed)
}

func TestListEmptyDeletesKey(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.Push([]byte("L"), [][]byte{[]byte("only")}, false)
	_, _, err := ks.Pop([]byte("L"), true, false, 0)
	require.NoError(t, err)
	require.False(t, ks.Exists([]byte("L")))
}

func TestExpireFamilyConditions(t *testing.T) {
	ks, fc := newTestKeyspace()
	_ = fc
	ks.SetString([]byte("k"), []byte("v"), SetOptions{})

	require.EqualValues(t, 1, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+200, CondNX))
	require.EqualValues(t, 0, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+300, CondNX))
	require.EqualValues(t, 1, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+300, CondXX))
	require.EqualValues(t, 0, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+100, CondGT))
	require.EqualValues(t, 1, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+50, CondLT))
}

func TestExpireLTAsymmetryOnAbsentTTL(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("k"), []byte("v"), SetOptions{})
	require.EqualValues(t, 1, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+100, CondLT))
}

func TestExpireGTOnAbsentTTLDoesNotApply(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("k"), []byte("v"), SetOptions{})
	require.EqualValues(t, 0, ks.SetExpireAt([]byte("k"), ks.clock.NowMs()+100, CondGT))
}

func TestLazyExpirationPurgesOnAccess(t *testing.T) {
	ks, fc := newTestKeyspace()
	ks.SetString([]byte("k"), []byte("v"), SetOptions{Mode: ExpirePX, ExpireAt: 10})
	fc.Advance(20)
	_, ok, err := ks.Get([]byte("k"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExportReplaceRoundTrip(t *testing.T) {
	ks, _ := newTestKeyspace()
	ks.SetString([]byte("a"), []byte("1"), SetOptions{})
	ks.Push([]byte("L"), [][]byte{[]byte("x"), []byte("y")}, false)

	records := ks.Export()

	other, _ := newTestKeyspace()
	other.Replace(records)

	v, ok, _ := other.Get([]byte("a"))
	require.True(t, ok)
	require.Equal(t, []byte("1"), v)

	r, _ := other.Range([]byte("L"), 0, -1)
	require.Equal(t, [][]byte{[]byte("x"), []byte("y")}, r)
}
