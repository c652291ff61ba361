package testfixtures

import (
	"bytes"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySentinels(t *testing.T) {
	assert.True(t, EmptyOrderID.IsEmpty())
	assert.True(t, EmptyShardID.IsEmpty())
	assert.True(t, EmptyAccountID.IsEmpty())
	assert.True(t, EmptySlug.IsEmpty())

	var zero OrderID
	assert.Equal(t, EmptyOrderID, zero)
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", EmptyOrderID.String())
	assert.Equal(t, "0", EmptyShardID.String())
	assert.Equal(t, "0", EmptyAccountID.String())
	assert.Equal(t, "", EmptySlug.String())

	assert.False(t, NewOrderID().IsEmpty())
	assert.False(t, ShardIDFrom(1).IsEmpty())
	assert.True(t, ShardIDFrom(0).IsEmpty())
}

func TestNewOrderIDUnique(t *testing.T) {
	seen := make(map[OrderID]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		require.False(t, id.IsEmpty())
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("opaque", func(t *testing.T) {
		id := NewOrderID()
		parsed, err := ParseOrderID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
		assert.Equal(t, id, OrderIDFrom(id.Raw()))
	})

	t.Run("int32", func(t *testing.T) {
		id := ShardIDFrom(-42)
		parsed, err := ParseShardID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
		assert.Equal(t, int32(-42), id.Raw())
	})

	t.Run("int64", func(t *testing.T) {
		id := AccountIDFrom(1 << 40)
		parsed, err := ParseAccountID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("text", func(t *testing.T) {
		id, err := SlugFrom("summer-sale")
		require.NoError(t, err)
		parsed, err := ParseSlug(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
		assert.Equal(t, "summer-sale", id.Raw())
	})
}

func TestParseRejects(t *testing.T) {
	_, err := ParseOrderID("not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse OrderID")

	_, err = ParseShardID("2147483648") // one past MaxInt32
	require.Error(t, err)

	_, err = ParseAccountID("9223372036854775808") // one past MaxInt64
	require.Error(t, err)

	_, err = SlugFrom("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Slug")

	_, err = ParseSlug("")
	require.Error(t, err)
}

func TestTryParse(t *testing.T) {
	id, ok := TryParseShardID("2147483647")
	require.True(t, ok)
	assert.Equal(t, int32(2147483647), id.Raw())

	missing, ok := TryParseShardID("2147483648")
	assert.False(t, ok)
	assert.Equal(t, EmptyShardID, missing)

	_, ok = TryParseOrderID("nope")
	assert.False(t, ok)

	slug, ok := TryParseSlug("x")
	require.True(t, ok)
	assert.Equal(t, Slug("x"), slug)

	_, ok = TryParseSlug("")
	assert.False(t, ok)
}

func TestCompareOrdersLikeRaw(t *testing.T) {
	t.Run("opaque", func(t *testing.T) {
		a, b := NewOrderID(), NewOrderID()
		au, bu := a.Raw(), b.Raw()
		assert.Equal(t, bytes.Compare(au[:], bu[:]), a.Compare(b))
		assert.Equal(t, 0, a.Compare(a))
	})

	t.Run("int32", func(t *testing.T) {
		ids := []ShardID{ShardIDFrom(30), ShardIDFrom(-1), ShardIDFrom(7)}
		slices.SortFunc(ids, ShardID.Compare)
		assert.Equal(t, []ShardID{ShardIDFrom(-1), ShardIDFrom(7), ShardIDFrom(30)}, ids)
	})

	t.Run("text", func(t *testing.T) {
		ids := []Slug{"pear", "apple", "plum"}
		slices.SortFunc(ids, Slug.Compare)
		assert.Equal(t, []Slug{"apple", "pear", "plum"}, ids)
		assert.True(t, slices.IsSortedFunc(ids, Slug.Compare))
	})
}

func TestUnexportedIdentifiers(t *testing.T) {
	id := newSessionID()
	require.False(t, id.IsEmpty())
	assert.True(t, emptySessionID.IsEmpty())
	assert.Equal(t, id, sessionIDFrom(id.Raw()))

	parsed, ok := tryParseSessionID(id.String())
	require.True(t, ok)
	assert.Equal(t, id, parsed)

	_, err := parseSessionID("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse sessionID")

	tok, err := sessionTokenFrom("tk_4f2a")
	require.NoError(t, err)
	assert.Equal(t, "tk_4f2a", tok.Raw())

	_, err = sessionTokenFrom("")
	require.Error(t, err)

	again, err := parseSessionToken("tk_4f2a")
	require.NoError(t, err)
	assert.Equal(t, tok, again)

	_, ok = tryParseSessionToken("")
	assert.False(t, ok)
	assert.True(t, emptySessionToken.IsEmpty())
}

func TestRawConversions(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	id := OrderIDFrom(u)
	assert.Equal(t, u, id.Raw())
	assert.Equal(t, u.String(), id.String())
}
