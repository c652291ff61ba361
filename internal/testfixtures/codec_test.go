package testfixtures

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"

	"github.com/gorilla/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uuidText = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func TestJSONForms(t *testing.T) {
	id, err := ParseOrderID(uuidText)
	require.NoError(t, err)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+uuidText+`"`, string(data))

	data, err = json.Marshal(ShardIDFrom(-7))
	require.NoError(t, err)
	assert.Equal(t, `-7`, string(data))

	// Bare numbers keep int64 precision that a float64 round trip loses.
	data, err = json.Marshal(AccountIDFrom(9007199254740993))
	require.NoError(t, err)
	assert.Equal(t, `9007199254740993`, string(data))

	data, err = json.Marshal(Slug("summer-sale"))
	require.NoError(t, err)
	assert.Equal(t, `"summer-sale"`, string(data))
}

func TestJSONStructEmbedding(t *testing.T) {
	type purchase struct {
		ID      OrderID   `json:"id"`
		Shard   ShardID   `json:"shard"`
		Account AccountID `json:"account"`
		Slug    Slug      `json:"slug"`
	}

	id, err := ParseOrderID(uuidText)
	require.NoError(t, err)
	p := purchase{ID: id, Shard: ShardIDFrom(3), Account: AccountIDFrom(12), Slug: "summer-sale"}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+uuidText+`","shard":3,"account":12,"slug":"summer-sale"}`, string(data))

	var got purchase
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, p, got)
}

func TestJSONUnmarshalRejects(t *testing.T) {
	var id OrderID
	require.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &id))
	require.Error(t, json.Unmarshal([]byte(`42`), &id))

	var shard ShardID
	require.Error(t, json.Unmarshal([]byte(`"7"`), &shard), "quoted digits are not a JSON number")

	var slug Slug
	err := json.Unmarshal([]byte(`""`), &slug)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Slug")
}

func TestJSONNullLeavesValue(t *testing.T) {
	id := NewOrderID()
	orig := id
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.Equal(t, orig, id)

	shard := ShardIDFrom(9)
	require.NoError(t, json.Unmarshal([]byte(`null`), &shard))
	assert.Equal(t, ShardIDFrom(9), shard)

	slug := Slug("keep")
	require.NoError(t, json.Unmarshal([]byte(`null`), &slug))
	assert.Equal(t, Slug("keep"), slug)
}

func TestTextMarshaling(t *testing.T) {
	id := AccountIDFrom(88)
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "88", string(text))

	var back AccountID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)

	var slug Slug
	require.Error(t, slug.UnmarshalText(nil))
}

// TestFormBinding decodes query parameters through gorilla/schema, which
// feeds each field's UnmarshalText.
func TestFormBinding(t *testing.T) {
	var params struct {
		Order   OrderID   `schema:"order"`
		Shard   ShardID   `schema:"shard"`
		Account AccountID `schema:"account"`
		Slug    Slug      `schema:"slug"`
	}

	dec := schema.NewDecoder()
	err := dec.Decode(&params, url.Values{
		"order":   {uuidText},
		"shard":   {"12"},
		"account": {"34"},
		"slug":    {"summer-sale"},
	})
	require.NoError(t, err)

	assert.Equal(t, uuidText, params.Order.String())
	assert.Equal(t, int32(12), params.Shard.Raw())
	assert.Equal(t, int64(34), params.Account.Raw())
	assert.Equal(t, Slug("summer-sale"), params.Slug)

	var bad struct {
		Order OrderID `schema:"order"`
	}
	require.Error(t, dec.Decode(&bad, url.Values{"order": {"nope"}}))
}

func TestSQLScanValue(t *testing.T) {
	t.Run("opaque", func(t *testing.T) {
		id := NewOrderID()
		v, err := id.Value()
		require.NoError(t, err)
		assert.Equal(t, id.String(), v)

		var back OrderID
		require.NoError(t, back.Scan(v))
		assert.Equal(t, id, back)

		require.NoError(t, back.Scan([]byte(id.String())))
		assert.Equal(t, id, back)

		require.NoError(t, back.Scan(nil))
		assert.True(t, back.IsEmpty())
	})

	t.Run("int32", func(t *testing.T) {
		id := ShardIDFrom(math.MaxInt32)
		v, err := id.Value()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt32), v)

		var back ShardID
		require.NoError(t, back.Scan(v))
		assert.Equal(t, id, back)

		err = back.Scan(int64(math.MaxInt32) + 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overflows int32")
	})

	t.Run("int64", func(t *testing.T) {
		id := AccountIDFrom(1 << 40)
		v, err := id.Value()
		require.NoError(t, err)

		var back AccountID
		require.NoError(t, back.Scan(v))
		assert.Equal(t, id, back)

		require.NoError(t, back.Scan("17"))
		assert.Equal(t, AccountIDFrom(17), back)
	})

	t.Run("text", func(t *testing.T) {
		slug := Slug("summer-sale")
		v, err := slug.Value()
		require.NoError(t, err)
		assert.Equal(t, "summer-sale", v)

		var back Slug
		require.NoError(t, back.Scan(v))
		assert.Equal(t, slug, back)

		require.NoError(t, back.Scan(nil))
		assert.True(t, back.IsEmpty())
	})

	t.Run("unsupported source", func(t *testing.T) {
		var slug Slug
		err := slug.Scan(3.14)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported source type")
	})
}
