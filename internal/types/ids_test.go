package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Kind
		wantErr bool
	}{
		{name: "group prefix", raw: "group-todo", want: KindGroup},
		{name: "legacy container prefix", raw: "container-1f3a", want: KindGroup},
		{name: "item prefix", raw: "item-42", want: KindItem},
		{name: "value keeps dashes", raw: "item-3b9e-44aa", want: KindItem},
		{name: "substring is not enough", raw: "todoitem-1", wantErr: true},
		{name: "missing value", raw: "item-", wantErr: true},
		{name: "no separator", raw: "item1", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedID)
				assert.Equal(t, KindUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDRoundTrip(t *testing.T) {
	id, err := ParseID("item-3b9e-44aa")
	require.NoError(t, err)
	assert.Equal(t, ItemID("3b9e-44aa"), id)
	assert.Equal(t, "item-3b9e-44aa", id.String())

	legacy, err := ParseID("container-abc")
	require.NoError(t, err)
	assert.Equal(t, GroupID("abc"), legacy)
	assert.Equal(t, "group-abc", legacy.String())
}

func TestMintedIDsAreDistinctAndTagged(t *testing.T) {
	a, b := NewItemID(), NewItemID()
	assert.NotEqual(t, a, b)
	assert.True(t, a.IsItem())

	g := NewGroupID()
	assert.True(t, g.IsGroup())

	parsed, err := ParseID(g.String())
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestIDTextMarshaling(t *testing.T) {
	data, err := json.Marshal(map[string]ID{"active": ItemID("a")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"active":"item-a"}`, string(data))

	var out struct {
		Target ID `json:"target"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"target":"group-g1"}`), &out))
	assert.Equal(t, GroupID("g1"), out.Target)

	err = json.Unmarshal([]byte(`{"target":"column-g1"}`), &out)
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = ID{Value: "x"}.MarshalText()
	assert.ErrorIs(t, err, ErrMalformedID)
}
