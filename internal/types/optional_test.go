package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalIntDecode(t *testing.T) {
	cases := []struct {
		in   string
		want OptionalInt
	}{
		{`{"v": 3}`, OptionalInt{Value: 3, Set: true}},
		{`{"v": "7"}`, OptionalInt{Value: 7, Set: true}},
		{`{"v": " 12 "}`, OptionalInt{Value: 12, Set: true}},
		{`{"v": ""}`, OptionalInt{}},
		{`{"v": null}`, OptionalInt{}},
		{`{}`, OptionalInt{}},
	}

	for _, c := range cases {
		var body struct {
			V OptionalInt `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(c.in), &body), c.in)
		assert.Equal(t, c.want, body.V, c.in)
	}
}

func TestOptionalIntRejectsGarbage(t *testing.T) {
	for _, in := range []string{`{"v": "high"}`, `{"v": 1.5}`, `{"v": true}`} {
		var body struct {
			V OptionalInt `json:"v"`
		}
		assert.Error(t, json.Unmarshal([]byte(in), &body), in)
	}
}

func TestOptionalIntHelpers(t *testing.T) {
	assert.Nil(t, OptionalInt{}.Ptr())
	assert.Equal(t, 4, *OptionalInt{Value: 4, Set: true}.Ptr())
	assert.Equal(t, uint(0), OptionalInt{Value: -2, Set: true}.Uint())
	assert.Equal(t, uint(9), OptionalInt{Value: 9, Set: true}.Uint())

	out, err := json.Marshal(OptionalInt{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
