package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	var req CompanyUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Acme","description":null}`), &req))

	assert.True(t, req.Name.Present())
	assert.Equal(t, "Acme", req.Name.Value)

	assert.True(t, req.Description.Set)
	assert.True(t, req.Description.Null)
	assert.False(t, req.Description.Present())
	assert.Nil(t, req.Description.Ptr())

	assert.False(t, req.Website.Set)
	assert.False(t, req.Location.Set)
}

func TestOptional_PointerIsTypedNilWhenAbsent(t *testing.T) {
	var o Optional[string]
	p, ok := o.Pointer().(*string)
	require.True(t, ok)
	assert.Nil(t, p)

	o = Some("x")
	p = o.Pointer().(*string)
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(b))
}
