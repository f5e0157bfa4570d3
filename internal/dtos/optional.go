package dtos

import (
	"bytes"
	"encoding/json"
)

// Optional is a field of a partial-update payload. It tells apart a key that was
// not sent, a key sent as null, and a key sent with a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that was explicitly sent as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the field carries a value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Ptr returns a pointer to the value, or nil when no value was sent.
func (o Optional[T]) Ptr() *T {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON is only invoked for keys present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Pointer returns Ptr as an untyped value; a nil *T when no value was sent.
func (o Optional[T]) Pointer() any {
	return o.Ptr()
}
