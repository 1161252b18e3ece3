package patch

import "encoding/json"

// Value distinguishes "leave unchanged" (absent) from "set to v", including
// setting a field to its zero value.
type Value[T any] struct {
	value T
	set   bool
}

func Set[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func Unset[T any]() Value[T] {
	return Value[T]{}
}

func (v Value[T]) IsSet() bool { return v.set }

// IsZero lets `omitzero` drop absent values when encoding.
func (v Value[T]) IsZero() bool { return !v.set }

func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// Or returns the carried value when present, otherwise fallback.
func (v Value[T]) Or(fallback T) T {
	if v.set {
		return v.value
	}
	return fallback
}

// UnmarshalJSON only runs for keys present in the payload, so an explicit
// null still counts as present (with the zero value).
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if string(data) == "null" {
		var zero T
		v.value = zero
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
