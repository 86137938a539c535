package kernel

import (
	"bytes"
	"encoding/json"
)

// ValueObject is an immutable domain value whose identity is the full set of its
// attributes. Equals reports false for a nil operand and for an operand of a
// different concrete type.
type ValueObject interface {
	Equals(other ValueObject) bool
}

// SameValue implements Equals for value objects backed by a comparable struct:
// other must hold the same concrete type and every field must be equal.
//
// T must be the struct type itself, with Equals on a value receiver. With a
// pointer type == compares identity instead of fields, so two separately built
// values would never be equal; use SameCanonicalValue for those.
//
// Example:
//
//	type Money struct {
//	    amount   int64
//	    currency string
//	}
//
//	func (m Money) Equals(other kernel.ValueObject) bool {
//	    return kernel.SameValue(m, other)
//	}
func SameValue[T interface {
	comparable
	ValueObject
}](v T, other ValueObject) bool {
	if other == nil {
		return false
	}
	o, ok := other.(T)
	return ok && v == o
}

// SameCanonicalValue implements Equals for value objects that hold slices or maps
// and therefore cannot use ==. Both sides are compared through their JSON
// encoding: slices keep their order and map keys are sorted, so maps compare
// regardless of insertion order. MarshalJSON must cover every field.
func SameCanonicalValue[T interface {
	ValueObject
	json.Marshaler
}](v T, other ValueObject) bool {
	if other == nil {
		return false
	}
	o, ok := other.(T)
	if !ok {
		return false
	}

	left, err := v.MarshalJSON()
	if err != nil {
		return false
	}
	right, err := o.MarshalJSON()
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}
