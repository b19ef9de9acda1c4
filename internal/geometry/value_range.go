package geometry

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/rtypes/internal/datatype"
)

// ValueRange bounds the values a tensor may hold.
type ValueRange[T datatype.Native] struct {
	Min T
	Max T
}

// FullRange returns the widest range of T: [-Inf, +Inf] for floating-point
// types, otherwise the lowest and highest representable values.
func FullRange[T datatype.Native]() ValueRange[T] {
	if neg, pos, ok := datatype.Infinities[T](); ok {
		return ValueRange[T]{Min: neg, Max: pos}
	}
	lo, hi := datatype.Limits[T]()
	return ValueRange[T]{Min: lo, Max: hi}
}

// NonnegativeRange returns [0, highest representable value of T].
func NonnegativeRange[T datatype.Native]() ValueRange[T] {
	var zero T
	_, hi := datatype.Limits[T]()
	return ValueRange[T]{Min: zero, Max: hi}
}

// Equal compares both bounds numerically for every T: -0 equals +0 and NaN
// equals nothing. float16 and bfloat16 are compared through float32 because
// == on their bit patterns would not follow those rules.
func (r ValueRange[T]) Equal(other ValueRange[T]) bool {
	return equalValue(r.Min, other.Min) && equalValue(r.Max, other.Max)
}

func equalValue[T datatype.Native](a, b T) bool {
	switch x := any(a).(type) {
	case float16.Float16:
		return x.Float32() == any(b).(float16.Float16).Float32()
	case bfloat16.BFloat16:
		return x.Float32() == any(b).(bfloat16.BFloat16).Float32()
	}
	return a == b
}

// String returns the range as "[min, max]".
func (r ValueRange[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
