// Package geometry provides the small value types that describe tensor
// geometry: paddings, value ranges and fixed-rank runtime shapes.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Common errors.
var (
	ErrPaddingOverflow = errors.New("padding overflows int32")
	ErrRankTooHigh     = errors.New("rank exceeds runtime shape capacity")
	ErrNegativeDim     = errors.New("negative dimension")
)

// Padding is the number of elements added before and after one axis.
// Negative values crop.
type Padding struct {
	Before int32
	After  int32
}

// ZeroPadding returns the identity element of Add.
func ZeroPadding() Padding {
	return Padding{}
}

// Sum returns Before + After.
func (p Padding) Sum() int32 {
	return p.Before + p.After
}

// Add returns the pairwise sum of two paddings.
// Overflow wraps around; use AddChecked when inputs are untrusted.
func (p Padding) Add(other Padding) Padding {
	return Padding{
		Before: p.Before + other.Before,
		After:  p.After + other.After,
	}
}

// AddChecked is like Add but fails with ErrPaddingOverflow instead of wrapping.
func (p Padding) AddChecked(other Padding) (Padding, error) {
	before := int64(p.Before) + int64(other.Before)
	after := int64(p.After) + int64(other.After)
	if before < math.MinInt32 || before > math.MaxInt32 || after < math.MinInt32 || after > math.MaxInt32 {
		return Padding{}, fmt.Errorf("%w: %v + %v", ErrPaddingOverflow, p, other)
	}
	return Padding{Before: int32(before), After: int32(after)}, nil
}

// Equal reports whether both fields match.
func (p Padding) Equal(other Padding) bool {
	return p == other
}

// String returns a compact "{before, after}" form.
func (p Padding) String() string {
	return fmt.Sprintf("{%d, %d}", p.Before, p.After)
}
