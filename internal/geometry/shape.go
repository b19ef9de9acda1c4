package geometry

import "fmt"

// MaxRank is the number of axes a runtime shape can describe (NCHW).
const MaxRank = 4

// RuntimeShape is a fixed-rank NCHW shape. Tensors of lower rank are
// right-aligned and padded with leading 1s.
type RuntimeShape [MaxRank]int

// RuntimePaddings holds one padding per axis of a RuntimeShape.
type RuntimePaddings [MaxRank]Padding

// ToRuntimeShape right-aligns dims into a RuntimeShape, filling missing
// leading axes with 1.
//
//	(3, 4) → (1, 1, 3, 4)
func ToRuntimeShape(dims []int) (RuntimeShape, error) {
	shape := RuntimeShape{1, 1, 1, 1}
	if len(dims) > MaxRank {
		return shape, fmt.Errorf("%w: got rank %d, max %d", ErrRankTooHigh, len(dims), MaxRank)
	}

	offset := MaxRank - len(dims)
	for i, dim := range dims {
		if dim < 0 {
			return shape, fmt.Errorf("%w at index %d: %d", ErrNegativeDim, i, dim)
		}
		shape[offset+i] = dim
	}
	return shape, nil
}

// NumElements returns the product of all dimensions.
func (s RuntimeShape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Strides returns row-major strides: stride[i] is the product of all
// dimensions after i.
func (s RuntimeShape) Strides() RuntimeShape {
	var strides RuntimeShape
	strides[MaxRank-1] = 1
	for i := MaxRank - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Pad returns the shape grown by paddings on every axis.
func (s RuntimeShape) Pad(paddings RuntimePaddings) RuntimeShape {
	var out RuntimeShape
	for i := range s {
		out[i] = s[i] + int(paddings[i].Sum())
	}
	return out
}

// Sum returns the total padding of every axis.
func (p RuntimePaddings) Sum() RuntimeShape {
	var out RuntimeShape
	for i, pad := range p {
		out[i] = int(pad.Sum())
	}
	return out
}

// IsZero reports whether no axis is padded.
func (p RuntimePaddings) IsZero() bool {
	return p == RuntimePaddings{}
}
