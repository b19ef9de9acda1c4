package geometry

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// Padding Tests

func TestPaddingZeroIsIdentity(t *testing.T) {
	paddings := []Padding{
		{0, 0},
		{1, 2},
		{-3, 5},
		{math.MaxInt32, math.MinInt32},
	}

	for _, p := range paddings {
		assert.Equal(t, p, ZeroPadding().Add(p), "zero + %v", p)
		assert.Equal(t, p, p.Add(ZeroPadding()), "%v + zero", p)
	}
}

func TestPaddingSumAndAdd(t *testing.T) {
	p := Padding{Before: 1, After: 2}
	q := Padding{Before: 3, After: -1}

	assert.Equal(t, int32(3), p.Sum())
	assert.Equal(t, Padding{Before: 4, After: 1}, p.Add(q))
	assert.True(t, p.Add(q).Equal(q.Add(p)))

	r := Padding{Before: 10, After: 20}
	assert.Equal(t, p.Add(q).Add(r), p.Add(q.Add(r)))
	assert.False(t, p.Equal(q))
	assert.Equal(t, "{1, 2}", p.String())
}

func TestPaddingOverflow(t *testing.T) {
	big := Padding{Before: math.MaxInt32, After: 0}
	one := Padding{Before: 1, After: 0}

	// Add wraps.
	assert.Equal(t, int32(math.MinInt32), big.Add(one).Before)

	_, err := big.AddChecked(one)
	assert.ErrorIs(t, err, ErrPaddingOverflow)

	got, err := Padding{Before: 1, After: -1}.AddChecked(Padding{Before: 2, After: -2})
	require.NoError(t, err)
	assert.Equal(t, Padding{Before: 3, After: -3}, got)
}

// ValueRange Tests

func TestFullRange(t *testing.T) {
	f := FullRange[float32]()
	assert.Equal(t, ValueRange[float32]{Min: float32(math.Inf(-1)), Max: float32(math.Inf(1))}, f)

	d := FullRange[float64]()
	assert.True(t, math.IsInf(d.Min, -1))
	assert.True(t, math.IsInf(d.Max, 1))

	h := FullRange[float16.Float16]()
	assert.True(t, h.Min.IsInf(-1))
	assert.True(t, h.Max.IsInf(1))

	b := FullRange[bfloat16.BFloat16]()
	assert.True(t, math.IsInf(float64(b.Max.Float32()), 1))

	assert.Equal(t, ValueRange[int8]{Min: math.MinInt8, Max: math.MaxInt8}, FullRange[int8]())
	assert.Equal(t, ValueRange[uint16]{Min: 0, Max: math.MaxUint16}, FullRange[uint16]())
	assert.Equal(t, ValueRange[int64]{Min: math.MinInt64, Max: math.MaxInt64}, FullRange[int64]())
}

func TestNonnegativeRange(t *testing.T) {
	assert.Equal(t, ValueRange[int32]{Min: 0, Max: math.MaxInt32}, NonnegativeRange[int32]())
	assert.Equal(t, ValueRange[uint8]{Min: 0, Max: math.MaxUint8}, NonnegativeRange[uint8]())
	assert.Equal(t, ValueRange[float32]{Min: 0, Max: math.MaxFloat32}, NonnegativeRange[float32]())

	h := NonnegativeRange[float16.Float16]()
	assert.Equal(t, float32(0), h.Min.Float32())
	assert.Equal(t, float32(65504), h.Max.Float32())
}

func TestValueRangeEqual(t *testing.T) {
	r := ValueRange[float32]{Min: -1, Max: 1}
	assert.True(t, r.Equal(ValueRange[float32]{Min: -1, Max: 1}))
	assert.False(t, r.Equal(ValueRange[float32]{Min: -1, Max: 2}))
	assert.False(t, r.Equal(FullRange[float32]()))
	assert.True(t, FullRange[float32]().Equal(FullRange[float32]()))
	assert.Equal(t, "[-1, 1]", r.String())
}

func TestValueRangeEqualHalfTypes(t *testing.T) {
	posZero, negZero := float16.Float16(0x0000), float16.Float16(0x8000)
	h := ValueRange[float16.Float16]{Min: negZero, Max: float16.Fromfloat32(1)}
	assert.True(t, h.Equal(ValueRange[float16.Float16]{Min: posZero, Max: float16.Fromfloat32(1)}))

	hnan := ValueRange[float16.Float16]{Min: float16.NaN(), Max: float16.NaN()}
	assert.False(t, hnan.Equal(hnan))

	bPos, bNeg := bfloat16.BFloat16(0x0000), bfloat16.BFloat16(0x8000)
	b := ValueRange[bfloat16.BFloat16]{Min: bNeg, Max: bfloat16.FromFloat32(2)}
	assert.True(t, b.Equal(ValueRange[bfloat16.BFloat16]{Min: bPos, Max: bfloat16.FromFloat32(2)}))
	assert.False(t, b.Equal(ValueRange[bfloat16.BFloat16]{Min: bPos, Max: bfloat16.FromFloat32(3)}))

	bnan := ValueRange[bfloat16.BFloat16]{Min: bfloat16.BFloat16(0x7fc0), Max: bfloat16.BFloat16(0x7fc0)}
	assert.False(t, bnan.Equal(bnan))

	// Same rules as the builtin float types.
	f := ValueRange[float32]{Min: float32(math.Copysign(0, -1)), Max: 1}
	assert.True(t, f.Equal(ValueRange[float32]{Min: 0, Max: 1}))
	fnan := ValueRange[float32]{Min: float32(math.NaN()), Max: 1}
	assert.False(t, fnan.Equal(fnan))
}

// RuntimeShape Tests

func TestToRuntimeShape(t *testing.T) {
	tests := []struct {
		dims []int
		want RuntimeShape
	}{
		{nil, RuntimeShape{1, 1, 1, 1}},
		{[]int{5}, RuntimeShape{1, 1, 1, 5}},
		{[]int{3, 4}, RuntimeShape{1, 1, 3, 4}},
		{[]int{2, 3, 4, 5}, RuntimeShape{2, 3, 4, 5}},
	}

	for _, tt := range tests {
		got, err := ToRuntimeShape(tt.dims)
		require.NoError(t, err, "%v", tt.dims)
		assert.Equal(t, tt.want, got, "%v", tt.dims)
	}

	_, err := ToRuntimeShape([]int{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrRankTooHigh)

	_, err = ToRuntimeShape([]int{2, -1})
	assert.ErrorIs(t, err, ErrNegativeDim)
}

func TestRuntimeShapeArithmetic(t *testing.T) {
	s := RuntimeShape{1, 3, 4, 5}
	assert.Equal(t, 60, s.NumElements())
	assert.Equal(t, RuntimeShape{60, 20, 5, 1}, s.Strides())

	paddings := RuntimePaddings{{}, {}, {Before: 1, After: 1}, {Before: 2, After: 0}}
	assert.False(t, paddings.IsZero())
	assert.True(t, RuntimePaddings{}.IsZero())
	assert.Equal(t, RuntimeShape{0, 0, 2, 2}, paddings.Sum())
	assert.Equal(t, RuntimeShape{1, 3, 6, 7}, s.Pad(paddings))
}
