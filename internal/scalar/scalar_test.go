package scalar

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/rtypes/internal/datatype"
)

func TestInt8RoundTrip(t *testing.T) {
	s := FromInt8(5)
	assert.Equal(t, datatype.Int8, s.Type())

	v, err := As[int8](s)
	require.NoError(t, err)
	assert.Equal(t, int8(5), v)
	assert.Equal(t, [4]byte{5, 0, 0, 0}, s.Bytes())
}

func TestExplicitConstructors(t *testing.T) {
	u := FromUint8(200)
	assert.Equal(t, datatype.Uint8, u.Type())
	assert.Equal(t, uint8(200), MustAs[uint8](u))

	f := FromFloat32(-2.5)
	assert.Equal(t, datatype.Float32, f.Type())
	assert.Equal(t, float32(-2.5), MustAs[float32](f))

	neg := FromInt8(-1)
	assert.Equal(t, [4]byte{0xff, 0, 0, 0}, neg.Bytes())
}

func TestFloat32Storage(t *testing.T) {
	s := FromFloat32(1)
	// 1.0f is 0x3f800000, stored little-endian.
	assert.Equal(t, [4]byte{0x00, 0x00, 0x80, 0x3f}, s.Bytes())
}

func TestGenericNew(t *testing.T) {
	assert.Equal(t, int16(-300), MustAs[int16](New(int16(-300))))
	assert.Equal(t, int32(math.MinInt32), MustAs[int32](New(int32(math.MinInt32))))
	assert.Equal(t, uint16(65535), MustAs[uint16](New(uint16(65535))))
	assert.Equal(t, uint32(math.MaxUint32), MustAs[uint32](New(uint32(math.MaxUint32))))

	h := New(float16.Fromfloat32(1.5))
	assert.Equal(t, datatype.Float16, h.Type())
	assert.Equal(t, float32(1.5), MustAs[float16.Float16](h).Float32())

	b := New(bfloat16.FromFloat32(0.5))
	assert.Equal(t, datatype.BFloat16, b.Type())
	assert.Equal(t, float32(0.5), MustAs[bfloat16.BFloat16](b).Float32())
}

func TestTypeMismatch(t *testing.T) {
	s := FromFloat32(1)

	_, err := As[int32](s)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "stored float32, requested int32")

	// float16 and bfloat16 share a width but are distinct tags.
	_, err = As[bfloat16.BFloat16](New(float16.Fromfloat32(1)))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	assert.Panics(t, func() { MustAs[uint8](FromInt8(1)) })
}

func TestEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want bool
	}{
		{"same tag same value", FromInt8(7), FromInt8(7), true},
		{"same tag different value", FromInt8(7), FromInt8(8), false},
		{"different tag same bytes", FromInt8(7), FromUint8(7), false},
		{"float bits not value", FromFloat32(0), FromFloat32(float32(math.Copysign(0, -1))), false},
		{"zero value", Scalar{}, FromInt8(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.a == tt.b)
		})
	}

	nan := float32(math.NaN())
	assert.True(t, FromFloat32(nan).Equal(FromFloat32(nan)))
}

func TestFromBytes(t *testing.T) {
	s, err := FromBytes(datatype.Uint16, [4]byte{0x34, 0x12, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), MustAs[uint16](s))
	assert.True(t, s.Equal(New(uint16(0x1234))))

	_, err = FromBytes(datatype.Float64, [4]byte{})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = FromBytes(datatype.DataType(99), [4]byte{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		s    Scalar
		want float64
	}{
		{FromInt8(-5), -5},
		{New(int16(-1000)), -1000},
		{New(int32(123456)), 123456},
		{FromUint8(255), 255},
		{New(uint16(40000)), 40000},
		{New(uint32(3000000000)), 3000000000},
		{New(float16.Fromfloat32(-0.25)), -0.25},
		{FromFloat32(2.5), 2.5},
		{New(bfloat16.FromFloat32(8)), 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.Float64(), tt.s.Type().String())
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "int8(-3)", FromInt8(-3).String())
	assert.Equal(t, "uint32(4294967295)", New(uint32(math.MaxUint32)).String())
	assert.Equal(t, "float32(1.5)", FromFloat32(1.5).String())
	assert.Equal(t, "float32(0.1)", FromFloat32(0.1).String())
	assert.Equal(t, "float16(0.5)", New(float16.Fromfloat32(0.5)).String())
}
