// Package quant describes how integer-quantized tensors map back to real
// numbers.
package quant

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Epsilon is the float32 machine epsilon used by AlmostEqual.
const Epsilon float32 = 0x1p-23

// Common errors.
var (
	ErrChannelMismatch = errors.New("zero point and scale lengths differ")
	ErrChannelRange    = errors.New("quantization channel out of range")
)

// Param holds one (zero point, scale) pair per quantization channel:
//
//	real = (q - ZeroPoint[c]) * Scale[c]
type Param struct {
	ZeroPoint []int64
	Scale     []float32
}

// NewParam returns a per-tensor parameter with a single channel.
func NewParam(zeroPoint int64, scale float32) Param {
	return Param{ZeroPoint: []int64{zeroPoint}, Scale: []float32{scale}}
}

// Channels returns the number of channels.
func (p Param) Channels() int {
	return len(p.ZeroPoint)
}

// Validate checks that every channel has both a zero point and a scale.
func (p Param) Validate() error {
	if len(p.ZeroPoint) != len(p.Scale) {
		return fmt.Errorf("%w: %d zero points, %d scales", ErrChannelMismatch, len(p.ZeroPoint), len(p.Scale))
	}
	return nil
}

// Equal reports whether both zero points and scales are identical.
func (p Param) Equal(other Param) bool {
	return slices.Equal(p.ZeroPoint, other.ZeroPoint) && slices.Equal(p.Scale, other.Scale)
}

// AlmostEqual reports whether p and other have identical zero points and
// scales whose accumulated absolute difference stays within Epsilon.
//
// The tolerance is shared by all channels, not applied per channel, so long
// parameter lists tolerate less drift per channel.
func (p Param) AlmostEqual(other Param) bool {
	if !slices.Equal(p.ZeroPoint, other.ZeroPoint) || len(p.Scale) != len(other.Scale) {
		return false
	}

	var errs float32
	for i := range p.Scale {
		errs += float32(math.Abs(float64(p.Scale[i] - other.Scale[i])))
		if errs > Epsilon {
			return false
		}
	}
	return true
}

// Dequantize maps the quantized value q of channel ch to a real number.
func (p Param) Dequantize(q int64, ch int) (float32, error) {
	if err := p.checkChannel(ch); err != nil {
		return 0, err
	}
	return float32(q-p.ZeroPoint[ch]) * p.Scale[ch], nil
}

// Quantize maps x to the nearest quantized value of channel ch, rounding
// half away from zero. The result is not clamped to any storage type.
func (p Param) Quantize(x float32, ch int) (int64, error) {
	if err := p.checkChannel(ch); err != nil {
		return 0, err
	}
	return int64(math.Round(float64(x/p.Scale[ch]))) + p.ZeroPoint[ch], nil
}

func (p Param) checkChannel(ch int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if ch < 0 || ch >= p.Channels() {
		return fmt.Errorf("%w: channel %d of %d", ErrChannelRange, ch, p.Channels())
	}
	return nil
}

// FixedMul approximates a real multiplier as Mul scaled by 2^-Shift, so
// quantized kernels can rescale with integer arithmetic.
type FixedMul struct {
	Mul   float32
	Shift int8
}

// RoundedMul returns Mul rounded to the nearest integer, halves away from zero.
func (m FixedMul) RoundedMul() int32 {
	return int32(math.Round(float64(m.Mul)))
}
