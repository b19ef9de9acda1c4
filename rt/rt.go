// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rt provides the public value types shared by operator descriptors
// and buffer descriptions of the runtime:
//   - DataType: element datatype tags and their native Go types
//   - Scalar: a four-byte tagged value
//   - Padding, ValueRange, RuntimeShape, RuntimePaddings: tensor geometry
//   - QuantParam, FixedMul: quantization parameters
//   - MemoryRange, MemoryLocation: descriptors of buffers inside model memory
//   - BinaryOp, UnaryOp, ReduceOp, ImageResizeMode: operator kinds
//
// Example:
//
//	dt := rt.TypeOf[float32]()           // rt.Float32
//	s := rt.NewScalar(float32(0.5))
//	v, err := rt.ScalarAs[float32](s)   // 0.5, nil
//	r := rt.FullRange[float32]()         // [-Inf, +Inf]
package rt

import (
	"github.com/born-ml/rtypes/internal/datatype"
	"github.com/born-ml/rtypes/internal/geometry"
	"github.com/born-ml/rtypes/internal/memory"
	"github.com/born-ml/rtypes/internal/ops"
	"github.com/born-ml/rtypes/internal/quant"
	"github.com/born-ml/rtypes/internal/scalar"
)

// Type aliases for public API

// DataType is an element datatype tag.
type DataType = datatype.DataType

// Native is the set of Go types with a datatype tag.
type Native = datatype.Native

// Narrow is the subset of Native that fits in a Scalar.
type Narrow = datatype.Narrow

// Datatype constants.
const (
	Int8     DataType = datatype.Int8
	Int16    DataType = datatype.Int16
	Int32    DataType = datatype.Int32
	Int64    DataType = datatype.Int64
	Uint8    DataType = datatype.Uint8
	Uint16   DataType = datatype.Uint16
	Uint32   DataType = datatype.Uint32
	Uint64   DataType = datatype.Uint64
	Float16  DataType = datatype.Float16
	Float32  DataType = datatype.Float32
	Float64  DataType = datatype.Float64
	BFloat16 DataType = datatype.BFloat16
)

// Native storage types that have no builtin Go spelling.
type (
	Float16Type  = datatype.Float16Type
	BFloat16Type = datatype.BFloat16Type
)

// TypeOf returns the datatype tag of T.
func TypeOf[T Native]() DataType {
	return datatype.TypeOf[T]()
}

// ParseDataType resolves "float32" or "f32" to a tag.
func ParseDataType(name string) (DataType, error) {
	return datatype.Parse(name)
}

// DataTypes returns every registered tag.
func DataTypes() []DataType {
	return datatype.All()
}

// Scalar holds a single value of a narrow datatype.
type Scalar = scalar.Scalar

// NewScalar stores v in a Scalar.
func NewScalar[T Narrow](v T) Scalar {
	return scalar.New(v)
}

// ScalarAs reads s as T, failing with ErrTypeMismatch if s holds another type.
func ScalarAs[T Narrow](s Scalar) (T, error) {
	return scalar.As[T](s)
}

// Scalar errors.
var (
	ErrTypeMismatch    = scalar.ErrTypeMismatch
	ErrUnsupportedType = scalar.ErrUnsupportedType
)

// Padding is the amount added before and after one axis.
type Padding = geometry.Padding

// ValueRange bounds the values a tensor may hold.
type ValueRange[T Native] = geometry.ValueRange[T]

// RuntimeShape is a fixed rank-4 shape.
type RuntimeShape = geometry.RuntimeShape

// RuntimePaddings holds one Padding per axis of a RuntimeShape.
type RuntimePaddings = geometry.RuntimePaddings

// ZeroPadding returns the padding identity.
func ZeroPadding() Padding {
	return geometry.ZeroPadding()
}

// FullRange returns the widest range of T.
func FullRange[T Native]() ValueRange[T] {
	return geometry.FullRange[T]()
}

// NonnegativeRange returns [0, max(T)].
func NonnegativeRange[T Native]() ValueRange[T] {
	return geometry.NonnegativeRange[T]()
}

// QuantParam holds per-channel zero points and scales.
type QuantParam = quant.Param

// FixedMul is a fixed-point multiply-shift.
type FixedMul = quant.FixedMul

// MemoryLocation is a logical memory region.
type MemoryLocation = memory.Location

// Memory locations.
const (
	MemInput  MemoryLocation = memory.Input
	MemOutput MemoryLocation = memory.Output
	MemRData  MemoryLocation = memory.RData
	MemData   MemoryLocation = memory.Data
)

// MemoryRange describes a byte span inside a memory location.
type MemoryRange = memory.Range

// Operator kinds.
type (
	BinaryOp        = ops.BinaryOp
	UnaryOp         = ops.UnaryOp
	ReduceOp        = ops.ReduceOp
	ImageResizeMode = ops.ImageResizeMode
)
