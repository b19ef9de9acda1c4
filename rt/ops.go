// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package rt

import "github.com/born-ml/rtypes/internal/ops"

// Binary operators.
const (
	BinaryAdd        BinaryOp = ops.BinaryAdd
	BinarySub        BinaryOp = ops.BinarySub
	BinaryMul        BinaryOp = ops.BinaryMul
	BinaryDiv        BinaryOp = ops.BinaryDiv
	BinaryMin        BinaryOp = ops.BinaryMin
	BinaryMax        BinaryOp = ops.BinaryMax
	BinaryPow        BinaryOp = ops.BinaryPow
	BinaryFloorDiv   BinaryOp = ops.BinaryFloorDiv
	BinaryFloorMod   BinaryOp = ops.BinaryFloorMod
	BinaryBitwiseAnd BinaryOp = ops.BinaryBitwiseAnd
	BinaryBitwiseOr  BinaryOp = ops.BinaryBitwiseOr
	BinaryBitwiseXor BinaryOp = ops.BinaryBitwiseXor
	BinaryLogicalAnd BinaryOp = ops.BinaryLogicalAnd
	BinaryLogicalOr  BinaryOp = ops.BinaryLogicalOr
	BinaryLogicalXor BinaryOp = ops.BinaryLogicalXor
)

// Unary operators.
const (
	UnaryAbs        UnaryOp = ops.UnaryAbs
	UnaryCeil       UnaryOp = ops.UnaryCeil
	UnaryCos        UnaryOp = ops.UnaryCos
	UnaryExp        UnaryOp = ops.UnaryExp
	UnaryFloor      UnaryOp = ops.UnaryFloor
	UnaryLog        UnaryOp = ops.UnaryLog
	UnaryNeg        UnaryOp = ops.UnaryNeg
	UnaryRound      UnaryOp = ops.UnaryRound
	UnaryRsqrt      UnaryOp = ops.UnaryRsqrt
	UnarySin        UnaryOp = ops.UnarySin
	UnarySqrt       UnaryOp = ops.UnarySqrt
	UnarySquare     UnaryOp = ops.UnarySquare
	UnaryTanh       UnaryOp = ops.UnaryTanh
	UnaryBitwiseNot UnaryOp = ops.UnaryBitwiseNot
	UnaryLogicalNot UnaryOp = ops.UnaryLogicalNot
)

// Reduce operators.
const (
	ReduceMean ReduceOp = ops.ReduceMean
	ReduceMin  ReduceOp = ops.ReduceMin
	ReduceMax  ReduceOp = ops.ReduceMax
	ReduceSum  ReduceOp = ops.ReduceSum
)

// Image resize modes.
const (
	ImageResizeBilinear        ImageResizeMode = ops.ImageResizeBilinear
	ImageResizeNearestNeighbor ImageResizeMode = ops.ImageResizeNearestNeighbor
)

// BinaryOps returns every binary operator.
func BinaryOps() []BinaryOp { return ops.BinaryOps() }

// UnaryOps returns every unary operator.
func UnaryOps() []UnaryOp { return ops.UnaryOps() }

// ReduceOps returns every reduce operator.
func ReduceOps() []ReduceOp { return ops.ReduceOps() }

// ImageResizeModes returns every image resize mode.
func ImageResizeModes() []ImageResizeMode { return ops.ImageResizeModes() }
