// Package ops enumerates the operator kinds that appear in computation
// graphs. Only the identity of each operator lives here; kernels implement
// the behavior.
//
// Every enumeration projects to a stable name (e.g. "binary_add") used in
// logs and debug dumps. Values outside the known set print as "unknown".
package ops

import (
	"errors"
	"fmt"
)

// Unknown is the name of any value outside an enumeration.
const Unknown = "unknown"

// ErrUnknownOp is returned when parsing an unrecognized operator name.
var ErrUnknownOp = errors.New("unknown operator")

// BinaryOp is an elementwise binary operator.
type BinaryOp uint8

// Binary operators.
const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMin
	BinaryMax
	BinaryPow
	BinaryFloorDiv
	BinaryFloorMod
	BinaryBitwiseAnd
	BinaryBitwiseOr
	BinaryBitwiseXor
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryLogicalXor
)

var binaryNames = [...]string{
	BinaryAdd:        "binary_add",
	BinarySub:        "binary_sub",
	BinaryMul:        "binary_mul",
	BinaryDiv:        "binary_div",
	BinaryMin:        "binary_min",
	BinaryMax:        "binary_max",
	BinaryPow:        "binary_pow",
	BinaryFloorDiv:   "binary_floor_div",
	BinaryFloorMod:   "binary_floor_mod",
	BinaryBitwiseAnd: "binary_bitwise_and",
	BinaryBitwiseOr:  "binary_bitwise_or",
	BinaryBitwiseXor: "binary_bitwise_xor",
	BinaryLogicalAnd: "binary_logical_and",
	BinaryLogicalOr:  "binary_logical_or",
	BinaryLogicalXor: "binary_logical_xor",
}

func (op BinaryOp) String() string { return name(binaryNames[:], op) }

// ParseBinaryOp resolves a name such as "binary_add".
func ParseBinaryOp(s string) (BinaryOp, error) { return parse[BinaryOp](binaryNames[:], s) }

// BinaryOps returns every binary operator in declaration order.
func BinaryOps() []BinaryOp { return all[BinaryOp](binaryNames[:]) }

// UnaryOp is an elementwise unary operator.
type UnaryOp uint8

// Unary operators.
const (
	UnaryAbs UnaryOp = iota
	UnaryCeil
	UnaryCos
	UnaryExp
	UnaryFloor
	UnaryLog
	UnaryNeg
	UnaryRound
	UnaryRsqrt
	UnarySin
	UnarySqrt
	UnarySquare
	UnaryTanh
	UnaryBitwiseNot
	UnaryLogicalNot
)

var unaryNames = [...]string{
	UnaryAbs:        "unary_abs",
	UnaryCeil:       "unary_ceil",
	UnaryCos:        "unary_cos",
	UnaryExp:        "unary_exp",
	UnaryFloor:      "unary_floor",
	UnaryLog:        "unary_log",
	UnaryNeg:        "unary_neg",
	UnaryRound:      "unary_round",
	UnaryRsqrt:      "unary_rsqrt",
	UnarySin:        "unary_sin",
	UnarySqrt:       "unary_sqrt",
	UnarySquare:     "unary_square",
	UnaryTanh:       "unary_tanh",
	UnaryBitwiseNot: "unary_bitwise_not",
	UnaryLogicalNot: "unary_logical_not",
}

func (op UnaryOp) String() string { return name(unaryNames[:], op) }

// ParseUnaryOp resolves a name such as "unary_abs".
func ParseUnaryOp(s string) (UnaryOp, error) { return parse[UnaryOp](unaryNames[:], s) }

// UnaryOps returns every unary operator in declaration order.
func UnaryOps() []UnaryOp { return all[UnaryOp](unaryNames[:]) }

// ReduceOp combines the elements along reduced axes.
type ReduceOp uint8

// Reduce operators.
const (
	ReduceMean ReduceOp = iota
	ReduceMin
	ReduceMax
	ReduceSum
)

var reduceNames = [...]string{
	ReduceMean: "reduce_mean",
	ReduceMin:  "reduce_min",
	ReduceMax:  "reduce_max",
	ReduceSum:  "reduce_sum",
}

func (op ReduceOp) String() string { return name(reduceNames[:], op) }

// ParseReduceOp resolves a name such as "reduce_sum".
func ParseReduceOp(s string) (ReduceOp, error) { return parse[ReduceOp](reduceNames[:], s) }

// ReduceOps returns every reduce operator in declaration order.
func ReduceOps() []ReduceOp { return all[ReduceOp](reduceNames[:]) }

// ImageResizeMode selects the interpolation of an image resize.
type ImageResizeMode uint8

// Resize modes.
const (
	ImageResizeBilinear ImageResizeMode = iota
	ImageResizeNearestNeighbor
)

var resizeNames = [...]string{
	ImageResizeBilinear:        "image_resize_bilinear",
	ImageResizeNearestNeighbor: "image_resize_nearest_neighbor",
}

func (m ImageResizeMode) String() string { return name(resizeNames[:], m) }

// ParseImageResizeMode resolves a name such as "image_resize_bilinear".
func ParseImageResizeMode(s string) (ImageResizeMode, error) {
	return parse[ImageResizeMode](resizeNames[:], s)
}

// ImageResizeModes returns every resize mode in declaration order.
func ImageResizeModes() []ImageResizeMode { return all[ImageResizeMode](resizeNames[:]) }

type enum interface {
	~uint8
}

func name[E enum](names []string, v E) string {
	if int(v) < len(names) {
		return names[v]
	}
	return Unknown
}

func parse[E enum](names []string, s string) (E, error) {
	for i, n := range names {
		if n == s {
			return E(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

func all[E enum](names []string) []E {
	out := make([]E, len(names))
	for i := range names {
		out[i] = E(i)
	}
	return out
}
