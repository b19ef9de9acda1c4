// Package datatype is the registry of element datatypes known to the runtime.
//
// Tags and their native Go storage types are generated from datatypes.yaml,
// so both directions of the mapping always come from the same rows:
//
//	datatype.TypeOf[float32]()   // Float32, resolved from the type parameter
//	var x datatype.Float32Type   // float32, resolved from the tag
//
// Requesting the tag of a type outside the table does not compile, because
// TypeOf is constrained by Native.
package datatype

//go:generate go run ../../cmd/dtypegen -in datatypes.yaml -out gen_datatypes.go -pkg datatype

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DataType is an element datatype tag. Its numeric value is stable and is
// what serialized models store.
type DataType uint8

// ErrUnknownDataType is returned when a name or value has no registered tag.
var ErrUnknownDataType = errors.New("unknown datatype")

type kind uint8

const (
	kindSigned kind = iota + 1
	kindUnsigned
	kindFloat
)

type info struct {
	id      string
	short   string
	size    int
	kind    kind
	native  reflect.Type
	lowest  any
	highest any
	negInf  any
	posInf  any
}

// TypeOf returns the tag of the native type T.
//
// The lookup is checked at compile time (T must satisfy Native) but resolved
// at run time: Go generics cannot yield a constant per type argument, so each
// call converts a zero T to an interface and runs the generated type switch in
// Of. The zero value needs no allocation, so the cost is a few comparisons.
// Callers on hot paths should resolve the tag once and keep it.
func TypeOf[T Native]() DataType {
	var zero T
	dt, ok := Of(zero)
	if !ok {
		panic(fmt.Sprintf("datatype: %T satisfies Native but has no tag", zero))
	}
	return dt
}

// Limits returns the lowest and highest finite values representable by T.
func Limits[T Native]() (lowest, highest T) {
	r := registry[TypeOf[T]()]
	return r.lowest.(T), r.highest.(T)
}

// Infinities returns negative and positive infinity for floating-point T.
// It reports false for integer types.
func Infinities[T Native]() (neg, pos T, ok bool) {
	r := registry[TypeOf[T]()]
	if r.kind != kindFloat {
		return neg, pos, false
	}
	return r.negInf.(T), r.posInf.(T), true
}

// All returns every registered tag in ascending order.
func All() []DataType {
	out := make([]DataType, 0, len(registry))
	for i := range registry {
		if dt := DataType(i); dt.Valid() {
			out = append(out, dt)
		}
	}
	return out
}

// Valid reports whether dt is a registered tag.
func (dt DataType) Valid() bool {
	return int(dt) < len(registry) && registry[dt].id != ""
}

// String returns the canonical name of the datatype, e.g. "float32".
func (dt DataType) String() string {
	if !dt.Valid() {
		return "DataType(" + strconv.Itoa(int(dt)) + ")"
	}
	return registry[dt].id
}

// ShortName returns the abbreviated name, e.g. "f32".
func (dt DataType) ShortName() string {
	if !dt.Valid() {
		return "unknown"
	}
	return registry[dt].short
}

// Size returns the storage width in bytes, or 0 for an unregistered tag.
func (dt DataType) Size() int {
	if !dt.Valid() {
		return 0
	}
	return registry[dt].size
}

// NativeType returns the Go storage type of the tag, or nil if unregistered.
func (dt DataType) NativeType() reflect.Type {
	if !dt.Valid() {
		return nil
	}
	return registry[dt].native
}

// IsFloat reports whether the datatype is floating point.
func (dt DataType) IsFloat() bool {
	return dt.Valid() && registry[dt].kind == kindFloat
}

// IsSigned reports whether the datatype can hold negative values.
func (dt DataType) IsSigned() bool {
	return dt.Valid() && registry[dt].kind != kindUnsigned
}

// IsNarrow reports whether values of the datatype fit in a scalar.
func (dt DataType) IsNarrow() bool {
	return dt.Valid() && registry[dt].size <= 4
}

// Parse resolves a canonical or short name ("float32", "f32").
// Matching is case-insensitive.
func Parse(name string) (DataType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, dt := range All() {
		if registry[dt].id == name || registry[dt].short == name {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (dt DataType) MarshalText() ([]byte, error) {
	if !dt.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDataType, uint8(dt))
	}
	return []byte(registry[dt].id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DataType) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}
