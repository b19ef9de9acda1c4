// Package scalar provides a fixed-size tagged container for a single value
// of any narrow datatype.
//
// A Scalar is four bytes of little-endian storage plus the datatype tag that
// says how to read them. Reads are checked: asking for a type other than the
// stored one fails with ErrTypeMismatch instead of reinterpreting the bytes.
package scalar

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/rtypes/internal/datatype"
)

// StorageSize is the number of storage bytes in every scalar.
const StorageSize = 4

// Common errors.
var (
	ErrTypeMismatch    = errors.New("scalar type mismatch")
	ErrUnsupportedType = errors.New("datatype does not fit in a scalar")
)

// Scalar holds one value together with its datatype tag.
// The zero value is int8(0).
type Scalar struct {
	dtype   datatype.DataType
	storage [StorageSize]byte
}

// New stores v in a scalar tagged with T's datatype.
func New[T datatype.Narrow](v T) Scalar {
	s := Scalar{dtype: datatype.TypeOf[T]()}
	if _, err := binary.Encode(s.storage[:], binary.LittleEndian, v); err != nil {
		// Narrow guarantees the value fits.
		panic(fmt.Sprintf("scalar: encode %s: %v", s.dtype, err))
	}
	return s
}

// FromInt8 returns an int8 scalar.
func FromInt8(v int8) Scalar { return New(v) }

// FromUint8 returns a uint8 scalar.
func FromUint8(v uint8) Scalar { return New(v) }

// FromFloat32 returns a float32 scalar.
func FromFloat32(v float32) Scalar { return New(v) }

// FromBytes builds a scalar from raw little-endian storage, as found in
// serialized operator descriptors. Bytes beyond the datatype's width are kept
// as given and take part in equality.
func FromBytes(dt datatype.DataType, storage [StorageSize]byte) (Scalar, error) {
	if !dt.IsNarrow() {
		return Scalar{}, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
	}
	return Scalar{dtype: dt, storage: storage}, nil
}

// As reads the stored value as T.
func As[T datatype.Narrow](s Scalar) (T, error) {
	var v T
	if want := datatype.TypeOf[T](); want != s.dtype {
		return v, fmt.Errorf("%w: stored %s, requested %s", ErrTypeMismatch, s.dtype, want)
	}
	if _, err := binary.Decode(s.storage[:], binary.LittleEndian, &v); err != nil {
		return v, fmt.Errorf("scalar: decode %s: %w", s.dtype, err)
	}
	return v, nil
}

// MustAs is like As but panics on a type mismatch.
func MustAs[T datatype.Narrow](s Scalar) T {
	v, err := As[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Type returns the datatype tag.
func (s Scalar) Type() datatype.DataType {
	return s.dtype
}

// Bytes returns a copy of the raw storage.
func (s Scalar) Bytes() [StorageSize]byte {
	return s.storage
}

// Equal reports whether both scalars have the same tag and the same storage
// bytes. It compares bits, not numeric values: float32 +0 and -0 differ, and
// identical NaN payloads are equal.
func (s Scalar) Equal(other Scalar) bool {
	return s == other
}

// Float64 widens the stored value to float64.
func (s Scalar) Float64() float64 {
	le := binary.LittleEndian
	switch s.dtype {
	case datatype.Int8:
		return float64(int8(s.storage[0]))
	case datatype.Int16:
		return float64(int16(le.Uint16(s.storage[:])))
	case datatype.Int32:
		return float64(int32(le.Uint32(s.storage[:])))
	case datatype.Uint8:
		return float64(s.storage[0])
	case datatype.Uint16:
		return float64(le.Uint16(s.storage[:]))
	case datatype.Uint32:
		return float64(le.Uint32(s.storage[:]))
	case datatype.Float16:
		return float64(float16.Frombits(le.Uint16(s.storage[:])).Float32())
	case datatype.Float32:
		return float64(math.Float32frombits(le.Uint32(s.storage[:])))
	case datatype.BFloat16:
		return float64(bfloat16.BFloat16(le.Uint16(s.storage[:])).Float32())
	}
	return math.NaN()
}

// String formats the scalar as "dtype(value)", e.g. "float32(1.5)".
func (s Scalar) String() string {
	var v string
	switch {
	case s.dtype.IsFloat():
		v = strconv.FormatFloat(s.Float64(), 'g', -1, 32)
	case s.dtype.IsSigned():
		v = strconv.FormatInt(int64(s.Float64()), 10)
	default:
		v = strconv.FormatUint(uint64(s.Float64()), 10)
	}
	return s.dtype.String() + "(" + v + ")"
}
