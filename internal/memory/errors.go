package memory

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownLocation = errors.New("unknown memory location")
	ErrUnknownDataType = errors.New("memory range has an unregistered datatype")
	ErrOutOfBounds     = errors.New("memory range extends beyond its region")
	ErrRangeOverlap    = errors.New("memory ranges overlap")
	ErrMisaligned      = errors.New("memory range size is not a multiple of its element size")
)

// ValidationError describes a memory range that failed validation.
type ValidationError struct {
	Err    error // One of the sentinel errors above
	Index  int   // Index of the offending range
	Index2 int   // Index of the second range (overlap only), otherwise -1
	Range  Range
	Range2 Range
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Index2 >= 0 {
		return fmt.Sprintf("%v: ranges %d %v and %d %v", e.Err, e.Index, e.Range, e.Index2, e.Range2)
	}
	return fmt.Sprintf("%v: range %d %v", e.Err, e.Index, e.Range)
}

// Unwrap returns the sentinel error so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
