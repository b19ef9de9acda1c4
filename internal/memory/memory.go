// Package memory describes byte ranges inside the logical memory regions of
// a loaded model. A Range never owns memory; an allocator or loader resolves
// it to an address.
package memory

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/born-ml/rtypes/internal/datatype"
)

// Location is a logical memory region.
type Location uint8

// Memory locations.
const (
	Input  Location = iota // model inputs
	Output                 // model outputs
	RData                  // read-only data such as weights
	Data                   // scratch memory shared by kernels
)

var locationNames = [...]string{
	Input:  "input",
	Output: "output",
	RData:  "rdata",
	Data:   "data",
}

// String returns the location name, e.g. "rdata".
func (l Location) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return "Location(" + strconv.Itoa(int(l)) + ")"
}

// ParseLocation resolves a location name.
func ParseLocation(name string) (Location, error) {
	for i, n := range locationNames {
		if n == name {
			return Location(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
}

// MarshalText implements encoding.TextMarshaler.
func (l Location) MarshalText() ([]byte, error) {
	if int(l) >= len(locationNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLocation, uint8(l))
	}
	return []byte(locationNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	v, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Range is a contiguous span of Size bytes starting at Start within one
// memory location, holding elements of DataType.
type Range struct {
	Location Location          `yaml:"location"`
	DataType datatype.DataType `yaml:"datatype"`
	Start    uint32            `yaml:"start"`
	Size     uint32            `yaml:"size"`
}

// End returns the offset one past the last byte. It is computed in 64 bits
// so ranges touching the top of the address space do not wrap.
func (r Range) End() uint64 {
	return uint64(r.Start) + uint64(r.Size)
}

// Elements returns the number of whole elements in the range.
func (r Range) Elements() uint32 {
	size := r.DataType.Size()
	if size == 0 {
		return 0
	}
	return r.Size / uint32(size)
}

// Overlaps reports whether r and other share at least one byte of the same
// location. Empty ranges overlap nothing.
func (r Range) Overlaps(other Range) bool {
	if r.Location != other.Location || r.Size == 0 || other.Size == 0 {
		return false
	}
	return uint64(r.Start) < other.End() && uint64(other.Start) < r.End()
}

// String formats the range as "rdata[16:48] float32".
func (r Range) String() string {
	return fmt.Sprintf("%s[%d:%d] %s", r.Location, r.Start, r.End(), r.DataType)
}

// ValidateRanges checks that no two ranges in the same location overlap and
// that every range fits its location. Locations missing from capacity are
// not bounds-checked. Ranges in Data are allowed to overlap because scratch
// memory is reused between kernels.
func ValidateRanges(ranges []Range, capacity map[Location]uint32) error {
	order := make([]int, len(ranges))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ra, rb := ranges[a], ranges[b]
		if c := cmp.Compare(ra.Location, rb.Location); c != 0 {
			return c
		}
		return cmp.Compare(ra.Start, rb.Start)
	})

	for k, i := range order {
		r := ranges[i]
		if int(r.Location) >= len(locationNames) {
			return &ValidationError{Err: ErrUnknownLocation, Index: i, Index2: -1, Range: r}
		}
		if !r.DataType.Valid() {
			return &ValidationError{Err: ErrUnknownDataType, Index: i, Index2: -1, Range: r}
		}
		if r.Size%uint32(r.DataType.Size()) != 0 {
			return &ValidationError{Err: ErrMisaligned, Index: i, Index2: -1, Range: r}
		}
		if limit, ok := capacity[r.Location]; ok && r.End() > uint64(limit) {
			return &ValidationError{Err: ErrOutOfBounds, Index: i, Index2: -1, Range: r}
		}

		if r.Location == Data || k == len(order)-1 {
			continue
		}
		// Sorted by start: only ranges starting before r ends can overlap it.
		for _, j := range order[k+1:] {
			next := ranges[j]
			if next.Location != r.Location || uint64(next.Start) >= r.End() {
				break
			}
			if r.Overlaps(next) {
				return &ValidationError{Err: ErrRangeOverlap, Index: i, Index2: j, Range: r, Range2: next}
			}
		}
	}
	return nil
}
