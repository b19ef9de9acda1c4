// Package dtypegen loads the datatype registry table and renders the Go
// source that binds every datatype tag to its native storage type.
//
// The table is the single source of truth for both directions of the
// mapping: tag constants, type aliases, the Native constraint and the
// runtime type switch are all emitted from the same rows.
package dtypegen

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Kinds accepted in the kind column.
const (
	KindSigned   = "signed"
	KindUnsigned = "unsigned"
	KindFloat    = "float"
)

// NarrowSize is the widest storage (in bytes) that fits a scalar.
const NarrowSize = 4

// Common errors.
var (
	ErrEmptyTable     = errors.New("datatype table is empty")
	ErrDuplicateEntry = errors.New("duplicate datatype entry")
	ErrInvalidEntry   = errors.New("invalid datatype entry")
)

// Entry is one row of the registry table.
type Entry struct {
	Const   string `yaml:"const"`   // Go constant name, e.g. Float32
	ID      string `yaml:"id"`      // canonical name, e.g. float32
	GoType  string `yaml:"go"`      // native storage type expression
	Short   string `yaml:"short"`   // short name, e.g. f32
	Value   uint8  `yaml:"value"`   // serialized tag value
	Size    int    `yaml:"size"`    // storage width in bytes
	Kind    string `yaml:"kind"`    // signed, unsigned or float
	Lowest  string `yaml:"lowest"`  // lowest finite value expression
	Highest string `yaml:"highest"` // highest finite value expression
	NegInf  string `yaml:"neg_inf"` // float kinds only
	PosInf  string `yaml:"pos_inf"` // float kinds only
}

// Narrow reports whether values of the entry fit a scalar.
func (e Entry) Narrow() bool {
	return e.Size <= NarrowSize
}

// IsFloat reports whether the entry is a floating-point kind.
func (e Entry) IsFloat() bool {
	return e.Kind == KindFloat
}

// Table is the decoded registry file.
type Table struct {
	Imports   []string `yaml:"imports"`
	Datatypes []Entry  `yaml:"datatypes"`
}

// Narrow returns the entries whose storage fits a scalar, in table order.
func (t *Table) Narrow() []Entry {
	var out []Entry
	for _, e := range t.Datatypes {
		if e.Narrow() {
			out = append(out, e)
		}
	}
	return out
}

// Parse decodes a registry table and validates it.
// Unknown keys are rejected so typos in the table cannot silently drop a column.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.UnmarshalWithOptions(data, &t, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode datatype table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads and parses the registry table at path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read datatype table: %w", err)
	}
	return Parse(data)
}

// Validate checks that the table describes a bijection: every constant, name,
// short name, Go type and tag value appears exactly once.
func (t *Table) Validate() error {
	if len(t.Datatypes) == 0 {
		return ErrEmptyTable
	}

	seen := map[string]map[string]bool{
		"const": {}, "id": {}, "go": {}, "short": {}, "value": {},
	}
	for i, e := range t.Datatypes {
		if e.Const == "" || e.ID == "" || e.GoType == "" || e.Short == "" {
			return fmt.Errorf("%w: row %d: const, id, go and short are required", ErrInvalidEntry, i)
		}
		switch e.Size {
		case 1, 2, 4, 8:
		default:
			return fmt.Errorf("%w: %s: size %d (must be 1, 2, 4 or 8)", ErrInvalidEntry, e.ID, e.Size)
		}
		switch e.Kind {
		case KindSigned, KindUnsigned:
			if e.NegInf != "" || e.PosInf != "" {
				return fmt.Errorf("%w: %s: infinities on a non-float kind", ErrInvalidEntry, e.ID)
			}
		case KindFloat:
			if e.NegInf == "" || e.PosInf == "" {
				return fmt.Errorf("%w: %s: float kind needs neg_inf and pos_inf", ErrInvalidEntry, e.ID)
			}
		default:
			return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidEntry, e.ID, e.Kind)
		}
		if e.Lowest == "" || e.Highest == "" {
			return fmt.Errorf("%w: %s: lowest and highest are required", ErrInvalidEntry, e.ID)
		}

		keys := map[string]string{
			"const": e.Const,
			"id":    e.ID,
			"go":    e.GoType,
			"short": e.Short,
			"value": fmt.Sprint(e.Value),
		}
		for column, key := range keys {
			if seen[column][key] {
				return fmt.Errorf("%w: %s %q", ErrDuplicateEntry, column, key)
			}
			seen[column][key] = true
		}
	}
	return nil
}
