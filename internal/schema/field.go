// Package schema defines entity shapes for the housing knowledge graph:
// field specifications, immutable type definitions, structural decoding of
// candidate records, and the cross-field validation rule engine.
package schema

import "fmt"

// ValueKind classifies the value a field may carry.
type ValueKind string

const (
	KindText           ValueKind = "text"
	KindInteger        ValueKind = "integer"
	KindBoolean        ValueKind = "boolean"
	KindBoundedInteger ValueKind = "bounded_integer"
	KindEnum           ValueKind = "enum"
)

// ValidValueKinds is the set of all valid value kinds.
var ValidValueKinds = []ValueKind{
	KindText,
	KindInteger,
	KindBoolean,
	KindBoundedInteger,
	KindEnum,
}

// IsValid returns true if the value kind is recognized.
func (k ValueKind) IsValid() bool {
	for i := range ValidValueKinds {
		if k == ValidValueKinds[i] {
			return true
		}
	}
	return false
}

// FieldSpec describes one field of an entity shape.
type FieldSpec struct {
	Name     string    `json:"name"`
	Kind     ValueKind `json:"kind"`
	Required bool      `json:"required"`

	// Hint is free-text extraction guidance surfaced to the extraction
	// engine. It is never enforced.
	Hint string `json:"hint,omitempty"`

	// Default is applied when an optional field is absent. Required fields
	// must not carry a default.
	Default any `json:"default,omitempty"`

	// Min and Max bound a bounded_integer field. Min is mandatory for that
	// kind; Max is optional.
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`

	// Values enumerates the legal values of an enum field.
	Values []string `json:"values,omitempty"`
}

// check verifies the field's construction-time invariants.
func (f *FieldSpec) check() error {
	if f.Name == "" {
		return fmt.Errorf("%w: field with empty name", ErrInvalidSchema)
	}
	if !f.Kind.IsValid() {
		return fmt.Errorf("%w: field %q has unknown kind %q", ErrInvalidSchema, f.Name, f.Kind)
	}
	if f.Required && f.Default != nil {
		return fmt.Errorf("%w: required field %q must not declare a default", ErrInvalidSchema, f.Name)
	}
	switch f.Kind {
	case KindBoundedInteger:
		if f.Min == nil {
			return fmt.Errorf("%w: bounded_integer field %q must declare a minimum", ErrInvalidSchema, f.Name)
		}
		if f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("%w: bounded_integer field %q has minimum %d above maximum %d",
				ErrInvalidSchema, f.Name, *f.Min, *f.Max)
		}
	case KindEnum:
		if len(f.Values) == 0 {
			return fmt.Errorf("%w: enum field %q must declare at least one legal value", ErrInvalidSchema, f.Name)
		}
	}
	return nil
}
