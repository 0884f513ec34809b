package schema

import "fmt"

// Definition is an immutable description of one entity shape: its stable
// type name, ordered field list, and the validation rules that apply to
// fully decoded records of the shape. Definitions are authored once per
// catalog version and never mutated by consumers.
type Definition struct {
	TypeName string
	Fields   []FieldSpec
	Rules    []Rule
}

// Check verifies the definition's construction-time invariants: a non-empty
// type name, a non-empty field list with unique names, well-formed field
// specs, and rules that reference only declared fields. Any violation is
// reported as ErrInvalidSchema so malformed shapes fail at catalog build
// time, never at request time.
func (d *Definition) Check() error {
	if d.TypeName == "" {
		return fmt.Errorf("%w: definition with empty type name", ErrInvalidSchema)
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("%w: type %q declares no fields", ErrInvalidSchema, d.TypeName)
	}
	seen := make(map[string]bool, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		if seen[f.Name] {
			return fmt.Errorf("%w: type %q declares field %q more than once", ErrInvalidSchema, d.TypeName, f.Name)
		}
		seen[f.Name] = true
		if err := f.check(); err != nil {
			return fmt.Errorf("type %q: %w", d.TypeName, err)
		}
	}
	for _, rule := range d.Rules {
		if err := rule.Verify(d); err != nil {
			return fmt.Errorf("type %q: %w", d.TypeName, err)
		}
	}
	return nil
}

// Field returns the spec for the named field.
func (d *Definition) Field(name string) (FieldSpec, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return d.Fields[i], true
		}
	}
	return FieldSpec{}, false
}
