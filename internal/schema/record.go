package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Record is a fully decoded candidate record. Values are keyed by field
// name and already conform to their FieldSpec kinds. Records are read-only
// once decoded; rule evaluation never mutates them.
type Record struct {
	typeName string
	values   map[string]any
}

// TypeName returns the entity type this record was decoded against.
func (r Record) TypeName() string { return r.typeName }

// Has reports whether the named field carries a value.
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Get returns the raw decoded value of the named field.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Text returns the named field as a string.
func (r Record) Text(name string) (string, bool) {
	s, ok := r.values[name].(string)
	return s, ok
}

// Int returns the named field as an int64.
func (r Record) Int(name string) (int64, bool) {
	n, ok := r.values[name].(int64)
	return n, ok
}

// Bool returns the named field as a bool.
func (r Record) Bool(name string) (bool, bool) {
	b, ok := r.values[name].(bool)
	return b, ok
}

// Values returns a copy of the decoded field values, suitable for handing
// to the graph writer as node properties.
func (r Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Decode checks raw against the definition and produces a typed Record.
// Required fields must be present and non-null, every value must match its
// declared kind, bounded_integer bounds and enum membership must hold, and
// undeclared fields are rejected. Defaults are applied for absent optional
// fields. On failure it returns a *StructuralError listing every problem;
// decoding happens strictly before rule evaluation.
func (d *Definition) Decode(raw map[string]any) (Record, error) {
	values := make(map[string]any, len(d.Fields))
	var problems []FieldProblem

	for i := range d.Fields {
		f := &d.Fields[i]
		v, ok := raw[f.Name]
		if v == nil {
			// JSON null is treated as absent.
			ok = false
		}
		if !ok {
			if f.Required {
				problems = append(problems, FieldProblem{Field: f.Name, Reason: "required field is absent"})
				continue
			}
			if f.Default != nil {
				values[f.Name] = f.Default
			}
			continue
		}
		decoded, reason := decodeValue(f, v)
		if reason != "" {
			problems = append(problems, FieldProblem{Field: f.Name, Reason: reason})
			continue
		}
		values[f.Name] = decoded
	}

	var unknown []string
	for name := range raw {
		if _, ok := d.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		problems = append(problems, FieldProblem{Field: name, Reason: "field is not declared by this type"})
	}

	if len(problems) > 0 {
		return Record{}, &StructuralError{TypeName: d.TypeName, Problems: problems}
	}
	return Record{typeName: d.TypeName, values: values}, nil
}

// decodeValue coerces v to the field's kind, returning a non-empty reason
// on mismatch.
func decodeValue(f *FieldSpec, v any) (any, string) {
	switch f.Kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Sprintf("expected text, got %T", v)
		}
		return s, ""
	case KindBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Sprintf("expected boolean, got %T", v)
		}
		return b, ""
	case KindInteger:
		n, ok := toInt64(v)
		if !ok {
			return nil, fmt.Sprintf("expected integer, got %T", v)
		}
		return n, ""
	case KindBoundedInteger:
		n, ok := toInt64(v)
		if !ok {
			return nil, fmt.Sprintf("expected integer, got %T", v)
		}
		if n < *f.Min {
			return nil, fmt.Sprintf("value %d is below minimum %d", n, *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Sprintf("value %d is above maximum %d", n, *f.Max)
		}
		return n, ""
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Sprintf("expected one of %s, got %T", strings.Join(f.Values, ", "), v)
		}
		if !slices.Contains(f.Values, s) {
			return nil, fmt.Sprintf("value %q is not one of %s", s, strings.Join(f.Values, ", "))
		}
		return s, ""
	}
	return nil, fmt.Sprintf("unknown kind %q", f.Kind)
}

// toInt64 accepts the integer representations produced by encoding/json
// and by Go callers.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
		return 0, false
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
