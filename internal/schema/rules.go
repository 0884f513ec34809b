package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Rule is a pure predicate over a fully decoded record. Rules are verified
// against their definition at catalog build time and evaluated after
// structural decoding. Evaluation is side-effect-free and record-local, so
// rules on the same definition are independent of one another and repeated
// evaluation yields the same verdict.
type Rule interface {
	// ID identifies the rule in failure diagnostics.
	ID() string

	// Verify reports whether the rule is well-formed for def. Failures
	// wrap ErrInvalidSchema and abort the catalog build.
	Verify(def *Definition) error

	// Evaluate returns nil when rec satisfies the rule, or an error whose
	// message explains the failure.
	Evaluate(rec Record) error
}

// RequireWhen is the discriminated-requirement rule family: when the
// discriminant field equals Value, every field in Then must be present.
// An absent or null discriminant fails the rule outright; silently skipping
// the check would let required-for-some-kind fields go unvalidated.
type RequireWhen struct {
	Discriminant string
	Value        string
	Then         []string
}

// ID implements Rule.
func (r RequireWhen) ID() string {
	return fmt.Sprintf("require_when:%s=%s", r.Discriminant, r.Value)
}

// Verify implements Rule.
func (r RequireWhen) Verify(def *Definition) error {
	if _, ok := def.Field(r.Discriminant); !ok {
		return fmt.Errorf("%w: rule %s: discriminant %q is not a declared field", ErrInvalidSchema, r.ID(), r.Discriminant)
	}
	if len(r.Then) == 0 {
		return fmt.Errorf("%w: rule %s: no required fields named", ErrInvalidSchema, r.ID())
	}
	for _, name := range r.Then {
		if _, ok := def.Field(name); !ok {
			return fmt.Errorf("%w: rule %s: %q is not a declared field", ErrInvalidSchema, r.ID(), name)
		}
	}
	return nil
}

// Evaluate implements Rule.
func (r RequireWhen) Evaluate(rec Record) error {
	got, ok := rec.Text(r.Discriminant)
	if !ok {
		return fmt.Errorf("discriminant %q is absent", r.Discriminant)
	}
	if got != r.Value {
		return nil
	}
	var missing []string
	for _, name := range r.Then {
		if !rec.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s=%s requires %s", r.Discriminant, r.Value, strings.Join(missing, ", "))
	}
	return nil
}

// AllowWhen is the categorical-consistency rule family: Field is legal only
// when the discriminant's value is in When; outside that set it must be
// absent. Min, when set, bounds the value whenever it is legally present.
// If the discriminant is absent while Field is present, the rule fails,
// since the field's legality cannot be judged.
type AllowWhen struct {
	Field        string
	Discriminant string
	When         []string
	Min          *int64
}

// ID implements Rule.
func (r AllowWhen) ID() string {
	return fmt.Sprintf("allow_when:%s[%s]", r.Field, r.Discriminant)
}

// Verify implements Rule.
func (r AllowWhen) Verify(def *Definition) error {
	f, ok := def.Field(r.Field)
	if !ok {
		return fmt.Errorf("%w: rule %s: %q is not a declared field", ErrInvalidSchema, r.ID(), r.Field)
	}
	if _, ok := def.Field(r.Discriminant); !ok {
		return fmt.Errorf("%w: rule %s: discriminant %q is not a declared field", ErrInvalidSchema, r.ID(), r.Discriminant)
	}
	if len(r.When) == 0 {
		return fmt.Errorf("%w: rule %s: no discriminant values named", ErrInvalidSchema, r.ID())
	}
	if r.Min != nil && f.Kind != KindInteger && f.Kind != KindBoundedInteger {
		return fmt.Errorf("%w: rule %s: minimum declared for non-integer field %q", ErrInvalidSchema, r.ID(), r.Field)
	}
	return nil
}

// Evaluate implements Rule.
func (r AllowWhen) Evaluate(rec Record) error {
	present := rec.Has(r.Field)
	got, ok := rec.Text(r.Discriminant)
	if !ok {
		if present {
			return fmt.Errorf("%q is present but discriminant %q is absent", r.Field, r.Discriminant)
		}
		return nil
	}
	if !slices.Contains(r.When, got) {
		if present {
			return fmt.Errorf("%q must be absent when %s=%s", r.Field, r.Discriminant, got)
		}
		return nil
	}
	if present && r.Min != nil {
		n, _ := rec.Int(r.Field)
		if n < *r.Min {
			return fmt.Errorf("%q is %d, below minimum %d for %s=%s", r.Field, n, *r.Min, r.Discriminant, got)
		}
	}
	return nil
}
