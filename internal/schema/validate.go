package schema

import "fmt"

// Validate runs every rule declared on the definition against rec, in
// declaration order. It returns nil on success or a *ValidationError
// carrying the ordered failures. Validation never mutates the record;
// running it twice on the same record yields identical results. Callers
// decide how to react to failure (reject, re-extract, log and drop).
func (d *Definition) Validate(rec Record) error {
	if rec.TypeName() != d.TypeName {
		return fmt.Errorf("record of type %q validated against definition %q", rec.TypeName(), d.TypeName)
	}
	var failures []RuleFailure
	for _, rule := range d.Rules {
		if err := rule.Evaluate(rec); err != nil {
			failures = append(failures, RuleFailure{RuleID: rule.ID(), Reason: err.Error()})
		}
	}
	if len(failures) > 0 {
		return &ValidationError{TypeName: d.TypeName, Failures: failures}
	}
	return nil
}
