package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSchema reports a malformed schema definition. It is only ever
// returned at catalog build time; a build that fails with it must abort
// startup rather than expose a partially usable catalog.
var ErrInvalidSchema = errors.New("invalid schema")

// FieldProblem describes a single structural defect in a candidate record.
type FieldProblem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// StructuralError reports that a candidate record failed basic type and
// requiredness checks against its definition. A record that fails
// structurally never reaches rule evaluation.
type StructuralError struct {
	TypeName string         `json:"type_name"`
	Problems []FieldProblem `json:"problems"`
}

func (e *StructuralError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for i := range e.Problems {
		parts = append(parts, e.Problems[i].Field+": "+e.Problems[i].Reason)
	}
	return fmt.Sprintf("record of type %q is malformed: %s", e.TypeName, strings.Join(parts, "; "))
}

// RuleFailure identifies one failed validation rule and the reason it failed.
type RuleFailure struct {
	RuleID string `json:"rule_id"`
	Reason string `json:"reason"`
}

// ValidationError reports that a structurally sound record failed one or
// more validation rules. Failures appear in rule declaration order, stable
// across runs.
type ValidationError struct {
	TypeName string        `json:"type_name"`
	Failures []RuleFailure `json:"failures"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for i := range e.Failures {
		parts = append(parts, e.Failures[i].RuleID+": "+e.Failures[i].Reason)
	}
	return fmt.Sprintf("record of type %q failed validation: %s", e.TypeName, strings.Join(parts, "; "))
}
