package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskg/hallgraph/internal/schema"
)

func TestValidate_FailuresInDeclarationOrder(t *testing.T) {
	def := schema.Definition{
		TypeName: "Ordered",
		Fields: []schema.FieldSpec{
			{Name: "kind", Kind: schema.KindText},
			{Name: "a", Kind: schema.KindText},
			{Name: "b", Kind: schema.KindText},
		},
		Rules: []schema.Rule{
			schema.RequireWhen{Discriminant: "kind", Value: "x", Then: []string{"a"}},
			schema.RequireWhen{Discriminant: "kind", Value: "x", Then: []string{"b"}},
		},
	}
	require.NoError(t, def.Check())

	rec, err := def.Decode(map[string]any{"kind": "x"})
	require.NoError(t, err)

	failures := ruleFailures(t, def.Validate(rec))
	require.Len(t, failures, 2)
	assert.Contains(t, failures[0].Reason, "requires a")
	assert.Contains(t, failures[1].Reason, "requires b")
}

func TestValidate_Idempotent(t *testing.T) {
	def := occupantDefinition()

	rec, err := def.Decode(map[string]any{
		"role_id":     "r-1",
		"affiliation": "employee",
	})
	require.NoError(t, err)

	first := def.Validate(rec)
	second := def.Validate(rec)

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, ruleFailures(t, first), ruleFailures(t, second),
		"repeated validation must yield the identical ordered failure list")
}

func TestValidate_DoesNotMutateRecord(t *testing.T) {
	def := occupantDefinition()

	rec, err := def.Decode(map[string]any{
		"role_id":     "r-1",
		"affiliation": "student",
	})
	require.NoError(t, err)

	before := rec.Values()
	_ = def.Validate(rec)
	assert.Equal(t, before, rec.Values())
}

func TestValidate_TypeMismatch(t *testing.T) {
	occupant := occupantDefinition()
	hall := hallDefinition()

	rec, err := hall.Decode(map[string]any{"name": "Tower A", "kind": "residence_hall"})
	require.NoError(t, err)

	err = occupant.Validate(rec)
	require.Error(t, err)
	var validation *schema.ValidationError
	assert.NotErrorAs(t, err, &validation, "a type mismatch is a caller bug, not a rule failure")
}

func TestValidate_NoRules(t *testing.T) {
	def := roomDefinition()

	rec, err := def.Decode(map[string]any{"room_number": "101"})
	require.NoError(t, err)
	assert.NoError(t, def.Validate(rec))
}
