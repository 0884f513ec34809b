package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskg/hallgraph/internal/schema"
)

func i64(v int64) *int64 { return &v }

func roomDefinition() schema.Definition {
	return schema.Definition{
		TypeName: "Room",
		Fields: []schema.FieldSpec{
			{Name: "room_number", Kind: schema.KindText, Required: true, Hint: "Room number or identifier"},
			{Name: "room_type", Kind: schema.KindEnum, Values: []string{"single", "double", "triple"}},
			{Name: "capacity", Kind: schema.KindBoundedInteger, Min: i64(0), Max: i64(12)},
			{Name: "reserved", Kind: schema.KindBoolean},
			{Name: "floor_level", Kind: schema.KindInteger},
		},
	}
}

func TestValueKind_IsValid(t *testing.T) {
	for i := range schema.ValidValueKinds {
		assert.True(t, schema.ValidValueKinds[i].IsValid(), "expected %q to be valid", schema.ValidValueKinds[i])
	}
	assert.False(t, schema.ValueKind("decimal").IsValid())
	assert.False(t, schema.ValueKind("").IsValid())
}

func TestDefinitionCheck_Valid(t *testing.T) {
	def := roomDefinition()
	require.NoError(t, def.Check())
}

func TestDefinitionCheck_Invalid(t *testing.T) {
	cases := []struct {
		name string
		def  schema.Definition
	}{
		{
			name: "empty type name",
			def: schema.Definition{
				Fields: []schema.FieldSpec{{Name: "x", Kind: schema.KindText}},
			},
		},
		{
			name: "no fields",
			def:  schema.Definition{TypeName: "Empty"},
		},
		{
			name: "duplicate field names",
			def: schema.Definition{
				TypeName: "Dup",
				Fields: []schema.FieldSpec{
					{Name: "x", Kind: schema.KindText},
					{Name: "x", Kind: schema.KindInteger},
				},
			},
		},
		{
			name: "unknown kind",
			def: schema.Definition{
				TypeName: "BadKind",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.ValueKind("decimal")}},
			},
		},
		{
			name: "required field with default",
			def: schema.Definition{
				TypeName: "BadDefault",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.KindText, Required: true, Default: "y"}},
			},
		},
		{
			name: "bounded integer without minimum",
			def: schema.Definition{
				TypeName: "NoMin",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.KindBoundedInteger}},
			},
		},
		{
			name: "bounded integer minimum above maximum",
			def: schema.Definition{
				TypeName: "MinAboveMax",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.KindBoundedInteger, Min: i64(10), Max: i64(3)}},
			},
		},
		{
			name: "enum without values",
			def: schema.Definition{
				TypeName: "EmptyEnum",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.KindEnum}},
			},
		},
		{
			name: "rule referencing undeclared discriminant",
			def: schema.Definition{
				TypeName: "BadRule",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.KindText}},
				Rules: []schema.Rule{
					schema.RequireWhen{Discriminant: "missing", Value: "y", Then: []string{"x"}},
				},
			},
		},
		{
			name: "rule requiring undeclared field",
			def: schema.Definition{
				TypeName: "BadRuleField",
				Fields:   []schema.FieldSpec{{Name: "x", Kind: schema.KindText}},
				Rules: []schema.Rule{
					schema.RequireWhen{Discriminant: "x", Value: "y", Then: []string{"missing"}},
				},
			},
		},
		{
			name: "allow rule with minimum on text field",
			def: schema.Definition{
				TypeName: "BadAllowMin",
				Fields: []schema.FieldSpec{
					{Name: "kind", Kind: schema.KindText},
					{Name: "label", Kind: schema.KindText},
				},
				Rules: []schema.Rule{
					schema.AllowWhen{Field: "label", Discriminant: "kind", When: []string{"a"}, Min: i64(0)},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.def.Check()
			require.Error(t, err)
			assert.True(t, errors.Is(err, schema.ErrInvalidSchema), "expected ErrInvalidSchema, got: %v", err)
		})
	}
}

func TestDefinition_Field(t *testing.T) {
	def := roomDefinition()

	f, ok := def.Field("capacity")
	require.True(t, ok)
	assert.Equal(t, schema.KindBoundedInteger, f.Kind)

	_, ok = def.Field("nonexistent")
	assert.False(t, ok)
}
