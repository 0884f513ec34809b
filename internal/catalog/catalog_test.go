package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskg/hallgraph/internal/catalog"
	"github.com/campuskg/hallgraph/internal/schema"
)

func testDefinitions() []schema.Definition {
	return []schema.Definition{
		{
			TypeName: "Building",
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Name of the building"},
			},
		},
		{
			TypeName: "Room",
			Fields: []schema.FieldSpec{
				{Name: "room_number", Kind: schema.KindText, Required: true},
				{Name: "kind", Kind: schema.KindText},
				{Name: "capacity", Kind: schema.KindInteger},
			},
			Rules: []schema.Rule{
				schema.AllowWhen{Field: "capacity", Discriminant: "kind", When: []string{"double"}},
			},
		},
	}
}

func TestNew_LookupAllRegisteredTypes(t *testing.T) {
	cat, err := catalog.New("test", testDefinitions())
	require.NoError(t, err)

	for name := range cat.TypeNames() {
		def, lookupErr := cat.Lookup(name)
		require.NoError(t, lookupErr)
		require.NotNil(t, def)
		assert.Equal(t, name, def.TypeName)
		assert.NotEmpty(t, def.Fields)
	}
	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, "test", cat.Version())
}

func TestLookup_UnknownType(t *testing.T) {
	cat, err := catalog.New("test", testDefinitions())
	require.NoError(t, err)

	_, err = cat.Lookup("Basement")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownType), "expected ErrUnknownType, got: %v", err)
}

func TestTypeNames_RegistrationOrderAndRestartable(t *testing.T) {
	cat, err := catalog.New("test", testDefinitions())
	require.NoError(t, err)

	collect := func() []string {
		var names []string
		for name := range cat.TypeNames() {
			names = append(names, name)
		}
		return names
	}

	first := collect()
	second := collect()
	assert.Equal(t, []string{"Building", "Room"}, first)
	assert.Equal(t, first, second, "the sequence must be restartable")
}

func TestTypeNames_EarlyBreak(t *testing.T) {
	cat, err := catalog.New("test", testDefinitions())
	require.NoError(t, err)

	var got []string
	for name := range cat.TypeNames() {
		got = append(got, name)
		break
	}
	assert.Equal(t, []string{"Building"}, got)
}

func TestNew_AtomicFailure(t *testing.T) {
	defs := testDefinitions()
	defs = append(defs, schema.Definition{TypeName: "Broken"}) // no fields

	cat, err := catalog.New("test", defs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrInvalidSchema), "expected ErrInvalidSchema, got: %v", err)
	assert.Nil(t, cat, "no partial catalog may be exposed")
}

func TestNew_DuplicateTypeName(t *testing.T) {
	defs := testDefinitions()
	defs = append(defs, defs[0])

	_, err := catalog.New("test", defs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrInvalidSchema))
}

func TestNew_EmptyInputs(t *testing.T) {
	_, err := catalog.New("", testDefinitions())
	assert.True(t, errors.Is(err, schema.ErrInvalidSchema))

	_, err = catalog.New("test", nil)
	assert.True(t, errors.Is(err, schema.ErrInvalidSchema))
}

func TestDescribe_FieldsAndHints(t *testing.T) {
	cat, err := catalog.New("test", testDefinitions())
	require.NoError(t, err)

	desc, err := cat.Describe("Building")
	require.NoError(t, err)
	assert.Equal(t, "Building", desc.TypeName)
	require.Len(t, desc.Fields, 1)
	assert.Equal(t, "name", desc.Fields[0].Name)
	assert.True(t, desc.Fields[0].Required)
	assert.Equal(t, "Name of the building", desc.Fields[0].Hint)
}

func TestDescribe_UnknownType(t *testing.T) {
	cat, err := catalog.New("test", testDefinitions())
	require.NoError(t, err)

	_, err = cat.Describe("Basement")
	assert.True(t, errors.Is(err, catalog.ErrUnknownType))
}

func TestHandle_AtomicSwap(t *testing.T) {
	first, err := catalog.New("v-one", testDefinitions())
	require.NoError(t, err)
	second, err := catalog.New("v-two", testDefinitions())
	require.NoError(t, err)

	h := catalog.NewHandle(first)
	assert.Equal(t, "v-one", h.Load().Version())

	old := h.Swap(second)
	assert.Equal(t, "v-one", old.Version())
	assert.Equal(t, "v-two", h.Load().Version())
}
