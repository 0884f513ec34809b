// Package catalog holds the process-wide registry of entity shapes. A
// catalog is built once at startup from a full set of schema definitions
// and is read-only thereafter, so it is safe for unlimited concurrent
// readers with no coordination.
package catalog

import (
	"errors"
	"fmt"
	"iter"

	"github.com/campuskg/hallgraph/internal/schema"
)

// ErrUnknownType is returned by Lookup and Describe when the requested
// type name is not registered. Callers should treat it as "the extraction
// engine proposed an unsupported shape" and drop or re-prompt.
var ErrUnknownType = errors.New("unknown entity type")

// Catalog maps stable type names to their schema definitions. It is the
// single artifact consumed by the extraction engine (to constrain output)
// and by the graph writer (to know what node labels are legal).
type Catalog struct {
	version string
	order   []string
	defs    map[string]*schema.Definition
}

// New builds a catalog from defs. The build is atomic: any invalid
// definition or duplicate type name fails the whole build with
// ErrInvalidSchema and no partial catalog is ever exposed.
func New(version string, defs []schema.Definition) (*Catalog, error) {
	if version == "" {
		return nil, fmt.Errorf("%w: catalog version must not be empty", schema.ErrInvalidSchema)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog %q registers no types", schema.ErrInvalidSchema, version)
	}
	c := &Catalog{
		version: version,
		order:   make([]string, 0, len(defs)),
		defs:    make(map[string]*schema.Definition, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if err := def.Check(); err != nil {
			return nil, fmt.Errorf("catalog %q: %w", version, err)
		}
		if _, dup := c.defs[def.TypeName]; dup {
			return nil, fmt.Errorf("%w: catalog %q registers type %q more than once",
				schema.ErrInvalidSchema, version, def.TypeName)
		}
		c.defs[def.TypeName] = &def
		c.order = append(c.order, def.TypeName)
	}
	return c, nil
}

// Version returns the pinned catalog version identifier.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of registered types.
func (c *Catalog) Len() int { return len(c.order) }

// Lookup returns the definition for the given type name, or ErrUnknownType.
func (c *Catalog) Lookup(typeName string) (*schema.Definition, error) {
	def, ok := c.defs[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	return def, nil
}

// TypeNames returns the registered type names in registration order. The
// sequence is lazy and restartable: ranging over it again yields the same
// names in the same order.
func (c *Catalog) TypeNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range c.order {
			if !yield(name) {
				return
			}
		}
	}
}

// TypeDescription is the extraction-facing view of one entity shape.
type TypeDescription struct {
	TypeName string             `json:"type_name"`
	Fields   []FieldDescription `json:"fields"`
}

// FieldDescription is the extraction-facing view of one field.
type FieldDescription struct {
	Name     string           `json:"name"`
	Kind     schema.ValueKind `json:"kind"`
	Required bool             `json:"required"`
	Hint     string           `json:"hint,omitempty"`
	Values   []string         `json:"values,omitempty"`
	Min      *int64           `json:"min,omitempty"`
	Max      *int64           `json:"max,omitempty"`
}

// Describe returns the field list and extraction hints for the given type.
// It deliberately omits the validation rules and their reasons: those are
// post-hoc diagnostics, and surfacing them at extraction time would teach
// the engine to fabricate values that merely satisfy the validator.
func (c *Catalog) Describe(typeName string) (TypeDescription, error) {
	def, err := c.Lookup(typeName)
	if err != nil {
		return TypeDescription{}, err
	}
	desc := TypeDescription{
		TypeName: def.TypeName,
		Fields:   make([]FieldDescription, 0, len(def.Fields)),
	}
	for i := range def.Fields {
		f := &def.Fields[i]
		desc.Fields = append(desc.Fields, FieldDescription{
			Name:     f.Name,
			Kind:     f.Kind,
			Required: f.Required,
			Hint:     f.Hint,
			Values:   f.Values,
			Min:      f.Min,
			Max:      f.Max,
		})
	}
	return desc, nil
}
