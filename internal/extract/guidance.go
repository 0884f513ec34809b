package extract

import (
	"fmt"
	"strings"

	"github.com/campuskg/hallgraph/internal/catalog"
)

// Guidance renders the catalog's type descriptions as plain text for the
// extraction prompt. It is built exclusively from Describe, so field lists
// and hints are included but validation rules and their reasons are not.
func Guidance(cat *catalog.Catalog) string {
	var b strings.Builder
	for name := range cat.TypeNames() {
		desc, err := cat.Describe(name)
		if err != nil {
			// Lookup of a name the catalog itself yielded cannot fail.
			continue
		}
		fmt.Fprintf(&b, "Entity type: %s\n", desc.TypeName)
		for i := range desc.Fields {
			f := &desc.Fields[i]
			fmt.Fprintf(&b, "  - %s (%s", f.Name, f.Kind)
			if len(f.Values) > 0 {
				fmt.Fprintf(&b, ": %s", strings.Join(f.Values, "|"))
			}
			if f.Min != nil {
				fmt.Fprintf(&b, ", min %d", *f.Min)
			}
			if f.Max != nil {
				fmt.Fprintf(&b, ", max %d", *f.Max)
			}
			if f.Required {
				b.WriteString(", required")
			}
			b.WriteString(")")
			if f.Hint != "" {
				fmt.Fprintf(&b, ": %s", f.Hint)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
