// Package housing defines the pinned catalog versions for the university
// housing knowledge graph. Each version is a complete, immutable set of
// entity shapes and rules; deployments pin exactly one version, and mixing
// type names across versions is undefined behavior.
package housing

import (
	"fmt"

	"github.com/campuskg/hallgraph/internal/catalog"
)

// Version identifies a pinned catalog version.
type Version string

const (
	// V1 is the original shape set. It carries person names and other PII.
	V1 Version = "v1"
	// V2 replaces persons with PII-free housing roles.
	V2 Version = "v2"
	// V3 adds the five-level spatial hierarchy and temporal shapes on top
	// of the v2 role-based set. It is the default for new deployments.
	V3 Version = "v3"
)

// ValidVersions is the set of all valid catalog versions.
var ValidVersions = []Version{V1, V2, V3}

// IsValid returns true if the version is recognized.
func (v Version) IsValid() bool {
	for i := range ValidVersions {
		if v == ValidVersions[i] {
			return true
		}
	}
	return false
}

// DefaultVersion is used when no version is pinned in configuration.
const DefaultVersion = V3

// Type names registered only by specific versions. Shapes that participate
// in hierarchy edges take their names from the hierarchy package so the
// legality table and the catalog cannot drift apart.
const (
	TypePolicy               = "Policy"
	TypeApplication          = "Application"
	TypeFinancialTransaction = "FinancialTransaction"
	TypeResidentialFacility  = "ResidentialFacility"
	TypeFacility             = "Facility"
)

// Build compiles the catalog for the given version. An unknown version is
// an error; a malformed shape set fails with schema.ErrInvalidSchema and
// must abort startup.
func Build(v Version) (*catalog.Catalog, error) {
	switch v {
	case V1:
		return catalog.New(string(V1), v1Definitions())
	case V2:
		return catalog.New(string(V2), v2Definitions())
	case V3:
		return catalog.New(string(V3), v3Definitions())
	}
	return nil, fmt.Errorf("unknown catalog version %q", v)
}

// i64 is a pointer shorthand for bounded-integer limits and rule minimums.
func i64(v int64) *int64 { return &v }

// residentialKinds is the subset of building kinds where a resident
// capacity is meaningful.
var residentialKinds = []string{"residence_hall", "apartment_building", "brownstone"}
