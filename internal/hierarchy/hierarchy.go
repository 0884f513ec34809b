// Package hierarchy fixes the edge-kind convention for the housing
// knowledge graph. Containment, temporal, and role relationships between
// entity records are represented as directed, typed edges; scalar
// "parent name" fields that exist on some shapes are advisory extraction
// conveniences only, and edges win whenever the two disagree.
//
// The spatial hierarchy has five levels, and containment never skips one:
//
//	Area → Building → Floor|Suite → Room → BedSpace
//
// The temporal hierarchy nests term instances inside term types (a
// semester is PART_OF an academic year) and orders term instances with
// PRECEDES.
package hierarchy

// EdgeKind is the type of a directed relationship between two records.
type EdgeKind string

const (
	// EdgeContains links a spatial container to its immediate child.
	EdgeContains EdgeKind = "CONTAINS"
	// EdgeLocatedIn is the child-to-parent inverse of EdgeContains.
	EdgeLocatedIn EdgeKind = "LOCATED_IN"
	// EdgePartOf nests a term instance inside its term type.
	EdgePartOf EdgeKind = "PART_OF"
	// EdgePrecedes orders one term instance before another.
	EdgePrecedes EdgeKind = "PRECEDES"
	// EdgeAssignedTo links an occupant to the space assigned to them.
	EdgeAssignedTo EdgeKind = "ASSIGNED_TO"
	// EdgeLocatedAt places an occurrence or amenity at a space.
	EdgeLocatedAt EdgeKind = "LOCATED_AT"
	// EdgeOccursDuring places an occurrence inside a term.
	EdgeOccursDuring EdgeKind = "OCCURS_DURING"
)

// ValidEdgeKinds is the set of all valid edge kinds.
var ValidEdgeKinds = []EdgeKind{
	EdgeContains,
	EdgeLocatedIn,
	EdgePartOf,
	EdgePrecedes,
	EdgeAssignedTo,
	EdgeLocatedAt,
	EdgeOccursDuring,
}

// IsValid returns true if the edge kind is recognized.
func (k EdgeKind) IsValid() bool {
	for i := range ValidEdgeKinds {
		if k == ValidEdgeKinds[i] {
			return true
		}
	}
	return false
}

// Type names of the entity shapes that participate in hierarchy edges.
// They match the catalog type names registered by internal/housing.
const (
	TypeArea         = "Area"
	TypeBuilding     = "Building"
	TypeFloor        = "Floor"
	TypeSuite        = "Suite"
	TypeRoom         = "Room"
	TypeBedSpace     = "BedSpace"
	TypeAcademicYear = "AcademicYear"
	TypeSemester     = "Semester"

	TypePerson          = "Person"
	TypeHousingRole     = "HousingRole"
	TypeEvent           = "Event"
	TypeAssignment      = "Assignment"
	TypeAgreement       = "Agreement"
	TypeAmenityFacility = "AmenityFacility"
	TypeServiceRequest  = "ServiceRequest"
)

// link is one legal (from, to) pair for an edge kind.
type link struct {
	from string
	to   string
}

var legalEdges = buildLegalEdges()

func buildLegalEdges() map[EdgeKind]map[link]struct{} {
	m := make(map[EdgeKind]map[link]struct{}, len(ValidEdgeKinds))
	add := func(kind EdgeKind, from, to string) {
		if m[kind] == nil {
			m[kind] = make(map[link]struct{})
		}
		m[kind][link{from: from, to: to}] = struct{}{}
	}

	// Spatial containment, one level at a time. Floor and Suite share the
	// third level. LOCATED_IN is derived as the exact inverse.
	containment := []link{
		{TypeArea, TypeBuilding},
		{TypeBuilding, TypeFloor},
		{TypeBuilding, TypeSuite},
		{TypeFloor, TypeRoom},
		{TypeSuite, TypeRoom},
		{TypeRoom, TypeBedSpace},
	}
	for _, l := range containment {
		add(EdgeContains, l.from, l.to)
		add(EdgeLocatedIn, l.to, l.from)
	}

	// Temporal containment and ordering.
	add(EdgePartOf, TypeSemester, TypeAcademicYear)
	add(EdgePrecedes, TypeSemester, TypeSemester)

	// Role assignment to spaces. Person is the v1 occupant shape,
	// HousingRole its PII-free successor.
	for _, occupant := range []string{TypePerson, TypeHousingRole} {
		add(EdgeAssignedTo, occupant, TypeRoom)
		add(EdgeAssignedTo, occupant, TypeBedSpace)
	}

	// Occurrences and amenities at spaces.
	add(EdgeLocatedAt, TypeEvent, TypeBuilding)
	add(EdgeLocatedAt, TypeEvent, TypeRoom)
	add(EdgeLocatedAt, TypeAmenityFacility, TypeBuilding)
	add(EdgeLocatedAt, TypeServiceRequest, TypeBuilding)
	add(EdgeLocatedAt, TypeServiceRequest, TypeRoom)

	// Occurrences inside terms.
	add(EdgeOccursDuring, TypeEvent, TypeSemester)
	add(EdgeOccursDuring, TypeAssignment, TypeSemester)
	add(EdgeOccursDuring, TypeAgreement, TypeAcademicYear)

	return m
}

// IsLegalEdge reports whether an edge of the given kind is declared legal
// from fromType to toType. It is a pure lookup against the fixed table
// above: level-skipping containment and reversed directions are illegal,
// as is any kind or type pair the table does not name. The graph writer
// calls this before persisting each proposed edge; this package only
// judges legality and never creates or stores edges.
func IsLegalEdge(fromType, toType string, kind EdgeKind) bool {
	pairs, ok := legalEdges[kind]
	if !ok {
		return false
	}
	_, ok = pairs[link{from: fromType, to: toType}]
	return ok
}
