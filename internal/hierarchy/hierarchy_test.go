package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuskg/hallgraph/internal/hierarchy"
)

func TestEdgeKind_IsValid(t *testing.T) {
	for i := range hierarchy.ValidEdgeKinds {
		assert.True(t, hierarchy.ValidEdgeKinds[i].IsValid(), "expected %q to be valid", hierarchy.ValidEdgeKinds[i])
	}
	assert.False(t, hierarchy.EdgeKind("ADJACENT_TO").IsValid())
	assert.False(t, hierarchy.EdgeKind("").IsValid())
}

func TestIsLegalEdge(t *testing.T) {
	cases := []struct {
		name  string
		from  string
		to    string
		kind  hierarchy.EdgeKind
		legal bool
	}{
		{"area contains building", hierarchy.TypeArea, hierarchy.TypeBuilding, hierarchy.EdgeContains, true},
		{"building contains floor", hierarchy.TypeBuilding, hierarchy.TypeFloor, hierarchy.EdgeContains, true},
		{"building contains suite", hierarchy.TypeBuilding, hierarchy.TypeSuite, hierarchy.EdgeContains, true},
		{"floor contains room", hierarchy.TypeFloor, hierarchy.TypeRoom, hierarchy.EdgeContains, true},
		{"suite contains room", hierarchy.TypeSuite, hierarchy.TypeRoom, hierarchy.EdgeContains, true},
		{"room contains bed space", hierarchy.TypeRoom, hierarchy.TypeBedSpace, hierarchy.EdgeContains, true},

		{"containment may not skip a level", hierarchy.TypeArea, hierarchy.TypeRoom, hierarchy.EdgeContains, false},
		{"building may not contain bed space", hierarchy.TypeBuilding, hierarchy.TypeBedSpace, hierarchy.EdgeContains, false},
		{"containment is directed", hierarchy.TypeRoom, hierarchy.TypeFloor, hierarchy.EdgeContains, false},
		{"floor does not contain suite", hierarchy.TypeFloor, hierarchy.TypeSuite, hierarchy.EdgeContains, false},

		{"room located in floor", hierarchy.TypeRoom, hierarchy.TypeFloor, hierarchy.EdgeLocatedIn, true},
		{"room located in suite", hierarchy.TypeRoom, hierarchy.TypeSuite, hierarchy.EdgeLocatedIn, true},
		{"located-in is the inverse only", hierarchy.TypeFloor, hierarchy.TypeRoom, hierarchy.EdgeLocatedIn, false},
		{"room not located in area", hierarchy.TypeRoom, hierarchy.TypeArea, hierarchy.EdgeLocatedIn, false},

		{"semester part of academic year", hierarchy.TypeSemester, hierarchy.TypeAcademicYear, hierarchy.EdgePartOf, true},
		{"academic year is not part of a semester", hierarchy.TypeAcademicYear, hierarchy.TypeSemester, hierarchy.EdgePartOf, false},
		{"semester precedes semester", hierarchy.TypeSemester, hierarchy.TypeSemester, hierarchy.EdgePrecedes, true},
		{"academic years are not ordered", hierarchy.TypeAcademicYear, hierarchy.TypeAcademicYear, hierarchy.EdgePrecedes, false},

		{"housing role assigned to room", hierarchy.TypeHousingRole, hierarchy.TypeRoom, hierarchy.EdgeAssignedTo, true},
		{"housing role assigned to bed space", hierarchy.TypeHousingRole, hierarchy.TypeBedSpace, hierarchy.EdgeAssignedTo, true},
		{"person assigned to room", hierarchy.TypePerson, hierarchy.TypeRoom, hierarchy.EdgeAssignedTo, true},
		{"role not assignable to building", hierarchy.TypeHousingRole, hierarchy.TypeBuilding, hierarchy.EdgeAssignedTo, false},

		{"event located at building", hierarchy.TypeEvent, hierarchy.TypeBuilding, hierarchy.EdgeLocatedAt, true},
		{"service request located at room", hierarchy.TypeServiceRequest, hierarchy.TypeRoom, hierarchy.EdgeLocatedAt, true},
		{"amenity not located at room", hierarchy.TypeAmenityFacility, hierarchy.TypeRoom, hierarchy.EdgeLocatedAt, false},

		{"event occurs during semester", hierarchy.TypeEvent, hierarchy.TypeSemester, hierarchy.EdgeOccursDuring, true},
		{"agreement occurs during academic year", hierarchy.TypeAgreement, hierarchy.TypeAcademicYear, hierarchy.EdgeOccursDuring, true},
		{"agreement does not occur during semester", hierarchy.TypeAgreement, hierarchy.TypeSemester, hierarchy.EdgeOccursDuring, false},

		{"unknown kind is illegal", hierarchy.TypeArea, hierarchy.TypeBuilding, hierarchy.EdgeKind("ADJACENT_TO"), false},
		{"unknown type is illegal", "Basement", hierarchy.TypeRoom, hierarchy.EdgeContains, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.legal, hierarchy.IsLegalEdge(tc.from, tc.to, tc.kind))
		})
	}
}
