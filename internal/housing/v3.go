package housing

import (
	"github.com/campuskg/hallgraph/internal/hierarchy"
	"github.com/campuskg/hallgraph/internal/schema"
)

// buildingKinds enumerates the legal building classifications. The
// residentialKinds subset is where a resident capacity is meaningful.
var buildingKinds = []string{
	"residence_hall",
	"apartment_building",
	"brownstone",
	"academic",
	"administrative",
	"mixed_use",
}

// v3Definitions is the five-level spatial + temporal shape set. The
// Facility and ResidentialFacility shapes of earlier versions are replaced
// by explicit Area, Building, Floor, Suite, Room, and BedSpace levels so
// containment can be expressed one edge per level; AcademicYear and
// Semester carry the temporal hierarchy. Occupants stay role-based as in
// v2.
func v3Definitions() []schema.Definition {
	return []schema.Definition{
		{
			TypeName: hierarchy.TypeArea,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Name of the campus housing area (West Campus, South Residential Area, etc.)"},
				{Name: "campus", Kind: schema.KindText, Hint: "Campus the area belongs to"},
				{Name: "description", Kind: schema.KindText, Hint: "Notable characteristics of the area"},
			},
		},
		{
			TypeName: hierarchy.TypeBuilding,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Name of the building"},
				{Name: "kind", Kind: schema.KindEnum, Required: true, Values: buildingKinds, Hint: "Classification of the building"},
				{Name: "capacity", Kind: schema.KindInteger, Hint: "Total resident capacity; only meaningful for residential buildings"},
				{Name: "address", Kind: schema.KindText, Hint: "Street address of the building"},
				{Name: "year_built", Kind: schema.KindBoundedInteger, Min: i64(1800), Max: i64(2100), Hint: "Year the building was constructed"},
				{Name: "area_name", Kind: schema.KindText, Hint: "Housing area the building belongs to (advisory; containment is authoritative via edges)"},
			},
			Rules: []schema.Rule{
				schema.AllowWhen{Field: "capacity", Discriminant: "kind", When: residentialKinds, Min: i64(0)},
			},
		},
		{
			TypeName: hierarchy.TypeFloor,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Floor designation (3rd floor, basement, mezzanine, etc.)"},
				{Name: "level", Kind: schema.KindInteger, Hint: "Numeric floor level if known; basement levels are negative"},
				{Name: "building_name", Kind: schema.KindText, Hint: "Building the floor belongs to (advisory; containment is authoritative via edges)"},
			},
		},
		{
			TypeName: hierarchy.TypeSuite,
			Fields: []schema.FieldSpec{
				{Name: "suite_number", Kind: schema.KindText, Required: true, Hint: "Suite or apartment identifier"},
				{Name: "building_name", Kind: schema.KindText, Hint: "Building the suite belongs to (advisory; containment is authoritative via edges)"},
			},
		},
		{
			TypeName: hierarchy.TypeRoom,
			Fields: []schema.FieldSpec{
				{Name: "room_number", Kind: schema.KindText, Required: true, Hint: "Room number or identifier"},
				{Name: "room_type", Kind: schema.KindEnum, Values: []string{"single", "double", "triple", "quad", "studio"}, Hint: "Occupancy type of the room"},
				{Name: "capacity", Kind: schema.KindBoundedInteger, Min: i64(0), Hint: "Number of bed spaces in the room"},
				{Name: "features", Kind: schema.KindText, Hint: "Notable features (private bathroom, kitchenette, etc.)"},
			},
		},
		{
			TypeName: hierarchy.TypeBedSpace,
			Fields: []schema.FieldSpec{
				{Name: "bed_label", Kind: schema.KindText, Required: true, Hint: "Bed space label within the room (A, B, etc.)"},
				{Name: "bed_type", Kind: schema.KindText, Hint: "Bed configuration (standard, lofted, bunk, extra-long)"},
			},
		},
		{
			TypeName: hierarchy.TypeAcademicYear,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Academic year designation (AY 2025-2026, etc.)"},
				{Name: "start_year", Kind: schema.KindBoundedInteger, Min: i64(1900), Max: i64(2200), Hint: "Calendar year the academic year starts in"},
			},
		},
		{
			TypeName: hierarchy.TypeSemester,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Semester designation (Fall 2025, etc.)"},
				{Name: "term", Kind: schema.KindEnum, Required: true, Values: []string{"fall", "spring", "summer"}, Hint: "Term within the academic year"},
				{Name: "year", Kind: schema.KindBoundedInteger, Required: true, Min: i64(1900), Max: i64(2200), Hint: "Calendar year of the semester"},
				{Name: "academic_year_name", Kind: schema.KindText, Hint: "Academic year the semester belongs to (advisory; temporal containment is authoritative via edges)"},
			},
		},
		housingRoleDefinition(),
		agreementDefinition(),
		serviceRequestDefinition(),
		amenityFacilityDefinition(),
		roleAssignmentDefinition(),
		policyDefinition(),
		roleApplicationDefinition(),
		eventDefinition(),
		roleFinancialTransactionDefinition(),
	}
}
