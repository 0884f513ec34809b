package housing

import (
	"github.com/campuskg/hallgraph/internal/hierarchy"
	"github.com/campuskg/hallgraph/internal/schema"
)

// v2Definitions is the role-based, PII-free shape set. Person is replaced
// by HousingRole, and the person-name fields on Assignment, Application,
// and FinancialTransaction become opaque role references. v2 does not
// silently supersede v1; both remain buildable and a deployment selects
// one by configuration.
func v2Definitions() []schema.Definition {
	return []schema.Definition{
		housingRoleDefinition(),
		{
			TypeName: TypeResidentialFacility,
			Fields: []schema.FieldSpec{
				{Name: "unit_number", Kind: schema.KindText, Required: true, Hint: "Room, suite, or apartment number/identifier"},
				{Name: "building_name", Kind: schema.KindText, Required: true, Hint: "Name of the building where this unit is located (advisory; containment is authoritative via edges)"},
				{Name: "unit_type", Kind: schema.KindText, Hint: "Type of unit (single, double, triple, suite, apartment, etc.)"},
				{Name: "capacity", Kind: schema.KindBoundedInteger, Min: i64(0), Hint: "Maximum number of occupants"},
				{Name: "features", Kind: schema.KindText, Hint: "Notable features or amenities of the unit"},
				{Name: "floor_level", Kind: schema.KindText, Hint: "Floor number or level"},
			},
		},
		{
			TypeName: TypeFacility,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Name of the residence hall or building"},
				{Name: "location", Kind: schema.KindText, Hint: "Campus location or address"},
				{Name: "building_type", Kind: schema.KindText, Hint: "Type of housing (traditional dorm, apartment-style, brownstone, etc.)"},
				{Name: "total_capacity", Kind: schema.KindBoundedInteger, Min: i64(0), Hint: "Total number of residents the building can house"},
				{Name: "amenities", Kind: schema.KindText, Hint: "Building amenities and facilities"},
				{Name: "special_designation", Kind: schema.KindText, Hint: "Special housing designation (honors, LLC, themed community, etc.)"},
			},
		},
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

// housingRoleDefinition is the PII-free occupant shape. The affiliation
// discriminant selects which otherwise-optional fields become required:
// employees must carry a job title and department, students a student
// role. The discriminant is structurally optional so that its absence is
// caught by the rules, which reject conservatively rather than skip.
func housingRoleDefinition() schema.Definition {
	return schema.Definition{
		TypeName: hierarchy.TypeHousingRole,
		Fields: []schema.FieldSpec{
			{Name: "role_id", Kind: schema.KindText, Required: true, Hint: "Opaque pseudonymous identifier for the role holder; never a name"},
			{Name: "affiliation", Kind: schema.KindEnum, Values: []string{"student", "employee"}, Hint: "Whether the role holder is a student or an employee"},
			{Name: "student_role", Kind: schema.KindText, Hint: "Housing role of a student (resident, RA, orientation leader, etc.)"},
			{Name: "job_title", Kind: schema.KindText, Hint: "Position title of an employee (RD, maintenance technician, area director, etc.)"},
			{Name: "department", Kind: schema.KindText, Hint: "Department an employee belongs to"},
			{Name: "standing", Kind: schema.KindText, Hint: "Academic or employment standing (sophomore, graduate, full-time, etc.)"},
		},
		Rules: []schema.Rule{
			schema.RequireWhen{Discriminant: "affiliation", Value: "employee", Then: []string{"job_title", "department"}},
			schema.RequireWhen{Discriminant: "affiliation", Value: "student", Then: []string{"student_role"}},
		},
	}
}

func roleAssignmentDefinition() schema.Definition {
	return schema.Definition{
		TypeName: hierarchy.TypeAssignment,
		Fields: []schema.FieldSpec{
			{Name: "role_id", Kind: schema.KindText, Required: true, Hint: "Role reference of the assignee (advisory; assignment is authoritative via edges)"},
			{Name: "unit_number", Kind: schema.KindText, Required: true, Hint: "Room/unit number being assigned"},
			{Name: "building_name", Kind: schema.KindText, Required: true, Hint: "Building where the assignment is located (advisory; containment is authoritative via edges)"},
			{Name: "assignment_period", Kind: schema.KindText, Required: true, Hint: "Time period for the assignment (Fall 2024, Spring 2025, etc.)"},
			{Name: "move_in_date", Kind: schema.KindText, Hint: "Scheduled move-in date"},
			{Name: "move_out_date", Kind: schema.KindText, Hint: "Scheduled move-out date"},
			{Name: "status", Kind: schema.KindText, Hint: "Assignment status (confirmed, pending, waitlisted, cancelled)"},
		},
	}
}

func roleApplicationDefinition() schema.Definition {
	return schema.Definition{
		TypeName: TypeApplication,
		Fields: []schema.FieldSpec{
			{Name: "application_id", Kind: schema.KindText, Hint: "Unique application identifier"},
			{Name: "role_id", Kind: schema.KindText, Required: true, Hint: "Role reference of the applicant; never a name"},
			{Name: "application_type", Kind: schema.KindText, Required: true, Hint: "Type of application (new student, returning, transfer, etc.)"},
			{Name: "preferences", Kind: schema.KindText, Required: true, Hint: "Housing preferences in ranked order"},
			{Name: "roommate_requests", Kind: schema.KindText, Hint: "Requested roommate role references"},
			{Name: "status", Kind: schema.KindText, Hint: "Application status (submitted, under review, approved, denied, waitlisted)"},
			{Name: "submission_date", Kind: schema.KindText, Hint: "Date the application was submitted"},
		},
	}
}

func roleFinancialTransactionDefinition() schema.Definition {
	return schema.Definition{
		TypeName: TypeFinancialTransaction,
		Fields: []schema.FieldSpec{
			{Name: "payment_id", Kind: schema.KindText, Hint: "Unique payment or transaction identifier"},
			{Name: "amount", Kind: schema.KindText, Required: true, Hint: "Payment amount"},
			{Name: "payment_type", Kind: schema.KindText, Required: true, Hint: "Type of payment (rent, deposit, damage fee, late fee, etc.)"},
			{Name: "due_date", Kind: schema.KindText, Hint: "Payment due date"},
			{Name: "payment_date", Kind: schema.KindText, Hint: "Date payment was made"},
			{Name: "status", Kind: schema.KindText, Hint: "Payment status (pending, completed, overdue, refunded)"},
			{Name: "payer_role_id", Kind: schema.KindText, Required: true, Hint: "Role reference of the payer; never a name"},
		},
	}
}
