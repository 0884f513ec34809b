package housing

import (
	"github.com/campuskg/hallgraph/internal/hierarchy"
	"github.com/campuskg/hallgraph/internal/schema"
)

// v1Definitions is the original shape set. Field lists and hints follow
// the entity definitions the extraction engine was first deployed with;
// person-identifying fields are present throughout. Scalar fields such as
// building_name and person_name are advisory conveniences for the
// extraction engine; containment and assignment are authoritative only as
// graph edges.
func v1Definitions() []schema.Definition {
	return []schema.Definition{
		{
			TypeName: hierarchy.TypePerson,
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.KindText, Required: true, Hint: "Full name of the person"},
				{Name: "person_id", Kind: schema.KindText, Hint: "Unique identifier (university ID, employee ID, etc.)"},
				{Name: "role", Kind: schema.KindText, Hint: "Role in housing context (student, RA, staff, resident, etc.)"},
				{Name: "status", Kind: schema.KindText, Hint: "Status (undergraduate, graduate, international, full-time staff, etc.)"},
				{Name: "affiliation", Kind: schema.KindText, Hint: "Organizational affiliation (academic program, department, school, etc.)"},
				{Name: "contact_info", Kind: schema.KindText, Hint: "Contact information (email, phone, office location) if mentioned"},
			},
		},
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
		{
			TypeName: hierarchy.TypeAssignment,
			Fields: []schema.FieldSpec{
				{Name: "person_name", Kind: schema.KindText, Required: true, Hint: "Name of the person being assigned (advisory; assignment is authoritative via edges)"},
				{Name: "unit_number", Kind: schema.KindText, Required: true, Hint: "Room/unit number being assigned"},
				{Name: "building_name", Kind: schema.KindText, Required: true, Hint: "Building where the assignment is located (advisory; containment is authoritative via edges)"},
				{Name: "assignment_period", Kind: schema.KindText, Required: true, Hint: "Time period for the assignment (Fall 2024, Spring 2025, etc.)"},
				{Name: "move_in_date", Kind: schema.KindText, Hint: "Scheduled move-in date"},
				{Name: "move_out_date", Kind: schema.KindText, Hint: "Scheduled move-out date"},
				{Name: "status", Kind: schema.KindText, Hint: "Assignment status (confirmed, pending, waitlisted, cancelled)"},
			},
		},
		policyDefinition(),
		{
			TypeName: TypeApplication,
			Fields: []schema.FieldSpec{
				{Name: "application_id", Kind: schema.KindText, Hint: "Unique application identifier"},
				{Name: "applicant_name", Kind: schema.KindText, Required: true, Hint: "Name of the student applying"},
				{Name: "application_type", Kind: schema.KindText, Required: true, Hint: "Type of application (new student, returning, transfer, etc.)"},
				{Name: "preferences", Kind: schema.KindText, Required: true, Hint: "Housing preferences in ranked order"},
				{Name: "roommate_requests", Kind: schema.KindText, Hint: "Requested roommates or roommate preferences"},
				{Name: "status", Kind: schema.KindText, Hint: "Application status (submitted, under review, approved, denied, waitlisted)"},
				{Name: "submission_date", Kind: schema.KindText, Hint: "Date the application was submitted"},
			},
		},
		eventDefinition(),
		{
			TypeName: TypeFinancialTransaction,
			Fields: []schema.FieldSpec{
				{Name: "payment_id", Kind: schema.KindText, Hint: "Unique payment or transaction identifier"},
				{Name: "amount", Kind: schema.KindText, Required: true, Hint: "Payment amount"},
				{Name: "payment_type", Kind: schema.KindText, Required: true, Hint: "Type of payment (rent, deposit, damage fee, late fee, etc.)"},
				{Name: "due_date", Kind: schema.KindText, Hint: "Payment due date"},
				{Name: "payment_date", Kind: schema.KindText, Hint: "Date payment was made"},
				{Name: "status", Kind: schema.KindText, Hint: "Payment status (pending, completed, overdue, refunded)"},
				{Name: "payer_name", Kind: schema.KindText, Required: true, Hint: "Name of the student making the payment"},
			},
		},
	}
}

// agreementDefinition is shared by every catalog version.
func agreementDefinition() schema.Definition {
	return schema.Definition{
		TypeName: hierarchy.TypeAgreement,
		Fields: []schema.FieldSpec{
			{Name: "contract_id", Kind: schema.KindText, Hint: "Unique identifier for the lease/contract"},
			{Name: "contract_type", Kind: schema.KindText, Required: true, Hint: "Type of lease (academic year, semester, summer, year-round)"},
			{Name: "start_date", Kind: schema.KindText, Hint: "Lease start date"},
			{Name: "end_date", Kind: schema.KindText, Hint: "Lease end date"},
			{Name: "payment_amount", Kind: schema.KindText, Hint: "Total payment amount or rent"},
			{Name: "terms", Kind: schema.KindText, Hint: "Special terms, conditions, or policies of the lease"},
			{Name: "status", Kind: schema.KindText, Hint: "Contract status (active, pending, cancelled, completed)"},
		},
	}
}

func serviceRequestDefinition() schema.Definition {
	return schema.Definition{
		TypeName: hierarchy.TypeServiceRequest,
		Fields: []schema.FieldSpec{
			{Name: "request_id", Kind: schema.KindText, Hint: "Unique identifier for the maintenance request"},
			{Name: "issue_type", Kind: schema.KindText, Required: true, Hint: "Type of maintenance issue (plumbing, electrical, HVAC, etc.)"},
			{Name: "description", Kind: schema.KindText, Required: true, Hint: "Detailed description of the maintenance issue"},
			{Name: "priority", Kind: schema.KindEnum, Values: []string{"emergency", "urgent", "routine"}, Hint: "Priority level"},
			{Name: "location", Kind: schema.KindText, Required: true, Hint: "Building and unit where maintenance is needed (advisory; location is authoritative via edges)"},
			{Name: "status", Kind: schema.KindText, Hint: "Current status (submitted, in progress, completed, cancelled)"},
			{Name: "submitted_date", Kind: schema.KindText, Hint: "Date the request was submitted"},
		},
	}
}

func amenityFacilityDefinition() schema.Definition {
	return schema.Definition{
		TypeName: hierarchy.TypeAmenityFacility,
		Fields: []schema.FieldSpec{
			{Name: "name", Kind: schema.KindText, Required: true, Hint: "Name of the amenity or facility"},
			{Name: "amenity_type", Kind: schema.KindText, Required: true, Hint: "Type of amenity (gym, laundry, study room, lounge, parking, etc.)"},
			{Name: "location", Kind: schema.KindText, Required: true, Hint: "Building or location where amenity is available (advisory; location is authoritative via edges)"},
			{Name: "access_details", Kind: schema.KindText, Hint: "Access requirements, hours, or restrictions"},
			{Name: "features", Kind: schema.KindText, Hint: "Specific features or equipment available"},
		},
	}
}

func policyDefinition() schema.Definition {
	return schema.Definition{
		TypeName: TypePolicy,
		Fields: []schema.FieldSpec{
			{Name: "policy_name", Kind: schema.KindText, Required: true, Hint: "Name or title of the policy"},
			{Name: "category", Kind: schema.KindText, Required: true, Hint: "Policy category (guests, quiet hours, pets, alcohol, safety, etc.)"},
			{Name: "description", Kind: schema.KindText, Required: true, Hint: "Detailed description of the policy rules and requirements"},
			{Name: "applies_to", Kind: schema.KindText, Hint: "Who or what the policy applies to (all residents, specific buildings, etc.)"},
			{Name: "consequences", Kind: schema.KindText, Hint: "Consequences or penalties for policy violations"},
		},
	}
}

func eventDefinition() schema.Definition {
	return schema.Definition{
		TypeName: hierarchy.TypeEvent,
		Fields: []schema.FieldSpec{
			{Name: "event_name", Kind: schema.KindText, Required: true, Hint: "Name or title of the event"},
			{Name: "event_type", Kind: schema.KindText, Required: true, Hint: "Type of event (move-in, inspection, community event, incident, etc.)"},
			{Name: "date", Kind: schema.KindText, Hint: "Date and time of the event"},
			{Name: "location", Kind: schema.KindText, Required: true, Hint: "Building or specific location of the event (advisory; location is authoritative via edges)"},
			{Name: "description", Kind: schema.KindText, Required: true, Hint: "Detailed description of the event"},
			{Name: "mandatory", Kind: schema.KindBoolean, Hint: "Whether attendance is mandatory"},
		},
	}
}
