package fhir

// Typed shapes for the resource variants this gateway produces and
// consumes. Only the fields the mappers actually read or write are
// declared; unknown attributes in inbound JSON are ignored by
// encoding/json, which is the tolerant behavior the mapping contract
// requires.

// Resource type discriminators.
const (
	TypePatient           = "Patient"
	TypeAppointment       = "Appointment"
	TypeCarePlan          = "CarePlan"
	TypeSupplyDelivery    = "SupplyDelivery"
	TypePlanDefinition    = "PlanDefinition"
	TypeObservation       = "Observation"
	TypeDocumentReference = "DocumentReference"
	TypeOrganization      = "Organization"
	TypeImmunization      = "Immunization"
	TypePractitioner      = "Practitioner"
	TypePractitionerRole  = "PractitionerRole"
	TypeLocation          = "Location"
	TypeBasic             = "Basic"
	TypeConsent           = "Consent"
	TypeBundle            = "Bundle"
)

type Patient struct {
	ResourceType string      `json:"resourceType"`
	ID           string      `json:"id,omitempty"`
	Name         []HumanName `json:"name,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	BirthDate    string      `json:"birthDate,omitempty"`
	Extension    []Extension `json:"extension,omitempty"`
}

type AppointmentParticipant struct {
	Actor  Reference `json:"actor"`
	Status string    `json:"status,omitempty"`
}

type Appointment struct {
	ResourceType    string                   `json:"resourceType"`
	ID              string                   `json:"id,omitempty"`
	Status          string                   `json:"status,omitempty"`
	Description     string                   `json:"description,omitempty"`
	Start           string                   `json:"start,omitempty"`
	MinutesDuration int                      `json:"minutesDuration,omitempty"`
	Participant     []AppointmentParticipant `json:"participant,omitempty"`
	Extension       []Extension              `json:"extension,omitempty"`
}

type SuppliedItem struct {
	Quantity            *Quantity        `json:"quantity,omitempty"`
	ItemCodeableConcept *CodeableConcept `json:"itemCodeableConcept,omitempty"`
}

type SupplyDelivery struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Status       string        `json:"status,omitempty"`
	SuppliedItem *SuppliedItem `json:"suppliedItem,omitempty"`
	Extension    []Extension   `json:"extension,omitempty"`
}

type CarePlanActivity struct {
	Reference Reference `json:"reference"`
}

type CarePlan struct {
	ResourceType string             `json:"resourceType"`
	ID           string             `json:"id,omitempty"`
	Status       string             `json:"status,omitempty"`
	Intent       string             `json:"intent,omitempty"`
	Title        string             `json:"title,omitempty"`
	Description  string             `json:"description,omitempty"`
	Category     []CodeableConcept  `json:"category,omitempty"`
	Contained    []SupplyDelivery   `json:"contained,omitempty"`
	Activity     []CarePlanActivity `json:"activity,omitempty"`
	Extension    []Extension        `json:"extension,omitempty"`
}

type PlanDefinitionAction struct {
	Title     string      `json:"title,omitempty"`
	Extension []Extension `json:"extension,omitempty"`
}

type PlanDefinition struct {
	ResourceType string                 `json:"resourceType"`
	ID           string                 `json:"id,omitempty"`
	Status       string                 `json:"status,omitempty"`
	Title        string                 `json:"title,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Type         *CodeableConcept       `json:"type,omitempty"`
	Action       []PlanDefinitionAction `json:"action,omitempty"`
	Extension    []Extension            `json:"extension,omitempty"`
}

type Observation struct {
	ResourceType      string                 `json:"resourceType"`
	ID                string                 `json:"id,omitempty"`
	Status            string                 `json:"status,omitempty"`
	Code              *CodeableConcept       `json:"code,omitempty"`
	Subject           *Reference             `json:"subject,omitempty"`
	EffectiveDateTime string                 `json:"effectiveDateTime,omitempty"`
	Component         []ObservationComponent `json:"component,omitempty"`
}

type DocumentContent struct {
	Attachment Attachment `json:"attachment"`
}

type DocumentReference struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Status       string            `json:"status,omitempty"`
	Type         *CodeableConcept  `json:"type,omitempty"`
	Subject      *Reference        `json:"subject,omitempty"`
	Date         string            `json:"date,omitempty"`
	Content      []DocumentContent `json:"content,omitempty"`
}

type Organization struct {
	ResourceType string         `json:"resourceType"`
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
	Address      []Address      `json:"address,omitempty"`
	Extension    []Extension    `json:"extension,omitempty"`
}

type Immunization struct {
	ResourceType       string           `json:"resourceType"`
	ID                 string           `json:"id,omitempty"`
	Status             string           `json:"status,omitempty"`
	VaccineCode        *CodeableConcept `json:"vaccineCode,omitempty"`
	Patient            *Reference       `json:"patient,omitempty"`
	OccurrenceDateTime string           `json:"occurrenceDateTime,omitempty"`
	LotNumber          string           `json:"lotNumber,omitempty"`
	ExpirationDate     string           `json:"expirationDate,omitempty"`
	Manufacturer       *Reference       `json:"manufacturer,omitempty"`
	Extension          []Extension      `json:"extension,omitempty"`
}

type PractitionerQualification struct {
	Code CodeableConcept `json:"code"`
}

type Practitioner struct {
	ResourceType  string                      `json:"resourceType"`
	ID            string                      `json:"id,omitempty"`
	Name          []HumanName                 `json:"name,omitempty"`
	Telecom       []ContactPoint              `json:"telecom,omitempty"`
	Qualification []PractitionerQualification `json:"qualification,omitempty"`
}

type AvailableTime struct {
	DaysOfWeek         []string `json:"daysOfWeek,omitempty"`
	AvailableStartTime string   `json:"availableStartTime,omitempty"`
	AvailableEndTime   string   `json:"availableEndTime,omitempty"`
}

type PractitionerRole struct {
	ResourceType  string            `json:"resourceType"`
	ID            string            `json:"id,omitempty"`
	Practitioner  *Reference        `json:"practitioner,omitempty"`
	Specialty     []CodeableConcept `json:"specialty,omitempty"`
	AvailableTime []AvailableTime   `json:"availableTime,omitempty"`
}

type Location struct {
	ResourceType string   `json:"resourceType"`
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

type Basic struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id,omitempty"`
	Code         *CodeableConcept `json:"code,omitempty"`
	Subject      *Reference       `json:"subject,omitempty"`
	Extension    []Extension      `json:"extension,omitempty"`
}

type Consent struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id,omitempty"`
	Status       string           `json:"status,omitempty"`
	Scope        *CodeableConcept `json:"scope,omitempty"`
}
