package pet

import (
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Pet is the domain record for a registered animal. The mapping layer
// reads it (forward) or constructs a new one (reverse); it never mutates
// a record it was handed.
type Pet struct {
	ID               string    `db:"id" json:"id"`
	OwnerID          string    `db:"owner_id" json:"owner_id,omitempty"`
	Name             string    `db:"name" json:"name"`
	Species          string    `db:"species" json:"species"`
	Breed            string    `db:"breed" json:"breed,omitempty"`
	Gender           string    `db:"gender" json:"gender,omitempty"`
	GenderStatus     string    `db:"gender_status" json:"gender_status,omitempty"`
	BirthDate        time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Weight           float64   `db:"weight" json:"weight,omitempty"`
	Color            string    `db:"color" json:"color,omitempty"`
	MicrochipNumber  string    `db:"microchip_number" json:"microchip_number,omitempty"`
	Insured          bool      `db:"insured" json:"insured,omitempty"`
	InsuranceCompany string    `db:"insurance_company" json:"insurance_company,omitempty"`
	PolicyNumber     string    `db:"policy_number" json:"policy_number,omitempty"`
	PassportNumber   string    `db:"passport_number" json:"passport_number,omitempty"`
	PhotoURL         string    `db:"photo_url" json:"photo_url,omitempty"`
	PhotoContentType string    `db:"photo_content_type" json:"photo_content_type,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// DefaultPet is the record a reverse parse yields when the input carries
// nothing usable: every field at its documented default (empty string,
// zero, false).
func DefaultPet() Pet {
	return Pet{}
}

// ToFHIR maps a Pet to a Patient resource. Missing domain fields become
// omitted optional attributes, never null. Species, breed and gender
// status nest as CodeableConcept extensions inside the animal block;
// fields with no FHIR home travel as registered extensions. The derived
// age is computed once here, from the birth date.
func (p *Pet) ToFHIR() *fhir.Patient {
	res := &fhir.Patient{
		ResourceType: fhir.TypePatient,
		ID:           p.ID,
		Gender:       p.Gender,
		BirthDate:    fhir.FormatDate(p.BirthDate),
	}
	if p.Name != "" {
		res.Name = []fhir.HumanName{{Text: p.Name}}
	}

	var animal []fhir.Extension
	if p.Species != "" {
		animal = append(animal, fhir.ConceptExtension(fhir.FieldSpecies, fhir.Concept(p.Species, fhir.SpeciesCodes)))
	}
	if p.Breed != "" {
		animal = append(animal, fhir.ConceptExtension(fhir.FieldBreed, fhir.CodeableConcept{
			Coding: []fhir.Coding{{System: fhir.SystemBreed, Code: p.Breed, Display: p.Breed}},
			Text:   p.Breed,
		}))
	}
	if p.GenderStatus != "" {
		animal = append(animal, fhir.ConceptExtension(fhir.FieldGenderStatus, fhir.Concept(p.GenderStatus, fhir.GenderStatusCodes)))
	}
	if len(animal) > 0 {
		res.Extension = append(res.Extension, fhir.NestedExtension(fhir.FieldAnimal, animal))
	}

	if p.MicrochipNumber != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldMicrochipNumber, p.MicrochipNumber))
	}
	if p.Insured {
		res.Extension = append(res.Extension, fhir.BoolExtension(fhir.FieldInsured, true))
	}
	if p.InsuranceCompany != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldInsuranceCompany, p.InsuranceCompany))
	}
	if p.PolicyNumber != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldPolicyNumber, p.PolicyNumber))
	}
	if p.PassportNumber != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldPassportNumber, p.PassportNumber))
	}
	if p.Weight != 0 {
		res.Extension = append(res.Extension, fhir.DecimalExtension(fhir.FieldWeight, p.Weight))
	}
	if p.Color != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldColor, p.Color))
	}
	if p.PhotoURL != "" {
		res.Extension = append(res.Extension, fhir.AttachmentExtension(fhir.FieldPhoto, fhir.Attachment{
			ContentType: p.PhotoContentType,
			URL:         p.PhotoURL,
		}))
	}
	if age := fhir.AgeFromBirthDate(p.BirthDate, time.Now()); age != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldAge, age))
	}
	return res
}
