// Package immunization maps pet vaccination records to FHIR
// Immunization resources. The next-due date has no core FHIR home and
// travels as a registered extension.
package immunization

import (
	"encoding/json"
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Vaccination is the domain record of one administered vaccine dose.
type Vaccination struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id,omitempty"`
	VaccineName     string    `json:"vaccine_name,omitempty"`
	Manufacturer    string    `json:"manufacturer,omitempty"`
	BatchNumber     string    `json:"batch_number,omitempty"`
	VaccinationDate time.Time `json:"vaccination_date,omitempty"`
	ExpiryDate      time.Time `json:"expiry_date,omitempty"`
	NextDueDate     time.Time `json:"next_due_date,omitempty"`
}

func DefaultVaccination() Vaccination {
	return Vaccination{}
}

// ToFHIR maps the record to an Immunization resource.
func (v *Vaccination) ToFHIR() *fhir.Immunization {
	res := &fhir.Immunization{
		ResourceType:       fhir.TypeImmunization,
		ID:                 v.ID,
		Status:             "completed",
		OccurrenceDateTime: fhir.FormatDate(v.VaccinationDate),
		LotNumber:          v.BatchNumber,
		ExpirationDate:     fhir.FormatDate(v.ExpiryDate),
	}
	if v.VaccineName != "" {
		res.VaccineCode = &fhir.CodeableConcept{Text: v.VaccineName}
	}
	if v.PetID != "" {
		res.Patient = &fhir.Reference{Reference: fhir.FormatReference(fhir.TypePatient, v.PetID)}
	}
	if v.Manufacturer != "" {
		res.Manufacturer = &fhir.Reference{Display: v.Manufacturer}
	}
	if !v.NextDueDate.IsZero() {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldNextDueDate, fhir.FormatDate(v.NextDueDate)))
	}
	return res
}

// FromFHIR rebuilds a vaccination record, applying defaults for missing
// fields.
func FromFHIR(raw json.RawMessage) Vaccination {
	if fhir.ResourceTypeOf(raw) != fhir.TypeImmunization {
		return DefaultVaccination()
	}
	var res fhir.Immunization
	if err := json.Unmarshal(raw, &res); err != nil {
		return DefaultVaccination()
	}

	v := DefaultVaccination()
	v.ID = res.ID
	v.VaccineName = fhir.ConceptText(res.VaccineCode)
	v.BatchNumber = res.LotNumber
	v.VaccinationDate = fhir.ParseDate(res.OccurrenceDateTime)
	v.ExpiryDate = fhir.ParseDate(res.ExpirationDate)
	if res.Patient != nil {
		v.PetID = fhir.ReferenceID(res.Patient.Reference)
	}
	if res.Manufacturer != nil {
		v.Manufacturer = res.Manufacturer.Display
	}
	v.NextDueDate = fhir.ParseDate(fhir.ExtString(res.Extension, fhir.FieldNextDueDate, ""))
	return v
}

// FromBundle extracts every Immunization entry of a Bundle.
func FromBundle(raw json.RawMessage) []Vaccination {
	var out []Vaccination
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypeImmunization {
			return
		}
		out = append(out, FromFHIR(res))
	})
	return out
}

// PagedBundle wraps one page of vaccinations in a searchset Bundle.
func PagedBundle(vaccinations []*Vaccination, page, limit, total int) *fhir.Bundle {
	resources := make([]interface{}, len(vaccinations))
	for i, v := range vaccinations {
		resources[i] = v.ToFHIR()
	}
	return fhir.NewPagedBundle(resources, page, limit, total)
}
