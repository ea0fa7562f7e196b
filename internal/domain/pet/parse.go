package pet

import (
	"encoding/json"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// FromFHIR rebuilds a Pet from a raw Patient resource. A payload whose
// resourceType is absent or not Patient yields the all-defaults record;
// missing fields resolve to defaults. Shape problems never propagate as
// errors.
func FromFHIR(raw json.RawMessage) Pet {
	if fhir.ResourceTypeOf(raw) != fhir.TypePatient {
		return DefaultPet()
	}
	var res fhir.Patient
	if err := json.Unmarshal(raw, &res); err != nil {
		return DefaultPet()
	}
	return fromResource(&res)
}

func fromResource(res *fhir.Patient) Pet {
	p := DefaultPet()
	p.ID = res.ID
	if len(res.Name) > 0 {
		p.Name = res.Name[0].Text
	}
	p.Gender = res.Gender
	p.BirthDate = fhir.ParseDate(res.BirthDate)

	animal := fhir.ExtNested(res.Extension, fhir.FieldAnimal)
	p.Species = fhir.ConceptText(fhir.ExtConcept(animal, fhir.FieldSpecies))
	p.Breed = fhir.ConceptText(fhir.ExtConcept(animal, fhir.FieldBreed))
	p.GenderStatus = fhir.ConceptText(fhir.ExtConcept(animal, fhir.FieldGenderStatus))

	p.MicrochipNumber = fhir.ExtString(res.Extension, fhir.FieldMicrochipNumber, "")
	p.Insured = fhir.ExtBool(res.Extension, fhir.FieldInsured, false)
	p.InsuranceCompany = fhir.ExtString(res.Extension, fhir.FieldInsuranceCompany, "")
	p.PolicyNumber = fhir.ExtString(res.Extension, fhir.FieldPolicyNumber, "")
	p.PassportNumber = fhir.ExtString(res.Extension, fhir.FieldPassportNumber, "")
	p.Weight = fhir.ExtDecimal(res.Extension, fhir.FieldWeight, 0)
	p.Color = fhir.ExtString(res.Extension, fhir.FieldColor, "")
	if photo := fhir.ExtAttachment(res.Extension, fhir.FieldPhoto); photo != nil {
		p.PhotoURL = photo.URL
		p.PhotoContentType = photo.ContentType
	}
	return p
}

// FromBundle extracts every Patient entry of a Bundle into Pets. Entries
// without a resource or with an unrecognized resourceType are skipped,
// never aborting the batch.
func FromBundle(raw json.RawMessage) []Pet {
	var pets []Pet
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypePatient {
			return
		}
		pets = append(pets, FromFHIR(res))
	})
	return pets
}

// PagedBundle wraps one page of pets in a searchset Bundle carrying the
// pagination tags.
func PagedBundle(pets []*Pet, page, limit, total int) *fhir.Bundle {
	resources := make([]interface{}, len(pets))
	for i, p := range pets {
		resources[i] = p.ToFHIR()
	}
	return fhir.NewPagedBundle(resources, page, limit, total)
}
