package pet

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

func samplePet() Pet {
	return Pet{
		ID:               "pet-001",
		Name:             "Rex",
		Species:          "dog",
		Breed:            "Beagle",
		Gender:           "male",
		GenderStatus:     "neutered",
		BirthDate:        time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
		Weight:           12.5,
		Color:            "tricolor",
		MicrochipNumber:  "981-000012345678",
		Insured:          true,
		InsuranceCompany: "PetSure",
		PolicyNumber:     "PS-44821",
		PassportNumber:   "EU-778291",
		PhotoURL:         "https://cdn.example.org/pets/rex.jpg",
		PhotoContentType: "image/jpeg",
	}
}

func TestToFHIR_CoreShape(t *testing.T) {
	p := samplePet()
	res := p.ToFHIR()

	if res.ResourceType != "Patient" {
		t.Fatalf("resourceType = %q", res.ResourceType)
	}
	if len(res.Name) != 1 || res.Name[0].Text != "Rex" {
		t.Errorf("name = %+v, want one entry with text Rex", res.Name)
	}
	if res.Gender != "male" {
		t.Errorf("gender = %q", res.Gender)
	}
	if res.BirthDate != "2021-06-15" {
		t.Errorf("birthDate = %q", res.BirthDate)
	}

	animal := fhir.ExtNested(res.Extension, fhir.FieldAnimal)
	if len(animal) != 3 {
		t.Fatalf("animal block has %d children, want species/breed/genderStatus", len(animal))
	}
	species := fhir.ExtConcept(animal, fhir.FieldSpecies)
	if species == nil || species.Coding[0].Code != "canislf" {
		t.Error("species coding not resolved through the table")
	}
	if fhir.ConceptText(fhir.ExtConcept(animal, fhir.FieldGenderStatus)) != "neutered" {
		t.Error("gender status lost")
	}

	photo := fhir.ExtAttachment(res.Extension, fhir.FieldPhoto)
	if photo == nil || photo.ContentType != "image/jpeg" || photo.URL == "" {
		t.Error("photo metadata should travel as valueAttachment")
	}
	if fhir.ExtString(res.Extension, fhir.FieldAge, "") == "" {
		t.Error("age should be derived from the birth date")
	}
}

func TestToFHIR_EmptyRecordDefaults(t *testing.T) {
	var p Pet
	res := p.ToFHIR()

	if res.ResourceType != "Patient" {
		t.Fatalf("resourceType = %q, want Patient even for an empty record", res.ResourceType)
	}
	if res.Name != nil {
		t.Error("empty name should be omitted, not an empty entry")
	}
	if len(res.Extension) != 0 {
		t.Errorf("empty record produced %d extensions, want 0", len(res.Extension))
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for k, v := range m {
		if v == nil {
			t.Errorf("field %q serialized as null; optional fields must be omitted", k)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	p := samplePet()
	raw, err := json.Marshal(p.ToFHIR())
	if err != nil {
		t.Fatal(err)
	}
	got := FromFHIR(raw)
	if got != p {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestRoundTrip_EmptyRecord(t *testing.T) {
	var p Pet
	raw, _ := json.Marshal(p.ToFHIR())
	if got := FromFHIR(raw); got != p {
		t.Errorf("empty round trip = %+v", got)
	}
}

func TestFromFHIR_WrongResourceType(t *testing.T) {
	got := FromFHIR([]byte(`{"resourceType":"Observation","id":"x"}`))
	if got != DefaultPet() {
		t.Errorf("wrong resourceType should yield the all-defaults record, got %+v", got)
	}
}

func TestFromFHIR_MalformedPayload(t *testing.T) {
	if got := FromFHIR([]byte(`{{{`)); got != DefaultPet() {
		t.Errorf("malformed payload should yield defaults, got %+v", got)
	}
}

func TestFromBundle_SkipsBadEntries(t *testing.T) {
	p := samplePet()
	petRaw, _ := json.Marshal(p.ToFHIR())
	raw := []byte(`{
		"resourceType": "Bundle",
		"type": "searchset",
		"total": 4,
		"entry": [
			{"resource": ` + string(petRaw) + `},
			{"fullUrl": "Patient/missing"},
			{"resource": {"id": "no-type"}},
			{"resource": {"resourceType": "Organization", "id": "org-1"}}
		]
	}`)
	pets := FromBundle(raw)
	if len(pets) != 1 {
		t.Fatalf("parsed %d pets, want 1", len(pets))
	}
	if pets[0].Name != "Rex" {
		t.Errorf("pet name = %q", pets[0].Name)
	}
}

func TestPagedBundle(t *testing.T) {
	p := samplePet()
	b := PagedBundle([]*Pet{&p}, 2, 5, 47)
	if b.Total != 47 {
		t.Errorf("total = %d, want 47", b.Total)
	}
	totalPages, page, limit := b.PageTags()
	if totalPages != 10 || page != 2 || limit != 5 {
		t.Errorf("tags = (%d,%d,%d), want (10,2,5)", totalPages, page, limit)
	}
	if b.Entry[0].FullURL != "Patient/pet-001" {
		t.Errorf("fullUrl = %q", b.Entry[0].FullURL)
	}
}
