package immunization

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

func sampleVaccination() Vaccination {
	return Vaccination{
		ID:              "vac-11",
		PetID:           "pet-001",
		VaccineName:     "Rabies",
		Manufacturer:    "VetPharm",
		BatchNumber:     "RB-2025-118",
		VaccinationDate: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		ExpiryDate:      time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		NextDueDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestToFHIR_CoreShape(t *testing.T) {
	v := sampleVaccination()
	res := v.ToFHIR()

	if res.ResourceType != "Immunization" {
		t.Fatalf("resourceType = %q", res.ResourceType)
	}
	if res.Status != "completed" {
		t.Errorf("status = %q", res.Status)
	}
	if fhir.ConceptText(res.VaccineCode) != "Rabies" {
		t.Error("vaccine name lost")
	}
	if res.LotNumber != "RB-2025-118" {
		t.Errorf("lotNumber = %q", res.LotNumber)
	}
	if res.Patient == nil || res.Patient.Reference != "Patient/pet-001" {
		t.Error("patient reference missing")
	}
	if got := fhir.ExtString(res.Extension, fhir.FieldNextDueDate, ""); got != "2026-01-01" {
		t.Errorf("next-due-date extension = %q", got)
	}
}

func TestToFHIR_EmptyRecord(t *testing.T) {
	var v Vaccination
	res := v.ToFHIR()
	if res.ResourceType != "Immunization" || res.Status != "completed" {
		t.Fatalf("core shape = %s/%s", res.ResourceType, res.Status)
	}
	if res.VaccineCode != nil || res.Patient != nil || len(res.Extension) != 0 {
		t.Error("empty record should omit optional attributes")
	}
}

func TestRoundTrip(t *testing.T) {
	v := sampleVaccination()
	raw, err := json.Marshal(v.ToFHIR())
	if err != nil {
		t.Fatal(err)
	}
	if got := FromFHIR(raw); got != v {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, v)
	}
}

func TestFromFHIR_WrongType(t *testing.T) {
	if got := FromFHIR([]byte(`{"resourceType":"Patient"}`)); got != DefaultVaccination() {
		t.Errorf("wrong resourceType should yield defaults, got %+v", got)
	}
}

func TestFromBundle(t *testing.T) {
	v := sampleVaccination()
	raw, _ := json.Marshal(PagedBundle([]*Vaccination{&v}, 1, 10, 1))
	got := FromBundle(raw)
	if len(got) != 1 || got[0] != v {
		t.Errorf("FromBundle = %+v", got)
	}
}
