package appointment

import (
	"encoding/json"
	"testing"
	"time"
)

func sampleAppointment() Appointment {
	return Appointment{
		ID:              "appt-7",
		PetID:           "pet-001",
		VetID:           "vet-042",
		HospitalID:      "org-9",
		Status:          "booked",
		StartTime:       time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Purpose:         "Annual checkup",
		AppointmentType: "consultation",
		TimeSlot:        "02:30 PM",
	}
}

func TestToFHIR_Participants(t *testing.T) {
	a := sampleAppointment()
	res := a.ToFHIR()

	if res.ResourceType != "Appointment" {
		t.Fatalf("resourceType = %q", res.ResourceType)
	}
	if len(res.Participant) != 3 {
		t.Fatalf("participants = %d, want 3", len(res.Participant))
	}
	if res.Participant[0].Actor.Reference != "Patient/pet-001" {
		t.Errorf("pet participant = %q", res.Participant[0].Actor.Reference)
	}
	if res.Start != "2025-07-01T14:30:00Z" {
		t.Errorf("start = %q", res.Start)
	}
}

func TestToFHIR_EmptyRecord(t *testing.T) {
	var a Appointment
	res := a.ToFHIR()
	if res.ResourceType != "Appointment" {
		t.Fatalf("resourceType = %q", res.ResourceType)
	}
	if len(res.Participant) != 0 {
		t.Error("absent actors should yield no participant entries")
	}
	if len(res.Extension) != 0 {
		t.Error("empty record should carry no extensions")
	}
}

func TestRoundTrip(t *testing.T) {
	a := sampleAppointment()
	raw, err := json.Marshal(a.ToFHIR())
	if err != nil {
		t.Fatal(err)
	}
	got := FromFHIR(raw)
	if got != a {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, a)
	}
}

func TestFromFHIR_WrongType(t *testing.T) {
	got := FromFHIR([]byte(`{"resourceType":"Patient"}`))
	if got != DefaultAppointment() {
		t.Errorf("wrong resourceType should yield defaults, got %+v", got)
	}
}

func TestFromFHIR_UnknownParticipantIgnored(t *testing.T) {
	raw := []byte(`{
		"resourceType": "Appointment",
		"status": "booked",
		"participant": [
			{"actor": {"reference": "Device/thermometer-1"}},
			{"actor": {"reference": "Patient/pet-5"}}
		]
	}`)
	got := FromFHIR(raw)
	if got.PetID != "pet-5" {
		t.Errorf("pet id = %q", got.PetID)
	}
	if got.VetID != "" || got.HospitalID != "" {
		t.Error("unrecognized participant should not populate other fields")
	}
}

func TestFromBundle(t *testing.T) {
	a := sampleAppointment()
	raw, _ := json.Marshal(PagedBundle([]*Appointment{&a}, 1, 10, 1))
	got := FromBundle(raw)
	if len(got) != 1 || got[0] != a {
		t.Errorf("FromBundle = %+v", got)
	}
}
