// Package appointment maps booking records to FHIR Appointment resources
// and back. Participants are carried as typed references and merged back
// by their resource-type prefix on the reverse pass.
package appointment

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Appointment is the domain booking record.
type Appointment struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id,omitempty"`
	VetID           string    `json:"vet_id,omitempty"`
	HospitalID      string    `json:"hospital_id,omitempty"`
	Status          string    `json:"status,omitempty"`
	StartTime       time.Time `json:"start_time,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Purpose         string    `json:"purpose,omitempty"`
	AppointmentType string    `json:"appointment_type,omitempty"`
	TimeSlot        string    `json:"time_slot,omitempty"`
}

func DefaultAppointment() Appointment {
	return Appointment{}
}

// ToFHIR maps a booking to an Appointment resource. Each present actor
// becomes one participant entry with status accepted.
func (a *Appointment) ToFHIR() *fhir.Appointment {
	res := &fhir.Appointment{
		ResourceType:    fhir.TypeAppointment,
		ID:              a.ID,
		Status:          a.Status,
		Description:     a.Purpose,
		Start:           fhir.FormatDateTime(a.StartTime),
		MinutesDuration: a.DurationMinutes,
	}
	addParticipant := func(resourceType, id string) {
		if id == "" {
			return
		}
		res.Participant = append(res.Participant, fhir.AppointmentParticipant{
			Actor:  fhir.Reference{Reference: fhir.FormatReference(resourceType, id)},
			Status: "accepted",
		})
	}
	addParticipant(fhir.TypePatient, a.PetID)
	addParticipant(fhir.TypePractitioner, a.VetID)
	addParticipant(fhir.TypeOrganization, a.HospitalID)

	if a.AppointmentType != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldAppointmentType, a.AppointmentType))
	}
	if a.TimeSlot != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldTimeSlot, a.TimeSlot))
	}
	return res
}

// FromFHIR rebuilds a booking from a raw Appointment resource, applying
// defaults for anything absent. Participants are assigned back to domain
// fields by the resource-type prefix of their actor reference.
func FromFHIR(raw json.RawMessage) Appointment {
	if fhir.ResourceTypeOf(raw) != fhir.TypeAppointment {
		return DefaultAppointment()
	}
	var res fhir.Appointment
	if err := json.Unmarshal(raw, &res); err != nil {
		return DefaultAppointment()
	}

	a := DefaultAppointment()
	a.ID = res.ID
	a.Status = res.Status
	a.Purpose = res.Description
	a.StartTime = fhir.ParseDate(res.Start)
	a.DurationMinutes = res.MinutesDuration
	for _, part := range res.Participant {
		ref := part.Actor.Reference
		switch {
		case strings.HasPrefix(ref, fhir.TypePatient+"/"):
			a.PetID = fhir.ReferenceID(ref)
		case strings.HasPrefix(ref, fhir.TypePractitioner+"/"):
			a.VetID = fhir.ReferenceID(ref)
		case strings.HasPrefix(ref, fhir.TypeOrganization+"/"):
			a.HospitalID = fhir.ReferenceID(ref)
		}
	}
	a.AppointmentType = fhir.ExtString(res.Extension, fhir.FieldAppointmentType, "")
	a.TimeSlot = fhir.ExtString(res.Extension, fhir.FieldTimeSlot, "")
	return a
}

// FromBundle extracts every Appointment entry of a Bundle, skipping
// entries that are missing a resource or carry another resource type.
func FromBundle(raw json.RawMessage) []Appointment {
	var out []Appointment
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypeAppointment {
			return
		}
		out = append(out, FromFHIR(res))
	})
	return out
}

// PagedBundle wraps one page of bookings in a searchset Bundle.
func PagedBundle(appts []*Appointment, page, limit, total int) *fhir.Bundle {
	resources := make([]interface{}, len(appts))
	for i, a := range appts {
		resources[i] = a.ToFHIR()
	}
	return fhir.NewPagedBundle(resources, page, limit, total)
}
