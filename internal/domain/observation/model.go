// Package observation maps flat key/value vitals and feedback records to
// FHIR Observation resources. Component values are dynamically typed;
// the fhir value union decides which value* field each one lands in.
package observation

import (
	"encoding/json"
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Record is one captured set of measurements for a pet.
type Record struct {
	ID         string      `json:"id"`
	PetID      string      `json:"pet_id,omitempty"`
	RecordedAt time.Time   `json:"recorded_at,omitempty"`
	Components []Component `json:"components,omitempty"`
}

// Component is one measurement: a key plus a dynamically typed value.
type Component struct {
	Key   string
	Value fhir.ComponentValue
}

func DefaultRecord() Record {
	return Record{}
}

// NewRecord builds a Record from raw key/value pairs, inferring each
// value's union variant. Pair order is preserved.
func NewRecord(petID string, recordedAt time.Time, pairs []KeyValue) Record {
	r := Record{PetID: petID, RecordedAt: recordedAt}
	for _, kv := range pairs {
		r.Components = append(r.Components, Component{Key: kv.Key, Value: fhir.InferValue(kv.Value)})
	}
	return r
}

// KeyValue is a raw inbound measurement before type inference.
type KeyValue struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// ToFHIR maps the record to an Observation with one typed component per
// measurement, preserving order.
func (r *Record) ToFHIR() *fhir.Observation {
	res := &fhir.Observation{
		ResourceType:      fhir.TypeObservation,
		ID:                r.ID,
		Status:            "final",
		EffectiveDateTime: fhir.FormatDateTime(r.RecordedAt),
	}
	if r.PetID != "" {
		res.Subject = &fhir.Reference{Reference: fhir.FormatReference(fhir.TypePatient, r.PetID)}
	}
	for _, c := range r.Components {
		res.Component = append(res.Component, fhir.NewComponent(c.Key, c.Value))
	}
	return res
}

// FromFHIR rebuilds the flat component list from a raw Observation.
func FromFHIR(raw json.RawMessage) Record {
	if fhir.ResourceTypeOf(raw) != fhir.TypeObservation {
		return DefaultRecord()
	}
	var res fhir.Observation
	if err := json.Unmarshal(raw, &res); err != nil {
		return DefaultRecord()
	}

	r := DefaultRecord()
	r.ID = res.ID
	r.RecordedAt = fhir.ParseDate(res.EffectiveDateTime)
	if res.Subject != nil {
		r.PetID = fhir.ReferenceID(res.Subject.Reference)
	}
	for _, c := range res.Component {
		r.Components = append(r.Components, Component{Key: c.Key(), Value: c.Value()})
	}
	return r
}

// FromBundle extracts every Observation entry of a Bundle.
func FromBundle(raw json.RawMessage) []Record {
	var out []Record
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypeObservation {
			return
		}
		out = append(out, FromFHIR(res))
	})
	return out
}
