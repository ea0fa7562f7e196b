// Package medicalrecord maps uploaded medical documents to FHIR
// DocumentReference resources. The file itself lives in blob storage;
// only its metadata travels here, inside the content attachment.
package medicalrecord

import (
	"encoding/json"
	"time"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Record is the stored metadata of one medical document.
type Record struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id,omitempty"`
	Title       string    `json:"title,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	URL         string    `json:"url,omitempty"`
	Size        int64     `json:"size,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

func DefaultRecord() Record {
	return Record{}
}

// ToFHIR maps the document metadata to a DocumentReference with one
// content attachment.
func (r *Record) ToFHIR() *fhir.DocumentReference {
	res := &fhir.DocumentReference{
		ResourceType: fhir.TypeDocumentReference,
		ID:           r.ID,
		Status:       "current",
		Date:         fhir.FormatDateTime(r.CreatedAt),
	}
	if r.Title != "" {
		res.Type = &fhir.CodeableConcept{Text: r.Title}
	}
	if r.PetID != "" {
		res.Subject = &fhir.Reference{Reference: fhir.FormatReference(fhir.TypePatient, r.PetID)}
	}
	if r.URL != "" || r.ContentType != "" {
		res.Content = []fhir.DocumentContent{{
			Attachment: fhir.Attachment{
				ContentType: r.ContentType,
				URL:         r.URL,
				Size:        r.Size,
				Title:       r.Title,
				Creation:    fhir.FormatDateTime(r.CreatedAt),
			},
		}}
	}
	return res
}

// FromFHIR rebuilds the document metadata. A payload without content is
// tolerated: attachment-derived fields stay at their defaults.
func FromFHIR(raw json.RawMessage) Record {
	if fhir.ResourceTypeOf(raw) != fhir.TypeDocumentReference {
		return DefaultRecord()
	}
	var res fhir.DocumentReference
	if err := json.Unmarshal(raw, &res); err != nil {
		return DefaultRecord()
	}

	r := DefaultRecord()
	r.ID = res.ID
	r.Title = fhir.ConceptText(res.Type)
	r.CreatedAt = fhir.ParseDate(res.Date)
	if res.Subject != nil {
		r.PetID = fhir.ReferenceID(res.Subject.Reference)
	}
	if len(res.Content) > 0 {
		att := res.Content[0].Attachment
		r.ContentType = att.ContentType
		r.URL = att.URL
		r.Size = att.Size
		r.Title = fhir.StrOr(r.Title, att.Title)
	}
	return r
}

// FromBundle extracts every DocumentReference entry of a Bundle.
func FromBundle(raw json.RawMessage) []Record {
	var out []Record
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypeDocumentReference {
			return
		}
		out = append(out, FromFHIR(res))
	})
	return out
}

// PagedBundle wraps one page of documents in a searchset Bundle.
func PagedBundle(records []*Record, page, limit, total int) *fhir.Bundle {
	resources := make([]interface{}, len(records))
	for i, r := range records {
		resources[i] = r.ToFHIR()
	}
	return fhir.NewPagedBundle(resources, page, limit, total)
}
