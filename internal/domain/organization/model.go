// Package organization maps hospitals and clinics to FHIR Organization
// resources.
package organization

import (
	"encoding/json"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Organization is the domain record for a hospital or clinic.
type Organization struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone,omitempty"`
	Email           string  `json:"email,omitempty"`
	Website         string  `json:"website,omitempty"`
	AddressLine     string  `json:"address_line,omitempty"`
	City            string  `json:"city,omitempty"`
	State           string  `json:"state,omitempty"`
	PostalCode      string  `json:"postal_code,omitempty"`
	Country         string  `json:"country,omitempty"`
	ServicesOffered string  `json:"services_offered,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
}

func DefaultOrganization() Organization {
	return Organization{}
}

// ToFHIR maps the record to an Organization resource. Contact points
// carry a system discriminator so the reverse pass can reassign them.
func (o *Organization) ToFHIR() *fhir.Organization {
	res := &fhir.Organization{
		ResourceType: fhir.TypeOrganization,
		ID:           o.ID,
		Name:         o.Name,
	}
	addTelecom := func(system, value string) {
		if value != "" {
			res.Telecom = append(res.Telecom, fhir.ContactPoint{System: system, Value: value})
		}
	}
	addTelecom("phone", o.Phone)
	addTelecom("email", o.Email)
	addTelecom("url", o.Website)

	if o.AddressLine != "" || o.City != "" || o.State != "" || o.PostalCode != "" || o.Country != "" {
		addr := fhir.Address{
			City:       o.City,
			State:      o.State,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		}
		if o.AddressLine != "" {
			addr.Line = []string{o.AddressLine}
		}
		res.Address = []fhir.Address{addr}
	}
	if o.ServicesOffered != "" {
		res.Extension = append(res.Extension, fhir.BuildExtension(fhir.FieldServicesOffered, o.ServicesOffered))
	}
	if o.Rating != 0 {
		res.Extension = append(res.Extension, fhir.BuildExtension(fhir.FieldRating, o.Rating))
	}
	return res
}

// FromFHIR rebuilds the record, tolerating missing telecom and address.
func FromFHIR(raw json.RawMessage) Organization {
	if fhir.ResourceTypeOf(raw) != fhir.TypeOrganization {
		return DefaultOrganization()
	}
	var res fhir.Organization
	if err := json.Unmarshal(raw, &res); err != nil {
		return DefaultOrganization()
	}

	o := DefaultOrganization()
	o.ID = res.ID
	o.Name = res.Name
	for _, tp := range res.Telecom {
		switch tp.System {
		case "phone":
			o.Phone = tp.Value
		case "email":
			o.Email = tp.Value
		case "url":
			o.Website = tp.Value
		}
	}
	if len(res.Address) > 0 {
		addr := res.Address[0]
		if len(addr.Line) > 0 {
			o.AddressLine = addr.Line[0]
		}
		o.City = addr.City
		o.State = addr.State
		o.PostalCode = addr.PostalCode
		o.Country = addr.Country
	}
	o.ServicesOffered = fhir.ExtString(res.Extension, fhir.FieldServicesOffered, "")
	o.Rating = fhir.ExtDecimal(res.Extension, fhir.FieldRating, 0)
	return o
}

// FromBundle extracts every Organization entry of a Bundle.
func FromBundle(raw json.RawMessage) []Organization {
	var out []Organization
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypeOrganization {
			return
		}
		out = append(out, FromFHIR(res))
	})
	return out
}

// PagedBundle wraps one page of organizations in a searchset Bundle.
func PagedBundle(orgs []*Organization, page, limit, total int) *fhir.Bundle {
	resources := make([]interface{}, len(orgs))
	for i, o := range orgs {
		resources[i] = o.ToFHIR()
	}
	return fhir.NewPagedBundle(resources, page, limit, total)
}
