// Package provider maps veterinary provider profiles to FHIR. A single
// profile fans out into five resources (Practitioner, PractitionerRole,
// Location, Basic, Consent) carried together in a collection Bundle,
// and the reverse pass merges whichever of those resources are present
// back into one record.
package provider

import (
	"encoding/json"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// WorkingHour is one recurring availability window.
type WorkingHour struct {
	Day   string         `json:"day"`
	Start fhir.ClockTime `json:"start"`
	End   fhir.ClockTime `json:"end"`
}

// Profile is the domain record for a provider.
type Profile struct {
	ID                string        `json:"id"`
	FirstName         string        `json:"first_name,omitempty"`
	LastName          string        `json:"last_name,omitempty"`
	Specialization    string        `json:"specialization,omitempty"`
	Qualification     string        `json:"qualification,omitempty"`
	Phone             string        `json:"phone,omitempty"`
	Email             string        `json:"email,omitempty"`
	AddressLine       string        `json:"address_line,omitempty"`
	City              string        `json:"city,omitempty"`
	State             string        `json:"state,omitempty"`
	PostalCode        string        `json:"postal_code,omitempty"`
	Country           string        `json:"country,omitempty"`
	ConsultationFee   float64       `json:"consultation_fee,omitempty"`
	Biography         string        `json:"biography,omitempty"`
	Available         bool          `json:"available,omitempty"`
	YearsOfExperience int           `json:"years_of_experience,omitempty"`
	ConsentStatus     string        `json:"consent_status,omitempty"`
	WorkingHours      []WorkingHour `json:"working_hours,omitempty"`
}

func DefaultProfile() Profile {
	return Profile{}
}

// FullName joins the name parts, tolerating either being empty.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// ToPractitioner maps name, contact points and qualification.
func (p *Profile) ToPractitioner() *fhir.Practitioner {
	res := &fhir.Practitioner{
		ResourceType: fhir.TypePractitioner,
		ID:           p.ID,
	}
	if p.FirstName != "" || p.LastName != "" {
		name := fhir.HumanName{Use: "official", Text: p.FullName(), Family: p.LastName}
		if p.FirstName != "" {
			name.Given = []string{p.FirstName}
		}
		res.Name = []fhir.HumanName{name}
	}
	if p.Phone != "" {
		res.Telecom = append(res.Telecom, fhir.ContactPoint{System: "phone", Value: p.Phone})
	}
	if p.Email != "" {
		res.Telecom = append(res.Telecom, fhir.ContactPoint{System: "email", Value: p.Email})
	}
	if p.Qualification != "" {
		res.Qualification = []fhir.PractitionerQualification{
			{Code: fhir.CodeableConcept{Text: p.Qualification}},
		}
	}
	return res
}

// ToRole maps specialty and working hours. Day names become FHIR
// days-of-week codes and clock positions become 24-hour strings.
func (p *Profile) ToRole() *fhir.PractitionerRole {
	res := &fhir.PractitionerRole{
		ResourceType: fhir.TypePractitionerRole,
		ID:           p.ID + "-role",
	}
	if p.ID != "" {
		res.Practitioner = &fhir.Reference{Reference: fhir.FormatReference(fhir.TypePractitioner, p.ID)}
	}
	if p.Specialization != "" {
		res.Specialty = []fhir.CodeableConcept{{Text: p.Specialization}}
	}
	for _, wh := range p.WorkingHours {
		res.AvailableTime = append(res.AvailableTime, fhir.AvailableTime{
			DaysOfWeek:         []string{fhir.DayCode(wh.Day)},
			AvailableStartTime: wh.Start.Format24(),
			AvailableEndTime:   wh.End.Format24(),
		})
	}
	return res
}

// ToLocation maps the practice address.
func (p *Profile) ToLocation() *fhir.Location {
	res := &fhir.Location{
		ResourceType: fhir.TypeLocation,
		ID:           p.ID + "-location",
	}
	if p.AddressLine != "" || p.City != "" || p.State != "" || p.PostalCode != "" || p.Country != "" {
		addr := &fhir.Address{
			City:       p.City,
			State:      p.State,
			PostalCode: p.PostalCode,
			Country:    p.Country,
		}
		if p.AddressLine != "" {
			addr.Line = []string{p.AddressLine}
		}
		res.Address = addr
	}
	return res
}

// ToBasic carries the profile attributes with no core FHIR home as a
// Basic resource with registered extensions.
func (p *Profile) ToBasic() *fhir.Basic {
	res := &fhir.Basic{
		ResourceType: fhir.TypeBasic,
		ID:           p.ID + "-profile",
		Code:         &fhir.CodeableConcept{Text: "provider-profile"},
	}
	if p.ID != "" {
		res.Subject = &fhir.Reference{Reference: fhir.FormatReference(fhir.TypePractitioner, p.ID)}
	}
	if p.ConsultationFee != 0 {
		res.Extension = append(res.Extension, fhir.MoneyExtension(fhir.FieldConsultationFee, p.ConsultationFee))
	}
	if p.Biography != "" {
		res.Extension = append(res.Extension, fhir.StringExtension(fhir.FieldBiography, p.Biography))
	}
	if p.Available {
		res.Extension = append(res.Extension, fhir.BoolExtension(fhir.FieldIsAvailable, p.Available))
	}
	if p.YearsOfExperience != 0 {
		res.Extension = append(res.Extension, fhir.IntExtension(fhir.FieldYearsOfExperience, p.YearsOfExperience))
	}
	return res
}

// ToConsent maps the data-sharing consent status.
func (p *Profile) ToConsent() *fhir.Consent {
	res := &fhir.Consent{
		ResourceType: fhir.TypeConsent,
		ID:           p.ID + "-consent",
		Status:       p.ConsentStatus,
	}
	if p.ConsentStatus != "" {
		res.Scope = &fhir.CodeableConcept{Text: "patient-privacy"}
	}
	return res
}

// ToBundle fans the profile out into its five resources wrapped in a
// collection Bundle.
func (p *Profile) ToBundle() *fhir.Bundle {
	return fhir.NewCollectionBundle([]interface{}{
		p.ToPractitioner(),
		p.ToRole(),
		p.ToLocation(),
		p.ToBasic(),
		p.ToConsent(),
	})
}

// FromBundle merges the recognized resources of a Bundle back into one
// profile. Entries of other resource types are ignored, and any of the
// five may be absent; missing attributes keep their defaults.
func FromBundle(raw json.RawMessage) Profile {
	p := DefaultProfile()
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		switch rt {
		case fhir.TypePractitioner:
			p.applyPractitioner(res)
		case fhir.TypePractitionerRole:
			p.applyRole(res)
		case fhir.TypeLocation:
			p.applyLocation(res)
		case fhir.TypeBasic:
			p.applyBasic(res)
		case fhir.TypeConsent:
			p.applyConsent(res)
		}
	})
	return p
}

func (p *Profile) applyPractitioner(raw json.RawMessage) {
	var res fhir.Practitioner
	if err := json.Unmarshal(raw, &res); err != nil {
		return
	}
	p.ID = res.ID
	if len(res.Name) > 0 {
		name := res.Name[0]
		p.LastName = name.Family
		if len(name.Given) > 0 {
			p.FirstName = name.Given[0]
		}
	}
	for _, tp := range res.Telecom {
		switch tp.System {
		case "phone":
			p.Phone = tp.Value
		case "email":
			p.Email = tp.Value
		}
	}
	if len(res.Qualification) > 0 {
		p.Qualification = fhir.ConceptText(&res.Qualification[0].Code)
	}
}

func (p *Profile) applyRole(raw json.RawMessage) {
	var res fhir.PractitionerRole
	if err := json.Unmarshal(raw, &res); err != nil {
		return
	}
	if len(res.Specialty) > 0 {
		p.Specialization = fhir.ConceptText(&res.Specialty[0])
	}
	for _, at := range res.AvailableTime {
		day := ""
		if len(at.DaysOfWeek) > 0 {
			day = fhir.DayName(at.DaysOfWeek[0])
		}
		p.WorkingHours = append(p.WorkingHours, WorkingHour{
			Day:   day,
			Start: fhir.ParseClockTime(at.AvailableStartTime),
			End:   fhir.ParseClockTime(at.AvailableEndTime),
		})
	}
}

func (p *Profile) applyLocation(raw json.RawMessage) {
	var res fhir.Location
	if err := json.Unmarshal(raw, &res); err != nil {
		return
	}
	if res.Address == nil {
		return
	}
	if len(res.Address.Line) > 0 {
		p.AddressLine = res.Address.Line[0]
	}
	p.City = res.Address.City
	p.State = res.Address.State
	p.PostalCode = res.Address.PostalCode
	p.Country = res.Address.Country
}

func (p *Profile) applyBasic(raw json.RawMessage) {
	var res fhir.Basic
	if err := json.Unmarshal(raw, &res); err != nil {
		return
	}
	p.ConsultationFee = fhir.ExtMoney(res.Extension, fhir.FieldConsultationFee, 0)
	p.Biography = fhir.ExtString(res.Extension, fhir.FieldBiography, "")
	p.Available = fhir.ExtBool(res.Extension, fhir.FieldIsAvailable, false)
	p.YearsOfExperience = fhir.ExtInt(res.Extension, fhir.FieldYearsOfExperience, 0)
}

func (p *Profile) applyConsent(raw json.RawMessage) {
	var res fhir.Consent
	if err := json.Unmarshal(raw, &res); err != nil {
		return
	}
	p.ConsentStatus = res.Status
}
