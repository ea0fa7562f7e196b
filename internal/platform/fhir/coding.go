package fhir

import (
	"fmt"
	"strconv"
	"strings"
)

// Coding system URIs. These are contracts shared by forward and reverse
// mappers; changing one requires a coordinated change on both sides.
const (
	SystemSpecies         = "http://example.org/fhir/CodeSystem/animal-species"
	SystemBreed           = "http://example.org/fhir/CodeSystem/animal-breed"
	SystemGenderStatus    = "http://example.org/fhir/CodeSystem/animal-gender-status"
	SystemPackageCategory = "http://example.org/fhir/CodeSystem/procedure-package-category"
	SystemComponent       = "http://example.org/fhir/CodeSystem/observation-component"
	SystemDaysOfWeek      = "http://hl7.org/fhir/days-of-week"
)

// SpeciesCodes maps domain species values to canonical SNOMED-derived codings.
var SpeciesCodes = map[string]Coding{
	"dog":    {System: SystemSpecies, Code: "canislf", Display: "Dog"},
	"cat":    {System: SystemSpecies, Code: "felis", Display: "Cat"},
	"rabbit": {System: SystemSpecies, Code: "oryctolagus", Display: "Rabbit"},
	"horse":  {System: SystemSpecies, Code: "equus", Display: "Horse"},
	"bird":   {System: SystemSpecies, Code: "aves", Display: "Bird"},
}

var GenderStatusCodes = map[string]Coding{
	"neutered": {System: SystemGenderStatus, Code: "neutered", Display: "Neutered"},
	"intact":   {System: SystemGenderStatus, Code: "intact", Display: "Intact"},
	"unknown":  {System: SystemGenderStatus, Code: "unknown", Display: "Unknown"},
}

var PackageCategoryCodes = map[string]Coding{
	"surgery":     {System: SystemPackageCategory, Code: "surgery", Display: "Surgery"},
	"dental":      {System: SystemPackageCategory, Code: "dental", Display: "Dental Care"},
	"grooming":    {System: SystemPackageCategory, Code: "grooming", Display: "Grooming"},
	"wellness":    {System: SystemPackageCategory, Code: "wellness", Display: "Wellness"},
	"vaccination": {System: SystemPackageCategory, Code: "vaccination", Display: "Vaccination"},
}

var ComponentCodes = map[string]Coding{
	"weight":      {System: SystemComponent, Code: "weight", Display: "Body Weight"},
	"temperature": {System: SystemComponent, Code: "temperature", Display: "Body Temperature"},
	"heart-rate":  {System: SystemComponent, Code: "heart-rate", Display: "Heart Rate"},
	"notes":       {System: SystemComponent, Code: "notes", Display: "Clinical Notes"},
}

// ResolveCoding maps a domain enumeration value to its canonical coding.
// Unknown values are not an error: they pass through with the raw value as
// both code and display so the resource stays well formed.
func ResolveCoding(value string, table map[string]Coding) Coding {
	if c, ok := table[strings.ToLower(value)]; ok {
		return c
	}
	return Coding{Code: value, Display: value}
}

// Concept wraps a resolved coding in a CodeableConcept, keeping the raw
// domain value as the text rendering so reverse mapping is lossless even
// for values absent from the table.
func Concept(value string, table map[string]Coding) CodeableConcept {
	return CodeableConcept{
		Coding: []Coding{ResolveCoding(value, table)},
		Text:   value,
	}
}

// ConceptText extracts the domain value from a CodeableConcept, preferring
// the free-text rendering and falling back to the first coding.
func ConceptText(cc *CodeableConcept) string {
	if cc == nil {
		return ""
	}
	if cc.Text != "" {
		return cc.Text
	}
	if len(cc.Coding) > 0 {
		if cc.Coding[0].Display != "" {
			return cc.Coding[0].Display
		}
		return cc.Coding[0].Code
	}
	return ""
}

// Day-of-week abbreviations per the FHIR days-of-week code system.
var dayNames = map[string]string{
	"mon": "Monday",
	"tue": "Tuesday",
	"wed": "Wednesday",
	"thu": "Thursday",
	"fri": "Friday",
	"sat": "Saturday",
	"sun": "Sunday",
}

var dayCodes = map[string]string{
	"monday":    "mon",
	"tuesday":   "tue",
	"wednesday": "wed",
	"thursday":  "thu",
	"friday":    "fri",
	"saturday":  "sat",
	"sunday":    "sun",
}

// DayName converts a FHIR day code ("mon") to the domain day name
// ("Monday"). Unrecognized codes pass through unchanged.
func DayName(code string) string {
	if n, ok := dayNames[strings.ToLower(code)]; ok {
		return n
	}
	return code
}

// DayCode converts a domain day name ("Monday") to the FHIR day code
// ("mon"). Unrecognized names are lowercased and truncated to three
// characters as a best effort.
func DayCode(name string) string {
	if c, ok := dayCodes[strings.ToLower(name)]; ok {
		return c
	}
	n := strings.ToLower(name)
	if len(n) > 3 {
		n = n[:3]
	}
	return n
}

// ClockTime is the domain vocabulary for a time of day: a 12-hour clock
// position with an AM/PM period.
type ClockTime struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Period string `json:"period"`
}

// ParseClockTime converts a 24-hour "HH:MM" string into a ClockTime.
// Malformed input resolves to midnight rather than an error.
func ParseClockTime(s string) ClockTime {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ClockTime{Hour: 12, Minute: 0, Period: "AM"}
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{Hour: 12, Minute: 0, Period: "AM"}
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return ClockTime{Hour: h12, Minute: m, Period: period}
}

// Format24 renders a ClockTime back to a 24-hour "HH:MM" string, the
// inverse of ParseClockTime.
func (t ClockTime) Format24() string {
	h := t.Hour % 12
	if strings.EqualFold(t.Period, "PM") {
		h += 12
	}
	return fmt.Sprintf("%02d:%02d", h, t.Minute)
}
