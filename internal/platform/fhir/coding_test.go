package fhir

import "testing"

func TestResolveCoding_Known(t *testing.T) {
	c := ResolveCoding("dog", SpeciesCodes)
	if c.System != SystemSpecies {
		t.Errorf("system = %q, want %q", c.System, SystemSpecies)
	}
	if c.Code != "canislf" {
		t.Errorf("code = %q, want canislf", c.Code)
	}
	if c.Display != "Dog" {
		t.Errorf("display = %q, want Dog", c.Display)
	}
}

func TestResolveCoding_CaseInsensitive(t *testing.T) {
	c := ResolveCoding("Dog", SpeciesCodes)
	if c.Code != "canislf" {
		t.Errorf("code = %q, want canislf", c.Code)
	}
}

func TestResolveCoding_UnknownFallsThrough(t *testing.T) {
	c := ResolveCoding("unknown-value", SpeciesCodes)
	if c.Code != "unknown-value" {
		t.Errorf("code = %q, want unknown-value", c.Code)
	}
	if c.Display != "unknown-value" {
		t.Errorf("display = %q, want unknown-value", c.Display)
	}
	if c.System != "" {
		t.Errorf("system = %q, want empty for fallback", c.System)
	}
}

func TestConcept_RoundTrip(t *testing.T) {
	cc := Concept("axolotl", SpeciesCodes)
	if got := ConceptText(&cc); got != "axolotl" {
		t.Errorf("ConceptText = %q, want axolotl", got)
	}
}

func TestConceptText_Defaults(t *testing.T) {
	if got := ConceptText(nil); got != "" {
		t.Errorf("ConceptText(nil) = %q, want empty", got)
	}
	cc := &CodeableConcept{Coding: []Coding{{Code: "x"}}}
	if got := ConceptText(cc); got != "x" {
		t.Errorf("ConceptText = %q, want code fallback x", got)
	}
}

func TestDayName(t *testing.T) {
	cases := map[string]string{
		"mon": "Monday",
		"tue": "Tuesday",
		"SUN": "Sunday",
		"xyz": "xyz",
	}
	for code, want := range cases {
		if got := DayName(code); got != want {
			t.Errorf("DayName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestDayCode(t *testing.T) {
	if got := DayCode("Wednesday"); got != "wed" {
		t.Errorf("DayCode(Wednesday) = %q, want wed", got)
	}
	if got := DayCode("Someday"); got != "som" {
		t.Errorf("DayCode(Someday) = %q, want som", got)
	}
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want ClockTime
	}{
		{"14:30", ClockTime{Hour: 2, Minute: 30, Period: "PM"}},
		{"09:05", ClockTime{Hour: 9, Minute: 5, Period: "AM"}},
		{"00:15", ClockTime{Hour: 12, Minute: 15, Period: "AM"}},
		{"12:00", ClockTime{Hour: 12, Minute: 0, Period: "PM"}},
		{"garbage", ClockTime{Hour: 12, Minute: 0, Period: "AM"}},
		{"", ClockTime{Hour: 12, Minute: 0, Period: "AM"}},
		{"25:99", ClockTime{Hour: 12, Minute: 0, Period: "AM"}},
	}
	for _, tc := range cases {
		if got := ParseClockTime(tc.in); got != tc.want {
			t.Errorf("ParseClockTime(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestClockTime_Format24RoundTrip(t *testing.T) {
	for _, s := range []string{"14:30", "09:05", "00:15", "12:00", "23:59"} {
		if got := ParseClockTime(s).Format24(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}
