package fhir

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRegistry_URLsAreUnique(t *testing.T) {
	seen := map[string]FieldKey{}
	for _, key := range RegisteredFields() {
		def, ok := Definition(key)
		if !ok {
			t.Fatalf("Definition(%q) missing", key)
		}
		if !strings.HasPrefix(def.URL, "http://example.org/fhir/StructureDefinition/") {
			t.Errorf("%q: url %q outside canonical base", key, def.URL)
		}
		if prev, dup := seen[def.URL]; dup {
			t.Errorf("url %q registered for both %q and %q", def.URL, prev, key)
		}
		seen[def.URL] = key
	}
}

func TestURLFor_UnregisteredKey(t *testing.T) {
	got := URLFor(FieldKey("made-up"))
	if got != "http://example.org/fhir/StructureDefinition/made-up" {
		t.Errorf("URLFor fallback = %q", got)
	}
}

func TestBuilders_PopulateOneValue(t *testing.T) {
	e := MoneyExtension(FieldUnitPrice, 500)
	if e.ValueMoney == nil || e.ValueMoney.Value != 500 {
		t.Fatal("valueMoney not populated")
	}
	if e.ValueMoney.Currency != DefaultCurrency {
		t.Errorf("currency = %q, want %q", e.ValueMoney.Currency, DefaultCurrency)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 2 {
		t.Errorf("marshaled extension has %d keys, want url + one value key: %s", len(m), raw)
	}
}

func TestFindExtension(t *testing.T) {
	exts := []Extension{
		StringExtension(FieldMicrochipNumber, "981-0001"),
		BoolExtension(FieldInsured, true),
	}
	e, ok := FindExtension(exts, URLFor(FieldInsured))
	if !ok {
		t.Fatal("insured extension not found")
	}
	if e.ValueBoolean == nil || !*e.ValueBoolean {
		t.Error("insured value lost")
	}
	if _, ok := FindExtension(exts, "http://example.org/fhir/StructureDefinition/absent"); ok {
		t.Error("found extension that was never added")
	}
}

func TestGetters_ApplyDefaults(t *testing.T) {
	var none []Extension
	if got := ExtString(none, FieldColor, "brown"); got != "brown" {
		t.Errorf("ExtString default = %q", got)
	}
	if got := ExtInt(none, FieldYearsOfExperience, 0); got != 0 {
		t.Errorf("ExtInt default = %d", got)
	}
	if got := ExtBool(none, FieldInsured, false); got {
		t.Error("ExtBool default should be false")
	}
	if got := ExtDecimal(none, FieldWeight, 0); got != 0 {
		t.Errorf("ExtDecimal default = %v", got)
	}
	if got := ExtMoney(none, FieldSubtotal, 0); got != 0 {
		t.Errorf("ExtMoney default = %v", got)
	}
	if got := ExtAttachment(none, FieldPhoto); got != nil {
		t.Error("ExtAttachment should be nil when absent")
	}
	if got := ExtConcept(none, FieldSpecies); got != nil {
		t.Error("ExtConcept should be nil when absent")
	}
}

func TestGetters_ZeroValueReadsAsAbsent(t *testing.T) {
	zeroInt := 0
	zeroDec := 0.0
	exts := []Extension{
		StringExtension(FieldColor, ""),
		{URL: URLFor(FieldYearsOfExperience), ValueInteger: &zeroInt},
		{URL: URLFor(FieldWeight), ValueDecimal: &zeroDec},
		{URL: URLFor(FieldUnitPrice), ValueMoney: &Money{Value: 0}},
	}
	if got := ExtString(exts, FieldColor, "brown"); got != "brown" {
		t.Errorf("ExtString zero value = %q, want default", got)
	}
	if got := ExtInt(exts, FieldYearsOfExperience, 3); got != 3 {
		t.Errorf("ExtInt zero value = %d, want default", got)
	}
	if got := ExtDecimal(exts, FieldWeight, 4.5); got != 4.5 {
		t.Errorf("ExtDecimal zero value = %v, want default", got)
	}
	if got := ExtMoney(exts, FieldUnitPrice, 9); got != 9 {
		t.Errorf("ExtMoney zero value = %v, want default", got)
	}
}

func TestBuildExtension_RoutesByKind(t *testing.T) {
	if e := BuildExtension(FieldWeight, 12.5); e.ValueDecimal == nil || *e.ValueDecimal != 12.5 {
		t.Error("decimal field should land in valueDecimal")
	}
	if e := BuildExtension(FieldInsured, true); e.ValueBoolean == nil || !*e.ValueBoolean {
		t.Error("boolean field should land in valueBoolean")
	}
	if e := BuildExtension(FieldQuantity, 3); e.ValueInteger == nil || *e.ValueInteger != 3 {
		t.Error("integer field should land in valueInteger")
	}
	if e := BuildExtension(FieldUnitPrice, 500.0); e.ValueMoney == nil || e.ValueMoney.Value != 500 {
		t.Error("money field should land in valueMoney")
	}
	// kind mismatch degrades to the string rendering
	if e := BuildExtension(FieldWeight, "heavy"); e.ValueString != "heavy" {
		t.Errorf("mismatched value = %+v", e)
	}
	if e := BuildExtension(FieldKey("made-up"), 7); e.ValueString != "7" {
		t.Errorf("unregistered key = %+v", e)
	}
}

func TestNestedExtension(t *testing.T) {
	animal := NestedExtension(FieldAnimal, []Extension{
		ConceptExtension(FieldSpecies, Concept("dog", SpeciesCodes)),
		ConceptExtension(FieldBreed, CodeableConcept{Text: "Beagle"}),
	})
	children := ExtNested([]Extension{animal}, FieldAnimal)
	if len(children) != 2 {
		t.Fatalf("nested children = %d, want 2", len(children))
	}
	species := ExtConcept(children, FieldSpecies)
	if species == nil || ConceptText(species) != "dog" {
		t.Error("species lost inside animal block")
	}
}
