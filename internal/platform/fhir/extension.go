package fhir

import "fmt"

// Extension carries a non-standard field keyed by a canonical URL.
// Exactly one value* field is populated, or Extension for a nested block.
type Extension struct {
	URL                  string           `json:"url"`
	ValueString          string           `json:"valueString,omitempty"`
	ValueInteger         *int             `json:"valueInteger,omitempty"`
	ValueBoolean         *bool            `json:"valueBoolean,omitempty"`
	ValueDecimal         *float64         `json:"valueDecimal,omitempty"`
	ValueQuantity        *Quantity        `json:"valueQuantity,omitempty"`
	ValueMoney           *Money           `json:"valueMoney,omitempty"`
	ValueAttachment      *Attachment      `json:"valueAttachment,omitempty"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
	Extension            []Extension      `json:"extension,omitempty"`
}

// ValueKind names which value* variant an extension carries.
type ValueKind string

const (
	KindString     ValueKind = "string"
	KindInteger    ValueKind = "integer"
	KindBoolean    ValueKind = "boolean"
	KindDecimal    ValueKind = "decimal"
	KindQuantity   ValueKind = "quantity"
	KindMoney      ValueKind = "money"
	KindAttachment ValueKind = "attachment"
	KindConcept    ValueKind = "codeableConcept"
	KindNested     ValueKind = "nested"
)

// FieldKey identifies a registered extension field. The registry below is
// the single source of truth binding each key to its URL and value kind,
// so forward and reverse mappers cannot drift apart.
type FieldKey string

const (
	FieldAnimal            FieldKey = "animal"
	FieldSpecies           FieldKey = "species"
	FieldBreed             FieldKey = "breed"
	FieldGenderStatus      FieldKey = "gender-status"
	FieldMicrochipNumber   FieldKey = "microchip-number"
	FieldInsured           FieldKey = "insured"
	FieldInsuranceCompany  FieldKey = "insurance-company"
	FieldPolicyNumber      FieldKey = "policy-number"
	FieldPassportNumber    FieldKey = "passport-number"
	FieldWeight            FieldKey = "weight"
	FieldColor             FieldKey = "color"
	FieldPhoto             FieldKey = "photo"
	FieldAge               FieldKey = "age"
	FieldAppointmentType   FieldKey = "appointment-type"
	FieldTimeSlot          FieldKey = "time-slot"
	FieldItemType          FieldKey = "item-type"
	FieldQuantity          FieldKey = "quantity"
	FieldUnitPrice         FieldKey = "unit-price"
	FieldSubtotal          FieldKey = "subtotal"
	FieldTotalPrice        FieldKey = "total-price"
	FieldServicesOffered   FieldKey = "services-offered"
	FieldRating            FieldKey = "rating"
	FieldNextDueDate       FieldKey = "next-due-date"
	FieldConsultationFee   FieldKey = "consultation-fee"
	FieldBiography         FieldKey = "biography"
	FieldIsAvailable       FieldKey = "is-available"
	FieldYearsOfExperience FieldKey = "years-of-experience"
)

// ExtensionDef binds a field key to its canonical URL and value kind.
type ExtensionDef struct {
	URL  string
	Kind ValueKind
}

const extensionBase = "http://example.org/fhir/StructureDefinition/"

var registry = map[FieldKey]ExtensionDef{
	FieldAnimal:            {extensionBase + "animal", KindNested},
	FieldSpecies:           {extensionBase + "species", KindConcept},
	FieldBreed:             {extensionBase + "breed", KindConcept},
	FieldGenderStatus:      {extensionBase + "gender-status", KindConcept},
	FieldMicrochipNumber:   {extensionBase + "microchip-number", KindString},
	FieldInsured:           {extensionBase + "insured", KindBoolean},
	FieldInsuranceCompany:  {extensionBase + "insurance-company", KindString},
	FieldPolicyNumber:      {extensionBase + "policy-number", KindString},
	FieldPassportNumber:    {extensionBase + "passport-number", KindString},
	FieldWeight:            {extensionBase + "weight", KindDecimal},
	FieldColor:             {extensionBase + "color", KindString},
	FieldPhoto:             {extensionBase + "photo", KindAttachment},
	FieldAge:               {extensionBase + "age", KindString},
	FieldAppointmentType:   {extensionBase + "appointment-type", KindString},
	FieldTimeSlot:          {extensionBase + "time-slot", KindString},
	FieldItemType:          {extensionBase + "item-type", KindString},
	FieldQuantity:          {extensionBase + "quantity", KindInteger},
	FieldUnitPrice:         {extensionBase + "unit-price", KindMoney},
	FieldSubtotal:          {extensionBase + "subtotal", KindMoney},
	FieldTotalPrice:        {extensionBase + "total-price", KindMoney},
	FieldServicesOffered:   {extensionBase + "services-offered", KindString},
	FieldRating:            {extensionBase + "rating", KindDecimal},
	FieldNextDueDate:       {extensionBase + "next-due-date", KindString},
	FieldConsultationFee:   {extensionBase + "consultation-fee", KindMoney},
	FieldBiography:         {extensionBase + "biography", KindString},
	FieldIsAvailable:       {extensionBase + "is-available", KindBoolean},
	FieldYearsOfExperience: {extensionBase + "years-of-experience", KindInteger},
}

// Definition returns the registry entry for a field key.
func Definition(key FieldKey) (ExtensionDef, bool) {
	def, ok := registry[key]
	return def, ok
}

// URLFor returns the canonical extension URL for a registered field key.
// Unregistered keys fall back to the base URL plus the key itself so the
// output remains well formed.
func URLFor(key FieldKey) string {
	if def, ok := registry[key]; ok {
		return def.URL
	}
	return extensionBase + string(key)
}

// RegisteredFields returns all field keys in the registry.
func RegisteredFields() []FieldKey {
	keys := make([]FieldKey, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}

// --- builders ---

func StringExtension(key FieldKey, v string) Extension {
	return Extension{URL: URLFor(key), ValueString: v}
}

func IntExtension(key FieldKey, v int) Extension {
	return Extension{URL: URLFor(key), ValueInteger: &v}
}

func BoolExtension(key FieldKey, v bool) Extension {
	return Extension{URL: URLFor(key), ValueBoolean: &v}
}

func DecimalExtension(key FieldKey, v float64) Extension {
	return Extension{URL: URLFor(key), ValueDecimal: &v}
}

func MoneyExtension(key FieldKey, v float64) Extension {
	m := NewMoney(v)
	return Extension{URL: URLFor(key), ValueMoney: &m}
}

func AttachmentExtension(key FieldKey, a Attachment) Extension {
	return Extension{URL: URLFor(key), ValueAttachment: &a}
}

func ConceptExtension(key FieldKey, cc CodeableConcept) Extension {
	return Extension{URL: URLFor(key), ValueCodeableConcept: &cc}
}

func NestedExtension(key FieldKey, children []Extension) Extension {
	return Extension{URL: URLFor(key), Extension: children}
}

// BuildExtension routes a dynamically typed value into the value slot
// the registry declares for the key. Values that do not fit the
// declared kind fall back to their string rendering, keeping the
// extension well formed.
func BuildExtension(key FieldKey, value interface{}) Extension {
	def, ok := registry[key]
	if !ok {
		return StringExtension(key, fmt.Sprintf("%v", value))
	}
	switch def.Kind {
	case KindInteger:
		if v, ok := value.(int); ok {
			return IntExtension(key, v)
		}
	case KindBoolean:
		if v, ok := value.(bool); ok {
			return BoolExtension(key, v)
		}
	case KindDecimal:
		if v, ok := value.(float64); ok {
			return DecimalExtension(key, v)
		}
	case KindMoney:
		if v, ok := value.(float64); ok {
			return MoneyExtension(key, v)
		}
	case KindAttachment:
		if v, ok := value.(Attachment); ok {
			return AttachmentExtension(key, v)
		}
	case KindConcept:
		if v, ok := value.(CodeableConcept); ok {
			return ConceptExtension(key, v)
		}
	case KindNested:
		if v, ok := value.([]Extension); ok {
			return NestedExtension(key, v)
		}
	case KindString:
		if v, ok := value.(string); ok {
			return StringExtension(key, v)
		}
	}
	return StringExtension(key, fmt.Sprintf("%v", value))
}

// --- lookups ---

// FindExtension performs URL-keyed retrieval within one resource's
// extension list. Within a resource, URLs are unique identifiers.
func FindExtension(exts []Extension, url string) (Extension, bool) {
	for _, e := range exts {
		if e.URL == url {
			return e, true
		}
	}
	return Extension{}, false
}

// ExtString returns the string value of a registered extension, or def
// when the extension is absent. The getters funnel through the StrOr /
// IntOr / FloatOr defaulting helpers: a zero stored value reads the
// same as an absent extension, mirroring the forward pass, which omits
// zero-valued fields entirely.
func ExtString(exts []Extension, key FieldKey, def string) string {
	if e, ok := FindExtension(exts, URLFor(key)); ok {
		return StrOr(e.ValueString, def)
	}
	return def
}

func ExtInt(exts []Extension, key FieldKey, def int) int {
	if e, ok := FindExtension(exts, URLFor(key)); ok && e.ValueInteger != nil {
		return IntOr(*e.ValueInteger, def)
	}
	return def
}

func ExtBool(exts []Extension, key FieldKey, def bool) bool {
	if e, ok := FindExtension(exts, URLFor(key)); ok && e.ValueBoolean != nil {
		return *e.ValueBoolean
	}
	return def
}

func ExtDecimal(exts []Extension, key FieldKey, def float64) float64 {
	if e, ok := FindExtension(exts, URLFor(key)); ok && e.ValueDecimal != nil {
		return FloatOr(*e.ValueDecimal, def)
	}
	return def
}

func ExtMoney(exts []Extension, key FieldKey, def float64) float64 {
	if e, ok := FindExtension(exts, URLFor(key)); ok && e.ValueMoney != nil {
		return FloatOr(e.ValueMoney.Value, def)
	}
	return def
}

func ExtAttachment(exts []Extension, key FieldKey) *Attachment {
	if e, ok := FindExtension(exts, URLFor(key)); ok {
		return e.ValueAttachment
	}
	return nil
}

func ExtConcept(exts []Extension, key FieldKey) *CodeableConcept {
	if e, ok := FindExtension(exts, URLFor(key)); ok {
		return e.ValueCodeableConcept
	}
	return nil
}

// ExtNested returns the child extensions of a nested block, or nil.
func ExtNested(exts []Extension, key FieldKey) []Extension {
	if e, ok := FindExtension(exts, URLFor(key)); ok {
		return e.Extension
	}
	return nil
}
