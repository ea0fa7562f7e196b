package fhir

import (
	"encoding/json"
	"fmt"
)

// ComponentValue is the tagged union for dynamically typed observation
// component values. Callers either construct a variant directly or pass
// raw decoded JSON through InferValue.
type ComponentValue interface {
	isComponentValue()
}

type StringValue string

type BooleanValue bool

type IntegerValue int

type QuantityValue struct {
	Value float64
	Unit  string
}

func (StringValue) isComponentValue()   {}
func (BooleanValue) isComponentValue()  {}
func (IntegerValue) isComponentValue()  {}
func (QuantityValue) isComponentValue() {}

// InferValue is the single type-guard chain routing a dynamic value to
// its union variant. JSON decoding yields float64 for all numbers, which
// map to quantities; explicit Go integers map to integer values. Anything
// unrecognized degrades to its string rendering rather than failing.
func InferValue(v interface{}) ComponentValue {
	switch val := v.(type) {
	case nil:
		return StringValue("")
	case bool:
		return BooleanValue(val)
	case string:
		return StringValue(val)
	case int:
		return IntegerValue(val)
	case int32:
		return IntegerValue(int(val))
	case int64:
		return IntegerValue(int(val))
	case float32:
		return QuantityValue{Value: float64(val)}
	case float64:
		return QuantityValue{Value: val}
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return IntegerValue(int(i))
		}
		f, _ := val.Float64()
		return QuantityValue{Value: f}
	case ComponentValue:
		return val
	default:
		return StringValue(fmt.Sprintf("%v", val))
	}
}

// ObservationComponent is one typed component[] entry. Exactly one value*
// field is populated, chosen by the variant of the component value.
type ObservationComponent struct {
	Code          CodeableConcept `json:"code"`
	ValueString   string          `json:"valueString,omitempty"`
	ValueBoolean  *bool           `json:"valueBoolean,omitempty"`
	ValueInteger  *int            `json:"valueInteger,omitempty"`
	ValueQuantity *Quantity       `json:"valueQuantity,omitempty"`
}

// NewComponent builds a component entry for a key/value pair, resolving
// the key through the observation component code table.
func NewComponent(key string, v ComponentValue) ObservationComponent {
	c := ObservationComponent{Code: Concept(key, ComponentCodes)}
	switch val := v.(type) {
	case StringValue:
		c.ValueString = string(val)
	case BooleanValue:
		b := bool(val)
		c.ValueBoolean = &b
	case IntegerValue:
		i := int(val)
		c.ValueInteger = &i
	case QuantityValue:
		c.ValueQuantity = &Quantity{Value: val.Value, Unit: val.Unit}
	}
	return c
}

// Key returns the domain key the component was built from.
func (c ObservationComponent) Key() string {
	return ConceptText(&c.Code)
}

// Value extracts the component value back into the tagged union. A
// component with no value* field populated yields an empty string value.
func (c ObservationComponent) Value() ComponentValue {
	switch {
	case c.ValueBoolean != nil:
		return BooleanValue(*c.ValueBoolean)
	case c.ValueInteger != nil:
		return IntegerValue(*c.ValueInteger)
	case c.ValueQuantity != nil:
		return QuantityValue{Value: c.ValueQuantity.Value, Unit: c.ValueQuantity.Unit}
	default:
		return StringValue(c.ValueString)
	}
}
