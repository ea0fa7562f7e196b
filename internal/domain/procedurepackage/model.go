// Package procedurepackage maps procedure packages and their line items
// onto CarePlan resources with contained SupplyDelivery bodies, and onto
// PlanDefinition resources for the catalog/template form.
package procedurepackage

import (
	"encoding/json"
	"fmt"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

// Package is a priced bundle of procedure line items.
type Package struct {
	ID          string `json:"id"`
	PackageName string `json:"package_name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Items       []Item `json:"package_items,omitempty"`
}

// Item is one line item of a package.
type Item struct {
	Name      string  `json:"name"`
	ItemType  string  `json:"item_type,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
	UnitPrice float64 `json:"unit_price,omitempty"`
	Subtotal  float64 `json:"subtotal,omitempty"`
}

func DefaultPackage() Package {
	return Package{}
}

// TotalPrice sums the line item subtotals. It is derived once on the
// forward pass and never re-read from extensions on the same pass.
func (p *Package) TotalPrice() float64 {
	var total float64
	for _, it := range p.Items {
		total += it.Subtotal
	}
	return total
}

// containedID names the contained SupplyDelivery for line item n,
// matching the "#item-n" activity references.
func containedID(n int) string {
	return fmt.Sprintf("item-%d", n+1)
}

// ToFHIR maps a package to a CarePlan whose contained resources hold one
// SupplyDelivery per line item, in order, and whose activity list
// references them.
func (p *Package) ToFHIR() *fhir.CarePlan {
	res := &fhir.CarePlan{
		ResourceType: fhir.TypeCarePlan,
		ID:           p.ID,
		Status:       "active",
		Intent:       "plan",
		Title:        p.PackageName,
		Description:  p.Description,
	}
	if p.Category != "" {
		res.Category = []fhir.CodeableConcept{fhir.Concept(p.Category, fhir.PackageCategoryCodes)}
	}
	for i, it := range p.Items {
		res.Contained = append(res.Contained, it.toSupplyDelivery(containedID(i)))
		res.Activity = append(res.Activity, fhir.CarePlanActivity{
			Reference: fhir.Reference{Reference: "#" + containedID(i)},
		})
	}
	if len(p.Items) > 0 {
		res.Extension = append(res.Extension, fhir.MoneyExtension(fhir.FieldTotalPrice, p.TotalPrice()))
	}
	return res
}

func (it Item) toSupplyDelivery(id string) fhir.SupplyDelivery {
	sd := fhir.SupplyDelivery{
		ResourceType: fhir.TypeSupplyDelivery,
		ID:           id,
		Status:       "completed",
		SuppliedItem: &fhir.SuppliedItem{
			ItemCodeableConcept: &fhir.CodeableConcept{Text: it.Name},
			Quantity:            &fhir.Quantity{Value: float64(it.Quantity)},
		},
	}
	if it.ItemType != "" {
		sd.Extension = append(sd.Extension, fhir.StringExtension(fhir.FieldItemType, it.ItemType))
	}
	sd.Extension = append(sd.Extension,
		fhir.MoneyExtension(fhir.FieldUnitPrice, it.UnitPrice),
		fhir.MoneyExtension(fhir.FieldSubtotal, it.Subtotal))
	return sd
}

func itemFromSupplyDelivery(sd fhir.SupplyDelivery) Item {
	it := Item{
		ItemType:  fhir.ExtString(sd.Extension, fhir.FieldItemType, ""),
		UnitPrice: fhir.ExtMoney(sd.Extension, fhir.FieldUnitPrice, 0),
		Subtotal:  fhir.ExtMoney(sd.Extension, fhir.FieldSubtotal, 0),
	}
	if sd.SuppliedItem != nil {
		it.Name = fhir.ConceptText(sd.SuppliedItem.ItemCodeableConcept)
		if sd.SuppliedItem.Quantity != nil {
			it.Quantity = int(sd.SuppliedItem.Quantity.Value)
		}
	}
	return it
}

// ToPlanDefinition maps a package to its catalog/template form: one
// action per line item instead of contained deliveries.
func (p *Package) ToPlanDefinition() *fhir.PlanDefinition {
	res := &fhir.PlanDefinition{
		ResourceType: fhir.TypePlanDefinition,
		ID:           p.ID,
		Status:       "active",
		Title:        p.PackageName,
		Description:  p.Description,
	}
	if p.Category != "" {
		cc := fhir.Concept(p.Category, fhir.PackageCategoryCodes)
		res.Type = &cc
	}
	for _, it := range p.Items {
		action := fhir.PlanDefinitionAction{Title: it.Name}
		if it.ItemType != "" {
			action.Extension = append(action.Extension, fhir.StringExtension(fhir.FieldItemType, it.ItemType))
		}
		action.Extension = append(action.Extension,
			fhir.IntExtension(fhir.FieldQuantity, it.Quantity),
			fhir.MoneyExtension(fhir.FieldUnitPrice, it.UnitPrice),
			fhir.MoneyExtension(fhir.FieldSubtotal, it.Subtotal))
		res.Action = append(res.Action, action)
	}
	if len(p.Items) > 0 {
		res.Extension = append(res.Extension, fhir.MoneyExtension(fhir.FieldTotalPrice, p.TotalPrice()))
	}
	return res
}

// FromFHIR rebuilds a package from a CarePlan or PlanDefinition payload.
// Any other resource type yields the all-defaults record.
func FromFHIR(raw json.RawMessage) Package {
	switch fhir.ResourceTypeOf(raw) {
	case fhir.TypeCarePlan:
		var res fhir.CarePlan
		if err := json.Unmarshal(raw, &res); err != nil {
			return DefaultPackage()
		}
		return fromCarePlan(&res)
	case fhir.TypePlanDefinition:
		var res fhir.PlanDefinition
		if err := json.Unmarshal(raw, &res); err != nil {
			return DefaultPackage()
		}
		return fromPlanDefinition(&res)
	default:
		return DefaultPackage()
	}
}

func fromCarePlan(res *fhir.CarePlan) Package {
	p := DefaultPackage()
	p.ID = res.ID
	p.PackageName = res.Title
	p.Description = res.Description
	if len(res.Category) > 0 {
		p.Category = fhir.ConceptText(&res.Category[0])
	}
	for _, sd := range res.Contained {
		if sd.ResourceType != fhir.TypeSupplyDelivery {
			continue
		}
		p.Items = append(p.Items, itemFromSupplyDelivery(sd))
	}
	return p
}

func fromPlanDefinition(res *fhir.PlanDefinition) Package {
	p := DefaultPackage()
	p.ID = res.ID
	p.PackageName = res.Title
	p.Description = res.Description
	p.Category = fhir.ConceptText(res.Type)
	for _, action := range res.Action {
		p.Items = append(p.Items, Item{
			Name:      action.Title,
			ItemType:  fhir.ExtString(action.Extension, fhir.FieldItemType, ""),
			Quantity:  fhir.ExtInt(action.Extension, fhir.FieldQuantity, 0),
			UnitPrice: fhir.ExtMoney(action.Extension, fhir.FieldUnitPrice, 0),
			Subtotal:  fhir.ExtMoney(action.Extension, fhir.FieldSubtotal, 0),
		})
	}
	return p
}

// FromBundle extracts every package-shaped entry of a Bundle.
func FromBundle(raw json.RawMessage) []Package {
	var out []Package
	fhir.EachResource(raw, func(rt string, res json.RawMessage) {
		if rt != fhir.TypeCarePlan && rt != fhir.TypePlanDefinition {
			return
		}
		out = append(out, FromFHIR(res))
	})
	return out
}

// PagedBundle wraps one page of packages in a searchset Bundle.
func PagedBundle(pkgs []*Package, page, limit, total int) *fhir.Bundle {
	resources := make([]interface{}, len(pkgs))
	for i, p := range pkgs {
		resources[i] = p.ToFHIR()
	}
	return fhir.NewPagedBundle(resources, page, limit, total)
}
