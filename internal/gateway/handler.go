// Package gateway exposes the stateless conversion surface: one pair of
// endpoints per entity, forward (domain JSON to FHIR) and reverse (FHIR
// to domain JSON), with no storage behind them.
package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/appointment"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/immunization"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/medicalrecord"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/observation"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/organization"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/pet"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/procedurepackage"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/domain/provider"
	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

type Handler struct {
	log zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/convert/:entity", h.Convert)
	g.POST("/parse/:entity", h.Parse)
}

// observationInput is the inbound domain shape for observations; the
// value union variant of each measurement is inferred, not declared.
type observationInput struct {
	ID           string                 `json:"id"`
	PetID        string                 `json:"pet_id"`
	RecordedAt   time.Time              `json:"recorded_at"`
	Measurements []observation.KeyValue `json:"measurements"`
}

// Convert maps a domain record in the request body to its FHIR
// rendering. Packages render as CarePlan by default and as
// PlanDefinition when ?target=PlanDefinition is set; providers always
// render as their five-resource collection Bundle.
func (h *Handler) Convert(c echo.Context) error {
	body, outcome := h.readBody(c)
	if outcome != nil {
		return c.JSON(http.StatusBadRequest, outcome)
	}

	entity := c.Param("entity")
	var out interface{}
	switch entity {
	case "pet":
		var rec pet.Pet
		_ = json.Unmarshal(body, &rec)
		out = rec.ToFHIR()
	case "appointment":
		var rec appointment.Appointment
		_ = json.Unmarshal(body, &rec)
		out = rec.ToFHIR()
	case "package":
		var rec procedurepackage.Package
		_ = json.Unmarshal(body, &rec)
		if c.QueryParam("target") == fhir.TypePlanDefinition {
			out = rec.ToPlanDefinition()
		} else {
			out = rec.ToFHIR()
		}
	case "observation":
		var in observationInput
		_ = json.Unmarshal(body, &in)
		rec := observation.NewRecord(in.PetID, in.RecordedAt, in.Measurements)
		rec.ID = in.ID
		out = rec.ToFHIR()
	case "document":
		var rec medicalrecord.Record
		_ = json.Unmarshal(body, &rec)
		out = rec.ToFHIR()
	case "organization":
		var rec organization.Organization
		_ = json.Unmarshal(body, &rec)
		out = rec.ToFHIR()
	case "vaccination":
		var rec immunization.Vaccination
		_ = json.Unmarshal(body, &rec)
		out = rec.ToFHIR()
	case "provider":
		var rec provider.Profile
		_ = json.Unmarshal(body, &rec)
		out = rec.ToBundle()
	default:
		return c.JSON(http.StatusBadRequest, fhir.NotSupportedOutcome("unknown entity "+entity))
	}
	return c.JSON(http.StatusOK, out)
}

// Parse maps a FHIR resource in the request body back to its domain
// record. A Bundle body yields the list of matching entries; anything
// else is treated as a single resource and degrades to defaults on
// shape mismatch.
func (h *Handler) Parse(c echo.Context) error {
	body, outcome := h.readBody(c)
	if outcome != nil {
		return c.JSON(http.StatusBadRequest, outcome)
	}

	entity := c.Param("entity")
	isBundle := fhir.ResourceTypeOf(body) == fhir.TypeBundle
	var out interface{}
	switch entity {
	case "pet":
		if isBundle {
			out = pet.FromBundle(body)
		} else {
			out = pet.FromFHIR(body)
		}
	case "appointment":
		if isBundle {
			out = appointment.FromBundle(body)
		} else {
			out = appointment.FromFHIR(body)
		}
	case "package":
		if isBundle {
			out = procedurepackage.FromBundle(body)
		} else {
			out = procedurepackage.FromFHIR(body)
		}
	case "observation":
		if isBundle {
			out = observation.FromBundle(body)
		} else {
			out = observation.FromFHIR(body)
		}
	case "document":
		if isBundle {
			out = medicalrecord.FromBundle(body)
		} else {
			out = medicalrecord.FromFHIR(body)
		}
	case "organization":
		if isBundle {
			out = organization.FromBundle(body)
		} else {
			out = organization.FromFHIR(body)
		}
	case "vaccination":
		if isBundle {
			out = immunization.FromBundle(body)
		} else {
			out = immunization.FromFHIR(body)
		}
	case "provider":
		out = provider.FromBundle(body)
	default:
		return c.JSON(http.StatusBadRequest, fhir.NotSupportedOutcome("unknown entity "+entity))
	}
	return c.JSON(http.StatusOK, out)
}

// readBody drains the request and enforces the caller-level JSON
// contract: an unreadable or non-JSON body earns an OperationOutcome,
// while a syntactically valid body of the wrong shape does not.
func (h *Handler) readBody(c echo.Context) ([]byte, *fhir.OperationOutcome) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, fhir.InvalidPayloadOutcome(err.Error())
	}
	if !json.Valid(body) {
		h.log.Debug().Str("entity", c.Param("entity")).Msg("rejected non-JSON payload")
		return nil, fhir.InvalidPayloadOutcome("request body is not valid JSON")
	}
	return body, nil
}
