package pet

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api, fhirGroup *echo.Group) {
	api.GET("/pets", h.List)
	api.GET("/pets/:id", h.Get)
	api.POST("/pets", h.Create)
	api.PUT("/pets/:id", h.Update)
	api.DELETE("/pets/:id", h.Delete)

	fhirGroup.GET("/Patient", h.SearchFHIR)
	fhirGroup.GET("/Patient/:id", h.GetFHIR)
	fhirGroup.POST("/Patient", h.CreateFHIR)
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page <= 0 {
		page = fhir.DefaultPage
	}
	if limit <= 0 {
		limit = fhir.DefaultLimit
	}
	return page, limit
}

func (h *Handler) Create(c echo.Context) error {
	var p Pet
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "pet not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	var p Pet
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = c.Param("id")
	if err := h.svc.Update(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "pet not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) List(c echo.Context) error {
	page, limit := pageParams(c)
	pets, total, err := h.svc.List(c.Request().Context(), limit, (page-1)*limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": pets, "total": total, "page": page, "limit": limit,
	})
}

// SearchFHIR returns one page of pets as a searchset Bundle with the
// pagination tags derived from the request parameters.
func (h *Handler) SearchFHIR(c echo.Context) error {
	page, limit := pageParams(c)
	var (
		pets  []*Pet
		total int
		err   error
	)
	if owner := c.QueryParam("owner"); owner != "" {
		pets, total, err = h.svc.ListByOwner(c.Request().Context(), owner, limit, (page-1)*limit)
	} else {
		pets, total, err = h.svc.List(c.Request().Context(), limit, (page-1)*limit)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeProcessing, err.Error()))
	}
	return c.JSON(http.StatusOK, PagedBundle(pets, page, limit, total))
}

func (h *Handler) GetFHIR(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, fhir.NotFoundOutcome(fhir.TypePatient, c.Param("id")))
	}
	return c.JSON(http.StatusOK, p.ToFHIR())
}

// CreateFHIR accepts a Patient resource, reverse-maps it, and persists
// the resulting pet. An unreadable body is the caller-level failure the
// OperationOutcome envelope exists for; a merely odd resource shape is
// not, and parses to defaults.
func (h *Handler) CreateFHIR(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fhir.InvalidPayloadOutcome(err.Error()))
	}
	if !json.Valid(body) {
		return c.JSON(http.StatusBadRequest, fhir.InvalidPayloadOutcome("request body is not valid JSON"))
	}
	p := FromFHIR(body)
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusBadRequest, fhir.NewOperationOutcome(
			fhir.IssueSeverityError, fhir.IssueTypeInvalid, err.Error()))
	}
	return c.JSON(http.StatusCreated, p.ToFHIR())
}
