package pet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yashisrani/Yosemite-Crew-sub011/internal/platform/fhir"
)

type fakeRepo struct {
	pets map[string]*Pet
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{pets: map[string]*Pet{}}
}

func (r *fakeRepo) Create(_ context.Context, p *Pet) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("pet-%d", len(r.pets)+1)
	}
	r.pets[p.ID] = p
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, p *Pet) error {
	r.pets[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.pets, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context, limit, offset int) ([]*Pet, int, error) {
	var out []*Pet
	for _, p := range r.pets {
		out = append(out, p)
	}
	return out, len(r.pets), nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*Pet, int, error) {
	var out []*Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func setupHandler() (*echo.Echo, *fakeRepo) {
	e := echo.New()
	repo := newFakeRepo()
	h := NewHandler(NewService(repo))
	h.RegisterRoutes(e.Group("/api"), e.Group("/fhir"))
	return e, repo
}

func TestCreateFHIR_RoundTripsThroughStorage(t *testing.T) {
	e, repo := setupHandler()
	p := samplePet()
	p.ID = ""
	raw, _ := json.Marshal(p.ToFHIR())

	req := httptest.NewRequest(http.MethodPost, "/fhir/Patient", strings.NewReader(string(raw)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.pets) != 1 {
		t.Fatalf("stored %d pets, want 1", len(repo.pets))
	}
	for _, stored := range repo.pets {
		if stored.Name != "Rex" || stored.Species != "dog" {
			t.Errorf("stored pet = %+v", stored)
		}
	}
}

func TestCreateFHIR_InvalidJSONGetsOperationOutcome(t *testing.T) {
	e, _ := setupHandler()
	req := httptest.NewRequest(http.MethodPost, "/fhir/Patient", strings.NewReader(`{"resourceType":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var outcome fhir.OperationOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.ResourceType != "OperationOutcome" || len(outcome.Issue) == 0 {
		t.Errorf("body = %s", rec.Body.String())
	}
	if outcome.Issue[0].Severity != "error" {
		t.Errorf("severity = %q", outcome.Issue[0].Severity)
	}
}

func TestSearchFHIR_PagedBundle(t *testing.T) {
	e, repo := setupHandler()
	p := samplePet()
	_ = repo.Create(context.Background(), &p)

	req := httptest.NewRequest(http.MethodGet, "/fhir/Patient?page=1&limit=5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var b fhir.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if b.Type != "searchset" || b.Total != 1 {
		t.Errorf("bundle = %s/%d", b.Type, b.Total)
	}
	_, page, limit := b.PageTags()
	if page != 1 || limit != 5 {
		t.Errorf("tags = page %d limit %d", page, limit)
	}
}

func TestGetFHIR_NotFound(t *testing.T) {
	e, _ := setupHandler()
	req := httptest.NewRequest(http.MethodGet, "/fhir/Patient/ghost", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var outcome fhir.OperationOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.Issue[0].Code != "not-found" {
		t.Errorf("issue code = %q", outcome.Issue[0].Code)
	}
}
