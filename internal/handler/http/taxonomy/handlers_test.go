package taxonomy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"verse-report/internal/domain/entity"
	taxHTTP "verse-report/internal/handler/http/taxonomy"
	"verse-report/internal/repository"
	taxUC "verse-report/internal/usecase/taxonomy"
)

type stubRepo struct {
	categories []repository.CategoryWithTags
	byID       map[string]*entity.Category
	slugTaken  bool
	err        error
}

func (s *stubRepo) ListCategoriesWithTags(_ context.Context) ([]repository.CategoryWithTags, error) {
	return s.categories, s.err
}

func (s *stubRepo) GetCategory(_ context.Context, id string) (*entity.Category, error) {
	return s.byID[id], s.err
}

func (s *stubRepo) TagSlugExists(_ context.Context, _ string, _ *string) (bool, error) {
	return s.slugTaken, s.err
}

func (s *stubRepo) NextTagSortOrder(_ context.Context, _ string) (int, error) {
	return 1, s.err
}

func (s *stubRepo) CreateTag(_ context.Context, tag *entity.Tag) error {
	tag.ID = 7
	return s.err
}

func TestList_Hierarchy(t *testing.T) {
	family := &entity.ShipFamily{ID: 2, Name: "Ironclad", Slug: "ironclad"}
	repo := &stubRepo{categories: []repository.CategoryWithTags{{
		Category: &entity.Category{ID: "cat-ships", Name: "Ships", Slug: "ships", Type: entity.CategoryShip, Color: "#b91c1c"},
		Tags: []repository.TagWithFamily{
			{Tag: &entity.Tag{ID: 4, Name: "Ironclad", Slug: "ironclad", CategoryID: "cat-ships"}, ShipFamily: family},
			{Tag: &entity.Tag{ID: 5, Name: "Polaris", Slug: "polaris", CategoryID: "cat-ships"}},
		},
	}}}
	h := taxHTTP.ListHandler{Svc: &taxUC.Service{Repo: repo}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
	var resp struct {
		Categories []struct {
			Slug string `json:"slug"`
			Tags []struct {
				Slug       string  `json:"slug"`
				ShipFamily *string `json:"shipFamily"`
			} `json:"tags"`
		} `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Categories) != 1 || len(resp.Categories[0].Tags) != 2 {
		t.Fatalf("resp=%+v", resp)
	}
	if resp.Categories[0].Tags[0].ShipFamily == nil || *resp.Categories[0].Tags[0].ShipFamily != "ironclad" {
		t.Fatalf("shipFamily=%v", resp.Categories[0].Tags[0].ShipFamily)
	}
	if resp.Categories[0].Tags[1].ShipFamily != nil {
		t.Fatal("expected nil shipFamily")
	}
}

func TestCreateTag(t *testing.T) {
	repo := &stubRepo{byID: map[string]*entity.Category{
		"cat-patch": {ID: "cat-patch", Name: "Patches", Slug: "patches"},
	}}
	h := taxHTTP.CreateTagHandler{Svc: &taxUC.Service{Repo: repo}}

	body := `{"name":"4.3.1","categoryId":"cat-patch"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var dto struct {
		ID   int64  `json:"id"`
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatal(err)
	}
	if dto.ID != 7 || dto.Slug != "4-3-1" {
		t.Fatalf("dto=%+v", dto)
	}
}

func TestCreateTag_UnknownCategory(t *testing.T) {
	h := taxHTTP.CreateTagHandler{Svc: &taxUC.Service{Repo: &stubRepo{byID: map[string]*entity.Category{}}}}

	body := `{"name":"Ironclad","categoryId":"missing"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(body)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestCreateTag_Duplicate(t *testing.T) {
	repo := &stubRepo{
		byID:      map[string]*entity.Category{"cat-ships": {ID: "cat-ships"}},
		slugTaken: true,
	}
	h := taxHTTP.CreateTagHandler{Svc: &taxUC.Service{Repo: repo}}

	body := `{"name":"Ironclad","categoryId":"cat-ships"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Fatalf("code=%d", rec.Code)
	}
}
