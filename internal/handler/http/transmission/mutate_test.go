package transmission_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"verse-report/internal/handler/http/auth"
	txHTTP "verse-report/internal/handler/http/transmission"
	"verse-report/internal/repository"
)

func authed(req *http.Request) *http.Request {
	ctx := auth.WithIdentity(req.Context(), auth.Identity{UserID: "user-1", Roles: []string{"editor"}})
	return req.WithContext(ctx)
}

func emptyRepo() *stubRepo {
	return &stubRepo{tags: map[string][]repository.TransmissionTagRef{}}
}

/* ───────── create ───────── */

func TestCreate_PublisherFromIdentity(t *testing.T) {
	repo := emptyRepo()
	h := txHTTP.CreateHandler{Svc: newService(repo)}

	body := `{"title":"Ironclad revealed","subTitle":"CitizenCon reveal","type":"OFFICIAL","sourceId":3,"publishedAt":"2026-05-12T09:00:00Z"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transmissions", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["id"] == "" {
		t.Fatal("missing created id")
	}
	if len(repo.rows) != 1 || repo.rows[0].Transmission.PublisherID != "user-1" {
		t.Fatalf("rows=%+v", repo.rows)
	}
}

func TestCreate_NoIdentity(t *testing.T) {
	h := txHTTP.CreateHandler{Svc: newService(emptyRepo())}

	req := httptest.NewRequest(http.MethodPost, "/transmissions", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestCreate_BadTimestamp(t *testing.T) {
	h := txHTTP.CreateHandler{Svc: newService(emptyRepo())}

	body := `{"title":"x","subTitle":"y","type":"OFFICIAL","sourceId":3,"publishedAt":"yesterday"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transmissions", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestCreate_ValidationError(t *testing.T) {
	h := txHTTP.CreateHandler{Svc: newService(emptyRepo())}

	body := `{"type":"OFFICIAL","sourceId":3}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transmissions", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] == "" {
		t.Fatal("missing error envelope")
	}
}

/* ───────── update / delete ───────── */

func TestUpdate_NotFound(t *testing.T) {
	h := txHTTP.UpdateHandler{Svc: newService(emptyRepo())}

	req := authed(httptest.NewRequest(http.MethodPut, "/transmissions/missing", strings.NewReader(`{"title":"x"}`)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestUpdate_NoContentOnSuccess(t *testing.T) {
	rows, tags := sampleRows()
	repo := &stubRepo{rows: rows, tags: tags}
	h := txHTTP.UpdateHandler{Svc: newService(repo)}

	req := authed(httptest.NewRequest(http.MethodPut, "/transmissions/tx-1", strings.NewReader(`{"title":"Ironclad delayed"}`)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDelete(t *testing.T) {
	rows, tags := sampleRows()
	repo := &stubRepo{rows: rows, tags: tags}
	h := txHTTP.DeleteHandler{Svc: newService(repo)}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/transmissions/tx-1", nil)))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("code=%d", rec.Code)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("rows=%+v", repo.rows)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/transmissions/tx-1", nil)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete code=%d", rec.Code)
	}
}
