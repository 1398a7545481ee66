package transmission

import (
	"encoding/json"
	"net/http"
	"time"

	"verse-report/internal/handler/http/pathutil"
	"verse-report/internal/handler/http/respond"
	txUC "verse-report/internal/usecase/transmission"
)

type UpdateHandler struct{ Svc *txUC.Service }

// ServeHTTP partially updates a transmission. Absent fields are left
// untouched; a tagIds array, when present, replaces the whole tag set.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/transmissions/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Title       *string `json:"title"`
		SubTitle    *string `json:"subTitle"`
		Content     *string `json:"content"`
		Type        *string `json:"type"`
		IsHighlight *bool   `json:"isHighlight"`
		SourceID    *int64  `json:"sourceId"`
		SourceURL   *string `json:"sourceUrl"`
		PublishedAt *string `json:"publishedAt"`
		TagIDs      []int64 `json:"tagIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var publishedAt *time.Time
	if req.PublishedAt != nil {
		ts, err := time.Parse(time.RFC3339, *req.PublishedAt)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "publishedAt must be in RFC3339 format")
			return
		}
		publishedAt = &ts
	}

	if err := h.Svc.Update(r.Context(), txUC.UpdateInput{
		ID:          id,
		Title:       req.Title,
		SubTitle:    req.SubTitle,
		Content:     req.Content,
		Type:        req.Type,
		IsHighlight: req.IsHighlight,
		SourceID:    req.SourceID,
		SourceURL:   req.SourceURL,
		PublishedAt: publishedAt,
		TagIDs:      req.TagIDs,
	}); err != nil {
		respond.SafeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
