package transmission

import (
	"encoding/json"
	"net/http"
	"time"

	"verse-report/internal/handler/http/auth"
	"verse-report/internal/handler/http/respond"
	txUC "verse-report/internal/usecase/transmission"
)

type CreateHandler struct{ Svc *txUC.Service }

// ServeHTTP creates a transmission. The authenticated caller becomes the
// publisher; omitting publishedAt leaves the transmission in draft.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Title       string  `json:"title"`
		SubTitle    string  `json:"subTitle"`
		Content     string  `json:"content"`
		Type        string  `json:"type"`
		IsHighlight bool    `json:"isHighlight"`
		SourceID    int64   `json:"sourceId"`
		SourceURL   string  `json:"sourceUrl"`
		PublishedAt string  `json:"publishedAt"`
		TagIDs      []int64 `json:"tagIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var publishedAt *time.Time
	if req.PublishedAt != "" {
		ts, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "publishedAt must be in RFC3339 format")
			return
		}
		publishedAt = &ts
	}

	createdID, err := h.Svc.Create(r.Context(), txUC.CreateInput{
		Title:       req.Title,
		SubTitle:    req.SubTitle,
		Content:     req.Content,
		Type:        req.Type,
		IsHighlight: req.IsHighlight,
		SourceID:    req.SourceID,
		SourceURL:   req.SourceURL,
		PublishedAt: publishedAt,
		PublisherID: id.UserID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		respond.SafeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]string{"id": createdID})
}
