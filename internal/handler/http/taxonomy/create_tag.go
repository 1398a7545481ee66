package taxonomy

import (
	"encoding/json"
	"net/http"

	"verse-report/internal/handler/http/respond"
	taxUC "verse-report/internal/usecase/taxonomy"
)

type CreateTagHandler struct{ Svc *taxUC.Service }

// ServeHTTP creates a tag under a category. The slug is derived from the
// name server-side; the response returns the stored tag.
func (h CreateTagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		CategoryID   string `json:"categoryId"`
		ShipFamilyID *int64 `json:"shipFamilyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := h.Svc.CreateTag(r.Context(), taxUC.CreateTagInput{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		ShipFamilyID: req.ShipFamilyID,
	})
	if err != nil {
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	})
}
