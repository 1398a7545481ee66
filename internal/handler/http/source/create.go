package source

import (
	"encoding/json"
	"net/http"

	"verse-report/internal/handler/http/respond"
	srcUC "verse-report/internal/usecase/source"
)

// CreateHandler registers a new source.
type CreateHandler struct {
	Svc *srcUC.Service
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), srcUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
