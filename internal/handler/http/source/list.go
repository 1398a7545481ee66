package source

import (
	"net/http"

	"verse-report/internal/handler/http/respond"
	srcUC "verse-report/internal/usecase/source"
)

// ListHandler serves the full list of transmission sources.
type ListHandler struct {
	Svc *srcUC.Service
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sources, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, err)
		return
	}

	dtos := make([]DTO, 0, len(sources))
	for _, s := range sources {
		dtos = append(dtos, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, map[string]any{"sources": dtos})
}
