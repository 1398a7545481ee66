package taxonomy

import (
	"net/http"

	"verse-report/internal/handler/http/respond"
	taxUC "verse-report/internal/usecase/taxonomy"
)

type ListHandler struct{ Svc *taxUC.Service }

// ServeHTTP returns the filter hierarchy: every category carrying at least
// one tag, in display order.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.Categories(r.Context())
	if err != nil {
		respond.SafeError(w, err)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	respond.JSON(w, http.StatusOK, map[string]any{"categories": dtos})
}
