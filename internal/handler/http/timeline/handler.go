// Package timeline serves the date availability index for timeline navigation.
package timeline

import (
	"net/http"

	"verse-report/internal/handler/http/respond"
	tlUC "verse-report/internal/usecase/timeline"
)

// Handler serves the availability index. Month keys are zero-based to match
// what client date pickers index with.
type Handler struct {
	Svc *tlUC.Service
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ix, err := h.Svc.BuildIndex(r.Context())
	if err != nil {
		respond.SafeError(w, err)
		return
	}

	years := ix.Years
	if years == nil {
		years = []int{}
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"availableYears":   years,
		"dateAvailability": ix.Days,
	})
}

// Register registers the timeline HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *tlUC.Service) {
	mux.Handle("GET    /timeline", Handler{svc})
}
