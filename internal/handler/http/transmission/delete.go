package transmission

import (
	"net/http"

	"verse-report/internal/handler/http/pathutil"
	"verse-report/internal/handler/http/respond"
	txUC "verse-report/internal/usecase/transmission"
)

type DeleteHandler struct{ Svc *txUC.Service }

// ServeHTTP deletes a transmission; tag associations cascade.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/transmissions/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
