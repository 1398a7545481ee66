package transmission

import (
	"net/http"

	"verse-report/internal/handler/http/pathutil"
	"verse-report/internal/handler/http/respond"
	txUC "verse-report/internal/usecase/transmission"
)

type GetHandler struct{ Svc *txUC.Service }

// ServeHTTP returns one transmission with its content body included.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/transmissions/")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(*view, true))
}
