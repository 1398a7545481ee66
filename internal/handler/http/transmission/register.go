package transmission

import (
	"log/slog"
	"net/http"

	"verse-report/internal/common/pagination"
	"verse-report/internal/handler/http/auth"
	txUC "verse-report/internal/usecase/transmission"
)

// Register registers the transmission HTTP handlers with the given mux.
// Reads are public; mutations require an authenticated editor or admin.
func Register(mux *http.ServeMux, svc *txUC.Service, a *auth.Authenticator, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /transmissions", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /transmissions/", GetHandler{svc})

	mux.Handle("POST   /transmissions", a.Authn(auth.RequireEditor(CreateHandler{svc})))
	mux.Handle("PUT    /transmissions/", a.Authn(auth.RequireEditor(UpdateHandler{svc})))
	mux.Handle("DELETE /transmissions/", a.Authn(auth.RequireEditor(DeleteHandler{svc})))
}
