package source

import (
	"net/http"

	"verse-report/internal/handler/http/auth"
	srcUC "verse-report/internal/usecase/source"
)

// Register registers the source HTTP handlers with the given mux.
// Listing is public; registering a new source requires an editor or admin.
func Register(mux *http.ServeMux, svc *srcUC.Service, a *auth.Authenticator) {
	mux.Handle("GET    /sources", ListHandler{svc})
	mux.Handle("POST   /sources", a.Authn(auth.RequireEditor(CreateHandler{svc})))
}
