package taxonomy

import (
	"net/http"

	"verse-report/internal/handler/http/auth"
	taxUC "verse-report/internal/usecase/taxonomy"
)

// Register registers the taxonomy HTTP handlers with the given mux.
// The hierarchy is public; tag creation requires an editor or admin.
func Register(mux *http.ServeMux, svc *taxUC.Service, a *auth.Authenticator) {
	mux.Handle("GET    /categories", ListHandler{svc})
	mux.Handle("POST   /tags", a.Authn(auth.RequireEditor(CreateTagHandler{svc})))
}
