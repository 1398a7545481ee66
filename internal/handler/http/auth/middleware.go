package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"verse-report/internal/domain/entity"
	"verse-report/internal/handler/http/respond"
	"verse-report/internal/repository"
)

// Authenticator validates bearer tokens and resolves caller roles.
// Tokens are issued by an external identity provider; only the HS256
// signature, expiry, and subject claim are checked here. Roles come from
// the database so a revoked role takes effect without token rotation.
type Authenticator struct {
	Secret []byte
	Users  repository.UserRepository
}

// Authn requires a valid bearer token on every request and stores the
// resulting identity in the request context. Responds 401 when no valid
// identity can be established.
func (a *Authenticator) Authn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		userID, err := a.validateToken(r.Header.Get("Authorization"))
		if err != nil {
			RecordAuthRequest("none", "failure")
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		user, err := a.Users.Get(r.Context(), userID)
		if err != nil {
			respond.SafeError(w, err)
			return
		}
		if user == nil {
			RecordAuthRequest("none", "failure")
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		roles, err := a.Users.RolesFor(r.Context(), userID)
		if err != nil {
			respond.SafeError(w, err)
			return
		}

		RecordAuthRequest(primaryRole(roles), "success")
		RecordAuthDuration(primaryRole(roles), time.Since(start))

		ctx := WithIdentity(r.Context(), Identity{UserID: userID, Roles: roles})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireEditor responds 403 unless the authenticated identity carries a
// role allowed to publish (admin or editor). Must run inside Authn.
func RequireEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromContext(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !entity.CanPublish(id.Roles) {
			RecordForbiddenAttempt(primaryRole(id.Roles), r.Method)
			respond.Error(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) validateToken(authz string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return a.Secret, nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("invalid sub claim")
	}
	return sub, nil
}

func primaryRole(roles []string) string {
	if len(roles) == 0 {
		return "none"
	}
	return roles[0]
}
