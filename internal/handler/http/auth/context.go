// Package auth validates bearer tokens issued by the external identity
// provider and gates mutating endpoints on database-backed roles.
package auth

import "context"

type ctxKey string

const ctxIdentity ctxKey = "identity"

// Identity is the authenticated caller: the token subject plus the roles
// loaded from the database for this request.
type Identity struct {
	UserID string
	Roles  []string
}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// FromContext extracts the authenticated identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}
