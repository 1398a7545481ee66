package entity

// Role names recognized by the authorization predicate. Roles are a plain
// join-table lookup, not a policy engine.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a publisher identity resolved from the external identity provider.
type User struct {
	ID    string
	Name  string
	Email string
}

// Role is a named capability that can be assigned to users.
type Role struct {
	ID          int64
	Name        string
	Description string
}

// CanPublish reports whether the given role set allows content mutation.
func CanPublish(roles []string) bool {
	for _, r := range roles {
		if r == RoleAdmin || r == RoleEditor {
			return true
		}
	}
	return false
}
