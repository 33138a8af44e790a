package domain

// Role is the console role of a CMS user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// Actor is the authenticated caller of an API request.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor may manage campaigns.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
