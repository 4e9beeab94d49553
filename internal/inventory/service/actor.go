package service

// RoleManager is required to approve purchase orders and to adjust stock by
// hand. RoleAdmin passes every role check.
const (
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Actor is the caller identity, passed explicitly into workflow calls.
// Handlers build it from the verified JWT claims; services never reach into
// ambient request state.
type Actor struct {
	ID    string
	Name  string
	Roles []string
}

// HasRole reports whether the actor holds the given role. Admins hold every
// role.
func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role || r == RoleAdmin {
			return true
		}
	}
	return false
}
