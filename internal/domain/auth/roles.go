package auth

// Role names as stored in the roles table. Exactly one per user.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

var Roles = []string{RoleAdmin, RoleManager, RoleEmployee}

func ValidRole(name string) bool {
	for _, role := range Roles {
		if role == name {
			return true
		}
	}
	return false
}
