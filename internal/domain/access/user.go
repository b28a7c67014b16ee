package access

// CanManageUsers covers create, update, and delete of arbitrary user
// records. Admin only.
func CanManageUsers(actor Actor) bool {
	return actor.IsAdmin()
}

// CanUpdateOwnProfile is the narrower self-service capability: any
// authenticated user may edit their own profile fields and change their own
// password (the old password is re-verified by the user service).
func CanUpdateOwnProfile(actor Actor, userID int64) bool {
	return actor.UserID == userID
}

// CanViewUser: admins and managers see the directory, employees themselves.
func CanViewUser(actor Actor, userID int64) bool {
	if actor.IsAdmin() || actor.IsManager() {
		return true
	}
	return actor.UserID == userID
}
