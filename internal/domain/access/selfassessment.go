package access

// CanCreateSelfAssessment: a user records skills only for themselves.
func CanCreateSelfAssessment(actor Actor, ownerID int64) bool {
	return actor.UserID == ownerID
}

// CanDeleteSelfAssessment: owner only. Admins manage users, not their
// self-reported skills.
func CanDeleteSelfAssessment(actor Actor, ownerID int64) bool {
	return actor.UserID == ownerID
}

// CanViewSelfAssessment: admins and managers see everyone's skills for
// development planning, employees only their own.
func CanViewSelfAssessment(actor Actor, ownerID int64) bool {
	if actor.IsAdmin() || actor.IsManager() {
		return true
	}
	return actor.UserID == ownerID
}
