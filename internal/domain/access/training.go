package access

// Training request statuses. PENDING is the only non-terminal state;
// COMPLETED is written solely by the external LMS import.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusDenied    = "DENIED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// CanCreateTrainingRequest permits employees requesting for themselves.
// Managers and admins do not self-request through this system.
func CanCreateTrainingRequest(actor Actor, ownerID int64) bool {
	return actor.IsEmployee() && actor.UserID == ownerID
}

// CanDecideTrainingRequest covers approve and deny. Managers and admins may
// decide. Callers must additionally require PENDING.
func CanDecideTrainingRequest(actor Actor) bool {
	return actor.IsManager() || actor.IsAdmin()
}

// CanCancelTrainingRequest permits the owner withdrawing a still-PENDING
// request.
func CanCancelTrainingRequest(actor Actor, ownerID int64, status string) bool {
	return actor.IsEmployee() && actor.UserID == ownerID && status == StatusPending
}

// CanDeleteTrainingRequest governs hard deletes of decided requests. PENDING
// rows leave the system only via approve, deny, or the owner's cancel.
// Owners may clear out their APPROVED, DENIED, or COMPLETED rows; a
// CANCELLED row can reach this check through the LMS import and only
// managers and admins may purge those.
func CanDeleteTrainingRequest(actor Actor, ownerID int64, status string) bool {
	if status == StatusPending {
		return false
	}
	if actor.IsAdmin() || actor.IsManager() {
		return true
	}
	switch status {
	case StatusApproved, StatusDenied, StatusCompleted:
		return actor.IsEmployee() && actor.UserID == ownerID
	}
	return false
}

// CanViewTrainingRequest: managers and admins review the whole queue,
// employees only their own requests.
func CanViewTrainingRequest(actor Actor, ownerID int64) bool {
	if actor.IsAdmin() || actor.IsManager() {
		return true
	}
	return actor.UserID == ownerID
}
