package access

// Evaluations are authored by managers about their subordinates. Admins are
// read-only observers of the whole set.

// CanCreateEvaluation permits managers only, and never about themselves.
func CanCreateEvaluation(actor Actor, subjectID int64) bool {
	return actor.IsManager() && subjectID != actor.UserID
}

// CanEditEvaluation permits only the manager who authored the evaluation.
func CanEditEvaluation(actor Actor, managerID int64) bool {
	return actor.IsManager() && actor.UserID == managerID
}

// CanDeleteEvaluation mirrors edit: authoring manager only.
func CanDeleteEvaluation(actor Actor, managerID int64) bool {
	return CanEditEvaluation(actor, managerID)
}

// CanViewEvaluation: admins see everything, managers what they authored,
// employees what was written about them.
func CanViewEvaluation(actor Actor, subjectID, managerID int64) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsManager():
		return actor.UserID == managerID
	case actor.IsEmployee():
		return actor.UserID == subjectID
	}
	return false
}
