package access

// Feedback is the subject's response to an evaluation. subjectID and
// managerID come from the referenced evaluation, not the feedback row.

// CanCreateFeedback permits only the evaluation's subject. The
// one-feedback-per-evaluation rule is a validation concern of the feedback
// service, not a policy grant.
func CanCreateFeedback(actor Actor, subjectID int64) bool {
	return actor.IsEmployee() && actor.UserID == subjectID
}

// CanEditFeedback permits only the evaluation's subject.
func CanEditFeedback(actor Actor, subjectID int64) bool {
	return actor.IsEmployee() && actor.UserID == subjectID
}

// CanDeleteFeedback is a union of three grants: any admin, the evaluation's
// manager, or the evaluation's subject.
func CanDeleteFeedback(actor Actor, subjectID, managerID int64) bool {
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

// CanViewFeedback follows the evaluation's visibility.
func CanViewFeedback(actor Actor, subjectID, managerID int64) bool {
	return CanViewEvaluation(actor, subjectID, managerID)
}
