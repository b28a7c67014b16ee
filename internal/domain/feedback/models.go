package feedback

import "time"

// MaxTextLen caps the feedback body.
const MaxTextLen = 1000

// PersonRef is the joined subject/manager slice of the referenced
// evaluation, used both for display and for policy checks.
type PersonRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Feedback struct {
	FeedbackID   int64     `json:"feedbackId"`
	EvaluationID int64     `json:"evaluationId"`
	Text         string    `json:"feedbackText"`
	CreatedAt    time.Time `json:"createdAt"`
	Subject      PersonRef `json:"user"`
	Manager      PersonRef `json:"manager"`
}
