package evaluation

import "time"

// UserRef is the denormalized subject/manager slice of an evaluation row,
// shaped like the legacy API payload.
type UserRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Evaluation struct {
	EvaluationID      int64     `json:"evaluationId"`
	User              UserRef   `json:"user"`
	Manager           UserRef   `json:"manager"`
	KPICompletedTasks float64   `json:"kpiCompletedTasks"`
	KPIFixTime        float64   `json:"kpiFixTime"`
	KPITestCoverage   float64   `json:"kpiTestCoverage"`
	KPITimeliness     float64   `json:"kpiTimeliness"`
	OverallKPI        float64   `json:"overallKpi"`
	Comments          string    `json:"comments"`
	EvaluationDate    time.Time `json:"evaluationDate"`
}

// Input is what callers may supply. The overall score is deliberately
// absent: it is always recomputed server-side.
type Input struct {
	UserID         int64   `json:"userId"`
	CompletedTasks float64 `json:"kpiCompletedTasks"`
	FixTime        float64 `json:"kpiFixTime"`
	TestCoverage   float64 `json:"kpiTestCoverage"`
	Timeliness     float64 `json:"kpiTimeliness"`
	Comments       string  `json:"comments"`
}
