package training

import "time"

const (
	MaxCourseNameLen = 50
	// MaxPendingPerUser caps simultaneous undecided requests.
	MaxPendingPerUser = 2
)

type PersonRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Request struct {
	RequestID   int64     `json:"requestId"`
	User        PersonRef `json:"user"`
	CourseName  string    `json:"courseName"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}
