package selfassessment

import "time"

const (
	MaxSkillNameLen = 100
	MinLevel        = 1
	MaxLevel        = 10
)

type PersonRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Assessment struct {
	AssessmentID int64     `json:"assessmentId"`
	User         PersonRef `json:"user"`
	SkillName    string    `json:"skillName"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"createdAt"`
}
