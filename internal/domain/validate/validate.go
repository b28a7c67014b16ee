package validate

import (
	"sort"
	"strings"
)

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error carries every violated field of a request, not just the first.
type Error struct {
	issues []Issue
}

func (e *Error) Error() string {
	if e == nil || len(e.issues) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.issues))
	for _, issue := range e.Issues() {
		parts = append(parts, issue.Field+": "+issue.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Issues() []Issue {
	if e == nil || len(e.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(e.issues))
	copy(out, e.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

type Validator struct {
	issues []Issue
}

func New() *Validator {
	return &Validator{issues: make([]Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, Issue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) MaxLen(field, value string, limit int, reason string) {
	if len([]rune(value)) > limit {
		v.Add(field, reason)
	}
}

// Range checks a KPI-style bounded metric.
func (v *Validator) Range(field string, value, min, max float64, reason string) {
	if value < min || value > max {
		v.Add(field, reason)
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

// Err returns the collected issues as an error, or nil when everything passed.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	return &Error{issues: v.issues}
}
