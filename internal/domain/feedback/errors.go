package feedback

import "errors"

var (
	ErrNotFound           = errors.New("feedback not found")
	ErrEvaluationNotFound = errors.New("evaluation not found")
)
