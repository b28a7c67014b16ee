package selfassessment

import "errors"

var ErrNotFound = errors.New("self-assessment not found")
