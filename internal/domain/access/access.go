package access

import (
	"errors"

	"hrsystem/internal/domain/auth"
)

// ErrDenied is returned whenever a policy predicate refuses an action. It is
// never downgraded to a silent no-op; handlers map it to 403.
var ErrDenied = errors.New("action not permitted")

// Actor identifies the authenticated caller. It is threaded explicitly into
// every check; nothing here reads ambient session state.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool    { return a.Role == auth.RoleAdmin }
func (a Actor) IsManager() bool  { return a.Role == auth.RoleManager }
func (a Actor) IsEmployee() bool { return a.Role == auth.RoleEmployee }
