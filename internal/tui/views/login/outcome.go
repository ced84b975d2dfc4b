package login

import (
	"errors"

	"github.com/colonyops/lobby/internal/core/auth"
	"github.com/colonyops/lobby/internal/core/toast"
)

// Toast messages for each login outcome.
const (
	MessageSuccess = "Login Successful!"
	MessageFailed  = "Login failed"
	MessageNetwork = "An error occurred during login."
)

// Outcome maps the result of a login attempt to the toast that reports it.
func Outcome(resp *auth.Response, err error) (string, toast.Severity) {
	if err == nil && resp != nil {
		return MessageSuccess, toast.SeveritySuccess
	}

	var appErr *auth.ApplicationError
	if errors.As(err, &appErr) {
		if appErr.Message != "" {
			return appErr.Message, toast.SeverityError
		}
		return MessageFailed, toast.SeverityError
	}

	return MessageNetwork, toast.SeverityError
}
