package auth

import (
	"fmt"
	"net/http"
)

// ApplicationError is returned when the endpoint answers with a non-success
// status. Message is the server supplied "message" field, if any.
type ApplicationError struct {
	Status  int
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("login rejected: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("login rejected: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// NetworkError wraps transport failures and unreadable response bodies.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
