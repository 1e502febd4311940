package dispatch

import (
	"fmt"
	"net/http"
)

// Failure is an error that carries the status and message the client should
// see. Any other error reaching the dispatcher is reported as a 500.
type Failure struct {
	Status  int
	Message string
}

// Fail returns a Failure with status and message.
func Fail(status int, message string) *Failure {
	return &Failure{Status: status, Message: message}
}

// Failf is Fail with a formatted message.
func Failf(status int, format string, args ...any) *Failure {
	return &Failure{Status: status, Message: fmt.Sprintf(format, args...)}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%d %s: %s", f.Status, http.StatusText(f.Status), f.Message)
}

const (
	msgNotFound            = "Not found"
	msgInternalServerError = "Internal server error"
)
