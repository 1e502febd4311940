package dispatch

import "errors"

var (
	errHandlerPanic = errors.New("handler panicked")
	errNoResponse   = errors.New("handler returned neither a response nor an error")
)
