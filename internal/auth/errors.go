package auth

import "errors"

// ErrUnknownMode is returned by ParseMode for names outside the four modes.
var ErrUnknownMode = errors.New("unknown auth mode")
