package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoSession       = errors.New("no active session")
	ErrNotImplemented  = errors.New("not implemented")
	ErrActorRequired   = errors.New("actor is required for ic mode")
	ErrBaseURLRequired = errors.New("rest base url is required for rest mode")
)
