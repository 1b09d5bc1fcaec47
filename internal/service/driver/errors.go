package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidCPF            = errors.New("invalid cpf")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrDriverNotFound = errors.New("driver not found")
	ErrDriverInactive = errors.New("driver is inactive")
	ErrConflict       = errors.New("resource already exists")
)
