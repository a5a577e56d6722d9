package admin

import "errors"

var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrEmailInUse       = errors.New("email already in use")
	ErrEmailRequired    = errors.New("new email is required")
	ErrPasswordRequired = errors.New("new password is required")
)
