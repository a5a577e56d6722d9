package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRecaptchaFailed    = errors.New("recaptcha verification failed")
)
