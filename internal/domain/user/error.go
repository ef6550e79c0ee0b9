package user

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid email or password")
)
