package request

import "errors"

var (
	ErrNotFound   = errors.New("request not found")
	ErrNotPending = errors.New("request is no longer pending")
)
