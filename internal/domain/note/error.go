package note

import "errors"

var (
	ErrNotFound      = errors.New("note not found")
	ErrTitleRequired = errors.New("note title must not be empty")
	ErrBadFileType   = errors.New("unsupported export format")
)
