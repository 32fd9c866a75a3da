package works

import "errors"

var (
	ErrInvalidID  = errors.New("invalid artwork id")
	ErrNotFound   = errors.New("artwork not found")
	ErrValidation = errors.New("artwork rejected by store")
)
