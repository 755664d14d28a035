package apperror

import "errors"

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrInputClosed = errors.New("input closed")
)
