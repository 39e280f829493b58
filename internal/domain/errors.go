package domain

import "errors"

var (
	ErrNotFound        = errors.New("no matching record")
	ErrParse           = errors.New("malformed catalog file")
	ErrIO              = errors.New("catalog file i/o")
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrDuplicateFlight = errors.New("flight number already exists")
)
