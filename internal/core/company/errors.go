package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company: not found")
	ErrCodeAlreadyExists = errors.New("company: code already exists")
	ErrInvalidName       = errors.New("company: invalid name")
	ErrInvalidCode       = errors.New("company: invalid code")
	ErrInvalidStatus     = errors.New("company: invalid status")
	ErrInvalidID         = errors.New("company: invalid id")
	ErrInvalidPageSize   = errors.New("company: invalid page size")
	ErrInvalidPageToken  = errors.New("company: invalid page token")
)
