package employee

import "errors"

var (
	ErrInvalidID             = errors.New("employee: invalid id")
	ErrInvalidCompanyID      = errors.New("employee: invalid company id")
	ErrInvalidFullName       = errors.New("employee: invalid full name")
	ErrInvalidStatus         = errors.New("employee: invalid status")
	ErrInvalidTimezone       = errors.New("employee: invalid timezone")
	ErrInvalidTelegramUserID = errors.New("employee: invalid telegram user id")
	ErrInvalidPageSize       = errors.New("employee: invalid page size")
	ErrInvalidPageToken      = errors.New("employee: invalid page token")
	ErrEmployeeNotFound      = errors.New("employee: not found")
	ErrCompanyNotFound       = errors.New("employee: company not found")
	ErrTelegramUserLinked    = errors.New("employee: telegram user already linked")
)
