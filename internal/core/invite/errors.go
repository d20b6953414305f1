package invite

import "errors"

var (
	ErrInvalidCompanyID      = errors.New("invite: invalid company id")
	ErrInvalidCode           = errors.New("invite: invalid code")
	ErrInvalidExpiry         = errors.New("invite: expiry must be in the future")
	ErrInvalidTelegramUserID = errors.New("invite: invalid telegram user id")
	ErrInviteNotFound        = errors.New("invite: not found")
	ErrInviteAlreadyUsed     = errors.New("invite: already used")
	ErrInviteExpired         = errors.New("invite: expired")
)
