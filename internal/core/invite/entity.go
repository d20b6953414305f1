package invite

import "time"

// Invite は単回使用のオンボーディング招待コードです。
type Invite struct {
	ID             string
	CompanyID      string
	Code           string
	FullName       string
	Position       string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	UsedByEmployee *string
	UsedAt         *time.Time
}

// IsUsed は招待が消費済みかどうかを返します。
func (i *Invite) IsUsed() bool {
	return i.UsedAt != nil
}

// IsExpired は now 時点で期限切れかどうかを返します。
func (i *Invite) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// LinkedEmployee は招待の消費によって作成・更新された従業員です。
type LinkedEmployee struct {
	ID             string
	CompanyID      string
	FullName       string
	Position       string
	TelegramUserID int64
}
