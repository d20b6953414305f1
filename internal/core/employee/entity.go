package employee

import "time"

// Status は従業員の状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

// Employee は従業員エンティティです。TelegramUserID は外部 ID
// (Telegram アカウント)との紐付けで、主に招待の消費時に設定されます。
type Employee struct {
	ID             string
	CompanyID      string
	FullName       string
	Position       string
	Status         Status
	TelegramUserID *int64
	Timezone       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
