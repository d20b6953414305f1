package company

import "time"

// Status は会社の状態を表します。
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Company はテナントである会社エンティティです。シフト、違反ルール、
// 評価、招待はすべて会社に帰属します。従業員などから参照されるため
// 削除はせず suspended で運用を止めます。
type Company struct {
	ID        string
	Name      string
	Code      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
