package rating

import (
	"context"
	"time"
)

// Repository は評価永続化の抽象です。
type Repository interface {
	// Upsert は (employee_id, period_start, period_end) をキーに挿入または
	// 更新します。更新は単一文で行われ、最後の書き込みが勝ちます。
	Upsert(ctx context.Context, r *EmployeeRating) (*EmployeeRating, error)
	FindByPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (*EmployeeRating, error)
}

// PenaltySource は期間内の違反ペナルティを提供します。
type PenaltySource interface {
	PenaltiesInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]float64, error)
	FindEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error)
}
