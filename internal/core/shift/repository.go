package shift

import (
	"context"
	"time"
)

// EmployeeRef はシフトが参照する従業員の最小情報です。
type EmployeeRef struct {
	ID        string
	CompanyID string
}

// Repository はシフト永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, s *Shift) (*Shift, error)
	FindByID(ctx context.Context, id string) (*Shift, error)
	// Transition は status が expected のままである行だけを更新します。
	// 一致する行が無い場合は ErrShiftStateChanged を返します。
	Transition(ctx context.Context, s *Shift, expected Status) (*Shift, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]*Shift, error)
	FindEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error)
}

// IntervalRepository は作業・休憩区間永続化の抽象です。
type IntervalRepository interface {
	CreateWork(ctx context.Context, iv *WorkInterval) (*WorkInterval, error)
	// CloseOpenWork は開いている作業区間を閉じ、閉じた区間があったかどうかを返します。
	CloseOpenWork(ctx context.Context, shiftID string, at time.Time) (bool, error)
	HasOpenWork(ctx context.Context, shiftID string) (bool, error)
	ListWorkByShift(ctx context.Context, shiftID string) ([]*WorkInterval, error)

	CreateBreak(ctx context.Context, iv *BreakInterval) (*BreakInterval, error)
	CloseOpenBreak(ctx context.Context, shiftID string, at time.Time) (bool, error)
	HasOpenBreak(ctx context.Context, shiftID string) (bool, error)
	ListBreaksByShift(ctx context.Context, shiftID string) ([]*BreakInterval, error)
}
