package shift

import "time"

// Status はシフトの状態を表します。
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal は終端状態かどうかを返します。
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// BreakKind は休憩区間の種別を表します。
type BreakKind string

const (
	BreakKindLunch BreakKind = "lunch"
	BreakKindBreak BreakKind = "break"
	BreakKindOther BreakKind = "other"
)

// Shift はシフトエンティティです。状態は遷移操作を通じてのみ変更されます。
type Shift struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	PlannedStartAt time.Time
	PlannedEndAt   time.Time
	ActualStartAt  *time.Time
	ActualEndAt    *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WorkInterval はシフト内の作業区間です。EndAt が nil の区間は開いています。
type WorkInterval struct {
	ID        string
	ShiftID   string
	StartAt   time.Time
	EndAt     *time.Time
	CreatedAt time.Time
}

// BreakInterval はシフト内の休憩区間です。EndAt が nil の区間は開いています。
type BreakInterval struct {
	ID        string
	ShiftID   string
	Kind      BreakKind
	StartAt   time.Time
	EndAt     *time.Time
	CreatedAt time.Time
}
