package shift

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// CacheInvalidator は会社単位の統計キャッシュ無効化を通知します。
// ベストエフォートであり、呼び出しはブロックしません。
type CacheInvalidator interface {
	Invalidate(companyID string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(string) {}

// Service はシフトのライフサイクルを管理します。各遷移は状態更新と
// 区間の記録を単一トランザクションで行います。
type Service struct {
	shifts  Repository
	tracker *Tracker
	clock   Clock
	tx      TransactionManager
	cache   CacheInvalidator
}

// UseCase はシフトユースケースの公開インターフェースです。
type UseCase interface {
	CreateShift(ctx context.Context, in CreateShiftInput) (*Shift, error)
	StartShift(ctx context.Context, in TransitionInput) (*Shift, error)
	PauseShift(ctx context.Context, in PauseInput) (*Shift, error)
	ResumeShift(ctx context.Context, in TransitionInput) (*Shift, error)
	EndShift(ctx context.Context, in TransitionInput) (*Shift, error)
	CancelShift(ctx context.Context, in TransitionInput) (*Shift, error)
	GetShift(ctx context.Context, in GetShiftInput) (*Shift, error)
	ListActiveShifts(ctx context.Context, in ListActiveShiftsInput) ([]*Shift, error)
	NetWorkedMinutes(ctx context.Context, in NetWorkedMinutesInput) (int64, error)
}

// NewService は Service を生成します。
func NewService(shifts Repository, tracker *Tracker, clock Clock, tx TransactionManager, cache CacheInvalidator) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &Service{shifts: shifts, tracker: tracker, clock: clock, tx: tx, cache: cache}
}

// CreateShiftInput はシフト作成時の入力です。
type CreateShiftInput struct {
	EmployeeID     string
	PlannedStartAt time.Time
	PlannedEndAt   time.Time
}

// TransitionInput は状態遷移操作の入力です。
type TransitionInput struct {
	ID string
}

// PauseInput は休憩開始の入力です。Kind を省略すると break になります。
type PauseInput struct {
	ID   string
	Kind BreakKind
}

// GetShiftInput はシフト取得時の入力です。
type GetShiftInput struct {
	ID string
}

// ListActiveShiftsInput は稼働中シフト一覧取得の入力です。
type ListActiveShiftsInput struct {
	CompanyID string
}

// NetWorkedMinutesInput は実働時間集計の入力です。AsOf を指定すると
// 開いている区間をその時点で閉じたものとみなします。
type NetWorkedMinutesInput struct {
	ID   string
	AsOf *time.Time
}

// CreateShift はシフトを scheduled 状態で作成します。
func (s *Service) CreateShift(ctx context.Context, in CreateShiftInput) (*Shift, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	if !in.PlannedEndAt.After(in.PlannedStartAt) {
		return nil, ErrInvalidPlannedRange
	}

	var created *Shift
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		ref, err := s.shifts.FindEmployeeRef(txCtx, employeeID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		result, err := s.shifts.Create(txCtx, &Shift{
			EmployeeID:     ref.ID,
			CompanyID:      ref.CompanyID,
			PlannedStartAt: in.PlannedStartAt.UTC(),
			PlannedEndAt:   in.PlannedEndAt.UTC(),
			Status:         StatusScheduled,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.cache.Invalidate(created.CompanyID)
	return created, nil
}

// StartShift はシフトを開始し、最初の作業区間を開きます。
func (s *Service) StartShift(ctx context.Context, in TransitionInput) (*Shift, error) {
	return s.transition(ctx, in.ID, StatusActive, func(txCtx context.Context, sh *Shift, now time.Time) error {
		if sh.Status != StatusScheduled {
			return &InvalidTransitionError{Current: sh.Status, Attempted: StatusActive}
		}
		if _, err := s.tracker.OpenWork(txCtx, sh.ID, now); err != nil {
			return err
		}
		sh.ActualStartAt = &now
		return nil
	})
}

// PauseShift は作業区間を閉じて休憩区間を開き、シフトを paused にします。
func (s *Service) PauseShift(ctx context.Context, in PauseInput) (*Shift, error) {
	kind := in.Kind
	if kind == "" {
		kind = BreakKindBreak
	}
	if !isValidBreakKind(kind) {
		return nil, fmt.Errorf("%q: %w", kind, ErrInvalidBreakKind)
	}

	return s.transition(ctx, in.ID, StatusPaused, func(txCtx context.Context, sh *Shift, now time.Time) error {
		if sh.Status != StatusActive {
			return &InvalidTransitionError{Current: sh.Status, Attempted: StatusPaused}
		}
		if err := s.tracker.CloseOpenWork(txCtx, sh.ID, now); err != nil {
			return err
		}
		if _, err := s.tracker.OpenBreak(txCtx, sh.ID, now, kind); err != nil {
			return err
		}
		return nil
	})
}

// ResumeShift は休憩区間を閉じて作業区間を開き、シフトを active に戻します。
func (s *Service) ResumeShift(ctx context.Context, in TransitionInput) (*Shift, error) {
	return s.transition(ctx, in.ID, StatusActive, func(txCtx context.Context, sh *Shift, now time.Time) error {
		if sh.Status != StatusPaused {
			return &InvalidTransitionError{Current: sh.Status, Attempted: StatusActive}
		}
		if err := s.tracker.CloseOpenBreak(txCtx, sh.ID, now); err != nil {
			return err
		}
		if _, err := s.tracker.OpenWork(txCtx, sh.ID, now); err != nil {
			return err
		}
		return nil
	})
}

// EndShift は開いている区間をすべて閉じ、シフトを completed にします。
func (s *Service) EndShift(ctx context.Context, in TransitionInput) (*Shift, error) {
	return s.transition(ctx, in.ID, StatusCompleted, func(txCtx context.Context, sh *Shift, now time.Time) error {
		if sh.Status != StatusActive && sh.Status != StatusPaused {
			return &InvalidTransitionError{Current: sh.Status, Attempted: StatusCompleted}
		}
		if err := s.closeAllOpen(txCtx, sh.ID, now); err != nil {
			return err
		}
		sh.ActualEndAt = &now
		return nil
	})
}

// CancelShift は開いている区間をすべて閉じ、シフトを cancelled にします。
func (s *Service) CancelShift(ctx context.Context, in TransitionInput) (*Shift, error) {
	return s.transition(ctx, in.ID, StatusCancelled, func(txCtx context.Context, sh *Shift, now time.Time) error {
		switch sh.Status {
		case StatusScheduled, StatusActive, StatusPaused:
		default:
			return &InvalidTransitionError{Current: sh.Status, Attempted: StatusCancelled}
		}
		return s.closeAllOpen(txCtx, sh.ID, now)
	})
}

// GetShift はシフトを取得します。
func (s *Service) GetShift(ctx context.Context, in GetShiftInput) (*Shift, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidID
	}

	var result *Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.shifts.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListActiveShifts は会社の稼働中(active/paused)シフトを返します。
func (s *Service) ListActiveShifts(ctx context.Context, in ListActiveShiftsInput) ([]*Shift, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	var result []*Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		shifts, err := s.shifts.ListActiveByCompany(txCtx, companyID)
		if err != nil {
			return err
		}
		result = shifts
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// NetWorkedMinutes はシフトの実働分数を返します。
func (s *Service) NetWorkedMinutes(ctx context.Context, in NetWorkedMinutesInput) (int64, error) {
	if strings.TrimSpace(in.ID) == "" {
		return 0, ErrInvalidID
	}

	var minutes int64
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.shifts.FindByID(txCtx, in.ID); err != nil {
			return err
		}

		var err error
		if in.AsOf != nil {
			minutes, err = s.tracker.NetWorkedMinutesAsOf(txCtx, in.ID, *in.AsOf)
		} else {
			minutes, err = s.tracker.NetWorkedMinutes(txCtx, in.ID)
		}
		return err
	}); err != nil {
		return 0, err
	}

	return minutes, nil
}

// transition は共通の遷移骨格です。mutate が前提条件の検査と区間操作を
// 行い、状態更新は期待状態付きの条件付き UPDATE で確定します。
func (s *Service) transition(ctx context.Context, id string, target Status, mutate func(context.Context, *Shift, time.Time) error) (*Shift, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	var result *Shift
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		sh, err := s.shifts.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		expected := sh.Status

		if err := mutate(txCtx, sh, now); err != nil {
			return err
		}

		sh.Status = target
		sh.UpdatedAt = now

		updated, err := s.shifts.Transition(txCtx, sh, expected)
		if err != nil {
			return err
		}

		result = updated
		return nil
	}); err != nil {
		return nil, err
	}

	s.cache.Invalidate(result.CompanyID)
	return result, nil
}

func (s *Service) closeAllOpen(ctx context.Context, shiftID string, at time.Time) error {
	if err := s.tracker.CloseOpenWork(ctx, shiftID, at); err != nil {
		return err
	}
	return s.tracker.CloseOpenBreak(ctx, shiftID, at)
}
