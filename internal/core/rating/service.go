package rating

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	minRating = 0
	maxRating = 100
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

// Service は期間別評価の算出ユースケースをまとめます。
type Service struct {
	ratings   Repository
	penalties PenaltySource
	clock     Clock
	tx        TransactionManager
}

// UseCase は評価ユースケースの公開インターフェースです。
type UseCase interface {
	Recalculate(ctx context.Context, in RecalculateInput) (*EmployeeRating, error)
	Adjust(ctx context.Context, in AdjustInput) (*EmployeeRating, error)
	GetCurrentPeriod(ctx context.Context, in GetCurrentPeriodInput) (*EmployeeRating, error)
	GetForPeriod(ctx context.Context, in GetForPeriodInput) (*EmployeeRating, error)
}

// NewService は Service を生成します。
func NewService(ratings Repository, penalties PenaltySource, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{ratings: ratings, penalties: penalties, clock: clock, tx: tx}
}

// RecalculateInput は再計算の入力です。
type RecalculateInput struct {
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// AdjustInput は手動補正の入力です。
type AdjustInput struct {
	EmployeeID  string
	Delta       float64
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GetCurrentPeriodInput は当期評価取得の入力です。
type GetCurrentPeriodInput struct {
	EmployeeID string
}

// GetForPeriodInput は指定期間の評価取得の入力です。
type GetForPeriodInput struct {
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Recalculate は期間 [PeriodStart, PeriodEnd) の違反ペナルティを合算し、
// clamp(100 - 合計, 0, 100) を評価として保存します。冪等であり、
// 手動補正済みの行も導出値で上書きします(評価は違反の導出キャッシュ)。
func (s *Service) Recalculate(ctx context.Context, in RecalculateInput) (*EmployeeRating, error) {
	employeeID, start, end, err := normalizeKey(in.EmployeeID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	var result *EmployeeRating
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		stored, err := s.recalculate(txCtx, employeeID, start, end)
		if err != nil {
			return err
		}
		result = stored
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// RecalculateCurrentPeriod は at が属する暦月を期間として再計算します。
// 違反記録からのベストエフォート呼び出し口です。
func (s *Service) RecalculateCurrentPeriod(ctx context.Context, employeeID string, at time.Time) error {
	start, end := monthPeriod(at)
	_, err := s.Recalculate(ctx, RecalculateInput{
		EmployeeID:  employeeID,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	return err
}

// Adjust は直近の評価に delta を加算して保存します。保存済みの評価が
// 無い期間はまず導出値を計算してから補正を適用します。結果は
// manually_adjusted として記録されます。
func (s *Service) Adjust(ctx context.Context, in AdjustInput) (*EmployeeRating, error) {
	employeeID, start, end, err := normalizeKey(in.EmployeeID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if in.Delta < -maxRating || in.Delta > maxRating {
		return nil, ErrInvalidDelta
	}

	var result *EmployeeRating
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		current, err := s.ratings.FindByPeriod(txCtx, employeeID, start, end)
		if errors.Is(err, ErrRatingNotFound) {
			current, err = s.recalculate(txCtx, employeeID, start, end)
		}
		if err != nil {
			return err
		}

		current.Rating = clamp(current.Rating + in.Delta)
		current.Status = StatusManuallyAdjusted
		current.UpdatedAt = s.clock.Now()

		stored, err := s.ratings.Upsert(txCtx, current)
		if err != nil {
			return err
		}
		result = stored
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// GetCurrentPeriod は現在時刻が属する暦月の評価を返します。
func (s *Service) GetCurrentPeriod(ctx context.Context, in GetCurrentPeriodInput) (*EmployeeRating, error) {
	start, end := monthPeriod(s.clock.Now())
	return s.GetForPeriod(ctx, GetForPeriodInput{
		EmployeeID:  in.EmployeeID,
		PeriodStart: start,
		PeriodEnd:   end,
	})
}

// GetForPeriod は保存済みの期間評価を返します。
func (s *Service) GetForPeriod(ctx context.Context, in GetForPeriodInput) (*EmployeeRating, error) {
	employeeID, start, end, err := normalizeKey(in.EmployeeID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	var result *EmployeeRating
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.ratings.FindByPeriod(txCtx, employeeID, start, end)
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

func (s *Service) recalculate(ctx context.Context, employeeID string, start, end time.Time) (*EmployeeRating, error) {
	emp, err := s.penalties.FindEmployeeRef(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	penalties, err := s.penalties.PenaltiesInPeriod(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, p := range penalties {
		total += p
	}

	return s.ratings.Upsert(ctx, &EmployeeRating{
		EmployeeID:  emp.ID,
		CompanyID:   emp.CompanyID,
		PeriodStart: start,
		PeriodEnd:   end,
		Rating:      clamp(maxRating - total),
		Status:      StatusComputed,
		UpdatedAt:   s.clock.Now(),
	})
}

func normalizeKey(employeeID string, start, end time.Time) (string, time.Time, time.Time, error) {
	trimmed := strings.TrimSpace(employeeID)
	if trimmed == "" {
		return "", time.Time{}, time.Time{}, ErrInvalidEmployeeID
	}

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	if !endDay.After(startDay) {
		return "", time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	return trimmed, startDay, endDay, nil
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func monthPeriod(at time.Time) (time.Time, time.Time) {
	u := at.UTC()
	start := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func clamp(v float64) float64 {
	if v < minRating {
		return minRating
	}
	if v > maxRating {
		return maxRating
	}
	return v
}
