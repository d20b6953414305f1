package shift

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Tracker はシフト内の作業・休憩区間を記録します。
// 「開いている区間は種別ごとに高々 1 つ、かつ作業と休憩は同時に開かない」
// という不変条件を守ります。シフト自体の状態は関知しません。
type Tracker struct {
	intervals IntervalRepository
}

// NewTracker は Tracker を生成します。
func NewTracker(intervals IntervalRepository) *Tracker {
	return &Tracker{intervals: intervals}
}

// OpenWork は作業区間を開きます。開いている作業・休憩区間が
// すでに存在する場合は失敗します。
func (t *Tracker) OpenWork(ctx context.Context, shiftID string, at time.Time) (*WorkInterval, error) {
	if err := validateShiftID(shiftID); err != nil {
		return nil, err
	}

	if open, err := t.intervals.HasOpenWork(ctx, shiftID); err != nil {
		return nil, err
	} else if open {
		return nil, ErrWorkIntervalOpen
	}

	if open, err := t.intervals.HasOpenBreak(ctx, shiftID); err != nil {
		return nil, err
	} else if open {
		return nil, ErrBreakIntervalOpen
	}

	return t.intervals.CreateWork(ctx, &WorkInterval{
		ShiftID: shiftID,
		StartAt: at.UTC(),
	})
}

// CloseOpenWork は開いている作業区間を閉じます。
// 開いている区間が無い場合は何もしません(再試行を許容するため)。
func (t *Tracker) CloseOpenWork(ctx context.Context, shiftID string, at time.Time) error {
	if err := validateShiftID(shiftID); err != nil {
		return err
	}
	_, err := t.intervals.CloseOpenWork(ctx, shiftID, at.UTC())
	return err
}

// OpenBreak は休憩区間を開きます。開いている作業・休憩区間が
// すでに存在する場合は失敗します。
func (t *Tracker) OpenBreak(ctx context.Context, shiftID string, at time.Time, kind BreakKind) (*BreakInterval, error) {
	if err := validateShiftID(shiftID); err != nil {
		return nil, err
	}
	if !isValidBreakKind(kind) {
		return nil, fmt.Errorf("%q: %w", kind, ErrInvalidBreakKind)
	}

	if open, err := t.intervals.HasOpenBreak(ctx, shiftID); err != nil {
		return nil, err
	} else if open {
		return nil, ErrBreakIntervalOpen
	}

	if open, err := t.intervals.HasOpenWork(ctx, shiftID); err != nil {
		return nil, err
	} else if open {
		return nil, ErrWorkIntervalOpen
	}

	return t.intervals.CreateBreak(ctx, &BreakInterval{
		ShiftID: shiftID,
		Kind:    kind,
		StartAt: at.UTC(),
	})
}

// CloseOpenBreak は開いている休憩区間を閉じます。
// 開いている区間が無い場合は何もしません。
func (t *Tracker) CloseOpenBreak(ctx context.Context, shiftID string, at time.Time) error {
	if err := validateShiftID(shiftID); err != nil {
		return err
	}
	_, err := t.intervals.CloseOpenBreak(ctx, shiftID, at.UTC())
	return err
}

// NetWorkedMinutes は閉じた作業区間の合計時間から、作業時間に重なる
// 閉じた休憩区間の時間を差し引いた分数を返します。開いている区間は
// 集計に含めません。
func (t *Tracker) NetWorkedMinutes(ctx context.Context, shiftID string) (int64, error) {
	return t.netWorkedMinutes(ctx, shiftID, nil)
}

// NetWorkedMinutesAsOf は開いている区間を ref 時点で閉じたものとみなして
// 集計します。ref より後に始まった開区間は無視します。
func (t *Tracker) NetWorkedMinutesAsOf(ctx context.Context, shiftID string, ref time.Time) (int64, error) {
	refUTC := ref.UTC()
	return t.netWorkedMinutes(ctx, shiftID, &refUTC)
}

func (t *Tracker) netWorkedMinutes(ctx context.Context, shiftID string, ref *time.Time) (int64, error) {
	if err := validateShiftID(shiftID); err != nil {
		return 0, err
	}

	works, err := t.intervals.ListWorkByShift(ctx, shiftID)
	if err != nil {
		return 0, err
	}

	breaks, err := t.intervals.ListBreaksByShift(ctx, shiftID)
	if err != nil {
		return 0, err
	}

	workSpans := make([]span, 0, len(works))
	for _, w := range works {
		if sp, ok := effectiveSpan(w.StartAt, w.EndAt, ref); ok {
			workSpans = append(workSpans, sp)
		}
	}

	var total time.Duration
	for _, sp := range workSpans {
		total += sp.end.Sub(sp.start)
	}

	// ライフサイクル経由では休憩前に作業区間が閉じられるため重なりは
	// 通常ゼロになる。重なりの控除は Tracker が単独で使われ、作業区間が
	// 開いたまま休憩が記録されたケースの補正。
	for _, b := range breaks {
		bp, ok := effectiveSpan(b.StartAt, b.EndAt, ref)
		if !ok {
			continue
		}
		for _, sp := range workSpans {
			total -= overlap(bp, sp)
		}
	}

	if total < 0 {
		total = 0
	}
	return int64(total / time.Minute), nil
}

type span struct {
	start time.Time
	end   time.Time
}

func effectiveSpan(start time.Time, end *time.Time, ref *time.Time) (span, bool) {
	if end != nil {
		if !end.After(start) {
			return span{}, false
		}
		return span{start: start, end: *end}, true
	}
	if ref == nil || !ref.After(start) {
		return span{}, false
	}
	return span{start: start, end: *ref}, true
}

func overlap(a, b span) time.Duration {
	start := a.start
	if b.start.After(start) {
		start = b.start
	}
	end := a.end
	if b.end.Before(end) {
		end = b.end
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

func validateShiftID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}

func isValidBreakKind(kind BreakKind) bool {
	switch kind {
	case BreakKindLunch, BreakKindBreak, BreakKindOther:
		return true
	default:
		return false
	}
}
