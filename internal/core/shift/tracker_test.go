package shift

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeIntervalRepo struct {
	works  []*WorkInterval
	breaks []*BreakInterval
	seq    int
}

func newFakeIntervalRepo() *fakeIntervalRepo {
	return &fakeIntervalRepo{}
}

func (r *fakeIntervalRepo) nextID(prefix string) string {
	r.seq++
	return prefix + "-" + strconv.Itoa(r.seq)
}

func (r *fakeIntervalRepo) CreateWork(_ context.Context, iv *WorkInterval) (*WorkInterval, error) {
	for _, w := range r.works {
		if w.ShiftID == iv.ShiftID && w.EndAt == nil {
			return nil, ErrWorkIntervalOpen
		}
	}
	copy := *iv
	copy.ID = r.nextID("work")
	r.works = append(r.works, &copy)
	result := copy
	return &result, nil
}

func (r *fakeIntervalRepo) CloseOpenWork(_ context.Context, shiftID string, at time.Time) (bool, error) {
	for _, w := range r.works {
		if w.ShiftID == shiftID && w.EndAt == nil {
			end := at
			w.EndAt = &end
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIntervalRepo) HasOpenWork(_ context.Context, shiftID string) (bool, error) {
	for _, w := range r.works {
		if w.ShiftID == shiftID && w.EndAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIntervalRepo) ListWorkByShift(_ context.Context, shiftID string) ([]*WorkInterval, error) {
	var result []*WorkInterval
	for _, w := range r.works {
		if w.ShiftID == shiftID {
			copy := *w
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (r *fakeIntervalRepo) CreateBreak(_ context.Context, iv *BreakInterval) (*BreakInterval, error) {
	for _, b := range r.breaks {
		if b.ShiftID == iv.ShiftID && b.EndAt == nil {
			return nil, ErrBreakIntervalOpen
		}
	}
	copy := *iv
	copy.ID = r.nextID("break")
	r.breaks = append(r.breaks, &copy)
	result := copy
	return &result, nil
}

func (r *fakeIntervalRepo) CloseOpenBreak(_ context.Context, shiftID string, at time.Time) (bool, error) {
	for _, b := range r.breaks {
		if b.ShiftID == shiftID && b.EndAt == nil {
			end := at
			b.EndAt = &end
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIntervalRepo) HasOpenBreak(_ context.Context, shiftID string) (bool, error) {
	for _, b := range r.breaks {
		if b.ShiftID == shiftID && b.EndAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeIntervalRepo) ListBreaksByShift(_ context.Context, shiftID string) ([]*BreakInterval, error) {
	var result []*BreakInterval
	for _, b := range r.breaks {
		if b.ShiftID == shiftID {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

func TestTracker_OpenWork(t *testing.T) {
	t.Parallel()

	repo := newFakeIntervalRepo()
	tracker := NewTracker(repo)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	iv, err := tracker.OpenWork(context.Background(), "shift-1", start)
	if err != nil {
		t.Fatalf("OpenWork returned error: %v", err)
	}

	if iv.EndAt != nil {
		t.Fatalf("expected open interval, got end %v", iv.EndAt)
	}

	if _, err := tracker.OpenWork(context.Background(), "shift-1", start.Add(time.Minute)); !errors.Is(err, ErrWorkIntervalOpen) {
		t.Fatalf("expected ErrWorkIntervalOpen, got %v", err)
	}
}

func TestTracker_OpenBreak_RejectsWhileWorking(t *testing.T) {
	t.Parallel()

	repo := newFakeIntervalRepo()
	tracker := NewTracker(repo)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if _, err := tracker.OpenWork(context.Background(), "shift-1", start); err != nil {
		t.Fatalf("OpenWork returned error: %v", err)
	}

	if _, err := tracker.OpenBreak(context.Background(), "shift-1", start.Add(time.Hour), BreakKindLunch); !errors.Is(err, ErrWorkIntervalOpen) {
		t.Fatalf("expected ErrWorkIntervalOpen, got %v", err)
	}
}

func TestTracker_OpenBreak_InvalidKind(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(newFakeIntervalRepo())

	_, err := tracker.OpenBreak(context.Background(), "shift-1", time.Now(), BreakKind("nap"))
	if !errors.Is(err, ErrInvalidBreakKind) {
		t.Fatalf("expected ErrInvalidBreakKind, got %v", err)
	}
}

func TestTracker_CloseOpenWork_NoOpenInterval(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(newFakeIntervalRepo())

	if err := tracker.CloseOpenWork(context.Background(), "shift-1", time.Now()); err != nil {
		t.Fatalf("expected closing without an open interval to succeed, got %v", err)
	}
}

func TestTracker_NetWorkedMinutes_ExcludesBreaks(t *testing.T) {
	t.Parallel()

	repo := newFakeIntervalRepo()
	tracker := NewTracker(repo)
	ctx := context.Background()

	// 09:00-12:00 作業、12:00-12:30 休憩、12:30-17:00 作業。
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if _, err := tracker.OpenWork(ctx, "shift-1", start); err != nil {
		t.Fatalf("OpenWork returned error: %v", err)
	}
	if err := tracker.CloseOpenWork(ctx, "shift-1", start.Add(3*time.Hour)); err != nil {
		t.Fatalf("CloseOpenWork returned error: %v", err)
	}
	if _, err := tracker.OpenBreak(ctx, "shift-1", start.Add(3*time.Hour), BreakKindLunch); err != nil {
		t.Fatalf("OpenBreak returned error: %v", err)
	}
	if err := tracker.CloseOpenBreak(ctx, "shift-1", start.Add(3*time.Hour+30*time.Minute)); err != nil {
		t.Fatalf("CloseOpenBreak returned error: %v", err)
	}
	if _, err := tracker.OpenWork(ctx, "shift-1", start.Add(3*time.Hour+30*time.Minute)); err != nil {
		t.Fatalf("OpenWork returned error: %v", err)
	}
	if err := tracker.CloseOpenWork(ctx, "shift-1", start.Add(8*time.Hour)); err != nil {
		t.Fatalf("CloseOpenWork returned error: %v", err)
	}

	minutes, err := tracker.NetWorkedMinutes(ctx, "shift-1")
	if err != nil {
		t.Fatalf("NetWorkedMinutes returned error: %v", err)
	}

	if minutes != 450 {
		t.Fatalf("expected 450 minutes, got %d", minutes)
	}
}

func TestTracker_NetWorkedMinutes_IgnoresOpenIntervals(t *testing.T) {
	t.Parallel()

	repo := newFakeIntervalRepo()
	tracker := NewTracker(repo)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if _, err := tracker.OpenWork(ctx, "shift-1", start); err != nil {
		t.Fatalf("OpenWork returned error: %v", err)
	}

	minutes, err := tracker.NetWorkedMinutes(ctx, "shift-1")
	if err != nil {
		t.Fatalf("NetWorkedMinutes returned error: %v", err)
	}

	if minutes != 0 {
		t.Fatalf("expected 0 minutes for open interval, got %d", minutes)
	}
}

func TestTracker_NetWorkedMinutesAsOf_CountsOpenInterval(t *testing.T) {
	t.Parallel()

	repo := newFakeIntervalRepo()
	tracker := NewTracker(repo)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if _, err := tracker.OpenWork(ctx, "shift-1", start); err != nil {
		t.Fatalf("OpenWork returned error: %v", err)
	}

	minutes, err := tracker.NetWorkedMinutesAsOf(ctx, "shift-1", start.Add(90*time.Minute))
	if err != nil {
		t.Fatalf("NetWorkedMinutesAsOf returned error: %v", err)
	}

	if minutes != 90 {
		t.Fatalf("expected 90 minutes, got %d", minutes)
	}
}

func TestTracker_NetWorkedMinutes_SubtractsOverlappingBreak(t *testing.T) {
	t.Parallel()

	repo := newFakeIntervalRepo()
	ctx := context.Background()

	// 作業区間が開いたまま休憩が記録されたケース。休憩は作業と重なる。
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	workEnd := start.Add(8 * time.Hour)
	breakEnd := start.Add(4 * time.Hour)
	repo.works = append(repo.works, &WorkInterval{ID: "work-1", ShiftID: "shift-1", StartAt: start, EndAt: &workEnd})
	repo.breaks = append(repo.breaks, &BreakInterval{ID: "break-1", ShiftID: "shift-1", Kind: BreakKindLunch, StartAt: start.Add(3 * time.Hour), EndAt: &breakEnd})

	tracker := NewTracker(repo)

	minutes, err := tracker.NetWorkedMinutes(ctx, "shift-1")
	if err != nil {
		t.Fatalf("NetWorkedMinutes returned error: %v", err)
	}

	if minutes != 420 {
		t.Fatalf("expected 420 minutes, got %d", minutes)
	}
}

func TestTracker_EmptyShiftID(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(newFakeIntervalRepo())

	if _, err := tracker.OpenWork(context.Background(), "  ", time.Now()); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
