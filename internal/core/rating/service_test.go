package rating

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

func (c stubClock) Now() time.Time {
	return c.now
}

type ratingKey struct {
	employeeID  string
	periodStart time.Time
	periodEnd   time.Time
}

type fakeRatingRepo struct {
	ratings map[ratingKey]*EmployeeRating
	seq     int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[ratingKey]*EmployeeRating)}
}

func cloneRating(r *EmployeeRating) *EmployeeRating {
	copy := *r
	return &copy
}

func (f *fakeRatingRepo) Upsert(_ context.Context, r *EmployeeRating) (*EmployeeRating, error) {
	key := ratingKey{employeeID: r.EmployeeID, periodStart: r.PeriodStart, periodEnd: r.PeriodEnd}
	copy := cloneRating(r)
	if existing, ok := f.ratings[key]; ok {
		copy.ID = existing.ID
	} else {
		f.seq++
		copy.ID = "rating-" + strconv.Itoa(f.seq)
	}
	f.ratings[key] = copy
	return cloneRating(copy), nil
}

func (f *fakeRatingRepo) FindByPeriod(_ context.Context, employeeID string, periodStart, periodEnd time.Time) (*EmployeeRating, error) {
	key := ratingKey{employeeID: employeeID, periodStart: periodStart, periodEnd: periodEnd}
	r, ok := f.ratings[key]
	if !ok {
		return nil, ErrRatingNotFound
	}
	return cloneRating(r), nil
}

type fakePenaltySource struct {
	employees map[string]*EmployeeRef
	penalties map[string][]float64
}

func newFakePenaltySource() *fakePenaltySource {
	return &fakePenaltySource{
		employees: make(map[string]*EmployeeRef),
		penalties: make(map[string][]float64),
	}
}

func (f *fakePenaltySource) PenaltiesInPeriod(_ context.Context, employeeID string, _, _ time.Time) ([]float64, error) {
	return f.penalties[employeeID], nil
}

func (f *fakePenaltySource) FindEmployeeRef(_ context.Context, employeeID string) (*EmployeeRef, error) {
	ref, ok := f.employees[employeeID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	copy := *ref
	return &copy, nil
}

type ratingFixture struct {
	svc       *Service
	repo      *fakeRatingRepo
	penalties *fakePenaltySource
	clock     stubClock
}

func newRatingFixture(now time.Time) *ratingFixture {
	repo := newFakeRatingRepo()
	penalties := newFakePenaltySource()
	penalties.employees["employee-1"] = &EmployeeRef{ID: "employee-1", CompanyID: "company-1"}
	clock := stubClock{now: now}
	svc := NewService(repo, penalties, clock, nil)
	return &ratingFixture{svc: svc, repo: repo, penalties: penalties, clock: clock}
}

func monthOf(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func TestService_Recalculate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{10, 7, 5}
	start, end := monthOf(now)

	rated, err := f.svc.Recalculate(context.Background(), RecalculateInput{
		EmployeeID:  "employee-1",
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}
	if rated.Rating != 78 {
		t.Errorf("expected rating 78, got %v", rated.Rating)
	}
	if rated.Status != StatusComputed {
		t.Errorf("expected status computed, got %q", rated.Status)
	}
	if rated.CompanyID != "company-1" {
		t.Errorf("expected company-1, got %q", rated.CompanyID)
	}
}

func TestService_Recalculate_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{12, 10}
	start, end := monthOf(now)
	in := RecalculateInput{EmployeeID: "employee-1", PeriodStart: start, PeriodEnd: end}

	first, err := f.svc.Recalculate(context.Background(), in)
	if err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}
	second, err := f.svc.Recalculate(context.Background(), in)
	if err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}
	if second.Rating != first.Rating {
		t.Errorf("expected identical rating on rerun, got %v then %v", first.Rating, second.Rating)
	}
	if second.ID != first.ID {
		t.Errorf("expected recalculation to update the same row, got %q then %q", first.ID, second.ID)
	}
	if len(f.repo.ratings) != 1 {
		t.Errorf("expected a single stored rating, got %d", len(f.repo.ratings))
	}
}

func TestService_Recalculate_ClampsAtZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{60, 55}
	start, end := monthOf(now)

	rated, err := f.svc.Recalculate(context.Background(), RecalculateInput{
		EmployeeID:  "employee-1",
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}
	if rated.Rating != 0 {
		t.Errorf("expected rating clamped to 0, got %v", rated.Rating)
	}
}

func TestService_Recalculate_OverwritesManualAdjustment(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{20}
	start, end := monthOf(now)

	if _, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       5,
		PeriodStart: start,
		PeriodEnd:   end,
	}); err != nil {
		t.Fatalf("Adjust returned error: %v", err)
	}

	rated, err := f.svc.Recalculate(context.Background(), RecalculateInput{
		EmployeeID:  "employee-1",
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}
	if rated.Rating != 80 {
		t.Errorf("expected derived rating 80 after recalculation, got %v", rated.Rating)
	}
	if rated.Status != StatusComputed {
		t.Errorf("expected status computed after recalculation, got %q", rated.Status)
	}
}

func TestService_Adjust(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{8}
	start, end := monthOf(now)

	if _, err := f.svc.Recalculate(context.Background(), RecalculateInput{
		EmployeeID:  "employee-1",
		PeriodStart: start,
		PeriodEnd:   end,
	}); err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}

	adjusted, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       -10,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Adjust returned error: %v", err)
	}
	if adjusted.Rating != 82 {
		t.Errorf("expected rating 82 after -10 adjustment, got %v", adjusted.Rating)
	}
	if adjusted.Status != StatusManuallyAdjusted {
		t.Errorf("expected status manually_adjusted, got %q", adjusted.Status)
	}
}

func TestService_Adjust_RecalculatesWhenMissing(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{30}
	start, end := monthOf(now)

	adjusted, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       15,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Adjust returned error: %v", err)
	}
	if adjusted.Rating != 85 {
		t.Errorf("expected rating 85 (derived 70 + 15), got %v", adjusted.Rating)
	}
}

func TestService_Adjust_ClampsAtBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	start, end := monthOf(now)

	adjusted, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       50,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Adjust returned error: %v", err)
	}
	if adjusted.Rating != 100 {
		t.Errorf("expected rating clamped to 100, got %v", adjusted.Rating)
	}

	adjusted, err = f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       -100,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("Adjust returned error: %v", err)
	}
	if adjusted.Rating != 0 {
		t.Errorf("expected rating clamped to 0, got %v", adjusted.Rating)
	}
}

func TestService_Adjust_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	start, end := monthOf(now)

	if _, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       120,
		PeriodStart: start,
		PeriodEnd:   end,
	}); !errors.Is(err, ErrInvalidDelta) {
		t.Fatalf("expected ErrInvalidDelta, got %v", err)
	}

	if _, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "  ",
		Delta:       5,
		PeriodStart: start,
		PeriodEnd:   end,
	}); !errors.Is(err, ErrInvalidEmployeeID) {
		t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
	}

	if _, err := f.svc.Adjust(context.Background(), AdjustInput{
		EmployeeID:  "employee-1",
		Delta:       5,
		PeriodStart: end,
		PeriodEnd:   start,
	}); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestService_GetCurrentPeriod(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	f.penalties.penalties["employee-1"] = []float64{5}

	if err := f.svc.RecalculateCurrentPeriod(context.Background(), "employee-1", now); err != nil {
		t.Fatalf("RecalculateCurrentPeriod returned error: %v", err)
	}

	rated, err := f.svc.GetCurrentPeriod(context.Background(), GetCurrentPeriodInput{EmployeeID: "employee-1"})
	if err != nil {
		t.Fatalf("GetCurrentPeriod returned error: %v", err)
	}
	if rated.Rating != 95 {
		t.Errorf("expected rating 95, got %v", rated.Rating)
	}
	start, end := monthOf(now)
	if !rated.PeriodStart.Equal(start) || !rated.PeriodEnd.Equal(end) {
		t.Errorf("expected calendar month period [%v, %v), got [%v, %v)", start, end, rated.PeriodStart, rated.PeriodEnd)
	}
}

func TestService_GetForPeriod_NotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	start, end := monthOf(now)

	if _, err := f.svc.GetForPeriod(context.Background(), GetForPeriodInput{
		EmployeeID:  "employee-1",
		PeriodStart: start,
		PeriodEnd:   end,
	}); !errors.Is(err, ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound, got %v", err)
	}
}

func TestService_Recalculate_UnknownEmployee(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newRatingFixture(now)
	start, end := monthOf(now)

	if _, err := f.svc.Recalculate(context.Background(), RecalculateInput{
		EmployeeID:  "employee-missing",
		PeriodStart: start,
		PeriodEnd:   end,
	}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
