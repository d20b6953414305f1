package violation

import (
	"context"
	"errors"
	"io"
	"log/slog"
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

type fakeViolationRepo struct {
	rules      map[string]*Rule
	violations map[string]*Violation
	employees  map[string]*EmployeeRef
	seq        int
}

func newFakeViolationRepo() *fakeViolationRepo {
	return &fakeViolationRepo{
		rules:      make(map[string]*Rule),
		violations: make(map[string]*Violation),
		employees:  make(map[string]*EmployeeRef),
	}
}

func cloneRule(r *Rule) *Rule {
	copy := *r
	return &copy
}

func cloneViolation(v *Violation) *Violation {
	copy := *v
	copy.Reason = cloneString(v.Reason)
	copy.CreatedBy = cloneString(v.CreatedBy)
	return &copy
}

func (r *fakeViolationRepo) CreateRule(_ context.Context, rule *Rule) (*Rule, error) {
	for _, existing := range r.rules {
		if existing.CompanyID == rule.CompanyID && existing.Code == rule.Code {
			return nil, ErrRuleCodeAlreadyExists
		}
	}
	r.seq++
	copy := cloneRule(rule)
	copy.ID = "rule-" + strconv.Itoa(r.seq)
	r.rules[copy.ID] = copy
	return cloneRule(copy), nil
}

func (r *fakeViolationRepo) UpdateRule(_ context.Context, rule *Rule) (*Rule, error) {
	if _, ok := r.rules[rule.ID]; !ok {
		return nil, ErrRuleNotFound
	}
	r.rules[rule.ID] = cloneRule(rule)
	return cloneRule(rule), nil
}

func (r *fakeViolationRepo) FindRuleByID(_ context.Context, id string) (*Rule, error) {
	rule, ok := r.rules[id]
	if !ok {
		return nil, ErrRuleNotFound
	}
	return cloneRule(rule), nil
}

func (r *fakeViolationRepo) ListRulesByCompany(_ context.Context, companyID string, activeOnly bool) ([]*Rule, error) {
	var result []*Rule
	for _, rule := range r.rules {
		if rule.CompanyID != companyID {
			continue
		}
		if activeOnly && !rule.IsActive {
			continue
		}
		result = append(result, cloneRule(rule))
	}
	return result, nil
}

func (r *fakeViolationRepo) Create(_ context.Context, v *Violation) (*Violation, error) {
	r.seq++
	copy := cloneViolation(v)
	copy.ID = "violation-" + strconv.Itoa(r.seq)
	r.violations[copy.ID] = copy
	return cloneViolation(copy), nil
}

func (r *fakeViolationRepo) ListByEmployee(_ context.Context, filter ListFilter) ([]*Violation, error) {
	var result []*Violation
	for _, v := range r.violations {
		if v.EmployeeID != filter.EmployeeID {
			continue
		}
		if !matchesRange(v.CreatedAt, filter.From, filter.To) {
			continue
		}
		result = append(result, cloneViolation(v))
	}
	return result, nil
}

func (r *fakeViolationRepo) ListByCompany(_ context.Context, filter ListFilter) ([]*Violation, error) {
	var result []*Violation
	for _, v := range r.violations {
		if v.CompanyID != filter.CompanyID {
			continue
		}
		if !matchesRange(v.CreatedAt, filter.From, filter.To) {
			continue
		}
		result = append(result, cloneViolation(v))
	}
	return result, nil
}

func (r *fakeViolationRepo) FindEmployeeRef(_ context.Context, employeeID string) (*EmployeeRef, error) {
	ref, ok := r.employees[employeeID]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	copy := *ref
	return &copy, nil
}

func matchesRange(at time.Time, from, to *time.Time) bool {
	if from != nil && at.Before(*from) {
		return false
	}
	if to != nil && !at.Before(*to) {
		return false
	}
	return true
}

type stubRecalculator struct {
	calls []string
	err   error
}

func (s *stubRecalculator) RecalculateCurrentPeriod(_ context.Context, employeeID string, _ time.Time) error {
	s.calls = append(s.calls, employeeID)
	return s.err
}

type recordingInvalidator struct {
	companyIDs []string
}

func (r *recordingInvalidator) Invalidate(companyID string) {
	r.companyIDs = append(r.companyIDs, companyID)
}

type violationFixture struct {
	svc    *Service
	repo   *fakeViolationRepo
	rating *stubRecalculator
	cache  *recordingInvalidator
	clock  stubClock
}

func newViolationFixture(now time.Time) *violationFixture {
	repo := newFakeViolationRepo()
	repo.employees["employee-1"] = &EmployeeRef{ID: "employee-1", CompanyID: "company-1"}
	rating := &stubRecalculator{}
	cache := &recordingInvalidator{}
	clock := stubClock{now: now}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(repo, repo, rating, clock, nil, cache, logger)
	return &violationFixture{svc: svc, repo: repo, rating: rating, cache: cache, clock: clock}
}

func (f *violationFixture) createRule(t *testing.T, penalty float64) *Rule {
	t.Helper()
	rule, err := f.svc.CreateRule(context.Background(), CreateRuleInput{
		CompanyID:      "company-1",
		Code:           "late_arrival",
		Name:           "遅刻",
		PenaltyPercent: penalty,
	})
	if err != nil {
		t.Fatalf("CreateRule returned error: %v", err)
	}
	return rule
}

func TestService_RecordViolation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)

	reason := "reported by manager"
	created, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-1",
		CompanyID:  "company-1",
		RuleID:     rule.ID,
		Source:     SourceManual,
		Reason:     &reason,
	})
	if err != nil {
		t.Fatalf("RecordViolation returned error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected violation ID to be assigned")
	}
	if created.Penalty != 10 {
		t.Errorf("expected penalty 10, got %v", created.Penalty)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected created at %v, got %v", now, created.CreatedAt)
	}
	if created.Reason == nil || *created.Reason != reason {
		t.Errorf("expected reason %q, got %v", reason, created.Reason)
	}
	if len(f.rating.calls) != 1 || f.rating.calls[0] != "employee-1" {
		t.Errorf("expected one recalculation for employee-1, got %v", f.rating.calls)
	}
	if len(f.cache.companyIDs) != 1 || f.cache.companyIDs[0] != "company-1" {
		t.Errorf("expected one cache invalidation for company-1, got %v", f.cache.companyIDs)
	}
}

func TestService_RecordViolation_PenaltySnapshotSurvivesRuleEdit(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)

	created, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-1",
		CompanyID:  "company-1",
		RuleID:     rule.ID,
		Source:     SourceManual,
	})
	if err != nil {
		t.Fatalf("RecordViolation returned error: %v", err)
	}

	newPenalty := 25.0
	if _, err := f.svc.UpdateRule(context.Background(), UpdateRuleInput{ID: rule.ID, PenaltyPercent: &newPenalty}); err != nil {
		t.Fatalf("UpdateRule returned error: %v", err)
	}

	stored := f.repo.violations[created.ID]
	if stored.Penalty != 10 {
		t.Errorf("expected recorded penalty to stay 10 after rule edit, got %v", stored.Penalty)
	}
}

func TestService_RecordViolation_InactiveRule(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)
	if _, err := f.svc.DeactivateRule(context.Background(), DeactivateRuleInput{ID: rule.ID}); err != nil {
		t.Fatalf("DeactivateRule returned error: %v", err)
	}

	_, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-1",
		CompanyID:  "company-1",
		RuleID:     rule.ID,
		Source:     SourceAuto,
	})
	if !errors.Is(err, ErrRuleInactive) {
		t.Fatalf("expected ErrRuleInactive for auto source, got %v", err)
	}

	if _, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-1",
		CompanyID:  "company-1",
		RuleID:     rule.ID,
		Source:     SourceManual,
	}); err != nil {
		t.Fatalf("expected manual record against inactive rule to succeed, got %v", err)
	}
}

func TestService_RecordViolation_CompanyMismatch(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)
	f.repo.employees["employee-2"] = &EmployeeRef{ID: "employee-2", CompanyID: "company-2"}

	_, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-2",
		CompanyID:  "company-2",
		RuleID:     rule.ID,
		Source:     SourceManual,
	})
	if !errors.Is(err, ErrCompanyMismatch) {
		t.Fatalf("expected ErrCompanyMismatch, got %v", err)
	}
	if len(f.repo.violations) != 0 {
		t.Errorf("expected no violation to be recorded, got %d", len(f.repo.violations))
	}
}

func TestService_RecordViolation_RecalculationFailureDoesNotPropagate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)
	f.rating.err = errors.New("rating store unavailable")

	created, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-1",
		CompanyID:  "company-1",
		RuleID:     rule.ID,
		Source:     SourceManual,
	})
	if err != nil {
		t.Fatalf("expected violation to be recorded despite recalculation failure, got %v", err)
	}
	if _, ok := f.repo.violations[created.ID]; !ok {
		t.Error("expected violation to be persisted")
	}
	if len(f.cache.companyIDs) != 1 {
		t.Errorf("expected cache invalidation despite recalculation failure, got %v", f.cache.companyIDs)
	}
}

func TestService_RecordViolation_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)

	tests := []struct {
		name    string
		input   RecordViolationInput
		wantErr error
	}{
		{
			name:    "empty employee id",
			input:   RecordViolationInput{CompanyID: "company-1", RuleID: rule.ID, Source: SourceManual},
			wantErr: ErrInvalidEmployeeID,
		},
		{
			name:    "empty company id",
			input:   RecordViolationInput{EmployeeID: "employee-1", RuleID: rule.ID, Source: SourceManual},
			wantErr: ErrInvalidCompanyID,
		},
		{
			name:    "empty rule id",
			input:   RecordViolationInput{EmployeeID: "employee-1", CompanyID: "company-1", Source: SourceManual},
			wantErr: ErrInvalidRuleID,
		},
		{
			name:    "invalid source",
			input:   RecordViolationInput{EmployeeID: "employee-1", CompanyID: "company-1", RuleID: rule.ID, Source: Source("guess")},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "unknown rule",
			input:   RecordViolationInput{EmployeeID: "employee-1", CompanyID: "company-1", RuleID: "rule-missing", Source: SourceManual},
			wantErr: ErrRuleNotFound,
		},
		{
			name:    "unknown employee",
			input:   RecordViolationInput{EmployeeID: "employee-missing", CompanyID: "company-1", RuleID: rule.ID, Source: SourceManual},
			wantErr: ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := f.svc.RecordViolation(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_ListByEmployee_FiltersByRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)

	if _, err := f.svc.RecordViolation(context.Background(), RecordViolationInput{
		EmployeeID: "employee-1",
		CompanyID:  "company-1",
		RuleID:     rule.ID,
		Source:     SourceManual,
	}); err != nil {
		t.Fatalf("RecordViolation returned error: %v", err)
	}

	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)
	listed, err := f.svc.ListByEmployee(context.Background(), ListByEmployeeInput{EmployeeID: "employee-1", From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 violation in range, got %d", len(listed))
	}

	past := now.Add(-2 * time.Hour)
	pastEnd := now.Add(-time.Hour)
	listed, err = f.svc.ListByEmployee(context.Background(), ListByEmployeeInput{EmployeeID: "employee-1", From: &past, To: &pastEnd})
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no violations outside range, got %d", len(listed))
	}

	if _, err := f.svc.ListByEmployee(context.Background(), ListByEmployeeInput{EmployeeID: "employee-1", From: &to, To: &from}); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange for inverted range, got %v", err)
	}
}

func TestService_CreateRule(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)

	created, err := f.svc.CreateRule(context.Background(), CreateRuleInput{
		CompanyID:      "company-1",
		Code:           "  Late_Arrival  ",
		Name:           "遅刻",
		PenaltyPercent: 5,
		AutoDetectable: true,
	})
	if err != nil {
		t.Fatalf("CreateRule returned error: %v", err)
	}
	if created.Code != "late_arrival" {
		t.Errorf("expected normalized code late_arrival, got %q", created.Code)
	}
	if !created.IsActive {
		t.Error("expected new rule to be active")
	}

	if _, err := f.svc.CreateRule(context.Background(), CreateRuleInput{
		CompanyID:      "company-1",
		Code:           "late_arrival",
		Name:           "遅刻(重複)",
		PenaltyPercent: 5,
	}); !errors.Is(err, ErrRuleCodeAlreadyExists) {
		t.Fatalf("expected ErrRuleCodeAlreadyExists, got %v", err)
	}

	if _, err := f.svc.CreateRule(context.Background(), CreateRuleInput{
		CompanyID:      "company-1",
		Code:           "早退!",
		Name:           "早退",
		PenaltyPercent: 5,
	}); !errors.Is(err, ErrInvalidRuleCode) {
		t.Fatalf("expected ErrInvalidRuleCode, got %v", err)
	}

	if _, err := f.svc.CreateRule(context.Background(), CreateRuleInput{
		CompanyID:      "company-1",
		Code:           "no_show",
		Name:           "無断欠勤",
		PenaltyPercent: -1,
	}); !errors.Is(err, ErrInvalidPenalty) {
		t.Fatalf("expected ErrInvalidPenalty, got %v", err)
	}
}

func TestService_UpdateRule(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	rule := f.createRule(t, 10)

	name := "遅刻(改定)"
	penalty := 15.0
	updated, err := f.svc.UpdateRule(context.Background(), UpdateRuleInput{
		ID:             rule.ID,
		Name:           &name,
		PenaltyPercent: &penalty,
	})
	if err != nil {
		t.Fatalf("UpdateRule returned error: %v", err)
	}
	if updated.Name != name {
		t.Errorf("expected name %q, got %q", name, updated.Name)
	}
	if updated.PenaltyPercent != penalty {
		t.Errorf("expected penalty %v, got %v", penalty, updated.PenaltyPercent)
	}

	empty := "   "
	if _, err := f.svc.UpdateRule(context.Background(), UpdateRuleInput{ID: rule.ID, Name: &empty}); !errors.Is(err, ErrInvalidRuleName) {
		t.Fatalf("expected ErrInvalidRuleName, got %v", err)
	}

	if _, err := f.svc.UpdateRule(context.Background(), UpdateRuleInput{ID: "rule-missing"}); !errors.Is(err, ErrRuleNotFound) {
		t.Fatalf("expected ErrRuleNotFound, got %v", err)
	}
}

func TestService_ListRules_ActiveOnly(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newViolationFixture(now)
	active := f.createRule(t, 10)
	other, err := f.svc.CreateRule(context.Background(), CreateRuleInput{
		CompanyID:      "company-1",
		Code:           "no_show",
		Name:           "無断欠勤",
		PenaltyPercent: 30,
	})
	if err != nil {
		t.Fatalf("CreateRule returned error: %v", err)
	}
	if _, err := f.svc.DeactivateRule(context.Background(), DeactivateRuleInput{ID: other.ID}); err != nil {
		t.Fatalf("DeactivateRule returned error: %v", err)
	}

	all, err := f.svc.ListRules(context.Background(), ListRulesInput{CompanyID: "company-1"})
	if err != nil {
		t.Fatalf("ListRules returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(all))
	}

	activeOnly, err := f.svc.ListRules(context.Background(), ListRulesInput{CompanyID: "company-1", ActiveOnly: true})
	if err != nil {
		t.Fatalf("ListRules returned error: %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].ID != active.ID {
		t.Fatalf("expected only rule %s to remain active, got %v", active.ID, activeOnly)
	}
}
