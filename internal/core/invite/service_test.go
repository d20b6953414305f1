package invite

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

type fakeInviteRepo struct {
	mu        sync.Mutex
	invites   map[string]*Invite
	employees map[int64]*LinkedEmployee
	seq       int
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{
		invites:   make(map[string]*Invite),
		employees: make(map[int64]*LinkedEmployee),
	}
}

func cloneInvite(inv *Invite) *Invite {
	copy := *inv
	if inv.ExpiresAt != nil {
		v := *inv.ExpiresAt
		copy.ExpiresAt = &v
	}
	if inv.UsedByEmployee != nil {
		v := *inv.UsedByEmployee
		copy.UsedByEmployee = &v
	}
	if inv.UsedAt != nil {
		v := *inv.UsedAt
		copy.UsedAt = &v
	}
	return &copy
}

func (r *fakeInviteRepo) Create(_ context.Context, inv *Invite) (*Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	copy := cloneInvite(inv)
	copy.ID = "invite-" + strconv.Itoa(r.seq)
	r.invites[copy.ID] = copy
	return cloneInvite(copy), nil
}

func (r *fakeInviteRepo) FindByCode(_ context.Context, code string) (*Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range r.invites {
		if inv.Code == code {
			return cloneInvite(inv), nil
		}
	}
	return nil, ErrInviteNotFound
}

func (r *fakeInviteRepo) MarkUsed(_ context.Context, id, employeeID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.invites[id]
	if !ok {
		return false, ErrInviteNotFound
	}
	if inv.UsedAt != nil {
		return false, nil
	}
	usedAt := at
	inv.UsedAt = &usedAt
	inv.UsedByEmployee = &employeeID
	return true, nil
}

func (r *fakeInviteRepo) LinkEmployee(_ context.Context, in LinkEmployeeInput) (*LinkedEmployee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if emp, ok := r.employees[in.TelegramUserID]; ok {
		emp.FullName = in.FullName
		emp.Position = in.Position
		copy := *emp
		return &copy, nil
	}

	r.seq++
	emp := &LinkedEmployee{
		ID:             "employee-" + strconv.Itoa(r.seq),
		CompanyID:      in.CompanyID,
		FullName:       in.FullName,
		Position:       in.Position,
		TelegramUserID: in.TelegramUserID,
	}
	r.employees[in.TelegramUserID] = emp
	copy := *emp
	return &copy, nil
}

func (r *fakeInviteRepo) DeleteExpiredUnused(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, inv := range r.invites {
		if inv.UsedAt == nil && inv.CreatedAt.Before(cutoff) {
			delete(r.invites, id)
			removed++
		}
	}
	return removed, nil
}

func sequentialCodes() CodeGenerator {
	n := 0
	return func() string {
		n++
		return "code-" + strconv.Itoa(n)
	}
}

type inviteFixture struct {
	svc   *Service
	repo  *fakeInviteRepo
	clock stubClock
}

func newInviteFixture(now time.Time) *inviteFixture {
	repo := newFakeInviteRepo()
	clock := stubClock{now: now}
	svc := NewService(repo, clock, nil, sequentialCodes(), 0)
	return &inviteFixture{svc: svc, repo: repo, clock: clock}
}

func (f *inviteFixture) issue(t *testing.T) *Invite {
	t.Helper()
	inv, err := f.svc.Issue(context.Background(), IssueInput{
		CompanyID: "company-1",
		FullName:  "山田 太郎",
		Position:  "barista",
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	return inv
}

func TestService_Issue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)

	expiry := now.Add(48 * time.Hour)
	created, err := f.svc.Issue(context.Background(), IssueInput{
		CompanyID: "company-1",
		FullName:  "  山田 太郎  ",
		Position:  "barista",
		ExpiresAt: &expiry,
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if created.Code == "" {
		t.Error("expected generated code")
	}
	if created.FullName != "山田 太郎" {
		t.Errorf("expected trimmed full name, got %q", created.FullName)
	}
	if created.ExpiresAt == nil || !created.ExpiresAt.Equal(expiry) {
		t.Errorf("expected expiry %v, got %v", expiry, created.ExpiresAt)
	}
	if created.IsUsed() {
		t.Error("expected fresh invite to be unused")
	}
}

func TestService_Issue_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)

	if _, err := f.svc.Issue(context.Background(), IssueInput{FullName: "山田 太郎"}); !errors.Is(err, ErrInvalidCompanyID) {
		t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
	}

	past := now.Add(-time.Hour)
	if _, err := f.svc.Issue(context.Background(), IssueInput{
		CompanyID: "company-1",
		ExpiresAt: &past,
	}); !errors.Is(err, ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry for past expiry, got %v", err)
	}

	if _, err := f.svc.Issue(context.Background(), IssueInput{
		CompanyID: "company-1",
		ExpiresAt: &now,
	}); !errors.Is(err, ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry for expiry at issue time, got %v", err)
	}
}

func TestService_Redeem(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)
	inv := f.issue(t)

	result, err := f.svc.Redeem(context.Background(), RedeemInput{
		Code:           inv.Code,
		TelegramUserID: 42,
		Timezone:       "Asia/Tokyo",
	})
	if err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}
	if result.Employee.CompanyID != "company-1" {
		t.Errorf("expected employee in company-1, got %q", result.Employee.CompanyID)
	}
	if result.Employee.TelegramUserID != 42 {
		t.Errorf("expected telegram user 42, got %d", result.Employee.TelegramUserID)
	}
	if result.Invite.UsedAt == nil || !result.Invite.UsedAt.Equal(now) {
		t.Errorf("expected invite used at %v, got %v", now, result.Invite.UsedAt)
	}
	if result.Invite.UsedByEmployee == nil || *result.Invite.UsedByEmployee != result.Employee.ID {
		t.Errorf("expected invite linked to %q, got %v", result.Employee.ID, result.Invite.UsedByEmployee)
	}
}

func TestService_Redeem_AlreadyUsed(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)
	inv := f.issue(t)

	if _, err := f.svc.Redeem(context.Background(), RedeemInput{Code: inv.Code, TelegramUserID: 42}); err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}
	if _, err := f.svc.Redeem(context.Background(), RedeemInput{Code: inv.Code, TelegramUserID: 43}); !errors.Is(err, ErrInviteAlreadyUsed) {
		t.Fatalf("expected ErrInviteAlreadyUsed, got %v", err)
	}
}

func TestService_Redeem_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)
	expiry := now.Add(time.Hour)
	inv, err := f.svc.Issue(context.Background(), IssueInput{
		CompanyID: "company-1",
		ExpiresAt: &expiry,
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	late := stubClock{now: now.Add(2 * time.Hour)}
	svc := NewService(f.repo, late, nil, nil, 0)
	if _, err := svc.Redeem(context.Background(), RedeemInput{Code: inv.Code, TelegramUserID: 42}); !errors.Is(err, ErrInviteExpired) {
		t.Fatalf("expected ErrInviteExpired, got %v", err)
	}
}

func TestService_Redeem_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)

	if _, err := f.svc.Redeem(context.Background(), RedeemInput{Code: " ", TelegramUserID: 42}); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	if _, err := f.svc.Redeem(context.Background(), RedeemInput{Code: "code-1", TelegramUserID: 0}); !errors.Is(err, ErrInvalidTelegramUserID) {
		t.Fatalf("expected ErrInvalidTelegramUserID, got %v", err)
	}
	if _, err := f.svc.Redeem(context.Background(), RedeemInput{Code: "code-missing", TelegramUserID: 42}); !errors.Is(err, ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound, got %v", err)
	}
}

func TestService_Redeem_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)
	inv := f.issue(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Redeem(context.Background(), RedeemInput{
				Code:           inv.Code,
				TelegramUserID: int64(100 + i),
			})
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInviteAlreadyUsed):
		default:
			t.Fatalf("unexpected redeem error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful redeem, got %d", succeeded)
	}
}

func TestService_Redeem_RelinksExistingTelegramUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)
	first := f.issue(t)

	linked, err := f.svc.Redeem(context.Background(), RedeemInput{Code: first.Code, TelegramUserID: 42})
	if err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}

	second, err := f.svc.Issue(context.Background(), IssueInput{
		CompanyID: "company-1",
		FullName:  "山田 次郎",
		Position:  "manager",
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	relinked, err := f.svc.Redeem(context.Background(), RedeemInput{Code: second.Code, TelegramUserID: 42})
	if err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}
	if relinked.Employee.ID != linked.Employee.ID {
		t.Errorf("expected same employee %q to be relinked, got %q", linked.Employee.ID, relinked.Employee.ID)
	}
	if relinked.Employee.FullName != "山田 次郎" {
		t.Errorf("expected updated full name, got %q", relinked.Employee.FullName)
	}
}

func TestService_GetByCode(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(now)
	inv := f.issue(t)

	found, err := f.svc.GetByCode(context.Background(), GetByCodeInput{Code: inv.Code})
	if err != nil {
		t.Fatalf("GetByCode returned error: %v", err)
	}
	if found.ID != inv.ID {
		t.Errorf("expected invite %q, got %q", inv.ID, found.ID)
	}

	if _, err := f.svc.GetByCode(context.Background(), GetByCodeInput{Code: ""}); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestService_CleanupExpired(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f := newInviteFixture(issuedAt)
	stale := f.issue(t)
	redeemed := f.issue(t)
	if _, err := f.svc.Redeem(context.Background(), RedeemInput{Code: redeemed.Code, TelegramUserID: 42}); err != nil {
		t.Fatalf("Redeem returned error: %v", err)
	}

	retention := 7 * 24 * time.Hour
	later := stubClock{now: issuedAt.Add(8 * 24 * time.Hour)}
	svc := NewService(f.repo, later, nil, nil, retention)

	removed, err := svc.CleanupExpired(context.Background())
	if err != nil {
		t.Fatalf("CleanupExpired returned error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 invite removed, got %d", removed)
	}
	if _, err := svc.GetByCode(context.Background(), GetByCodeInput{Code: stale.Code}); !errors.Is(err, ErrInviteNotFound) {
		t.Fatalf("expected stale invite to be gone, got %v", err)
	}
	if _, err := svc.GetByCode(context.Background(), GetByCodeInput{Code: redeemed.Code}); err != nil {
		t.Fatalf("expected redeemed invite to survive cleanup, got %v", err)
	}
}
