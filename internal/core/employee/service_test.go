package employee

import (
	"context"
	"errors"
	"sort"
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

type fakeEmployeeRepo struct {
	employees map[string]*Employee
	seq       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*Employee)}
}

func cloneEmployee(e *Employee) *Employee {
	copy := *e
	if e.TelegramUserID != nil {
		v := *e.TelegramUserID
		copy.TelegramUserID = &v
	}
	return &copy
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *Employee) (*Employee, error) {
	if e.TelegramUserID != nil {
		for _, existing := range r.employees {
			if existing.CompanyID == e.CompanyID && existing.TelegramUserID != nil && *existing.TelegramUserID == *e.TelegramUserID {
				return nil, ErrTelegramUserLinked
			}
		}
	}
	r.seq++
	copy := cloneEmployee(e)
	copy.ID = "employee-" + strconv.Itoa(r.seq)
	r.employees[copy.ID] = copy
	return cloneEmployee(copy), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *Employee) (*Employee, error) {
	if _, ok := r.employees[e.ID]; !ok {
		return nil, ErrEmployeeNotFound
	}
	r.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter ListEmployeesFilter) ([]*Employee, string, error) {
	var matched []*Employee
	for _, e := range r.employees {
		if e.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		matched = append(matched, cloneEmployee(e))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if filter.Offset >= len(matched) {
		return nil, "", nil
	}
	matched = matched[filter.Offset:]

	var nextToken string
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}
	return matched, nextToken, nil
}

func newEmployeeService(now time.Time) (*Service, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	svc := NewService(repo, stubClock{now: now}, nil)
	return svc, repo
}

func TestService_CreateEmployee(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID: "company-1",
		FullName:  "  山田 太郎  ",
		Position:  "barista",
		Timezone:  "Asia/Tokyo",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if created.FullName != "山田 太郎" {
		t.Errorf("expected trimmed full name, got %q", created.FullName)
	}
	if created.Status != StatusActive {
		t.Errorf("expected default status active, got %q", created.Status)
	}
	if created.Timezone != "Asia/Tokyo" {
		t.Errorf("expected timezone Asia/Tokyo, got %q", created.Timezone)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Errorf("expected timestamps %v, got created=%v updated=%v", now, created.CreatedAt, created.UpdatedAt)
	}
}

func TestService_CreateEmployee_DefaultsTimezoneToUTC(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID: "company-1",
		FullName:  "山田 太郎",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if created.Timezone != "UTC" {
		t.Errorf("expected default timezone UTC, got %q", created.Timezone)
	}
}

func TestService_CreateEmployee_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	badStatus := Status("retired")
	negativeTelegram := int64(-1)

	tests := []struct {
		name    string
		input   CreateEmployeeInput
		wantErr error
	}{
		{
			name:    "empty company id",
			input:   CreateEmployeeInput{FullName: "山田 太郎"},
			wantErr: ErrInvalidCompanyID,
		},
		{
			name:    "blank full name",
			input:   CreateEmployeeInput{CompanyID: "company-1", FullName: "   "},
			wantErr: ErrInvalidFullName,
		},
		{
			name:    "unknown timezone",
			input:   CreateEmployeeInput{CompanyID: "company-1", FullName: "山田 太郎", Timezone: "Mars/Olympus"},
			wantErr: ErrInvalidTimezone,
		},
		{
			name:    "invalid status",
			input:   CreateEmployeeInput{CompanyID: "company-1", FullName: "山田 太郎", Status: &badStatus},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "non-positive telegram user id",
			input:   CreateEmployeeInput{CompanyID: "company-1", FullName: "山田 太郎", TelegramUserID: &negativeTelegram},
			wantErr: ErrInvalidTelegramUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CreateEmployee(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_CreateEmployee_TelegramUserAlreadyLinked(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	telegramID := int64(42)
	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID:      "company-1",
		FullName:       "山田 太郎",
		TelegramUserID: &telegramID,
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID:      "company-1",
		FullName:       "山田 次郎",
		TelegramUserID: &telegramID,
	}); !errors.Is(err, ErrTelegramUserLinked) {
		t.Fatalf("expected ErrTelegramUserLinked, got %v", err)
	}
}

func TestService_UpdateEmployee(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID: "company-1",
		FullName:  "山田 太郎",
		Position:  "barista",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	name := "山田 太郎(改名)"
	position := "manager"
	status := StatusOnLeave
	updated, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:       created.ID,
		FullName: &name,
		Position: &position,
		Status:   &status,
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.FullName != name {
		t.Errorf("expected full name %q, got %q", name, updated.FullName)
	}
	if updated.Position != position {
		t.Errorf("expected position %q, got %q", position, updated.Position)
	}
	if updated.Status != status {
		t.Errorf("expected status %q, got %q", status, updated.Status)
	}
}

func TestService_UpdateEmployee_TelegramUserIDSemantics(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	telegramID := int64(42)
	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID:      "company-1",
		FullName:       "山田 太郎",
		TelegramUserID: &telegramID,
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	name := "山田 太郎"
	kept, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:       created.ID,
		FullName: &name,
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if kept.TelegramUserID == nil || *kept.TelegramUserID != telegramID {
		t.Errorf("expected telegram link untouched when field unset, got %v", kept.TelegramUserID)
	}

	unlinked, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:                created.ID,
		TelegramUserIDSet: true,
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if unlinked.TelegramUserID != nil {
		t.Errorf("expected telegram link cleared, got %v", unlinked.TelegramUserID)
	}

	invalid := int64(0)
	if _, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{
		ID:                created.ID,
		TelegramUserID:    &invalid,
		TelegramUserIDSet: true,
	}); !errors.Is(err, ErrInvalidTelegramUserID) {
		t.Fatalf("expected ErrInvalidTelegramUserID, got %v", err)
	}
}

func TestService_UpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	if _, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeInput{ID: "employee-missing"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_DeleteEmployee(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID: "company-1",
		FullName:  "山田 太郎",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if err := svc.DeleteEmployee(context.Background(), DeleteEmployeeInput{ID: created.ID}); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}
	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: created.ID}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}

func TestService_ListEmployees_Pagination(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
			CompanyID: "company-1",
			FullName:  "従業員 " + strconv.Itoa(i),
		}); err != nil {
			t.Fatalf("CreateEmployee returned error: %v", err)
		}
	}

	first, err := svc.ListEmployees(context.Background(), ListEmployeesInput{CompanyID: "company-1", PageSize: 2})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(first.Employees) != 2 {
		t.Fatalf("expected 2 employees on first page, got %d", len(first.Employees))
	}
	if first.NextPageToken == "" {
		t.Fatal("expected next page token on first page")
	}

	second, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		CompanyID: "company-1",
		PageSize:  2,
		PageToken: first.NextPageToken,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(second.Employees) != 2 {
		t.Fatalf("expected 2 employees on second page, got %d", len(second.Employees))
	}
	if second.Employees[0].ID == first.Employees[0].ID {
		t.Error("expected second page to start past the first page")
	}
}

func TestService_ListEmployees_StatusFilter(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	onLeave := StatusOnLeave
	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID: "company-1", FullName: "山田 太郎",
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if _, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		CompanyID: "company-1", FullName: "山田 次郎", Status: &onLeave,
	}); err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	result, err := svc.ListEmployees(context.Background(), ListEmployeesInput{CompanyID: "company-1", Status: &onLeave})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(result.Employees) != 1 || result.Employees[0].Status != StatusOnLeave {
		t.Fatalf("expected only the on_leave employee, got %v", result.Employees)
	}
}

func TestService_ListEmployees_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newEmployeeService(now)

	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{CompanyID: "company-1", PageSize: 1000}); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{CompanyID: "company-1", PageToken: "not-a-number"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}
