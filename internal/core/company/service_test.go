package company

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

type fakeCompanyRepo struct {
	companies map[string]*Company
	seq       int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*Company)}
}

func cloneCompany(c *Company) *Company {
	copy := *c
	return &copy
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *Company) (*Company, error) {
	r.seq++
	copy := cloneCompany(c)
	copy.ID = "company-" + strconv.Itoa(r.seq)
	r.companies[copy.ID] = copy
	return cloneCompany(copy), nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *Company) (*Company, error) {
	if _, ok := r.companies[c.ID]; !ok {
		return nil, ErrCompanyNotFound
	}
	r.companies[c.ID] = cloneCompany(c)
	return cloneCompany(c), nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id string) (*Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	return cloneCompany(c), nil
}

func (r *fakeCompanyRepo) FindByCode(_ context.Context, code string) (*Company, error) {
	for _, c := range r.companies {
		if c.Code == code {
			return cloneCompany(c), nil
		}
	}
	return nil, ErrCompanyNotFound
}

func (r *fakeCompanyRepo) List(_ context.Context, filter ListCompaniesFilter) ([]*Company, string, error) {
	var matched []*Company
	for _, c := range r.companies {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		matched = append(matched, cloneCompany(c))
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

func newCompanyService(now time.Time) (*Service, *fakeCompanyRepo) {
	repo := newFakeCompanyRepo()
	svc := NewService(repo, stubClock{now: now}, nil)
	return svc, repo
}

func TestService_CreateCompany(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	created, err := svc.CreateCompany(context.Background(), CreateCompanyInput{
		Name: "  喫茶ポラリス  ",
		Code: "  Polaris-Cafe  ",
	})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}
	if created.Name != "喫茶ポラリス" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
	if created.Code != "polaris-cafe" {
		t.Errorf("expected normalized code polaris-cafe, got %q", created.Code)
	}
	if created.Status != StatusActive {
		t.Errorf("expected status active, got %q", created.Status)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Errorf("expected timestamps %v, got created=%v updated=%v", now, created.CreatedAt, created.UpdatedAt)
	}
}

func TestService_CreateCompany_Validation(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	tests := []struct {
		name    string
		input   CreateCompanyInput
		wantErr error
	}{
		{
			name:    "blank name",
			input:   CreateCompanyInput{Name: "   ", Code: "polaris"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty code",
			input:   CreateCompanyInput{Name: "喫茶ポラリス"},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "code with invalid characters",
			input:   CreateCompanyInput{Name: "喫茶ポラリス", Code: "polaris cafe!"},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "code starting with separator",
			input:   CreateCompanyInput{Name: "喫茶ポラリス", Code: "-polaris"},
			wantErr: ErrInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CreateCompany(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_CreateCompany_CodeAlreadyExists(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	if _, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "喫茶ポラリス", Code: "polaris"}); err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}
	if _, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "別の店", Code: "POLARIS"}); !errors.Is(err, ErrCodeAlreadyExists) {
		t.Fatalf("expected ErrCodeAlreadyExists for case-insensitive duplicate, got %v", err)
	}
}

func TestService_UpdateCompany(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	created, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "喫茶ポラリス", Code: "polaris"})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}

	name := "喫茶ポラリス 本店"
	code := "polaris-main"
	updated, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{
		ID:   created.ID,
		Name: &name,
		Code: &code,
	})
	if err != nil {
		t.Fatalf("UpdateCompany returned error: %v", err)
	}
	if updated.Name != name {
		t.Errorf("expected name %q, got %q", name, updated.Name)
	}
	if updated.Code != code {
		t.Errorf("expected code %q, got %q", code, updated.Code)
	}
}

func TestService_UpdateCompany_SameCodeIsNoConflict(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	created, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "喫茶ポラリス", Code: "polaris"})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}

	same := "polaris"
	if _, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{ID: created.ID, Code: &same}); err != nil {
		t.Fatalf("expected updating to the current code to succeed, got %v", err)
	}
}

func TestService_UpdateCompany_CodeConflict(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	if _, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "喫茶ポラリス", Code: "polaris"}); err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}
	other, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "別の店", Code: "other"})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}

	conflicting := "polaris"
	if _, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{ID: other.ID, Code: &conflicting}); !errors.Is(err, ErrCodeAlreadyExists) {
		t.Fatalf("expected ErrCodeAlreadyExists, got %v", err)
	}
}

func TestService_SuspendCompany(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, repo := newCompanyService(now)

	created, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "喫茶ポラリス", Code: "polaris"})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}

	suspended, err := svc.SuspendCompany(context.Background(), SuspendCompanyInput{ID: created.ID})
	if err != nil {
		t.Fatalf("SuspendCompany returned error: %v", err)
	}
	if suspended.Status != StatusSuspended {
		t.Errorf("expected status suspended, got %q", suspended.Status)
	}
	if _, ok := repo.companies[created.ID]; !ok {
		t.Error("expected suspended company to remain stored")
	}
}

func TestService_GetCompany_NotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	if _, err := svc.GetCompany(context.Background(), GetCompanyInput{ID: "company-missing"}); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
	if _, err := svc.GetCompany(context.Background(), GetCompanyInput{ID: "  "}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_ListCompanies_Pagination(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newCompanyService(now)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateCompany(context.Background(), CreateCompanyInput{
			Name: "店舗 " + strconv.Itoa(i),
			Code: "store-" + strconv.Itoa(i),
		}); err != nil {
			t.Fatalf("CreateCompany returned error: %v", err)
		}
	}

	first, err := svc.ListCompanies(context.Background(), ListCompaniesInput{PageSize: 2})
	if err != nil {
		t.Fatalf("ListCompanies returned error: %v", err)
	}
	if len(first.Companies) != 2 {
		t.Fatalf("expected 2 companies on first page, got %d", len(first.Companies))
	}
	if first.NextPageToken == "" {
		t.Fatal("expected next page token")
	}

	second, err := svc.ListCompanies(context.Background(), ListCompaniesInput{PageSize: 2, PageToken: first.NextPageToken})
	if err != nil {
		t.Fatalf("ListCompanies returned error: %v", err)
	}
	if len(second.Companies) != 1 {
		t.Fatalf("expected 1 company on second page, got %d", len(second.Companies))
	}
	if second.NextPageToken != "" {
		t.Errorf("expected empty token on last page, got %q", second.NextPageToken)
	}

	if _, err := svc.ListCompanies(context.Background(), ListCompaniesInput{PageToken: "abc"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}
