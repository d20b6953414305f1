package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/crewshift/crewshift/internal/core/shift"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestShiftRepository_Transition_StateChanged(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewShiftRepository(mock)

	query := regexp.QuoteMeta(`
        UPDATE shifts
           SET status = $1,
               actual_start_at = $2,
               actual_end_at = $3,
               updated_at = $4
         WHERE id = $5 AND status = $6
        RETURNING id, employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at
    `)

	now := time.Now().UTC()
	startAt := now.Add(-time.Hour)

	// 期待した状態の行が残っていない場合、条件付き UPDATE は行を返さない。
	mock.ExpectQuery(query).
		WithArgs(string(shift.StatusActive), startAt, nil, now, "shift-1", string(shift.StatusScheduled)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.Transition(context.Background(), &shift.Shift{
		ID:            "shift-1",
		Status:        shift.StatusActive,
		ActualStartAt: &startAt,
		UpdatedAt:     now,
	}, shift.StatusScheduled)
	if !errors.Is(err, shift.ErrShiftStateChanged) {
		t.Fatalf("expected ErrShiftStateChanged, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShiftRepository_ListActiveByCompany(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewShiftRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT id, employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at
          FROM shifts
         WHERE company_id = $1 AND status IN ($2, $3)
         ORDER BY actual_start_at ASC, id ASC
    `)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "employee_id", "company_id", "planned_start_at", "planned_end_at", "actual_start_at", "actual_end_at", "status", "created_at", "updated_at"}).
		AddRow("shift-1", "employee-1", "company-1", now, now.Add(8*time.Hour), now, nil, string(shift.StatusActive), now, now).
		AddRow("shift-2", "employee-2", "company-1", now, now.Add(8*time.Hour), now, nil, string(shift.StatusPaused), now, now)

	mock.ExpectQuery(query).
		WithArgs("company-1", string(shift.StatusActive), string(shift.StatusPaused)).
		WillReturnRows(rows)

	shifts, err := repo.ListActiveByCompany(context.Background(), "company-1")
	if err != nil {
		t.Fatalf("ListActiveByCompany returned error: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0].ActualStartAt == nil || shifts[0].ActualEndAt != nil {
		t.Fatalf("expected open shift with actual start only, got %+v", shifts[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateShiftPgError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateShiftPgError(fkErr), shift.ErrEmployeeNotFound) {
		t.Fatal("expected foreign key violation to map to ErrEmployeeNotFound")
	}

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translateShiftPgError(checkErr), shift.ErrInvalidPlannedRange) {
		t.Fatal("expected check violation to map to ErrInvalidPlannedRange")
	}

	otherErr := errors.New("random")
	if translateShiftPgError(otherErr) != otherErr {
		t.Fatal("unexpected translation for generic error")
	}
}
