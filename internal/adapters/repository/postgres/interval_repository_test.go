package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/crewshift/crewshift/internal/core/shift"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestIntervalRepository_CreateWork_OpenConflict(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewIntervalRepository(mock)

	query := regexp.QuoteMeta(`
        INSERT INTO work_intervals (shift_id, start_at, end_at)
        VALUES ($1, $2, $3)
        RETURNING id, shift_id, start_at, end_at, created_at
    `)

	now := time.Now().UTC()
	mock.ExpectQuery(query).
		WithArgs("shift-1", now, nil).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: openWorkIntervalConstraint})

	_, err = repo.CreateWork(context.Background(), &shift.WorkInterval{ShiftID: "shift-1", StartAt: now})
	if !errors.Is(err, shift.ErrWorkIntervalOpen) {
		t.Fatalf("expected ErrWorkIntervalOpen, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIntervalRepository_CloseOpenWork(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewIntervalRepository(mock)

	query := regexp.QuoteMeta(`
        UPDATE work_intervals
           SET end_at = $1
         WHERE shift_id = $2 AND end_at IS NULL
    `)

	now := time.Now().UTC()

	mock.ExpectExec(query).
		WithArgs(now, "shift-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	closed, err := repo.CloseOpenWork(context.Background(), "shift-1", now)
	if err != nil {
		t.Fatalf("CloseOpenWork returned error: %v", err)
	}
	if !closed {
		t.Fatal("expected open interval to be closed")
	}

	// 開区間が無ければ何も更新されず false を返す。
	mock.ExpectExec(query).
		WithArgs(now, "shift-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	closed, err = repo.CloseOpenWork(context.Background(), "shift-1", now)
	if err != nil {
		t.Fatalf("CloseOpenWork returned error: %v", err)
	}
	if closed {
		t.Fatal("expected no-op close to report false")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIntervalRepository_HasOpenBreak(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewIntervalRepository(mock)

	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM break_intervals WHERE shift_id = $1 AND end_at IS NULL)`)

	mock.ExpectQuery(query).
		WithArgs("shift-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	open, err := repo.HasOpenBreak(context.Background(), "shift-1")
	if err != nil {
		t.Fatalf("HasOpenBreak returned error: %v", err)
	}
	if !open {
		t.Fatal("expected open break to be reported")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateIntervalPgError(t *testing.T) {
	t.Parallel()

	workErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: openWorkIntervalConstraint}
	if !errors.Is(translateIntervalPgError(workErr), shift.ErrWorkIntervalOpen) {
		t.Fatal("expected work constraint to map to ErrWorkIntervalOpen")
	}

	breakErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: openBreakIntervalConstraint}
	if !errors.Is(translateIntervalPgError(breakErr), shift.ErrBreakIntervalOpen) {
		t.Fatal("expected break constraint to map to ErrBreakIntervalOpen")
	}

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateIntervalPgError(fkErr), shift.ErrShiftNotFound) {
		t.Fatal("expected foreign key violation to map to ErrShiftNotFound")
	}

	otherErr := errors.New("random")
	if translateIntervalPgError(otherErr) != otherErr {
		t.Fatal("unexpected translation for generic error")
	}
}
