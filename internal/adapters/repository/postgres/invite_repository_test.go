package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/crewshift/crewshift/internal/core/invite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestInviteRepository_MarkUsed(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewInviteRepository(mock)

	query := regexp.QuoteMeta(`
        UPDATE employee_invites
           SET used_by_employee = $1,
               used_at = $2
         WHERE id = $3 AND used_at IS NULL
    `)

	now := time.Now().UTC()

	mock.ExpectExec(query).
		WithArgs("employee-1", now, "invite-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	marked, err := repo.MarkUsed(context.Background(), "invite-1", "employee-1", now)
	if err != nil {
		t.Fatalf("MarkUsed returned error: %v", err)
	}
	if !marked {
		t.Fatal("expected unused invite to be marked")
	}

	// すでに消費済みの行は条件に一致せず、更新行数 0 で負けを伝える。
	mock.ExpectExec(query).
		WithArgs("employee-2", now, "invite-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	marked, err = repo.MarkUsed(context.Background(), "invite-1", "employee-2", now)
	if err != nil {
		t.Fatalf("MarkUsed returned error: %v", err)
	}
	if marked {
		t.Fatal("expected second consumption to lose")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInviteRepository_FindByCode_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewInviteRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT id, company_id, code, full_name, position, created_at, expires_at, used_by_employee, used_at
          FROM employee_invites
         WHERE code = $1
         LIMIT 1
    `)

	mock.ExpectQuery(query).
		WithArgs("code-missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByCode(context.Background(), "code-missing")
	if !errors.Is(err, invite.ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInviteRepository_DeleteExpiredUnused(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewInviteRepository(mock)

	query := regexp.QuoteMeta(`
        DELETE FROM employee_invites
         WHERE used_at IS NULL AND created_at < $1
    `)

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	mock.ExpectExec(query).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	removed, err := repo.DeleteExpiredUnused(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("DeleteExpiredUnused returned error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 rows removed, got %d", removed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateInvitePgError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateInvitePgError(fkErr), invite.ErrInvalidCompanyID) {
		t.Fatal("expected foreign key violation to map to ErrInvalidCompanyID")
	}

	if !errors.Is(translateInvitePgError(pgx.ErrNoRows), invite.ErrInviteNotFound) {
		t.Fatal("expected no rows to map to ErrInviteNotFound")
	}

	otherErr := errors.New("random")
	if translateInvitePgError(otherErr) != otherErr {
		t.Fatal("unexpected translation for generic error")
	}
}
