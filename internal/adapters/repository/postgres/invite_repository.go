package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/crewshift/crewshift/internal/core/invite"
	pgdb "github.com/crewshift/crewshift/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// InviteRepository は PostgreSQL を利用した招待永続化の実装です。
type InviteRepository struct {
	pool pgdb.Queryer
}

// NewInviteRepository は InviteRepository を生成します。
func NewInviteRepository(pool pgdb.Queryer) *InviteRepository {
	return &InviteRepository{pool: pool}
}

// Create は招待を新規作成します。
func (r *InviteRepository) Create(ctx context.Context, inv *invite.Invite) (*invite.Invite, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employee_invites (company_id, code, full_name, position, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, company_id, code, full_name, position, created_at, expires_at, used_by_employee, used_at
    `,
		inv.CompanyID,
		inv.Code,
		inv.FullName,
		inv.Position,
		inv.CreatedAt,
		nullableTime(inv.ExpiresAt),
	)

	created, err := scanInvite(row)
	if err != nil {
		return nil, translateInvitePgError(err)
	}
	return created, nil
}

// FindByCode はコードで招待を取得します。
func (r *InviteRepository) FindByCode(ctx context.Context, code string) (*invite.Invite, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, company_id, code, full_name, position, created_at, expires_at, used_by_employee, used_at
          FROM employee_invites
         WHERE code = $1
         LIMIT 1
    `, code)

	found, err := scanInvite(row)
	if err != nil {
		return nil, translateInvitePgError(err)
	}
	return found, nil
}

// MarkUsed は未使用の行だけを消費済みに更新します。更新行数 0 は
// 並行する消費に負けたことを意味します。
func (r *InviteRepository) MarkUsed(ctx context.Context, id, employeeID string, at time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE employee_invites
           SET used_by_employee = $1,
               used_at = $2
         WHERE id = $3 AND used_at IS NULL
    `, employeeID, at, id)
	if err != nil {
		return false, translateInvitePgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// LinkEmployee は (company_id, telegram_user_id) をキーに従業員を
// 作成または更新します。
func (r *InviteRepository) LinkEmployee(ctx context.Context, in invite.LinkEmployeeInput) (*invite.LinkedEmployee, error) {
	timezone := in.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (company_id, full_name, position, status, telegram_user_id, timezone, created_at, updated_at)
        VALUES ($1, $2, $3, 'active', $4, $5, $6, $6)
        ON CONFLICT (company_id, telegram_user_id)
        DO UPDATE SET full_name = EXCLUDED.full_name,
                      position = EXCLUDED.position,
                      updated_at = EXCLUDED.updated_at
        RETURNING id, company_id, full_name, position, telegram_user_id
    `,
		in.CompanyID,
		in.FullName,
		in.Position,
		in.TelegramUserID,
		timezone,
		in.Now,
	)

	var linked invite.LinkedEmployee
	if err := row.Scan(
		&linked.ID,
		&linked.CompanyID,
		&linked.FullName,
		&linked.Position,
		&linked.TelegramUserID,
	); err != nil {
		return nil, translateInvitePgError(err)
	}
	return &linked, nil
}

// DeleteExpiredUnused は cutoff より前に作成された未使用の招待を削除します。
func (r *InviteRepository) DeleteExpiredUnused(ctx context.Context, cutoff time.Time) (int64, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        DELETE FROM employee_invites
         WHERE used_at IS NULL AND created_at < $1
    `, cutoff)
	if err != nil {
		return 0, translateInvitePgError(err)
	}
	return tag.RowsAffected(), nil
}

func scanInvite(row pgx.Row) (*invite.Invite, error) {
	var (
		id             string
		companyID      string
		code           string
		fullName       string
		position       string
		createdAt      time.Time
		expiresAt      sql.NullTime
		usedByEmployee sql.NullString
		usedAt         sql.NullTime
	)

	if err := row.Scan(
		&id,
		&companyID,
		&code,
		&fullName,
		&position,
		&createdAt,
		&expiresAt,
		&usedByEmployee,
		&usedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invite.ErrInviteNotFound
		}
		return nil, err
	}

	return &invite.Invite{
		ID:             id,
		CompanyID:      companyID,
		Code:           code,
		FullName:       fullName,
		Position:       position,
		CreatedAt:      createdAt,
		ExpiresAt:      nullTimePtr(expiresAt),
		UsedByEmployee: nullStringPtr(usedByEmployee),
		UsedAt:         nullTimePtr(usedAt),
	}, nil
}

func translateInvitePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return invite.ErrInviteNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return invite.ErrInvalidCompanyID
	}

	return err
}
