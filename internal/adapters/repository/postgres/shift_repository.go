package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/crewshift/crewshift/internal/core/shift"
	pgdb "github.com/crewshift/crewshift/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ShiftRepository は PostgreSQL を利用したシフト永続化の実装です。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// Create はシフトを新規作成します。
func (r *ShiftRepository) Create(ctx context.Context, s *shift.Shift) (*shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shifts (employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at
    `,
		s.EmployeeID,
		s.CompanyID,
		s.PlannedStartAt,
		s.PlannedEndAt,
		nullableTime(s.ActualStartAt),
		nullableTime(s.ActualEndAt),
		string(s.Status),
		s.CreatedAt,
		s.UpdatedAt,
	)

	created, err := scanShift(row)
	if err != nil {
		return nil, translateShiftPgError(err)
	}
	return created, nil
}

// FindByID は ID でシフトを取得します。
func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at
          FROM shifts
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanShift(row)
	if err != nil {
		return nil, translateShiftPgError(err)
	}
	return found, nil
}

// Transition は status が expected のままである行だけを更新します。
// 行数 0 は並行遷移に負けたことを意味し ErrShiftStateChanged を返します。
func (r *ShiftRepository) Transition(ctx context.Context, s *shift.Shift, expected shift.Status) (*shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE shifts
           SET status = $1,
               actual_start_at = $2,
               actual_end_at = $3,
               updated_at = $4
         WHERE id = $5 AND status = $6
        RETURNING id, employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at
    `,
		string(s.Status),
		nullableTime(s.ActualStartAt),
		nullableTime(s.ActualEndAt),
		s.UpdatedAt,
		s.ID,
		string(expected),
	)

	updated, err := scanShift(row)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			// 行は存在するが status が変わっている場合もここに来る。
			// どちらも呼び出し側には「期待した状態ではなかった」として返す。
			return nil, shift.ErrShiftStateChanged
		}
		return nil, translateShiftPgError(err)
	}
	return updated, nil
}

// ListActiveByCompany は会社の active / paused なシフトを返します。
func (r *ShiftRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]*shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, company_id, planned_start_at, planned_end_at, actual_start_at, actual_end_at, status, created_at, updated_at
          FROM shifts
         WHERE company_id = $1 AND status IN ($2, $3)
         ORDER BY actual_start_at ASC, id ASC
    `, companyID, string(shift.StatusActive), string(shift.StatusPaused))
	if err != nil {
		return nil, translateShiftPgError(err)
	}
	defer rows.Close()

	shifts := make([]*shift.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, translateShiftPgError(err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, translateShiftPgError(err)
	}

	return shifts, nil
}

// FindEmployeeRef は従業員の存在と所属会社を確認します。
func (r *ShiftRepository) FindEmployeeRef(ctx context.Context, employeeID string) (*shift.EmployeeRef, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, company_id
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, employeeID)

	var ref shift.EmployeeRef
	if err := row.Scan(&ref.ID, &ref.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func scanShift(row pgx.Row) (*shift.Shift, error) {
	var (
		id             string
		employeeID     string
		companyID      string
		plannedStartAt time.Time
		plannedEndAt   time.Time
		actualStartAt  sql.NullTime
		actualEndAt    sql.NullTime
		status         string
		createdAt      time.Time
		updatedAt      time.Time
	)

	if err := row.Scan(
		&id,
		&employeeID,
		&companyID,
		&plannedStartAt,
		&plannedEndAt,
		&actualStartAt,
		&actualEndAt,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, err
	}

	return &shift.Shift{
		ID:             id,
		EmployeeID:     employeeID,
		CompanyID:      companyID,
		PlannedStartAt: plannedStartAt,
		PlannedEndAt:   plannedEndAt,
		ActualStartAt:  nullTimePtr(actualStartAt),
		ActualEndAt:    nullTimePtr(actualEndAt),
		Status:         shift.Status(status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func translateShiftPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.ErrShiftNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return shift.ErrEmployeeNotFound
		case checkViolationCode:
			return shift.ErrInvalidPlannedRange
		}
	}

	return err
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}
