package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/crewshift/crewshift/internal/core/rating"
	pgdb "github.com/crewshift/crewshift/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RatingRepository は PostgreSQL を利用した評価永続化の実装です。
// rating.Repository と rating.PenaltySource の両方を満たします。
type RatingRepository struct {
	pool pgdb.Queryer
}

// NewRatingRepository は RatingRepository を生成します。
func NewRatingRepository(pool pgdb.Queryer) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Upsert は (employee_id, period_start, period_end) をキーに評価を
// 挿入または更新します。単一文のため並行実行でも最後の書き込みが勝ちます。
func (r *RatingRepository) Upsert(ctx context.Context, er *rating.EmployeeRating) (*rating.EmployeeRating, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employee_ratings (employee_id, company_id, period_start, period_end, rating, status, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (employee_id, period_start, period_end)
        DO UPDATE SET rating = EXCLUDED.rating,
                      status = EXCLUDED.status,
                      updated_at = EXCLUDED.updated_at
        RETURNING id, employee_id, company_id, period_start, period_end, rating, status, updated_at
    `,
		er.EmployeeID,
		er.CompanyID,
		er.PeriodStart,
		er.PeriodEnd,
		er.Rating,
		string(er.Status),
		er.UpdatedAt,
	)

	stored, err := scanRating(row)
	if err != nil {
		return nil, translateRatingPgError(err)
	}
	return stored, nil
}

// FindByPeriod は期間キーで評価を取得します。
func (r *RatingRepository) FindByPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (*rating.EmployeeRating, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, employee_id, company_id, period_start, period_end, rating, status, updated_at
          FROM employee_ratings
         WHERE employee_id = $1 AND period_start = $2 AND period_end = $3
         LIMIT 1
    `, employeeID, periodStart, periodEnd)

	found, err := scanRating(row)
	if err != nil {
		return nil, translateRatingPgError(err)
	}
	return found, nil
}

// PenaltiesInPeriod は [from, to) に記録された違反のペナルティ複写値を
// 返します。
func (r *RatingRepository) PenaltiesInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]float64, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT penalty
          FROM violations
         WHERE employee_id = $1 AND created_at >= $2 AND created_at < $3
    `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	penalties := make([]float64, 0)
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		penalties = append(penalties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return penalties, nil
}

// FindEmployeeRef は従業員の存在と所属会社を確認します。
func (r *RatingRepository) FindEmployeeRef(ctx context.Context, employeeID string) (*rating.EmployeeRef, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, company_id
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, employeeID)

	var ref rating.EmployeeRef
	if err := row.Scan(&ref.ID, &ref.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rating.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func scanRating(row pgx.Row) (*rating.EmployeeRating, error) {
	var (
		id          string
		employeeID  string
		companyID   string
		periodStart time.Time
		periodEnd   time.Time
		value       float64
		status      string
		updatedAt   time.Time
	)

	if err := row.Scan(
		&id,
		&employeeID,
		&companyID,
		&periodStart,
		&periodEnd,
		&value,
		&status,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rating.ErrRatingNotFound
		}
		return nil, err
	}

	return &rating.EmployeeRating{
		ID:          id,
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Rating:      value,
		Status:      rating.Status(status),
		UpdatedAt:   updatedAt,
	}, nil
}

func translateRatingPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return rating.ErrRatingNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return rating.ErrEmployeeNotFound
	}

	return err
}
