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

// 「開区間は高々 1 つ」を守る部分一意インデックスの制約名。
const (
	openWorkIntervalConstraint  = "work_intervals_one_open_per_shift"
	openBreakIntervalConstraint = "break_intervals_one_open_per_shift"
)

// IntervalRepository は PostgreSQL を利用した区間永続化の実装です。
// 開区間の排他は部分一意インデックスと条件付き UPDATE で保証します。
type IntervalRepository struct {
	pool pgdb.Queryer
}

// NewIntervalRepository は IntervalRepository を生成します。
func NewIntervalRepository(pool pgdb.Queryer) *IntervalRepository {
	return &IntervalRepository{pool: pool}
}

// CreateWork は作業区間を作成します。開いている作業区間がすでに存在する
// 場合は一意制約違反となり ErrWorkIntervalOpen を返します。
func (r *IntervalRepository) CreateWork(ctx context.Context, iv *shift.WorkInterval) (*shift.WorkInterval, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO work_intervals (shift_id, start_at, end_at)
        VALUES ($1, $2, $3)
        RETURNING id, shift_id, start_at, end_at, created_at
    `,
		iv.ShiftID,
		iv.StartAt,
		nullableTime(iv.EndAt),
	)

	created, err := scanWorkInterval(row)
	if err != nil {
		return nil, translateIntervalPgError(err)
	}
	return created, nil
}

// CloseOpenWork は開いている作業区間を閉じます。
func (r *IntervalRepository) CloseOpenWork(ctx context.Context, shiftID string, at time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE work_intervals
           SET end_at = $1
         WHERE shift_id = $2 AND end_at IS NULL
    `, at, shiftID)
	if err != nil {
		return false, translateIntervalPgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// HasOpenWork は開いている作業区間の有無を返します。
func (r *IntervalRepository) HasOpenWork(ctx context.Context, shiftID string) (bool, error) {
	return r.hasOpen(ctx, "work_intervals", shiftID)
}

// ListWorkByShift はシフトの作業区間を開始時刻順に返します。
func (r *IntervalRepository) ListWorkByShift(ctx context.Context, shiftID string) ([]*shift.WorkInterval, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, shift_id, start_at, end_at, created_at
          FROM work_intervals
         WHERE shift_id = $1
         ORDER BY start_at ASC, id ASC
    `, shiftID)
	if err != nil {
		return nil, translateIntervalPgError(err)
	}
	defer rows.Close()

	intervals := make([]*shift.WorkInterval, 0)
	for rows.Next() {
		iv, err := scanWorkInterval(rows)
		if err != nil {
			return nil, translateIntervalPgError(err)
		}
		intervals = append(intervals, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, translateIntervalPgError(err)
	}

	return intervals, nil
}

// CreateBreak は休憩区間を作成します。
func (r *IntervalRepository) CreateBreak(ctx context.Context, iv *shift.BreakInterval) (*shift.BreakInterval, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO break_intervals (shift_id, kind, start_at, end_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, shift_id, kind, start_at, end_at, created_at
    `,
		iv.ShiftID,
		string(iv.Kind),
		iv.StartAt,
		nullableTime(iv.EndAt),
	)

	created, err := scanBreakInterval(row)
	if err != nil {
		return nil, translateIntervalPgError(err)
	}
	return created, nil
}

// CloseOpenBreak は開いている休憩区間を閉じます。
func (r *IntervalRepository) CloseOpenBreak(ctx context.Context, shiftID string, at time.Time) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE break_intervals
           SET end_at = $1
         WHERE shift_id = $2 AND end_at IS NULL
    `, at, shiftID)
	if err != nil {
		return false, translateIntervalPgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// HasOpenBreak は開いている休憩区間の有無を返します。
func (r *IntervalRepository) HasOpenBreak(ctx context.Context, shiftID string) (bool, error) {
	return r.hasOpen(ctx, "break_intervals", shiftID)
}

// ListBreaksByShift はシフトの休憩区間を開始時刻順に返します。
func (r *IntervalRepository) ListBreaksByShift(ctx context.Context, shiftID string) ([]*shift.BreakInterval, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, shift_id, kind, start_at, end_at, created_at
          FROM break_intervals
         WHERE shift_id = $1
         ORDER BY start_at ASC, id ASC
    `, shiftID)
	if err != nil {
		return nil, translateIntervalPgError(err)
	}
	defer rows.Close()

	intervals := make([]*shift.BreakInterval, 0)
	for rows.Next() {
		iv, err := scanBreakInterval(rows)
		if err != nil {
			return nil, translateIntervalPgError(err)
		}
		intervals = append(intervals, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, translateIntervalPgError(err)
	}

	return intervals, nil
}

func (r *IntervalRepository) hasOpen(ctx context.Context, table, shiftID string) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE shift_id = $1 AND end_at IS NULL)`, shiftID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, translateIntervalPgError(err)
	}
	return exists, nil
}

func scanWorkInterval(row pgx.Row) (*shift.WorkInterval, error) {
	var (
		id        string
		shiftID   string
		startAt   time.Time
		endAt     sql.NullTime
		createdAt time.Time
	)

	if err := row.Scan(&id, &shiftID, &startAt, &endAt, &createdAt); err != nil {
		return nil, err
	}

	return &shift.WorkInterval{
		ID:        id,
		ShiftID:   shiftID,
		StartAt:   startAt,
		EndAt:     nullTimePtr(endAt),
		CreatedAt: createdAt,
	}, nil
}

func scanBreakInterval(row pgx.Row) (*shift.BreakInterval, error) {
	var (
		id        string
		shiftID   string
		kind      string
		startAt   time.Time
		endAt     sql.NullTime
		createdAt time.Time
	)

	if err := row.Scan(&id, &shiftID, &kind, &startAt, &endAt, &createdAt); err != nil {
		return nil, err
	}

	return &shift.BreakInterval{
		ID:        id,
		ShiftID:   shiftID,
		Kind:      shift.BreakKind(kind),
		StartAt:   startAt,
		EndAt:     nullTimePtr(endAt),
		CreatedAt: createdAt,
	}, nil
}

func translateIntervalPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			switch pgErr.ConstraintName {
			case openWorkIntervalConstraint:
				return shift.ErrWorkIntervalOpen
			case openBreakIntervalConstraint:
				return shift.ErrBreakIntervalOpen
			}
		case foreignKeyViolationCode:
			return shift.ErrShiftNotFound
		}
	}

	return err
}
