package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/crewshift/crewshift/internal/core/violation"
	pgdb "github.com/crewshift/crewshift/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ViolationRepository は PostgreSQL を利用した違反・ルール永続化の実装です。
// violation.RuleRepository と violation.Repository の両方を満たします。
type ViolationRepository struct {
	pool pgdb.Queryer
}

// NewViolationRepository は ViolationRepository を生成します。
func NewViolationRepository(pool pgdb.Queryer) *ViolationRepository {
	return &ViolationRepository{pool: pool}
}

// CreateRule は違反ルールを新規作成します。
func (r *ViolationRepository) CreateRule(ctx context.Context, rule *violation.Rule) (*violation.Rule, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO violation_rules (company_id, code, name, penalty_percent, auto_detectable, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, company_id, code, name, penalty_percent, auto_detectable, is_active, created_at, updated_at
    `,
		rule.CompanyID,
		rule.Code,
		rule.Name,
		rule.PenaltyPercent,
		rule.AutoDetectable,
		rule.IsActive,
		rule.CreatedAt,
		rule.UpdatedAt,
	)

	created, err := scanRule(row)
	if err != nil {
		return nil, translateViolationPgError(err)
	}
	return created, nil
}

// UpdateRule は違反ルールを更新します。既存の違反のペナルティは
// 記録時の複写値のままで影響を受けません。
func (r *ViolationRepository) UpdateRule(ctx context.Context, rule *violation.Rule) (*violation.Rule, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE violation_rules
           SET name = $1,
               penalty_percent = $2,
               auto_detectable = $3,
               is_active = $4,
               updated_at = $5
         WHERE id = $6
        RETURNING id, company_id, code, name, penalty_percent, auto_detectable, is_active, created_at, updated_at
    `,
		rule.Name,
		rule.PenaltyPercent,
		rule.AutoDetectable,
		rule.IsActive,
		rule.UpdatedAt,
		rule.ID,
	)

	updated, err := scanRule(row)
	if err != nil {
		return nil, translateViolationPgError(err)
	}
	return updated, nil
}

// FindRuleByID は ID で違反ルールを取得します。
func (r *ViolationRepository) FindRuleByID(ctx context.Context, id string) (*violation.Rule, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, company_id, code, name, penalty_percent, auto_detectable, is_active, created_at, updated_at
          FROM violation_rules
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanRule(row)
	if err != nil {
		return nil, translateViolationPgError(err)
	}
	return found, nil
}

// ListRulesByCompany は会社のルール一覧を返します。
func (r *ViolationRepository) ListRulesByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*violation.Rule, error) {
	query := `
        SELECT id, company_id, code, name, penalty_percent, auto_detectable, is_active, created_at, updated_at
          FROM violation_rules
         WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += `
         ORDER BY code ASC`

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, companyID)
	if err != nil {
		return nil, translateViolationPgError(err)
	}
	defer rows.Close()

	rules := make([]*violation.Rule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, translateViolationPgError(err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, translateViolationPgError(err)
	}

	return rules, nil
}

// Create は違反を記録します。
func (r *ViolationRepository) Create(ctx context.Context, v *violation.Violation) (*violation.Violation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO violations (employee_id, company_id, rule_id, source, penalty, reason, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, employee_id, company_id, rule_id, source, penalty, reason, created_by, created_at
    `,
		v.EmployeeID,
		v.CompanyID,
		v.RuleID,
		string(v.Source),
		v.Penalty,
		nullableString(v.Reason),
		nullableString(v.CreatedBy),
		v.CreatedAt,
	)

	created, err := scanViolation(row)
	if err != nil {
		return nil, translateViolationPgError(err)
	}
	return created, nil
}

// ListByEmployee は従業員の違反一覧を返します。
func (r *ViolationRepository) ListByEmployee(ctx context.Context, filter violation.ListFilter) ([]*violation.Violation, error) {
	return r.list(ctx, "employee_id", filter.EmployeeID, filter)
}

// ListByCompany は会社の違反一覧を返します。
func (r *ViolationRepository) ListByCompany(ctx context.Context, filter violation.ListFilter) ([]*violation.Violation, error) {
	return r.list(ctx, "company_id", filter.CompanyID, filter)
}

// FindEmployeeRef は従業員の存在と所属会社を確認します。
func (r *ViolationRepository) FindEmployeeRef(ctx context.Context, employeeID string) (*violation.EmployeeRef, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, company_id
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, employeeID)

	var ref violation.EmployeeRef
	if err := row.Scan(&ref.ID, &ref.CompanyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, violation.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *ViolationRepository) list(ctx context.Context, keyColumn, keyValue string, filter violation.ListFilter) ([]*violation.Violation, error) {
	args := make([]any, 0, 3)
	conditions := make([]string, 0, 3)

	conditions = append(conditions, keyColumn+" = $"+strconv.Itoa(len(args)+1))
	args = append(args, keyValue)

	if filter.From != nil {
		conditions = append(conditions, "created_at >= $"+strconv.Itoa(len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "created_at < $"+strconv.Itoa(len(args)+1))
		args = append(args, *filter.To)
	}

	query := `
        SELECT id, employee_id, company_id, rule_id, source, penalty, reason, created_by, created_at
          FROM violations
         WHERE ` + strings.Join(conditions, " AND ") + `
         ORDER BY created_at DESC, id DESC
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateViolationPgError(err)
	}
	defer rows.Close()

	violations := make([]*violation.Violation, 0)
	for rows.Next() {
		v, err := scanViolation(rows)
		if err != nil {
			return nil, translateViolationPgError(err)
		}
		violations = append(violations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, translateViolationPgError(err)
	}

	return violations, nil
}

func scanRule(row pgx.Row) (*violation.Rule, error) {
	var (
		id             string
		companyID      string
		code           string
		name           string
		penaltyPercent float64
		autoDetectable bool
		isActive       bool
		createdAt      time.Time
		updatedAt      time.Time
	)

	if err := row.Scan(
		&id,
		&companyID,
		&code,
		&name,
		&penaltyPercent,
		&autoDetectable,
		&isActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, violation.ErrRuleNotFound
		}
		return nil, err
	}

	return &violation.Rule{
		ID:             id,
		CompanyID:      companyID,
		Code:           code,
		Name:           name,
		PenaltyPercent: penaltyPercent,
		AutoDetectable: autoDetectable,
		IsActive:       isActive,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func scanViolation(row pgx.Row) (*violation.Violation, error) {
	var (
		id         string
		employeeID string
		companyID  string
		ruleID     string
		source     string
		penalty    float64
		reason     sql.NullString
		createdBy  sql.NullString
		createdAt  time.Time
	)

	if err := row.Scan(
		&id,
		&employeeID,
		&companyID,
		&ruleID,
		&source,
		&penalty,
		&reason,
		&createdBy,
		&createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, violation.ErrViolationNotFound
		}
		return nil, err
	}

	return &violation.Violation{
		ID:         id,
		EmployeeID: employeeID,
		CompanyID:  companyID,
		RuleID:     ruleID,
		Source:     violation.Source(source),
		Penalty:    penalty,
		Reason:     nullStringPtr(reason),
		CreatedBy:  nullStringPtr(createdBy),
		CreatedAt:  createdAt,
	}, nil
}

func translateViolationPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return violation.ErrRuleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return violation.ErrRuleCodeAlreadyExists
		case checkViolationCode:
			return violation.ErrInvalidPenalty
		case foreignKeyViolationCode:
			switch pgErr.ConstraintName {
			case "violations_employee_id_fkey":
				return violation.ErrEmployeeNotFound
			case "violations_rule_id_fkey":
				return violation.ErrRuleNotFound
			default:
				return err
			}
		}
	}

	return err
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
