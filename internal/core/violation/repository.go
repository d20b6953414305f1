package violation

import (
	"context"
	"time"
)

// RuleRepository は違反ルール永続化の抽象です。
type RuleRepository interface {
	CreateRule(ctx context.Context, r *Rule) (*Rule, error)
	UpdateRule(ctx context.Context, r *Rule) (*Rule, error)
	FindRuleByID(ctx context.Context, id string) (*Rule, error)
	ListRulesByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*Rule, error)
}

// Repository は違反永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, v *Violation) (*Violation, error)
	ListByEmployee(ctx context.Context, filter ListFilter) ([]*Violation, error)
	ListByCompany(ctx context.Context, filter ListFilter) ([]*Violation, error)
	FindEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error)
}

// ListFilter は違反一覧取得のフィルタです。From/To は [From, To) の
// 半開区間として扱われます。
type ListFilter struct {
	EmployeeID string
	CompanyID  string
	From       *time.Time
	To         *time.Time
}
