package violation

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// RatingRecalculator は違反記録後に従業員の当期評価を再計算します。
// 再計算はベストエフォートであり、失敗しても違反の記録は巻き戻しません。
type RatingRecalculator interface {
	RecalculateCurrentPeriod(ctx context.Context, employeeID string, at time.Time) error
}

// CacheInvalidator は会社単位の統計キャッシュ無効化を通知します。
type CacheInvalidator interface {
	Invalidate(companyID string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(string) {}

var ruleCodePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Service は違反の記録とルール管理のユースケースをまとめます。
type Service struct {
	rules      RuleRepository
	violations Repository
	rating     RatingRecalculator
	clock      Clock
	tx         TransactionManager
	cache      CacheInvalidator
	logger     *slog.Logger
}

// UseCase は違反ユースケースの公開インターフェースです。
type UseCase interface {
	RecordViolation(ctx context.Context, in RecordViolationInput) (*Violation, error)
	ListByEmployee(ctx context.Context, in ListByEmployeeInput) ([]*Violation, error)
	ListByCompany(ctx context.Context, in ListByCompanyInput) ([]*Violation, error)
	CreateRule(ctx context.Context, in CreateRuleInput) (*Rule, error)
	UpdateRule(ctx context.Context, in UpdateRuleInput) (*Rule, error)
	DeactivateRule(ctx context.Context, in DeactivateRuleInput) (*Rule, error)
	ListRules(ctx context.Context, in ListRulesInput) ([]*Rule, error)
}

// NewService は Service を生成します。
func NewService(rules RuleRepository, violations Repository, rating RatingRecalculator, clock Clock, tx TransactionManager, cache CacheInvalidator, logger *slog.Logger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if cache == nil {
		cache = noopInvalidator{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rules: rules, violations: violations, rating: rating, clock: clock, tx: tx, cache: cache, logger: logger}
}

// RecordViolationInput は違反記録時の入力です。
type RecordViolationInput struct {
	EmployeeID string
	CompanyID  string
	RuleID     string
	Source     Source
	Reason     *string
	CreatedBy  *string
}

// ListByEmployeeInput は従業員別一覧取得の入力です。
type ListByEmployeeInput struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

// ListByCompanyInput は会社別一覧取得の入力です。
type ListByCompanyInput struct {
	CompanyID string
	From      *time.Time
	To        *time.Time
}

// CreateRuleInput はルール作成時の入力です。
type CreateRuleInput struct {
	CompanyID      string
	Code           string
	Name           string
	PenaltyPercent float64
	AutoDetectable bool
}

// UpdateRuleInput はルール更新時の入力です。ペナルティの変更は
// 既存の違反に影響しません。
type UpdateRuleInput struct {
	ID             string
	Name           *string
	PenaltyPercent *float64
	AutoDetectable *bool
	IsActive       *bool
}

// DeactivateRuleInput はルール無効化の入力です。
type DeactivateRuleInput struct {
	ID string
}

// ListRulesInput はルール一覧取得の入力です。
type ListRulesInput struct {
	CompanyID  string
	ActiveOnly bool
}

// RecordViolation は違反を記録します。ルールのペナルティは記録時点の値を
// 複写し、以後のルール編集の影響を受けません。評価の再計算と
// キャッシュ無効化はベストエフォートで行います。
func (s *Service) RecordViolation(ctx context.Context, in RecordViolationInput) (*Violation, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	ruleID := strings.TrimSpace(in.RuleID)
	if ruleID == "" {
		return nil, ErrInvalidRuleID
	}
	if !isValidSource(in.Source) {
		return nil, ErrInvalidSource
	}

	var created *Violation
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.violations.FindEmployeeRef(txCtx, employeeID)
		if err != nil {
			return err
		}

		rule, err := s.rules.FindRuleByID(txCtx, ruleID)
		if err != nil {
			return err
		}

		if emp.CompanyID != companyID || rule.CompanyID != companyID {
			return ErrCompanyMismatch
		}

		// 無効化済みルールは自動検出の記録のみ拒否する。手動記録は
		// 運用者の判断を優先し、ルールの廃止後も受け付ける。
		if !rule.IsActive && in.Source == SourceAuto {
			return ErrRuleInactive
		}

		result, err := s.violations.Create(txCtx, &Violation{
			EmployeeID: emp.ID,
			CompanyID:  companyID,
			RuleID:     rule.ID,
			Source:     in.Source,
			Penalty:    rule.PenaltyPercent,
			Reason:     cloneString(in.Reason),
			CreatedBy:  cloneString(in.CreatedBy),
			CreatedAt:  s.clock.Now(),
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	// 違反自体は確定済み。以降の派生更新の失敗は記録には波及させない。
	if s.rating != nil {
		if err := s.rating.RecalculateCurrentPeriod(ctx, created.EmployeeID, created.CreatedAt); err != nil {
			s.logger.Warn("rating recalculation after violation failed",
				"employee_id", created.EmployeeID,
				"violation_id", created.ID,
				"error", err)
		}
	}
	s.cache.Invalidate(created.CompanyID)

	return created, nil
}

// ListByEmployee は従業員の違反一覧を返します。
func (s *Service) ListByEmployee(ctx context.Context, in ListByEmployeeInput) ([]*Violation, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	if err := validateRange(in.From, in.To); err != nil {
		return nil, err
	}

	return s.list(ctx, func(txCtx context.Context) ([]*Violation, error) {
		return s.violations.ListByEmployee(txCtx, ListFilter{EmployeeID: employeeID, From: in.From, To: in.To})
	})
}

// ListByCompany は会社の違反一覧を返します。
func (s *Service) ListByCompany(ctx context.Context, in ListByCompanyInput) ([]*Violation, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	if err := validateRange(in.From, in.To); err != nil {
		return nil, err
	}

	return s.list(ctx, func(txCtx context.Context) ([]*Violation, error) {
		return s.violations.ListByCompany(txCtx, ListFilter{CompanyID: companyID, From: in.From, To: in.To})
	})
}

// CreateRule は違反ルールを作成します。
func (s *Service) CreateRule(ctx context.Context, in CreateRuleInput) (*Rule, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	code, err := normalizeRuleCode(in.Code)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidRuleName
	}
	if in.PenaltyPercent < 0 {
		return nil, ErrInvalidPenalty
	}

	var created *Rule
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.rules.CreateRule(txCtx, &Rule{
			CompanyID:      companyID,
			Code:           code,
			Name:           name,
			PenaltyPercent: in.PenaltyPercent,
			AutoDetectable: in.AutoDetectable,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateRule はルールを更新します。
func (s *Service) UpdateRule(ctx context.Context, in UpdateRuleInput) (*Rule, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidRuleID
	}

	var updated *Rule
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.rules.FindRuleByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrInvalidRuleName
			}
			existing.Name = name
		}
		if in.PenaltyPercent != nil {
			if *in.PenaltyPercent < 0 {
				return ErrInvalidPenalty
			}
			existing.PenaltyPercent = *in.PenaltyPercent
		}
		if in.AutoDetectable != nil {
			existing.AutoDetectable = *in.AutoDetectable
		}
		if in.IsActive != nil {
			existing.IsActive = *in.IsActive
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.rules.UpdateRule(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeactivateRule はルールを無効化します。違反から参照されるため削除はしません。
func (s *Service) DeactivateRule(ctx context.Context, in DeactivateRuleInput) (*Rule, error) {
	inactive := false
	return s.UpdateRule(ctx, UpdateRuleInput{ID: in.ID, IsActive: &inactive})
}

// ListRules は会社のルール一覧を返します。
func (s *Service) ListRules(ctx context.Context, in ListRulesInput) ([]*Rule, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	var result []*Rule
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		rules, err := s.rules.ListRulesByCompany(txCtx, companyID, in.ActiveOnly)
		if err != nil {
			return err
		}
		result = rules
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) list(ctx context.Context, fetch func(context.Context) ([]*Violation, error)) ([]*Violation, error) {
	var result []*Violation
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		violations, err := fetch(txCtx)
		if err != nil {
			return err
		}
		result = violations
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func validateRange(from, to *time.Time) error {
	if from != nil && to != nil && !to.After(*from) {
		return ErrInvalidDateRange
	}
	return nil
}

func normalizeRuleCode(raw string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" || !ruleCodePattern.MatchString(trimmed) {
		return "", ErrInvalidRuleCode
	}
	return trimmed, nil
}

func isValidSource(source Source) bool {
	switch source {
	case SourceManual, SourceAuto:
		return true
	default:
		return false
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}
