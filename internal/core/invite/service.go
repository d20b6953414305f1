package invite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRetention は未使用招待を掃除するまでの既定の保持期間です。
const DefaultRetention = 30 * 24 * time.Hour

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

// CodeGenerator は招待コードを生成します。
type CodeGenerator func() string

func defaultCodeGenerator() string {
	return uuid.NewString()
}

// Service は招待のライフサイクル(発行、消費、掃除)を管理します。
type Service struct {
	invites   Repository
	clock     Clock
	tx        TransactionManager
	genCode   CodeGenerator
	retention time.Duration
}

// UseCase は招待ユースケースの公開インターフェースです。
type UseCase interface {
	Issue(ctx context.Context, in IssueInput) (*Invite, error)
	Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error)
	GetByCode(ctx context.Context, in GetByCodeInput) (*Invite, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

// NewService は Service を生成します。retention が 0 以下の場合は
// DefaultRetention を使います。
func NewService(invites Repository, clock Clock, tx TransactionManager, genCode CodeGenerator, retention time.Duration) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if genCode == nil {
		genCode = defaultCodeGenerator
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Service{invites: invites, clock: clock, tx: tx, genCode: genCode, retention: retention}
}

// IssueInput は招待発行時の入力です。
type IssueInput struct {
	CompanyID string
	FullName  string
	Position  string
	ExpiresAt *time.Time
}

// RedeemInput は招待消費時の入力です。TelegramUserID が消費者の外部 ID です。
type RedeemInput struct {
	Code           string
	TelegramUserID int64
	Timezone       string
}

// RedeemResult は消費された招待と、リンクされた従業員です。
type RedeemResult struct {
	Invite   *Invite
	Employee *LinkedEmployee
}

// GetByCodeInput は招待取得時の入力です。
type GetByCodeInput struct {
	Code string
}

// Issue は暗号論的に無作為なコードを持つ招待を発行します。
func (s *Service) Issue(ctx context.Context, in IssueInput) (*Invite, error) {
	companyID := strings.TrimSpace(in.CompanyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	now := s.clock.Now()
	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return nil, ErrInvalidExpiry
	}

	var created *Invite
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.invites.Create(txCtx, &Invite{
			CompanyID: companyID,
			Code:      s.genCode(),
			FullName:  strings.TrimSpace(in.FullName),
			Position:  strings.TrimSpace(in.Position),
			CreatedAt: now,
			ExpiresAt: cloneTime(in.ExpiresAt),
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

// Redeem は招待を消費し、従業員レコードを作成またはリンクします。
// used_at が未設定の行だけを更新する条件付き UPDATE により、同一コードの
// 並行消費はちょうど 1 回だけ成功します。
func (s *Service) Redeem(ctx context.Context, in RedeemInput) (*RedeemResult, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, ErrInvalidCode
	}
	if in.TelegramUserID <= 0 {
		return nil, ErrInvalidTelegramUserID
	}

	var result *RedeemResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		inv, err := s.invites.FindByCode(txCtx, code)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if inv.IsUsed() {
			return ErrInviteAlreadyUsed
		}
		if inv.IsExpired(now) {
			return ErrInviteExpired
		}

		emp, err := s.invites.LinkEmployee(txCtx, LinkEmployeeInput{
			CompanyID:      inv.CompanyID,
			FullName:       inv.FullName,
			Position:       inv.Position,
			TelegramUserID: in.TelegramUserID,
			Timezone:       strings.TrimSpace(in.Timezone),
			Now:            now,
		})
		if err != nil {
			return err
		}

		marked, err := s.invites.MarkUsed(txCtx, inv.ID, emp.ID, now)
		if err != nil {
			return err
		}
		if !marked {
			// 先行する消費に負けた。
			return ErrInviteAlreadyUsed
		}

		inv.UsedByEmployee = &emp.ID
		inv.UsedAt = &now
		result = &RedeemResult{Invite: inv, Employee: emp}
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// GetByCode はコードで招待を取得します。
func (s *Service) GetByCode(ctx context.Context, in GetByCodeInput) (*Invite, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, ErrInvalidCode
	}

	var result *Invite
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.invites.FindByCode(txCtx, code)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// CleanupExpired は保持期間を過ぎた未使用の招待を削除し、削除件数を
// 返します。消費経路とは独立した保守操作です。
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.retention)

	var removed int64
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		count, err := s.invites.DeleteExpiredUnused(txCtx, cutoff)
		if err != nil {
			return err
		}
		removed = count
		return nil
	}); err != nil {
		return 0, err
	}

	return removed, nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := t.UTC()
	return &clone
}
