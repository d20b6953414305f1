package invite

import (
	"context"
	"time"
)

// Repository は招待永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, inv *Invite) (*Invite, error)
	FindByCode(ctx context.Context, code string) (*Invite, error)
	// MarkUsed は used_at が未設定の行だけを消費済みに更新し、
	// 更新できたかどうかを返します。同一コードへの並行消費は
	// ちょうど 1 回だけ成功します。
	MarkUsed(ctx context.Context, id, employeeID string, at time.Time) (bool, error)
	// LinkEmployee は (会社, telegram_user_id) をキーに従業員を
	// 作成または更新します。
	LinkEmployee(ctx context.Context, in LinkEmployeeInput) (*LinkedEmployee, error)
	// DeleteExpiredUnused は cutoff より前に作成された未使用かつ期限切れの
	// 招待を削除し、削除件数を返します。
	DeleteExpiredUnused(ctx context.Context, cutoff time.Time) (int64, error)
}

// LinkEmployeeInput は招待消費時の従業員リンク入力です。
type LinkEmployeeInput struct {
	CompanyID      string
	FullName       string
	Position       string
	TelegramUserID int64
	Timezone       string
	Now            time.Time
}
