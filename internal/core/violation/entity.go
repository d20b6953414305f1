package violation

import "time"

// Source は違反の記録元を表します。
type Source string

const (
	SourceManual Source = "manual"
	SourceAuto   Source = "auto"
)

// Rule は会社ごとの違反ルール設定です。違反から参照されるため
// 物理削除はせず is_active で無効化します。
type Rule struct {
	ID             string
	CompanyID      string
	Code           string
	Name           string
	PenaltyPercent float64
	AutoDetectable bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Violation は記録済みの違反です。作成後は不変で、Penalty には
// 作成時点のルールのペナルティが複写されます。
type Violation struct {
	ID         string
	EmployeeID string
	CompanyID  string
	RuleID     string
	Source     Source
	Penalty    float64
	Reason     *string
	CreatedBy  *string
	CreatedAt  time.Time
}

// EmployeeRef は違反が参照する従業員の最小情報です。
type EmployeeRef struct {
	ID        string
	CompanyID string
}
