package rating

import "time"

// Status は評価値の由来を表します。
type Status string

const (
	// StatusComputed は違反から導出された評価です。
	StatusComputed Status = "computed"
	// StatusManuallyAdjusted は手動補正が適用された評価です。
	// 次回の自動再計算で computed に上書きされます。
	StatusManuallyAdjusted Status = "manually_adjusted"
)

// EmployeeRating は従業員の期間別評価です。期間は [PeriodStart, PeriodEnd) の
// 半開区間で、(従業員, 期間) ごとに 1 行だけ保持されます。
type EmployeeRating struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Rating      float64
	Status      Status
	UpdatedAt   time.Time
}

// EmployeeRef は評価が参照する従業員の最小情報です。
type EmployeeRef struct {
	ID        string
	CompanyID string
}
