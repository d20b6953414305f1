package shift

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID           = errors.New("shift: invalid id")
	ErrInvalidEmployeeID   = errors.New("shift: invalid employee id")
	ErrInvalidCompanyID    = errors.New("shift: invalid company id")
	ErrInvalidPlannedRange = errors.New("shift: planned end must be after planned start")
	ErrInvalidBreakKind    = errors.New("shift: invalid break kind")
	ErrShiftNotFound       = errors.New("shift: not found")
	ErrEmployeeNotFound    = errors.New("shift: employee not found")
	ErrWorkIntervalOpen    = errors.New("shift: open work interval already exists")
	ErrBreakIntervalOpen   = errors.New("shift: open break interval already exists")
	ErrShiftStateChanged   = errors.New("shift: state changed concurrently")
	ErrInvalidTransition   = errors.New("shift: invalid state transition")
)

// InvalidTransitionError は不正な状態遷移の試行を表します。
// errors.Is で ErrInvalidTransition と照合できます。
type InvalidTransitionError struct {
	Current   Status
	Attempted Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("shift: invalid state transition from %s to %s", e.Current, e.Attempted)
}

// Is は ErrInvalidTransition 番兵との照合を可能にします。
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
