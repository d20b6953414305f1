package violation

import "errors"

var (
	ErrInvalidID             = errors.New("violation: invalid id")
	ErrInvalidEmployeeID     = errors.New("violation: invalid employee id")
	ErrInvalidCompanyID      = errors.New("violation: invalid company id")
	ErrInvalidRuleID         = errors.New("violation: invalid rule id")
	ErrInvalidRuleCode       = errors.New("violation: invalid rule code")
	ErrInvalidRuleName       = errors.New("violation: invalid rule name")
	ErrInvalidPenalty        = errors.New("violation: penalty must not be negative")
	ErrInvalidSource         = errors.New("violation: invalid source")
	ErrInvalidDateRange      = errors.New("violation: from must be before to")
	ErrRuleNotFound          = errors.New("violation: rule not found")
	ErrEmployeeNotFound      = errors.New("violation: employee not found")
	ErrViolationNotFound     = errors.New("violation: not found")
	ErrRuleInactive          = errors.New("violation: rule is inactive")
	ErrCompanyMismatch       = errors.New("violation: entity belongs to another company")
	ErrRuleCodeAlreadyExists = errors.New("violation: rule code already exists")
)
