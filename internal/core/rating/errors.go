package rating

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("rating: invalid employee id")
	ErrInvalidPeriod     = errors.New("rating: period end must be after period start")
	ErrInvalidDelta      = errors.New("rating: delta must be within [-100, 100]")
	ErrEmployeeNotFound  = errors.New("rating: employee not found")
	ErrRatingNotFound    = errors.New("rating: not found")
)
