package handler

import (
	"errors"

	"github.com/crewshift/crewshift/internal/core/company"
	"github.com/crewshift/crewshift/internal/core/employee"
	"github.com/crewshift/crewshift/internal/core/invite"
	"github.com/crewshift/crewshift/internal/core/rating"
	"github.com/crewshift/crewshift/internal/core/shift"
	"github.com/crewshift/crewshift/internal/core/violation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, company.ErrInvalidName),
		errors.Is(err, company.ErrInvalidCode),
		errors.Is(err, company.ErrInvalidStatus),
		errors.Is(err, company.ErrInvalidID),
		errors.Is(err, company.ErrInvalidPageSize),
		errors.Is(err, company.ErrInvalidPageToken),
		errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidCompanyID),
		errors.Is(err, employee.ErrInvalidFullName),
		errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidTimezone),
		errors.Is(err, employee.ErrInvalidTelegramUserID),
		errors.Is(err, employee.ErrInvalidPageSize),
		errors.Is(err, employee.ErrInvalidPageToken),
		errors.Is(err, shift.ErrInvalidID),
		errors.Is(err, shift.ErrInvalidEmployeeID),
		errors.Is(err, shift.ErrInvalidCompanyID),
		errors.Is(err, shift.ErrInvalidPlannedRange),
		errors.Is(err, shift.ErrInvalidBreakKind),
		errors.Is(err, violation.ErrInvalidID),
		errors.Is(err, violation.ErrInvalidEmployeeID),
		errors.Is(err, violation.ErrInvalidCompanyID),
		errors.Is(err, violation.ErrInvalidRuleID),
		errors.Is(err, violation.ErrInvalidRuleCode),
		errors.Is(err, violation.ErrInvalidRuleName),
		errors.Is(err, violation.ErrInvalidPenalty),
		errors.Is(err, violation.ErrInvalidSource),
		errors.Is(err, violation.ErrInvalidDateRange),
		errors.Is(err, rating.ErrInvalidEmployeeID),
		errors.Is(err, rating.ErrInvalidPeriod),
		errors.Is(err, rating.ErrInvalidDelta),
		errors.Is(err, invite.ErrInvalidCompanyID),
		errors.Is(err, invite.ErrInvalidCode),
		errors.Is(err, invite.ErrInvalidExpiry),
		errors.Is(err, invite.ErrInvalidTelegramUserID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, company.ErrCodeAlreadyExists),
		errors.Is(err, employee.ErrTelegramUserLinked),
		errors.Is(err, violation.ErrRuleCodeAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrCompanyNotFound),
		errors.Is(err, shift.ErrShiftNotFound),
		errors.Is(err, shift.ErrEmployeeNotFound),
		errors.Is(err, violation.ErrRuleNotFound),
		errors.Is(err, violation.ErrEmployeeNotFound),
		errors.Is(err, violation.ErrViolationNotFound),
		errors.Is(err, rating.ErrEmployeeNotFound),
		errors.Is(err, rating.ErrRatingNotFound),
		errors.Is(err, invite.ErrInviteNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, shift.ErrInvalidTransition),
		errors.Is(err, shift.ErrWorkIntervalOpen),
		errors.Is(err, shift.ErrBreakIntervalOpen),
		errors.Is(err, violation.ErrRuleInactive),
		errors.Is(err, invite.ErrInviteExpired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, shift.ErrShiftStateChanged),
		errors.Is(err, invite.ErrInviteAlreadyUsed):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, violation.ErrCompanyMismatch):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
