package handler

import (
	"context"

	employeepb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/employee/v1"
	"github.com/crewshift/crewshift/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	employeepb.UnimplementedEmployeeServiceServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// CreateEmployee は従業員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *employeepb.CreateEmployeeRequest) (*employeepb.CreateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *employee.Status
	if req.GetStatus() != employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainEmployeeStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	var telegramUserID *int64
	if req.GetTelegramUserId() != nil {
		value := req.GetTelegramUserId().GetValue()
		telegramUserID = &value
	}

	created, err := h.svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		CompanyID:      req.GetCompanyId(),
		FullName:       req.GetFullName(),
		Position:       req.GetPosition(),
		Status:         statusPtr,
		TelegramUserID: telegramUserID,
		Timezone:       req.GetTimezone(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.CreateEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// GetEmployee は従業員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *employeepb.GetEmployeeRequest) (*employeepb.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// ListEmployees は従業員の一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *employeepb.ListEmployeesRequest) (*employeepb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *employee.Status
	if req.GetStatus() != employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainEmployeeStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	result, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		CompanyID: req.GetCompanyId(),
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
		Status:    statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoEmployees := make([]*employeepb.Employee, 0, len(result.Employees))
	for _, e := range result.Employees {
		protoEmployees = append(protoEmployees, toProtoEmployee(e))
	}

	return &employeepb.ListEmployeesResponse{
		Employees:     protoEmployees,
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdateEmployee は従業員情報を更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *employeepb.UpdateEmployeeRequest) (*employeepb.UpdateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var fullNamePtr *string
	if req.GetFullName() != nil {
		value := req.GetFullName().GetValue()
		fullNamePtr = &value
	}

	var positionPtr *string
	if req.GetPosition() != nil {
		value := req.GetPosition().GetValue()
		positionPtr = &value
	}

	var statusPtr *employee.Status
	if req.GetStatus() != employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainEmployeeStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	var telegramUserID *int64
	telegramUserIDSet := req.GetClearTelegramUserId()
	if req.GetTelegramUserId() != nil {
		value := req.GetTelegramUserId().GetValue()
		telegramUserID = &value
		telegramUserIDSet = true
	}

	var timezonePtr *string
	if req.GetTimezone() != nil {
		value := req.GetTimezone().GetValue()
		timezonePtr = &value
	}

	updated, err := h.svc.UpdateEmployee(ctx, employee.UpdateEmployeeInput{
		ID:                req.GetId(),
		FullName:          fullNamePtr,
		Position:          positionPtr,
		Status:            statusPtr,
		TelegramUserID:    telegramUserID,
		TelegramUserIDSet: telegramUserIDSet,
		Timezone:          timezonePtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.UpdateEmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// DeleteEmployee は従業員を削除します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *employeepb.DeleteEmployeeRequest) (*employeepb.DeleteEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{ID: req.GetId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &employeepb.DeleteEmployeeResponse{}, nil
}

func toProtoEmployee(e *employee.Employee) *employeepb.Employee {
	if e == nil {
		return nil
	}

	var telegramUserID *wrapperspb.Int64Value
	if e.TelegramUserID != nil {
		telegramUserID = wrapperspb.Int64(*e.TelegramUserID)
	}

	return &employeepb.Employee{
		Id:             e.ID,
		CompanyId:      e.CompanyID,
		FullName:       e.FullName,
		Position:       e.Position,
		Status:         toProtoEmployeeStatus(e.Status),
		TelegramUserId: telegramUserID,
		Timezone:       e.Timezone,
		CreatedAt:      timestamppb.New(e.CreatedAt),
		UpdatedAt:      timestamppb.New(e.UpdatedAt),
	}
}

func toProtoEmployeeStatus(status employee.Status) employeepb.EmployeeStatus {
	switch status {
	case employee.StatusActive:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_ACTIVE
	case employee.StatusInactive:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_INACTIVE
	case employee.StatusOnLeave:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_ON_LEAVE
	default:
		return employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
	}
}

func toDomainEmployeeStatus(status employeepb.EmployeeStatus) (employee.Status, error) {
	switch status {
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_ACTIVE:
		return employee.StatusActive, nil
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_INACTIVE:
		return employee.StatusInactive, nil
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_ON_LEAVE:
		return employee.StatusOnLeave, nil
	case employeepb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED:
		return "", nil
	default:
		return "", employee.ErrInvalidStatus
	}
}
