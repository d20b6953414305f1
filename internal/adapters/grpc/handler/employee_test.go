package handler

import (
	"context"
	"testing"
	"time"

	employeepb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/employee/v1"
	"github.com/crewshift/crewshift/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubEmployeeUseCase struct {
	createInput employee.CreateEmployeeInput
	createErr   error
	createOut   *employee.Employee

	getInput employee.GetEmployeeInput
	getErr   error
	getOut   *employee.Employee

	listInput employee.ListEmployeesInput
	listErr   error
	listOut   *employee.ListEmployeesResult

	updateInput employee.UpdateEmployeeInput
	updateErr   error
	updateOut   *employee.Employee

	deleteInput employee.DeleteEmployeeInput
	deleteErr   error
}

func (s *stubEmployeeUseCase) CreateEmployee(ctx context.Context, in employee.CreateEmployeeInput) (*employee.Employee, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubEmployeeUseCase) GetEmployee(ctx context.Context, in employee.GetEmployeeInput) (*employee.Employee, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubEmployeeUseCase) ListEmployees(ctx context.Context, in employee.ListEmployeesInput) (*employee.ListEmployeesResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubEmployeeUseCase) UpdateEmployee(ctx context.Context, in employee.UpdateEmployeeInput) (*employee.Employee, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubEmployeeUseCase) DeleteEmployee(ctx context.Context, in employee.DeleteEmployeeInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func TestEmployeeGrpcHandler_CreateEmployee(t *testing.T) {
	t.Parallel()

	now := time.Now()
	telegramUserID := int64(4242)
	stub := &stubEmployeeUseCase{
		createOut: &employee.Employee{
			ID:             "employee-1",
			CompanyID:      "company-1",
			FullName:       "Taro Yamada",
			Position:       "barista",
			Status:         employee.StatusActive,
			TelegramUserID: &telegramUserID,
			Timezone:       "Asia/Tokyo",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	handler := NewEmployeeGrpcHandler(stub)

	resp, err := handler.CreateEmployee(context.Background(), &employeepb.CreateEmployeeRequest{
		CompanyId:      "company-1",
		FullName:       "Taro Yamada",
		Position:       "barista",
		TelegramUserId: wrapperspb.Int64(4242),
		Timezone:       "Asia/Tokyo",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if stub.createInput.TelegramUserID == nil || *stub.createInput.TelegramUserID != 4242 {
		t.Fatalf("expected telegram user id to be passed through, got %+v", stub.createInput)
	}

	if resp.GetEmployee().GetTelegramUserId().GetValue() != 4242 {
		t.Fatalf("expected telegram user id 4242, got %v", resp.GetEmployee().GetTelegramUserId())
	}
}

func TestEmployeeGrpcHandler_CreateEmployee_ErrorMapping(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{createErr: employee.ErrTelegramUserLinked}
	handler := NewEmployeeGrpcHandler(stub)

	_, err := handler.CreateEmployee(context.Background(), &employeepb.CreateEmployeeRequest{})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", status.Code(err))
	}
}

func TestEmployeeGrpcHandler_GetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{getErr: employee.ErrEmployeeNotFound}
	handler := NewEmployeeGrpcHandler(stub)

	_, err := handler.GetEmployee(context.Background(), &employeepb.GetEmployeeRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestEmployeeGrpcHandler_ListEmployees(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubEmployeeUseCase{
		listOut: &employee.ListEmployeesResult{
			Employees: []*employee.Employee{
				{ID: "employee-1", CompanyID: "company-1", FullName: "One", Status: employee.StatusActive, Timezone: "UTC", CreatedAt: now, UpdatedAt: now},
			},
			NextPageToken: "1",
		},
	}

	handler := NewEmployeeGrpcHandler(stub)

	resp, err := handler.ListEmployees(context.Background(), &employeepb.ListEmployeesRequest{
		CompanyId: "company-1",
		PageSize:  1,
		Status:    employeepb.EmployeeStatus_EMPLOYEE_STATUS_ACTIVE,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}

	if stub.listInput.CompanyID != "company-1" {
		t.Fatalf("expected company filter, got %+v", stub.listInput)
	}

	if len(resp.GetEmployees()) != 1 || resp.GetNextPageToken() != "1" {
		t.Fatalf("unexpected list response: %+v", resp)
	}
}

func TestEmployeeGrpcHandler_UpdateEmployee_ClearTelegramUserID(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubEmployeeUseCase{
		updateOut: &employee.Employee{
			ID:        "employee-1",
			CompanyID: "company-1",
			FullName:  "Taro Yamada",
			Status:    employee.StatusActive,
			Timezone:  "UTC",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	handler := NewEmployeeGrpcHandler(stub)

	resp, err := handler.UpdateEmployee(context.Background(), &employeepb.UpdateEmployeeRequest{
		Id:                  "employee-1",
		ClearTelegramUserId: true,
	})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if !stub.updateInput.TelegramUserIDSet || stub.updateInput.TelegramUserID != nil {
		t.Fatalf("expected cleared telegram user id, got %+v", stub.updateInput)
	}

	if resp.GetEmployee().GetTelegramUserId() != nil {
		t.Fatalf("expected nil telegram user id, got %v", resp.GetEmployee().GetTelegramUserId())
	}
}

func TestEmployeeGrpcHandler_DeleteEmployee(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{}
	handler := NewEmployeeGrpcHandler(stub)

	if _, err := handler.DeleteEmployee(context.Background(), &employeepb.DeleteEmployeeRequest{Id: "employee-1"}); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}

	if stub.deleteInput.ID != "employee-1" {
		t.Fatalf("expected id to be passed through, got %s", stub.deleteInput.ID)
	}
}
