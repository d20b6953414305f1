package handler

import (
	"context"
	"testing"
	"time"

	violationpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/violation/v1"
	"github.com/crewshift/crewshift/internal/core/violation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubViolationUseCase struct {
	recordInput violation.RecordViolationInput
	recordErr   error
	recordOut   *violation.Violation

	listEmployeeInput violation.ListByEmployeeInput
	listEmployeeErr   error
	listEmployeeOut   []*violation.Violation

	listCompanyInput violation.ListByCompanyInput
	listCompanyErr   error
	listCompanyOut   []*violation.Violation

	createRuleInput violation.CreateRuleInput
	createRuleErr   error
	createRuleOut   *violation.Rule

	updateRuleInput violation.UpdateRuleInput
	updateRuleErr   error
	updateRuleOut   *violation.Rule

	deactivateInput violation.DeactivateRuleInput
	deactivateErr   error
	deactivateOut   *violation.Rule

	listRulesInput violation.ListRulesInput
	listRulesErr   error
	listRulesOut   []*violation.Rule
}

func (s *stubViolationUseCase) RecordViolation(ctx context.Context, in violation.RecordViolationInput) (*violation.Violation, error) {
	s.recordInput = in
	return s.recordOut, s.recordErr
}

func (s *stubViolationUseCase) ListByEmployee(ctx context.Context, in violation.ListByEmployeeInput) ([]*violation.Violation, error) {
	s.listEmployeeInput = in
	return s.listEmployeeOut, s.listEmployeeErr
}

func (s *stubViolationUseCase) ListByCompany(ctx context.Context, in violation.ListByCompanyInput) ([]*violation.Violation, error) {
	s.listCompanyInput = in
	return s.listCompanyOut, s.listCompanyErr
}

func (s *stubViolationUseCase) CreateRule(ctx context.Context, in violation.CreateRuleInput) (*violation.Rule, error) {
	s.createRuleInput = in
	return s.createRuleOut, s.createRuleErr
}

func (s *stubViolationUseCase) UpdateRule(ctx context.Context, in violation.UpdateRuleInput) (*violation.Rule, error) {
	s.updateRuleInput = in
	return s.updateRuleOut, s.updateRuleErr
}

func (s *stubViolationUseCase) DeactivateRule(ctx context.Context, in violation.DeactivateRuleInput) (*violation.Rule, error) {
	s.deactivateInput = in
	return s.deactivateOut, s.deactivateErr
}

func (s *stubViolationUseCase) ListRules(ctx context.Context, in violation.ListRulesInput) ([]*violation.Rule, error) {
	s.listRulesInput = in
	return s.listRulesOut, s.listRulesErr
}

func TestViolationGrpcHandler_RecordViolation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	reason := "late arrival"
	stub := &stubViolationUseCase{
		recordOut: &violation.Violation{
			ID:         "violation-1",
			EmployeeID: "employee-1",
			CompanyID:  "company-1",
			RuleID:     "rule-1",
			Source:     violation.SourceManual,
			Penalty:    5,
			Reason:     &reason,
			CreatedAt:  now,
		},
	}

	handler := NewViolationGrpcHandler(stub)

	resp, err := handler.RecordViolation(context.Background(), &violationpb.RecordViolationRequest{
		EmployeeId: "employee-1",
		CompanyId:  "company-1",
		RuleId:     "rule-1",
		Source:     violationpb.ViolationSource_VIOLATION_SOURCE_MANUAL,
		Reason:     wrapperspb.String("late arrival"),
	})
	if err != nil {
		t.Fatalf("RecordViolation returned error: %v", err)
	}

	if stub.recordInput.Source != violation.SourceManual {
		t.Fatalf("expected manual source, got %s", stub.recordInput.Source)
	}

	if stub.recordInput.Reason == nil || *stub.recordInput.Reason != "late arrival" {
		t.Fatalf("expected reason to be passed through, got %+v", stub.recordInput.Reason)
	}

	if resp.GetViolation().GetPenalty() != 5 {
		t.Fatalf("expected penalty 5, got %v", resp.GetViolation().GetPenalty())
	}
}

func TestViolationGrpcHandler_RecordViolation_UnspecifiedSource(t *testing.T) {
	t.Parallel()

	stub := &stubViolationUseCase{}
	handler := NewViolationGrpcHandler(stub)

	_, err := handler.RecordViolation(context.Background(), &violationpb.RecordViolationRequest{
		EmployeeId: "employee-1",
		CompanyId:  "company-1",
		RuleId:     "rule-1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestViolationGrpcHandler_RecordViolation_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "rule inactive", err: violation.ErrRuleInactive, want: codes.FailedPrecondition},
		{name: "company mismatch", err: violation.ErrCompanyMismatch, want: codes.PermissionDenied},
		{name: "rule not found", err: violation.ErrRuleNotFound, want: codes.NotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stub := &stubViolationUseCase{recordErr: tc.err}
			handler := NewViolationGrpcHandler(stub)

			_, err := handler.RecordViolation(context.Background(), &violationpb.RecordViolationRequest{
				Source: violationpb.ViolationSource_VIOLATION_SOURCE_MANUAL,
			})
			if status.Code(err) != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, status.Code(err))
			}
		})
	}
}

func TestViolationGrpcHandler_ListViolationsByEmployee(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubViolationUseCase{
		listEmployeeOut: []*violation.Violation{
			{ID: "violation-1", EmployeeID: "employee-1", CompanyID: "company-1", RuleID: "rule-1", Source: violation.SourceAuto, Penalty: 10, CreatedAt: now},
		},
	}

	handler := NewViolationGrpcHandler(stub)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := handler.ListViolationsByEmployee(context.Background(), &violationpb.ListViolationsByEmployeeRequest{
		EmployeeId: "employee-1",
		From:       timestamppb.New(from),
	})
	if err != nil {
		t.Fatalf("ListViolationsByEmployee returned error: %v", err)
	}

	if stub.listEmployeeInput.From == nil || !stub.listEmployeeInput.From.Equal(from) {
		t.Fatalf("expected from filter %v, got %+v", from, stub.listEmployeeInput.From)
	}

	if stub.listEmployeeInput.To != nil {
		t.Fatalf("expected nil to filter, got %v", stub.listEmployeeInput.To)
	}

	if len(resp.GetViolations()) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(resp.GetViolations()))
	}
}

func TestViolationGrpcHandler_CreateRule(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubViolationUseCase{
		createRuleOut: &violation.Rule{
			ID:             "rule-1",
			CompanyID:      "company-1",
			Code:           "late",
			Name:           "Late arrival",
			PenaltyPercent: 5,
			AutoDetectable: true,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	handler := NewViolationGrpcHandler(stub)

	resp, err := handler.CreateRule(context.Background(), &violationpb.CreateRuleRequest{
		CompanyId:      "company-1",
		Code:           "late",
		Name:           "Late arrival",
		PenaltyPercent: 5,
		AutoDetectable: true,
	})
	if err != nil {
		t.Fatalf("CreateRule returned error: %v", err)
	}

	if stub.createRuleInput.PenaltyPercent != 5 {
		t.Fatalf("expected penalty 5, got %v", stub.createRuleInput.PenaltyPercent)
	}

	if !resp.GetRule().GetIsActive() {
		t.Fatalf("expected active rule, got %+v", resp.GetRule())
	}
}

func TestViolationGrpcHandler_UpdateRule_PartialFields(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubViolationUseCase{
		updateRuleOut: &violation.Rule{
			ID:             "rule-1",
			CompanyID:      "company-1",
			Code:           "late",
			Name:           "Late arrival",
			PenaltyPercent: 7,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	handler := NewViolationGrpcHandler(stub)

	_, err := handler.UpdateRule(context.Background(), &violationpb.UpdateRuleRequest{
		Id:             "rule-1",
		PenaltyPercent: wrapperspb.Double(7),
	})
	if err != nil {
		t.Fatalf("UpdateRule returned error: %v", err)
	}

	if stub.updateRuleInput.PenaltyPercent == nil || *stub.updateRuleInput.PenaltyPercent != 7 {
		t.Fatalf("expected penalty pointer 7, got %+v", stub.updateRuleInput.PenaltyPercent)
	}

	if stub.updateRuleInput.Name != nil || stub.updateRuleInput.IsActive != nil {
		t.Fatalf("expected untouched fields to stay nil, got %+v", stub.updateRuleInput)
	}
}

func TestViolationGrpcHandler_DeactivateRule(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubViolationUseCase{
		deactivateOut: &violation.Rule{
			ID:        "rule-1",
			CompanyID: "company-1",
			Code:      "late",
			Name:      "Late arrival",
			IsActive:  false,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	handler := NewViolationGrpcHandler(stub)

	resp, err := handler.DeactivateRule(context.Background(), &violationpb.DeactivateRuleRequest{Id: "rule-1"})
	if err != nil {
		t.Fatalf("DeactivateRule returned error: %v", err)
	}

	if resp.GetRule().GetIsActive() {
		t.Fatalf("expected inactive rule, got %+v", resp.GetRule())
	}
}

func TestViolationGrpcHandler_ListRules(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubViolationUseCase{
		listRulesOut: []*violation.Rule{
			{ID: "rule-1", CompanyID: "company-1", Code: "late", Name: "Late arrival", IsActive: true, CreatedAt: now, UpdatedAt: now},
		},
	}

	handler := NewViolationGrpcHandler(stub)

	resp, err := handler.ListRules(context.Background(), &violationpb.ListRulesRequest{
		CompanyId:  "company-1",
		ActiveOnly: true,
	})
	if err != nil {
		t.Fatalf("ListRules returned error: %v", err)
	}

	if !stub.listRulesInput.ActiveOnly {
		t.Fatalf("expected active-only filter, got %+v", stub.listRulesInput)
	}

	if len(resp.GetRules()) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resp.GetRules()))
	}
}
