package handler

import (
	"context"
	"time"

	violationpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/violation/v1"
	"github.com/crewshift/crewshift/internal/core/violation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ViolationGrpcHandler は ViolationService の gRPC 実装です。
type ViolationGrpcHandler struct {
	svc violation.UseCase
	violationpb.UnimplementedViolationServiceServer
}

// NewViolationGrpcHandler は ViolationGrpcHandler を生成します。
func NewViolationGrpcHandler(svc violation.UseCase) *ViolationGrpcHandler {
	return &ViolationGrpcHandler{svc: svc}
}

// RecordViolation は違反を記録します。
func (h *ViolationGrpcHandler) RecordViolation(ctx context.Context, req *violationpb.RecordViolationRequest) (*violationpb.RecordViolationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	source, err := toDomainViolationSource(req.GetSource())
	if err != nil {
		return nil, toStatusError(err)
	}

	var reason *string
	if req.GetReason() != nil {
		value := req.GetReason().GetValue()
		reason = &value
	}

	var createdBy *string
	if req.GetCreatedBy() != nil {
		value := req.GetCreatedBy().GetValue()
		createdBy = &value
	}

	recorded, err := h.svc.RecordViolation(ctx, violation.RecordViolationInput{
		EmployeeID: req.GetEmployeeId(),
		CompanyID:  req.GetCompanyId(),
		RuleID:     req.GetRuleId(),
		Source:     source,
		Reason:     reason,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &violationpb.RecordViolationResponse{Violation: toProtoViolation(recorded)}, nil
}

// ListViolationsByEmployee は従業員の違反一覧を取得します。
func (h *ViolationGrpcHandler) ListViolationsByEmployee(ctx context.Context, req *violationpb.ListViolationsByEmployeeRequest) (*violationpb.ListViolationsByEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	violations, err := h.svc.ListByEmployee(ctx, violation.ListByEmployeeInput{
		EmployeeID: req.GetEmployeeId(),
		From:       timePtr(req.GetFrom()),
		To:         timePtr(req.GetTo()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &violationpb.ListViolationsByEmployeeResponse{Violations: toProtoViolations(violations)}, nil
}

// ListViolationsByCompany は会社の違反一覧を取得します。
func (h *ViolationGrpcHandler) ListViolationsByCompany(ctx context.Context, req *violationpb.ListViolationsByCompanyRequest) (*violationpb.ListViolationsByCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	violations, err := h.svc.ListByCompany(ctx, violation.ListByCompanyInput{
		CompanyID: req.GetCompanyId(),
		From:      timePtr(req.GetFrom()),
		To:        timePtr(req.GetTo()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &violationpb.ListViolationsByCompanyResponse{Violations: toProtoViolations(violations)}, nil
}

// CreateRule は違反ルールを作成します。
func (h *ViolationGrpcHandler) CreateRule(ctx context.Context, req *violationpb.CreateRuleRequest) (*violationpb.CreateRuleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateRule(ctx, violation.CreateRuleInput{
		CompanyID:      req.GetCompanyId(),
		Code:           req.GetCode(),
		Name:           req.GetName(),
		PenaltyPercent: req.GetPenaltyPercent(),
		AutoDetectable: req.GetAutoDetectable(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &violationpb.CreateRuleResponse{Rule: toProtoRule(created)}, nil
}

// UpdateRule は違反ルールを更新します。
func (h *ViolationGrpcHandler) UpdateRule(ctx context.Context, req *violationpb.UpdateRuleRequest) (*violationpb.UpdateRuleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var namePtr *string
	if req.GetName() != nil {
		value := req.GetName().GetValue()
		namePtr = &value
	}

	var penaltyPtr *float64
	if req.GetPenaltyPercent() != nil {
		value := req.GetPenaltyPercent().GetValue()
		penaltyPtr = &value
	}

	var autoDetectablePtr *bool
	if req.GetAutoDetectable() != nil {
		value := req.GetAutoDetectable().GetValue()
		autoDetectablePtr = &value
	}

	var isActivePtr *bool
	if req.GetIsActive() != nil {
		value := req.GetIsActive().GetValue()
		isActivePtr = &value
	}

	updated, err := h.svc.UpdateRule(ctx, violation.UpdateRuleInput{
		ID:             req.GetId(),
		Name:           namePtr,
		PenaltyPercent: penaltyPtr,
		AutoDetectable: autoDetectablePtr,
		IsActive:       isActivePtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &violationpb.UpdateRuleResponse{Rule: toProtoRule(updated)}, nil
}

// DeactivateRule は違反ルールを無効化します。
func (h *ViolationGrpcHandler) DeactivateRule(ctx context.Context, req *violationpb.DeactivateRuleRequest) (*violationpb.DeactivateRuleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deactivated, err := h.svc.DeactivateRule(ctx, violation.DeactivateRuleInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &violationpb.DeactivateRuleResponse{Rule: toProtoRule(deactivated)}, nil
}

// ListRules は会社の違反ルール一覧を取得します。
func (h *ViolationGrpcHandler) ListRules(ctx context.Context, req *violationpb.ListRulesRequest) (*violationpb.ListRulesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rules, err := h.svc.ListRules(ctx, violation.ListRulesInput{
		CompanyID:  req.GetCompanyId(),
		ActiveOnly: req.GetActiveOnly(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoRules := make([]*violationpb.Rule, 0, len(rules))
	for _, r := range rules {
		protoRules = append(protoRules, toProtoRule(r))
	}

	return &violationpb.ListRulesResponse{Rules: protoRules}, nil
}

func toProtoViolations(violations []*violation.Violation) []*violationpb.Violation {
	proto := make([]*violationpb.Violation, 0, len(violations))
	for _, v := range violations {
		proto = append(proto, toProtoViolation(v))
	}
	return proto
}

func toProtoViolation(v *violation.Violation) *violationpb.Violation {
	if v == nil {
		return nil
	}

	var reason *wrapperspb.StringValue
	if v.Reason != nil {
		reason = wrapperspb.String(*v.Reason)
	}

	var createdBy *wrapperspb.StringValue
	if v.CreatedBy != nil {
		createdBy = wrapperspb.String(*v.CreatedBy)
	}

	return &violationpb.Violation{
		Id:         v.ID,
		EmployeeId: v.EmployeeID,
		CompanyId:  v.CompanyID,
		RuleId:     v.RuleID,
		Source:     toProtoViolationSource(v.Source),
		Penalty:    v.Penalty,
		Reason:     reason,
		CreatedBy:  createdBy,
		CreatedAt:  timestamppb.New(v.CreatedAt),
	}
}

func toProtoRule(r *violation.Rule) *violationpb.Rule {
	if r == nil {
		return nil
	}

	return &violationpb.Rule{
		Id:             r.ID,
		CompanyId:      r.CompanyID,
		Code:           r.Code,
		Name:           r.Name,
		PenaltyPercent: r.PenaltyPercent,
		AutoDetectable: r.AutoDetectable,
		IsActive:       r.IsActive,
		CreatedAt:      timestamppb.New(r.CreatedAt),
		UpdatedAt:      timestamppb.New(r.UpdatedAt),
	}
}

func toProtoViolationSource(source violation.Source) violationpb.ViolationSource {
	switch source {
	case violation.SourceManual:
		return violationpb.ViolationSource_VIOLATION_SOURCE_MANUAL
	case violation.SourceAuto:
		return violationpb.ViolationSource_VIOLATION_SOURCE_AUTO
	default:
		return violationpb.ViolationSource_VIOLATION_SOURCE_UNSPECIFIED
	}
}

func toDomainViolationSource(source violationpb.ViolationSource) (violation.Source, error) {
	switch source {
	case violationpb.ViolationSource_VIOLATION_SOURCE_MANUAL:
		return violation.SourceManual, nil
	case violationpb.ViolationSource_VIOLATION_SOURCE_AUTO:
		return violation.SourceAuto, nil
	default:
		return "", violation.ErrInvalidSource
	}
}

func timePtr(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	value := ts.AsTime()
	return &value
}
