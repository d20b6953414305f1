package handler

import (
	"context"
	"time"

	shiftpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/shift/v1"
	"github.com/crewshift/crewshift/internal/core/shift"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ShiftGrpcHandler は ShiftService の gRPC 実装です。
type ShiftGrpcHandler struct {
	svc shift.UseCase
	shiftpb.UnimplementedShiftServiceServer
}

// NewShiftGrpcHandler は ShiftGrpcHandler を生成します。
func NewShiftGrpcHandler(svc shift.UseCase) *ShiftGrpcHandler {
	return &ShiftGrpcHandler{svc: svc}
}

// CreateShift はシフトを作成します。
func (h *ShiftGrpcHandler) CreateShift(ctx context.Context, req *shiftpb.CreateShiftRequest) (*shiftpb.CreateShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateShift(ctx, shift.CreateShiftInput{
		EmployeeID:     req.GetEmployeeId(),
		PlannedStartAt: req.GetPlannedStartAt().AsTime(),
		PlannedEndAt:   req.GetPlannedEndAt().AsTime(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.CreateShiftResponse{Shift: toProtoShift(created)}, nil
}

// StartShift はシフトを開始します。
func (h *ShiftGrpcHandler) StartShift(ctx context.Context, req *shiftpb.StartShiftRequest) (*shiftpb.StartShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	started, err := h.svc.StartShift(ctx, shift.TransitionInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.StartShiftResponse{Shift: toProtoShift(started)}, nil
}

// PauseShift はシフトを休憩状態に移行します。
func (h *ShiftGrpcHandler) PauseShift(ctx context.Context, req *shiftpb.PauseShiftRequest) (*shiftpb.PauseShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	kind, err := toDomainBreakKind(req.GetKind())
	if err != nil {
		return nil, toStatusError(err)
	}

	paused, err := h.svc.PauseShift(ctx, shift.PauseInput{ID: req.GetId(), Kind: kind})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.PauseShiftResponse{Shift: toProtoShift(paused)}, nil
}

// ResumeShift は休憩から復帰します。
func (h *ShiftGrpcHandler) ResumeShift(ctx context.Context, req *shiftpb.ResumeShiftRequest) (*shiftpb.ResumeShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resumed, err := h.svc.ResumeShift(ctx, shift.TransitionInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.ResumeShiftResponse{Shift: toProtoShift(resumed)}, nil
}

// EndShift はシフトを完了します。
func (h *ShiftGrpcHandler) EndShift(ctx context.Context, req *shiftpb.EndShiftRequest) (*shiftpb.EndShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ended, err := h.svc.EndShift(ctx, shift.TransitionInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.EndShiftResponse{Shift: toProtoShift(ended)}, nil
}

// CancelShift はシフトを取り消します。
func (h *ShiftGrpcHandler) CancelShift(ctx context.Context, req *shiftpb.CancelShiftRequest) (*shiftpb.CancelShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	cancelled, err := h.svc.CancelShift(ctx, shift.TransitionInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.CancelShiftResponse{Shift: toProtoShift(cancelled)}, nil
}

// GetShift はシフトを取得します。
func (h *ShiftGrpcHandler) GetShift(ctx context.Context, req *shiftpb.GetShiftRequest) (*shiftpb.GetShiftResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetShift(ctx, shift.GetShiftInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.GetShiftResponse{Shift: toProtoShift(found)}, nil
}

// ListActiveShifts は会社の稼働中シフト一覧を取得します。
func (h *ShiftGrpcHandler) ListActiveShifts(ctx context.Context, req *shiftpb.ListActiveShiftsRequest) (*shiftpb.ListActiveShiftsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	shifts, err := h.svc.ListActiveShifts(ctx, shift.ListActiveShiftsInput{CompanyID: req.GetCompanyId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoShifts := make([]*shiftpb.Shift, 0, len(shifts))
	for _, s := range shifts {
		protoShifts = append(protoShifts, toProtoShift(s))
	}

	return &shiftpb.ListActiveShiftsResponse{Shifts: protoShifts}, nil
}

// GetNetWorkedMinutes はシフトの実働分数を返します。
func (h *ShiftGrpcHandler) GetNetWorkedMinutes(ctx context.Context, req *shiftpb.GetNetWorkedMinutesRequest) (*shiftpb.GetNetWorkedMinutesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var asOf *time.Time
	if req.GetAsOf() != nil {
		value := req.GetAsOf().AsTime()
		asOf = &value
	}

	minutes, err := h.svc.NetWorkedMinutes(ctx, shift.NetWorkedMinutesInput{ID: req.GetId(), AsOf: asOf})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &shiftpb.GetNetWorkedMinutesResponse{Minutes: minutes}, nil
}

func toProtoShift(s *shift.Shift) *shiftpb.Shift {
	if s == nil {
		return nil
	}

	var actualStartAt *timestamppb.Timestamp
	if s.ActualStartAt != nil {
		actualStartAt = timestamppb.New(*s.ActualStartAt)
	}

	var actualEndAt *timestamppb.Timestamp
	if s.ActualEndAt != nil {
		actualEndAt = timestamppb.New(*s.ActualEndAt)
	}

	return &shiftpb.Shift{
		Id:             s.ID,
		EmployeeId:     s.EmployeeID,
		CompanyId:      s.CompanyID,
		PlannedStartAt: timestamppb.New(s.PlannedStartAt),
		PlannedEndAt:   timestamppb.New(s.PlannedEndAt),
		ActualStartAt:  actualStartAt,
		ActualEndAt:    actualEndAt,
		Status:         toProtoShiftStatus(s.Status),
		CreatedAt:      timestamppb.New(s.CreatedAt),
		UpdatedAt:      timestamppb.New(s.UpdatedAt),
	}
}

func toProtoShiftStatus(status shift.Status) shiftpb.ShiftStatus {
	switch status {
	case shift.StatusScheduled:
		return shiftpb.ShiftStatus_SHIFT_STATUS_SCHEDULED
	case shift.StatusActive:
		return shiftpb.ShiftStatus_SHIFT_STATUS_ACTIVE
	case shift.StatusPaused:
		return shiftpb.ShiftStatus_SHIFT_STATUS_PAUSED
	case shift.StatusCompleted:
		return shiftpb.ShiftStatus_SHIFT_STATUS_COMPLETED
	case shift.StatusCancelled:
		return shiftpb.ShiftStatus_SHIFT_STATUS_CANCELLED
	default:
		return shiftpb.ShiftStatus_SHIFT_STATUS_UNSPECIFIED
	}
}

func toDomainBreakKind(kind shiftpb.BreakKind) (shift.BreakKind, error) {
	switch kind {
	case shiftpb.BreakKind_BREAK_KIND_LUNCH:
		return shift.BreakKindLunch, nil
	case shiftpb.BreakKind_BREAK_KIND_BREAK:
		return shift.BreakKindBreak, nil
	case shiftpb.BreakKind_BREAK_KIND_OTHER:
		return shift.BreakKindOther, nil
	case shiftpb.BreakKind_BREAK_KIND_UNSPECIFIED:
		return "", nil
	default:
		return "", shift.ErrInvalidBreakKind
	}
}
