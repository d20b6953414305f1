package handler

import (
	"context"
	"testing"
	"time"

	shiftpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/shift/v1"
	"github.com/crewshift/crewshift/internal/core/shift"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type stubShiftUseCase struct {
	createInput shift.CreateShiftInput
	createErr   error
	createOut   *shift.Shift

	startInput shift.TransitionInput
	startErr   error
	startOut   *shift.Shift

	pauseInput shift.PauseInput
	pauseErr   error
	pauseOut   *shift.Shift

	resumeInput shift.TransitionInput
	resumeErr   error
	resumeOut   *shift.Shift

	endInput shift.TransitionInput
	endErr   error
	endOut   *shift.Shift

	cancelInput shift.TransitionInput
	cancelErr   error
	cancelOut   *shift.Shift

	getInput shift.GetShiftInput
	getErr   error
	getOut   *shift.Shift

	listInput shift.ListActiveShiftsInput
	listErr   error
	listOut   []*shift.Shift

	minutesInput shift.NetWorkedMinutesInput
	minutesErr   error
	minutesOut   int64
}

func (s *stubShiftUseCase) CreateShift(ctx context.Context, in shift.CreateShiftInput) (*shift.Shift, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubShiftUseCase) StartShift(ctx context.Context, in shift.TransitionInput) (*shift.Shift, error) {
	s.startInput = in
	return s.startOut, s.startErr
}

func (s *stubShiftUseCase) PauseShift(ctx context.Context, in shift.PauseInput) (*shift.Shift, error) {
	s.pauseInput = in
	return s.pauseOut, s.pauseErr
}

func (s *stubShiftUseCase) ResumeShift(ctx context.Context, in shift.TransitionInput) (*shift.Shift, error) {
	s.resumeInput = in
	return s.resumeOut, s.resumeErr
}

func (s *stubShiftUseCase) EndShift(ctx context.Context, in shift.TransitionInput) (*shift.Shift, error) {
	s.endInput = in
	return s.endOut, s.endErr
}

func (s *stubShiftUseCase) CancelShift(ctx context.Context, in shift.TransitionInput) (*shift.Shift, error) {
	s.cancelInput = in
	return s.cancelOut, s.cancelErr
}

func (s *stubShiftUseCase) GetShift(ctx context.Context, in shift.GetShiftInput) (*shift.Shift, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubShiftUseCase) ListActiveShifts(ctx context.Context, in shift.ListActiveShiftsInput) ([]*shift.Shift, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubShiftUseCase) NetWorkedMinutes(ctx context.Context, in shift.NetWorkedMinutesInput) (int64, error) {
	s.minutesInput = in
	return s.minutesOut, s.minutesErr
}

func sampleShift(status shift.Status) *shift.Shift {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &shift.Shift{
		ID:             "shift-1",
		EmployeeID:     "employee-1",
		CompanyID:      "company-1",
		PlannedStartAt: now,
		PlannedEndAt:   now.Add(8 * time.Hour),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestShiftGrpcHandler_CreateShift(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{createOut: sampleShift(shift.StatusScheduled)}
	handler := NewShiftGrpcHandler(stub)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	resp, err := handler.CreateShift(context.Background(), &shiftpb.CreateShiftRequest{
		EmployeeId:     "employee-1",
		PlannedStartAt: timestamppb.New(start),
		PlannedEndAt:   timestamppb.New(start.Add(8 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}

	if !stub.createInput.PlannedStartAt.Equal(start) {
		t.Fatalf("expected planned start %v, got %v", start, stub.createInput.PlannedStartAt)
	}

	if resp.GetShift().GetStatus() != shiftpb.ShiftStatus_SHIFT_STATUS_SCHEDULED {
		t.Fatalf("expected scheduled status, got %v", resp.GetShift().GetStatus())
	}
}

func TestShiftGrpcHandler_StartShift_InvalidTransition(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{
		startErr: &shift.InvalidTransitionError{Current: shift.StatusCompleted, Attempted: shift.StatusActive},
	}
	handler := NewShiftGrpcHandler(stub)

	_, err := handler.StartShift(context.Background(), &shiftpb.StartShiftRequest{Id: "shift-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", status.Code(err))
	}
}

func TestShiftGrpcHandler_PauseShift(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{pauseOut: sampleShift(shift.StatusPaused)}
	handler := NewShiftGrpcHandler(stub)

	resp, err := handler.PauseShift(context.Background(), &shiftpb.PauseShiftRequest{
		Id:   "shift-1",
		Kind: shiftpb.BreakKind_BREAK_KIND_LUNCH,
	})
	if err != nil {
		t.Fatalf("PauseShift returned error: %v", err)
	}

	if stub.pauseInput.Kind != shift.BreakKindLunch {
		t.Fatalf("expected lunch kind, got %s", stub.pauseInput.Kind)
	}

	if resp.GetShift().GetStatus() != shiftpb.ShiftStatus_SHIFT_STATUS_PAUSED {
		t.Fatalf("expected paused status, got %v", resp.GetShift().GetStatus())
	}
}

func TestShiftGrpcHandler_EndShift_StateChanged(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{endErr: shift.ErrShiftStateChanged}
	handler := NewShiftGrpcHandler(stub)

	_, err := handler.EndShift(context.Background(), &shiftpb.EndShiftRequest{Id: "shift-1"})
	if status.Code(err) != codes.Aborted {
		t.Fatalf("expected Aborted, got %v", status.Code(err))
	}
}

func TestShiftGrpcHandler_GetShift_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{getErr: shift.ErrShiftNotFound}
	handler := NewShiftGrpcHandler(stub)

	_, err := handler.GetShift(context.Background(), &shiftpb.GetShiftRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestShiftGrpcHandler_ListActiveShifts(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{listOut: []*shift.Shift{sampleShift(shift.StatusActive)}}
	handler := NewShiftGrpcHandler(stub)

	resp, err := handler.ListActiveShifts(context.Background(), &shiftpb.ListActiveShiftsRequest{CompanyId: "company-1"})
	if err != nil {
		t.Fatalf("ListActiveShifts returned error: %v", err)
	}

	if stub.listInput.CompanyID != "company-1" {
		t.Fatalf("expected company id to be passed through, got %s", stub.listInput.CompanyID)
	}

	if len(resp.GetShifts()) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(resp.GetShifts()))
	}
}

func TestShiftGrpcHandler_GetNetWorkedMinutes(t *testing.T) {
	t.Parallel()

	stub := &stubShiftUseCase{minutesOut: 420}
	handler := NewShiftGrpcHandler(stub)

	asOf := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	resp, err := handler.GetNetWorkedMinutes(context.Background(), &shiftpb.GetNetWorkedMinutesRequest{
		Id:   "shift-1",
		AsOf: timestamppb.New(asOf),
	})
	if err != nil {
		t.Fatalf("GetNetWorkedMinutes returned error: %v", err)
	}

	if stub.minutesInput.AsOf == nil || !stub.minutesInput.AsOf.Equal(asOf) {
		t.Fatalf("expected as-of %v, got %+v", asOf, stub.minutesInput.AsOf)
	}

	if resp.GetMinutes() != 420 {
		t.Fatalf("expected 420 minutes, got %d", resp.GetMinutes())
	}
}
