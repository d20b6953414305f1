package handler

import (
	"context"
	"testing"
	"time"

	ratingpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/rating/v1"
	"github.com/crewshift/crewshift/internal/core/rating"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type stubRatingUseCase struct {
	recalcInput rating.RecalculateInput
	recalcErr   error
	recalcOut   *rating.EmployeeRating

	adjustInput rating.AdjustInput
	adjustErr   error
	adjustOut   *rating.EmployeeRating

	currentInput rating.GetCurrentPeriodInput
	currentErr   error
	currentOut   *rating.EmployeeRating

	periodInput rating.GetForPeriodInput
	periodErr   error
	periodOut   *rating.EmployeeRating
}

func (s *stubRatingUseCase) Recalculate(ctx context.Context, in rating.RecalculateInput) (*rating.EmployeeRating, error) {
	s.recalcInput = in
	return s.recalcOut, s.recalcErr
}

func (s *stubRatingUseCase) Adjust(ctx context.Context, in rating.AdjustInput) (*rating.EmployeeRating, error) {
	s.adjustInput = in
	return s.adjustOut, s.adjustErr
}

func (s *stubRatingUseCase) GetCurrentPeriod(ctx context.Context, in rating.GetCurrentPeriodInput) (*rating.EmployeeRating, error) {
	s.currentInput = in
	return s.currentOut, s.currentErr
}

func (s *stubRatingUseCase) GetForPeriod(ctx context.Context, in rating.GetForPeriodInput) (*rating.EmployeeRating, error) {
	s.periodInput = in
	return s.periodOut, s.periodErr
}

func sampleRating(value float64, status rating.Status) *rating.EmployeeRating {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &rating.EmployeeRating{
		EmployeeID:  "employee-1",
		CompanyID:   "company-1",
		PeriodStart: start,
		PeriodEnd:   start.AddDate(0, 1, 0),
		Rating:      value,
		Status:      status,
		UpdatedAt:   start,
	}
}

func TestRatingGrpcHandler_RecalculateRating(t *testing.T) {
	t.Parallel()

	stub := &stubRatingUseCase{recalcOut: sampleRating(85, rating.StatusComputed)}
	handler := NewRatingGrpcHandler(stub)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := handler.RecalculateRating(context.Background(), &ratingpb.RecalculateRatingRequest{
		EmployeeId:  "employee-1",
		PeriodStart: timestamppb.New(start),
		PeriodEnd:   timestamppb.New(start.AddDate(0, 1, 0)),
	})
	if err != nil {
		t.Fatalf("RecalculateRating returned error: %v", err)
	}

	if !stub.recalcInput.PeriodStart.Equal(start) {
		t.Fatalf("expected period start %v, got %v", start, stub.recalcInput.PeriodStart)
	}

	if resp.GetRating().GetRating() != 85 {
		t.Fatalf("expected rating 85, got %v", resp.GetRating().GetRating())
	}

	if resp.GetRating().GetStatus() != ratingpb.RatingStatus_RATING_STATUS_COMPUTED {
		t.Fatalf("expected computed status, got %v", resp.GetRating().GetStatus())
	}
}

func TestRatingGrpcHandler_AdjustRating(t *testing.T) {
	t.Parallel()

	stub := &stubRatingUseCase{adjustOut: sampleRating(82, rating.StatusManuallyAdjusted)}
	handler := NewRatingGrpcHandler(stub)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	resp, err := handler.AdjustRating(context.Background(), &ratingpb.AdjustRatingRequest{
		EmployeeId:  "employee-1",
		Delta:       -10,
		PeriodStart: timestamppb.New(start),
		PeriodEnd:   timestamppb.New(start.AddDate(0, 1, 0)),
	})
	if err != nil {
		t.Fatalf("AdjustRating returned error: %v", err)
	}

	if stub.adjustInput.Delta != -10 {
		t.Fatalf("expected delta -10, got %v", stub.adjustInput.Delta)
	}

	if resp.GetRating().GetStatus() != ratingpb.RatingStatus_RATING_STATUS_MANUALLY_ADJUSTED {
		t.Fatalf("expected manually adjusted status, got %v", resp.GetRating().GetStatus())
	}
}

func TestRatingGrpcHandler_AdjustRating_InvalidDelta(t *testing.T) {
	t.Parallel()

	stub := &stubRatingUseCase{adjustErr: rating.ErrInvalidDelta}
	handler := NewRatingGrpcHandler(stub)

	_, err := handler.AdjustRating(context.Background(), &ratingpb.AdjustRatingRequest{EmployeeId: "employee-1", Delta: 250})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestRatingGrpcHandler_GetCurrentRating(t *testing.T) {
	t.Parallel()

	stub := &stubRatingUseCase{currentOut: sampleRating(100, rating.StatusComputed)}
	handler := NewRatingGrpcHandler(stub)

	resp, err := handler.GetCurrentRating(context.Background(), &ratingpb.GetCurrentRatingRequest{EmployeeId: "employee-1"})
	if err != nil {
		t.Fatalf("GetCurrentRating returned error: %v", err)
	}

	if stub.currentInput.EmployeeID != "employee-1" {
		t.Fatalf("expected employee id to be passed through, got %s", stub.currentInput.EmployeeID)
	}

	if resp.GetRating().GetRating() != 100 {
		t.Fatalf("expected rating 100, got %v", resp.GetRating().GetRating())
	}
}

func TestRatingGrpcHandler_GetRatingForPeriod_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubRatingUseCase{periodErr: rating.ErrRatingNotFound}
	handler := NewRatingGrpcHandler(stub)

	_, err := handler.GetRatingForPeriod(context.Background(), &ratingpb.GetRatingForPeriodRequest{EmployeeId: "employee-1"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}
