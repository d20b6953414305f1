package handler

import (
	"context"

	ratingpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/rating/v1"
	"github.com/crewshift/crewshift/internal/core/rating"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// RatingGrpcHandler は RatingService の gRPC 実装です。
type RatingGrpcHandler struct {
	svc rating.UseCase
	ratingpb.UnimplementedRatingServiceServer
}

// NewRatingGrpcHandler は RatingGrpcHandler を生成します。
func NewRatingGrpcHandler(svc rating.UseCase) *RatingGrpcHandler {
	return &RatingGrpcHandler{svc: svc}
}

// RecalculateRating は期間の評価を再計算します。
func (h *RatingGrpcHandler) RecalculateRating(ctx context.Context, req *ratingpb.RecalculateRatingRequest) (*ratingpb.RecalculateRatingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	recalculated, err := h.svc.Recalculate(ctx, rating.RecalculateInput{
		EmployeeID:  req.GetEmployeeId(),
		PeriodStart: req.GetPeriodStart().AsTime(),
		PeriodEnd:   req.GetPeriodEnd().AsTime(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &ratingpb.RecalculateRatingResponse{Rating: toProtoRating(recalculated)}, nil
}

// AdjustRating は評価を手動補正します。
func (h *RatingGrpcHandler) AdjustRating(ctx context.Context, req *ratingpb.AdjustRatingRequest) (*ratingpb.AdjustRatingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	adjusted, err := h.svc.Adjust(ctx, rating.AdjustInput{
		EmployeeID:  req.GetEmployeeId(),
		Delta:       req.GetDelta(),
		PeriodStart: req.GetPeriodStart().AsTime(),
		PeriodEnd:   req.GetPeriodEnd().AsTime(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &ratingpb.AdjustRatingResponse{Rating: toProtoRating(adjusted)}, nil
}

// GetCurrentRating は当期の評価を取得します。
func (h *RatingGrpcHandler) GetCurrentRating(ctx context.Context, req *ratingpb.GetCurrentRatingRequest) (*ratingpb.GetCurrentRatingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	current, err := h.svc.GetCurrentPeriod(ctx, rating.GetCurrentPeriodInput{EmployeeID: req.GetEmployeeId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &ratingpb.GetCurrentRatingResponse{Rating: toProtoRating(current)}, nil
}

// GetRatingForPeriod は指定期間の評価を取得します。
func (h *RatingGrpcHandler) GetRatingForPeriod(ctx context.Context, req *ratingpb.GetRatingForPeriodRequest) (*ratingpb.GetRatingForPeriodResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetForPeriod(ctx, rating.GetForPeriodInput{
		EmployeeID:  req.GetEmployeeId(),
		PeriodStart: req.GetPeriodStart().AsTime(),
		PeriodEnd:   req.GetPeriodEnd().AsTime(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &ratingpb.GetRatingForPeriodResponse{Rating: toProtoRating(found)}, nil
}

func toProtoRating(r *rating.EmployeeRating) *ratingpb.EmployeeRating {
	if r == nil {
		return nil
	}

	return &ratingpb.EmployeeRating{
		EmployeeId:  r.EmployeeID,
		CompanyId:   r.CompanyID,
		PeriodStart: timestamppb.New(r.PeriodStart),
		PeriodEnd:   timestamppb.New(r.PeriodEnd),
		Rating:      r.Rating,
		Status:      toProtoRatingStatus(r.Status),
		UpdatedAt:   timestamppb.New(r.UpdatedAt),
	}
}

func toProtoRatingStatus(status rating.Status) ratingpb.RatingStatus {
	switch status {
	case rating.StatusComputed:
		return ratingpb.RatingStatus_RATING_STATUS_COMPUTED
	case rating.StatusManuallyAdjusted:
		return ratingpb.RatingStatus_RATING_STATUS_MANUALLY_ADJUSTED
	default:
		return ratingpb.RatingStatus_RATING_STATUS_UNSPECIFIED
	}
}
