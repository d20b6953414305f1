package handler

import (
	"context"
	"time"

	invitepb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/invite/v1"
	"github.com/crewshift/crewshift/internal/core/invite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// InviteGrpcHandler は InviteService の gRPC 実装です。
type InviteGrpcHandler struct {
	svc invite.UseCase
	invitepb.UnimplementedInviteServiceServer
}

// NewInviteGrpcHandler は InviteGrpcHandler を生成します。
func NewInviteGrpcHandler(svc invite.UseCase) *InviteGrpcHandler {
	return &InviteGrpcHandler{svc: svc}
}

// IssueInvite は招待を発行します。
func (h *InviteGrpcHandler) IssueInvite(ctx context.Context, req *invitepb.IssueInviteRequest) (*invitepb.IssueInviteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var expiresAt *time.Time
	if req.GetExpiresAt() != nil {
		value := req.GetExpiresAt().AsTime()
		expiresAt = &value
	}

	issued, err := h.svc.Issue(ctx, invite.IssueInput{
		CompanyID: req.GetCompanyId(),
		FullName:  req.GetFullName(),
		Position:  req.GetPosition(),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &invitepb.IssueInviteResponse{Invite: toProtoInvite(issued)}, nil
}

// RedeemInvite は招待を消費し、従業員をリンクします。
func (h *InviteGrpcHandler) RedeemInvite(ctx context.Context, req *invitepb.RedeemInviteRequest) (*invitepb.RedeemInviteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.Redeem(ctx, invite.RedeemInput{
		Code:           req.GetCode(),
		TelegramUserID: req.GetTelegramUserId(),
		Timezone:       req.GetTimezone(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &invitepb.RedeemInviteResponse{
		Invite:   toProtoInvite(result.Invite),
		Employee: toProtoLinkedEmployee(result.Employee),
	}, nil
}

// GetInvite はコードで招待を取得します。
func (h *InviteGrpcHandler) GetInvite(ctx context.Context, req *invitepb.GetInviteRequest) (*invitepb.GetInviteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetByCode(ctx, invite.GetByCodeInput{Code: req.GetCode()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &invitepb.GetInviteResponse{Invite: toProtoInvite(found)}, nil
}

// CleanupExpiredInvites は保持期限を過ぎた未使用の招待を削除します。
func (h *InviteGrpcHandler) CleanupExpiredInvites(ctx context.Context, req *invitepb.CleanupExpiredInvitesRequest) (*invitepb.CleanupExpiredInvitesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deleted, err := h.svc.CleanupExpired(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &invitepb.CleanupExpiredInvitesResponse{Deleted: deleted}, nil
}

func toProtoInvite(i *invite.Invite) *invitepb.Invite {
	if i == nil {
		return nil
	}

	var expiresAt *timestamppb.Timestamp
	if i.ExpiresAt != nil {
		expiresAt = timestamppb.New(*i.ExpiresAt)
	}

	var usedByEmployee string
	if i.UsedByEmployee != nil {
		usedByEmployee = *i.UsedByEmployee
	}

	var usedAt *timestamppb.Timestamp
	if i.UsedAt != nil {
		usedAt = timestamppb.New(*i.UsedAt)
	}

	return &invitepb.Invite{
		Id:             i.ID,
		CompanyId:      i.CompanyID,
		Code:           i.Code,
		FullName:       i.FullName,
		Position:       i.Position,
		CreatedAt:      timestamppb.New(i.CreatedAt),
		ExpiresAt:      expiresAt,
		UsedByEmployee: usedByEmployee,
		UsedAt:         usedAt,
	}
}

func toProtoLinkedEmployee(e *invite.LinkedEmployee) *invitepb.LinkedEmployee {
	if e == nil {
		return nil
	}

	return &invitepb.LinkedEmployee{
		Id:             e.ID,
		CompanyId:      e.CompanyID,
		FullName:       e.FullName,
		Position:       e.Position,
		TelegramUserId: e.TelegramUserID,
	}
}
