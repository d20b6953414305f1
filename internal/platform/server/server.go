package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	companypb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/company/v1"
	employeepb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/employee/v1"
	invitepb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/invite/v1"
	ratingpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/rating/v1"
	shiftpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/shift/v1"
	violationpb "github.com/crewshift/crewshift/internal/adapters/grpc/gen/violation/v1"
	"github.com/crewshift/crewshift/internal/adapters/grpc/handler"
	"github.com/crewshift/crewshift/internal/core/company"
	"github.com/crewshift/crewshift/internal/core/employee"
	"github.com/crewshift/crewshift/internal/core/invite"
	"github.com/crewshift/crewshift/internal/core/rating"
	"github.com/crewshift/crewshift/internal/core/shift"
	"github.com/crewshift/crewshift/internal/core/violation"
	"google.golang.org/grpc"
)

// Services はサーバーに登録するユースケース群です。
type Services struct {
	Company   company.UseCase
	Employee  employee.UseCase
	Shift     shift.UseCase
	Violation violation.UseCase
	Rating    rating.UseCase
	Invite    invite.UseCase
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, svcs Services, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)

	companypb.RegisterCompanyServiceServer(srv, handler.NewCompanyGrpcHandler(svcs.Company))
	employeepb.RegisterEmployeeServiceServer(srv, handler.NewEmployeeGrpcHandler(svcs.Employee))
	shiftpb.RegisterShiftServiceServer(srv, handler.NewShiftGrpcHandler(svcs.Shift))
	violationpb.RegisterViolationServiceServer(srv, handler.NewViolationGrpcHandler(svcs.Violation))
	ratingpb.RegisterRatingServiceServer(srv, handler.NewRatingGrpcHandler(svcs.Rating))
	invitepb.RegisterInviteServiceServer(srv, handler.NewInviteGrpcHandler(svcs.Invite))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
