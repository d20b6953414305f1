// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: invite/v1/invite.proto

package invitev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InviteService_IssueInvite_FullMethodName           = "/invite.v1.InviteService/IssueInvite"
	InviteService_RedeemInvite_FullMethodName          = "/invite.v1.InviteService/RedeemInvite"
	InviteService_GetInvite_FullMethodName             = "/invite.v1.InviteService/GetInvite"
	InviteService_CleanupExpiredInvites_FullMethodName = "/invite.v1.InviteService/CleanupExpiredInvites"
)

// InviteServiceClient is the client API for InviteService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InviteService は単回使用の従業員招待コードの API です。
type InviteServiceClient interface {
	IssueInvite(ctx context.Context, in *IssueInviteRequest, opts ...grpc.CallOption) (*IssueInviteResponse, error)
	RedeemInvite(ctx context.Context, in *RedeemInviteRequest, opts ...grpc.CallOption) (*RedeemInviteResponse, error)
	GetInvite(ctx context.Context, in *GetInviteRequest, opts ...grpc.CallOption) (*GetInviteResponse, error)
	CleanupExpiredInvites(ctx context.Context, in *CleanupExpiredInvitesRequest, opts ...grpc.CallOption) (*CleanupExpiredInvitesResponse, error)
}

type inviteServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInviteServiceClient(cc grpc.ClientConnInterface) InviteServiceClient {
	return &inviteServiceClient{cc}
}

func (c *inviteServiceClient) IssueInvite(ctx context.Context, in *IssueInviteRequest, opts ...grpc.CallOption) (*IssueInviteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IssueInviteResponse)
	err := c.cc.Invoke(ctx, InviteService_IssueInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inviteServiceClient) RedeemInvite(ctx context.Context, in *RedeemInviteRequest, opts ...grpc.CallOption) (*RedeemInviteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RedeemInviteResponse)
	err := c.cc.Invoke(ctx, InviteService_RedeemInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inviteServiceClient) GetInvite(ctx context.Context, in *GetInviteRequest, opts ...grpc.CallOption) (*GetInviteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInviteResponse)
	err := c.cc.Invoke(ctx, InviteService_GetInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inviteServiceClient) CleanupExpiredInvites(ctx context.Context, in *CleanupExpiredInvitesRequest, opts ...grpc.CallOption) (*CleanupExpiredInvitesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CleanupExpiredInvitesResponse)
	err := c.cc.Invoke(ctx, InviteService_CleanupExpiredInvites_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InviteServiceServer is the server API for InviteService service.
// All implementations must embed UnimplementedInviteServiceServer
// for forward compatibility.
//
// InviteService は単回使用の従業員招待コードの API です。
type InviteServiceServer interface {
	IssueInvite(context.Context, *IssueInviteRequest) (*IssueInviteResponse, error)
	RedeemInvite(context.Context, *RedeemInviteRequest) (*RedeemInviteResponse, error)
	GetInvite(context.Context, *GetInviteRequest) (*GetInviteResponse, error)
	CleanupExpiredInvites(context.Context, *CleanupExpiredInvitesRequest) (*CleanupExpiredInvitesResponse, error)
	mustEmbedUnimplementedInviteServiceServer()
}

// UnimplementedInviteServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInviteServiceServer struct{}

func (UnimplementedInviteServiceServer) IssueInvite(context.Context, *IssueInviteRequest) (*IssueInviteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IssueInvite not implemented")
}
func (UnimplementedInviteServiceServer) RedeemInvite(context.Context, *RedeemInviteRequest) (*RedeemInviteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RedeemInvite not implemented")
}
func (UnimplementedInviteServiceServer) GetInvite(context.Context, *GetInviteRequest) (*GetInviteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvite not implemented")
}
func (UnimplementedInviteServiceServer) CleanupExpiredInvites(context.Context, *CleanupExpiredInvitesRequest) (*CleanupExpiredInvitesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CleanupExpiredInvites not implemented")
}
func (UnimplementedInviteServiceServer) mustEmbedUnimplementedInviteServiceServer() {}
func (UnimplementedInviteServiceServer) testEmbeddedByValue()                       {}

// UnsafeInviteServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InviteServiceServer will
// result in compilation errors.
type UnsafeInviteServiceServer interface {
	mustEmbedUnimplementedInviteServiceServer()
}

func RegisterInviteServiceServer(s grpc.ServiceRegistrar, srv InviteServiceServer) {
	// If the following call panics, it indicates UnimplementedInviteServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InviteService_ServiceDesc, srv)
}

func _InviteService_IssueInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IssueInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InviteServiceServer).IssueInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InviteService_IssueInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InviteServiceServer).IssueInvite(ctx, req.(*IssueInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InviteService_RedeemInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RedeemInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InviteServiceServer).RedeemInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InviteService_RedeemInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InviteServiceServer).RedeemInvite(ctx, req.(*RedeemInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InviteService_GetInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InviteServiceServer).GetInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InviteService_GetInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InviteServiceServer).GetInvite(ctx, req.(*GetInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InviteService_CleanupExpiredInvites_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CleanupExpiredInvitesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InviteServiceServer).CleanupExpiredInvites(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InviteService_CleanupExpiredInvites_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InviteServiceServer).CleanupExpiredInvites(ctx, req.(*CleanupExpiredInvitesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InviteService_ServiceDesc is the grpc.ServiceDesc for InviteService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InviteService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invite.v1.InviteService",
	HandlerType: (*InviteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IssueInvite",
			Handler:    _InviteService_IssueInvite_Handler,
		},
		{
			MethodName: "RedeemInvite",
			Handler:    _InviteService_RedeemInvite_Handler,
		},
		{
			MethodName: "GetInvite",
			Handler:    _InviteService_GetInvite_Handler,
		},
		{
			MethodName: "CleanupExpiredInvites",
			Handler:    _InviteService_CleanupExpiredInvites_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invite/v1/invite.proto",
}
