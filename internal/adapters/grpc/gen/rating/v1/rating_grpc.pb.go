// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: rating/v1/rating.proto

package ratingv1

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
	RatingService_RecalculateRating_FullMethodName  = "/rating.v1.RatingService/RecalculateRating"
	RatingService_AdjustRating_FullMethodName       = "/rating.v1.RatingService/AdjustRating"
	RatingService_GetCurrentRating_FullMethodName   = "/rating.v1.RatingService/GetCurrentRating"
	RatingService_GetRatingForPeriod_FullMethodName = "/rating.v1.RatingService/GetRatingForPeriod"
)

// RatingServiceClient is the client API for RatingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RatingService は従業員評価の API です。
type RatingServiceClient interface {
	RecalculateRating(ctx context.Context, in *RecalculateRatingRequest, opts ...grpc.CallOption) (*RecalculateRatingResponse, error)
	AdjustRating(ctx context.Context, in *AdjustRatingRequest, opts ...grpc.CallOption) (*AdjustRatingResponse, error)
	GetCurrentRating(ctx context.Context, in *GetCurrentRatingRequest, opts ...grpc.CallOption) (*GetCurrentRatingResponse, error)
	GetRatingForPeriod(ctx context.Context, in *GetRatingForPeriodRequest, opts ...grpc.CallOption) (*GetRatingForPeriodResponse, error)
}

type ratingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRatingServiceClient(cc grpc.ClientConnInterface) RatingServiceClient {
	return &ratingServiceClient{cc}
}

func (c *ratingServiceClient) RecalculateRating(ctx context.Context, in *RecalculateRatingRequest, opts ...grpc.CallOption) (*RecalculateRatingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecalculateRatingResponse)
	err := c.cc.Invoke(ctx, RatingService_RecalculateRating_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ratingServiceClient) AdjustRating(ctx context.Context, in *AdjustRatingRequest, opts ...grpc.CallOption) (*AdjustRatingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdjustRatingResponse)
	err := c.cc.Invoke(ctx, RatingService_AdjustRating_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ratingServiceClient) GetCurrentRating(ctx context.Context, in *GetCurrentRatingRequest, opts ...grpc.CallOption) (*GetCurrentRatingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCurrentRatingResponse)
	err := c.cc.Invoke(ctx, RatingService_GetCurrentRating_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ratingServiceClient) GetRatingForPeriod(ctx context.Context, in *GetRatingForPeriodRequest, opts ...grpc.CallOption) (*GetRatingForPeriodResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRatingForPeriodResponse)
	err := c.cc.Invoke(ctx, RatingService_GetRatingForPeriod_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RatingServiceServer is the server API for RatingService service.
// All implementations must embed UnimplementedRatingServiceServer
// for forward compatibility.
//
// RatingService は従業員評価の API です。
type RatingServiceServer interface {
	RecalculateRating(context.Context, *RecalculateRatingRequest) (*RecalculateRatingResponse, error)
	AdjustRating(context.Context, *AdjustRatingRequest) (*AdjustRatingResponse, error)
	GetCurrentRating(context.Context, *GetCurrentRatingRequest) (*GetCurrentRatingResponse, error)
	GetRatingForPeriod(context.Context, *GetRatingForPeriodRequest) (*GetRatingForPeriodResponse, error)
	mustEmbedUnimplementedRatingServiceServer()
}

// UnimplementedRatingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRatingServiceServer struct{}

func (UnimplementedRatingServiceServer) RecalculateRating(context.Context, *RecalculateRatingRequest) (*RecalculateRatingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecalculateRating not implemented")
}
func (UnimplementedRatingServiceServer) AdjustRating(context.Context, *AdjustRatingRequest) (*AdjustRatingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustRating not implemented")
}
func (UnimplementedRatingServiceServer) GetCurrentRating(context.Context, *GetCurrentRatingRequest) (*GetCurrentRatingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentRating not implemented")
}
func (UnimplementedRatingServiceServer) GetRatingForPeriod(context.Context, *GetRatingForPeriodRequest) (*GetRatingForPeriodResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRatingForPeriod not implemented")
}
func (UnimplementedRatingServiceServer) mustEmbedUnimplementedRatingServiceServer() {}
func (UnimplementedRatingServiceServer) testEmbeddedByValue()                       {}

// UnsafeRatingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RatingServiceServer will
// result in compilation errors.
type UnsafeRatingServiceServer interface {
	mustEmbedUnimplementedRatingServiceServer()
}

func RegisterRatingServiceServer(s grpc.ServiceRegistrar, srv RatingServiceServer) {
	// If the following call panics, it indicates UnimplementedRatingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RatingService_ServiceDesc, srv)
}

func _RatingService_RecalculateRating_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecalculateRatingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RatingServiceServer).RecalculateRating(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RatingService_RecalculateRating_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RatingServiceServer).RecalculateRating(ctx, req.(*RecalculateRatingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RatingService_AdjustRating_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdjustRatingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RatingServiceServer).AdjustRating(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RatingService_AdjustRating_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RatingServiceServer).AdjustRating(ctx, req.(*AdjustRatingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RatingService_GetCurrentRating_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentRatingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RatingServiceServer).GetCurrentRating(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RatingService_GetCurrentRating_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RatingServiceServer).GetCurrentRating(ctx, req.(*GetCurrentRatingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RatingService_GetRatingForPeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRatingForPeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RatingServiceServer).GetRatingForPeriod(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RatingService_GetRatingForPeriod_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RatingServiceServer).GetRatingForPeriod(ctx, req.(*GetRatingForPeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RatingService_ServiceDesc is the grpc.ServiceDesc for RatingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RatingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rating.v1.RatingService",
	HandlerType: (*RatingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecalculateRating",
			Handler:    _RatingService_RecalculateRating_Handler,
		},
		{
			MethodName: "AdjustRating",
			Handler:    _RatingService_AdjustRating_Handler,
		},
		{
			MethodName: "GetCurrentRating",
			Handler:    _RatingService_GetCurrentRating_Handler,
		},
		{
			MethodName: "GetRatingForPeriod",
			Handler:    _RatingService_GetRatingForPeriod_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rating/v1/rating.proto",
}
