// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: shift/v1/shift.proto

package shiftv1

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
	ShiftService_CreateShift_FullMethodName         = "/shift.v1.ShiftService/CreateShift"
	ShiftService_StartShift_FullMethodName          = "/shift.v1.ShiftService/StartShift"
	ShiftService_PauseShift_FullMethodName          = "/shift.v1.ShiftService/PauseShift"
	ShiftService_ResumeShift_FullMethodName         = "/shift.v1.ShiftService/ResumeShift"
	ShiftService_EndShift_FullMethodName            = "/shift.v1.ShiftService/EndShift"
	ShiftService_CancelShift_FullMethodName         = "/shift.v1.ShiftService/CancelShift"
	ShiftService_GetShift_FullMethodName            = "/shift.v1.ShiftService/GetShift"
	ShiftService_ListActiveShifts_FullMethodName    = "/shift.v1.ShiftService/ListActiveShifts"
	ShiftService_GetNetWorkedMinutes_FullMethodName = "/shift.v1.ShiftService/GetNetWorkedMinutes"
)

// ShiftServiceClient is the client API for ShiftService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ShiftService はシフトのライフサイクルと実働時間の API です。
type ShiftServiceClient interface {
	CreateShift(ctx context.Context, in *CreateShiftRequest, opts ...grpc.CallOption) (*CreateShiftResponse, error)
	StartShift(ctx context.Context, in *StartShiftRequest, opts ...grpc.CallOption) (*StartShiftResponse, error)
	PauseShift(ctx context.Context, in *PauseShiftRequest, opts ...grpc.CallOption) (*PauseShiftResponse, error)
	ResumeShift(ctx context.Context, in *ResumeShiftRequest, opts ...grpc.CallOption) (*ResumeShiftResponse, error)
	EndShift(ctx context.Context, in *EndShiftRequest, opts ...grpc.CallOption) (*EndShiftResponse, error)
	CancelShift(ctx context.Context, in *CancelShiftRequest, opts ...grpc.CallOption) (*CancelShiftResponse, error)
	GetShift(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*GetShiftResponse, error)
	ListActiveShifts(ctx context.Context, in *ListActiveShiftsRequest, opts ...grpc.CallOption) (*ListActiveShiftsResponse, error)
	GetNetWorkedMinutes(ctx context.Context, in *GetNetWorkedMinutesRequest, opts ...grpc.CallOption) (*GetNetWorkedMinutesResponse, error)
}

type shiftServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShiftServiceClient(cc grpc.ClientConnInterface) ShiftServiceClient {
	return &shiftServiceClient{cc}
}

func (c *shiftServiceClient) CreateShift(ctx context.Context, in *CreateShiftRequest, opts ...grpc.CallOption) (*CreateShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_CreateShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) StartShift(ctx context.Context, in *StartShiftRequest, opts ...grpc.CallOption) (*StartShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_StartShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) PauseShift(ctx context.Context, in *PauseShiftRequest, opts ...grpc.CallOption) (*PauseShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PauseShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_PauseShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) ResumeShift(ctx context.Context, in *ResumeShiftRequest, opts ...grpc.CallOption) (*ResumeShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_ResumeShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) EndShift(ctx context.Context, in *EndShiftRequest, opts ...grpc.CallOption) (*EndShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EndShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_EndShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) CancelShift(ctx context.Context, in *CancelShiftRequest, opts ...grpc.CallOption) (*CancelShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_CancelShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetShift(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*GetShiftResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetShiftResponse)
	err := c.cc.Invoke(ctx, ShiftService_GetShift_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) ListActiveShifts(ctx context.Context, in *ListActiveShiftsRequest, opts ...grpc.CallOption) (*ListActiveShiftsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListActiveShiftsResponse)
	err := c.cc.Invoke(ctx, ShiftService_ListActiveShifts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetNetWorkedMinutes(ctx context.Context, in *GetNetWorkedMinutesRequest, opts ...grpc.CallOption) (*GetNetWorkedMinutesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetNetWorkedMinutesResponse)
	err := c.cc.Invoke(ctx, ShiftService_GetNetWorkedMinutes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShiftServiceServer is the server API for ShiftService service.
// All implementations must embed UnimplementedShiftServiceServer
// for forward compatibility.
//
// ShiftService はシフトのライフサイクルと実働時間の API です。
type ShiftServiceServer interface {
	CreateShift(context.Context, *CreateShiftRequest) (*CreateShiftResponse, error)
	StartShift(context.Context, *StartShiftRequest) (*StartShiftResponse, error)
	PauseShift(context.Context, *PauseShiftRequest) (*PauseShiftResponse, error)
	ResumeShift(context.Context, *ResumeShiftRequest) (*ResumeShiftResponse, error)
	EndShift(context.Context, *EndShiftRequest) (*EndShiftResponse, error)
	CancelShift(context.Context, *CancelShiftRequest) (*CancelShiftResponse, error)
	GetShift(context.Context, *GetShiftRequest) (*GetShiftResponse, error)
	ListActiveShifts(context.Context, *ListActiveShiftsRequest) (*ListActiveShiftsResponse, error)
	GetNetWorkedMinutes(context.Context, *GetNetWorkedMinutesRequest) (*GetNetWorkedMinutesResponse, error)
	mustEmbedUnimplementedShiftServiceServer()
}

// UnimplementedShiftServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedShiftServiceServer struct{}

func (UnimplementedShiftServiceServer) CreateShift(context.Context, *CreateShiftRequest) (*CreateShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateShift not implemented")
}
func (UnimplementedShiftServiceServer) StartShift(context.Context, *StartShiftRequest) (*StartShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartShift not implemented")
}
func (UnimplementedShiftServiceServer) PauseShift(context.Context, *PauseShiftRequest) (*PauseShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PauseShift not implemented")
}
func (UnimplementedShiftServiceServer) ResumeShift(context.Context, *ResumeShiftRequest) (*ResumeShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResumeShift not implemented")
}
func (UnimplementedShiftServiceServer) EndShift(context.Context, *EndShiftRequest) (*EndShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EndShift not implemented")
}
func (UnimplementedShiftServiceServer) CancelShift(context.Context, *CancelShiftRequest) (*CancelShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelShift not implemented")
}
func (UnimplementedShiftServiceServer) GetShift(context.Context, *GetShiftRequest) (*GetShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShift not implemented")
}
func (UnimplementedShiftServiceServer) ListActiveShifts(context.Context, *ListActiveShiftsRequest) (*ListActiveShiftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListActiveShifts not implemented")
}
func (UnimplementedShiftServiceServer) GetNetWorkedMinutes(context.Context, *GetNetWorkedMinutesRequest) (*GetNetWorkedMinutesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNetWorkedMinutes not implemented")
}
func (UnimplementedShiftServiceServer) mustEmbedUnimplementedShiftServiceServer() {}
func (UnimplementedShiftServiceServer) testEmbeddedByValue()                      {}

// UnsafeShiftServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShiftServiceServer will
// result in compilation errors.
type UnsafeShiftServiceServer interface {
	mustEmbedUnimplementedShiftServiceServer()
}

func RegisterShiftServiceServer(s grpc.ServiceRegistrar, srv ShiftServiceServer) {
	// If the following call panics, it indicates UnimplementedShiftServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ShiftService_ServiceDesc, srv)
}

func _ShiftService_CreateShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).CreateShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_CreateShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).CreateShift(ctx, req.(*CreateShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_StartShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).StartShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_StartShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).StartShift(ctx, req.(*StartShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_PauseShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).PauseShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_PauseShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).PauseShift(ctx, req.(*PauseShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_ResumeShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).ResumeShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_ResumeShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).ResumeShift(ctx, req.(*ResumeShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_EndShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).EndShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_EndShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).EndShift(ctx, req.(*EndShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_CancelShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).CancelShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_CancelShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).CancelShift(ctx, req.(*CancelShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).GetShift(ctx, req.(*GetShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_ListActiveShifts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListActiveShiftsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).ListActiveShifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_ListActiveShifts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).ListActiveShifts(ctx, req.(*ListActiveShiftsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetNetWorkedMinutes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNetWorkedMinutesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetNetWorkedMinutes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetNetWorkedMinutes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).GetNetWorkedMinutes(ctx, req.(*GetNetWorkedMinutesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShiftService_ServiceDesc is the grpc.ServiceDesc for ShiftService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShiftService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shift.v1.ShiftService",
	HandlerType: (*ShiftServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateShift",
			Handler:    _ShiftService_CreateShift_Handler,
		},
		{
			MethodName: "StartShift",
			Handler:    _ShiftService_StartShift_Handler,
		},
		{
			MethodName: "PauseShift",
			Handler:    _ShiftService_PauseShift_Handler,
		},
		{
			MethodName: "ResumeShift",
			Handler:    _ShiftService_ResumeShift_Handler,
		},
		{
			MethodName: "EndShift",
			Handler:    _ShiftService_EndShift_Handler,
		},
		{
			MethodName: "CancelShift",
			Handler:    _ShiftService_CancelShift_Handler,
		},
		{
			MethodName: "GetShift",
			Handler:    _ShiftService_GetShift_Handler,
		},
		{
			MethodName: "ListActiveShifts",
			Handler:    _ShiftService_ListActiveShifts_Handler,
		},
		{
			MethodName: "GetNetWorkedMinutes",
			Handler:    _ShiftService_GetNetWorkedMinutes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shift/v1/shift.proto",
}
