// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: violation/v1/violation.proto

package violationv1

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
	ViolationService_RecordViolation_FullMethodName          = "/violation.v1.ViolationService/RecordViolation"
	ViolationService_ListViolationsByEmployee_FullMethodName = "/violation.v1.ViolationService/ListViolationsByEmployee"
	ViolationService_ListViolationsByCompany_FullMethodName  = "/violation.v1.ViolationService/ListViolationsByCompany"
	ViolationService_CreateRule_FullMethodName               = "/violation.v1.ViolationService/CreateRule"
	ViolationService_UpdateRule_FullMethodName               = "/violation.v1.ViolationService/UpdateRule"
	ViolationService_DeactivateRule_FullMethodName           = "/violation.v1.ViolationService/DeactivateRule"
	ViolationService_ListRules_FullMethodName                = "/violation.v1.ViolationService/ListRules"
)

// ViolationServiceClient is the client API for ViolationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ViolationService は違反ルールと違反記録の API です。
type ViolationServiceClient interface {
	RecordViolation(ctx context.Context, in *RecordViolationRequest, opts ...grpc.CallOption) (*RecordViolationResponse, error)
	ListViolationsByEmployee(ctx context.Context, in *ListViolationsByEmployeeRequest, opts ...grpc.CallOption) (*ListViolationsByEmployeeResponse, error)
	ListViolationsByCompany(ctx context.Context, in *ListViolationsByCompanyRequest, opts ...grpc.CallOption) (*ListViolationsByCompanyResponse, error)
	CreateRule(ctx context.Context, in *CreateRuleRequest, opts ...grpc.CallOption) (*CreateRuleResponse, error)
	UpdateRule(ctx context.Context, in *UpdateRuleRequest, opts ...grpc.CallOption) (*UpdateRuleResponse, error)
	DeactivateRule(ctx context.Context, in *DeactivateRuleRequest, opts ...grpc.CallOption) (*DeactivateRuleResponse, error)
	ListRules(ctx context.Context, in *ListRulesRequest, opts ...grpc.CallOption) (*ListRulesResponse, error)
}

type violationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewViolationServiceClient(cc grpc.ClientConnInterface) ViolationServiceClient {
	return &violationServiceClient{cc}
}

func (c *violationServiceClient) RecordViolation(ctx context.Context, in *RecordViolationRequest, opts ...grpc.CallOption) (*RecordViolationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordViolationResponse)
	err := c.cc.Invoke(ctx, ViolationService_RecordViolation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *violationServiceClient) ListViolationsByEmployee(ctx context.Context, in *ListViolationsByEmployeeRequest, opts ...grpc.CallOption) (*ListViolationsByEmployeeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListViolationsByEmployeeResponse)
	err := c.cc.Invoke(ctx, ViolationService_ListViolationsByEmployee_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *violationServiceClient) ListViolationsByCompany(ctx context.Context, in *ListViolationsByCompanyRequest, opts ...grpc.CallOption) (*ListViolationsByCompanyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListViolationsByCompanyResponse)
	err := c.cc.Invoke(ctx, ViolationService_ListViolationsByCompany_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *violationServiceClient) CreateRule(ctx context.Context, in *CreateRuleRequest, opts ...grpc.CallOption) (*CreateRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateRuleResponse)
	err := c.cc.Invoke(ctx, ViolationService_CreateRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *violationServiceClient) UpdateRule(ctx context.Context, in *UpdateRuleRequest, opts ...grpc.CallOption) (*UpdateRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateRuleResponse)
	err := c.cc.Invoke(ctx, ViolationService_UpdateRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *violationServiceClient) DeactivateRule(ctx context.Context, in *DeactivateRuleRequest, opts ...grpc.CallOption) (*DeactivateRuleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeactivateRuleResponse)
	err := c.cc.Invoke(ctx, ViolationService_DeactivateRule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *violationServiceClient) ListRules(ctx context.Context, in *ListRulesRequest, opts ...grpc.CallOption) (*ListRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRulesResponse)
	err := c.cc.Invoke(ctx, ViolationService_ListRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ViolationServiceServer is the server API for ViolationService service.
// All implementations must embed UnimplementedViolationServiceServer
// for forward compatibility.
//
// ViolationService は違反ルールと違反記録の API です。
type ViolationServiceServer interface {
	RecordViolation(context.Context, *RecordViolationRequest) (*RecordViolationResponse, error)
	ListViolationsByEmployee(context.Context, *ListViolationsByEmployeeRequest) (*ListViolationsByEmployeeResponse, error)
	ListViolationsByCompany(context.Context, *ListViolationsByCompanyRequest) (*ListViolationsByCompanyResponse, error)
	CreateRule(context.Context, *CreateRuleRequest) (*CreateRuleResponse, error)
	UpdateRule(context.Context, *UpdateRuleRequest) (*UpdateRuleResponse, error)
	DeactivateRule(context.Context, *DeactivateRuleRequest) (*DeactivateRuleResponse, error)
	ListRules(context.Context, *ListRulesRequest) (*ListRulesResponse, error)
	mustEmbedUnimplementedViolationServiceServer()
}

// UnimplementedViolationServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedViolationServiceServer struct{}

func (UnimplementedViolationServiceServer) RecordViolation(context.Context, *RecordViolationRequest) (*RecordViolationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordViolation not implemented")
}
func (UnimplementedViolationServiceServer) ListViolationsByEmployee(context.Context, *ListViolationsByEmployeeRequest) (*ListViolationsByEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListViolationsByEmployee not implemented")
}
func (UnimplementedViolationServiceServer) ListViolationsByCompany(context.Context, *ListViolationsByCompanyRequest) (*ListViolationsByCompanyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListViolationsByCompany not implemented")
}
func (UnimplementedViolationServiceServer) CreateRule(context.Context, *CreateRuleRequest) (*CreateRuleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRule not implemented")
}
func (UnimplementedViolationServiceServer) UpdateRule(context.Context, *UpdateRuleRequest) (*UpdateRuleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateRule not implemented")
}
func (UnimplementedViolationServiceServer) DeactivateRule(context.Context, *DeactivateRuleRequest) (*DeactivateRuleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivateRule not implemented")
}
func (UnimplementedViolationServiceServer) ListRules(context.Context, *ListRulesRequest) (*ListRulesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRules not implemented")
}
func (UnimplementedViolationServiceServer) mustEmbedUnimplementedViolationServiceServer() {}
func (UnimplementedViolationServiceServer) testEmbeddedByValue()                          {}

// UnsafeViolationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ViolationServiceServer will
// result in compilation errors.
type UnsafeViolationServiceServer interface {
	mustEmbedUnimplementedViolationServiceServer()
}

func RegisterViolationServiceServer(s grpc.ServiceRegistrar, srv ViolationServiceServer) {
	// If the following call panics, it indicates UnimplementedViolationServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ViolationService_ServiceDesc, srv)
}

func _ViolationService_RecordViolation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordViolationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).RecordViolation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_RecordViolation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).RecordViolation(ctx, req.(*RecordViolationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ViolationService_ListViolationsByEmployee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListViolationsByEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).ListViolationsByEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_ListViolationsByEmployee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).ListViolationsByEmployee(ctx, req.(*ListViolationsByEmployeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ViolationService_ListViolationsByCompany_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListViolationsByCompanyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).ListViolationsByCompany(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_ListViolationsByCompany_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).ListViolationsByCompany(ctx, req.(*ListViolationsByCompanyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ViolationService_CreateRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).CreateRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_CreateRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).CreateRule(ctx, req.(*CreateRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ViolationService_UpdateRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).UpdateRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_UpdateRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).UpdateRule(ctx, req.(*UpdateRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ViolationService_DeactivateRule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivateRuleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).DeactivateRule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_DeactivateRule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).DeactivateRule(ctx, req.(*DeactivateRuleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ViolationService_ListRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ViolationServiceServer).ListRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ViolationService_ListRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ViolationServiceServer).ListRules(ctx, req.(*ListRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ViolationService_ServiceDesc is the grpc.ServiceDesc for ViolationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ViolationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "violation.v1.ViolationService",
	HandlerType: (*ViolationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordViolation",
			Handler:    _ViolationService_RecordViolation_Handler,
		},
		{
			MethodName: "ListViolationsByEmployee",
			Handler:    _ViolationService_ListViolationsByEmployee_Handler,
		},
		{
			MethodName: "ListViolationsByCompany",
			Handler:    _ViolationService_ListViolationsByCompany_Handler,
		},
		{
			MethodName: "CreateRule",
			Handler:    _ViolationService_CreateRule_Handler,
		},
		{
			MethodName: "UpdateRule",
			Handler:    _ViolationService_UpdateRule_Handler,
		},
		{
			MethodName: "DeactivateRule",
			Handler:    _ViolationService_DeactivateRule_Handler,
		},
		{
			MethodName: "ListRules",
			Handler:    _ViolationService_ListRules_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "violation/v1/violation.proto",
}
