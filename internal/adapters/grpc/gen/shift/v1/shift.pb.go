// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: shift/v1/shift.proto

package shiftv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ShiftStatus int32

const (
	ShiftStatus_SHIFT_STATUS_UNSPECIFIED ShiftStatus = 0
	ShiftStatus_SHIFT_STATUS_SCHEDULED   ShiftStatus = 1
	ShiftStatus_SHIFT_STATUS_ACTIVE      ShiftStatus = 2
	ShiftStatus_SHIFT_STATUS_PAUSED      ShiftStatus = 3
	ShiftStatus_SHIFT_STATUS_COMPLETED   ShiftStatus = 4
	ShiftStatus_SHIFT_STATUS_CANCELLED   ShiftStatus = 5
)

// Enum value maps for ShiftStatus.
var (
	ShiftStatus_name = map[int32]string{
		0: "SHIFT_STATUS_UNSPECIFIED",
		1: "SHIFT_STATUS_SCHEDULED",
		2: "SHIFT_STATUS_ACTIVE",
		3: "SHIFT_STATUS_PAUSED",
		4: "SHIFT_STATUS_COMPLETED",
		5: "SHIFT_STATUS_CANCELLED",
	}
	ShiftStatus_value = map[string]int32{
		"SHIFT_STATUS_UNSPECIFIED": 0,
		"SHIFT_STATUS_SCHEDULED":   1,
		"SHIFT_STATUS_ACTIVE":      2,
		"SHIFT_STATUS_PAUSED":      3,
		"SHIFT_STATUS_COMPLETED":   4,
		"SHIFT_STATUS_CANCELLED":   5,
	}
)

func (x ShiftStatus) Enum() *ShiftStatus {
	p := new(ShiftStatus)
	*p = x
	return p
}

func (x ShiftStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ShiftStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_shift_v1_shift_proto_enumTypes[0].Descriptor()
}

func (ShiftStatus) Type() protoreflect.EnumType {
	return &file_shift_v1_shift_proto_enumTypes[0]
}

func (x ShiftStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ShiftStatus.Descriptor instead.
func (ShiftStatus) EnumDescriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{0}
}

type BreakKind int32

const (
	BreakKind_BREAK_KIND_UNSPECIFIED BreakKind = 0
	BreakKind_BREAK_KIND_LUNCH       BreakKind = 1
	BreakKind_BREAK_KIND_BREAK       BreakKind = 2
	BreakKind_BREAK_KIND_OTHER       BreakKind = 3
)

// Enum value maps for BreakKind.
var (
	BreakKind_name = map[int32]string{
		0: "BREAK_KIND_UNSPECIFIED",
		1: "BREAK_KIND_LUNCH",
		2: "BREAK_KIND_BREAK",
		3: "BREAK_KIND_OTHER",
	}
	BreakKind_value = map[string]int32{
		"BREAK_KIND_UNSPECIFIED": 0,
		"BREAK_KIND_LUNCH":       1,
		"BREAK_KIND_BREAK":       2,
		"BREAK_KIND_OTHER":       3,
	}
)

func (x BreakKind) Enum() *BreakKind {
	p := new(BreakKind)
	*p = x
	return p
}

func (x BreakKind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (BreakKind) Descriptor() protoreflect.EnumDescriptor {
	return file_shift_v1_shift_proto_enumTypes[1].Descriptor()
}

func (BreakKind) Type() protoreflect.EnumType {
	return &file_shift_v1_shift_proto_enumTypes[1]
}

func (x BreakKind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use BreakKind.Descriptor instead.
func (BreakKind) EnumDescriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{1}
}

type Shift struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EmployeeId     string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,3,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	PlannedStartAt *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=planned_start_at,json=plannedStartAt,proto3" json:"planned_start_at,omitempty"`
	PlannedEndAt   *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=planned_end_at,json=plannedEndAt,proto3" json:"planned_end_at,omitempty"`
	ActualStartAt  *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=actual_start_at,json=actualStartAt,proto3" json:"actual_start_at,omitempty"`
	ActualEndAt    *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=actual_end_at,json=actualEndAt,proto3" json:"actual_end_at,omitempty"`
	Status         ShiftStatus            `protobuf:"varint,8,opt,name=status,proto3,enum=shift.v1.ShiftStatus" json:"status,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Shift) Reset() {
	*x = Shift{}
	mi := &file_shift_v1_shift_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Shift) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Shift) ProtoMessage() {}

func (x *Shift) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Shift.ProtoReflect.Descriptor instead.
func (*Shift) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{0}
}

func (x *Shift) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Shift) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *Shift) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Shift) GetPlannedStartAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PlannedStartAt
	}
	return nil
}

func (x *Shift) GetPlannedEndAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PlannedEndAt
	}
	return nil
}

func (x *Shift) GetActualStartAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ActualStartAt
	}
	return nil
}

func (x *Shift) GetActualEndAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ActualEndAt
	}
	return nil
}

func (x *Shift) GetStatus() ShiftStatus {
	if x != nil {
		return x.Status
	}
	return ShiftStatus_SHIFT_STATUS_UNSPECIFIED
}

func (x *Shift) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Shift) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateShiftRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId     string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	PlannedStartAt *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=planned_start_at,json=plannedStartAt,proto3" json:"planned_start_at,omitempty"`
	PlannedEndAt   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=planned_end_at,json=plannedEndAt,proto3" json:"planned_end_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateShiftRequest) Reset() {
	*x = CreateShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateShiftRequest) ProtoMessage() {}

func (x *CreateShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateShiftRequest.ProtoReflect.Descriptor instead.
func (*CreateShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{1}
}

func (x *CreateShiftRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *CreateShiftRequest) GetPlannedStartAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PlannedStartAt
	}
	return nil
}

func (x *CreateShiftRequest) GetPlannedEndAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PlannedEndAt
	}
	return nil
}

type CreateShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateShiftResponse) Reset() {
	*x = CreateShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateShiftResponse) ProtoMessage() {}

func (x *CreateShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateShiftResponse.ProtoReflect.Descriptor instead.
func (*CreateShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{2}
}

func (x *CreateShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type StartShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartShiftRequest) Reset() {
	*x = StartShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartShiftRequest) ProtoMessage() {}

func (x *StartShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartShiftRequest.ProtoReflect.Descriptor instead.
func (*StartShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{3}
}

func (x *StartShiftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type StartShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartShiftResponse) Reset() {
	*x = StartShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartShiftResponse) ProtoMessage() {}

func (x *StartShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartShiftResponse.ProtoReflect.Descriptor instead.
func (*StartShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{4}
}

func (x *StartShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type PauseShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind          BreakKind              `protobuf:"varint,2,opt,name=kind,proto3,enum=shift.v1.BreakKind" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseShiftRequest) Reset() {
	*x = PauseShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseShiftRequest) ProtoMessage() {}

func (x *PauseShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseShiftRequest.ProtoReflect.Descriptor instead.
func (*PauseShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{5}
}

func (x *PauseShiftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PauseShiftRequest) GetKind() BreakKind {
	if x != nil {
		return x.Kind
	}
	return BreakKind_BREAK_KIND_UNSPECIFIED
}

type PauseShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseShiftResponse) Reset() {
	*x = PauseShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseShiftResponse) ProtoMessage() {}

func (x *PauseShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseShiftResponse.ProtoReflect.Descriptor instead.
func (*PauseShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{6}
}

func (x *PauseShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type ResumeShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeShiftRequest) Reset() {
	*x = ResumeShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeShiftRequest) ProtoMessage() {}

func (x *ResumeShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeShiftRequest.ProtoReflect.Descriptor instead.
func (*ResumeShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{7}
}

func (x *ResumeShiftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ResumeShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeShiftResponse) Reset() {
	*x = ResumeShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeShiftResponse) ProtoMessage() {}

func (x *ResumeShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeShiftResponse.ProtoReflect.Descriptor instead.
func (*ResumeShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{8}
}

func (x *ResumeShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type EndShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndShiftRequest) Reset() {
	*x = EndShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndShiftRequest) ProtoMessage() {}

func (x *EndShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndShiftRequest.ProtoReflect.Descriptor instead.
func (*EndShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{9}
}

func (x *EndShiftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type EndShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndShiftResponse) Reset() {
	*x = EndShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndShiftResponse) ProtoMessage() {}

func (x *EndShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndShiftResponse.ProtoReflect.Descriptor instead.
func (*EndShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{10}
}

func (x *EndShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type CancelShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelShiftRequest) Reset() {
	*x = CancelShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelShiftRequest) ProtoMessage() {}

func (x *CancelShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelShiftRequest.ProtoReflect.Descriptor instead.
func (*CancelShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{11}
}

func (x *CancelShiftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CancelShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelShiftResponse) Reset() {
	*x = CancelShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelShiftResponse) ProtoMessage() {}

func (x *CancelShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelShiftResponse.ProtoReflect.Descriptor instead.
func (*CancelShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{12}
}

func (x *CancelShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type GetShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetShiftRequest) Reset() {
	*x = GetShiftRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetShiftRequest) ProtoMessage() {}

func (x *GetShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetShiftRequest.ProtoReflect.Descriptor instead.
func (*GetShiftRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{13}
}

func (x *GetShiftRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shift         *Shift                 `protobuf:"bytes,1,opt,name=shift,proto3" json:"shift,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetShiftResponse) Reset() {
	*x = GetShiftResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetShiftResponse) ProtoMessage() {}

func (x *GetShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetShiftResponse.ProtoReflect.Descriptor instead.
func (*GetShiftResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{14}
}

func (x *GetShiftResponse) GetShift() *Shift {
	if x != nil {
		return x.Shift
	}
	return nil
}

type ListActiveShiftsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListActiveShiftsRequest) Reset() {
	*x = ListActiveShiftsRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListActiveShiftsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListActiveShiftsRequest) ProtoMessage() {}

func (x *ListActiveShiftsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListActiveShiftsRequest.ProtoReflect.Descriptor instead.
func (*ListActiveShiftsRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{15}
}

func (x *ListActiveShiftsRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ListActiveShiftsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shifts        []*Shift               `protobuf:"bytes,1,rep,name=shifts,proto3" json:"shifts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListActiveShiftsResponse) Reset() {
	*x = ListActiveShiftsResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListActiveShiftsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListActiveShiftsResponse) ProtoMessage() {}

func (x *ListActiveShiftsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListActiveShiftsResponse.ProtoReflect.Descriptor instead.
func (*ListActiveShiftsResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{16}
}

func (x *ListActiveShiftsResponse) GetShifts() []*Shift {
	if x != nil {
		return x.Shifts
	}
	return nil
}

type GetNetWorkedMinutesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// 省略時は確定済み区間のみ集計します。
	AsOf          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=as_of,json=asOf,proto3" json:"as_of,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNetWorkedMinutesRequest) Reset() {
	*x = GetNetWorkedMinutesRequest{}
	mi := &file_shift_v1_shift_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNetWorkedMinutesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNetWorkedMinutesRequest) ProtoMessage() {}

func (x *GetNetWorkedMinutesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNetWorkedMinutesRequest.ProtoReflect.Descriptor instead.
func (*GetNetWorkedMinutesRequest) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{17}
}

func (x *GetNetWorkedMinutesRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetNetWorkedMinutesRequest) GetAsOf() *timestamppb.Timestamp {
	if x != nil {
		return x.AsOf
	}
	return nil
}

type GetNetWorkedMinutesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Minutes       int64                  `protobuf:"varint,1,opt,name=minutes,proto3" json:"minutes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNetWorkedMinutesResponse) Reset() {
	*x = GetNetWorkedMinutesResponse{}
	mi := &file_shift_v1_shift_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNetWorkedMinutesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNetWorkedMinutesResponse) ProtoMessage() {}

func (x *GetNetWorkedMinutesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_shift_v1_shift_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNetWorkedMinutesResponse.ProtoReflect.Descriptor instead.
func (*GetNetWorkedMinutesResponse) Descriptor() ([]byte, []int) {
	return file_shift_v1_shift_proto_rawDescGZIP(), []int{18}
}

func (x *GetNetWorkedMinutesResponse) GetMinutes() int64 {
	if x != nil {
		return x.Minutes
	}
	return 0
}

var File_shift_v1_shift_proto protoreflect.FileDescriptor

const file_shift_v1_shift_proto_rawDesc = "" +
	"\n" +
	"\x14shift/v1/shift.proto\x12\bshift.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x88\x04\n" +
	"\x05Shift\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x03 \x01(\tR\tcompanyId\x12D\n" +
	"\x10planned_start_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x0eplannedStartAt\x12@\n" +
	"\x0eplanned_end_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\fplannedEndAt\x12B\n" +
	"\x0factual_start_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\ractualStartAt\x12>\n" +
	"\ractual_end_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\vactualEndAt\x12-\n" +
	"\x06status\x18\b \x01(\x0e2\x15.shift.v1.ShiftStatusR\x06status\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xbd\x01\n" +
	"\x12CreateShiftRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12D\n" +
	"\x10planned_start_at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x0eplannedStartAt\x12@\n" +
	"\x0eplanned_end_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\fplannedEndAt\"<\n" +
	"\x13CreateShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"#\n" +
	"\x11StartShiftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\";\n" +
	"\x12StartShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"L\n" +
	"\x11PauseShiftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x04kind\x18\x02 \x01(\x0e2\x13.shift.v1.BreakKindR\x04kind\";\n" +
	"\x12PauseShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"$\n" +
	"\x12ResumeShiftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"<\n" +
	"\x13ResumeShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"!\n" +
	"\x0fEndShiftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x10EndShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"$\n" +
	"\x12CancelShiftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"<\n" +
	"\x13CancelShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"!\n" +
	"\x0fGetShiftRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x10GetShiftResponse\x12%\n" +
	"\x05shift\x18\x01 \x01(\v2\x0f.shift.v1.ShiftR\x05shift\"8\n" +
	"\x17ListActiveShiftsRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\"C\n" +
	"\x18ListActiveShiftsResponse\x12'\n" +
	"\x06shifts\x18\x01 \x03(\v2\x0f.shift.v1.ShiftR\x06shifts\"]\n" +
	"\x1aGetNetWorkedMinutesRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12/\n" +
	"\x05as_of\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04asOf\"7\n" +
	"\x1bGetNetWorkedMinutesResponse\x12\x18\n" +
	"\aminutes\x18\x01 \x01(\x03R\aminutes*\xb1\x01\n" +
	"\vShiftStatus\x12\x1c\n" +
	"\x18SHIFT_STATUS_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16SHIFT_STATUS_SCHEDULED\x10\x01\x12\x17\n" +
	"\x13SHIFT_STATUS_ACTIVE\x10\x02\x12\x17\n" +
	"\x13SHIFT_STATUS_PAUSED\x10\x03\x12\x1a\n" +
	"\x16SHIFT_STATUS_COMPLETED\x10\x04\x12\x1a\n" +
	"\x16SHIFT_STATUS_CANCELLED\x10\x05*i\n" +
	"\tBreakKind\x12\x1a\n" +
	"\x16BREAK_KIND_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10BREAK_KIND_LUNCH\x10\x01\x12\x14\n" +
	"\x10BREAK_KIND_BREAK\x10\x02\x12\x14\n" +
	"\x10BREAK_KIND_OTHER\x10\x032\xc9\x05\n" +
	"\fShiftService\x12J\n" +
	"\vCreateShift\x12\x1c.shift.v1.CreateShiftRequest\x1a\x1d.shift.v1.CreateShiftResponse\x12G\n" +
	"\n" +
	"StartShift\x12\x1b.shift.v1.StartShiftRequest\x1a\x1c.shift.v1.StartShiftResponse\x12G\n" +
	"\n" +
	"PauseShift\x12\x1b.shift.v1.PauseShiftRequest\x1a\x1c.shift.v1.PauseShiftResponse\x12J\n" +
	"\vResumeShift\x12\x1c.shift.v1.ResumeShiftRequest\x1a\x1d.shift.v1.ResumeShiftResponse\x12A\n" +
	"\bEndShift\x12\x19.shift.v1.EndShiftRequest\x1a\x1a.shift.v1.EndShiftResponse\x12J\n" +
	"\vCancelShift\x12\x1c.shift.v1.CancelShiftRequest\x1a\x1d.shift.v1.CancelShiftResponse\x12A\n" +
	"\bGetShift\x12\x19.shift.v1.GetShiftRequest\x1a\x1a.shift.v1.GetShiftResponse\x12Y\n" +
	"\x10ListActiveShifts\x12!.shift.v1.ListActiveShiftsRequest\x1a\".shift.v1.ListActiveShiftsResponse\x12b\n" +
	"\x13GetNetWorkedMinutes\x12$.shift.v1.GetNetWorkedMinutesRequest\x1a%.shift.v1.GetNetWorkedMinutesResponseBLZJgithub.com/crewshift/crewshift/internal/adapters/grpc/gen/shift/v1;shiftv1b\x06proto3"

var (
	file_shift_v1_shift_proto_rawDescOnce sync.Once
	file_shift_v1_shift_proto_rawDescData []byte
)

func file_shift_v1_shift_proto_rawDescGZIP() []byte {
	file_shift_v1_shift_proto_rawDescOnce.Do(func() {
		file_shift_v1_shift_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_shift_v1_shift_proto_rawDesc), len(file_shift_v1_shift_proto_rawDesc)))
	})
	return file_shift_v1_shift_proto_rawDescData
}

var file_shift_v1_shift_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_shift_v1_shift_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_shift_v1_shift_proto_goTypes = []any{
	(ShiftStatus)(0),                    // 0: shift.v1.ShiftStatus
	(BreakKind)(0),                      // 1: shift.v1.BreakKind
	(*Shift)(nil),                       // 2: shift.v1.Shift
	(*CreateShiftRequest)(nil),          // 3: shift.v1.CreateShiftRequest
	(*CreateShiftResponse)(nil),         // 4: shift.v1.CreateShiftResponse
	(*StartShiftRequest)(nil),           // 5: shift.v1.StartShiftRequest
	(*StartShiftResponse)(nil),          // 6: shift.v1.StartShiftResponse
	(*PauseShiftRequest)(nil),           // 7: shift.v1.PauseShiftRequest
	(*PauseShiftResponse)(nil),          // 8: shift.v1.PauseShiftResponse
	(*ResumeShiftRequest)(nil),          // 9: shift.v1.ResumeShiftRequest
	(*ResumeShiftResponse)(nil),         // 10: shift.v1.ResumeShiftResponse
	(*EndShiftRequest)(nil),             // 11: shift.v1.EndShiftRequest
	(*EndShiftResponse)(nil),            // 12: shift.v1.EndShiftResponse
	(*CancelShiftRequest)(nil),          // 13: shift.v1.CancelShiftRequest
	(*CancelShiftResponse)(nil),         // 14: shift.v1.CancelShiftResponse
	(*GetShiftRequest)(nil),             // 15: shift.v1.GetShiftRequest
	(*GetShiftResponse)(nil),            // 16: shift.v1.GetShiftResponse
	(*ListActiveShiftsRequest)(nil),     // 17: shift.v1.ListActiveShiftsRequest
	(*ListActiveShiftsResponse)(nil),    // 18: shift.v1.ListActiveShiftsResponse
	(*GetNetWorkedMinutesRequest)(nil),  // 19: shift.v1.GetNetWorkedMinutesRequest
	(*GetNetWorkedMinutesResponse)(nil), // 20: shift.v1.GetNetWorkedMinutesResponse
	(*timestamppb.Timestamp)(nil),       // 21: google.protobuf.Timestamp
}
var file_shift_v1_shift_proto_depIdxs = []int32{
	21, // 0: shift.v1.Shift.planned_start_at:type_name -> google.protobuf.Timestamp
	21, // 1: shift.v1.Shift.planned_end_at:type_name -> google.protobuf.Timestamp
	21, // 2: shift.v1.Shift.actual_start_at:type_name -> google.protobuf.Timestamp
	21, // 3: shift.v1.Shift.actual_end_at:type_name -> google.protobuf.Timestamp
	0,  // 4: shift.v1.Shift.status:type_name -> shift.v1.ShiftStatus
	21, // 5: shift.v1.Shift.created_at:type_name -> google.protobuf.Timestamp
	21, // 6: shift.v1.Shift.updated_at:type_name -> google.protobuf.Timestamp
	21, // 7: shift.v1.CreateShiftRequest.planned_start_at:type_name -> google.protobuf.Timestamp
	21, // 8: shift.v1.CreateShiftRequest.planned_end_at:type_name -> google.protobuf.Timestamp
	2,  // 9: shift.v1.CreateShiftResponse.shift:type_name -> shift.v1.Shift
	2,  // 10: shift.v1.StartShiftResponse.shift:type_name -> shift.v1.Shift
	1,  // 11: shift.v1.PauseShiftRequest.kind:type_name -> shift.v1.BreakKind
	2,  // 12: shift.v1.PauseShiftResponse.shift:type_name -> shift.v1.Shift
	2,  // 13: shift.v1.ResumeShiftResponse.shift:type_name -> shift.v1.Shift
	2,  // 14: shift.v1.EndShiftResponse.shift:type_name -> shift.v1.Shift
	2,  // 15: shift.v1.CancelShiftResponse.shift:type_name -> shift.v1.Shift
	2,  // 16: shift.v1.GetShiftResponse.shift:type_name -> shift.v1.Shift
	2,  // 17: shift.v1.ListActiveShiftsResponse.shifts:type_name -> shift.v1.Shift
	21, // 18: shift.v1.GetNetWorkedMinutesRequest.as_of:type_name -> google.protobuf.Timestamp
	3,  // 19: shift.v1.ShiftService.CreateShift:input_type -> shift.v1.CreateShiftRequest
	5,  // 20: shift.v1.ShiftService.StartShift:input_type -> shift.v1.StartShiftRequest
	7,  // 21: shift.v1.ShiftService.PauseShift:input_type -> shift.v1.PauseShiftRequest
	9,  // 22: shift.v1.ShiftService.ResumeShift:input_type -> shift.v1.ResumeShiftRequest
	11, // 23: shift.v1.ShiftService.EndShift:input_type -> shift.v1.EndShiftRequest
	13, // 24: shift.v1.ShiftService.CancelShift:input_type -> shift.v1.CancelShiftRequest
	15, // 25: shift.v1.ShiftService.GetShift:input_type -> shift.v1.GetShiftRequest
	17, // 26: shift.v1.ShiftService.ListActiveShifts:input_type -> shift.v1.ListActiveShiftsRequest
	19, // 27: shift.v1.ShiftService.GetNetWorkedMinutes:input_type -> shift.v1.GetNetWorkedMinutesRequest
	4,  // 28: shift.v1.ShiftService.CreateShift:output_type -> shift.v1.CreateShiftResponse
	6,  // 29: shift.v1.ShiftService.StartShift:output_type -> shift.v1.StartShiftResponse
	8,  // 30: shift.v1.ShiftService.PauseShift:output_type -> shift.v1.PauseShiftResponse
	10, // 31: shift.v1.ShiftService.ResumeShift:output_type -> shift.v1.ResumeShiftResponse
	12, // 32: shift.v1.ShiftService.EndShift:output_type -> shift.v1.EndShiftResponse
	14, // 33: shift.v1.ShiftService.CancelShift:output_type -> shift.v1.CancelShiftResponse
	16, // 34: shift.v1.ShiftService.GetShift:output_type -> shift.v1.GetShiftResponse
	18, // 35: shift.v1.ShiftService.ListActiveShifts:output_type -> shift.v1.ListActiveShiftsResponse
	20, // 36: shift.v1.ShiftService.GetNetWorkedMinutes:output_type -> shift.v1.GetNetWorkedMinutesResponse
	28, // [28:37] is the sub-list for method output_type
	19, // [19:28] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_shift_v1_shift_proto_init() }
func file_shift_v1_shift_proto_init() {
	if File_shift_v1_shift_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_shift_v1_shift_proto_rawDesc), len(file_shift_v1_shift_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_shift_v1_shift_proto_goTypes,
		DependencyIndexes: file_shift_v1_shift_proto_depIdxs,
		EnumInfos:         file_shift_v1_shift_proto_enumTypes,
		MessageInfos:      file_shift_v1_shift_proto_msgTypes,
	}.Build()
	File_shift_v1_shift_proto = out.File
	file_shift_v1_shift_proto_goTypes = nil
	file_shift_v1_shift_proto_depIdxs = nil
}
