// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: employee/v1/employee.proto

package employeev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
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

type EmployeeStatus int32

const (
	EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED EmployeeStatus = 0
	EmployeeStatus_EMPLOYEE_STATUS_ACTIVE      EmployeeStatus = 1
	EmployeeStatus_EMPLOYEE_STATUS_INACTIVE    EmployeeStatus = 2
	EmployeeStatus_EMPLOYEE_STATUS_ON_LEAVE    EmployeeStatus = 3
)

// Enum value maps for EmployeeStatus.
var (
	EmployeeStatus_name = map[int32]string{
		0: "EMPLOYEE_STATUS_UNSPECIFIED",
		1: "EMPLOYEE_STATUS_ACTIVE",
		2: "EMPLOYEE_STATUS_INACTIVE",
		3: "EMPLOYEE_STATUS_ON_LEAVE",
	}
	EmployeeStatus_value = map[string]int32{
		"EMPLOYEE_STATUS_UNSPECIFIED": 0,
		"EMPLOYEE_STATUS_ACTIVE":      1,
		"EMPLOYEE_STATUS_INACTIVE":    2,
		"EMPLOYEE_STATUS_ON_LEAVE":    3,
	}
)

func (x EmployeeStatus) Enum() *EmployeeStatus {
	p := new(EmployeeStatus)
	*p = x
	return p
}

func (x EmployeeStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EmployeeStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_employee_v1_employee_proto_enumTypes[0].Descriptor()
}

func (EmployeeStatus) Type() protoreflect.EnumType {
	return &file_employee_v1_employee_proto_enumTypes[0]
}

func (x EmployeeStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EmployeeStatus.Descriptor instead.
func (EmployeeStatus) EnumDescriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{0}
}

type Employee struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FullName       string                 `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Position       string                 `protobuf:"bytes,4,opt,name=position,proto3" json:"position,omitempty"`
	Status         EmployeeStatus         `protobuf:"varint,5,opt,name=status,proto3,enum=employee.v1.EmployeeStatus" json:"status,omitempty"`
	TelegramUserId *wrapperspb.Int64Value `protobuf:"bytes,6,opt,name=telegram_user_id,json=telegramUserId,proto3" json:"telegram_user_id,omitempty"`
	Timezone       string                 `protobuf:"bytes,7,opt,name=timezone,proto3" json:"timezone,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Employee) Reset() {
	*x = Employee{}
	mi := &file_employee_v1_employee_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Employee) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Employee) ProtoMessage() {}

func (x *Employee) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Employee.ProtoReflect.Descriptor instead.
func (*Employee) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{0}
}

func (x *Employee) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Employee) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Employee) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Employee) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *Employee) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *Employee) GetTelegramUserId() *wrapperspb.Int64Value {
	if x != nil {
		return x.TelegramUserId
	}
	return nil
}

func (x *Employee) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *Employee) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Employee) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateEmployeeRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CompanyId      string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FullName       string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Position       string                 `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
	Status         EmployeeStatus         `protobuf:"varint,4,opt,name=status,proto3,enum=employee.v1.EmployeeStatus" json:"status,omitempty"`
	TelegramUserId *wrapperspb.Int64Value `protobuf:"bytes,5,opt,name=telegram_user_id,json=telegramUserId,proto3" json:"telegram_user_id,omitempty"`
	Timezone       string                 `protobuf:"bytes,6,opt,name=timezone,proto3" json:"timezone,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateEmployeeRequest) Reset() {
	*x = CreateEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEmployeeRequest) ProtoMessage() {}

func (x *CreateEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEmployeeRequest.ProtoReflect.Descriptor instead.
func (*CreateEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{1}
}

func (x *CreateEmployeeRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *CreateEmployeeRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *CreateEmployeeRequest) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *CreateEmployeeRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *CreateEmployeeRequest) GetTelegramUserId() *wrapperspb.Int64Value {
	if x != nil {
		return x.TelegramUserId
	}
	return nil
}

func (x *CreateEmployeeRequest) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

type CreateEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateEmployeeResponse) Reset() {
	*x = CreateEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEmployeeResponse) ProtoMessage() {}

func (x *CreateEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEmployeeResponse.ProtoReflect.Descriptor instead.
func (*CreateEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{2}
}

func (x *CreateEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type GetEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeRequest) Reset() {
	*x = GetEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeRequest) ProtoMessage() {}

func (x *GetEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeRequest.ProtoReflect.Descriptor instead.
func (*GetEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{3}
}

func (x *GetEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeResponse) Reset() {
	*x = GetEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeResponse) ProtoMessage() {}

func (x *GetEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeResponse.ProtoReflect.Descriptor instead.
func (*GetEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{4}
}

func (x *GetEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type ListEmployeesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Status        EmployeeStatus         `protobuf:"varint,4,opt,name=status,proto3,enum=employee.v1.EmployeeStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeesRequest) Reset() {
	*x = ListEmployeesRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeesRequest) ProtoMessage() {}

func (x *ListEmployeesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeesRequest.ProtoReflect.Descriptor instead.
func (*ListEmployeesRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{5}
}

func (x *ListEmployeesRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ListEmployeesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListEmployeesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListEmployeesRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

type ListEmployeesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employees     []*Employee            `protobuf:"bytes,1,rep,name=employees,proto3" json:"employees,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeesResponse) Reset() {
	*x = ListEmployeesResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeesResponse) ProtoMessage() {}

func (x *ListEmployeesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeesResponse.ProtoReflect.Descriptor instead.
func (*ListEmployeesResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{6}
}

func (x *ListEmployeesResponse) GetEmployees() []*Employee {
	if x != nil {
		return x.Employees
	}
	return nil
}

func (x *ListEmployeesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdateEmployeeRequest struct {
	state          protoimpl.MessageState  `protogen:"open.v1"`
	Id             string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName       *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Position       *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
	Status         EmployeeStatus          `protobuf:"varint,4,opt,name=status,proto3,enum=employee.v1.EmployeeStatus" json:"status,omitempty"`
	TelegramUserId *wrapperspb.Int64Value  `protobuf:"bytes,5,opt,name=telegram_user_id,json=telegramUserId,proto3" json:"telegram_user_id,omitempty"`
	// telegram_user_id を未設定に戻す場合に true を指定します。
	ClearTelegramUserId bool                    `protobuf:"varint,6,opt,name=clear_telegram_user_id,json=clearTelegramUserId,proto3" json:"clear_telegram_user_id,omitempty"`
	Timezone            *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=timezone,proto3" json:"timezone,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *UpdateEmployeeRequest) Reset() {
	*x = UpdateEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEmployeeRequest) ProtoMessage() {}

func (x *UpdateEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEmployeeRequest.ProtoReflect.Descriptor instead.
func (*UpdateEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateEmployeeRequest) GetFullName() *wrapperspb.StringValue {
	if x != nil {
		return x.FullName
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetPosition() *wrapperspb.StringValue {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetStatus() EmployeeStatus {
	if x != nil {
		return x.Status
	}
	return EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
}

func (x *UpdateEmployeeRequest) GetTelegramUserId() *wrapperspb.Int64Value {
	if x != nil {
		return x.TelegramUserId
	}
	return nil
}

func (x *UpdateEmployeeRequest) GetClearTelegramUserId() bool {
	if x != nil {
		return x.ClearTelegramUserId
	}
	return false
}

func (x *UpdateEmployeeRequest) GetTimezone() *wrapperspb.StringValue {
	if x != nil {
		return x.Timezone
	}
	return nil
}

type UpdateEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateEmployeeResponse) Reset() {
	*x = UpdateEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEmployeeResponse) ProtoMessage() {}

func (x *UpdateEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEmployeeResponse.ProtoReflect.Descriptor instead.
func (*UpdateEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type DeleteEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEmployeeRequest) Reset() {
	*x = DeleteEmployeeRequest{}
	mi := &file_employee_v1_employee_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEmployeeRequest) ProtoMessage() {}

func (x *DeleteEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEmployeeRequest.ProtoReflect.Descriptor instead.
func (*DeleteEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEmployeeResponse) Reset() {
	*x = DeleteEmployeeResponse{}
	mi := &file_employee_v1_employee_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEmployeeResponse) ProtoMessage() {}

func (x *DeleteEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_employee_v1_employee_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEmployeeResponse.ProtoReflect.Descriptor instead.
func (*DeleteEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_employee_v1_employee_proto_rawDescGZIP(), []int{10}
}

var File_employee_v1_employee_proto protoreflect.FileDescriptor

const file_employee_v1_employee_proto_rawDesc = "" +
	"\n" +
	"\x1aemployee/v1/employee.proto\x12\vemployee.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\x80\x03\n" +
	"\bEmployee\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfull_name\x18\x03 \x01(\tR\bfullName\x12\x1a\n" +
	"\bposition\x18\x04 \x01(\tR\bposition\x123\n" +
	"\x06status\x18\x05 \x01(\x0e2\x1b.employee.v1.EmployeeStatusR\x06status\x12E\n" +
	"\x10telegram_user_id\x18\x06 \x01(\v2\x1b.google.protobuf.Int64ValueR\x0etelegramUserId\x12\x1a\n" +
	"\btimezone\x18\a \x01(\tR\btimezone\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x87\x02\n" +
	"\x15CreateEmployeeRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x1a\n" +
	"\bposition\x18\x03 \x01(\tR\bposition\x123\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1b.employee.v1.EmployeeStatusR\x06status\x12E\n" +
	"\x10telegram_user_id\x18\x05 \x01(\v2\x1b.google.protobuf.Int64ValueR\x0etelegramUserId\x12\x1a\n" +
	"\btimezone\x18\x06 \x01(\tR\btimezone\"K\n" +
	"\x16CreateEmployeeResponse\x121\n" +
	"\bemployee\x18\x01 \x01(\v2\x15.employee.v1.EmployeeR\bemployee\"$\n" +
	"\x12GetEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"H\n" +
	"\x13GetEmployeeResponse\x121\n" +
	"\bemployee\x18\x01 \x01(\v2\x15.employee.v1.EmployeeR\bemployee\"\xa6\x01\n" +
	"\x14ListEmployeesRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x03 \x01(\tR\tpageToken\x123\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1b.employee.v1.EmployeeStatusR\x06status\"t\n" +
	"\x15ListEmployeesResponse\x123\n" +
	"\temployees\x18\x01 \x03(\v2\x15.employee.v1.EmployeeR\temployees\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x87\x03\n" +
	"\x15UpdateEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x129\n" +
	"\tfull_name\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\bfullName\x128\n" +
	"\bposition\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\bposition\x123\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1b.employee.v1.EmployeeStatusR\x06status\x12E\n" +
	"\x10telegram_user_id\x18\x05 \x01(\v2\x1b.google.protobuf.Int64ValueR\x0etelegramUserId\x123\n" +
	"\x16clear_telegram_user_id\x18\x06 \x01(\bR\x13clearTelegramUserId\x128\n" +
	"\btimezone\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\btimezone\"K\n" +
	"\x16UpdateEmployeeResponse\x121\n" +
	"\bemployee\x18\x01 \x01(\v2\x15.employee.v1.EmployeeR\bemployee\"'\n" +
	"\x15DeleteEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteEmployeeResponse*\x89\x01\n" +
	"\x0eEmployeeStatus\x12\x1f\n" +
	"\x1bEMPLOYEE_STATUS_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16EMPLOYEE_STATUS_ACTIVE\x10\x01\x12\x1c\n" +
	"\x18EMPLOYEE_STATUS_INACTIVE\x10\x02\x12\x1c\n" +
	"\x18EMPLOYEE_STATUS_ON_LEAVE\x10\x032\xcc\x03\n" +
	"\x0fEmployeeService\x12Y\n" +
	"\x0eCreateEmployee\x12\".employee.v1.CreateEmployeeRequest\x1a#.employee.v1.CreateEmployeeResponse\x12P\n" +
	"\vGetEmployee\x12\x1f.employee.v1.GetEmployeeRequest\x1a .employee.v1.GetEmployeeResponse\x12V\n" +
	"\rListEmployees\x12!.employee.v1.ListEmployeesRequest\x1a\".employee.v1.ListEmployeesResponse\x12Y\n" +
	"\x0eUpdateEmployee\x12\".employee.v1.UpdateEmployeeRequest\x1a#.employee.v1.UpdateEmployeeResponse\x12Y\n" +
	"\x0eDeleteEmployee\x12\".employee.v1.DeleteEmployeeRequest\x1a#.employee.v1.DeleteEmployeeResponseBRZPgithub.com/crewshift/crewshift/internal/adapters/grpc/gen/employee/v1;employeev1b\x06proto3"

var (
	file_employee_v1_employee_proto_rawDescOnce sync.Once
	file_employee_v1_employee_proto_rawDescData []byte
)

func file_employee_v1_employee_proto_rawDescGZIP() []byte {
	file_employee_v1_employee_proto_rawDescOnce.Do(func() {
		file_employee_v1_employee_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_employee_v1_employee_proto_rawDesc), len(file_employee_v1_employee_proto_rawDesc)))
	})
	return file_employee_v1_employee_proto_rawDescData
}

var file_employee_v1_employee_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_employee_v1_employee_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_employee_v1_employee_proto_goTypes = []any{
	(EmployeeStatus)(0),            // 0: employee.v1.EmployeeStatus
	(*Employee)(nil),               // 1: employee.v1.Employee
	(*CreateEmployeeRequest)(nil),  // 2: employee.v1.CreateEmployeeRequest
	(*CreateEmployeeResponse)(nil), // 3: employee.v1.CreateEmployeeResponse
	(*GetEmployeeRequest)(nil),     // 4: employee.v1.GetEmployeeRequest
	(*GetEmployeeResponse)(nil),    // 5: employee.v1.GetEmployeeResponse
	(*ListEmployeesRequest)(nil),   // 6: employee.v1.ListEmployeesRequest
	(*ListEmployeesResponse)(nil),  // 7: employee.v1.ListEmployeesResponse
	(*UpdateEmployeeRequest)(nil),  // 8: employee.v1.UpdateEmployeeRequest
	(*UpdateEmployeeResponse)(nil), // 9: employee.v1.UpdateEmployeeResponse
	(*DeleteEmployeeRequest)(nil),  // 10: employee.v1.DeleteEmployeeRequest
	(*DeleteEmployeeResponse)(nil), // 11: employee.v1.DeleteEmployeeResponse
	(*wrapperspb.Int64Value)(nil),  // 12: google.protobuf.Int64Value
	(*timestamppb.Timestamp)(nil),  // 13: google.protobuf.Timestamp
	(*wrapperspb.StringValue)(nil), // 14: google.protobuf.StringValue
}
var file_employee_v1_employee_proto_depIdxs = []int32{
	0,  // 0: employee.v1.Employee.status:type_name -> employee.v1.EmployeeStatus
	12, // 1: employee.v1.Employee.telegram_user_id:type_name -> google.protobuf.Int64Value
	13, // 2: employee.v1.Employee.created_at:type_name -> google.protobuf.Timestamp
	13, // 3: employee.v1.Employee.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 4: employee.v1.CreateEmployeeRequest.status:type_name -> employee.v1.EmployeeStatus
	12, // 5: employee.v1.CreateEmployeeRequest.telegram_user_id:type_name -> google.protobuf.Int64Value
	1,  // 6: employee.v1.CreateEmployeeResponse.employee:type_name -> employee.v1.Employee
	1,  // 7: employee.v1.GetEmployeeResponse.employee:type_name -> employee.v1.Employee
	0,  // 8: employee.v1.ListEmployeesRequest.status:type_name -> employee.v1.EmployeeStatus
	1,  // 9: employee.v1.ListEmployeesResponse.employees:type_name -> employee.v1.Employee
	14, // 10: employee.v1.UpdateEmployeeRequest.full_name:type_name -> google.protobuf.StringValue
	14, // 11: employee.v1.UpdateEmployeeRequest.position:type_name -> google.protobuf.StringValue
	0,  // 12: employee.v1.UpdateEmployeeRequest.status:type_name -> employee.v1.EmployeeStatus
	12, // 13: employee.v1.UpdateEmployeeRequest.telegram_user_id:type_name -> google.protobuf.Int64Value
	14, // 14: employee.v1.UpdateEmployeeRequest.timezone:type_name -> google.protobuf.StringValue
	1,  // 15: employee.v1.UpdateEmployeeResponse.employee:type_name -> employee.v1.Employee
	2,  // 16: employee.v1.EmployeeService.CreateEmployee:input_type -> employee.v1.CreateEmployeeRequest
	4,  // 17: employee.v1.EmployeeService.GetEmployee:input_type -> employee.v1.GetEmployeeRequest
	6,  // 18: employee.v1.EmployeeService.ListEmployees:input_type -> employee.v1.ListEmployeesRequest
	8,  // 19: employee.v1.EmployeeService.UpdateEmployee:input_type -> employee.v1.UpdateEmployeeRequest
	10, // 20: employee.v1.EmployeeService.DeleteEmployee:input_type -> employee.v1.DeleteEmployeeRequest
	3,  // 21: employee.v1.EmployeeService.CreateEmployee:output_type -> employee.v1.CreateEmployeeResponse
	5,  // 22: employee.v1.EmployeeService.GetEmployee:output_type -> employee.v1.GetEmployeeResponse
	7,  // 23: employee.v1.EmployeeService.ListEmployees:output_type -> employee.v1.ListEmployeesResponse
	9,  // 24: employee.v1.EmployeeService.UpdateEmployee:output_type -> employee.v1.UpdateEmployeeResponse
	11, // 25: employee.v1.EmployeeService.DeleteEmployee:output_type -> employee.v1.DeleteEmployeeResponse
	21, // [21:26] is the sub-list for method output_type
	16, // [16:21] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_employee_v1_employee_proto_init() }
func file_employee_v1_employee_proto_init() {
	if File_employee_v1_employee_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_employee_v1_employee_proto_rawDesc), len(file_employee_v1_employee_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_employee_v1_employee_proto_goTypes,
		DependencyIndexes: file_employee_v1_employee_proto_depIdxs,
		EnumInfos:         file_employee_v1_employee_proto_enumTypes,
		MessageInfos:      file_employee_v1_employee_proto_msgTypes,
	}.Build()
	File_employee_v1_employee_proto = out.File
	file_employee_v1_employee_proto_goTypes = nil
	file_employee_v1_employee_proto_depIdxs = nil
}
