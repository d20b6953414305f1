// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: company/v1/company.proto

package companyv1

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

type CompanyStatus int32

const (
	CompanyStatus_COMPANY_STATUS_UNSPECIFIED CompanyStatus = 0
	CompanyStatus_COMPANY_STATUS_ACTIVE      CompanyStatus = 1
	CompanyStatus_COMPANY_STATUS_SUSPENDED   CompanyStatus = 2
)

// Enum value maps for CompanyStatus.
var (
	CompanyStatus_name = map[int32]string{
		0: "COMPANY_STATUS_UNSPECIFIED",
		1: "COMPANY_STATUS_ACTIVE",
		2: "COMPANY_STATUS_SUSPENDED",
	}
	CompanyStatus_value = map[string]int32{
		"COMPANY_STATUS_UNSPECIFIED": 0,
		"COMPANY_STATUS_ACTIVE":      1,
		"COMPANY_STATUS_SUSPENDED":   2,
	}
)

func (x CompanyStatus) Enum() *CompanyStatus {
	p := new(CompanyStatus)
	*p = x
	return p
}

func (x CompanyStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CompanyStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_company_v1_company_proto_enumTypes[0].Descriptor()
}

func (CompanyStatus) Type() protoreflect.EnumType {
	return &file_company_v1_company_proto_enumTypes[0]
}

func (x CompanyStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CompanyStatus.Descriptor instead.
func (CompanyStatus) EnumDescriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{0}
}

type Company struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Code          string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	Status        CompanyStatus          `protobuf:"varint,4,opt,name=status,proto3,enum=company.v1.CompanyStatus" json:"status,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Company) Reset() {
	*x = Company{}
	mi := &file_company_v1_company_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Company) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Company) ProtoMessage() {}

func (x *Company) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Company.ProtoReflect.Descriptor instead.
func (*Company) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{0}
}

func (x *Company) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Company) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Company) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Company) GetStatus() CompanyStatus {
	if x != nil {
		return x.Status
	}
	return CompanyStatus_COMPANY_STATUS_UNSPECIFIED
}

func (x *Company) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Company) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateCompanyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyRequest) Reset() {
	*x = CreateCompanyRequest{}
	mi := &file_company_v1_company_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyRequest) ProtoMessage() {}

func (x *CreateCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyRequest.ProtoReflect.Descriptor instead.
func (*CreateCompanyRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{1}
}

func (x *CreateCompanyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCompanyRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type CreateCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyResponse) Reset() {
	*x = CreateCompanyResponse{}
	mi := &file_company_v1_company_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyResponse) ProtoMessage() {}

func (x *CreateCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyResponse.ProtoReflect.Descriptor instead.
func (*CreateCompanyResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{2}
}

func (x *CreateCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

type GetCompanyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCompanyRequest) Reset() {
	*x = GetCompanyRequest{}
	mi := &file_company_v1_company_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCompanyRequest) ProtoMessage() {}

func (x *GetCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCompanyRequest.ProtoReflect.Descriptor instead.
func (*GetCompanyRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{3}
}

func (x *GetCompanyRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCompanyResponse) Reset() {
	*x = GetCompanyResponse{}
	mi := &file_company_v1_company_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCompanyResponse) ProtoMessage() {}

func (x *GetCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCompanyResponse.ProtoReflect.Descriptor instead.
func (*GetCompanyResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{4}
}

func (x *GetCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

type ListCompaniesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Status        CompanyStatus          `protobuf:"varint,3,opt,name=status,proto3,enum=company.v1.CompanyStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesRequest) Reset() {
	*x = ListCompaniesRequest{}
	mi := &file_company_v1_company_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesRequest) ProtoMessage() {}

func (x *ListCompaniesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesRequest.ProtoReflect.Descriptor instead.
func (*ListCompaniesRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{5}
}

func (x *ListCompaniesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListCompaniesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListCompaniesRequest) GetStatus() CompanyStatus {
	if x != nil {
		return x.Status
	}
	return CompanyStatus_COMPANY_STATUS_UNSPECIFIED
}

type ListCompaniesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Companies     []*Company             `protobuf:"bytes,1,rep,name=companies,proto3" json:"companies,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesResponse) Reset() {
	*x = ListCompaniesResponse{}
	mi := &file_company_v1_company_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesResponse) ProtoMessage() {}

func (x *ListCompaniesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesResponse.ProtoReflect.Descriptor instead.
func (*ListCompaniesResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{6}
}

func (x *ListCompaniesResponse) GetCompanies() []*Company {
	if x != nil {
		return x.Companies
	}
	return nil
}

func (x *ListCompaniesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdateCompanyRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Code          *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	Status        CompanyStatus           `protobuf:"varint,4,opt,name=status,proto3,enum=company.v1.CompanyStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCompanyRequest) Reset() {
	*x = UpdateCompanyRequest{}
	mi := &file_company_v1_company_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCompanyRequest) ProtoMessage() {}

func (x *UpdateCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCompanyRequest.ProtoReflect.Descriptor instead.
func (*UpdateCompanyRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateCompanyRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateCompanyRequest) GetName() *wrapperspb.StringValue {
	if x != nil {
		return x.Name
	}
	return nil
}

func (x *UpdateCompanyRequest) GetCode() *wrapperspb.StringValue {
	if x != nil {
		return x.Code
	}
	return nil
}

func (x *UpdateCompanyRequest) GetStatus() CompanyStatus {
	if x != nil {
		return x.Status
	}
	return CompanyStatus_COMPANY_STATUS_UNSPECIFIED
}

type UpdateCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCompanyResponse) Reset() {
	*x = UpdateCompanyResponse{}
	mi := &file_company_v1_company_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCompanyResponse) ProtoMessage() {}

func (x *UpdateCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCompanyResponse.ProtoReflect.Descriptor instead.
func (*UpdateCompanyResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

type SuspendCompanyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuspendCompanyRequest) Reset() {
	*x = SuspendCompanyRequest{}
	mi := &file_company_v1_company_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuspendCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuspendCompanyRequest) ProtoMessage() {}

func (x *SuspendCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuspendCompanyRequest.ProtoReflect.Descriptor instead.
func (*SuspendCompanyRequest) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{9}
}

func (x *SuspendCompanyRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type SuspendCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuspendCompanyResponse) Reset() {
	*x = SuspendCompanyResponse{}
	mi := &file_company_v1_company_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuspendCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuspendCompanyResponse) ProtoMessage() {}

func (x *SuspendCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_company_v1_company_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuspendCompanyResponse.ProtoReflect.Descriptor instead.
func (*SuspendCompanyResponse) Descriptor() ([]byte, []int) {
	return file_company_v1_company_proto_rawDescGZIP(), []int{10}
}

func (x *SuspendCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

var File_company_v1_company_proto protoreflect.FileDescriptor

const file_company_v1_company_proto_rawDesc = "" +
	"\n" +
	"\x18company/v1/company.proto\x12\n" +
	"company.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xea\x01\n" +
	"\aCompany\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x121\n" +
	"\x06status\x18\x04 \x01(\x0e2\x19.company.v1.CompanyStatusR\x06status\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\">\n" +
	"\x14CreateCompanyRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\"F\n" +
	"\x15CreateCompanyResponse\x12-\n" +
	"\acompany\x18\x01 \x01(\v2\x13.company.v1.CompanyR\acompany\"#\n" +
	"\x11GetCompanyRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"C\n" +
	"\x12GetCompanyResponse\x12-\n" +
	"\acompany\x18\x01 \x01(\v2\x13.company.v1.CompanyR\acompany\"\x85\x01\n" +
	"\x14ListCompaniesRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x121\n" +
	"\x06status\x18\x03 \x01(\x0e2\x19.company.v1.CompanyStatusR\x06status\"r\n" +
	"\x15ListCompaniesResponse\x121\n" +
	"\tcompanies\x18\x01 \x03(\v2\x13.company.v1.CompanyR\tcompanies\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\xbd\x01\n" +
	"\x14UpdateCompanyRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x120\n" +
	"\x04name\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\x04name\x120\n" +
	"\x04code\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\x04code\x121\n" +
	"\x06status\x18\x04 \x01(\x0e2\x19.company.v1.CompanyStatusR\x06status\"F\n" +
	"\x15UpdateCompanyResponse\x12-\n" +
	"\acompany\x18\x01 \x01(\v2\x13.company.v1.CompanyR\acompany\"'\n" +
	"\x15SuspendCompanyRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"G\n" +
	"\x16SuspendCompanyResponse\x12-\n" +
	"\acompany\x18\x01 \x01(\v2\x13.company.v1.CompanyR\acompany*h\n" +
	"\rCompanyStatus\x12\x1e\n" +
	"\x1aCOMPANY_STATUS_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15COMPANY_STATUS_ACTIVE\x10\x01\x12\x1c\n" +
	"\x18COMPANY_STATUS_SUSPENDED\x10\x022\xb8\x03\n" +
	"\x0eCompanyService\x12T\n" +
	"\rCreateCompany\x12 .company.v1.CreateCompanyRequest\x1a!.company.v1.CreateCompanyResponse\x12K\n" +
	"\n" +
	"GetCompany\x12\x1d.company.v1.GetCompanyRequest\x1a\x1e.company.v1.GetCompanyResponse\x12T\n" +
	"\rListCompanies\x12 .company.v1.ListCompaniesRequest\x1a!.company.v1.ListCompaniesResponse\x12T\n" +
	"\rUpdateCompany\x12 .company.v1.UpdateCompanyRequest\x1a!.company.v1.UpdateCompanyResponse\x12W\n" +
	"\x0eSuspendCompany\x12!.company.v1.SuspendCompanyRequest\x1a\".company.v1.SuspendCompanyResponseBPZNgithub.com/crewshift/crewshift/internal/adapters/grpc/gen/company/v1;companyv1b\x06proto3"

var (
	file_company_v1_company_proto_rawDescOnce sync.Once
	file_company_v1_company_proto_rawDescData []byte
)

func file_company_v1_company_proto_rawDescGZIP() []byte {
	file_company_v1_company_proto_rawDescOnce.Do(func() {
		file_company_v1_company_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_company_v1_company_proto_rawDesc), len(file_company_v1_company_proto_rawDesc)))
	})
	return file_company_v1_company_proto_rawDescData
}

var file_company_v1_company_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_company_v1_company_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_company_v1_company_proto_goTypes = []any{
	(CompanyStatus)(0),             // 0: company.v1.CompanyStatus
	(*Company)(nil),                // 1: company.v1.Company
	(*CreateCompanyRequest)(nil),   // 2: company.v1.CreateCompanyRequest
	(*CreateCompanyResponse)(nil),  // 3: company.v1.CreateCompanyResponse
	(*GetCompanyRequest)(nil),      // 4: company.v1.GetCompanyRequest
	(*GetCompanyResponse)(nil),     // 5: company.v1.GetCompanyResponse
	(*ListCompaniesRequest)(nil),   // 6: company.v1.ListCompaniesRequest
	(*ListCompaniesResponse)(nil),  // 7: company.v1.ListCompaniesResponse
	(*UpdateCompanyRequest)(nil),   // 8: company.v1.UpdateCompanyRequest
	(*UpdateCompanyResponse)(nil),  // 9: company.v1.UpdateCompanyResponse
	(*SuspendCompanyRequest)(nil),  // 10: company.v1.SuspendCompanyRequest
	(*SuspendCompanyResponse)(nil), // 11: company.v1.SuspendCompanyResponse
	(*timestamppb.Timestamp)(nil),  // 12: google.protobuf.Timestamp
	(*wrapperspb.StringValue)(nil), // 13: google.protobuf.StringValue
}
var file_company_v1_company_proto_depIdxs = []int32{
	0,  // 0: company.v1.Company.status:type_name -> company.v1.CompanyStatus
	12, // 1: company.v1.Company.created_at:type_name -> google.protobuf.Timestamp
	12, // 2: company.v1.Company.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 3: company.v1.CreateCompanyResponse.company:type_name -> company.v1.Company
	1,  // 4: company.v1.GetCompanyResponse.company:type_name -> company.v1.Company
	0,  // 5: company.v1.ListCompaniesRequest.status:type_name -> company.v1.CompanyStatus
	1,  // 6: company.v1.ListCompaniesResponse.companies:type_name -> company.v1.Company
	13, // 7: company.v1.UpdateCompanyRequest.name:type_name -> google.protobuf.StringValue
	13, // 8: company.v1.UpdateCompanyRequest.code:type_name -> google.protobuf.StringValue
	0,  // 9: company.v1.UpdateCompanyRequest.status:type_name -> company.v1.CompanyStatus
	1,  // 10: company.v1.UpdateCompanyResponse.company:type_name -> company.v1.Company
	1,  // 11: company.v1.SuspendCompanyResponse.company:type_name -> company.v1.Company
	2,  // 12: company.v1.CompanyService.CreateCompany:input_type -> company.v1.CreateCompanyRequest
	4,  // 13: company.v1.CompanyService.GetCompany:input_type -> company.v1.GetCompanyRequest
	6,  // 14: company.v1.CompanyService.ListCompanies:input_type -> company.v1.ListCompaniesRequest
	8,  // 15: company.v1.CompanyService.UpdateCompany:input_type -> company.v1.UpdateCompanyRequest
	10, // 16: company.v1.CompanyService.SuspendCompany:input_type -> company.v1.SuspendCompanyRequest
	3,  // 17: company.v1.CompanyService.CreateCompany:output_type -> company.v1.CreateCompanyResponse
	5,  // 18: company.v1.CompanyService.GetCompany:output_type -> company.v1.GetCompanyResponse
	7,  // 19: company.v1.CompanyService.ListCompanies:output_type -> company.v1.ListCompaniesResponse
	9,  // 20: company.v1.CompanyService.UpdateCompany:output_type -> company.v1.UpdateCompanyResponse
	11, // 21: company.v1.CompanyService.SuspendCompany:output_type -> company.v1.SuspendCompanyResponse
	17, // [17:22] is the sub-list for method output_type
	12, // [12:17] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_company_v1_company_proto_init() }
func file_company_v1_company_proto_init() {
	if File_company_v1_company_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_company_v1_company_proto_rawDesc), len(file_company_v1_company_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_company_v1_company_proto_goTypes,
		DependencyIndexes: file_company_v1_company_proto_depIdxs,
		EnumInfos:         file_company_v1_company_proto_enumTypes,
		MessageInfos:      file_company_v1_company_proto_msgTypes,
	}.Build()
	File_company_v1_company_proto = out.File
	file_company_v1_company_proto_goTypes = nil
	file_company_v1_company_proto_depIdxs = nil
}
