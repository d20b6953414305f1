// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: violation/v1/violation.proto

package violationv1

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

type ViolationSource int32

const (
	ViolationSource_VIOLATION_SOURCE_UNSPECIFIED ViolationSource = 0
	ViolationSource_VIOLATION_SOURCE_MANUAL      ViolationSource = 1
	ViolationSource_VIOLATION_SOURCE_AUTO        ViolationSource = 2
)

// Enum value maps for ViolationSource.
var (
	ViolationSource_name = map[int32]string{
		0: "VIOLATION_SOURCE_UNSPECIFIED",
		1: "VIOLATION_SOURCE_MANUAL",
		2: "VIOLATION_SOURCE_AUTO",
	}
	ViolationSource_value = map[string]int32{
		"VIOLATION_SOURCE_UNSPECIFIED": 0,
		"VIOLATION_SOURCE_MANUAL":      1,
		"VIOLATION_SOURCE_AUTO":        2,
	}
)

func (x ViolationSource) Enum() *ViolationSource {
	p := new(ViolationSource)
	*p = x
	return p
}

func (x ViolationSource) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ViolationSource) Descriptor() protoreflect.EnumDescriptor {
	return file_violation_v1_violation_proto_enumTypes[0].Descriptor()
}

func (ViolationSource) Type() protoreflect.EnumType {
	return &file_violation_v1_violation_proto_enumTypes[0]
}

func (x ViolationSource) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ViolationSource.Descriptor instead.
func (ViolationSource) EnumDescriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{0}
}

type Rule struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Code           string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	Name           string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	PenaltyPercent float64                `protobuf:"fixed64,5,opt,name=penalty_percent,json=penaltyPercent,proto3" json:"penalty_percent,omitempty"`
	AutoDetectable bool                   `protobuf:"varint,6,opt,name=auto_detectable,json=autoDetectable,proto3" json:"auto_detectable,omitempty"`
	IsActive       bool                   `protobuf:"varint,7,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Rule) Reset() {
	*x = Rule{}
	mi := &file_violation_v1_violation_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Rule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Rule) ProtoMessage() {}

func (x *Rule) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Rule.ProtoReflect.Descriptor instead.
func (*Rule) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{0}
}

func (x *Rule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Rule) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Rule) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Rule) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Rule) GetPenaltyPercent() float64 {
	if x != nil {
		return x.PenaltyPercent
	}
	return 0
}

func (x *Rule) GetAutoDetectable() bool {
	if x != nil {
		return x.AutoDetectable
	}
	return false
}

func (x *Rule) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *Rule) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Rule) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type Violation struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EmployeeId string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	CompanyId  string                 `protobuf:"bytes,3,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	RuleId     string                 `protobuf:"bytes,4,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	Source     ViolationSource        `protobuf:"varint,5,opt,name=source,proto3,enum=violation.v1.ViolationSource" json:"source,omitempty"`
	// 記録時点のルールのペナルティの複写です。
	Penalty       float64                 `protobuf:"fixed64,6,opt,name=penalty,proto3" json:"penalty,omitempty"`
	Reason        *wrapperspb.StringValue `protobuf:"bytes,7,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedBy     *wrapperspb.StringValue `protobuf:"bytes,8,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Violation) Reset() {
	*x = Violation{}
	mi := &file_violation_v1_violation_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Violation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Violation) ProtoMessage() {}

func (x *Violation) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Violation.ProtoReflect.Descriptor instead.
func (*Violation) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{1}
}

func (x *Violation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Violation) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *Violation) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Violation) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *Violation) GetSource() ViolationSource {
	if x != nil {
		return x.Source
	}
	return ViolationSource_VIOLATION_SOURCE_UNSPECIFIED
}

func (x *Violation) GetPenalty() float64 {
	if x != nil {
		return x.Penalty
	}
	return 0
}

func (x *Violation) GetReason() *wrapperspb.StringValue {
	if x != nil {
		return x.Reason
	}
	return nil
}

func (x *Violation) GetCreatedBy() *wrapperspb.StringValue {
	if x != nil {
		return x.CreatedBy
	}
	return nil
}

func (x *Violation) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type RecordViolationRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	EmployeeId    string                  `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	CompanyId     string                  `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	RuleId        string                  `protobuf:"bytes,3,opt,name=rule_id,json=ruleId,proto3" json:"rule_id,omitempty"`
	Source        ViolationSource         `protobuf:"varint,4,opt,name=source,proto3,enum=violation.v1.ViolationSource" json:"source,omitempty"`
	Reason        *wrapperspb.StringValue `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedBy     *wrapperspb.StringValue `protobuf:"bytes,6,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordViolationRequest) Reset() {
	*x = RecordViolationRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordViolationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordViolationRequest) ProtoMessage() {}

func (x *RecordViolationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordViolationRequest.ProtoReflect.Descriptor instead.
func (*RecordViolationRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{2}
}

func (x *RecordViolationRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *RecordViolationRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *RecordViolationRequest) GetRuleId() string {
	if x != nil {
		return x.RuleId
	}
	return ""
}

func (x *RecordViolationRequest) GetSource() ViolationSource {
	if x != nil {
		return x.Source
	}
	return ViolationSource_VIOLATION_SOURCE_UNSPECIFIED
}

func (x *RecordViolationRequest) GetReason() *wrapperspb.StringValue {
	if x != nil {
		return x.Reason
	}
	return nil
}

func (x *RecordViolationRequest) GetCreatedBy() *wrapperspb.StringValue {
	if x != nil {
		return x.CreatedBy
	}
	return nil
}

type RecordViolationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Violation     *Violation             `protobuf:"bytes,1,opt,name=violation,proto3" json:"violation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordViolationResponse) Reset() {
	*x = RecordViolationResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordViolationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordViolationResponse) ProtoMessage() {}

func (x *RecordViolationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordViolationResponse.ProtoReflect.Descriptor instead.
func (*RecordViolationResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{3}
}

func (x *RecordViolationResponse) GetViolation() *Violation {
	if x != nil {
		return x.Violation
	}
	return nil
}

type ListViolationsByEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	From          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListViolationsByEmployeeRequest) Reset() {
	*x = ListViolationsByEmployeeRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListViolationsByEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListViolationsByEmployeeRequest) ProtoMessage() {}

func (x *ListViolationsByEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListViolationsByEmployeeRequest.ProtoReflect.Descriptor instead.
func (*ListViolationsByEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{4}
}

func (x *ListViolationsByEmployeeRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *ListViolationsByEmployeeRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *ListViolationsByEmployeeRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type ListViolationsByEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Violations    []*Violation           `protobuf:"bytes,1,rep,name=violations,proto3" json:"violations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListViolationsByEmployeeResponse) Reset() {
	*x = ListViolationsByEmployeeResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListViolationsByEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListViolationsByEmployeeResponse) ProtoMessage() {}

func (x *ListViolationsByEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListViolationsByEmployeeResponse.ProtoReflect.Descriptor instead.
func (*ListViolationsByEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{5}
}

func (x *ListViolationsByEmployeeResponse) GetViolations() []*Violation {
	if x != nil {
		return x.Violations
	}
	return nil
}

type ListViolationsByCompanyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	From          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListViolationsByCompanyRequest) Reset() {
	*x = ListViolationsByCompanyRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListViolationsByCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListViolationsByCompanyRequest) ProtoMessage() {}

func (x *ListViolationsByCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListViolationsByCompanyRequest.ProtoReflect.Descriptor instead.
func (*ListViolationsByCompanyRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{6}
}

func (x *ListViolationsByCompanyRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ListViolationsByCompanyRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *ListViolationsByCompanyRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type ListViolationsByCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Violations    []*Violation           `protobuf:"bytes,1,rep,name=violations,proto3" json:"violations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListViolationsByCompanyResponse) Reset() {
	*x = ListViolationsByCompanyResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListViolationsByCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListViolationsByCompanyResponse) ProtoMessage() {}

func (x *ListViolationsByCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListViolationsByCompanyResponse.ProtoReflect.Descriptor instead.
func (*ListViolationsByCompanyResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{7}
}

func (x *ListViolationsByCompanyResponse) GetViolations() []*Violation {
	if x != nil {
		return x.Violations
	}
	return nil
}

type CreateRuleRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CompanyId      string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Code           string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	PenaltyPercent float64                `protobuf:"fixed64,4,opt,name=penalty_percent,json=penaltyPercent,proto3" json:"penalty_percent,omitempty"`
	AutoDetectable bool                   `protobuf:"varint,5,opt,name=auto_detectable,json=autoDetectable,proto3" json:"auto_detectable,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateRuleRequest) Reset() {
	*x = CreateRuleRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRuleRequest) ProtoMessage() {}

func (x *CreateRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRuleRequest.ProtoReflect.Descriptor instead.
func (*CreateRuleRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{8}
}

func (x *CreateRuleRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *CreateRuleRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *CreateRuleRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateRuleRequest) GetPenaltyPercent() float64 {
	if x != nil {
		return x.PenaltyPercent
	}
	return 0
}

func (x *CreateRuleRequest) GetAutoDetectable() bool {
	if x != nil {
		return x.AutoDetectable
	}
	return false
}

type CreateRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *Rule                  `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRuleResponse) Reset() {
	*x = CreateRuleResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRuleResponse) ProtoMessage() {}

func (x *CreateRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRuleResponse.ProtoReflect.Descriptor instead.
func (*CreateRuleResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{9}
}

func (x *CreateRuleResponse) GetRule() *Rule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type UpdateRuleRequest struct {
	state          protoimpl.MessageState  `protogen:"open.v1"`
	Id             string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name           *wrapperspb.StringValue `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	PenaltyPercent *wrapperspb.DoubleValue `protobuf:"bytes,3,opt,name=penalty_percent,json=penaltyPercent,proto3" json:"penalty_percent,omitempty"`
	AutoDetectable *wrapperspb.BoolValue   `protobuf:"bytes,4,opt,name=auto_detectable,json=autoDetectable,proto3" json:"auto_detectable,omitempty"`
	IsActive       *wrapperspb.BoolValue   `protobuf:"bytes,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UpdateRuleRequest) Reset() {
	*x = UpdateRuleRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRuleRequest) ProtoMessage() {}

func (x *UpdateRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRuleRequest.ProtoReflect.Descriptor instead.
func (*UpdateRuleRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateRuleRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateRuleRequest) GetName() *wrapperspb.StringValue {
	if x != nil {
		return x.Name
	}
	return nil
}

func (x *UpdateRuleRequest) GetPenaltyPercent() *wrapperspb.DoubleValue {
	if x != nil {
		return x.PenaltyPercent
	}
	return nil
}

func (x *UpdateRuleRequest) GetAutoDetectable() *wrapperspb.BoolValue {
	if x != nil {
		return x.AutoDetectable
	}
	return nil
}

func (x *UpdateRuleRequest) GetIsActive() *wrapperspb.BoolValue {
	if x != nil {
		return x.IsActive
	}
	return nil
}

type UpdateRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *Rule                  `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRuleResponse) Reset() {
	*x = UpdateRuleResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRuleResponse) ProtoMessage() {}

func (x *UpdateRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRuleResponse.ProtoReflect.Descriptor instead.
func (*UpdateRuleResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateRuleResponse) GetRule() *Rule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type DeactivateRuleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateRuleRequest) Reset() {
	*x = DeactivateRuleRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateRuleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateRuleRequest) ProtoMessage() {}

func (x *DeactivateRuleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateRuleRequest.ProtoReflect.Descriptor instead.
func (*DeactivateRuleRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{12}
}

func (x *DeactivateRuleRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeactivateRuleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          *Rule                  `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeactivateRuleResponse) Reset() {
	*x = DeactivateRuleResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeactivateRuleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeactivateRuleResponse) ProtoMessage() {}

func (x *DeactivateRuleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeactivateRuleResponse.ProtoReflect.Descriptor instead.
func (*DeactivateRuleResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{13}
}

func (x *DeactivateRuleResponse) GetRule() *Rule {
	if x != nil {
		return x.Rule
	}
	return nil
}

type ListRulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	ActiveOnly    bool                   `protobuf:"varint,2,opt,name=active_only,json=activeOnly,proto3" json:"active_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRulesRequest) Reset() {
	*x = ListRulesRequest{}
	mi := &file_violation_v1_violation_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRulesRequest) ProtoMessage() {}

func (x *ListRulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRulesRequest.ProtoReflect.Descriptor instead.
func (*ListRulesRequest) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{14}
}

func (x *ListRulesRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ListRulesRequest) GetActiveOnly() bool {
	if x != nil {
		return x.ActiveOnly
	}
	return false
}

type ListRulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rules         []*Rule                `protobuf:"bytes,1,rep,name=rules,proto3" json:"rules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRulesResponse) Reset() {
	*x = ListRulesResponse{}
	mi := &file_violation_v1_violation_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRulesResponse) ProtoMessage() {}

func (x *ListRulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_violation_v1_violation_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRulesResponse.ProtoReflect.Descriptor instead.
func (*ListRulesResponse) Descriptor() ([]byte, []int) {
	return file_violation_v1_violation_proto_rawDescGZIP(), []int{15}
}

func (x *ListRulesResponse) GetRules() []*Rule {
	if x != nil {
		return x.Rules
	}
	return nil
}

var File_violation_v1_violation_proto protoreflect.FileDescriptor

const file_violation_v1_violation_proto_rawDesc = "" +
	"\n" +
	"\x1cviolation/v1/violation.proto\x12\fviolation.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xc2\x02\n" +
	"\x04Rule\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12'\n" +
	"\x0fpenalty_percent\x18\x05 \x01(\x01R\x0epenaltyPercent\x12'\n" +
	"\x0fauto_detectable\x18\x06 \x01(\bR\x0eautoDetectable\x12\x1b\n" +
	"\tis_active\x18\a \x01(\bR\bisActive\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xf3\x02\n" +
	"\tViolation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x03 \x01(\tR\tcompanyId\x12\x17\n" +
	"\arule_id\x18\x04 \x01(\tR\x06ruleId\x125\n" +
	"\x06source\x18\x05 \x01(\x0e2\x1d.violation.v1.ViolationSourceR\x06source\x12\x18\n" +
	"\apenalty\x18\x06 \x01(\x01R\apenalty\x124\n" +
	"\x06reason\x18\a \x01(\v2\x1c.google.protobuf.StringValueR\x06reason\x12;\n" +
	"\n" +
	"created_by\x18\b \x01(\v2\x1c.google.protobuf.StringValueR\tcreatedBy\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x9b\x02\n" +
	"\x16RecordViolationRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x17\n" +
	"\arule_id\x18\x03 \x01(\tR\x06ruleId\x125\n" +
	"\x06source\x18\x04 \x01(\x0e2\x1d.violation.v1.ViolationSourceR\x06source\x124\n" +
	"\x06reason\x18\x05 \x01(\v2\x1c.google.protobuf.StringValueR\x06reason\x12;\n" +
	"\n" +
	"created_by\x18\x06 \x01(\v2\x1c.google.protobuf.StringValueR\tcreatedBy\"P\n" +
	"\x17RecordViolationResponse\x125\n" +
	"\tviolation\x18\x01 \x01(\v2\x17.violation.v1.ViolationR\tviolation\"\x9e\x01\n" +
	"\x1fListViolationsByEmployeeRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12.\n" +
	"\x04from\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\"[\n" +
	" ListViolationsByEmployeeResponse\x127\n" +
	"\n" +
	"violations\x18\x01 \x03(\v2\x17.violation.v1.ViolationR\n" +
	"violations\"\x9b\x01\n" +
	"\x1eListViolationsByCompanyRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12.\n" +
	"\x04from\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\"Z\n" +
	"\x1fListViolationsByCompanyResponse\x127\n" +
	"\n" +
	"violations\x18\x01 \x03(\v2\x17.violation.v1.ViolationR\n" +
	"violations\"\xac\x01\n" +
	"\x11CreateRuleRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12'\n" +
	"\x0fpenalty_percent\x18\x04 \x01(\x01R\x0epenaltyPercent\x12'\n" +
	"\x0fauto_detectable\x18\x05 \x01(\bR\x0eautoDetectable\"<\n" +
	"\x12CreateRuleResponse\x12&\n" +
	"\x04rule\x18\x01 \x01(\v2\x12.violation.v1.RuleR\x04rule\"\x9a\x02\n" +
	"\x11UpdateRuleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x120\n" +
	"\x04name\x18\x02 \x01(\v2\x1c.google.protobuf.StringValueR\x04name\x12E\n" +
	"\x0fpenalty_percent\x18\x03 \x01(\v2\x1c.google.protobuf.DoubleValueR\x0epenaltyPercent\x12C\n" +
	"\x0fauto_detectable\x18\x04 \x01(\v2\x1a.google.protobuf.BoolValueR\x0eautoDetectable\x127\n" +
	"\tis_active\x18\x05 \x01(\v2\x1a.google.protobuf.BoolValueR\bisActive\"<\n" +
	"\x12UpdateRuleResponse\x12&\n" +
	"\x04rule\x18\x01 \x01(\v2\x12.violation.v1.RuleR\x04rule\"'\n" +
	"\x15DeactivateRuleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"@\n" +
	"\x16DeactivateRuleResponse\x12&\n" +
	"\x04rule\x18\x01 \x01(\v2\x12.violation.v1.RuleR\x04rule\"R\n" +
	"\x10ListRulesRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1f\n" +
	"\vactive_only\x18\x02 \x01(\bR\n" +
	"activeOnly\"=\n" +
	"\x11ListRulesResponse\x12(\n" +
	"\x05rules\x18\x01 \x03(\v2\x12.violation.v1.RuleR\x05rules*k\n" +
	"\x0fViolationSource\x12 \n" +
	"\x1cVIOLATION_SOURCE_UNSPECIFIED\x10\x00\x12\x1b\n" +
	"\x17VIOLATION_SOURCE_MANUAL\x10\x01\x12\x19\n" +
	"\x15VIOLATION_SOURCE_AUTO\x10\x022\xb2\x05\n" +
	"\x10ViolationService\x12^\n" +
	"\x0fRecordViolation\x12$.violation.v1.RecordViolationRequest\x1a%.violation.v1.RecordViolationResponse\x12y\n" +
	"\x18ListViolationsByEmployee\x12-.violation.v1.ListViolationsByEmployeeRequest\x1a..violation.v1.ListViolationsByEmployeeResponse\x12v\n" +
	"\x17ListViolationsByCompany\x12,.violation.v1.ListViolationsByCompanyRequest\x1a-.violation.v1.ListViolationsByCompanyResponse\x12O\n" +
	"\n" +
	"CreateRule\x12\x1f.violation.v1.CreateRuleRequest\x1a .violation.v1.CreateRuleResponse\x12O\n" +
	"\n" +
	"UpdateRule\x12\x1f.violation.v1.UpdateRuleRequest\x1a .violation.v1.UpdateRuleResponse\x12[\n" +
	"\x0eDeactivateRule\x12#.violation.v1.DeactivateRuleRequest\x1a$.violation.v1.DeactivateRuleResponse\x12L\n" +
	"\tListRules\x12\x1e.violation.v1.ListRulesRequest\x1a\x1f.violation.v1.ListRulesResponseBTZRgithub.com/crewshift/crewshift/internal/adapters/grpc/gen/violation/v1;violationv1b\x06proto3"

var (
	file_violation_v1_violation_proto_rawDescOnce sync.Once
	file_violation_v1_violation_proto_rawDescData []byte
)

func file_violation_v1_violation_proto_rawDescGZIP() []byte {
	file_violation_v1_violation_proto_rawDescOnce.Do(func() {
		file_violation_v1_violation_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_violation_v1_violation_proto_rawDesc), len(file_violation_v1_violation_proto_rawDesc)))
	})
	return file_violation_v1_violation_proto_rawDescData
}

var file_violation_v1_violation_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_violation_v1_violation_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_violation_v1_violation_proto_goTypes = []any{
	(ViolationSource)(0),                     // 0: violation.v1.ViolationSource
	(*Rule)(nil),                             // 1: violation.v1.Rule
	(*Violation)(nil),                        // 2: violation.v1.Violation
	(*RecordViolationRequest)(nil),           // 3: violation.v1.RecordViolationRequest
	(*RecordViolationResponse)(nil),          // 4: violation.v1.RecordViolationResponse
	(*ListViolationsByEmployeeRequest)(nil),  // 5: violation.v1.ListViolationsByEmployeeRequest
	(*ListViolationsByEmployeeResponse)(nil), // 6: violation.v1.ListViolationsByEmployeeResponse
	(*ListViolationsByCompanyRequest)(nil),   // 7: violation.v1.ListViolationsByCompanyRequest
	(*ListViolationsByCompanyResponse)(nil),  // 8: violation.v1.ListViolationsByCompanyResponse
	(*CreateRuleRequest)(nil),                // 9: violation.v1.CreateRuleRequest
	(*CreateRuleResponse)(nil),               // 10: violation.v1.CreateRuleResponse
	(*UpdateRuleRequest)(nil),                // 11: violation.v1.UpdateRuleRequest
	(*UpdateRuleResponse)(nil),               // 12: violation.v1.UpdateRuleResponse
	(*DeactivateRuleRequest)(nil),            // 13: violation.v1.DeactivateRuleRequest
	(*DeactivateRuleResponse)(nil),           // 14: violation.v1.DeactivateRuleResponse
	(*ListRulesRequest)(nil),                 // 15: violation.v1.ListRulesRequest
	(*ListRulesResponse)(nil),                // 16: violation.v1.ListRulesResponse
	(*timestamppb.Timestamp)(nil),            // 17: google.protobuf.Timestamp
	(*wrapperspb.StringValue)(nil),           // 18: google.protobuf.StringValue
	(*wrapperspb.DoubleValue)(nil),           // 19: google.protobuf.DoubleValue
	(*wrapperspb.BoolValue)(nil),             // 20: google.protobuf.BoolValue
}
var file_violation_v1_violation_proto_depIdxs = []int32{
	17, // 0: violation.v1.Rule.created_at:type_name -> google.protobuf.Timestamp
	17, // 1: violation.v1.Rule.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 2: violation.v1.Violation.source:type_name -> violation.v1.ViolationSource
	18, // 3: violation.v1.Violation.reason:type_name -> google.protobuf.StringValue
	18, // 4: violation.v1.Violation.created_by:type_name -> google.protobuf.StringValue
	17, // 5: violation.v1.Violation.created_at:type_name -> google.protobuf.Timestamp
	0,  // 6: violation.v1.RecordViolationRequest.source:type_name -> violation.v1.ViolationSource
	18, // 7: violation.v1.RecordViolationRequest.reason:type_name -> google.protobuf.StringValue
	18, // 8: violation.v1.RecordViolationRequest.created_by:type_name -> google.protobuf.StringValue
	2,  // 9: violation.v1.RecordViolationResponse.violation:type_name -> violation.v1.Violation
	17, // 10: violation.v1.ListViolationsByEmployeeRequest.from:type_name -> google.protobuf.Timestamp
	17, // 11: violation.v1.ListViolationsByEmployeeRequest.to:type_name -> google.protobuf.Timestamp
	2,  // 12: violation.v1.ListViolationsByEmployeeResponse.violations:type_name -> violation.v1.Violation
	17, // 13: violation.v1.ListViolationsByCompanyRequest.from:type_name -> google.protobuf.Timestamp
	17, // 14: violation.v1.ListViolationsByCompanyRequest.to:type_name -> google.protobuf.Timestamp
	2,  // 15: violation.v1.ListViolationsByCompanyResponse.violations:type_name -> violation.v1.Violation
	1,  // 16: violation.v1.CreateRuleResponse.rule:type_name -> violation.v1.Rule
	18, // 17: violation.v1.UpdateRuleRequest.name:type_name -> google.protobuf.StringValue
	19, // 18: violation.v1.UpdateRuleRequest.penalty_percent:type_name -> google.protobuf.DoubleValue
	20, // 19: violation.v1.UpdateRuleRequest.auto_detectable:type_name -> google.protobuf.BoolValue
	20, // 20: violation.v1.UpdateRuleRequest.is_active:type_name -> google.protobuf.BoolValue
	1,  // 21: violation.v1.UpdateRuleResponse.rule:type_name -> violation.v1.Rule
	1,  // 22: violation.v1.DeactivateRuleResponse.rule:type_name -> violation.v1.Rule
	1,  // 23: violation.v1.ListRulesResponse.rules:type_name -> violation.v1.Rule
	3,  // 24: violation.v1.ViolationService.RecordViolation:input_type -> violation.v1.RecordViolationRequest
	5,  // 25: violation.v1.ViolationService.ListViolationsByEmployee:input_type -> violation.v1.ListViolationsByEmployeeRequest
	7,  // 26: violation.v1.ViolationService.ListViolationsByCompany:input_type -> violation.v1.ListViolationsByCompanyRequest
	9,  // 27: violation.v1.ViolationService.CreateRule:input_type -> violation.v1.CreateRuleRequest
	11, // 28: violation.v1.ViolationService.UpdateRule:input_type -> violation.v1.UpdateRuleRequest
	13, // 29: violation.v1.ViolationService.DeactivateRule:input_type -> violation.v1.DeactivateRuleRequest
	15, // 30: violation.v1.ViolationService.ListRules:input_type -> violation.v1.ListRulesRequest
	4,  // 31: violation.v1.ViolationService.RecordViolation:output_type -> violation.v1.RecordViolationResponse
	6,  // 32: violation.v1.ViolationService.ListViolationsByEmployee:output_type -> violation.v1.ListViolationsByEmployeeResponse
	8,  // 33: violation.v1.ViolationService.ListViolationsByCompany:output_type -> violation.v1.ListViolationsByCompanyResponse
	10, // 34: violation.v1.ViolationService.CreateRule:output_type -> violation.v1.CreateRuleResponse
	12, // 35: violation.v1.ViolationService.UpdateRule:output_type -> violation.v1.UpdateRuleResponse
	14, // 36: violation.v1.ViolationService.DeactivateRule:output_type -> violation.v1.DeactivateRuleResponse
	16, // 37: violation.v1.ViolationService.ListRules:output_type -> violation.v1.ListRulesResponse
	31, // [31:38] is the sub-list for method output_type
	24, // [24:31] is the sub-list for method input_type
	24, // [24:24] is the sub-list for extension type_name
	24, // [24:24] is the sub-list for extension extendee
	0,  // [0:24] is the sub-list for field type_name
}

func init() { file_violation_v1_violation_proto_init() }
func file_violation_v1_violation_proto_init() {
	if File_violation_v1_violation_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_violation_v1_violation_proto_rawDesc), len(file_violation_v1_violation_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_violation_v1_violation_proto_goTypes,
		DependencyIndexes: file_violation_v1_violation_proto_depIdxs,
		EnumInfos:         file_violation_v1_violation_proto_enumTypes,
		MessageInfos:      file_violation_v1_violation_proto_msgTypes,
	}.Build()
	File_violation_v1_violation_proto = out.File
	file_violation_v1_violation_proto_goTypes = nil
	file_violation_v1_violation_proto_depIdxs = nil
}
