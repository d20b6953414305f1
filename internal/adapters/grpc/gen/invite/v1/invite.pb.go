// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: invite/v1/invite.proto

package invitev1

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

type Invite struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Code           string                 `protobuf:"bytes,3,opt,name=code,proto3" json:"code,omitempty"`
	FullName       string                 `protobuf:"bytes,4,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Position       string                 `protobuf:"bytes,5,opt,name=position,proto3" json:"position,omitempty"`
	CreatedAt      *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt      *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	UsedByEmployee string                 `protobuf:"bytes,8,opt,name=used_by_employee,json=usedByEmployee,proto3" json:"used_by_employee,omitempty"`
	UsedAt         *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=used_at,json=usedAt,proto3" json:"used_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Invite) Reset() {
	*x = Invite{}
	mi := &file_invite_v1_invite_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invite) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invite) ProtoMessage() {}

func (x *Invite) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invite.ProtoReflect.Descriptor instead.
func (*Invite) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{0}
}

func (x *Invite) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invite) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Invite) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Invite) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Invite) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *Invite) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Invite) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

func (x *Invite) GetUsedByEmployee() string {
	if x != nil {
		return x.UsedByEmployee
	}
	return ""
}

func (x *Invite) GetUsedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UsedAt
	}
	return nil
}

type LinkedEmployee struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId      string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FullName       string                 `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Position       string                 `protobuf:"bytes,4,opt,name=position,proto3" json:"position,omitempty"`
	TelegramUserId int64                  `protobuf:"varint,5,opt,name=telegram_user_id,json=telegramUserId,proto3" json:"telegram_user_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *LinkedEmployee) Reset() {
	*x = LinkedEmployee{}
	mi := &file_invite_v1_invite_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LinkedEmployee) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LinkedEmployee) ProtoMessage() {}

func (x *LinkedEmployee) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LinkedEmployee.ProtoReflect.Descriptor instead.
func (*LinkedEmployee) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{1}
}

func (x *LinkedEmployee) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *LinkedEmployee) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *LinkedEmployee) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *LinkedEmployee) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *LinkedEmployee) GetTelegramUserId() int64 {
	if x != nil {
		return x.TelegramUserId
	}
	return 0
}

type IssueInviteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Position      string                 `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssueInviteRequest) Reset() {
	*x = IssueInviteRequest{}
	mi := &file_invite_v1_invite_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssueInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssueInviteRequest) ProtoMessage() {}

func (x *IssueInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssueInviteRequest.ProtoReflect.Descriptor instead.
func (*IssueInviteRequest) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{2}
}

func (x *IssueInviteRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *IssueInviteRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *IssueInviteRequest) GetPosition() string {
	if x != nil {
		return x.Position
	}
	return ""
}

func (x *IssueInviteRequest) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type IssueInviteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invite        *Invite                `protobuf:"bytes,1,opt,name=invite,proto3" json:"invite,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssueInviteResponse) Reset() {
	*x = IssueInviteResponse{}
	mi := &file_invite_v1_invite_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssueInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssueInviteResponse) ProtoMessage() {}

func (x *IssueInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssueInviteResponse.ProtoReflect.Descriptor instead.
func (*IssueInviteResponse) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{3}
}

func (x *IssueInviteResponse) GetInvite() *Invite {
	if x != nil {
		return x.Invite
	}
	return nil
}

type RedeemInviteRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Code           string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	TelegramUserId int64                  `protobuf:"varint,2,opt,name=telegram_user_id,json=telegramUserId,proto3" json:"telegram_user_id,omitempty"`
	Timezone       string                 `protobuf:"bytes,3,opt,name=timezone,proto3" json:"timezone,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RedeemInviteRequest) Reset() {
	*x = RedeemInviteRequest{}
	mi := &file_invite_v1_invite_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemInviteRequest) ProtoMessage() {}

func (x *RedeemInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemInviteRequest.ProtoReflect.Descriptor instead.
func (*RedeemInviteRequest) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{4}
}

func (x *RedeemInviteRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *RedeemInviteRequest) GetTelegramUserId() int64 {
	if x != nil {
		return x.TelegramUserId
	}
	return 0
}

func (x *RedeemInviteRequest) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

type RedeemInviteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invite        *Invite                `protobuf:"bytes,1,opt,name=invite,proto3" json:"invite,omitempty"`
	Employee      *LinkedEmployee        `protobuf:"bytes,2,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RedeemInviteResponse) Reset() {
	*x = RedeemInviteResponse{}
	mi := &file_invite_v1_invite_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemInviteResponse) ProtoMessage() {}

func (x *RedeemInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemInviteResponse.ProtoReflect.Descriptor instead.
func (*RedeemInviteResponse) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{5}
}

func (x *RedeemInviteResponse) GetInvite() *Invite {
	if x != nil {
		return x.Invite
	}
	return nil
}

func (x *RedeemInviteResponse) GetEmployee() *LinkedEmployee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type GetInviteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInviteRequest) Reset() {
	*x = GetInviteRequest{}
	mi := &file_invite_v1_invite_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInviteRequest) ProtoMessage() {}

func (x *GetInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInviteRequest.ProtoReflect.Descriptor instead.
func (*GetInviteRequest) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{6}
}

func (x *GetInviteRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type GetInviteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invite        *Invite                `protobuf:"bytes,1,opt,name=invite,proto3" json:"invite,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInviteResponse) Reset() {
	*x = GetInviteResponse{}
	mi := &file_invite_v1_invite_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInviteResponse) ProtoMessage() {}

func (x *GetInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInviteResponse.ProtoReflect.Descriptor instead.
func (*GetInviteResponse) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{7}
}

func (x *GetInviteResponse) GetInvite() *Invite {
	if x != nil {
		return x.Invite
	}
	return nil
}

type CleanupExpiredInvitesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CleanupExpiredInvitesRequest) Reset() {
	*x = CleanupExpiredInvitesRequest{}
	mi := &file_invite_v1_invite_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CleanupExpiredInvitesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CleanupExpiredInvitesRequest) ProtoMessage() {}

func (x *CleanupExpiredInvitesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CleanupExpiredInvitesRequest.ProtoReflect.Descriptor instead.
func (*CleanupExpiredInvitesRequest) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{8}
}

type CleanupExpiredInvitesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int64                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CleanupExpiredInvitesResponse) Reset() {
	*x = CleanupExpiredInvitesResponse{}
	mi := &file_invite_v1_invite_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CleanupExpiredInvitesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CleanupExpiredInvitesResponse) ProtoMessage() {}

func (x *CleanupExpiredInvitesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invite_v1_invite_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CleanupExpiredInvitesResponse.ProtoReflect.Descriptor instead.
func (*CleanupExpiredInvitesResponse) Descriptor() ([]byte, []int) {
	return file_invite_v1_invite_proto_rawDescGZIP(), []int{9}
}

func (x *CleanupExpiredInvitesResponse) GetDeleted() int64 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

var File_invite_v1_invite_proto protoreflect.FileDescriptor

const file_invite_v1_invite_proto_rawDesc = "" +
	"\n" +
	"\x16invite/v1/invite.proto\x12\tinvite.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xd9\x02\n" +
	"\x06Invite\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x12\n" +
	"\x04code\x18\x03 \x01(\tR\x04code\x12\x1b\n" +
	"\tfull_name\x18\x04 \x01(\tR\bfullName\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\tR\bposition\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"expires_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\x12(\n" +
	"\x10used_by_employee\x18\b \x01(\tR\x0eusedByEmployee\x123\n" +
	"\aused_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\x06usedAt\"\xa2\x01\n" +
	"\x0eLinkedEmployee\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfull_name\x18\x03 \x01(\tR\bfullName\x12\x1a\n" +
	"\bposition\x18\x04 \x01(\tR\bposition\x12(\n" +
	"\x10telegram_user_id\x18\x05 \x01(\x03R\x0etelegramUserId\"\xa7\x01\n" +
	"\x12IssueInviteRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x1a\n" +
	"\bposition\x18\x03 \x01(\tR\bposition\x129\n" +
	"\n" +
	"expires_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"@\n" +
	"\x13IssueInviteResponse\x12)\n" +
	"\x06invite\x18\x01 \x01(\v2\x11.invite.v1.InviteR\x06invite\"o\n" +
	"\x13RedeemInviteRequest\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12(\n" +
	"\x10telegram_user_id\x18\x02 \x01(\x03R\x0etelegramUserId\x12\x1a\n" +
	"\btimezone\x18\x03 \x01(\tR\btimezone\"x\n" +
	"\x14RedeemInviteResponse\x12)\n" +
	"\x06invite\x18\x01 \x01(\v2\x11.invite.v1.InviteR\x06invite\x125\n" +
	"\bemployee\x18\x02 \x01(\v2\x19.invite.v1.LinkedEmployeeR\bemployee\"&\n" +
	"\x10GetInviteRequest\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\">\n" +
	"\x11GetInviteResponse\x12)\n" +
	"\x06invite\x18\x01 \x01(\v2\x11.invite.v1.InviteR\x06invite\"\x1e\n" +
	"\x1cCleanupExpiredInvitesRequest\"9\n" +
	"\x1dCleanupExpiredInvitesResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x03R\adeleted2\xe2\x02\n" +
	"\rInviteService\x12L\n" +
	"\vIssueInvite\x12\x1d.invite.v1.IssueInviteRequest\x1a\x1e.invite.v1.IssueInviteResponse\x12O\n" +
	"\fRedeemInvite\x12\x1e.invite.v1.RedeemInviteRequest\x1a\x1f.invite.v1.RedeemInviteResponse\x12F\n" +
	"\tGetInvite\x12\x1b.invite.v1.GetInviteRequest\x1a\x1c.invite.v1.GetInviteResponse\x12j\n" +
	"\x15CleanupExpiredInvites\x12'.invite.v1.CleanupExpiredInvitesRequest\x1a(.invite.v1.CleanupExpiredInvitesResponseBNZLgithub.com/crewshift/crewshift/internal/adapters/grpc/gen/invite/v1;invitev1b\x06proto3"

var (
	file_invite_v1_invite_proto_rawDescOnce sync.Once
	file_invite_v1_invite_proto_rawDescData []byte
)

func file_invite_v1_invite_proto_rawDescGZIP() []byte {
	file_invite_v1_invite_proto_rawDescOnce.Do(func() {
		file_invite_v1_invite_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invite_v1_invite_proto_rawDesc), len(file_invite_v1_invite_proto_rawDesc)))
	})
	return file_invite_v1_invite_proto_rawDescData
}

var file_invite_v1_invite_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_invite_v1_invite_proto_goTypes = []any{
	(*Invite)(nil),                        // 0: invite.v1.Invite
	(*LinkedEmployee)(nil),                // 1: invite.v1.LinkedEmployee
	(*IssueInviteRequest)(nil),            // 2: invite.v1.IssueInviteRequest
	(*IssueInviteResponse)(nil),           // 3: invite.v1.IssueInviteResponse
	(*RedeemInviteRequest)(nil),           // 4: invite.v1.RedeemInviteRequest
	(*RedeemInviteResponse)(nil),          // 5: invite.v1.RedeemInviteResponse
	(*GetInviteRequest)(nil),              // 6: invite.v1.GetInviteRequest
	(*GetInviteResponse)(nil),             // 7: invite.v1.GetInviteResponse
	(*CleanupExpiredInvitesRequest)(nil),  // 8: invite.v1.CleanupExpiredInvitesRequest
	(*CleanupExpiredInvitesResponse)(nil), // 9: invite.v1.CleanupExpiredInvitesResponse
	(*timestamppb.Timestamp)(nil),         // 10: google.protobuf.Timestamp
}
var file_invite_v1_invite_proto_depIdxs = []int32{
	10, // 0: invite.v1.Invite.created_at:type_name -> google.protobuf.Timestamp
	10, // 1: invite.v1.Invite.expires_at:type_name -> google.protobuf.Timestamp
	10, // 2: invite.v1.Invite.used_at:type_name -> google.protobuf.Timestamp
	10, // 3: invite.v1.IssueInviteRequest.expires_at:type_name -> google.protobuf.Timestamp
	0,  // 4: invite.v1.IssueInviteResponse.invite:type_name -> invite.v1.Invite
	0,  // 5: invite.v1.RedeemInviteResponse.invite:type_name -> invite.v1.Invite
	1,  // 6: invite.v1.RedeemInviteResponse.employee:type_name -> invite.v1.LinkedEmployee
	0,  // 7: invite.v1.GetInviteResponse.invite:type_name -> invite.v1.Invite
	2,  // 8: invite.v1.InviteService.IssueInvite:input_type -> invite.v1.IssueInviteRequest
	4,  // 9: invite.v1.InviteService.RedeemInvite:input_type -> invite.v1.RedeemInviteRequest
	6,  // 10: invite.v1.InviteService.GetInvite:input_type -> invite.v1.GetInviteRequest
	8,  // 11: invite.v1.InviteService.CleanupExpiredInvites:input_type -> invite.v1.CleanupExpiredInvitesRequest
	3,  // 12: invite.v1.InviteService.IssueInvite:output_type -> invite.v1.IssueInviteResponse
	5,  // 13: invite.v1.InviteService.RedeemInvite:output_type -> invite.v1.RedeemInviteResponse
	7,  // 14: invite.v1.InviteService.GetInvite:output_type -> invite.v1.GetInviteResponse
	9,  // 15: invite.v1.InviteService.CleanupExpiredInvites:output_type -> invite.v1.CleanupExpiredInvitesResponse
	12, // [12:16] is the sub-list for method output_type
	8,  // [8:12] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_invite_v1_invite_proto_init() }
func file_invite_v1_invite_proto_init() {
	if File_invite_v1_invite_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invite_v1_invite_proto_rawDesc), len(file_invite_v1_invite_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invite_v1_invite_proto_goTypes,
		DependencyIndexes: file_invite_v1_invite_proto_depIdxs,
		MessageInfos:      file_invite_v1_invite_proto_msgTypes,
	}.Build()
	File_invite_v1_invite_proto = out.File
	file_invite_v1_invite_proto_goTypes = nil
	file_invite_v1_invite_proto_depIdxs = nil
}
