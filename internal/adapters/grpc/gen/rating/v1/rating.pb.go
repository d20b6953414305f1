// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: rating/v1/rating.proto

package ratingv1

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

type RatingStatus int32

const (
	RatingStatus_RATING_STATUS_UNSPECIFIED       RatingStatus = 0
	RatingStatus_RATING_STATUS_COMPUTED          RatingStatus = 1
	RatingStatus_RATING_STATUS_MANUALLY_ADJUSTED RatingStatus = 2
)

// Enum value maps for RatingStatus.
var (
	RatingStatus_name = map[int32]string{
		0: "RATING_STATUS_UNSPECIFIED",
		1: "RATING_STATUS_COMPUTED",
		2: "RATING_STATUS_MANUALLY_ADJUSTED",
	}
	RatingStatus_value = map[string]int32{
		"RATING_STATUS_UNSPECIFIED":       0,
		"RATING_STATUS_COMPUTED":          1,
		"RATING_STATUS_MANUALLY_ADJUSTED": 2,
	}
)

func (x RatingStatus) Enum() *RatingStatus {
	p := new(RatingStatus)
	*p = x
	return p
}

func (x RatingStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RatingStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_rating_v1_rating_proto_enumTypes[0].Descriptor()
}

func (RatingStatus) Type() protoreflect.EnumType {
	return &file_rating_v1_rating_proto_enumTypes[0]
}

func (x RatingStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RatingStatus.Descriptor instead.
func (RatingStatus) EnumDescriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{0}
}

type EmployeeRating struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	PeriodStart   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`
	PeriodEnd     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`
	Rating        float64                `protobuf:"fixed64,5,opt,name=rating,proto3" json:"rating,omitempty"`
	Status        RatingStatus           `protobuf:"varint,6,opt,name=status,proto3,enum=rating.v1.RatingStatus" json:"status,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmployeeRating) Reset() {
	*x = EmployeeRating{}
	mi := &file_rating_v1_rating_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmployeeRating) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmployeeRating) ProtoMessage() {}

func (x *EmployeeRating) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmployeeRating.ProtoReflect.Descriptor instead.
func (*EmployeeRating) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{0}
}

func (x *EmployeeRating) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *EmployeeRating) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *EmployeeRating) GetPeriodStart() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodStart
	}
	return nil
}

func (x *EmployeeRating) GetPeriodEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodEnd
	}
	return nil
}

func (x *EmployeeRating) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *EmployeeRating) GetStatus() RatingStatus {
	if x != nil {
		return x.Status
	}
	return RatingStatus_RATING_STATUS_UNSPECIFIED
}

func (x *EmployeeRating) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type RecalculateRatingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	PeriodStart   *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`
	PeriodEnd     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecalculateRatingRequest) Reset() {
	*x = RecalculateRatingRequest{}
	mi := &file_rating_v1_rating_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecalculateRatingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecalculateRatingRequest) ProtoMessage() {}

func (x *RecalculateRatingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecalculateRatingRequest.ProtoReflect.Descriptor instead.
func (*RecalculateRatingRequest) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{1}
}

func (x *RecalculateRatingRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *RecalculateRatingRequest) GetPeriodStart() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodStart
	}
	return nil
}

func (x *RecalculateRatingRequest) GetPeriodEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodEnd
	}
	return nil
}

type RecalculateRatingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rating        *EmployeeRating        `protobuf:"bytes,1,opt,name=rating,proto3" json:"rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecalculateRatingResponse) Reset() {
	*x = RecalculateRatingResponse{}
	mi := &file_rating_v1_rating_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecalculateRatingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecalculateRatingResponse) ProtoMessage() {}

func (x *RecalculateRatingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecalculateRatingResponse.ProtoReflect.Descriptor instead.
func (*RecalculateRatingResponse) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{2}
}

func (x *RecalculateRatingResponse) GetRating() *EmployeeRating {
	if x != nil {
		return x.Rating
	}
	return nil
}

type AdjustRatingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Delta         float64                `protobuf:"fixed64,2,opt,name=delta,proto3" json:"delta,omitempty"`
	PeriodStart   *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`
	PeriodEnd     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdjustRatingRequest) Reset() {
	*x = AdjustRatingRequest{}
	mi := &file_rating_v1_rating_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdjustRatingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdjustRatingRequest) ProtoMessage() {}

func (x *AdjustRatingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdjustRatingRequest.ProtoReflect.Descriptor instead.
func (*AdjustRatingRequest) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{3}
}

func (x *AdjustRatingRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *AdjustRatingRequest) GetDelta() float64 {
	if x != nil {
		return x.Delta
	}
	return 0
}

func (x *AdjustRatingRequest) GetPeriodStart() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodStart
	}
	return nil
}

func (x *AdjustRatingRequest) GetPeriodEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodEnd
	}
	return nil
}

type AdjustRatingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rating        *EmployeeRating        `protobuf:"bytes,1,opt,name=rating,proto3" json:"rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdjustRatingResponse) Reset() {
	*x = AdjustRatingResponse{}
	mi := &file_rating_v1_rating_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdjustRatingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdjustRatingResponse) ProtoMessage() {}

func (x *AdjustRatingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdjustRatingResponse.ProtoReflect.Descriptor instead.
func (*AdjustRatingResponse) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{4}
}

func (x *AdjustRatingResponse) GetRating() *EmployeeRating {
	if x != nil {
		return x.Rating
	}
	return nil
}

type GetCurrentRatingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentRatingRequest) Reset() {
	*x = GetCurrentRatingRequest{}
	mi := &file_rating_v1_rating_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentRatingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentRatingRequest) ProtoMessage() {}

func (x *GetCurrentRatingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentRatingRequest.ProtoReflect.Descriptor instead.
func (*GetCurrentRatingRequest) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{5}
}

func (x *GetCurrentRatingRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type GetCurrentRatingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rating        *EmployeeRating        `protobuf:"bytes,1,opt,name=rating,proto3" json:"rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurrentRatingResponse) Reset() {
	*x = GetCurrentRatingResponse{}
	mi := &file_rating_v1_rating_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurrentRatingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurrentRatingResponse) ProtoMessage() {}

func (x *GetCurrentRatingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurrentRatingResponse.ProtoReflect.Descriptor instead.
func (*GetCurrentRatingResponse) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{6}
}

func (x *GetCurrentRatingResponse) GetRating() *EmployeeRating {
	if x != nil {
		return x.Rating
	}
	return nil
}

type GetRatingForPeriodRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	PeriodStart   *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`
	PeriodEnd     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRatingForPeriodRequest) Reset() {
	*x = GetRatingForPeriodRequest{}
	mi := &file_rating_v1_rating_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRatingForPeriodRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRatingForPeriodRequest) ProtoMessage() {}

func (x *GetRatingForPeriodRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRatingForPeriodRequest.ProtoReflect.Descriptor instead.
func (*GetRatingForPeriodRequest) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{7}
}

func (x *GetRatingForPeriodRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *GetRatingForPeriodRequest) GetPeriodStart() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodStart
	}
	return nil
}

func (x *GetRatingForPeriodRequest) GetPeriodEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.PeriodEnd
	}
	return nil
}

type GetRatingForPeriodResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rating        *EmployeeRating        `protobuf:"bytes,1,opt,name=rating,proto3" json:"rating,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRatingForPeriodResponse) Reset() {
	*x = GetRatingForPeriodResponse{}
	mi := &file_rating_v1_rating_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRatingForPeriodResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRatingForPeriodResponse) ProtoMessage() {}

func (x *GetRatingForPeriodResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rating_v1_rating_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRatingForPeriodResponse.ProtoReflect.Descriptor instead.
func (*GetRatingForPeriodResponse) Descriptor() ([]byte, []int) {
	return file_rating_v1_rating_proto_rawDescGZIP(), []int{8}
}

func (x *GetRatingForPeriodResponse) GetRating() *EmployeeRating {
	if x != nil {
		return x.Rating
	}
	return nil
}

var File_rating_v1_rating_proto protoreflect.FileDescriptor

const file_rating_v1_rating_proto_rawDesc = "" +
	"\n" +
	"\x16rating/v1/rating.proto\x12\trating.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xce\x02\n" +
	"\x0eEmployeeRating\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12=\n" +
	"\fperiod_start\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\vperiodStart\x129\n" +
	"\n" +
	"period_end\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tperiodEnd\x12\x16\n" +
	"\x06rating\x18\x05 \x01(\x01R\x06rating\x12/\n" +
	"\x06status\x18\x06 \x01(\x0e2\x17.rating.v1.RatingStatusR\x06status\x129\n" +
	"\n" +
	"updated_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xb5\x01\n" +
	"\x18RecalculateRatingRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12=\n" +
	"\fperiod_start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\vperiodStart\x129\n" +
	"\n" +
	"period_end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tperiodEnd\"N\n" +
	"\x19RecalculateRatingResponse\x121\n" +
	"\x06rating\x18\x01 \x01(\v2\x19.rating.v1.EmployeeRatingR\x06rating\"\xc6\x01\n" +
	"\x13AdjustRatingRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x14\n" +
	"\x05delta\x18\x02 \x01(\x01R\x05delta\x12=\n" +
	"\fperiod_start\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\vperiodStart\x129\n" +
	"\n" +
	"period_end\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tperiodEnd\"I\n" +
	"\x14AdjustRatingResponse\x121\n" +
	"\x06rating\x18\x01 \x01(\v2\x19.rating.v1.EmployeeRatingR\x06rating\":\n" +
	"\x17GetCurrentRatingRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"M\n" +
	"\x18GetCurrentRatingResponse\x121\n" +
	"\x06rating\x18\x01 \x01(\v2\x19.rating.v1.EmployeeRatingR\x06rating\"\xb6\x01\n" +
	"\x19GetRatingForPeriodRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12=\n" +
	"\fperiod_start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\vperiodStart\x129\n" +
	"\n" +
	"period_end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tperiodEnd\"O\n" +
	"\x1aGetRatingForPeriodResponse\x121\n" +
	"\x06rating\x18\x01 \x01(\v2\x19.rating.v1.EmployeeRatingR\x06rating*n\n" +
	"\fRatingStatus\x12\x1d\n" +
	"\x19RATING_STATUS_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16RATING_STATUS_COMPUTED\x10\x01\x12#\n" +
	"\x1fRATING_STATUS_MANUALLY_ADJUSTED\x10\x022\x80\x03\n" +
	"\rRatingService\x12^\n" +
	"\x11RecalculateRating\x12#.rating.v1.RecalculateRatingRequest\x1a$.rating.v1.RecalculateRatingResponse\x12O\n" +
	"\fAdjustRating\x12\x1e.rating.v1.AdjustRatingRequest\x1a\x1f.rating.v1.AdjustRatingResponse\x12[\n" +
	"\x10GetCurrentRating\x12\".rating.v1.GetCurrentRatingRequest\x1a#.rating.v1.GetCurrentRatingResponse\x12a\n" +
	"\x12GetRatingForPeriod\x12$.rating.v1.GetRatingForPeriodRequest\x1a%.rating.v1.GetRatingForPeriodResponseBNZLgithub.com/crewshift/crewshift/internal/adapters/grpc/gen/rating/v1;ratingv1b\x06proto3"

var (
	file_rating_v1_rating_proto_rawDescOnce sync.Once
	file_rating_v1_rating_proto_rawDescData []byte
)

func file_rating_v1_rating_proto_rawDescGZIP() []byte {
	file_rating_v1_rating_proto_rawDescOnce.Do(func() {
		file_rating_v1_rating_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rating_v1_rating_proto_rawDesc), len(file_rating_v1_rating_proto_rawDesc)))
	})
	return file_rating_v1_rating_proto_rawDescData
}

var file_rating_v1_rating_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_rating_v1_rating_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_rating_v1_rating_proto_goTypes = []any{
	(RatingStatus)(0),                  // 0: rating.v1.RatingStatus
	(*EmployeeRating)(nil),             // 1: rating.v1.EmployeeRating
	(*RecalculateRatingRequest)(nil),   // 2: rating.v1.RecalculateRatingRequest
	(*RecalculateRatingResponse)(nil),  // 3: rating.v1.RecalculateRatingResponse
	(*AdjustRatingRequest)(nil),        // 4: rating.v1.AdjustRatingRequest
	(*AdjustRatingResponse)(nil),       // 5: rating.v1.AdjustRatingResponse
	(*GetCurrentRatingRequest)(nil),    // 6: rating.v1.GetCurrentRatingRequest
	(*GetCurrentRatingResponse)(nil),   // 7: rating.v1.GetCurrentRatingResponse
	(*GetRatingForPeriodRequest)(nil),  // 8: rating.v1.GetRatingForPeriodRequest
	(*GetRatingForPeriodResponse)(nil), // 9: rating.v1.GetRatingForPeriodResponse
	(*timestamppb.Timestamp)(nil),      // 10: google.protobuf.Timestamp
}
var file_rating_v1_rating_proto_depIdxs = []int32{
	10, // 0: rating.v1.EmployeeRating.period_start:type_name -> google.protobuf.Timestamp
	10, // 1: rating.v1.EmployeeRating.period_end:type_name -> google.protobuf.Timestamp
	0,  // 2: rating.v1.EmployeeRating.status:type_name -> rating.v1.RatingStatus
	10, // 3: rating.v1.EmployeeRating.updated_at:type_name -> google.protobuf.Timestamp
	10, // 4: rating.v1.RecalculateRatingRequest.period_start:type_name -> google.protobuf.Timestamp
	10, // 5: rating.v1.RecalculateRatingRequest.period_end:type_name -> google.protobuf.Timestamp
	1,  // 6: rating.v1.RecalculateRatingResponse.rating:type_name -> rating.v1.EmployeeRating
	10, // 7: rating.v1.AdjustRatingRequest.period_start:type_name -> google.protobuf.Timestamp
	10, // 8: rating.v1.AdjustRatingRequest.period_end:type_name -> google.protobuf.Timestamp
	1,  // 9: rating.v1.AdjustRatingResponse.rating:type_name -> rating.v1.EmployeeRating
	1,  // 10: rating.v1.GetCurrentRatingResponse.rating:type_name -> rating.v1.EmployeeRating
	10, // 11: rating.v1.GetRatingForPeriodRequest.period_start:type_name -> google.protobuf.Timestamp
	10, // 12: rating.v1.GetRatingForPeriodRequest.period_end:type_name -> google.protobuf.Timestamp
	1,  // 13: rating.v1.GetRatingForPeriodResponse.rating:type_name -> rating.v1.EmployeeRating
	2,  // 14: rating.v1.RatingService.RecalculateRating:input_type -> rating.v1.RecalculateRatingRequest
	4,  // 15: rating.v1.RatingService.AdjustRating:input_type -> rating.v1.AdjustRatingRequest
	6,  // 16: rating.v1.RatingService.GetCurrentRating:input_type -> rating.v1.GetCurrentRatingRequest
	8,  // 17: rating.v1.RatingService.GetRatingForPeriod:input_type -> rating.v1.GetRatingForPeriodRequest
	3,  // 18: rating.v1.RatingService.RecalculateRating:output_type -> rating.v1.RecalculateRatingResponse
	5,  // 19: rating.v1.RatingService.AdjustRating:output_type -> rating.v1.AdjustRatingResponse
	7,  // 20: rating.v1.RatingService.GetCurrentRating:output_type -> rating.v1.GetCurrentRatingResponse
	9,  // 21: rating.v1.RatingService.GetRatingForPeriod:output_type -> rating.v1.GetRatingForPeriodResponse
	18, // [18:22] is the sub-list for method output_type
	14, // [14:18] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_rating_v1_rating_proto_init() }
func file_rating_v1_rating_proto_init() {
	if File_rating_v1_rating_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rating_v1_rating_proto_rawDesc), len(file_rating_v1_rating_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_rating_v1_rating_proto_goTypes,
		DependencyIndexes: file_rating_v1_rating_proto_depIdxs,
		EnumInfos:         file_rating_v1_rating_proto_enumTypes,
		MessageInfos:      file_rating_v1_rating_proto_msgTypes,
	}.Build()
	File_rating_v1_rating_proto = out.File
	file_rating_v1_rating_proto_goTypes = nil
	file_rating_v1_rating_proto_depIdxs = nil
}
