// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: extractor/v1/extractor.proto

package extractorv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type ProcessDocumentRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	NaccId int32                  `protobuf:"varint,1,opt,name=nacc_id,json=naccId,proto3" json:"nacc_id,omitempty"`
	Name   string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	// recognized text, one entry per page, in page order
	Pages         []string `protobuf:"bytes,3,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetNaccId() int32 {
	if x != nil {
		return x.NaccId
	}
	return 0
}

func (x *ProcessDocumentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ProcessDocumentRequest) GetPages() []string {
	if x != nil {
		return x.Pages
	}
	return nil
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{2}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type Document struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NaccId       int32                  `protobuf:"varint,2,opt,name=nacc_id,json=naccId,proto3" json:"nacc_id,omitempty"`
	Name         string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	PageCount    int32                  `protobuf:"varint,4,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	Mode         string                 `protobuf:"bytes,5,opt,name=mode,proto3" json:"mode,omitempty"`
	Status       string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Confidence   float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ErrorMessage string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	// relational projection, table name -> rows, JSON-encoded
	RecordsJson   string `protobuf:"bytes,9,opt,name=records_json,json=recordsJson,proto3" json:"records_json,omitempty"`
	CreatedAt     string `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{3}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetNaccId() int32 {
	if x != nil {
		return x.NaccId
	}
	return 0
}

func (x *Document) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetRecordsJson() string {
	if x != nil {
		return x.RecordsJson
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListVerdictsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerdictsRequest) Reset() {
	*x = ListVerdictsRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerdictsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerdictsRequest) ProtoMessage() {}

func (x *ListVerdictsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerdictsRequest.ProtoReflect.Descriptor instead.
func (*ListVerdictsRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{5}
}

func (x *ListVerdictsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type Verdict struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rule          string                 `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	Passed        bool                   `protobuf:"varint,3,opt,name=passed,proto3" json:"passed,omitempty"`
	Detail        string                 `protobuf:"bytes,4,opt,name=detail,proto3" json:"detail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Verdict) Reset() {
	*x = Verdict{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Verdict) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Verdict) ProtoMessage() {}

func (x *Verdict) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Verdict.ProtoReflect.Descriptor instead.
func (*Verdict) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{6}
}

func (x *Verdict) GetRule() string {
	if x != nil {
		return x.Rule
	}
	return ""
}

func (x *Verdict) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Verdict) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *Verdict) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

type ListVerdictsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Verdicts      []*Verdict             `protobuf:"bytes,1,rep,name=verdicts,proto3" json:"verdicts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVerdictsResponse) Reset() {
	*x = ListVerdictsResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVerdictsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVerdictsResponse) ProtoMessage() {}

func (x *ListVerdictsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVerdictsResponse.ProtoReflect.Descriptor instead.
func (*ListVerdictsResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{7}
}

func (x *ListVerdictsResponse) GetVerdicts() []*Verdict {
	if x != nil {
		return x.Verdicts
	}
	return nil
}

type ExportRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentIds   []string               `protobuf:"bytes,1,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecordsRequest) Reset() {
	*x = ExportRecordsRequest{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecordsRequest) ProtoMessage() {}

func (x *ExportRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecordsRequest.ProtoReflect.Descriptor instead.
func (*ExportRecordsRequest) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{8}
}

func (x *ExportRecordsRequest) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

type ExportRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecordsResponse) Reset() {
	*x = ExportRecordsResponse{}
	mi := &file_extractor_v1_extractor_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecordsResponse) ProtoMessage() {}

func (x *ExportRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extractor_v1_extractor_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecordsResponse.ProtoReflect.Descriptor instead.
func (*ExportRecordsResponse) Descriptor() ([]byte, []int) {
	return file_extractor_v1_extractor_proto_rawDescGZIP(), []int{9}
}

func (x *ExportRecordsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportRecordsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_extractor_v1_extractor_proto protoreflect.FileDescriptor

const file_extractor_v1_extractor_proto_rawDesc = "" +
	"\n" +
	"\x1cextractor/v1/extractor.proto\x12\fextractor.v1\"[\n" +
	"\x16ProcessDocumentRequest\x12\x17\n" +
	"\anacc_id\x18\x01 \x01(\x05R\x06naccId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05pages\x18\x03 \x03(\tR\x05pages\"R\n" +
	"\x17ProcessDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xb8\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\anacc_id\x18\x02 \x01(\x05R\x06naccId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"page_count\x18\x04 \x01(\x05R\tpageCount\x12\x12\n" +
	"\x04mode\x18\x05 \x01(\tR\x04mode\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12!\n" +
	"\frecords_json\x18\t \x01(\tR\vrecordsJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"I\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.extractor.v1.DocumentR\bdocument\"6\n" +
	"\x13ListVerdictsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"i\n" +
	"\aVerdict\x12\x12\n" +
	"\x04rule\x18\x01 \x01(\tR\x04rule\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x16\n" +
	"\x06passed\x18\x03 \x01(\bR\x06passed\x12\x16\n" +
	"\x06detail\x18\x04 \x01(\tR\x06detail\"I\n" +
	"\x14ListVerdictsResponse\x121\n" +
	"\bverdicts\x18\x01 \x03(\v2\x15.extractor.v1.VerdictR\bverdicts\"9\n" +
	"\x14ExportRecordsRequest\x12!\n" +
	"\fdocument_ids\x18\x01 \x03(\tR\vdocumentIds\"G\n" +
	"\x15ExportRecordsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xf7\x02\n" +
	"\x10ExtractorService\x12^\n" +
	"\x0fProcessDocument\x12$.extractor.v1.ProcessDocumentRequest\x1a%.extractor.v1.ProcessDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .extractor.v1.GetDocumentRequest\x1a!.extractor.v1.GetDocumentResponse\x12U\n" +
	"\fListVerdicts\x12!.extractor.v1.ListVerdictsRequest\x1a\".extractor.v1.ListVerdictsResponse\x12X\n" +
	"\rExportRecords\x12\".extractor.v1.ExportRecordsRequest\x1a#.extractor.v1.ExportRecordsResponseBHZFgithub.com/opennacc/declaration-extractor/gen/extractor/v1;extractorv1b\x06proto3"

var (
	file_extractor_v1_extractor_proto_rawDescOnce sync.Once
	file_extractor_v1_extractor_proto_rawDescData []byte
)

func file_extractor_v1_extractor_proto_rawDescGZIP() []byte {
	file_extractor_v1_extractor_proto_rawDescOnce.Do(func() {
		file_extractor_v1_extractor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extractor_v1_extractor_proto_rawDesc), len(file_extractor_v1_extractor_proto_rawDesc)))
	})
	return file_extractor_v1_extractor_proto_rawDescData
}

var file_extractor_v1_extractor_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_extractor_v1_extractor_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),  // 0: extractor.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil), // 1: extractor.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),      // 2: extractor.v1.GetDocumentRequest
	(*Document)(nil),                // 3: extractor.v1.Document
	(*GetDocumentResponse)(nil),     // 4: extractor.v1.GetDocumentResponse
	(*ListVerdictsRequest)(nil),     // 5: extractor.v1.ListVerdictsRequest
	(*Verdict)(nil),                 // 6: extractor.v1.Verdict
	(*ListVerdictsResponse)(nil),    // 7: extractor.v1.ListVerdictsResponse
	(*ExportRecordsRequest)(nil),    // 8: extractor.v1.ExportRecordsRequest
	(*ExportRecordsResponse)(nil),   // 9: extractor.v1.ExportRecordsResponse
}
var file_extractor_v1_extractor_proto_depIdxs = []int32{
	3, // 0: extractor.v1.GetDocumentResponse.document:type_name -> extractor.v1.Document
	6, // 1: extractor.v1.ListVerdictsResponse.verdicts:type_name -> extractor.v1.Verdict
	0, // 2: extractor.v1.ExtractorService.ProcessDocument:input_type -> extractor.v1.ProcessDocumentRequest
	2, // 3: extractor.v1.ExtractorService.GetDocument:input_type -> extractor.v1.GetDocumentRequest
	5, // 4: extractor.v1.ExtractorService.ListVerdicts:input_type -> extractor.v1.ListVerdictsRequest
	8, // 5: extractor.v1.ExtractorService.ExportRecords:input_type -> extractor.v1.ExportRecordsRequest
	1, // 6: extractor.v1.ExtractorService.ProcessDocument:output_type -> extractor.v1.ProcessDocumentResponse
	4, // 7: extractor.v1.ExtractorService.GetDocument:output_type -> extractor.v1.GetDocumentResponse
	7, // 8: extractor.v1.ExtractorService.ListVerdicts:output_type -> extractor.v1.ListVerdictsResponse
	9, // 9: extractor.v1.ExtractorService.ExportRecords:output_type -> extractor.v1.ExportRecordsResponse
	6, // [6:10] is the sub-list for method output_type
	2, // [2:6] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_extractor_v1_extractor_proto_init() }
func file_extractor_v1_extractor_proto_init() {
	if File_extractor_v1_extractor_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extractor_v1_extractor_proto_rawDesc), len(file_extractor_v1_extractor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_extractor_v1_extractor_proto_goTypes,
		DependencyIndexes: file_extractor_v1_extractor_proto_depIdxs,
		MessageInfos:      file_extractor_v1_extractor_proto_msgTypes,
	}.Build()
	File_extractor_v1_extractor_proto = out.File
	file_extractor_v1_extractor_proto_goTypes = nil
	file_extractor_v1_extractor_proto_depIdxs = nil
}
