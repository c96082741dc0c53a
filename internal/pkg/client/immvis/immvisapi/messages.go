// Package immvisapi contains the message types and the gRPC stub of the ImmVis
// service described in immvis.proto.
//
// Messages are plain structs carrying protobuf struct tags. They implement the
// legacy proto message interface, so the default gRPC codec marshals them through
// protoadapt without a compiled descriptor.
package immvisapi

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

var (
	_ protoadapt.MessageV1 = (*Void)(nil)
	_ protoadapt.MessageV1 = (*OpenDatasetFileRequest)(nil)
	_ protoadapt.MessageV1 = (*OpenDatasetFileResponse)(nil)
	_ protoadapt.MessageV1 = (*Dimension)(nil)
	_ protoadapt.MessageV1 = (*DimensionInfo)(nil)
	_ protoadapt.MessageV1 = (*Feature)(nil)
	_ protoadapt.MessageV1 = (*DimensionData)(nil)
	_ protoadapt.MessageV1 = (*KMeansRequest)(nil)
	_ protoadapt.MessageV1 = (*KMeansCentroid)(nil)
	_ protoadapt.MessageV1 = (*DataRow)(nil)
	_ protoadapt.MessageV1 = (*CorrelationRequest)(nil)
	_ protoadapt.MessageV1 = (*CorrelationResult)(nil)
)

func messageString(m protoadapt.MessageV1) string {
	return prototext.MarshalOptions{}.Format(protoadapt.MessageV2Of(m))
}

type Void struct{}

func (x *Void) Reset()         { *x = Void{} }
func (x *Void) String() string { return messageString(x) }
func (*Void) ProtoMessage()    {}

type OpenDatasetFileRequest struct {
	FilePath string `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
}

func (x *OpenDatasetFileRequest) Reset()         { *x = OpenDatasetFileRequest{} }
func (x *OpenDatasetFileRequest) String() string { return messageString(x) }
func (*OpenDatasetFileRequest) ProtoMessage()    {}

func (x *OpenDatasetFileRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

type OpenDatasetFileResponse struct {
	ResponseCode int32 `protobuf:"varint,1,opt,name=response_code,json=responseCode,proto3" json:"response_code,omitempty"`
}

func (x *OpenDatasetFileResponse) Reset()         { *x = OpenDatasetFileResponse{} }
func (x *OpenDatasetFileResponse) String() string { return messageString(x) }
func (*OpenDatasetFileResponse) ProtoMessage()    {}

func (x *OpenDatasetFileResponse) GetResponseCode() int32 {
	if x != nil {
		return x.ResponseCode
	}
	return 0
}

type Dimension struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *Dimension) Reset()         { *x = Dimension{} }
func (x *Dimension) String() string { return messageString(x) }
func (*Dimension) ProtoMessage()    {}

func (x *Dimension) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type DimensionInfo struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
}

func (x *DimensionInfo) Reset()         { *x = DimensionInfo{} }
func (x *DimensionInfo) String() string { return messageString(x) }
func (*DimensionInfo) ProtoMessage()    {}

func (x *DimensionInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DimensionInfo) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

// Feature is a single descriptive statistic of a dimension, e.g. name "mean".
type Feature struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (x *Feature) Reset()         { *x = Feature{} }
func (x *Feature) String() string { return messageString(x) }
func (*Feature) ProtoMessage()    {}

func (x *Feature) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Feature) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

// DimensionData carries the values of one dimension, or a per-row mapping
// (outliers, cluster ids) encoded as strings.
type DimensionData struct {
	Dimension string   `protobuf:"bytes,1,opt,name=dimension,proto3" json:"dimension,omitempty"`
	Data      []string `protobuf:"bytes,2,rep,name=data,proto3" json:"data,omitempty"`
}

func (x *DimensionData) Reset()         { *x = DimensionData{} }
func (x *DimensionData) String() string { return messageString(x) }
func (*DimensionData) ProtoMessage()    {}

func (x *DimensionData) GetDimension() string {
	if x != nil {
		return x.Dimension
	}
	return ""
}

func (x *DimensionData) GetData() []string {
	if x != nil {
		return x.Data
	}
	return nil
}

type KMeansRequest struct {
	NumClusters int32        `protobuf:"varint,1,opt,name=num_clusters,json=numClusters,proto3" json:"num_clusters,omitempty"`
	Dimensions  []*Dimension `protobuf:"bytes,2,rep,name=dimensions,proto3" json:"dimensions,omitempty"`
}

func (x *KMeansRequest) Reset()         { *x = KMeansRequest{} }
func (x *KMeansRequest) String() string { return messageString(x) }
func (*KMeansRequest) ProtoMessage()    {}

func (x *KMeansRequest) GetNumClusters() int32 {
	if x != nil {
		return x.NumClusters
	}
	return 0
}

func (x *KMeansRequest) GetDimensions() []*Dimension {
	if x != nil {
		return x.Dimensions
	}
	return nil
}

type KMeansCentroid struct {
	Data []string `protobuf:"bytes,1,rep,name=data,proto3" json:"data,omitempty"`
}

func (x *KMeansCentroid) Reset()         { *x = KMeansCentroid{} }
func (x *KMeansCentroid) String() string { return messageString(x) }
func (*KMeansCentroid) ProtoMessage()    {}

func (x *KMeansCentroid) GetData() []string {
	if x != nil {
		return x.Data
	}
	return nil
}

type DataRow struct {
	Data []string `protobuf:"bytes,1,rep,name=data,proto3" json:"data,omitempty"`
}

func (x *DataRow) Reset()         { *x = DataRow{} }
func (x *DataRow) String() string { return messageString(x) }
func (*DataRow) ProtoMessage()    {}

func (x *DataRow) GetData() []string {
	if x != nil {
		return x.Data
	}
	return nil
}

type CorrelationRequest struct {
	Dimension1 *Dimension `protobuf:"bytes,1,opt,name=dimension1,proto3" json:"dimension1,omitempty"`
	Dimension2 *Dimension `protobuf:"bytes,2,opt,name=dimension2,proto3" json:"dimension2,omitempty"`
}

func (x *CorrelationRequest) Reset()         { *x = CorrelationRequest{} }
func (x *CorrelationRequest) String() string { return messageString(x) }
func (*CorrelationRequest) ProtoMessage()    {}

func (x *CorrelationRequest) GetDimension1() *Dimension {
	if x != nil {
		return x.Dimension1
	}
	return nil
}

func (x *CorrelationRequest) GetDimension2() *Dimension {
	if x != nil {
		return x.Dimension2
	}
	return nil
}

type CorrelationResult struct {
	Result float32 `protobuf:"fixed32,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (x *CorrelationResult) Reset()         { *x = CorrelationResult{} }
func (x *CorrelationResult) String() string { return messageString(x) }
func (*CorrelationResult) ProtoMessage()    {}

func (x *CorrelationResult) GetResult() float32 {
	if x != nil {
		return x.Result
	}
	return 0
}
