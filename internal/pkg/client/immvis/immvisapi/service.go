package immvisapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "ImmVis"

const (
	ImmVis_OpenDatasetFile_FullMethodName                    = "/ImmVis/OpenDatasetFile"
	ImmVis_GetDatasetDimensions_FullMethodName               = "/ImmVis/GetDatasetDimensions"
	ImmVis_GetDimensionDescriptiveStatistics_FullMethodName  = "/ImmVis/GetDimensionDescriptiveStatistics"
	ImmVis_GetDimensionInfo_FullMethodName                   = "/ImmVis/GetDimensionInfo"
	ImmVis_GetOutlierMapping_FullMethodName                  = "/ImmVis/GetOutlierMapping"
	ImmVis_GetKMeansCentroids_FullMethodName                 = "/ImmVis/GetKMeansCentroids"
	ImmVis_GetKMeansClusterMapping_FullMethodName            = "/ImmVis/GetKMeansClusterMapping"
	ImmVis_GetDimensionData_FullMethodName                   = "/ImmVis/GetDimensionData"
	ImmVis_GetDatasetValues_FullMethodName                   = "/ImmVis/GetDatasetValues"
	ImmVis_GetCorrelationBetweenTwoDimensions_FullMethodName = "/ImmVis/GetCorrelationBetweenTwoDimensions"
	ImmVis_GetCorrelationMatrix_FullMethodName               = "/ImmVis/GetCorrelationMatrix"
)

// ImmVisClient is the client API for the ImmVis service.
type ImmVisClient interface {
	OpenDatasetFile(ctx context.Context, in *OpenDatasetFileRequest, opts ...grpc.CallOption) (*OpenDatasetFileResponse, error)
	GetDatasetDimensions(ctx context.Context, in *Void, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DimensionInfo], error)
	GetDimensionDescriptiveStatistics(ctx context.Context, in *Dimension, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Feature], error)
	GetDimensionInfo(ctx context.Context, in *Dimension, opts ...grpc.CallOption) (*DimensionInfo, error)
	GetOutlierMapping(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Dimension, DimensionData], error)
	GetKMeansCentroids(ctx context.Context, in *KMeansRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[KMeansCentroid], error)
	GetKMeansClusterMapping(ctx context.Context, in *KMeansRequest, opts ...grpc.CallOption) (*DimensionData, error)
	GetDimensionData(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Dimension, DimensionData], error)
	GetDatasetValues(ctx context.Context, in *Void, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DataRow], error)
	GetCorrelationBetweenTwoDimensions(ctx context.Context, in *CorrelationRequest, opts ...grpc.CallOption) (*CorrelationResult, error)
	GetCorrelationMatrix(ctx context.Context, in *Void, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DataRow], error)
}

type immVisClient struct {
	cc grpc.ClientConnInterface
}

func NewImmVisClient(cc grpc.ClientConnInterface) ImmVisClient {
	return &immVisClient{cc}
}

func (c *immVisClient) OpenDatasetFile(ctx context.Context, in *OpenDatasetFileRequest, opts ...grpc.CallOption) (*OpenDatasetFileResponse, error) {
	out := new(OpenDatasetFileResponse)
	err := c.cc.Invoke(ctx, ImmVis_OpenDatasetFile_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *immVisClient) GetDatasetDimensions(ctx context.Context, in *Void, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DimensionInfo], error) {
	return newServerStream[Void, DimensionInfo](ctx, c.cc, &ImmVis_ServiceDesc.Streams[0], ImmVis_GetDatasetDimensions_FullMethodName, in, opts...)
}

func (c *immVisClient) GetDimensionDescriptiveStatistics(ctx context.Context, in *Dimension, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Feature], error) {
	return newServerStream[Dimension, Feature](ctx, c.cc, &ImmVis_ServiceDesc.Streams[1], ImmVis_GetDimensionDescriptiveStatistics_FullMethodName, in, opts...)
}

func (c *immVisClient) GetDimensionInfo(ctx context.Context, in *Dimension, opts ...grpc.CallOption) (*DimensionInfo, error) {
	out := new(DimensionInfo)
	err := c.cc.Invoke(ctx, ImmVis_GetDimensionInfo_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *immVisClient) GetOutlierMapping(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Dimension, DimensionData], error) {
	stream, err := c.cc.NewStream(ctx, &ImmVis_ServiceDesc.Streams[2], ImmVis_GetOutlierMapping_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[Dimension, DimensionData]{ClientStream: stream}, nil
}

func (c *immVisClient) GetKMeansCentroids(ctx context.Context, in *KMeansRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[KMeansCentroid], error) {
	return newServerStream[KMeansRequest, KMeansCentroid](ctx, c.cc, &ImmVis_ServiceDesc.Streams[3], ImmVis_GetKMeansCentroids_FullMethodName, in, opts...)
}

func (c *immVisClient) GetKMeansClusterMapping(ctx context.Context, in *KMeansRequest, opts ...grpc.CallOption) (*DimensionData, error) {
	out := new(DimensionData)
	err := c.cc.Invoke(ctx, ImmVis_GetKMeansClusterMapping_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *immVisClient) GetDimensionData(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Dimension, DimensionData], error) {
	stream, err := c.cc.NewStream(ctx, &ImmVis_ServiceDesc.Streams[4], ImmVis_GetDimensionData_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[Dimension, DimensionData]{ClientStream: stream}, nil
}

func (c *immVisClient) GetDatasetValues(ctx context.Context, in *Void, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DataRow], error) {
	return newServerStream[Void, DataRow](ctx, c.cc, &ImmVis_ServiceDesc.Streams[5], ImmVis_GetDatasetValues_FullMethodName, in, opts...)
}

func (c *immVisClient) GetCorrelationBetweenTwoDimensions(ctx context.Context, in *CorrelationRequest, opts ...grpc.CallOption) (*CorrelationResult, error) {
	out := new(CorrelationResult)
	err := c.cc.Invoke(ctx, ImmVis_GetCorrelationBetweenTwoDimensions_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *immVisClient) GetCorrelationMatrix(ctx context.Context, in *Void, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DataRow], error) {
	return newServerStream[Void, DataRow](ctx, c.cc, &ImmVis_ServiceDesc.Streams[6], ImmVis_GetCorrelationMatrix_FullMethodName, in, opts...)
}

// newServerStream opens a server-streaming call: the single request is sent and
// the send side is closed before the stream is handed to the caller.
func newServerStream[Req any, Res any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	desc *grpc.StreamDesc,
	method string,
	in *Req,
	opts ...grpc.CallOption,
) (grpc.ServerStreamingClient[Res], error) {
	stream, err := cc.NewStream(ctx, desc, method, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Req, Res]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ImmVisServer is the server API for the ImmVis service.
type ImmVisServer interface {
	OpenDatasetFile(context.Context, *OpenDatasetFileRequest) (*OpenDatasetFileResponse, error)
	GetDatasetDimensions(*Void, grpc.ServerStreamingServer[DimensionInfo]) error
	GetDimensionDescriptiveStatistics(*Dimension, grpc.ServerStreamingServer[Feature]) error
	GetDimensionInfo(context.Context, *Dimension) (*DimensionInfo, error)
	GetOutlierMapping(grpc.ClientStreamingServer[Dimension, DimensionData]) error
	GetKMeansCentroids(*KMeansRequest, grpc.ServerStreamingServer[KMeansCentroid]) error
	GetKMeansClusterMapping(context.Context, *KMeansRequest) (*DimensionData, error)
	GetDimensionData(grpc.BidiStreamingServer[Dimension, DimensionData]) error
	GetDatasetValues(*Void, grpc.ServerStreamingServer[DataRow]) error
	GetCorrelationBetweenTwoDimensions(context.Context, *CorrelationRequest) (*CorrelationResult, error)
	GetCorrelationMatrix(*Void, grpc.ServerStreamingServer[DataRow]) error
}

// UnimplementedImmVisServer can be embedded to have forward compatible implementations.
type UnimplementedImmVisServer struct{}

func (UnimplementedImmVisServer) OpenDatasetFile(context.Context, *OpenDatasetFileRequest) (*OpenDatasetFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenDatasetFile not implemented")
}
func (UnimplementedImmVisServer) GetDatasetDimensions(*Void, grpc.ServerStreamingServer[DimensionInfo]) error {
	return status.Errorf(codes.Unimplemented, "method GetDatasetDimensions not implemented")
}
func (UnimplementedImmVisServer) GetDimensionDescriptiveStatistics(*Dimension, grpc.ServerStreamingServer[Feature]) error {
	return status.Errorf(codes.Unimplemented, "method GetDimensionDescriptiveStatistics not implemented")
}
func (UnimplementedImmVisServer) GetDimensionInfo(context.Context, *Dimension) (*DimensionInfo, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDimensionInfo not implemented")
}
func (UnimplementedImmVisServer) GetOutlierMapping(grpc.ClientStreamingServer[Dimension, DimensionData]) error {
	return status.Errorf(codes.Unimplemented, "method GetOutlierMapping not implemented")
}
func (UnimplementedImmVisServer) GetKMeansCentroids(*KMeansRequest, grpc.ServerStreamingServer[KMeansCentroid]) error {
	return status.Errorf(codes.Unimplemented, "method GetKMeansCentroids not implemented")
}
func (UnimplementedImmVisServer) GetKMeansClusterMapping(context.Context, *KMeansRequest) (*DimensionData, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetKMeansClusterMapping not implemented")
}
func (UnimplementedImmVisServer) GetDimensionData(grpc.BidiStreamingServer[Dimension, DimensionData]) error {
	return status.Errorf(codes.Unimplemented, "method GetDimensionData not implemented")
}
func (UnimplementedImmVisServer) GetDatasetValues(*Void, grpc.ServerStreamingServer[DataRow]) error {
	return status.Errorf(codes.Unimplemented, "method GetDatasetValues not implemented")
}
func (UnimplementedImmVisServer) GetCorrelationBetweenTwoDimensions(context.Context, *CorrelationRequest) (*CorrelationResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCorrelationBetweenTwoDimensions not implemented")
}
func (UnimplementedImmVisServer) GetCorrelationMatrix(*Void, grpc.ServerStreamingServer[DataRow]) error {
	return status.Errorf(codes.Unimplemented, "method GetCorrelationMatrix not implemented")
}

func RegisterImmVisServer(s grpc.ServiceRegistrar, srv ImmVisServer) {
	s.RegisterService(&ImmVis_ServiceDesc, srv)
}

func _ImmVis_OpenDatasetFile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OpenDatasetFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImmVisServer).OpenDatasetFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImmVis_OpenDatasetFile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImmVisServer).OpenDatasetFile(ctx, req.(*OpenDatasetFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImmVis_GetDatasetDimensions_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Void)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ImmVisServer).GetDatasetDimensions(m, &grpc.GenericServerStream[Void, DimensionInfo]{ServerStream: stream})
}

func _ImmVis_GetDimensionDescriptiveStatistics_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Dimension)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ImmVisServer).GetDimensionDescriptiveStatistics(m, &grpc.GenericServerStream[Dimension, Feature]{ServerStream: stream})
}

func _ImmVis_GetDimensionInfo_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Dimension)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImmVisServer).GetDimensionInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImmVis_GetDimensionInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImmVisServer).GetDimensionInfo(ctx, req.(*Dimension))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImmVis_GetOutlierMapping_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ImmVisServer).GetOutlierMapping(&grpc.GenericServerStream[Dimension, DimensionData]{ServerStream: stream})
}

func _ImmVis_GetKMeansCentroids_Handler(srv any, stream grpc.ServerStream) error {
	m := new(KMeansRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ImmVisServer).GetKMeansCentroids(m, &grpc.GenericServerStream[KMeansRequest, KMeansCentroid]{ServerStream: stream})
}

func _ImmVis_GetKMeansClusterMapping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KMeansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImmVisServer).GetKMeansClusterMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImmVis_GetKMeansClusterMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImmVisServer).GetKMeansClusterMapping(ctx, req.(*KMeansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImmVis_GetDimensionData_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ImmVisServer).GetDimensionData(&grpc.GenericServerStream[Dimension, DimensionData]{ServerStream: stream})
}

func _ImmVis_GetDatasetValues_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Void)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ImmVisServer).GetDatasetValues(m, &grpc.GenericServerStream[Void, DataRow]{ServerStream: stream})
}

func _ImmVis_GetCorrelationBetweenTwoDimensions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CorrelationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImmVisServer).GetCorrelationBetweenTwoDimensions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImmVis_GetCorrelationBetweenTwoDimensions_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImmVisServer).GetCorrelationBetweenTwoDimensions(ctx, req.(*CorrelationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImmVis_GetCorrelationMatrix_Handler(srv any, stream grpc.ServerStream) error {
	m := new(Void)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ImmVisServer).GetCorrelationMatrix(m, &grpc.GenericServerStream[Void, DataRow]{ServerStream: stream})
}

// ImmVis_ServiceDesc is the grpc.ServiceDesc for the ImmVis service.
var ImmVis_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ImmVisServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "OpenDatasetFile",
			Handler:    _ImmVis_OpenDatasetFile_Handler,
		},
		{
			MethodName: "GetDimensionInfo",
			Handler:    _ImmVis_GetDimensionInfo_Handler,
		},
		{
			MethodName: "GetKMeansClusterMapping",
			Handler:    _ImmVis_GetKMeansClusterMapping_Handler,
		},
		{
			MethodName: "GetCorrelationBetweenTwoDimensions",
			Handler:    _ImmVis_GetCorrelationBetweenTwoDimensions_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetDatasetDimensions",
			Handler:       _ImmVis_GetDatasetDimensions_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetDimensionDescriptiveStatistics",
			Handler:       _ImmVis_GetDimensionDescriptiveStatistics_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetOutlierMapping",
			Handler:       _ImmVis_GetOutlierMapping_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "GetKMeansCentroids",
			Handler:       _ImmVis_GetKMeansCentroids_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetDimensionData",
			Handler:       _ImmVis_GetDimensionData_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "GetDatasetValues",
			Handler:       _ImmVis_GetDatasetValues_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetCorrelationMatrix",
			Handler:       _ImmVis_GetCorrelationMatrix_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "immvis.proto",
}
