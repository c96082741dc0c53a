// Package immvistest runs an in-process ImmVis service with canned data.
package immvistest

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"github.com/immvis/immvis-go/tracing"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// Target is the grpc target to dial with the options returned by Start.
const Target = "passthrough:///bufnet"

const bufSize = 1024 * 1024

// Dataset is the canned data served by Service.
type Dataset struct {
	OpenResponseCode  int32
	Dimensions        []*immvisapi.DimensionInfo
	Statistics        map[string][]*immvisapi.Feature
	Columns           map[string][]string
	Outliers          []string
	Centroids         []*immvisapi.KMeansCentroid
	ClusterMapping    []string
	Rows              []*immvisapi.DataRow
	Correlations      map[[2]string]float32
	CorrelationMatrix []*immvisapi.DataRow
}

// Service implements immvisapi.ImmVisServer and records what it received.
type Service struct {
	immvisapi.UnimplementedImmVisServer

	mu          sync.Mutex
	data        Dataset
	openedFiles []string
	received    [][]string
	traceIDs    []string
	failures    int
}

func NewService(data Dataset) *Service {
	return &Service{data: data}
}

// FailNext makes the next n calls fail with codes.Unavailable.
func (s *Service) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
}

func (s *Service) OpenedFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.openedFiles...)
}

// ReceivedDimensions returns the dimension names of every client-streamed call, in order.
func (s *Service) ReceivedDimensions() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([][]string, 0, len(s.received))
	for _, r := range s.received {
		res = append(res, append([]string(nil), r...))
	}
	return res
}

func (s *Service) takeFailure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures <= 0 {
		return nil
	}
	s.failures--
	return status.Error(codes.Unavailable, "immvistest: unavailable")
}

// TraceIDs returns the trace ids propagated by callers, one per call that carried one.
func (s *Service) TraceIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.traceIDs...)
}

func (s *Service) recordTrace(ctx context.Context) context.Context {
	ctx = tracing.ExtractIncoming(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		s.mu.Lock()
		s.traceIDs = append(s.traceIDs, sc.TraceID().String())
		s.mu.Unlock()
	}
	return ctx
}

func (s *Service) unaryInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = s.recordTrace(ctx)
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

func (s *Service) streamInterceptor(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	s.recordTrace(ss.Context())
	if err := s.takeFailure(); err != nil {
		return err
	}
	return handler(srv, ss)
}

// Start serves svc over an in-memory listener until the test ends.
// The returned options make a client dial it at Target.
func Start(tb testing.TB, svc *Service) []grpc.DialOption {
	tb.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(svc.unaryInterceptor),
		grpc.StreamInterceptor(svc.streamInterceptor),
	)
	immvisapi.RegisterImmVisServer(srv, svc)

	go func() {
		_ = srv.Serve(lis)
	}()
	tb.Cleanup(func() {
		srv.Stop()
		_ = lis.Close()
	})

	return []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	}
}

func (s *Service) OpenDatasetFile(_ context.Context, req *immvisapi.OpenDatasetFileRequest) (*immvisapi.OpenDatasetFileResponse, error) {
	s.mu.Lock()
	s.openedFiles = append(s.openedFiles, req.GetFilePath())
	s.mu.Unlock()
	return &immvisapi.OpenDatasetFileResponse{ResponseCode: s.data.OpenResponseCode}, nil
}

func (s *Service) GetDatasetDimensions(_ *immvisapi.Void, stream grpc.ServerStreamingServer[immvisapi.DimensionInfo]) error {
	for _, d := range s.data.Dimensions {
		if err := stream.Send(d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetDimensionDescriptiveStatistics(req *immvisapi.Dimension, stream grpc.ServerStreamingServer[immvisapi.Feature]) error {
	features, ok := s.data.Statistics[req.GetName()]
	if !ok {
		return status.Errorf(codes.NotFound, "dimension %q not found", req.GetName())
	}
	for _, f := range features {
		if err := stream.Send(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetDimensionInfo(_ context.Context, req *immvisapi.Dimension) (*immvisapi.DimensionInfo, error) {
	for _, d := range s.data.Dimensions {
		if d.GetName() == req.GetName() {
			return d, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "dimension %q not found", req.GetName())
}

func (s *Service) GetOutlierMapping(stream grpc.ClientStreamingServer[immvisapi.Dimension, immvisapi.DimensionData]) error {
	if _, err := s.recvNames(stream); err != nil {
		return err
	}
	return stream.SendAndClose(&immvisapi.DimensionData{Data: s.data.Outliers})
}

func (s *Service) GetKMeansCentroids(req *immvisapi.KMeansRequest, stream grpc.ServerStreamingServer[immvisapi.KMeansCentroid]) error {
	if req.GetNumClusters() <= 0 {
		return status.Error(codes.InvalidArgument, "num_clusters must be positive")
	}
	for _, c := range s.data.Centroids {
		if err := stream.Send(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetKMeansClusterMapping(_ context.Context, req *immvisapi.KMeansRequest) (*immvisapi.DimensionData, error) {
	if req.GetNumClusters() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "num_clusters must be positive")
	}
	return &immvisapi.DimensionData{Data: s.data.ClusterMapping}, nil
}

// GetDimensionData answers only after the client half-closed the request stream.
func (s *Service) GetDimensionData(stream grpc.BidiStreamingServer[immvisapi.Dimension, immvisapi.DimensionData]) error {
	names, err := s.recvNames(stream)
	if err != nil {
		return err
	}
	for _, name := range names {
		col, ok := s.data.Columns[name]
		if !ok {
			return status.Errorf(codes.NotFound, "dimension %q not found", name)
		}
		if err := stream.Send(&immvisapi.DimensionData{Dimension: name, Data: col}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetDatasetValues(_ *immvisapi.Void, stream grpc.ServerStreamingServer[immvisapi.DataRow]) error {
	for _, r := range s.data.Rows {
		if err := stream.Send(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetCorrelationBetweenTwoDimensions(_ context.Context, req *immvisapi.CorrelationRequest) (*immvisapi.CorrelationResult, error) {
	key := [2]string{req.GetDimension1().GetName(), req.GetDimension2().GetName()}
	v, ok := s.data.Correlations[key]
	if !ok {
		v, ok = s.data.Correlations[[2]string{key[1], key[0]}]
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no correlation for %q and %q", key[0], key[1])
	}
	return &immvisapi.CorrelationResult{Result: v}, nil
}

func (s *Service) GetCorrelationMatrix(_ *immvisapi.Void, stream grpc.ServerStreamingServer[immvisapi.DataRow]) error {
	for _, r := range s.data.CorrelationMatrix {
		if err := stream.Send(r); err != nil {
			return err
		}
	}
	return nil
}

type nameRecv interface {
	Recv() (*immvisapi.Dimension, error)
}

func (s *Service) recvNames(stream nameRecv) ([]string, error) {
	var names []string
	for {
		d, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		names = append(names, d.GetName())
	}
	s.mu.Lock()
	s.received = append(s.received, names)
	s.mu.Unlock()
	return names, nil
}

// SampleDataset is a small dataset with three dimensions and four rows.
func SampleDataset() Dataset {
	return Dataset{
		OpenResponseCode: 0,
		Dimensions: []*immvisapi.DimensionInfo{
			{Name: "sepal_length", Type: "float64"},
			{Name: "sepal_width", Type: "float64"},
			{Name: "species", Type: "object"},
		},
		Statistics: map[string][]*immvisapi.Feature{
			"sepal_length": {
				{Name: "count", Value: "4"},
				{Name: "mean", Value: "5.25"},
				{Name: "std", Value: "0.4"},
			},
		},
		Columns: map[string][]string{
			"sepal_length": {"5.1", "4.9", "5.8", "5.2"},
			"sepal_width":  {"3.5", "3.0", "2.7", "3.4"},
			"species":      {"setosa", "setosa", "virginica", "setosa"},
		},
		Outliers: []string{"False", "False", "True", "False"},
		Centroids: []*immvisapi.KMeansCentroid{
			{Data: []string{"5.07", "3.3"}},
			{Data: []string{"5.8", "2.7"}},
		},
		ClusterMapping: []string{"0", "0", "1", "0"},
		Rows: []*immvisapi.DataRow{
			{Data: []string{"5.1", "3.5", "setosa"}},
			{Data: []string{"4.9", "3.0", "setosa"}},
			{Data: []string{"5.8", "2.7", "virginica"}},
			{Data: []string{"5.2", "3.4", "setosa"}},
		},
		Correlations: map[[2]string]float32{
			{"sepal_length", "sepal_width"}: -0.42,
		},
		CorrelationMatrix: []*immvisapi.DataRow{
			{Data: []string{"1.0", "-0.42"}},
			{Data: []string{"-0.42", "1.0"}},
		},
	}
}
