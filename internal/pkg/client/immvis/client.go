// Package immvis is a client of the ImmVis dataset statistics service.
//
// A client owns at most one gRPC connection. Initialize opens it, Release
// closes it, and every operation in between issues a single remote call,
// draining the response stream before it returns.
package immvis

import (
	"context"
	"time"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

const (
	DefaultHost   = "127.0.0.1"
	DefaultPort   = 50051
	DefaultTarget = "127.0.0.1:50051"
)

type Client interface {
	Initialize() error
	Release() error
	IsReady() bool
	WaitForReady(context.Context) error
	Target() string

	OpenDatasetFromFile(ctx context.Context, filePath string) (int32, error)
	GetDatasetDimensions(ctx context.Context) ([]*immvisapi.DimensionInfo, error)
	GetDimensionDescriptiveStatistics(ctx context.Context, name string) ([]*immvisapi.Feature, error)
	GetDimensionInfo(ctx context.Context, name string) (*immvisapi.DimensionInfo, error)
	GetOutliersMapping(ctx context.Context, names ...string) ([]bool, error)
	GetKMeansCentroids(ctx context.Context, numClusters int32, names ...string) ([]*immvisapi.KMeansCentroid, error)
	GetKMeansClusterMapping(ctx context.Context, numClusters int32, names ...string) ([]int, error)
	GetDimensionsData(ctx context.Context, names ...string) ([]*immvisapi.DimensionData, error)
	GetDatasetValues(ctx context.Context) ([]*immvisapi.DataRow, error)
	GetCorrelationBetweenTwoDimensions(ctx context.Context, a, b string) (float32, error)
	GetCorrelationMatrix(ctx context.Context) ([]*immvisapi.DataRow, error)
}

// Conn is the connection a client dials. *grpc.ClientConn implements it.
type Conn interface {
	grpc.ClientConnInterface

	GetState() connectivity.State
	Connect()
	WaitForStateChange(ctx context.Context, sourceState connectivity.State) bool
	Close() error
}

type DialFunc func(target string, opts ...grpc.DialOption) (Conn, error)

type GRPCKeepaliveParams struct {
	Time                time.Duration
	Timeout             time.Duration
	PermitWithoutStream bool
}

type ClientParams struct {
	// Timeout bounds a whole operation including retries, 0 means no timeout.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts made while the service is unavailable.
	MaxRetries          int
	InitialRetryBackoff time.Duration
	MaxRetryBackoff     time.Duration
	MaxRecvMsgSize      int
	GRPCKeepaliveParams *GRPCKeepaliveParams
	DialOptions         []grpc.DialOption
	// Dial replaces grpc.NewClient.
	Dial DialFunc
}

type State int8

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}
