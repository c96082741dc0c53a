package immvis

import (
	"errors"
	"io"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvisapi"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
	"go.uber.org/zap"
)

type recvStream[T any] interface {
	Recv() (*T, error)
}

type sendStream[T any] interface {
	Send(*T) error
}

// drainStream reads the stream until io.EOF. The result is never nil.
func drainStream[T any](method string, stream recvStream[T]) ([]*T, error) {
	res := make([]*T, 0)
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			logStreamError(method, "recv", err)
			return nil, err
		}
		res = append(res, msg)
	}
}

// sendDimensions writes one Dimension per name in order.
// io.EOF means the server closed the call, its status is returned by the next receive.
func sendDimensions(method string, stream sendStream[immvisapi.Dimension], names []string) error {
	for _, name := range names {
		err := stream.Send(&immvisapi.Dimension{Name: name})
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			logStreamError(method, "send", err)
			return err
		}
	}
	return nil
}

func logStreamError(method, op string, err error) {
	logger.Error("grpc client stream "+op+" failed",
		zap.String("method", method),
		zap.Error(err),
	)
	metric.ClientStreamError.WithLabelValues(method, op).Inc()
}

func toDimensions(names []string) []*immvisapi.Dimension {
	dims := make([]*immvisapi.Dimension, 0, len(names))
	for _, name := range names {
		dims = append(dims, &immvisapi.Dimension{Name: name})
	}
	return dims
}
