package mw

import (
	"fmt"
	"runtime/debug"

	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/metric"
	"go.uber.org/zap"
)

func handleRecover(method string, recoverVal any) {
	metric.ServerRequestPanics.Inc()

	var err error
	switch x := recoverVal.(type) {
	case error:
		err = x
	default:
		err = fmt.Errorf("panic: %v", x)
	}
	logger.Error("recovered after panic",
		zap.String("method", method),
		zap.String("stack_trace", string(debug.Stack())),
		zap.Error(err),
	)
}
