package mw

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/immvis/immvis-go/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxLoggedBodySize bounds the request body written to logs.
const maxLoggedBodySize = 1 << 10

var nonLogHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
}

type loggedHeader http.Header

func (h loggedHeader) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for key, vals := range h {
		if _, skip := nonLogHeaders[strings.ToLower(key)]; skip {
			continue
		}
		_ = enc.AddArray(key, zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, v := range vals {
				ae.AppendString(v)
			}
			return nil
		}))
	}
	return nil
}

func truncateBody(body []byte) string {
	if len(body) <= maxLoggedBodySize {
		return string(body)
	}
	return string(body[:maxLoggedBodySize]) + "...(truncated)"
}

type respErrorType int

const (
	respNoError respErrorType = iota
	respClientError
	respServerError
)

func respErrorTypeFromStatusCode(statusCode int) respErrorType {
	switch {
	case statusCode < 400:
		return respNoError
	case statusCode < 500:
		return respClientError
	default:
		return respServerError
	}
}

type requestLog struct {
	header     http.Header
	fullMethod string
	body       []byte
	user       string

	statusCode int
	respSize   int
	took       time.Duration
	errMessage string
}

func (l requestLog) commonFields() []zap.Field {
	fields := []zap.Field{
		zap.String("component", "HTTP"),
		zap.String("full_method", l.fullMethod),
	}
	if l.user != "" {
		fields = append(fields, zap.String("user", l.user))
	}
	return fields
}

func logRequestBeforeHandler(ctx context.Context, logger *tracing.Logger, l requestLog) {
	fields := append(l.commonFields(),
		zap.Object("header", loggedHeader(l.header)),
		zap.String("body", truncateBody(l.body)),
	)
	logger.Info(ctx, "incoming request", fields...)
}

// logRequestAfterHandler logs the outcome at info, warn for 4xx or error for 5xx level.
func logRequestAfterHandler(ctx context.Context, logger *tracing.Logger, l requestLog) {
	fields := append(l.commonFields(),
		zap.String("status_code", http.StatusText(l.statusCode)),
		zap.String("took", l.took.String()),
		zap.Int("response_size", l.respSize),
	)

	msg := l.errMessage
	if msg == "" {
		msg = "unknown error"
	}

	switch respErrorTypeFromStatusCode(l.statusCode) {
	case respClientError:
		logger.Warn(ctx, "client error occurred", append(fields, zap.String("client_error", msg))...)
	case respServerError:
		logger.Error(ctx, "server error occurred", append(fields, zap.String("server_error", msg))...)
	default:
		logger.Info(ctx, "successful request", fields...)
	}
}
