package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/luci/internal/infrastructure/config"
)

const requestIDHeader = "X-Request-Id"

// Logger logs every unary call once it completes. Client faults are logged
// at warn level, everything else that fails at error level.
func Logger(logger *logrus.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			requestID := req.Header().Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			resp, err := next(ctx, req)

			code := connect.CodeOf(err)
			fields := buildLogFields(req, resp, code, time.Since(start), err)
			fields["request_id"] = requestID
			// A failed handler hands back a typed nil response.
			var connectErr *connect.Error
			if err == nil {
				resp.Header().Set(requestIDHeader, requestID)
			} else if errors.As(err, &connectErr) {
				connectErr.Meta().Set(requestIDHeader, requestID)
			}

			logger.WithContext(ctx).WithFields(fields).Log(determineLogLevel(code, err), "request completed")
			return resp, err
		}
	}
}

func determineLogLevel(code connect.Code, err error) logrus.Level {
	if err == nil {
		return logrus.InfoLevel
	}
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound,
		connect.CodeAlreadyExists, connect.CodePermissionDenied, connect.CodeUnauthenticated,
		connect.CodeCanceled:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func buildLogFields(req connect.AnyRequest, resp connect.AnyResponse, code connect.Code, duration time.Duration, err error) logrus.Fields {
	fields := requestFields(req, duration)
	if err == nil {
		fields["status"] = "ok"
	} else {
		fields["status"] = code.String()
		fields[logrus.ErrorKey] = err.Error()
	}
	if err != nil {
		return fields
	}
	for k, v := range responseFields(resp) {
		fields[k] = v
	}
	return fields
}

func requestFields(req connect.AnyRequest, duration time.Duration) logrus.Fields {
	fields := logrus.Fields{
		"procedure": req.Spec().Procedure,
		"duration":  duration.String(),
	}

	setString(fields, "http_method", req.HTTPMethod())

	peer := req.Peer()
	setString(fields, "peer_addr", peer.Addr)
	setString(fields, "protocol", peer.Protocol)

	header := req.Header()
	setString(fields, "user_agent", header.Get("User-Agent"))
	setString(fields, "client_ip", firstForwardedFor(header))
	setString(fields, "content_type", header.Get("Content-Type"))

	if cl := contentLength(header); cl >= 0 {
		fields["request_bytes"] = cl
	}
	return fields
}

func responseFields(resp connect.AnyResponse) logrus.Fields {
	if resp == nil {
		return nil
	}
	fields := logrus.Fields{}
	if cl := contentLength(resp.Header()); cl >= 0 {
		fields["response_bytes"] = cl
	}
	return fields
}

func setString(fields logrus.Fields, key, value string) {
	if value == "" {
		return
	}
	fields[key] = value
}

func firstForwardedFor(header http.Header) string {
	forwarded := header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	for _, part := range strings.Split(forwarded, ",") {
		if candidate := strings.TrimSpace(part); candidate != "" {
			return candidate
		}
	}
	return ""
}

func contentLength(header http.Header) int {
	if header == nil {
		return -1
	}
	if cl := header.Get("Content-Length"); cl != "" {
		if parsed, err := strconv.Atoi(cl); err == nil {
			return parsed
		}
	}
	return -1
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
