package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/Kxngreece/Healstep-API/pkg/common"
)

// QuietMethods are polled by probes and only logged at debug level.
var QuietMethods = []string{
	"/grpc.health.v1.Health/Check",
}

func CreateLoggingInterceptor(quietMethods []string) grpc.UnaryServerInterceptor {
	quiet := common.Reducer(quietMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		level := zapcore.InfoLevel
		if quiet[info.FullMethod] {
			level = zapcore.DebugLevel
		}
		if err != nil {
			level = zapcore.WarnLevel
		}

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		}
		if msg, ok := req.(proto.Message); ok {
			if body, merr := protojson.Marshal(msg); merr == nil {
				fields = append(fields, zap.ByteString("request", body))
			}
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		common.GetLoggerWith(common.LoggerNameGrpcServer).Log(level, "Unary call", fields...)

		return resp, err
	}
}
