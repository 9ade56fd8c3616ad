package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
)

// CreateRateLimitInterceptor throttles the listed full method names per
// patient. Requests to those methods carry the patient id as their string
// value; every other method passes through untouched.
func (s *MonitorServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
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
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			if r, ok := req.(interface{ GetValue() string }); ok {
				patientID := r.GetValue()
				if !s.CheckPatientLimiter(patientID) {
					common.GetLoggerWith(common.LoggerNameGrpcServer).Info("rate limit exceeded",
						zap.String("method", info.FullMethod),
						zap.String("patient_id", patientID),
					)
					return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
				}
			}
		}

		return handler(ctx, req)
	}
}
