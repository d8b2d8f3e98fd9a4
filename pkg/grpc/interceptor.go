package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"liyu1981.xyz/glucose-tracker/pkg/common"
)

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	return common.ClientKey(p.Addr.String())
}

// CreateRateLimitInterceptor limits the listed methods per peer host.
func (s *EventServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
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
		if targetMethodMap[info.FullMethod] {
			key := peerKey(ctx)
			if !s.Limiter.Allow(key) {
				common.GetLoggerWith(common.LoggerNameGrpcServer).
					Warn("Rate limited", zap.String("peer", key), zap.String("method", info.FullMethod))
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		return handler(ctx, req)
	}
}
