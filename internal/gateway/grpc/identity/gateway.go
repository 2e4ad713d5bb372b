package identity

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "identity-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// IdentityGateway опрашивает identity-сервис, который проставляет
// X-User-* заголовки перед нами. Сервис доверяет заголовкам, поэтому
// единственное что нам нужно от identity - знать, жив ли он.
type IdentityGateway struct {
	client  client
	retrier retrier
}

func New(client client) *IdentityGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &IdentityGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *IdentityGateway) CheckAvailability(ctx context.Context) error {
	req := healthpb.HealthCheckRequest{}

	var resp *healthpb.HealthCheckResponse

	err := g.executeWithMetrics(ctx, "Check", func(ctx context.Context) error {
		var err error
		resp, err = g.client.Check(ctx, &req)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway identity, health check: %w", err)
	}

	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("gateway identity, not serving: %s", resp.Status.String())
	}

	return nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *IdentityGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
