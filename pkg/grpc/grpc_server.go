package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Kxngreece/Healstep-API/pkg/common"
)

// IngestServiceName is the health service name monitoring tools query for the
// ingest path.
const IngestServiceName = "healstep.Ingest"

const DefaultProbeInterval = 10 * time.Second

// Pinger is the store check health status follows.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthServer struct {
	Store  Pinger
	health *health.Server
}

func NewHealthServer(store Pinger) *HealthServer {
	return &HealthServer{
		Store:  store,
		health: health.NewServer(),
	}
}

func (h *HealthServer) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(IngestServiceName, status)
}

// Refresh pings the store once and publishes the result.
func (h *HealthServer) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.Store.Ping(ctx); err != nil {
		common.GetLoggerWith(common.LoggerNameGrpcServer).Warn("Store ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
	return status
}

// Probe refreshes the status every interval until ctx is done.
func (h *HealthServer) Probe(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher, used while draining.
func (h *HealthServer) Shutdown() {
	h.health.Shutdown()
}

func (h *HealthServer) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

func NewServer(h *HealthServer) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(CreateLoggingInterceptor(QuietMethods)))
	h.Register(s)
	return s
}
