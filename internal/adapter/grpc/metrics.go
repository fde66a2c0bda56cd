package grpc

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/simaogato/wealthflow-dashboard/internal/domain"
)

// Metrics records Prometheus metrics for the FinanceService
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the RPC metrics on reg.
// When repo is non-nil a gauge tracking the size of the transaction collection is registered too.
func NewMetrics(reg prometheus.Registerer, repo domain.TransactionRepository) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_rpc_requests_total",
				Help: "Total number of FinanceService RPCs by method and status code",
			},
			[]string{"method", "code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_rpc_duration_seconds",
				Help:    "FinanceService RPC latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"method"},
		),
	}

	if repo != nil {
		factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "finance_transactions",
				Help: "Number of transactions currently held by the dashboard",
			},
			func() float64 {
				count, err := repo.Count(context.Background())
				if err != nil {
					return 0
				}
				return float64(count)
			},
		)
	}

	return m
}

// UnaryInterceptor counts and times every unary RPC
func (m *Metrics) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		m.duration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()

		return resp, err
	}
}
