package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/wealthflow-dashboard/internal/adapter/grpc"
	"github.com/simaogato/wealthflow-dashboard/internal/adapter/repository/memory"
	"github.com/simaogato/wealthflow-dashboard/internal/config"
	"github.com/simaogato/wealthflow-dashboard/internal/usecase/dashboard"
	"github.com/simaogato/wealthflow-dashboard/internal/usecase/seeder"
)

func main() {
	// 1. Load configuration (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Initialize Repository (in-memory, lives as long as the process)
	transactionRepo := memory.NewTransactionRepository()

	// 3. Initialize Services (Use Cases)
	dashboardService := dashboard.NewDashboardService(transactionRepo, dashboard.WithLogger(logger))

	ctx := context.Background()
	if cfg.SeedSampleData {
		sampleSeeder := seeder.NewSampleSeeder(transactionRepo)
		inserted, err := sampleSeeder.Seed(ctx)
		if err != nil {
			logger.Error("failed to seed sample transactions", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("sample transactions seeded", slog.Int("count", inserted))
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := grpcadapter.NewMetrics(registry, transactionRepo)

	// 5. Start gRPC Server
	interceptors := []grpclib.UnaryServerInterceptor{
		grpcadapter.RecoveryInterceptor(logger),
		grpcadapter.LoggingInterceptor(logger),
		metrics.UnaryInterceptor(),
	}
	if cfg.AuthEnabled() {
		interceptors = append(interceptors, grpcadapter.AuthInterceptor(cfg.APIToken))
	} else {
		logger.Warn("API_TOKEN not set, FinanceService accepts unauthenticated calls")
	}

	grpcServer := grpclib.NewServer(grpclib.ChainUnaryInterceptor(interceptors...))

	grpcAdapter := grpcadapter.NewServer(dashboardService, logger)
	grpcadapter.RegisterFinanceServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	grpcAddr := config.ListenAddr(cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logger.Error("failed to listen", slog.String("addr", grpcAddr), slog.String("error", err.Error()))
		os.Exit(1)
	}

	go func() {
		logger.Info("gRPC server listening", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server stopped unexpectedly", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = startMetricsServer(logger, registry, config.ListenAddr(cfg.MetricsAddr))
	}

	// Graceful shutdown
	waitForShutdown(logger, grpcServer, healthServer, metricsServer)
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func startMetricsServer(logger *slog.Logger, registry *prometheus.Registry, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	return srv
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(logger *slog.Logger, grpcServer *grpclib.Server, healthServer *health.Server, metricsServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down gracefully", slog.String("signal", sig.String()))

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown failed", slog.String("error", err.Error()))
		}
	}
}
