package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	"github.com/KirkDiggler/rpg-tale/internal/config"
	"github.com/KirkDiggler/rpg-tale/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	envFile      string
	grpcPort     int
	httpPort     int
	redisAddr    string
	narratorMode string
	narratorURL  string
	diceSeed     int64
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long: `Start the session HTTP API and the DiceService gRPC API.

Settings come from RPG_TALE_* environment variables (optionally from a .env
file); flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for roll records (empty keeps them in memory)")
	serverCmd.Flags().StringVar(&narratorMode, "narrator", config.NarratorModeScripted, "narrator mode: http or scripted")
	serverCmd.Flags().StringVar(&narratorURL, "narrator-url", "", "base URL of the narrator service")
	serverCmd.Flags().Int64Var(&diceSeed, "dice-seed", 0, "seed for reproducible dice (0 for random)")
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("narrator") {
		cfg.NarratorMode = narratorMode
	}
	if flags.Changed("narrator-url") {
		cfg.NarratorURL = narratorURL
	}
	if flags.Changed("dice-seed") {
		cfg.DiceSeed = diceSeed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	slog.SetDefault(cfg.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	deps, cleanup, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	grpcServer := newGRPCServer(deps)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           deps.httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort, "narrator", cfg.NarratorMode)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")
	case err := <-errChan:
		grpcServer.Stop()
		_ = httpServer.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

func newGRPCServer(deps *dependencies) *grpc.Server {
	logger := grpc_logging.LoggerFunc(logFunc)

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	apiv1alpha1.RegisterDiceServiceServer(srv, deps.diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.DiceService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

// logFunc bridges go-grpc-middleware logging to slog; the level values match.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
