package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/immvis/immvis-go/internal/api"
	immvis_v1 "github.com/immvis/immvis-go/internal/api/immvis/v1"
	"github.com/immvis/immvis-go/internal/app/config"
	"github.com/immvis/immvis-go/internal/app/server"
	"github.com/immvis/immvis-go/internal/pkg/cache"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	"github.com/immvis/immvis-go/logger"
	"github.com/immvis/immvis-go/tracing"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultConfig = "config/config.example.yaml"

	tracingShutdownTimeout = 5 * time.Second
)

var (
	configPath = flag.String("config", defaultConfig, "application config")
)

func init() {
	// Load .env file for local development (optional).
	// OS environment variables take precedence.
	_ = godotenv.Load()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM,
		os.Interrupt,
	)
	defer cancel()

	run(ctx)
}

func run(ctx context.Context) {
	flag.Parse()

	if *configPath == defaultConfig {
		logger.Warn("app uses the default config file, to provide your own config use -config flag")
	}

	cfg, err := config.FromFile(*configPath)
	if err != nil {
		logger.Fatal("read config file error", zap.Error(err))
	}

	if cfg.Tracing != nil {
		shutdown, err := tracing.Initialize(cfg.Tracing)
		if err != nil {
			logger.Error("tracing initialization failed", zap.Error(err))
		} else {
			logger.Info("tracing initialization success",
				zap.String("service_name", cfg.Tracing.ServiceName),
				zap.String("agent_host", cfg.Tracing.Jaeger.AgentHost),
				zap.String("agent_port", cfg.Tracing.Jaeger.AgentPort),
				zap.Float64("sampler_param", cfg.Tracing.Sampler.Param),
			)
			defer func() {
				sctx, scancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
				defer scancel()
				if err := shutdown(sctx); err != nil {
					logger.Error("tracing shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	client := newImmVisClient(cfg.Client)
	if err := client.Initialize(); err != nil {
		logger.Fatal("failed to init immvis client", zap.Error(err))
	}
	defer func() {
		if err := client.Release(); err != nil {
			logger.Error("failed to release immvis client", zap.Error(err))
		}
	}()

	logger.Info("initializing query cache")
	queryCache, err := cache.New(ctx, cfg.Server.Cache)
	if err != nil {
		logger.Fatal("failed to init query cache", zap.Error(err))
	}
	defer func() { _ = queryCache.Close() }()

	registrar := api.NewRegistrar(immvis_v1.New(client, queryCache, immvis_v1.Options{
		CacheTTL:                   cfg.Server.Cache.TTL,
		MaxParallelRequestsPerUser: cfg.Server.MaxParallelRequestsPerUser,
	}))

	serv, err := server.New(ctx, cfg.Server, registrar, client.IsReady)
	if err != nil {
		logger.Fatal("app init error", zap.Error(err))
	}

	if err = serv.Run(ctx); err != nil {
		logger.Error("app run", zap.Error(err))
	}
}

func newImmVisClient(cfg *config.Client) *immvis.GRPCClient {
	params := immvis.ClientParams{
		Timeout:             *cfg.Timeout,
		MaxRetries:          cfg.MaxRetries,
		InitialRetryBackoff: cfg.InitialRetryBackoff,
		MaxRetryBackoff:     cfg.MaxRetryBackoff,
		MaxRecvMsgSize:      cfg.MaxRecvMsgSize,
	}
	if kp := cfg.GRPCKeepaliveParams; kp != nil {
		params.GRPCKeepaliveParams = &immvis.GRPCKeepaliveParams{
			Time:                kp.Time,
			Timeout:             kp.Timeout,
			PermitWithoutStream: kp.PermitWithoutStream,
		}
	}

	if cfg.Target != "" {
		return immvis.NewFromTarget(cfg.Target, params)
	}
	return immvis.New(cfg.Host, cfg.Port, params)
}
