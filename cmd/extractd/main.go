package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	extractorv1 "github.com/opennacc/declaration-extractor/gen/extractor/v1"
	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/async"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/enums"
	"github.com/opennacc/declaration-extractor/internal/export"
	"github.com/opennacc/declaration-extractor/internal/extract"
	"github.com/opennacc/declaration-extractor/internal/llm/openai"
	"github.com/opennacc/declaration-extractor/internal/pipeline"
	"github.com/opennacc/declaration-extractor/internal/repository"
	"github.com/opennacc/declaration-extractor/internal/retry"
	"github.com/opennacc/declaration-extractor/internal/server"
	"github.com/opennacc/declaration-extractor/internal/validate"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := enums.Load(cfg.Enum.Dir, logger)
	if err != nil {
		logger.Error("failed to load enum vocabularies", "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)
	if err := db.HealthCheck(ctx, 3*time.Second); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	docsRepo := repository.NewDocumentRepository(db.Ent, logger)
	jobsRepo := repository.NewExtractJobRepository(db.Ent, logger)

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, logger)

	extractor := extract.NewExtractor(cfg.Extract, retry.Config{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
		Jitter:      cfg.Retry.Jitter,
	}, registry, client, logger)
	assembler := assemble.NewAssembler(logger)
	validator := validate.NewValidator(registry, validate.DefaultTolerance, logger)
	processor := pipeline.NewProcessor(cfg.Extract, cfg.Pipeline, extractor, assembler, validator, logger)

	exporter := export.NewService(logger)
	svc := server.NewExtractorService(docsRepo, jobsRepo, exporter, cfg, logger)

	queue := async.NewDocumentQueue(processor, svc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithDocumentTimeout(cfg.Pipeline.DocumentTimeout),
	)
	svc.AttachQueue(queue)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	extractorv1.RegisterExtractorServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "mode", cfg.Extract.Mode)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	grpcServer.GracefulStop()
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(drainCtx)
	cancel()
	fmt.Println("stopped.")
}
