package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/config"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	workerHandler "github.com/saqib1218/FoodApp-Backend-sub000/internal/handler/worker"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/logger"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/queue"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/repository/mariadb"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/storage"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/transform"
	mediaSvc "github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg := initStorage(cfg)
	if err := strg.InitBucket(cfg.MediaBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MediaBucket, err)
		os.Exit(1)
	}

	mediaRepo := mariadb.NewMediaAssetRepository(database.DB)
	kitchenRepo := mariadb.NewKitchenRepository(database.DB)
	requestRepo := mariadb.NewChangeRequestRepository(database.DB)

	trans := transform.NewTransformer(transform.Config{
		FFmpegBin:     cfg.FFmpegBin,
		MaxImageWidth: cfg.MaxImageWidth,
		JPEGQuality:   cfg.JPEGQuality,
		VideoBitrate:  cfg.VideoBitrate,
		AudioBitrate:  cfg.AudioBitrate,
	})

	pub := queue.NewPublisher(cfg.RedisAddr, cfg.RedisPassword, cfg.QueuePrimary, cfg.QueueDead, cfg.RetryDelay)
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Warnf(ctx, "Publisher close error: %v", err)
		}
	}()

	processorSvc := mediaSvc.NewMediaProcessor(mediaRepo, kitchenRepo, requestRepo, strg, trans, cfg.MediaBucket)

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeProcessMedia, workerHandler.ProcessMediaHandler(processorSvc, pub, mediaRepo, cfg.RetryCeiling))

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	// one message at a time; ordering within the primary queue stays intact
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{cfg.QueuePrimary: 1},
	})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish in-flight tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()
	<-shutdownCtx.Done()

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
