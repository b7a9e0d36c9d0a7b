package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/cache"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/config"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/db"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/handler"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/handler/api"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/logger"
	cMiddleware "github.com/saqib1218/FoodApp-Backend-sub000/internal/middleware"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/queue"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/repository/mariadb"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/storage"
	approvalSvc "github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/approval"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/changerequest"
	mediaSvc "github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
	msuuid "github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(cfg.MediaBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MediaBucket, err)
		os.Exit(1)
	}

	mediaRepo := mariadb.NewMediaAssetRepository(database.DB)
	requestRepo := mariadb.NewChangeRequestRepository(database.DB)
	store := mariadb.NewStore(database)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled")
	}

	pub := queue.NewPublisher(cfg.RedisAddr, cfg.RedisPassword, cfg.QueuePrimary, cfg.QueueDead, cfg.RetryDelay)
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Warnf(ctx, "Publisher close error: %v", err)
		}
	}()

	uploadPublisherSvc := mediaSvc.NewUploadPublisher(mediaRepo, pub)
	uploadAccepterSvc := mediaSvc.NewUploadAccepter(mediaRepo, strg, uploadPublisherSvc, cfg.MediaBucket, msuuid.NewUUID)
	r.With(cMiddleware.WithEntityID()).
		Post("/kitchens/{id}/medias", api.UploadMediaHandler(uploadAccepterSvc))

	getMediaSvc := mediaSvc.NewMediaGetter(mediaRepo)
	r.With(cMiddleware.WithEntityID()).
		Get("/medias/{id}", api.GetMediaHandler(getMediaSvc))

	deleteMediaSvc := mediaSvc.NewMediaDeleter(mediaRepo, strg, cfg.MediaBucket)
	r.With(cMiddleware.WithEntityID()).
		Delete("/medias/{id}", api.DeleteMediaHandler(deleteMediaSvc))

	readerSvc := changerequest.NewReader(requestRepo)
	r.Get("/change-requests", api.ListChangeRequestsHandler(readerSvc))
	r.With(cMiddleware.WithEntityID()).
		Get("/change-requests/{id}", api.GetChangeRequestHandler(readerSvc, ca))

	registry, err := approvalSvc.DefaultRegistry()
	if err != nil {
		logger.Errorf(ctx, "❌  Synchronizer registry error: %v", err)
		os.Exit(1)
	}
	engineSvc := approvalSvc.NewEngine(store, registry, ca)
	r.With(cMiddleware.WithEntityID()).
		Post("/change-requests/{id}/approve", api.ApproveChangeRequestHandler(engineSvc))
	r.With(cMiddleware.WithEntityID()).
		Post("/change-requests/{id}/reject", api.RejectChangeRequestHandler(engineSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithDSTAuth(jwtKey))

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
