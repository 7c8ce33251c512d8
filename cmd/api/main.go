// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/wreckers-gateway/internal/adapters/apiclient"
	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/adapters/storage"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/internal/handlers"
	"github.com/ammerola/wreckers-gateway/internal/handlers/middleware"
	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
	"github.com/ammerola/wreckers-gateway/internal/pkg/logger"
	"github.com/ammerola/wreckers-gateway/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting wreckers gateway",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sm, err := config.NewSecretsManager(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize secrets manager", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := config.ApplySecrets(ctx, cfg, sm); err != nil {
		slogger.Warn("continuing without managed secrets", slog.String("error", err.Error()))
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	go deps.limits.Global.Run(ctx)
	go deps.limits.Forms.Run(ctx)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handlers.NewRouter(cfg, deps.handlers, deps.limits, slogger),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	handlers       handlers.Handlers
	limits         handlers.Limiters
}

func (d *dependencies) cleanup() {
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		PoolTimeout:  cfg.Redis.PoolTimeout,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	// Admin reads are scoped to the caller's token
	queries := query.NewClient(cache, logger,
		query.WithScope(apiclient.ContextTokenSource{}),
		query.WithFetchTimeout(cfg.Server.WriteTimeout))

	// Admin tokens ride on the request context
	backend, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Tokens:  apiclient.ContextTokenSource{},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	api := apiclient.NewResources(backend)

	var (
		uploader ports.ImageUploader = api.Uploads
		bucket   handlers.Pinger
	)
	if cfg.Uploads.Provider == "s3" {
		store, err := storage.NewS3ImageStore(ctx, &storage.S3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.S3Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.S3Endpoint,
			UsePathStyle:    cfg.AWS.UsePathStyle,
			PublicBaseURL:   cfg.AWS.PublicBaseURL,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 image store: %w", err)
		}
		uploader = store
		bucket = store
	}

	logger.Info("initializing Asynq client")
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)
	tasks := workers.NewEnqueuer(deps.asynqClient, cfg.Asynq.RetryMax, logger)

	policies := policiesFromConfig(cfg)
	uploads := services.NewUploadService(uploader, cfg.MaxImageBytes(), logger)
	checkout := services.NewCheckoutService(api.Shipping, api.Payments, api.Orders, queries, policies.Admin, logger)

	deps.handlers = handlers.Handlers{
		Health: handlers.NewHealthHandler(redisClient, deps.asynqInspector, bucket, queries, cfg, logger),
		Site:   handlers.NewSiteHandler(cfg, cache, tasks, logger),
		Catalog: handlers.NewCatalogHandler(
			services.NewPartsService(api.Parts, queries, policies.Catalog, logger),
			services.NewCatalogService(api.Collections, api.Filters, api.Cars, queries, policies.Catalog, logger),
			services.NewReviewsService(api.Reviews, queries, policies.Reviews, logger),
			logger,
		),
		Forms: handlers.NewFormsHandler(
			services.NewFormsService(api.Parts, api.Cars, api.Warranty, api.Contact, queries, logger),
			logger,
		),
		Checkout: handlers.NewCheckoutHandler(checkout, logger),
		Admin: handlers.NewAdminHandler(handlers.AdminServices{
			Cars:     services.NewAdminCarsService(api.AdminCars, queries, tasks, policies.Admin, logger),
			Parts:    services.NewAdminPartsService(api.AdminParts, uploads, queries, tasks, logger),
			Offers:   services.NewOffersService(api.Offers, queries, policies.Admin, logger),
			Posts:    services.NewWpPostsService(api.WpPosts, queries, tasks, policies.Content, logger),
			Uploads:  uploads,
			Checkout: checkout,
		}, cfg.MaxImageBytes(), cfg.Uploads.MaxGalleryFiles, logger),
	}

	deps.limits = handlers.Limiters{
		Global: middleware.NewRateLimiter(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration),
		Forms:  middleware.NewRateLimiter(cfg.Security.FormRateLimitRequests, cfg.Security.RateLimitDuration),
	}

	logger.Info("all dependencies initialized successfully",
		slog.String("uploads", cfg.Uploads.Provider))
	return deps, nil
}

// policiesFromConfig overlays the configured cache times on the defaults
func policiesFromConfig(cfg *config.Config) services.Policies {
	p := services.DefaultPolicies()

	p.Catalog.StaleTime = cfg.Query.CatalogStaleTime
	p.Catalog.CacheTime = cfg.Query.CatalogCacheTime
	p.Reviews.StaleTime = cfg.Query.ReviewsStaleTime
	if cfg.Query.ReviewsRetry > 0 {
		p.Reviews.Retry = cfg.Query.ReviewsRetry
	}
	p.Content.StaleTime = cfg.Query.ContentStaleTime
	p.Admin.CacheTime = cfg.Query.AdminCacheTime

	for _, o := range []*query.Options{&p.Catalog, &p.Reviews, &p.Content, &p.Admin} {
		o.RetryDelay = cfg.Query.RetryDelay
	}
	return p
}
