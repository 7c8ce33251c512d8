// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/wreckers-gateway/internal/adapters/apiclient"
	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
	"github.com/ammerola/wreckers-gateway/internal/pkg/logger"
	"github.com/ammerola/wreckers-gateway/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	sm, err := config.NewSecretsManager(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize secrets manager", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := config.ApplySecrets(ctx, cfg, sm); err != nil {
		slogger.Warn("continuing without managed secrets", slog.String("error", err.Error()))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slogger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)
	queries := query.NewClient(cache, slogger)

	// Jobs have no caller; they authenticate with the service token
	tokens := apiclient.NewMemoryTokenStore(cfg.Backend.ServiceToken)
	backend, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Tokens:  tokens,
	}, slogger)
	if err != nil {
		slogger.Error("failed to create backend client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	api := apiclient.NewResources(backend)

	catalogOpts := query.Options{
		StaleTime:  cfg.Query.CatalogStaleTime,
		CacheTime:  cfg.Query.CatalogCacheTime,
		RetryDelay: cfg.Query.RetryDelay,
	}
	reviewsOpts := services.DefaultPolicies().Reviews
	reviewsOpts.StaleTime = cfg.Query.ReviewsStaleTime

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     cfg.Asynq.Concurrency,
			Queues:          cfg.Asynq.Queues,
			StrictPriority:  cfg.Asynq.StrictPriority,
			ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
			RetryDelayFunc:  exponentialBackoff,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			HealthCheckFunc: healthCheck,
			Logger:          newAsynqLogger(slogger),
		},
	)

	mux := asynq.NewServeMux()

	sitemap := workers.NewSitemapProcessor(api.Parts, api.Cars, api.WpPosts, cache, cfg.Site.URL, slogger)
	mux.HandleFunc(workers.TypeSitemapGenerate, sitemap.ProcessTask)

	warmup := workers.NewWarmupProcessor(
		services.NewPartsService(api.Parts, queries, catalogOpts, slogger),
		services.NewCatalogService(api.Collections, api.Filters, api.Cars, queries, catalogOpts, slogger),
		services.NewReviewsService(api.Reviews, queries, reviewsOpts, slogger),
		slogger,
	)
	mux.HandleFunc(workers.TypeCatalogWarmup, warmup.ProcessTask)

	scheduler, err := newScheduler(redisOpt, cfg, slogger)
	if err != nil {
		slogger.Error("failed to register periodic tasks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.String("sitemap_schedule", cfg.Asynq.SitemapSchedule),
		slog.String("warmup_schedule", cfg.Asynq.WarmupSchedule))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// newScheduler registers the periodic sitemap rebuild and cache warmup.
// An empty schedule disables that job.
func newScheduler(redisOpt asynq.RedisClientOpt, cfg *config.Config, logger *slog.Logger) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: newAsynqLogger(logger),
	})

	if cfg.Asynq.SitemapSchedule != "" {
		task, err := workers.NewSitemapTask("scheduled")
		if err != nil {
			return nil, err
		}
		if _, err := scheduler.Register(cfg.Asynq.SitemapSchedule, task,
			asynq.Queue(workers.QueueDefault),
			asynq.MaxRetry(cfg.Asynq.RetryMax)); err != nil {
			return nil, fmt.Errorf("failed to schedule sitemap: %w", err)
		}
	}

	if cfg.Asynq.WarmupSchedule != "" {
		if _, err := scheduler.Register(cfg.Asynq.WarmupSchedule, workers.NewWarmupTask(),
			asynq.Queue(workers.QueueLow),
			asynq.MaxRetry(1)); err != nil {
			return nil, fmt.Errorf("failed to schedule warmup: %w", err)
		}
	}

	return scheduler, nil
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
