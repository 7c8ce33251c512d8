// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig marks a required setting that is absent or a placeholder
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Backend REST API
	Backend BackendConfig

	// Public site settings exposed to the storefront
	Site SiteConfig

	// Redis
	Redis RedisConfig

	// Asynq
	Asynq AsynqConfig

	// AWS
	AWS AWSConfig

	// Query cache
	Query QueryConfig

	// Image uploads
	Uploads UploadsConfig

	// Security
	Security SecurityConfig

	// Server
	Server ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// BackendConfig points at the backend REST API
type BackendConfig struct {
	// BaseURL is the origin with exactly one /api suffix
	BaseURL      string `required:"true"`
	Timeout      time.Duration
	ServiceToken string
}

// SiteConfig holds the public storefront settings
type SiteConfig struct {
	URL              string
	MapsAPIKey       string
	RecaptchaSiteKey string
	HolidayBannerKey string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
	PoolTimeout  time.Duration
	TTL          time.Duration
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	Concurrency     int
	Queues          map[string]int // queue name -> priority
	StrictPriority  bool
	RetryMax        int
	ShutdownTimeout time.Duration
	SitemapSchedule string
	WarmupSchedule  string
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string // For MinIO in development
	UsePathStyle    bool   // For MinIO compatibility
	PublicBaseURL   string // Public URL prefix of uploaded objects
	SecretsProvider string // env, aws
	SecretName      string
}

// QueryConfig holds the query cache policies
type QueryConfig struct {
	CatalogStaleTime time.Duration
	CatalogCacheTime time.Duration
	ReviewsStaleTime time.Duration
	ReviewsRetry     int
	ContentStaleTime time.Duration
	AdminCacheTime   time.Duration
	RetryDelay       time.Duration
}

// UploadsConfig holds image upload limits
type UploadsConfig struct {
	Provider        string // backend, s3
	MaxImageSizeMB  int
	MaxGalleryFiles int
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests     int
	RateLimitDuration     time.Duration
	FormRateLimitRequests int
	AllowedOrigins        []string
	SecureHeaders         bool
	RequestIDHeader       string
	AdminCookieName       string
	// TrustedProxies are the addresses or CIDRs whose X-Forwarded-For
	// header is believed. Empty means the direct peer is the client.
	TrustedProxies []string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxHeaderBytes  int
	GracefulTimeout time.Duration
	TLSEnabled      bool
	TLSCertFile     string
	TLSKeyFile      string
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()

	env := getEnv("APP_ENV", "development")

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "wreckers-gateway"),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", "debug"),
			LogFormat:   getEnv("LOG_FORMAT", "json"),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		Backend: BackendConfig{
			BaseURL:      ResolveBackendURL(firstEnv("NEXT_PUBLIC_BACK_END", "BACK_END", "BACKEND_URL")),
			Timeout:      getDurationEnv("BACKEND_TIMEOUT", 30*time.Second),
			ServiceToken: getEnv("BACKEND_SERVICE_TOKEN", ""),
		},
		Site: SiteConfig{
			URL:              strings.TrimRight(getEnv("SITE_URL", "http://localhost:3000"), "/"),
			MapsAPIKey:       firstEnv("NEXT_PUBLIC_GOOGLE_MAPS_API_KEY", "GOOGLE_MAPS_API_KEY"),
			RecaptchaSiteKey: getEnv("NEXT_PUBLIC_RECAPTCHA_SITE_KEY", ""),
			HolidayBannerKey: getEnv("HOLIDAY_BANNER_KEY", "holiday-closure-2025-dismissed"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			MaxRetries:   getIntEnv("REDIS_MAX_RETRIES", 3),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			TTL:          getDurationEnv("REDIS_TTL", time.Hour),
		},
		Asynq: AsynqConfig{
			RedisAddr:       fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379")),
			RedisPassword:   getEnv("REDIS_PASSWORD", ""),
			RedisDB:         getIntEnv("ASYNQ_REDIS_DB", 1),
			Concurrency:     getIntEnv("ASYNQ_CONCURRENCY", 5),
			Queues:          parseQueues(getEnv("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:  getBoolEnv("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:        getIntEnv("ASYNQ_RETRY_MAX", 3),
			ShutdownTimeout: getDurationEnv("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			SitemapSchedule: getEnv("SITEMAP_SCHEDULE", "@hourly"),
			WarmupSchedule:  getEnv("WARMUP_SCHEDULE", "*/15 * * * *"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "ap-southeast-2"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "wreckers-uploads"),
			S3Endpoint:      getEnv("AWS_S3_ENDPOINT", ""),
			UsePathStyle:    getBoolEnv("AWS_S3_PATH_STYLE", env == "development"),
			PublicBaseURL:   strings.TrimRight(getEnv("AWS_S3_PUBLIC_URL", ""), "/"),
			SecretsProvider: getEnv("SECRETS_PROVIDER", "env"),
			SecretName:      getEnv("AWS_SECRET_NAME", "wreckers-gateway"),
		},
		Query: QueryConfig{
			CatalogStaleTime: getDurationEnv("QUERY_CATALOG_STALE_TIME", 5*time.Minute),
			CatalogCacheTime: getDurationEnv("QUERY_CATALOG_CACHE_TIME", 10*time.Minute),
			ReviewsStaleTime: getDurationEnv("QUERY_REVIEWS_STALE_TIME", 10*time.Minute),
			ReviewsRetry:     getIntEnv("QUERY_REVIEWS_RETRY", 1),
			ContentStaleTime: getDurationEnv("QUERY_CONTENT_STALE_TIME", time.Minute),
			AdminCacheTime:   getDurationEnv("QUERY_ADMIN_CACHE_TIME", time.Minute),
			RetryDelay:       getDurationEnv("QUERY_RETRY_DELAY", time.Second),
		},
		Uploads: UploadsConfig{
			Provider:        strings.ToLower(getEnv("UPLOADS_PROVIDER", "backend")),
			MaxImageSizeMB:  getIntEnv("UPLOAD_MAX_IMAGE_MB", 10),
			MaxGalleryFiles: getIntEnv("UPLOAD_MAX_GALLERY_FILES", 12),
		},
		Security: SecurityConfig{
			RateLimitRequests:     getIntEnv("RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration:     getDurationEnv("RATE_LIMIT_DURATION", time.Minute),
			FormRateLimitRequests: getIntEnv("FORM_RATE_LIMIT_REQUESTS", 10),
			AllowedOrigins:        getSliceEnv("ALLOWED_ORIGINS", []string{"*"}),
			SecureHeaders:         getBoolEnv("SECURE_HEADERS", env == "production"),
			RequestIDHeader:       getEnv("REQUEST_ID_HEADER", "X-Request-ID"),
			AdminCookieName:       getEnv("ADMIN_COOKIE_NAME", "adminToken"),
			TrustedProxies:        getSliceEnv("TRUSTED_PROXIES", nil),
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxHeaderBytes:  getIntEnv("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			GracefulTimeout: getDurationEnv("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
			TLSEnabled:      getBoolEnv("TLS_ENABLED", false),
			TLSCertFile:     getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:      getEnv("TLS_KEY_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.IsProduction() {
		if err := (&ProductionValidator{}).Validate(cfg); err != nil {
			return nil, fmt.Errorf("production configuration invalid: %w", err)
		}
	}

	return cfg, nil
}

// DefaultBackendOrigin is used when no backend variable is set
const DefaultBackendOrigin = "http://localhost:5000"

// ResolveBackendURL turns a backend origin into the API base: trailing
// slashes and one existing /api suffix are dropped, then /api is appended.
func ResolveBackendURL(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		origin = DefaultBackendOrigin
	}
	origin = strings.TrimRight(origin, "/")
	origin = strings.TrimSuffix(origin, "/api")
	origin = strings.TrimRight(origin, "/")
	return origin + "/api"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateRequiredFields(c); err != nil {
		return err
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Redis.PoolSize <= 0 {
		return fmt.Errorf("redis pool size must be positive")
	}
	if c.Security.RateLimitRequests <= 0 || c.Security.FormRateLimitRequests <= 0 {
		return fmt.Errorf("rate limit requests must be positive")
	}
	if _, err := c.TrustedProxyPrefixes(); err != nil {
		return err
	}
	switch c.Uploads.Provider {
	case "backend", "s3":
	default:
		return fmt.Errorf("unknown uploads provider %q", c.Uploads.Provider)
	}
	if c.Uploads.MaxImageSizeMB <= 0 {
		return fmt.Errorf("upload max image size must be positive")
	}
	if c.Query.CatalogCacheTime < c.Query.CatalogStaleTime {
		return fmt.Errorf("catalog cache time must be >= catalog stale time")
	}

	return nil
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetRedisAddress returns the formatted Redis address
func (c *Config) GetRedisAddress() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// MaxImageBytes returns the upload size cap in bytes
func (c *Config) MaxImageBytes() int64 {
	return int64(c.Uploads.MaxImageSizeMB) << 20
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("APP_NAME", "wreckers-gateway")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(viper.GetString(key)); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty variable of keys
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := getEnv(key, ""); value != "" {
			return value
		}
	}
	return ""
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := getEnv(key, ""); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := getEnv(key, ""); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := getEnv(key, ""); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := getEnv(key, ""); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	pairs := strings.Split(queuesStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}

// TrustedProxyPrefixes parses Security.TrustedProxies. A bare address is
// treated as a single-host prefix.
func (c *Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.Security.TrustedProxies))
	for _, raw := range c.Security.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			addr, err := netip.ParseAddr(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}
