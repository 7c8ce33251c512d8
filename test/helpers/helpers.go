// test/helpers/helpers.go
package helpers

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
	Cache  *redis_a.Cache
}

// TestLogger logs errors only, or everything under -v
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// SetupTestRedis creates an in-memory Redis instance and a cache over it
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
		Cache:  redis_a.NewCache(client, time.Hour, TestLogger()),
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-gateway",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Backend: config.BackendConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 5 * time.Second,
		},
		Site: config.SiteConfig{
			URL:              "https://shop.example.com",
			MapsAPIKey:       "test-maps-key",
			RecaptchaSiteKey: "test-site-key",
			HolidayBannerKey: "holiday-closure-2025-dismissed",
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Asynq: config.AsynqConfig{
			RedisAddr:       "localhost:6379",
			Concurrency:     2,
			Queues:          map[string]int{"default": 1},
			RetryMax:        1,
			SitemapSchedule: "@hourly",
			WarmupSchedule:  "*/15 * * * *",
		},
		Query: config.QueryConfig{
			CatalogStaleTime: 5 * time.Minute,
			CatalogCacheTime: 10 * time.Minute,
			ReviewsStaleTime: 10 * time.Minute,
			ReviewsRetry:     1,
			ContentStaleTime: time.Minute,
			AdminCacheTime:   time.Minute,
			RetryDelay:       time.Millisecond,
		},
		Uploads: config.UploadsConfig{
			Provider:        "backend",
			MaxImageSizeMB:  1,
			MaxGalleryFiles: 5,
		},
		Security: config.SecurityConfig{
			RateLimitRequests:     100,
			RateLimitDuration:     time.Minute,
			FormRateLimitRequests: 5,
			AllowedOrigins:        []string{"*"},
			SecureHeaders:         false,
			RequestIDHeader:       "X-Request-ID",
			AdminCookieName:       "adminToken",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestPart creates a normalized part
func CreateTestPart(overrides ...func(*domain.Part)) domain.Part {
	model := "HILUX"
	part := domain.Part{
		ID:          gofakeit.UUID(),
		Title:       gofakeit.ProductName(),
		Price:       fmt.Sprintf("%.2f", gofakeit.Price(10, 999)),
		Year:        fmt.Sprint(gofakeit.Number(1990, 2024)),
		Model:       &model,
		Stock:       fmt.Sprint(gofakeit.Number(1, 20)),
		Description: gofakeit.Sentence(10),
		Image:       gofakeit.URL(),
		Category:    "Engine",
	}

	for _, override := range overrides {
		override(&part)
	}

	return part
}

// CreateTestPartInput creates a valid admin part payload
func CreateTestPartInput(overrides ...func(*domain.PartInput)) *domain.PartInput {
	in := &domain.PartInput{
		Title:       gofakeit.ProductName(),
		Price:       decimal.NewFromFloat(149.95),
		Year:        "2012",
		Make:        "TOYOTA",
		Model:       "HILUX",
		Stock:       "3",
		Description: gofakeit.Sentence(10),
		Category:    "Engine",
	}

	for _, override := range overrides {
		override(in)
	}

	return in
}

// CreateTestCar creates a car as the backend reports it
func CreateTestCar(overrides ...func(*domain.Car)) domain.Car {
	car := domain.Car{
		CID:       domain.FlexInt(gofakeit.Number(1, 100000)),
		Name:      "2012 Toyota Hilux",
		Make:      "TOYOTA",
		ProdCat:   "ute",
		Year:      "2012",
		ModelID:   "17",
		Model:     "HILUX",
		DateAdded: "2025-05-01",
	}

	for _, override := range overrides {
		override(&car)
	}

	return car
}

// CreateTestCarInput creates a valid admin car payload
func CreateTestCarInput(overrides ...func(*domain.CarInput)) *domain.CarInput {
	in := &domain.CarInput{
		Name:  "2012 Toyota Hilux",
		Make:  "TOYOTA",
		Year:  "2012",
		Model: "HILUX",
	}

	for _, override := range overrides {
		override(in)
	}

	return in
}

// CreateTestContactForm creates a valid contact form with a token
func CreateTestContactForm(overrides ...func(*domain.ContactForm)) *domain.ContactForm {
	form := &domain.ContactForm{
		Name:           "Jane Citizen",
		Email:          gofakeit.Email(),
		Phone:          "0412 345 678",
		Message:        "Do you have a gearbox for a 2012 Hilux?",
		RecaptchaToken: gofakeit.UUID(),
	}

	for _, override := range overrides {
		override(form)
	}

	return form
}

// CreateTestOfferRequest creates a valid offer with a token
func CreateTestOfferRequest(overrides ...func(*domain.OfferRequest)) *domain.OfferRequest {
	req := &domain.OfferRequest{
		Name:           "Jane Citizen",
		Email:          gofakeit.Email(),
		OfferPrice:     decimal.NewFromFloat(120.50),
		Message:        "Would you take this?",
		RecaptchaToken: gofakeit.UUID(),
	}

	for _, override := range overrides {
		override(req)
	}

	return req
}

// CreateTestQuoteRequest creates a valid quote request with a token
func CreateTestQuoteRequest(overrides ...func(*domain.QuoteRequest)) *domain.QuoteRequest {
	req := &domain.QuoteRequest{
		Name:           "Jane Citizen",
		Email:          gofakeit.Email(),
		Phone:          "0412 345 678",
		Make:           "TOYOTA",
		Model:          "HILUX",
		Year:           "2012",
		PartName:       "Alternator",
		Quantity:       1,
		RecaptchaToken: gofakeit.UUID(),
	}

	for _, override := range overrides {
		override(req)
	}

	return req
}

// CreateTestImage returns a small PNG upload
func CreateTestImage(t *testing.T, name string) domain.UploadFile {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return domain.UploadFile{
		Name:        name,
		ContentType: "image/png",
		Data:        buf.Bytes(),
	}
}
