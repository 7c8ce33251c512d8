// internal/pkg/config/config_test.go
package config_test

import (
	"context"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
	"github.com/ammerola/wreckers-gateway/test/helpers"
)

func TestResolveBackendURL(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		expected string
	}{
		{name: "bare_origin", origin: "https://api.example.com", expected: "https://api.example.com/api"},
		{name: "trailing_slashes", origin: "https://api.example.com///", expected: "https://api.example.com/api"},
		{name: "existing_api_suffix", origin: "https://api.example.com/api", expected: "https://api.example.com/api"},
		{name: "api_suffix_with_slash", origin: "https://api.example.com/api/", expected: "https://api.example.com/api"},
		{name: "only_one_api_stripped", origin: "https://api.example.com/api/api", expected: "https://api.example.com/api/api"},
		{name: "empty_uses_default", origin: "  ", expected: config.DefaultBackendOrigin + "/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.ResolveBackendURL(tt.origin))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("backend_variables_in_priority_order", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("NEXT_PUBLIC_BACK_END", "")
		t.Setenv("BACK_END", "https://backend.example.com/")
		t.Setenv("BACKEND_URL", "https://ignored.example.com")

		cfg, err := config.Load(helpers.TestLogger())
		require.NoError(t, err)
		assert.Equal(t, "https://backend.example.com/api", cfg.Backend.BaseURL)
	})

	t.Run("maps_key_falls_back_to_server_variable", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("NEXT_PUBLIC_GOOGLE_MAPS_API_KEY", "")
		t.Setenv("GOOGLE_MAPS_API_KEY", "maps-key")
		t.Setenv("NEXT_PUBLIC_RECAPTCHA_SITE_KEY", "site-key")

		cfg, err := config.Load(helpers.TestLogger())
		require.NoError(t, err)
		assert.Equal(t, "maps-key", cfg.Site.MapsAPIKey)
		assert.Equal(t, "site-key", cfg.Site.RecaptchaSiteKey)
		assert.Equal(t, "holiday-closure-2025-dismissed", cfg.Site.HolidayBannerKey)
	})

	t.Run("reads_typed_values", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("QUERY_CATALOG_STALE_TIME", "2m")
		t.Setenv("QUERY_CATALOG_CACHE_TIME", "4m")
		t.Setenv("UPLOAD_MAX_IMAGE_MB", "3")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
		t.Setenv("ASYNQ_QUEUES", "critical:5,low:1")

		cfg, err := config.Load(helpers.TestLogger())
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, cfg.Query.CatalogStaleTime)
		assert.Equal(t, int64(3<<20), cfg.MaxImageBytes())
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Security.AllowedOrigins)
		assert.Equal(t, map[string]int{"critical": 5, "low": 1}, cfg.Asynq.Queues)
	})

	t.Run("parses_trusted_proxies", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

		cfg, err := config.Load(helpers.TestLogger())
		require.NoError(t, err)
		prefixes, err := cfg.TrustedProxyPrefixes()
		require.NoError(t, err)
		assert.Equal(t, []netip.Prefix{
			netip.MustParsePrefix("10.0.0.0/8"),
			netip.MustParsePrefix("192.168.1.10/32"),
		}, prefixes)
	})

	t.Run("rejects_bad_trusted_proxy", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/33")

		_, err := config.Load(helpers.TestLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid trusted proxy")
	})

	t.Run("rejects_unknown_upload_provider", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")
		t.Setenv("UPLOADS_PROVIDER", "ftp")

		_, err := config.Load(helpers.TestLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown uploads provider")
	})
}

func TestProductionValidator(t *testing.T) {
	valid := func() *config.Config {
		cfg := helpers.LoadTestConfig()
		cfg.App.Environment = "production"
		cfg.Backend.BaseURL = "https://backend.example.com/api"
		cfg.Site.RecaptchaSiteKey = "site-key"
		cfg.Security.SecureHeaders = true
		cfg.Security.AllowedOrigins = []string{"https://shop.example.com"}
		return cfg
	}

	tests := []struct {
		name          string
		mutate        func(*config.Config)
		errorContains string
		missing       bool
	}{
		{name: "valid_production_config", mutate: func(*config.Config) {}},
		{
			name:          "localhost_backend",
			mutate:        func(c *config.Config) { c.Backend.BaseURL = "http://localhost:5000/api" },
			errorContains: "localhost",
		},
		{
			name:    "missing_recaptcha_key",
			mutate:  func(c *config.Config) { c.Site.RecaptchaSiteKey = "" },
			missing: true,
		},
		{
			name:          "wildcard_origin",
			mutate:        func(c *config.Config) { c.Security.AllowedOrigins = []string{"*"} },
			errorContains: "wildcard",
		},
		{
			name:          "secure_headers_off",
			mutate:        func(c *config.Config) { c.Security.SecureHeaders = false },
			errorContains: "secure headers",
		},
		{
			name:    "placeholder_service_token",
			mutate:  func(c *config.Config) { c.Backend.ServiceToken = "MISSING_TOKEN" },
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := (&config.ProductionValidator{}).Validate(cfg)
			switch {
			case tt.missing:
				require.Error(t, err)
				assert.True(t, errors.Is(err, config.ErrMissingRequiredConfig))
			case tt.errorContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("requires_backend_url", func(t *testing.T) {
		cfg := helpers.LoadTestConfig()
		cfg.Backend.BaseURL = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrMissingRequiredConfig))
		assert.Contains(t, err.Error(), "Backend.BaseURL")
	})

	t.Run("test_config_is_valid", func(t *testing.T) {
		require.NoError(t, helpers.LoadTestConfig().Validate())
	})
}

func TestApplySecrets_Env(t *testing.T) {
	t.Setenv(config.SecretMapsAPIKey, "maps-from-env")
	t.Setenv(config.SecretServiceToken, "token-from-env")

	cfg := helpers.LoadTestConfig()
	cfg.Site.MapsAPIKey = ""
	cfg.Backend.ServiceToken = "already-set"

	require.NoError(t, config.ApplySecrets(context.Background(), cfg, config.NewEnvSecretsManager()))
	assert.Equal(t, "maps-from-env", cfg.Site.MapsAPIKey)
	assert.Equal(t, "already-set", cfg.Backend.ServiceToken)
}
