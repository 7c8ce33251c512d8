// internal/pkg/config/secrets_test.go
package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	value string
	err   error
	calls int
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: aws.String(f.value)}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAWSSecretsManager_GetSecrets(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches_once_then_serves_cache", func(t *testing.T) {
		fake := &fakeSecrets{value: `{"GOOGLE_MAPS_API_KEY":"maps","BACKEND_SERVICE_TOKEN":"svc"}`}
		sm := newAWSSecretsManager(fake, "wreckers", discardLogger())

		got, err := sm.GetSecrets(ctx, []string{SecretMapsAPIKey, SecretServiceToken})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{SecretMapsAPIKey: "maps", SecretServiceToken: "svc"}, got)

		val, err := sm.GetSecret(ctx, SecretMapsAPIKey)
		require.NoError(t, err)
		assert.Equal(t, "maps", val)
		assert.Equal(t, 1, fake.calls)
	})

	t.Run("missing_key_is_an_error_for_get_secret", func(t *testing.T) {
		sm := newAWSSecretsManager(&fakeSecrets{value: `{}`}, "wreckers", discardLogger())

		_, err := sm.GetSecret(ctx, "NOPE")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("provider_error_is_wrapped", func(t *testing.T) {
		sm := newAWSSecretsManager(&fakeSecrets{err: errors.New("access denied")}, "wreckers", discardLogger())

		_, err := sm.GetSecrets(ctx, []string{SecretMapsAPIKey})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})

	t.Run("invalid_json", func(t *testing.T) {
		sm := newAWSSecretsManager(&fakeSecrets{value: `not json`}, "wreckers", discardLogger())

		_, err := sm.GetSecrets(ctx, []string{SecretMapsAPIKey})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse secret JSON")
	})
}

func TestAWSSecretsManager_SnapshotExpiry(t *testing.T) {
	ctx := context.Background()
	fake := &fakeSecrets{value: `{"GOOGLE_MAPS_API_KEY":"maps"}`}
	sm := newAWSSecretsManager(fake, "wreckers", discardLogger())

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return clock }

	_, err := sm.GetSecret(ctx, SecretMapsAPIKey)
	require.NoError(t, err)

	clock = clock.Add(4 * time.Minute)
	_, err = sm.GetSecret(ctx, SecretMapsAPIKey)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)

	clock = clock.Add(2 * time.Minute)
	fake.value = `{"GOOGLE_MAPS_API_KEY":"rotated"}`
	val, err := sm.GetSecret(ctx, SecretMapsAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "rotated", val)
	assert.Equal(t, 2, fake.calls)

	require.NoError(t, sm.RefreshSecrets(ctx))
	assert.Equal(t, 3, fake.calls)
}

func TestApplySecrets_AWS(t *testing.T) {
	sm := newAWSSecretsManager(&fakeSecrets{value: `{"GOOGLE_MAPS_API_KEY":"maps","BACKEND_SERVICE_TOKEN":"svc"}`}, "wreckers", discardLogger())

	cfg := &Config{}
	require.NoError(t, ApplySecrets(context.Background(), cfg, sm))
	assert.Equal(t, "maps", cfg.Site.MapsAPIKey)
	assert.Equal(t, "svc", cfg.Backend.ServiceToken)
}
