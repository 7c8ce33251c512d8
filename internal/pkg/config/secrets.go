// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/samber/lo"
)

// Secret keys read at startup
const (
	SecretMapsAPIKey   = "GOOGLE_MAPS_API_KEY"
	SecretServiceToken = "BACKEND_SERVICE_TOKEN"
)

// SecretsManager reads secrets from a provider
type SecretsManager interface {
	GetSecret(ctx context.Context, key string) (string, error)
	GetSecrets(ctx context.Context, keys []string) (map[string]string, error)
	RefreshSecrets(ctx context.Context) error
}

// secretValueGetter is the part of the Secrets Manager client we use
type secretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsManager reads one JSON secret document from AWS Secrets Manager
// and serves keys out of a snapshot that is refetched after ttl.
type AWSSecretsManager struct {
	client     secretValueGetter
	secretName string
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger

	mu        sync.Mutex
	snapshot  map[string]string
	fetchedAt time.Time
}

// NewAWSSecretsManager creates a manager for secretName in region
func NewAWSSecretsManager(ctx context.Context, region, secretName string, logger *slog.Logger) (*AWSSecretsManager, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newAWSSecretsManager(secretsmanager.NewFromConfig(cfg), secretName, logger), nil
}

func newAWSSecretsManager(client secretValueGetter, secretName string, logger *slog.Logger) *AWSSecretsManager {
	return &AWSSecretsManager{
		client:     client,
		secretName: secretName,
		ttl:        5 * time.Minute,
		now:        time.Now,
		logger:     logger.With(slog.String("component", "secrets")),
	}
}

func (sm *AWSSecretsManager) GetSecret(ctx context.Context, key string) (string, error) {
	secrets, err := sm.GetSecrets(ctx, []string{key})
	if err != nil {
		return "", err
	}
	val, ok := secrets[key]
	if !ok {
		return "", fmt.Errorf("secret key %s not found in %s", key, sm.secretName)
	}
	return val, nil
}

// GetSecrets returns the subset of keys present in the secret document
func (sm *AWSSecretsManager) GetSecrets(ctx context.Context, keys []string) (map[string]string, error) {
	snapshot, err := sm.load(ctx)
	if err != nil {
		return nil, err
	}

	picked := lo.PickByKeys(snapshot, keys)
	for _, key := range lo.Without(keys, lo.Keys(picked)...) {
		sm.logger.WarnContext(ctx, "secret key missing", slog.String("key", key))
	}
	return picked, nil
}

// RefreshSecrets drops the snapshot and fetches it again
func (sm *AWSSecretsManager) RefreshSecrets(ctx context.Context) error {
	sm.mu.Lock()
	sm.snapshot = nil
	sm.mu.Unlock()

	_, err := sm.load(ctx)
	return err
}

func (sm *AWSSecretsManager) load(ctx context.Context) (map[string]string, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.snapshot != nil && sm.now().Sub(sm.fetchedAt) < sm.ttl {
		return sm.snapshot, nil
	}

	sm.logger.InfoContext(ctx, "fetching secrets", slog.String("secret_name", sm.secretName))

	out, err := sm.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(sm.secretName),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret value: %w", err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", sm.secretName)
	}

	var doc map[string]string
	if err := json.Unmarshal([]byte(*out.SecretString), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
	}
	if doc == nil {
		doc = map[string]string{}
	}

	sm.snapshot = doc
	sm.fetchedAt = sm.now()
	return doc, nil
}

// EnvSecretsManager reads secrets straight from the process environment
type EnvSecretsManager struct{}

func NewEnvSecretsManager() *EnvSecretsManager {
	return &EnvSecretsManager{}
}

func (EnvSecretsManager) GetSecret(_ context.Context, key string) (string, error) {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val, nil
	}
	return "", fmt.Errorf("environment variable %s not set", key)
}

// GetSecrets skips unset or empty variables
func (EnvSecretsManager) GetSecrets(_ context.Context, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			out[key] = val
		}
	}
	return out, nil
}

func (EnvSecretsManager) RefreshSecrets(context.Context) error {
	return nil
}

// NewSecretsManager returns the provider selected by cfg.AWS.SecretsProvider
func NewSecretsManager(ctx context.Context, cfg *Config, logger *slog.Logger) (SecretsManager, error) {
	switch cfg.AWS.SecretsProvider {
	case "", "env":
		return NewEnvSecretsManager(), nil
	case "aws":
		return NewAWSSecretsManager(ctx, cfg.AWS.Region, cfg.AWS.SecretName, logger)
	default:
		return nil, fmt.Errorf("unknown secrets provider %q", cfg.AWS.SecretsProvider)
	}
}

// ApplySecrets fills the maps key and backend service token from sm.
// Values already set in the environment win.
func ApplySecrets(ctx context.Context, cfg *Config, sm SecretsManager) error {
	secrets, err := sm.GetSecrets(ctx, []string{SecretMapsAPIKey, SecretServiceToken})
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	if cfg.Site.MapsAPIKey == "" {
		cfg.Site.MapsAPIKey = secrets[SecretMapsAPIKey]
	}
	if cfg.Backend.ServiceToken == "" {
		cfg.Backend.ServiceToken = secrets[SecretServiceToken]
	}
	return nil
}
