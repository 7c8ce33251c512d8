// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strings"
)

// ProductionValidator rejects settings that are only acceptable in development
type ProductionValidator struct{}

// Validate runs every production rule and reports all failures together
func (v *ProductionValidator) Validate(cfg *Config) error {
	rules := []func(*Config) error{
		checkBackend,
		checkBrowserFacing,
		checkUploads,
		checkTLS,
	}

	var errs []error
	for _, rule := range rules {
		if err := rule(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkBackend(cfg *Config) error {
	if isPlaceholder(cfg.Backend.ServiceToken) {
		return fmt.Errorf("%w: backend service token", ErrMissingRequiredConfig)
	}

	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("backend URL %q is not absolute", cfg.Backend.BaseURL)
	}
	if host := u.Hostname(); host == "localhost" || strings.HasPrefix(host, "127.") {
		return fmt.Errorf("backend URL must not point at localhost in production")
	}
	return nil
}

func checkBrowserFacing(cfg *Config) error {
	switch {
	case cfg.Site.RecaptchaSiteKey == "":
		return fmt.Errorf("%w: recaptcha site key", ErrMissingRequiredConfig)
	case !cfg.Security.SecureHeaders:
		return fmt.Errorf("secure headers must be enabled in production")
	case len(cfg.Security.AllowedOrigins) == 0:
		return fmt.Errorf("allowed origins must be configured in production")
	case slices.Contains(cfg.Security.AllowedOrigins, "*"):
		return fmt.Errorf("wildcard origin (*) not allowed in production")
	}
	return nil
}

func checkUploads(cfg *Config) error {
	if cfg.Uploads.Provider == "s3" && cfg.AWS.S3Bucket == "" {
		return fmt.Errorf("%w: S3 bucket", ErrMissingRequiredConfig)
	}
	return nil
}

func checkTLS(cfg *Config) error {
	if cfg.Server.TLSEnabled && (cfg.Server.TLSCertFile == "" || cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("TLS cert and key files must be provided when TLS is enabled")
	}
	return nil
}

// isPlaceholder matches values left unset by deploy templates
func isPlaceholder(s string) bool {
	return strings.Contains(s, "MISSING_")
}

// validateRequiredFields walks cfg and fails on the first field tagged
// required:"true" that holds its zero value or a placeholder.
func validateRequiredFields(cfg interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	return walkRequired(v, "")
}

func walkRequired(v reflect.Value, path string) error {
	for _, field := range reflect.VisibleFields(v.Type()) {
		if len(field.Index) > 1 {
			continue
		}
		name := field.Name
		if path != "" {
			name = path + "." + name
		}

		value := v.FieldByIndex(field.Index)
		if field.Tag.Get("required") == "true" && isUnset(value) {
			return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, name)
		}
		if value.Kind() == reflect.Struct {
			if err := walkRequired(value, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func isUnset(v reflect.Value) bool {
	if v.Kind() == reflect.String {
		return v.String() == "" || strings.HasPrefix(v.String(), "MISSING_")
	}
	return v.IsZero()
}
