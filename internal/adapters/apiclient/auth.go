// internal/adapters/apiclient/auth.go
package apiclient

import (
	"context"
	"sync"

	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

type tokenKey struct{}

// WithToken returns a context carrying the caller's admin token
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the admin token placed by WithToken
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// ContextTokenSource reads the token of the request being served
type ContextTokenSource struct{}

var _ ports.TokenSource = ContextTokenSource{}

// Token implements ports.TokenSource
func (ContextTokenSource) Token(ctx context.Context) (string, bool) {
	return TokenFromContext(ctx)
}

// MemoryTokenStore holds a single token in memory. Background jobs use it
// with the backend service token.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

var _ ports.TokenSource = (*MemoryTokenStore)(nil)

// NewMemoryTokenStore creates a new token store
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

// Set replaces the stored token
func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the stored token
func (s *MemoryTokenStore) Clear() {
	s.Set("")
}

// Token implements ports.TokenSource
func (s *MemoryTokenStore) Token(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}
