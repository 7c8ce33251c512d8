// internal/adapters/apiclient/parts.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// PartsAPI is the public parts resource
type PartsAPI struct {
	c      *Client
	logger *slog.Logger
}

var _ ports.PartsAPI = (*PartsAPI)(nil)

// NewPartsAPI creates a new parts resource
func NewPartsAPI(c *Client) *PartsAPI {
	return &PartsAPI{c: c, logger: c.logger.With(slog.String("resource", "parts"))}
}

// List fetches one page of parts, normalized and de-duplicated by id
func (a *PartsAPI) List(ctx context.Context, params domain.PartsParams) (*domain.PartsPage, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "parts", partsQuery(params), nil)
	if err != nil {
		return nil, err
	}

	return decodePartsPage(body, a.logger)
}

func decodePartsPage(body []byte, logger *slog.Logger) (*domain.PartsPage, error) {
	raws, pagination, err := decodePage[domain.RawPart](body, "parts")
	if err != nil {
		return nil, err
	}

	return &domain.PartsPage{
		Items:      domain.NormalizeParts(raws, logger),
		Pagination: pagination,
	}, nil
}

// Get fetches a single part
func (a *PartsAPI) Get(ctx context.Context, id string) (*domain.Part, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "parts/"+pathID(id), nil, nil)
	if err != nil {
		return nil, err
	}

	raw, err := unwrap[domain.RawPart](body, "part")
	if err != nil {
		return nil, err
	}

	part := domain.NormalizePart(raw, a.logger)
	return &part, nil
}

// SubmitOffer posts a customer offer on a part
func (a *PartsAPI) SubmitOffer(ctx context.Context, partID string, req *domain.OfferRequest) (*domain.SubmissionResult, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "parts/"+pathID(partID)+"/offer", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeSubmission(body)
}

// RequestQuote posts a quote request for an unlisted part
func (a *PartsAPI) RequestQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.SubmissionResult, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "parts/quote-request", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeSubmission(body)
}

// decodeSubmission treats any 2xx as success unless the body says otherwise
func decodeSubmission(body []byte) (*domain.SubmissionResult, error) {
	result := domain.SubmissionResult{Success: true}
	if len(bytes.TrimSpace(body)) == 0 {
		return &result, nil
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
