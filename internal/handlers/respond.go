// internal/handlers/respond.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/adapters/apiclient"
	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/internal/pkg/logger"
)

// maxJSONBody caps decoded request bodies
const maxJSONBody = 1 << 20

// errorResponse is the body of every failed request
type errorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message, RequestID: logger.RequestID(r.Context())})
}

// writeError maps a service error to one response. fallback is the message
// shown when the failure has nothing useful to say to the visitor.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	ctx := r.Context()

	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:     "Please correct the highlighted fields",
			Fields:    fieldErrs,
			RequestID: logger.RequestID(ctx),
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrRecaptchaRequired):
		respondError(w, r, http.StatusBadRequest, "Please complete the reCAPTCHA verification")
		return
	case errors.Is(err, services.ErrGalleryUpload):
		log.ErrorContext(ctx, "gallery upload failed", slog.String("error", err.Error()))
		respondError(w, r, http.StatusBadGateway, "Failed to upload images. Please try again.")
		return
	case services.IsNotFound(err):
		respondError(w, r, http.StatusNotFound, "Not found")
		return
	case errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(ctx, "backend request timed out", slog.String("error", err.Error()))
		respondError(w, r, http.StatusGatewayTimeout, fallback)
		return
	case errors.Is(err, context.Canceled):
		// client went away
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			respondError(w, r, apiErr.StatusCode, apiErr.Message)
			return
		}
		log.ErrorContext(ctx, "backend request failed",
			slog.Int("status", apiErr.StatusCode),
			slog.String("error", err.Error()))
		respondError(w, r, http.StatusBadGateway, apiErr.Message)
		return
	}

	log.ErrorContext(ctx, "request failed", slog.String("error", err.Error()))
	respondError(w, r, http.StatusBadGateway, fallback)
}

// decodeJSON reads one JSON document into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// pathInt64 parses a numeric path value
func pathInt64(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

// pageSizeParam reads pageSize, capped at domain.MaxPageSize. Zero means
// "use the default".
func pageSizeParam(r *http.Request) int {
	return min(queryInt(r, "pageSize"), domain.MaxPageSize)
}

// listParams reads paging and the optional status/q filters
func listParams(r *http.Request) domain.ListParams {
	q := r.URL.Query()
	return domain.ListParams{
		Page:     queryInt(r, "page"),
		PageSize: pageSizeParam(r),
		Status:   strings.TrimSpace(q.Get("status")),
		Q:        strings.TrimSpace(q.Get("q")),
	}
}

// carsParams reads the cars listing filters
func carsParams(r *http.Request) domain.CarsParams {
	q := r.URL.Query()
	return domain.CarsParams{
		Page:     queryInt(r, "page"),
		PageSize: pageSizeParam(r),
		Year:     strings.TrimSpace(q.Get("year")),
		Make:     strings.ToUpper(strings.TrimSpace(q.Get("make"))),
		Model:    strings.ToUpper(strings.TrimSpace(q.Get("model"))),
		Q:        strings.TrimSpace(q.Get("q")),
	}
}
