// internal/handlers/catalog.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/catalog"
	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
)

const catalogFallback = "Failed to load the catalog. Please try again."

// CatalogHandler serves the public catalog
type CatalogHandler struct {
	parts   *services.PartsService
	catalog *services.CatalogService
	reviews *services.ReviewsService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(parts *services.PartsService, catalog *services.CatalogService, reviews *services.ReviewsService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		parts:   parts,
		catalog: catalog,
		reviews: reviews,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// ListParts handles GET /catalog/parts. The query string uses the same
// names the parts page keeps in its URL.
func (h *CatalogHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	state := catalog.FromValues(r.URL.Query())

	page, err := h.parts.List(r.Context(), state.Params(pageSizeParam(r)))
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	respondJSON(w, http.StatusOK, page)
}

// GetPart handles GET /catalog/parts/{id}
func (h *CatalogHandler) GetPart(w http.ResponseWriter, r *http.Request) {
	part, err := h.parts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}
	respondJSON(w, http.StatusOK, part)
}

// Filters handles GET /catalog/filters
func (h *CatalogHandler) Filters(w http.ResponseWriter, r *http.Request) {
	state := catalog.FromValues(r.URL.Query())

	opts, err := h.catalog.Filters(r.Context(), domain.PartsParams{
		Year:     state.Year,
		Make:     state.Make,
		Model:    state.Model,
		Category: state.Category,
	})
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}
	respondJSON(w, http.StatusOK, opts)
}

// Makes handles GET /catalog/makes
func (h *CatalogHandler) Makes(w http.ResponseWriter, r *http.Request) {
	makes, err := h.catalog.Makes(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": makes})
}

// Models handles GET /catalog/models?make=
func (h *CatalogHandler) Models(w http.ResponseWriter, r *http.Request) {
	makeName := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("make")))

	models, err := h.catalog.Models(r.Context(), makeName)
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": models})
}

// Cars handles GET /catalog/cars
func (h *CatalogHandler) Cars(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.Cars(r.Context(), carsParams(r))
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// Car handles GET /catalog/cars/{id}
func (h *CatalogHandler) Car(w http.ResponseWriter, r *http.Request) {
	car, err := h.catalog.Car(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.logger, err, catalogFallback)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

// Reviews handles GET /reviews?limit=
func (h *CatalogHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.List(r.Context(), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load reviews.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": reviews})
}
