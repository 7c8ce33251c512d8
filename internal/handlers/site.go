// internal/handlers/site.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
)

// SiteConfig is the public configuration the storefront boots with
type SiteConfig struct {
	SiteURL          string `json:"siteUrl"`
	MapsAPIKey       string `json:"mapsApiKey"`
	RecaptchaSiteKey string `json:"recaptchaSiteKey"`
	HolidayBannerKey string `json:"holidayBannerKey"`
	Environment      string `json:"environment"`
}

// SiteHandler serves site-wide documents
type SiteHandler struct {
	site   config.SiteConfig
	env    string
	cache  ports.CacheRepository
	tasks  ports.TaskEnqueuer
	logger *slog.Logger
}

// NewSiteHandler creates a new site handler. tasks may be nil.
func NewSiteHandler(cfg *config.Config, cache ports.CacheRepository, tasks ports.TaskEnqueuer, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		site:   cfg.Site,
		env:    cfg.App.Environment,
		cache:  cache,
		tasks:  tasks,
		logger: logger.With(slog.String("handler", "site")),
	}
}

// Config handles GET /site/config
func (h *SiteHandler) Config(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	respondJSON(w, http.StatusOK, SiteConfig{
		SiteURL:          h.site.URL,
		MapsAPIKey:       h.site.MapsAPIKey,
		RecaptchaSiteKey: h.site.RecaptchaSiteKey,
		HolidayBannerKey: h.site.HolidayBannerKey,
		Environment:      h.env,
	})
}

// Robots handles GET /robots.txt
func (h *SiteHandler) Robots(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api/*\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", strings.TrimRight(h.site.URL, "/"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(b.String()))
}

// Sitemap handles GET /sitemap.xml. The document is built by the worker;
// when it is missing a rebuild is requested and the visitor gets a 503.
func (h *SiteHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var doc string
	err := h.cache.Get(ctx, redis_a.SitemapKey, &doc)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			h.logger.ErrorContext(ctx, "failed to read sitemap", slog.String("error", err.Error()))
		}
		if h.tasks != nil {
			if err := h.tasks.EnqueueSitemapRefresh(ctx, "sitemap missing"); err != nil {
				h.logger.WarnContext(ctx, "failed to enqueue sitemap refresh", slog.String("error", err.Error()))
			}
		}
		w.Header().Set("Retry-After", "60")
		respondError(w, r, http.StatusServiceUnavailable, "Sitemap is being generated")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
