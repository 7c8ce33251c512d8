// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ammerola/wreckers-gateway/internal/handlers/middleware"
	"github.com/ammerola/wreckers-gateway/internal/pkg/config"
)

// Handlers is every route group of the gateway
type Handlers struct {
	Health   *HealthHandler
	Site     *SiteHandler
	Catalog  *CatalogHandler
	Forms    *FormsHandler
	Checkout *CheckoutHandler
	Admin    *AdminHandler
}

// Limiters are the rate limiters the router applies. Either may be nil.
type Limiters struct {
	Global *middleware.RateLimiter
	Forms  *middleware.RateLimiter
}

// NewRouter registers every route and wraps the mux in the middleware chain
func NewRouter(cfg *config.Config, h Handlers, limits Limiters, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health and site documents
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Readiness)
	mux.HandleFunc("GET /robots.txt", h.Site.Robots)
	mux.HandleFunc("GET /sitemap.xml", h.Site.Sitemap)
	mux.HandleFunc("GET /site/config", h.Site.Config)

	// Catalog
	mux.HandleFunc("GET /catalog/parts", h.Catalog.ListParts)
	mux.HandleFunc("GET /catalog/parts/{id}", h.Catalog.GetPart)
	mux.HandleFunc("GET /catalog/filters", h.Catalog.Filters)
	mux.HandleFunc("GET /catalog/makes", h.Catalog.Makes)
	mux.HandleFunc("GET /catalog/models", h.Catalog.Models)
	mux.HandleFunc("GET /catalog/cars", h.Catalog.Cars)
	mux.HandleFunc("GET /catalog/cars/{id}", h.Catalog.Car)
	mux.HandleFunc("GET /reviews", h.Catalog.Reviews)

	// Public forms are rate limited per client
	form := func(fn http.HandlerFunc) http.Handler {
		if limits.Forms == nil {
			return fn
		}
		return limits.Forms.Middleware(fn)
	}
	mux.Handle("POST /forms/contact", form(h.Forms.Contact))
	mux.Handle("POST /forms/quote", form(h.Forms.Quote))
	mux.Handle("POST /forms/sell-car", form(h.Forms.SellCar))
	mux.Handle("POST /forms/warranty/validate", form(h.Forms.ValidateWarranty))
	mux.Handle("POST /forms/warranty/claim", form(h.Forms.ClaimWarranty))
	mux.Handle("POST /catalog/parts/{id}/offer", form(h.Forms.Offer))

	// Checkout
	mux.HandleFunc("POST /checkout/rates", h.Checkout.Rates)
	mux.Handle("POST /checkout/payment-intent", form(h.Checkout.PaymentIntent))

	// Admin console
	auth := middleware.AdminAuth(cfg.Security.AdminCookieName)
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth(fn))
	}
	admin("GET /admin/cars", h.Admin.ListCars)
	admin("POST /admin/cars", h.Admin.CreateCar)
	admin("GET /admin/cars/{id}", h.Admin.GetCar)
	admin("PUT /admin/cars/{id}", h.Admin.UpdateCar)
	admin("DELETE /admin/cars/{id}", h.Admin.DeleteCar)
	admin("POST /admin/parts", h.Admin.CreatePart)
	admin("PUT /admin/parts/{id}", h.Admin.UpdatePart)
	admin("DELETE /admin/parts/{id}", h.Admin.DeletePart)
	admin("GET /admin/offers", h.Admin.ListOffers)
	admin("PATCH /admin/offers/{id}", h.Admin.UpdateOfferStatus)
	admin("DELETE /admin/offers/{id}", h.Admin.DeleteOffer)
	admin("GET /admin/posts", h.Admin.ListPosts)
	admin("POST /admin/posts", h.Admin.CreatePost)
	admin("GET /admin/posts/{id}", h.Admin.GetPost)
	admin("PUT /admin/posts/{id}", h.Admin.UpdatePost)
	admin("DELETE /admin/posts/{id}", h.Admin.DeletePost)
	admin("GET /admin/posts/{id}/meta", h.Admin.PostMeta)
	admin("GET /admin/posts/{id}/meta/{key}", h.Admin.GetPostMeta)
	admin("PUT /admin/posts/{id}/meta/{key}", h.Admin.SetPostMeta)
	admin("POST /admin/uploads/image", h.Admin.UploadImage)
	admin("GET /admin/orders", h.Admin.ListOrders)

	proxies, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		logger.Warn("ignoring trusted proxies", slog.String("error", err.Error()))
	}

	// Outermost first
	mws := []func(http.Handler) http.Handler{
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.ClientIP(proxies),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	if limits.Global != nil {
		mws = append(mws, limits.Global.Middleware)
	}
	mws = append(mws, middleware.Timeout(requestTimeout(cfg)), middleware.Compression)

	return middleware.Chain(mux, mws...)
}

// requestTimeout leaves room under the write timeout to send the error
func requestTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.WriteTimeout <= time.Second {
		return cfg.Server.WriteTimeout
	}
	return cfg.Server.WriteTimeout - time.Second
}
