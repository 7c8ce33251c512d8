// internal/core/ports/backend.go
package ports

import (
	"context"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

// The interfaces below are the resource modules of the backend REST API.
// Implementations live in internal/adapters/apiclient.

// PartsAPI is the public parts resource
type PartsAPI interface {
	List(ctx context.Context, params domain.PartsParams) (*domain.PartsPage, error)
	Get(ctx context.Context, id string) (*domain.Part, error)
	SubmitOffer(ctx context.Context, partID string, req *domain.OfferRequest) (*domain.SubmissionResult, error)
	RequestQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.SubmissionResult, error)
}

// CarsAPI is the public cars resource
type CarsAPI interface {
	List(ctx context.Context, params domain.CarsParams) (*domain.CarsPage, error)
	Get(ctx context.Context, id string) (*domain.Car, error)
	SubmitSellForm(ctx context.Context, form *domain.SellCarForm) (*domain.SubmissionResult, error)
}

// AdminCarsAPI manages cars from the admin console. Requests bypass HTTP caches.
type AdminCarsAPI interface {
	List(ctx context.Context, params domain.CarsParams) (*domain.CarsPage, error)
	Get(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, in *domain.CarInput) (*domain.Car, error)
	Update(ctx context.Context, id int64, in *domain.CarInput) (*domain.Car, error)
	Delete(ctx context.Context, id int64) error
}

// AdminPartsAPI manages parts from the admin console
type AdminPartsAPI interface {
	Create(ctx context.Context, in *domain.PartInput) (*domain.Part, error)
	Update(ctx context.Context, id string, in *domain.PartInput) (*domain.Part, error)
	Delete(ctx context.Context, id string) error
}

// OffersAPI manages customer offers
type OffersAPI interface {
	List(ctx context.Context, params domain.ListParams) (*domain.OffersPage, error)
	UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) (*domain.OfferItem, error)
	Delete(ctx context.Context, id string) error
}

// CollectionsAPI lists vehicle makes and models
type CollectionsAPI interface {
	Makes(ctx context.Context) ([]domain.Make, error)
	Models(ctx context.Context, makeName string) ([]domain.Model, error)
}

// FiltersAPI returns the catalog filter options narrowed by the current selection
type FiltersAPI interface {
	Get(ctx context.Context, params domain.PartsParams) (*domain.FilterOptions, error)
}

// ShippingAPI prices shipments
type ShippingAPI interface {
	Rates(ctx context.Context, req *domain.ShippingRateRequest) ([]domain.ShippingRate, error)
}

// PaymentsAPI creates payment intents
type PaymentsAPI interface {
	CreateIntent(ctx context.Context, req *domain.PaymentIntentRequest, idempotencyKey string) (*domain.PaymentIntent, error)
}

// ImageUploader stores one image and reports where it lives
type ImageUploader interface {
	UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedImage, error)
}

// WpPostsAPI manages content posts and their meta
type WpPostsAPI interface {
	List(ctx context.Context, params domain.ListParams) ([]domain.WpPost, error)
	Get(ctx context.Context, id int64) (*domain.WpPost, error)
	Create(ctx context.Context, in *domain.WpPostInput) (*domain.WpPost, error)
	Update(ctx context.Context, id int64, in *domain.WpPostInput) (*domain.WpPost, error)
	Delete(ctx context.Context, id int64) error
	Meta(ctx context.Context, id int64) (map[string]any, error)
	GetMeta(ctx context.Context, id int64, key string) (*domain.WpPostMeta, error)
	SetMeta(ctx context.Context, id int64, key string, value any) (*domain.WpPostMeta, error)
}

// WarrantyAPI validates invoices and files claims
type WarrantyAPI interface {
	Validate(ctx context.Context, req *domain.WarrantyValidateRequest) (*domain.WarrantyValidation, error)
	Claim(ctx context.Context, claim *domain.WarrantyClaim) (*domain.SubmissionResult, error)
}

// ReviewsAPI lists customer testimonials
type ReviewsAPI interface {
	List(ctx context.Context, limit int) ([]domain.Review, error)
}

// ContactAPI sends general enquiries
type ContactAPI interface {
	Send(ctx context.Context, form *domain.ContactForm) (*domain.SubmissionResult, error)
}

// OrdersAPI lists orders for admins
type OrdersAPI interface {
	List(ctx context.Context, params domain.ListParams) (*domain.OrdersPage, error)
}

// TokenSource yields the admin bearer token, if one is available
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}
