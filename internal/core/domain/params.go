// internal/core/domain/params.go
package domain

// Default listing sizes. MaxPageSize is enforced on incoming HTTP requests
// and used by batch jobs; services pass any positive size through.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PartsParams are the filters and paging of a parts listing. Empty strings
// mean "no filter" and are never sent to the backend.
type PartsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Year     string `json:"year,omitempty"`
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Category string `json:"category,omitempty"`
	Q        string `json:"q,omitempty"`
}

// Normalize fills in missing paging
func (p PartsParams) Normalize() PartsParams {
	p.Page, p.PageSize = normalizePaging(p.Page, p.PageSize)
	return p
}

// CarsParams are the filters and paging of a cars listing
type CarsParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Year     string `json:"year,omitempty"`
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Q        string `json:"q,omitempty"`
}

// Normalize fills in missing paging
func (p CarsParams) Normalize() CarsParams {
	p.Page, p.PageSize = normalizePaging(p.Page, p.PageSize)
	return p
}

// ListParams is plain paging used by admin listings
type ListParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Status   string `json:"status,omitempty"`
	Q        string `json:"q,omitempty"`
}

// Normalize fills in missing paging
func (p ListParams) Normalize() ListParams {
	p.Page, p.PageSize = normalizePaging(p.Page, p.PageSize)
	return p
}

func normalizePaging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return page, size
}

// Pagination is the paging metadata echoed from the backend. It is passed
// through untouched and never recomputed.
type Pagination struct {
	Page        FlexInt `json:"page"`
	PageSize    FlexInt `json:"pageSize"`
	Total       FlexInt `json:"total,omitempty"`
	Count       FlexInt `json:"count,omitempty"`
	TotalPages  FlexInt `json:"totalPages"`
	HasNextPage bool    `json:"hasNextPage"`
	HasPrevPage bool    `json:"hasPrevPage"`
}

// PartsPage is one page of normalized parts
type PartsPage struct {
	Items      []Part     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CarsPage is one page of cars
type CarsPage struct {
	Items      []Car      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// OffersPage is one page of offers
type OffersPage struct {
	Items      []OfferItem `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// OrdersPage is one page of orders
type OrdersPage struct {
	Items      []Order    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
