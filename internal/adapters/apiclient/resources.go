// internal/adapters/apiclient/resources.go
package apiclient

// Resources groups every backend resource module over one Client
type Resources struct {
	Parts       *PartsAPI
	Cars        *CarsAPI
	AdminCars   *AdminCarsAPI
	AdminParts  *AdminPartsAPI
	Offers      *OffersAPI
	Collections *CollectionsAPI
	Filters     *FiltersAPI
	Reviews     *ReviewsAPI
	Shipping    *ShippingAPI
	Payments    *PaymentsAPI
	Orders      *OrdersAPI
	Uploads     *UploadsAPI
	WpPosts     *WpPostsAPI
	Warranty    *WarrantyAPI
	Contact     *ContactAPI
}

// NewResources creates every resource module
func NewResources(c *Client) *Resources {
	return &Resources{
		Parts:       NewPartsAPI(c),
		Cars:        NewCarsAPI(c),
		AdminCars:   NewAdminCarsAPI(c),
		AdminParts:  NewAdminPartsAPI(c),
		Offers:      NewOffersAPI(c),
		Collections: NewCollectionsAPI(c),
		Filters:     NewFiltersAPI(c),
		Reviews:     NewReviewsAPI(c),
		Shipping:    NewShippingAPI(c),
		Payments:    NewPaymentsAPI(c),
		Orders:      NewOrdersAPI(c),
		Uploads:     NewUploadsAPI(c),
		WpPosts:     NewWpPostsAPI(c),
		Warranty:    NewWarrantyAPI(c),
		Contact:     NewContactAPI(c),
	}
}
