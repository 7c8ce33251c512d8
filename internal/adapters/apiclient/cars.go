// internal/adapters/apiclient/cars.go
package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// CarsAPI is the public cars resource
type CarsAPI struct {
	c *Client
}

var _ ports.CarsAPI = (*CarsAPI)(nil)

// NewCarsAPI creates a new cars resource
func NewCarsAPI(c *Client) *CarsAPI {
	return &CarsAPI{c: c}
}

// List fetches one page of cars
func (a *CarsAPI) List(ctx context.Context, params domain.CarsParams) (*domain.CarsPage, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "cars", carsQuery(params), nil)
	if err != nil {
		return nil, err
	}
	return decodeCarsPage(body)
}

// Get fetches a single car
func (a *CarsAPI) Get(ctx context.Context, id string) (*domain.Car, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "cars/"+pathID(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCar(body)
}

// SubmitSellForm posts a sell-your-car enquiry
func (a *CarsAPI) SubmitSellForm(ctx context.Context, form *domain.SellCarForm) (*domain.SubmissionResult, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "cars/sell-form", nil, form)
	if err != nil {
		return nil, err
	}
	return decodeSubmission(body)
}

func decodeCarsPage(body []byte) (*domain.CarsPage, error) {
	cars, pagination, err := decodePage[domain.Car](body, "cars")
	if err != nil {
		return nil, err
	}
	return &domain.CarsPage{Items: cars, Pagination: pagination}, nil
}

func decodeCar(body []byte) (*domain.Car, error) {
	car, err := unwrap[domain.Car](body, "car")
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// AdminCarsAPI manages cars for the admin console. Every request asks
// intermediaries not to cache so the console sees its own writes.
type AdminCarsAPI struct {
	c *Client
}

var _ ports.AdminCarsAPI = (*AdminCarsAPI)(nil)

// NewAdminCarsAPI creates a new admin cars resource
func NewAdminCarsAPI(c *Client) *AdminCarsAPI {
	return &AdminCarsAPI{c: c}
}

func carPath(id int64) string {
	return "admin/cars/" + strconv.FormatInt(id, 10)
}

// List fetches one page of cars bypassing caches
func (a *AdminCarsAPI) List(ctx context.Context, params domain.CarsParams) (*domain.CarsPage, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "admin/cars", carsQuery(params), nil, noStore())
	if err != nil {
		return nil, err
	}
	return decodeCarsPage(body)
}

// Get fetches a car by its effective id
func (a *AdminCarsAPI) Get(ctx context.Context, id int64) (*domain.Car, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, carPath(id), nil, nil, noStore())
	if err != nil {
		return nil, err
	}
	return decodeCar(body)
}

// Create adds a car
func (a *AdminCarsAPI) Create(ctx context.Context, in *domain.CarInput) (*domain.Car, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "admin/cars", nil, in, noStore())
	if err != nil {
		return nil, err
	}
	return decodeCar(body)
}

// Update replaces a car's fields
func (a *AdminCarsAPI) Update(ctx context.Context, id int64, in *domain.CarInput) (*domain.Car, error) {
	body, err := a.c.doJSON(ctx, http.MethodPut, carPath(id), nil, in, noStore())
	if err != nil {
		return nil, err
	}
	return decodeCar(body)
}

// Delete removes a car
func (a *AdminCarsAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.c.doJSON(ctx, http.MethodDelete, carPath(id), nil, nil, noStore())
	return err
}
