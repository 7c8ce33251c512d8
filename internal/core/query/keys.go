// internal/core/query/keys.go
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

// Family groups cache keys of one resource; invalidation works per family
type Family string

// Query families
const (
	FamilyParts     Family = "parts"
	FamilyPart      Family = "part"
	FamilyCars      Family = "cars"
	FamilyCar       Family = "car"
	FamilyAdminCars Family = "admin-cars"
	FamilyOffers    Family = "offers"
	FamilyWpPosts   Family = "wp-posts"
	FamilyMakes     Family = "makes"
	FamilyModels    Family = "models"
	FamilyFilters   Family = "filters"
	FamilyReviews   Family = "reviews"
	FamilyOrders    Family = "orders"
)

const keyPrefix = "q"

// Pattern matches every cache key of the family
func (f Family) Pattern() string {
	return keyPrefix + ":" + string(f) + ":*"
}

// Params is the structural part of a key. Absent optional filters are
// stored as nil so they encode as explicit nulls.
type Params map[string]any

// Key identifies one cached query result
type Key struct {
	Family Family
	Params Params
}

// String encodes the key canonically: map keys are sorted by encoding/json,
// so equal params always give equal strings.
func (k Key) String() string {
	params := k.Params
	if params == nil {
		params = Params{}
	}

	data, err := json.Marshal(params)
	if err != nil {
		// Params hold only strings, numbers, bools and nils
		data = []byte(fmt.Sprintf("%q", fmt.Sprint(params)))
	}

	return keyPrefix + ":" + string(k.Family) + ":" + string(data)
}

// Equal reports whether two keys encode identically
func (k Key) Equal(other Key) bool {
	return k.String() == other.String()
}

// nullable maps the empty string to nil
func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// PartsKey is the key of a parts listing
func PartsKey(p domain.PartsParams) Key {
	p = p.Normalize()
	return Key{Family: FamilyParts, Params: Params{
		"page":     p.Page,
		"pageSize": p.PageSize,
		"year":     nullable(p.Year),
		"make":     nullable(p.Make),
		"model":    nullable(p.Model),
		"category": nullable(p.Category),
		"q":        nullable(p.Q),
	}}
}

// PartKey is the key of a single part
func PartKey(id string) Key {
	return Key{Family: FamilyPart, Params: Params{"id": id}}
}

// CarsKey is the key of a public cars listing
func CarsKey(p domain.CarsParams) Key {
	p = p.Normalize()
	return Key{Family: FamilyCars, Params: carsParams(p)}
}

// CarKey is the key of a single public car
func CarKey(id string) Key {
	return Key{Family: FamilyCar, Params: Params{"id": id}}
}

// AdminCarsKey is the key of the admin cars listing
func AdminCarsKey(p domain.CarsParams) Key {
	p = p.Normalize()
	return Key{Family: FamilyAdminCars, Params: carsParams(p)}
}

// AdminCarKey is the key of a single car in the admin console
func AdminCarKey(id int64) Key {
	return Key{Family: FamilyAdminCars, Params: Params{"id": id}}
}

func carsParams(p domain.CarsParams) Params {
	return Params{
		"page":     p.Page,
		"pageSize": p.PageSize,
		"year":     nullable(p.Year),
		"make":     nullable(p.Make),
		"model":    nullable(p.Model),
		"q":        nullable(p.Q),
	}
}

// OffersKey is the key of an offers listing
func OffersKey(p domain.ListParams) Key {
	return Key{Family: FamilyOffers, Params: listParams(p)}
}

// OrdersKey is the key of an orders listing
func OrdersKey(p domain.ListParams) Key {
	return Key{Family: FamilyOrders, Params: listParams(p)}
}

// WpPostsKey is the key of a posts listing
func WpPostsKey(p domain.ListParams) Key {
	return Key{Family: FamilyWpPosts, Params: listParams(p)}
}

// WpPostKey is the key of a single post
func WpPostKey(id int64) Key {
	return Key{Family: FamilyWpPosts, Params: Params{"id": id}}
}

// WpPostMetaKey is the key of a post's meta, or one entry when key is set
func WpPostMetaKey(id int64, key string) Key {
	return Key{Family: FamilyWpPosts, Params: Params{"id": id, "meta": nullable(key)}}
}

func listParams(p domain.ListParams) Params {
	p = p.Normalize()
	return Params{
		"page":     p.Page,
		"pageSize": p.PageSize,
		"status":   nullable(p.Status),
		"q":        nullable(p.Q),
	}
}

// MakesKey is the key of the makes collection
func MakesKey() Key {
	return Key{Family: FamilyMakes}
}

// ModelsKey is the key of the models of a make
func ModelsKey(makeName string) Key {
	return Key{Family: FamilyModels, Params: Params{"make": nullable(makeName)}}
}

// FiltersKey is the key of the filter options for a selection
func FiltersKey(p domain.PartsParams) Key {
	return Key{Family: FamilyFilters, Params: Params{
		"year":     nullable(p.Year),
		"make":     nullable(p.Make),
		"model":    nullable(p.Model),
		"category": nullable(p.Category),
	}}
}

// ReviewsKey is the key of the testimonials list
func ReviewsKey(limit int) Key {
	return Key{Family: FamilyReviews, Params: Params{"limit": limit}}
}
