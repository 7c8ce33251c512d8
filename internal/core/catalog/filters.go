// internal/core/catalog/filters.go
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

// Query string parameter names
const (
	ParamPage     = "page"
	ParamYear     = "year"
	ParamMake     = "make"
	ParamModel    = "model"
	ParamCategory = "category"
	ParamQuery    = "q"
)

// FilterState is what the parts page shows: the active filters and the
// current page. An empty string means the filter is not set.
type FilterState struct {
	Page     int    `json:"page"`
	Year     string `json:"year,omitempty"`
	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Category string `json:"category,omitempty"`
	Q        string `json:"q,omitempty"`
}

// Params turns the state into listing params
func (f FilterState) Params(pageSize int) domain.PartsParams {
	return domain.PartsParams{
		Page:     f.Page,
		PageSize: pageSize,
		Year:     f.Year,
		Make:     f.Make,
		Model:    f.Model,
		Category: f.Category,
		Q:        f.Q,
	}.Normalize()
}

// WithFilters replaces the filters and goes back to the first page
func (f FilterState) WithFilters(next FilterState) FilterState {
	next.Page = 1
	return next
}

// Encode builds the query string for f. Unset filters are left out; page is
// always present.
func Encode(f FilterState) string {
	v := url.Values{}

	page := f.Page
	if page < 1 {
		page = 1
	}
	v.Set(ParamPage, strconv.Itoa(page))

	setIf(v, ParamYear, f.Year)
	setIf(v, ParamMake, f.Make)
	setIf(v, ParamModel, f.Model)
	setIf(v, ParamCategory, f.Category)
	setIf(v, ParamQuery, f.Q)

	return v.Encode()
}

func setIf(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}

// Decode reads a query string into a fresh state. Every filter starts unset
// and only the ones present are applied. Make and model are uppercased
// because the backend matches them case-sensitively.
func Decode(rawQuery string) FilterState {
	// malformed pairs are skipped; the rest still apply
	v, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return FromValues(v)
}

// FromValues is Decode over already parsed values
func FromValues(v url.Values) FilterState {
	state := FilterState{Page: 1}

	if p, err := strconv.Atoi(strings.TrimSpace(v.Get(ParamPage))); err == nil && p > 0 {
		state.Page = p
	}
	state.Year = strings.TrimSpace(v.Get(ParamYear))
	state.Make = strings.ToUpper(strings.TrimSpace(v.Get(ParamMake)))
	state.Model = strings.ToUpper(strings.TrimSpace(v.Get(ParamModel)))
	state.Category = strings.TrimSpace(v.Get(ParamCategory))
	state.Q = strings.TrimSpace(v.Get(ParamQuery))

	return state
}
