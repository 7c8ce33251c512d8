// internal/adapters/apiclient/query.go
package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

// Query builds an outgoing query string. Absent values (nil, nil pointers,
// empty or blank strings, zero numbers) are never added.
type Query struct {
	values url.Values
}

// NewQuery creates an empty query
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Set adds key when value is present
func (q *Query) Set(key string, value any) *Query {
	if s, ok := present(value); ok {
		q.values.Set(key, s)
	}
	return q
}

// Values returns the collected parameters
func (q *Query) Values() url.Values {
	return q.values
}

// Encode returns the query in key-sorted form
func (q *Query) Encode() string {
	return q.values.Encode()
}

func present(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return present(*v)
	case int:
		if v == 0 {
			return "", false
		}
		return strconv.Itoa(v), true
	case int64:
		if v == 0 {
			return "", false
		}
		return strconv.FormatInt(v, 10), true
	case *int:
		if v == nil {
			return "", false
		}
		return present(*v)
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case fmt.Stringer:
		return present(v.String())
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return "", false
			}
			return present(rv.Elem().Interface())
		}
		return present(fmt.Sprint(v))
	}
}

// partsQuery encodes a parts listing; page and pageSize are always sent
func partsQuery(p domain.PartsParams) url.Values {
	p = p.Normalize()
	return NewQuery().
		Set("page", p.Page).
		Set("pageSize", p.PageSize).
		Set("year", p.Year).
		Set("make", p.Make).
		Set("model", p.Model).
		Set("category", p.Category).
		Set("q", p.Q).
		Values()
}

func carsQuery(p domain.CarsParams) url.Values {
	p = p.Normalize()
	return NewQuery().
		Set("page", p.Page).
		Set("pageSize", p.PageSize).
		Set("year", p.Year).
		Set("make", p.Make).
		Set("model", p.Model).
		Set("q", p.Q).
		Values()
}

func listQuery(p domain.ListParams) url.Values {
	p = p.Normalize()
	return NewQuery().
		Set("page", p.Page).
		Set("pageSize", p.PageSize).
		Set("status", p.Status).
		Set("q", p.Q).
		Values()
}
