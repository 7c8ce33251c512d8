// internal/core/domain/flex.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexString decodes a JSON string, number or bool into its string form.
// A JSON null decodes to the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	v, err := decodeAny(data)
	if err != nil {
		return err
	}
	*s = FlexString(str(v))
	return nil
}

// String returns the underlying string
func (s FlexString) String() string {
	return string(s)
}

// FlexInt decodes a JSON number or numeric string into an int64.
// null, empty and non-numeric values decode to 0.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	v, err := decodeAny(data)
	if err != nil {
		return err
	}

	*i = 0
	s := strings.TrimSpace(str(v))
	if s == "" {
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = FlexInt(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*i = FlexInt(int64(f))
	}
	return nil
}

// String returns the decimal representation, or "" for zero
func (i FlexInt) String() string {
	if i == 0 {
		return ""
	}
	return strconv.FormatInt(int64(i), 10)
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode flexible value: %w", err)
	}
	return v, nil
}

// str is the total string coercion used by the normalizers:
// nil becomes "", everything else its canonical string form.
func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case FlexString:
		return string(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case *string:
		if t == nil {
			return ""
		}
		return *t
	default:
		return fmt.Sprint(t)
	}
}

// num accepts a number or numeric string and returns it only when it is
// finite and strictly greater than zero. Zero and negatives count as absent.
func num(v any) *float64 {
	var f float64

	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	case *float64:
		if t == nil {
			return nil
		}
		f = *t
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return nil
	}
	return &f
}
