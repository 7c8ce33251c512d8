// internal/adapters/apiclient/page.go
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

// decodePage reads a list response in any of the shapes the backend uses:
// a bare array, {data, pagination}, {<key>, pagination} or an envelope with
// the paging fields inline. Pagination is returned as sent.
func decodePage[T any](body []byte, key string) ([]T, domain.Pagination, error) {
	var pagination domain.Pagination

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []T{}, pagination, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, pagination, fmt.Errorf("failed to decode response: %w", err)
		}
		return items, pagination, nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, pagination, fmt.Errorf("failed to decode response: %w", err)
	}

	items := []T{}
	for _, k := range []string{"data", key} {
		raw, ok := env[k]
		if !ok || isNull(raw) {
			continue
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, pagination, fmt.Errorf("failed to decode %s: %w", k, err)
		}
		break
	}

	source := trimmed
	if raw, ok := env["pagination"]; ok && !isNull(raw) {
		source = raw
	}
	if err := json.Unmarshal(source, &pagination); err != nil {
		return nil, pagination, fmt.Errorf("failed to decode pagination: %w", err)
	}

	return items, pagination, nil
}
