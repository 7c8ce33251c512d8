// internal/core/domain/content.go
package domain

import "strings"

// WpPost is a content post managed from the admin console
type WpPost struct {
	ID          FlexInt        `json:"id"`
	Title       FlexString     `json:"title"`
	Slug        FlexString     `json:"slug"`
	Content     FlexString     `json:"content"`
	Excerpt     FlexString     `json:"excerpt,omitempty"`
	Status      FlexString     `json:"status"`
	FeaturedURL FlexString     `json:"featuredImage,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	CreatedAt   FlexString     `json:"createdAt,omitempty"`
	UpdatedAt   FlexString     `json:"updatedAt,omitempty"`
}

// WpPostInput is the admin payload for a post
type WpPostInput struct {
	Title       string         `json:"title"`
	Slug        string         `json:"slug,omitempty"`
	Content     string         `json:"content"`
	Excerpt     string         `json:"excerpt,omitempty"`
	Status      string         `json:"status,omitempty"`
	FeaturedURL string         `json:"featuredImage,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// Validate checks the post payload
func (in *WpPostInput) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Title) == "" {
		errs.Add("title", "Title is required")
	}
	switch in.Status {
	case "", "draft", "publish", "private":
	default:
		errs.Add("status", "Status must be draft, publish or private")
	}
	return errs.OrNil()
}

// WpPostMeta is a single meta entry of a post
type WpPostMeta struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}
