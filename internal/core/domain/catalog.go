// internal/core/domain/catalog.go
package domain

// Make is a vehicle make from the collections endpoint
type Make struct {
	ID   FlexString `json:"id"`
	Name FlexString `json:"name"`
	Slug FlexString `json:"slug,omitempty"`
}

// Model is a vehicle model belonging to a make
type Model struct {
	ID     FlexString `json:"id"`
	Name   FlexString `json:"name"`
	MakeID FlexString `json:"makeId,omitempty"`
	Make   FlexString `json:"make,omitempty"`
}

// FilterOptions are the values the catalog filters can take
type FilterOptions struct {
	Years      []FlexString `json:"years"`
	Makes      []FlexString `json:"makes"`
	Models     []FlexString `json:"models"`
	Categories []FlexString `json:"categories"`
}

// Review is a customer testimonial
type Review struct {
	ID        FlexString `json:"id"`
	Author    FlexString `json:"author"`
	Rating    FlexInt    `json:"rating"`
	Text      FlexString `json:"text"`
	Source    FlexString `json:"source,omitempty"`
	CreatedAt FlexString `json:"createdAt,omitempty"`
}
