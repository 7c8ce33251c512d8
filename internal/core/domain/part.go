// internal/core/domain/part.go
package domain

import (
	"log/slog"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Part is the strict view-model of a catalog part.
//
// ID is never empty inside a normalized list, and the dimension fields are
// either a finite number greater than zero or nil.
type Part struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Year        string   `json:"year"`
	Model       *string  `json:"model"`
	Stock       string   `json:"stock"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	InventoryID string   `json:"inventoryId,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Length      *float64 `json:"length,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Category    string   `json:"category"`
}

// RawPart is a part row as the backend sends it. Every field is loosely
// typed; NormalizePart turns it into a Part.
type RawPart struct {
	ID          any `json:"id"`
	Title       any `json:"title"`
	Name        any `json:"name"`
	Price       any `json:"price"`
	Year        any `json:"year"`
	Model       any `json:"model"`
	Stock       any `json:"stock"`
	Description any `json:"description"`
	Image       any `json:"image"`
	InventoryID any `json:"inventoryId"`
	Weight      any `json:"weight"`
	Length      any `json:"length"`
	Width       any `json:"width"`
	Height      any `json:"height"`
	Category    any `json:"category"`
}

// NormalizePart converts a raw backend part into a Part. It never fails:
// missing strings become "", non-positive or non-numeric dimensions become nil.
// An empty category is logged as a data-quality diagnostic.
func NormalizePart(raw RawPart, logger *slog.Logger) Part {
	if logger == nil {
		logger = slog.Default()
	}

	title := str(raw.Title)
	if title == "" {
		title = str(raw.Name)
	}

	var model *string
	if raw.Model != nil {
		m := str(raw.Model)
		model = &m
	}

	part := Part{
		ID:          str(raw.ID),
		Title:       title,
		Price:       str(raw.Price),
		Year:        str(raw.Year),
		Model:       model,
		Stock:       str(raw.Stock),
		Description: str(raw.Description),
		Image:       str(raw.Image),
		InventoryID: str(raw.InventoryID),
		Weight:      num(raw.Weight),
		Length:      num(raw.Length),
		Width:       num(raw.Width),
		Height:      num(raw.Height),
		Category:    str(raw.Category),
	}

	if part.Category == "" {
		logger.Warn("part has no category",
			slog.String("part_id", part.ID),
			slog.String("title", part.Title))
	}

	return part
}

// NormalizeParts normalizes a list of raw parts, dropping entries without an
// id and keeping only the first occurrence of each id. Order is preserved.
func NormalizeParts(raws []RawPart, logger *slog.Logger) []Part {
	parts := lo.FilterMap(raws, func(raw RawPart, _ int) (Part, bool) {
		if str(raw.ID) == "" {
			return Part{}, false
		}
		return NormalizePart(raw, logger), true
	})

	return lo.UniqBy(parts, func(p Part) string {
		return p.ID
	})
}

// ToRaw returns the part in its raw wire form.
func (p Part) ToRaw() RawPart {
	raw := RawPart{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Year:        p.Year,
		Stock:       p.Stock,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
	}
	if p.Model != nil {
		raw.Model = *p.Model
	}
	if p.InventoryID != "" {
		raw.InventoryID = p.InventoryID
	}
	if p.Weight != nil {
		raw.Weight = *p.Weight
	}
	if p.Length != nil {
		raw.Length = *p.Length
	}
	if p.Width != nil {
		raw.Width = *p.Width
	}
	if p.Height != nil {
		raw.Height = *p.Height
	}
	return raw
}

// PartInput is the admin payload for creating or updating a part.
type PartInput struct {
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Year        string          `json:"year,omitempty"`
	Make        string          `json:"make,omitempty"`
	Model       string          `json:"model,omitempty"`
	Stock       string          `json:"stock,omitempty"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	InventoryID string          `json:"inventoryId,omitempty"`
	Weight      *float64        `json:"weight,omitempty"`
	Length      *float64        `json:"length,omitempty"`
	Width       *float64        `json:"width,omitempty"`
	Height      *float64        `json:"height,omitempty"`
	Image       string          `json:"image,omitempty"`
	Gallery     []string        `json:"gallery,omitempty"`
}

// Validate checks the admin part payload
func (in *PartInput) Validate() error {
	errs := FieldErrors{}

	if in.Title == "" {
		errs.Add("title", "Title is required")
	}
	if in.Price.IsNegative() {
		errs.Add("price", "Price cannot be negative")
	}
	if in.Year != "" && !yearPattern.MatchString(in.Year) {
		errs.Add("year", "Please enter a valid year")
	}
	if in.Category == "" {
		errs.Add("category", "Category is required")
	}
	for field, v := range map[string]*float64{"weight": in.Weight, "length": in.Length, "width": in.Width, "height": in.Height} {
		if v != nil && num(*v) == nil {
			errs.Add(field, "Must be a positive number")
		}
	}

	return errs.OrNil()
}
