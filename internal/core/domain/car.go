// internal/core/domain/car.go
package domain

// Car is a vehicle in the wrecking yard as the backend reports it.
// cid and ID are both identifiers; see EffectiveID.
type Car struct {
	CID         FlexInt    `json:"cid"`
	ID          FlexInt    `json:"ID"`
	Name        FlexString `json:"name"`
	Make        FlexString `json:"make"`
	ProdCat     FlexString `json:"prod_cat"`
	Year        FlexString `json:"year"`
	ModelID     FlexString `json:"model_id"`
	Model       FlexString `json:"model"`
	Tag         *string    `json:"tag,omitempty"`
	StockNo     FlexString `json:"stockNo,omitempty"`
	DateAdded   FlexString `json:"date_added"`
	ThumbnailID *FlexInt   `json:"thumbnailId,omitempty"`
	GalleryIDs  []FlexInt  `json:"galleryIds,omitempty"`
}

// EffectiveID returns cid, falling back to ID when cid is unset.
func (c Car) EffectiveID() int64 {
	if c.CID != 0 {
		return int64(c.CID)
	}
	return int64(c.ID)
}

// CarInput is the admin payload for creating or updating a car
type CarInput struct {
	Name        string  `json:"name"`
	Make        string  `json:"make"`
	ProdCat     string  `json:"prod_cat,omitempty"`
	Year        string  `json:"year"`
	ModelID     string  `json:"model_id,omitempty"`
	Model       string  `json:"model,omitempty"`
	Tag         string  `json:"tag,omitempty"`
	StockNo     string  `json:"stockNo,omitempty"`
	ThumbnailID *int64  `json:"thumbnailId,omitempty"`
	GalleryIDs  []int64 `json:"galleryIds,omitempty"`
}

// Validate checks the admin car payload
func (in *CarInput) Validate() error {
	errs := FieldErrors{}

	if in.Name == "" {
		errs.Add("name", "Name is required")
	}
	if in.Make == "" {
		errs.Add("make", "Make is required")
	}
	if !yearPattern.MatchString(in.Year) {
		errs.Add("year", "Please enter a valid year")
	}

	return errs.OrNil()
}
