// internal/handlers/admin.go
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
)

const adminFallback = "Request failed. Please try again."

// AdminServices are the services behind the admin console
type AdminServices struct {
	Cars     *services.AdminCarsService
	Parts    *services.AdminPartsService
	Offers   *services.OffersService
	Posts    *services.WpPostsService
	Uploads  *services.UploadService
	Checkout *services.CheckoutService
}

// AdminHandler serves the admin console. Every route sits behind the admin
// auth middleware.
type AdminHandler struct {
	svc             AdminServices
	maxImageBytes   int64
	maxGalleryFiles int
	logger          *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(svc AdminServices, maxImageBytes int64, maxGalleryFiles int, logger *slog.Logger) *AdminHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = services.DefaultMaxImageBytes
	}
	if maxGalleryFiles <= 0 {
		maxGalleryFiles = 10
	}
	return &AdminHandler{
		svc:             svc,
		maxImageBytes:   maxImageBytes,
		maxGalleryFiles: maxGalleryFiles,
		logger:          logger.With(slog.String("handler", "admin")),
	}
}

// ListCars handles GET /admin/cars
func (h *AdminHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Cars.List(r.Context(), carsParams(r))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load cars.")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetCar handles GET /admin/cars/{id}
func (h *AdminHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid car ID")
		return
	}

	car, err := h.svc.Cars.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load car.")
		return
	}
	respondJSON(w, http.StatusOK, car)
}

// CreateCar handles POST /admin/cars
func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var in domain.CarInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	car, err := h.svc.Cars.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to create car.")
		return
	}
	respondJSON(w, http.StatusCreated, car)
}

// UpdateCar handles PUT /admin/cars/{id}
func (h *AdminHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid car ID")
		return
	}

	var in domain.CarInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	car, err := h.svc.Cars.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to update car.")
		return
	}
	respondJSON(w, http.StatusOK, car)
}

// DeleteCar handles DELETE /admin/cars/{id}
func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid car ID")
		return
	}

	if err := h.svc.Cars.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Failed to delete car.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreatePart handles POST /admin/parts. A JSON body creates the part as
// is; a multipart body carries the part as JSON in the "data" field and its
// images in "gallery", which are uploaded before the part is created.
func (h *AdminHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var in domain.PartInput
		if err := decodeJSON(w, r, &in); err != nil {
			respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		part, err := h.svc.Parts.Create(r.Context(), &in)
		if err != nil {
			writeError(w, r, h.logger, err, "Failed to create part.")
			return
		}
		respondJSON(w, http.StatusCreated, part)
		return
	}

	limit := h.maxImageBytes*int64(h.maxGalleryFiles) + maxJSONBody
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	var in domain.PartInput
	if err := json.Unmarshal([]byte(r.FormValue("data")), &in); err != nil {
		respondError(w, r, http.StatusBadRequest, "Field \"data\" must hold the part as JSON")
		return
	}

	headers := r.MultipartForm.File["gallery"]
	if len(headers) > h.maxGalleryFiles {
		writeError(w, r, h.logger, domain.FieldErrors{
			"gallery": fmt.Sprintf("At most %d images can be uploaded", h.maxGalleryFiles),
		}, "")
		return
	}

	gallery := make([]domain.UploadFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh, h.maxImageBytes)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		gallery = append(gallery, file)
	}

	part, err := h.svc.Parts.CreateWithGallery(r.Context(), &in, gallery)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to create part.")
		return
	}
	respondJSON(w, http.StatusCreated, part)
}

// UpdatePart handles PUT /admin/parts/{id}
func (h *AdminHandler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	var in domain.PartInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	part, err := h.svc.Parts.Update(r.Context(), r.PathValue("id"), &in)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to update part.")
		return
	}
	respondJSON(w, http.StatusOK, part)
}

// DeletePart handles DELETE /admin/parts/{id}
func (h *AdminHandler) DeletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Parts.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, h.logger, err, "Failed to delete part.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListOffers handles GET /admin/offers
func (h *AdminHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Offers.List(r.Context(), listParams(r))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load offers.")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// UpdateOfferStatus handles PATCH /admin/offers/{id}
func (h *AdminHandler) UpdateOfferStatus(w http.ResponseWriter, r *http.Request) {
	var update domain.OfferStatusUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	offer, err := h.svc.Offers.UpdateStatus(r.Context(), r.PathValue("id"), update.Status)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to update offer.")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /admin/offers/{id}
func (h *AdminHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Offers.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, h.logger, err, "Failed to delete offer.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPosts handles GET /admin/posts
func (h *AdminHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.Posts.List(r.Context(), listParams(r))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load posts.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": posts})
}

// GetPost handles GET /admin/posts/{id}
func (h *AdminHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.svc.Posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load post.")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// CreatePost handles POST /admin/posts
func (h *AdminHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in domain.WpPostInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.svc.Posts.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to create post.")
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// UpdatePost handles PUT /admin/posts/{id}
func (h *AdminHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var in domain.WpPostInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.svc.Posts.Update(r.Context(), id, &in)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to update post.")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /admin/posts/{id}
func (h *AdminHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.svc.Posts.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "Failed to delete post.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostMeta handles GET /admin/posts/{id}/meta
func (h *AdminHandler) PostMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	meta, err := h.svc.Posts.Meta(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load post meta.")
		return
	}
	respondJSON(w, http.StatusOK, meta)
}

// GetPostMeta handles GET /admin/posts/{id}/meta/{key}
func (h *AdminHandler) GetPostMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	meta, err := h.svc.Posts.GetMeta(r.Context(), id, r.PathValue("key"))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load post meta.")
		return
	}
	respondJSON(w, http.StatusOK, meta)
}

// SetPostMeta handles PUT /admin/posts/{id}/meta/{key} with {"value": ...}
func (h *AdminHandler) SetPostMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(r, "id")
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var body struct {
		Value any `json:"value"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	meta, err := h.svc.Posts.SetMeta(r.Context(), id, r.PathValue("key"), body.Value)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to save post meta.")
		return
	}
	respondJSON(w, http.StatusOK, meta)
}

// UploadImage handles POST /admin/uploads/image with the file in "image"
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes+maxJSONBody)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["image"]
	if len(headers) == 0 {
		writeError(w, r, h.logger, domain.FieldErrors{"image": "Image is required"}, "")
		return
	}

	file, err := readUpload(headers[0], h.maxImageBytes)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	img, err := h.svc.Uploads.UploadImage(r.Context(), file)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to upload image. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, img)
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Checkout.Orders(r.Context(), listParams(r))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to load orders.")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// readUpload loads one multipart file. One byte past the limit is read so
// the upload service can reject oversized files with a field error.
func readUpload(fh *multipart.FileHeader, maxBytes int64) (domain.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.UploadFile{}, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return domain.UploadFile{}, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}

	return domain.UploadFile{
		Name:        fh.Filename,
		ContentType: strings.TrimSpace(fh.Header.Get("Content-Type")),
		Data:        data,
	}, nil
}
