// internal/core/services/uploads.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// DefaultMaxImageBytes caps a single uploaded image
const DefaultMaxImageBytes = 10 << 20

// UploadService sends images to the configured store
type UploadService struct {
	uploader ports.ImageUploader
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadService creates a new upload service. maxBytes <= 0 uses
// DefaultMaxImageBytes.
func NewUploadService(uploader ports.ImageUploader, maxBytes int64, logger *slog.Logger) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &UploadService{
		uploader: uploader,
		maxBytes: maxBytes,
		logger:   logger.With(slog.String("service", "uploads")),
	}
}

// validate checks one file before it leaves the process
func (s *UploadService) validate(file *domain.UploadFile) error {
	errs := domain.FieldErrors{}
	if len(file.Data) == 0 {
		errs.Add("image", "Image is empty")
		return errs
	}
	if int64(len(file.Data)) > s.maxBytes {
		errs.Add("image", fmt.Sprintf("Image is larger than %d MB", s.maxBytes>>20))
	}

	if file.ContentType == "" || file.ContentType == "application/octet-stream" {
		file.ContentType = http.DetectContentType(file.Data)
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		errs.Add("image", "Only image files can be uploaded")
	}
	return errs.OrNil()
}

// UploadImage stores one image
func (s *UploadService) UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedImage, error) {
	if err := s.validate(&file); err != nil {
		return nil, err
	}

	img, err := s.uploader.UploadImage(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %s: %w", file.Name, err)
	}

	s.logger.InfoContext(ctx, "image uploaded",
		slog.String("name", file.Name),
		slog.String("url", img.URL.String()))

	return img, nil
}

// UploadGallery uploads every file in parallel and returns the results in
// input order. Every upload runs to completion; if any fails the whole batch
// fails with ErrGalleryUpload. Images that did upload are left in place.
func (s *UploadService) UploadGallery(ctx context.Context, files []domain.UploadFile) ([]domain.UploadedImage, error) {
	if len(files) == 0 {
		return nil, nil
	}

	for i := range files {
		if err := s.validate(&files[i]); err != nil {
			return nil, fmt.Errorf("gallery image %d: %w", i+1, err)
		}
	}

	results := make([]domain.UploadedImage, len(files))
	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			img, err := s.uploader.UploadImage(ctx, file)
			if err != nil {
				return fmt.Errorf("image %d (%s): %w", i+1, file.Name, err)
			}
			results[i] = *img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "gallery upload failed",
			slog.Int("files", len(files)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrGalleryUpload, err)
	}

	s.logger.InfoContext(ctx, "gallery uploaded", slog.Int("files", len(files)))
	return results, nil
}
