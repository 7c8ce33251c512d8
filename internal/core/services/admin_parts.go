// internal/core/services/admin_parts.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

// AdminPartsService manages parts from the admin console
type AdminPartsService struct {
	api     ports.AdminPartsAPI
	uploads *UploadService
	client  *query.Client
	tasks   ports.TaskEnqueuer
	logger  *slog.Logger
}

// NewAdminPartsService creates a new admin parts service. tasks may be nil.
func NewAdminPartsService(api ports.AdminPartsAPI, uploads *UploadService, client *query.Client, tasks ports.TaskEnqueuer, logger *slog.Logger) *AdminPartsService {
	return &AdminPartsService{
		api:     api,
		uploads: uploads,
		client:  client,
		tasks:   tasks,
		logger:  logger.With(slog.String("service", "admin_parts")),
	}
}

// a part write changes listings, detail pages and the filter options
var partFamilies = []query.Family{query.FamilyParts, query.FamilyPart, query.FamilyFilters}

// CreateWithGallery uploads the gallery and then creates the part with the
// uploaded URLs. The first image becomes the cover unless one is set. If
// any upload fails the part is not created.
func (s *AdminPartsService) CreateWithGallery(ctx context.Context, in *domain.PartInput, gallery []domain.UploadFile) (*domain.Part, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if len(gallery) > 0 {
		images, err := s.uploads.UploadGallery(ctx, gallery)
		if err != nil {
			return nil, err
		}

		in.Gallery = make([]string, 0, len(images))
		for _, img := range images {
			in.Gallery = append(in.Gallery, img.URL.String())
		}
		if in.Image == "" {
			in.Image = in.Gallery[0]
		}
	}

	return s.Create(ctx, in)
}

// Create adds a part
func (s *AdminPartsService) Create(ctx context.Context, in *domain.PartInput) (*domain.Part, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	part, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.Part, error) {
		return s.api.Create(ctx, in)
	}, partFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	s.logger.InfoContext(ctx, "part created",
		slog.String("part_id", part.ID),
		slog.Int("gallery", len(in.Gallery)))
	enqueueSitemap(ctx, s.tasks, s.logger, "part created")
	return part, nil
}

// Update replaces a part
func (s *AdminPartsService) Update(ctx context.Context, id string, in *domain.PartInput) (*domain.Part, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	part, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.Part, error) {
		return s.api.Update(ctx, id, in)
	}, partFamilies)
	if err != nil {
		return nil, fmt.Errorf("failed to update part %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "part updated", slog.String("part_id", id))
	return part, nil
}

// Delete removes a part
func (s *AdminPartsService) Delete(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, s.client, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.Delete(ctx, id)
	}, partFamilies)
	if err != nil {
		return fmt.Errorf("failed to delete part %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "part deleted", slog.String("part_id", id))
	enqueueSitemap(ctx, s.tasks, s.logger, "part deleted")
	return nil
}
