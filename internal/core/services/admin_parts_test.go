// internal/core/services/admin_parts_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/test/helpers"
	"github.com/ammerola/wreckers-gateway/test/mocks"
)

type adminPartsMocks struct {
	api      *mocks.MockAdminPartsAPI
	uploader *mocks.MockImageUploader
	tasks    *mocks.MockTaskEnqueuer
}

func uploadedAs(url string) *domain.UploadedImage {
	return &domain.UploadedImage{URL: domain.FlexString(url)}
}

func TestAdminPartsService_CreateWithGallery(t *testing.T) {
	tests := []struct {
		name          string
		input         *domain.PartInput
		gallery       []string
		setupMocks    func(t *testing.T, m adminPartsMocks)
		expectedError error
		errorContains string
		expectFields  bool
	}{
		{
			name:    "uploads_gallery_then_creates_part",
			input:   helpers.CreateTestPartInput(),
			gallery: []string{"a.png", "b.png", "c.png"},
			setupMocks: func(t *testing.T, m adminPartsMocks) {
				m.uploader.EXPECT().
					UploadImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.UploadFile) (*domain.UploadedImage, error) {
						return uploadedAs("https://cdn.example.com/" + f.Name), nil
					}).
					Times(3)
				m.api.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *domain.PartInput) (*domain.Part, error) {
						assert.Equal(t, []string{
							"https://cdn.example.com/a.png",
							"https://cdn.example.com/b.png",
							"https://cdn.example.com/c.png",
						}, in.Gallery, "gallery keeps input order")
						assert.Equal(t, "https://cdn.example.com/a.png", in.Image)
						return &domain.Part{ID: "p-1", Title: in.Title}, nil
					})
				m.tasks.EXPECT().EnqueueSitemapRefresh(gomock.Any(), "part created").Return(nil)
			},
		},
		{
			name:    "second_upload_fails_so_nothing_is_created",
			input:   helpers.CreateTestPartInput(),
			gallery: []string{"a.png", "b.png", "c.png"},
			setupMocks: func(t *testing.T, m adminPartsMocks) {
				m.uploader.EXPECT().
					UploadImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.UploadFile) (*domain.UploadedImage, error) {
						if f.Name == "b.png" {
							return nil, errors.New("upload rejected")
						}
						return uploadedAs("https://cdn.example.com/" + f.Name), nil
					}).
					Times(3)
				// no Create and no sitemap refresh expected
			},
			expectedError: services.ErrGalleryUpload,
			errorContains: "upload rejected",
		},
		{
			name: "keeps_an_explicit_cover_image",
			input: helpers.CreateTestPartInput(func(in *domain.PartInput) {
				in.Image = "https://cdn.example.com/cover.png"
			}),
			gallery: []string{"a.png"},
			setupMocks: func(t *testing.T, m adminPartsMocks) {
				m.uploader.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(uploadedAs("https://cdn.example.com/a.png"), nil)
				m.api.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *domain.PartInput) (*domain.Part, error) {
						assert.Equal(t, "https://cdn.example.com/cover.png", in.Image)
						return &domain.Part{ID: "p-2"}, nil
					})
				m.tasks.EXPECT().EnqueueSitemapRefresh(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "sitemap_enqueue_failure_does_not_fail_create",
			input:   helpers.CreateTestPartInput(),
			gallery: nil,
			setupMocks: func(t *testing.T, m adminPartsMocks) {
				m.api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Part{ID: "p-3"}, nil)
				m.tasks.EXPECT().EnqueueSitemapRefresh(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
		},
		{
			name: "invalid_input_uploads_nothing",
			input: helpers.CreateTestPartInput(func(in *domain.PartInput) {
				in.Title = ""
			}),
			gallery:      []string{"a.png"},
			setupMocks:   func(t *testing.T, m adminPartsMocks) {},
			expectFields: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := adminPartsMocks{
				api:      mocks.NewMockAdminPartsAPI(ctrl),
				uploader: mocks.NewMockImageUploader(ctrl),
				tasks:    mocks.NewMockTaskEnqueuer(ctrl),
			}
			tt.setupMocks(t, m)

			client, _ := newQueryClient(t)
			uploads := services.NewUploadService(m.uploader, 0, helpers.TestLogger())
			svc := services.NewAdminPartsService(m.api, uploads, client, m.tasks, helpers.TestLogger())

			gallery := make([]domain.UploadFile, 0, len(tt.gallery))
			for _, name := range tt.gallery {
				gallery = append(gallery, helpers.CreateTestImage(t, name))
			}

			part, err := svc.CreateWithGallery(context.Background(), tt.input, gallery)

			switch {
			case tt.expectFields:
				require.Error(t, err)
				var fields domain.FieldErrors
				assert.True(t, errors.As(err, &fields))
				assert.Nil(t, part)
			case tt.expectedError != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, part)
			default:
				require.NoError(t, err)
				require.NotNil(t, part)
			}
		})
	}
}

func TestAdminPartsService_MutationsInvalidateCatalog(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	partsAPI := mocks.NewMockPartsAPI(ctrl)
	adminAPI := mocks.NewMockAdminPartsAPI(ctrl)

	client, rdb := newQueryClient(t)
	parts := services.NewPartsService(partsAPI, client, cached, helpers.TestLogger())
	admin := services.NewAdminPartsService(adminAPI, nil, client, nil, helpers.TestLogger())

	partsAPI.EXPECT().List(gomock.Any(), gomock.Any()).Return(pageOf(helpers.CreateTestPart()), nil).Times(2)
	adminAPI.EXPECT().Delete(gomock.Any(), "p-9").Return(nil)

	_, err := parts.List(ctx, domain.PartsParams{Make: "FORD"})
	require.NoError(t, err)
	require.Len(t, rdb.Server.Keys(), 1)

	require.NoError(t, admin.Delete(ctx, "p-9"))
	assert.Empty(t, rdb.Server.Keys())

	_, err = parts.List(ctx, domain.PartsParams{Make: "FORD"})
	require.NoError(t, err)
}

func TestAdminPartsService_FailedMutationKeepsCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	partsAPI := mocks.NewMockPartsAPI(ctrl)
	adminAPI := mocks.NewMockAdminPartsAPI(ctrl)

	client, rdb := newQueryClient(t)
	parts := services.NewPartsService(partsAPI, client, cached, helpers.TestLogger())
	admin := services.NewAdminPartsService(adminAPI, nil, client, nil, helpers.TestLogger())

	partsAPI.EXPECT().List(gomock.Any(), gomock.Any()).Return(pageOf(), nil).Times(1)
	adminAPI.EXPECT().Update(gomock.Any(), "p-1", gomock.Any()).Return(nil, httpErr(500))

	_, err := parts.List(ctx, domain.PartsParams{})
	require.NoError(t, err)

	_, err = admin.Update(ctx, "p-1", helpers.CreateTestPartInput())
	require.Error(t, err)
	assert.Len(t, rdb.Server.Keys(), 1)

	_, err = parts.List(ctx, domain.PartsParams{})
	require.NoError(t, err)
}
