// internal/core/services/uploads_test.go
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

func TestUploadService_UploadImage(t *testing.T) {
	tests := []struct {
		name          string
		file          func(t *testing.T) domain.UploadFile
		maxBytes      int64
		setupMocks    func(m *mocks.MockImageUploader)
		errorContains string
	}{
		{
			name: "uploads_png",
			file: func(t *testing.T) domain.UploadFile { return helpers.CreateTestImage(t, "door.png") },
			setupMocks: func(m *mocks.MockImageUploader) {
				m.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(uploadedAs("https://cdn.example.com/door.png"), nil)
			},
		},
		{
			name: "detects_content_type_of_octet_stream",
			file: func(t *testing.T) domain.UploadFile {
				f := helpers.CreateTestImage(t, "door.png")
				f.ContentType = "application/octet-stream"
				return f
			},
			setupMocks: func(m *mocks.MockImageUploader) {
				m.EXPECT().
					UploadImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.UploadFile) (*domain.UploadedImage, error) {
						assert.Equal(t, "image/png", f.ContentType)
						return uploadedAs("https://cdn.example.com/door.png"), nil
					})
			},
		},
		{
			name: "rejects_non_images",
			file: func(t *testing.T) domain.UploadFile {
				return domain.UploadFile{Name: "notes.txt", Data: []byte("plain text, not an image")}
			},
			setupMocks:    func(m *mocks.MockImageUploader) {},
			errorContains: "Only image files",
		},
		{
			name:          "rejects_empty_files",
			file:          func(t *testing.T) domain.UploadFile { return domain.UploadFile{Name: "empty.png"} },
			setupMocks:    func(m *mocks.MockImageUploader) {},
			errorContains: "Image is empty",
		},
		{
			name:          "rejects_large_files",
			file:          func(t *testing.T) domain.UploadFile { return helpers.CreateTestImage(t, "big.png") },
			maxBytes:      8,
			setupMocks:    func(m *mocks.MockImageUploader) {},
			errorContains: "larger than",
		},
		{
			name: "store_error_is_wrapped",
			file: func(t *testing.T) domain.UploadFile { return helpers.CreateTestImage(t, "door.png") },
			setupMocks: func(m *mocks.MockImageUploader) {
				m.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(nil, errors.New("bucket missing"))
			},
			errorContains: "bucket missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uploader := mocks.NewMockImageUploader(ctrl)
			tt.setupMocks(uploader)

			svc := services.NewUploadService(uploader, tt.maxBytes, helpers.TestLogger())
			img, err := svc.UploadImage(context.Background(), tt.file(t))

			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, img.URL)
		})
	}
}

func TestUploadService_UploadGallery(t *testing.T) {
	t.Run("empty_gallery_is_a_no_op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewUploadService(mocks.NewMockImageUploader(ctrl), 0, helpers.TestLogger())

		images, err := svc.UploadGallery(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, images)
	})

	t.Run("invalid_file_stops_before_any_upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewUploadService(mocks.NewMockImageUploader(ctrl), 0, helpers.TestLogger())

		_, err := svc.UploadGallery(context.Background(), []domain.UploadFile{
			helpers.CreateTestImage(t, "a.png"),
			{Name: "b.txt", Data: []byte("text")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gallery image 2")
	})
}
