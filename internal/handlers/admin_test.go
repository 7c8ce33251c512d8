// internal/handlers/admin_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/wreckers-gateway/internal/adapters/apiclient"
	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/handlers"
	"github.com/ammerola/wreckers-gateway/test/helpers"
)

const adminToken = "admin-secret"

func bearer() []string {
	return []string{"Authorization", "Bearer " + adminToken}
}

// partForm builds a multipart body with the part as JSON and the gallery files
func partForm(t *testing.T, in *domain.PartInput, files ...domain.UploadFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("data", string(data)))

	for _, f := range files {
		fw, err := mw.CreateFormFile("gallery", f.Name)
		require.NoError(t, err)
		_, err = fw.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func (e *testEnv) doMultipart(t *testing.T, target string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestAdminHandler_RequiresToken(t *testing.T) {
	env := newTestEnv(t, handlers.Limiters{})

	for _, target := range []string{"/admin/cars", "/admin/offers", "/admin/posts", "/admin/orders"} {
		rec := env.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestAdminHandler_ForwardsToken(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{name: "bearer_header", headers: bearer()},
		{name: "cookie", headers: []string{"Cookie", "adminToken=" + adminToken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, handlers.Limiters{})
			env.adminCars.EXPECT().List(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ domain.CarsParams) (*domain.CarsPage, error) {
					token, ok := apiclient.TokenFromContext(ctx)
					assert.True(t, ok)
					assert.Equal(t, adminToken, token)
					return &domain.CarsPage{}, nil
				})

			rec := env.do(t, http.MethodGet, "/admin/cars", nil, tt.headers...)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAdminHandler_Cars(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})
		env.adminCars.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&domain.Car{CID: 12, Name: "2012 Toyota Hilux"}, nil)

		rec := env.do(t, http.MethodPost, "/admin/cars", helpers.CreateTestCarInput(), bearer()...)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.EqualValues(t, 12, decodeBody(t, rec)["cid"])
	})

	t.Run("invalid_id", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})

		rec := env.do(t, http.MethodGet, "/admin/cars/abc", nil, bearer()...)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})
		env.adminCars.EXPECT().Delete(gomock.Any(), int64(12)).Return(nil)

		rec := env.do(t, http.MethodDelete, "/admin/cars/12", nil, bearer()...)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAdminHandler_CreatePartWithGallery(t *testing.T) {
	t.Run("uploads_then_creates", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})

		env.uploader.EXPECT().UploadImage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.UploadFile) (*domain.UploadedImage, error) {
				assert.Equal(t, "image/png", f.ContentType)
				return &domain.UploadedImage{URL: domain.FlexString("https://cdn.example.com/" + f.Name)}, nil
			}).Times(2)
		env.adminParts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *domain.PartInput) (*domain.Part, error) {
				assert.Equal(t, []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}, in.Gallery)
				assert.Equal(t, "https://cdn.example.com/a.png", in.Image)
				return &domain.Part{ID: "p-new", Title: in.Title}, nil
			})

		body, ct := partForm(t, helpers.CreateTestPartInput(),
			helpers.CreateTestImage(t, "a.png"), helpers.CreateTestImage(t, "b.png"))
		rec := env.doMultipart(t, "/admin/parts", body, ct)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "p-new", decodeBody(t, rec)["id"])
	})

	t.Run("failed_upload_creates_nothing", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})

		env.uploader.EXPECT().UploadImage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.UploadFile) (*domain.UploadedImage, error) {
				if f.Name == "b.png" {
					return nil, errors.New("bucket unavailable")
				}
				return &domain.UploadedImage{URL: "https://cdn.example.com/a.png"}, nil
			}).Times(2)
		env.adminParts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		body, ct := partForm(t, helpers.CreateTestPartInput(),
			helpers.CreateTestImage(t, "a.png"), helpers.CreateTestImage(t, "b.png"))
		rec := env.doMultipart(t, "/admin/parts", body, ct)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "Failed to upload images. Please try again.", decodeBody(t, rec)["error"])
	})

	t.Run("invalid_part_uploads_nothing", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})

		body, ct := partForm(t, helpers.CreateTestPartInput(func(in *domain.PartInput) { in.Title = "" }),
			helpers.CreateTestImage(t, "a.png"))
		rec := env.doMultipart(t, "/admin/parts", body, ct)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["fields"], "title")
	})

	t.Run("too_many_files", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})

		files := make([]domain.UploadFile, 0, 6)
		for i := 0; i < 6; i++ {
			files = append(files, helpers.CreateTestImage(t, "x.png"))
		}
		body, ct := partForm(t, helpers.CreateTestPartInput(), files...)
		rec := env.doMultipart(t, "/admin/parts", body, ct)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["fields"], "gallery")
	})

	t.Run("json_body_creates_without_gallery", func(t *testing.T) {
		env := newTestEnv(t, handlers.Limiters{})
		env.adminParts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Part{ID: "p-2"}, nil)

		rec := env.do(t, http.MethodPost, "/admin/parts", helpers.CreateTestPartInput(), bearer()...)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})
}

func TestAdminHandler_UploadImage(t *testing.T) {
	env := newTestEnv(t, handlers.Limiters{})
	env.uploader.EXPECT().UploadImage(gomock.Any(), gomock.Any()).
		Return(&domain.UploadedImage{URL: "https://cdn.example.com/one.png"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "one.png")
	require.NoError(t, err)
	_, err = fw.Write(helpers.CreateTestImage(t, "one.png").Data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := env.doMultipart(t, "/admin/uploads/image", &buf, mw.FormDataContentType())

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "https://cdn.example.com/one.png", decodeBody(t, rec)["url"])
}

func TestAdminHandler_Offers(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		setupMocks     func(env *testEnv)
		expectedStatus int
	}{
		{
			name:   "approve",
			status: "approved",
			setupMocks: func(env *testEnv) {
				env.offers.EXPECT().UpdateStatus(gomock.Any(), "o-1", domain.OfferStatus("approved")).
					Return(&domain.OfferItem{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_status_rejected",
			status:         "shipped",
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, handlers.Limiters{})
			if tt.setupMocks != nil {
				tt.setupMocks(env)
			}

			rec := env.do(t, http.MethodPatch, "/admin/offers/o-1", map[string]string{"status": tt.status}, bearer()...)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestAdminHandler_PostMeta(t *testing.T) {
	env := newTestEnv(t, handlers.Limiters{})

	env.posts.EXPECT().SetMeta(gomock.Any(), int64(5), "hero", "banner.png").
		Return(&domain.WpPostMeta{Key: "hero", Value: "banner.png"}, nil)
	env.posts.EXPECT().GetMeta(gomock.Any(), int64(5), "hero").
		Return(&domain.WpPostMeta{Key: "hero", Value: "banner.png"}, nil)

	rec := env.do(t, http.MethodPut, "/admin/posts/5/meta/hero", map[string]string{"value": "banner.png"}, bearer()...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/admin/posts/5/meta/hero", nil, bearer()...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "banner.png", decodeBody(t, rec)["value"])
}
