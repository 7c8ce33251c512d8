// internal/adapters/apiclient/uploads.go
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// UploadsAPI sends images to the backend uploads endpoint
type UploadsAPI struct {
	c *Client
}

var _ ports.ImageUploader = (*UploadsAPI)(nil)

// NewUploadsAPI creates a new uploads resource
func NewUploadsAPI(c *Client) *UploadsAPI {
	return &UploadsAPI{c: c}
}

// UploadImage posts one image as multipart/form-data under the "image" field
func (a *UploadsAPI) UploadImage(ctx context.Context, file domain.UploadFile) (*domain.UploadedImage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, file.Name))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("failed to write form part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form: %w", err)
	}

	body, err := a.c.do(ctx, http.MethodPost, "uploads/image", nil, w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	img, err := unwrap[domain.UploadedImage](body, "image")
	if err != nil {
		return nil, err
	}
	return &img, nil
}
