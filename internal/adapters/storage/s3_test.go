// internal/adapters/storage/s3_test.go
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/test/helpers"
)

type fakeUploader struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.inputs = append(f.inputs, input)
	body, _ := io.ReadAll(input.Body)
	f.bodies = append(f.bodies, string(body))
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{
		Location: "https://wreckers-uploads.s3.ap-southeast-2.amazonaws.com/" + aws.ToString(input.Key),
	}, nil
}

type fakeBucket struct {
	err error
}

func (f *fakeBucket) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.err
}

func newTestStore(up *fakeUploader, cfg *S3Config) *S3ImageStore {
	s := NewS3ImageStoreWith(up, &fakeBucket{}, cfg, helpers.TestLogger())
	s.now = func() time.Time { return time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestS3ImageStore_UploadImage(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *S3Config
		file        domain.UploadFile
		wantType    string
		wantPrefix  string
		wantSuffix  string
		uploadErr   error
		expectError bool
	}{
		{
			name:       "uses_s3_location",
			cfg:        &S3Config{Bucket: "wreckers-uploads"},
			file:       domain.UploadFile{Name: "Front.PNG", ContentType: "image/png", Data: []byte("png")},
			wantType:   "image/png",
			wantPrefix: "https://wreckers-uploads.s3.ap-southeast-2.amazonaws.com/uploads/images/2025/03/",
			wantSuffix: ".png",
		},
		{
			name:       "public_base_url_and_custom_prefix",
			cfg:        &S3Config{Bucket: "wreckers-uploads", PublicBaseURL: "https://cdn.example.com/", KeyPrefix: "/parts/"},
			file:       domain.UploadFile{Name: "door.jpg", Data: []byte("jpg")},
			wantType:   "image/jpeg",
			wantPrefix: "https://cdn.example.com/parts/2025/03/",
			wantSuffix: ".jpg",
		},
		{
			name:        "upload_fails",
			cfg:         &S3Config{Bucket: "wreckers-uploads"},
			file:        domain.UploadFile{Name: "door.jpg", Data: []byte("jpg")},
			uploadErr:   errors.New("access denied"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &fakeUploader{err: tt.uploadErr}
			store := newTestStore(up, tt.cfg)

			img, err := store.UploadImage(context.Background(), tt.file)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.file.Name)
				return
			}
			require.NoError(t, err)
			require.Len(t, up.inputs, 1)

			in := up.inputs[0]
			assert.Equal(t, tt.cfg.Bucket, aws.ToString(in.Bucket))
			assert.Equal(t, tt.wantType, aws.ToString(in.ContentType))
			assert.Equal(t, string(tt.file.Data), up.bodies[0])
			assert.Equal(t, tt.file.Name, in.Metadata["original-name"])

			url := string(img.URL)
			assert.True(t, strings.HasPrefix(url, tt.wantPrefix), url)
			assert.True(t, strings.HasSuffix(url, tt.wantSuffix), url)
			assert.Equal(t, string(img.Key), aws.ToString(in.Key))
			assert.NotEmpty(t, img.ID)
		})
	}
}

func TestS3ImageStore_UniqueKeys(t *testing.T) {
	up := &fakeUploader{}
	store := newTestStore(up, &S3Config{Bucket: "b"})

	file := domain.UploadFile{Name: "a.png", ContentType: "image/png", Data: []byte("x")}
	first, err := store.UploadImage(context.Background(), file)
	require.NoError(t, err)
	second, err := store.UploadImage(context.Background(), file)
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}

func TestS3ImageStore_Ping(t *testing.T) {
	cfg := &S3Config{Bucket: "b"}

	ok := NewS3ImageStoreWith(&fakeUploader{}, &fakeBucket{}, cfg, helpers.TestLogger())
	assert.NoError(t, ok.Ping(context.Background()))

	down := NewS3ImageStoreWith(&fakeUploader{}, &fakeBucket{err: errors.New("no such bucket")}, cfg, helpers.TestLogger())
	err := down.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such bucket")
}
