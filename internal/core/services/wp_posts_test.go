// internal/core/services/wp_posts_test.go
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

func TestWpPostsService_Create(t *testing.T) {
	tests := []struct {
		name         string
		input        *domain.WpPostInput
		setupMocks   func(api *mocks.MockWpPostsAPI, tasks *mocks.MockTaskEnqueuer)
		expectFields []string
	}{
		{
			name:  "publishes_and_refreshes_sitemap",
			input: &domain.WpPostInput{Title: "Holiday hours", Content: "Closed 25 Dec", Status: "publish"},
			setupMocks: func(api *mocks.MockWpPostsAPI, tasks *mocks.MockTaskEnqueuer) {
				api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.WpPost{ID: 5, Title: "Holiday hours"}, nil)
				tasks.EXPECT().EnqueueSitemapRefresh(gomock.Any(), "post created").Return(nil)
			},
		},
		{
			name:         "rejects_unknown_status",
			input:        &domain.WpPostInput{Title: "Holiday hours", Status: "scheduled"},
			setupMocks:   func(api *mocks.MockWpPostsAPI, tasks *mocks.MockTaskEnqueuer) {},
			expectFields: []string{"status"},
		},
		{
			name:         "requires_title",
			input:        &domain.WpPostInput{Title: "  "},
			setupMocks:   func(api *mocks.MockWpPostsAPI, tasks *mocks.MockTaskEnqueuer) {},
			expectFields: []string{"title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockWpPostsAPI(ctrl)
			tasks := mocks.NewMockTaskEnqueuer(ctrl)
			tt.setupMocks(api, tasks)

			client, _ := newQueryClient(t)
			svc := services.NewWpPostsService(api, client, tasks, cached, helpers.TestLogger())

			post, err := svc.Create(context.Background(), tt.input)
			if len(tt.expectFields) > 0 {
				var fields domain.FieldErrors
				require.True(t, errors.As(err, &fields))
				for _, f := range tt.expectFields {
					assert.Contains(t, fields, f)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.FlexInt(5), post.ID)
		})
	}
}

func TestWpPostsService_Meta(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockWpPostsAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewWpPostsService(api, client, nil, cached, helpers.TestLogger())

	gomock.InOrder(
		api.EXPECT().GetMeta(gomock.Any(), int64(5), "hero image").Return(&domain.WpPostMeta{Key: "hero image", Value: "old.png"}, nil),
		api.EXPECT().SetMeta(gomock.Any(), int64(5), "hero image", "new.png").Return(&domain.WpPostMeta{Key: "hero image", Value: "new.png"}, nil),
		api.EXPECT().GetMeta(gomock.Any(), int64(5), "hero image").Return(&domain.WpPostMeta{Key: "hero image", Value: "new.png"}, nil),
	)

	meta, err := svc.GetMeta(ctx, 5, "hero image")
	require.NoError(t, err)
	assert.Equal(t, "old.png", meta.Value)

	_, err = svc.SetMeta(ctx, 5, "hero image", "new.png")
	require.NoError(t, err)

	meta, err = svc.GetMeta(ctx, 5, "hero image")
	require.NoError(t, err)
	assert.Equal(t, "new.png", meta.Value, "writing meta invalidates the post family")

	t.Run("blank_key_is_rejected", func(t *testing.T) {
		_, err := svc.SetMeta(ctx, 5, " ", "x")
		var fields domain.FieldErrors
		require.True(t, errors.As(err, &fields))
	})
}

func TestWpPostsService_DeleteWithoutEnqueuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockWpPostsAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewWpPostsService(api, client, nil, cached, helpers.TestLogger())

	api.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), 9))
}
