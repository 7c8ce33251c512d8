// internal/core/services/catalog_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/test/helpers"
	"github.com/ammerola/wreckers-gateway/test/mocks"
)

func TestCatalogService_Models(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	collections := mocks.NewMockCollectionsAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewCatalogService(collections, nil, nil, client, cached, helpers.TestLogger())

	t.Run("no_make_means_no_request", func(t *testing.T) {
		models, err := svc.Models(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, models)
	})

	t.Run("models_are_cached_per_make", func(t *testing.T) {
		collections.EXPECT().Models(gomock.Any(), "TOYOTA").Return([]domain.Model{{ID: "1", Name: "HILUX"}}, nil).Times(1)
		collections.EXPECT().Models(gomock.Any(), "FORD").Return([]domain.Model{{ID: "2", Name: "RANGER"}}, nil).Times(1)

		for range 2 {
			models, err := svc.Models(ctx, "TOYOTA")
			require.NoError(t, err)
			assert.Equal(t, domain.FlexString("HILUX"), models[0].Name)
		}
		models, err := svc.Models(ctx, "FORD")
		require.NoError(t, err)
		assert.Equal(t, domain.FlexString("RANGER"), models[0].Name)
	})
}

func TestCatalogService_Makes(t *testing.T) {
	ctrl := gomock.NewController(t)
	collections := mocks.NewMockCollectionsAPI(ctrl)
	client, _ := newQueryClient(t)
	opts := query.Options{StaleTime: time.Hour, RetryDelay: time.Millisecond, Retry: 2}
	svc := services.NewCatalogService(collections, nil, nil, client, opts, helpers.TestLogger())

	gomock.InOrder(
		collections.EXPECT().Makes(gomock.Any()).Return(nil, errors.New("connection reset")),
		collections.EXPECT().Makes(gomock.Any()).Return([]domain.Make{{ID: "1", Name: "TOYOTA"}}, nil),
	)

	makes, err := svc.Makes(context.Background())
	require.NoError(t, err, "transient failures are retried")
	assert.Len(t, makes, 1)
}

func TestCatalogService_Cars(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cars := mocks.NewMockCarsAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewCatalogService(nil, nil, cars, client, cached, helpers.TestLogger())

	car := helpers.CreateTestCar()
	cars.EXPECT().List(gomock.Any(), domain.CarsParams{Page: 1, PageSize: 20, Make: "TOYOTA"}).
		Return(&domain.CarsPage{Items: []domain.Car{car}}, nil)
	cars.EXPECT().Get(gomock.Any(), "404").Return(nil, httpErr(404))

	page, err := svc.Cars(ctx, domain.CarsParams{Make: "TOYOTA"})
	require.NoError(t, err)
	assert.Equal(t, car.EffectiveID(), page.Items[0].EffectiveID())

	_, err = svc.Car(ctx, "404")
	assert.True(t, services.IsNotFound(err))
}

func TestCatalogService_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	filters := mocks.NewMockFiltersAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewCatalogService(nil, filters, nil, client, cached, helpers.TestLogger())

	filters.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(&domain.FilterOptions{Makes: []domain.FlexString{"FORD", "TOYOTA"}}, nil).
		Times(1)

	for _, page := range []int{1, 2} {
		opts, err := svc.Filters(context.Background(), domain.PartsParams{Make: "FORD", Page: page})
		require.NoError(t, err)
		assert.Len(t, opts.Makes, 2, "paging does not change filter options")
	}
}

func TestReviewsService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockReviewsAPI(ctrl)
	client, _ := newQueryClient(t)

	opts := services.DefaultPolicies().Reviews
	opts.RetryDelay = time.Millisecond
	svc := services.NewReviewsService(api, client, opts, helpers.TestLogger())

	api.EXPECT().List(gomock.Any(), 6).Return(nil, httpErr(503)).Times(2)

	_, err := svc.List(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list reviews")
}
