// internal/workers/warmup_processor_test.go
package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/internal/workers"
	"github.com/ammerola/wreckers-gateway/test/helpers"
	"github.com/ammerola/wreckers-gateway/test/mocks"
)

type warmupDeps struct {
	parts       *mocks.MockPartsAPI
	cars        *mocks.MockCarsAPI
	collections *mocks.MockCollectionsAPI
	filters     *mocks.MockFiltersAPI
	reviews     *mocks.MockReviewsAPI
	client      *query.Client
}

func newWarmupProcessor(t *testing.T) (*workers.WarmupProcessor, warmupDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rdb := helpers.SetupTestRedis(t)
	logger := helpers.TestLogger()

	deps := warmupDeps{
		parts:       mocks.NewMockPartsAPI(ctrl),
		cars:        mocks.NewMockCarsAPI(ctrl),
		collections: mocks.NewMockCollectionsAPI(ctrl),
		filters:     mocks.NewMockFiltersAPI(ctrl),
		reviews:     mocks.NewMockReviewsAPI(ctrl),
		client:      query.NewClient(rdb.Cache, logger),
	}

	opts := query.Options{StaleTime: time.Hour, CacheTime: time.Hour, Retry: -1}
	p := workers.NewWarmupProcessor(
		services.NewPartsService(deps.parts, deps.client, opts, logger),
		services.NewCatalogService(deps.collections, deps.filters, deps.cars, deps.client, opts, logger),
		services.NewReviewsService(deps.reviews, deps.client, opts, logger),
		logger,
	)
	return p, deps
}

func TestWarmupProcessor_ProcessTask(t *testing.T) {
	t.Run("warms_every_landing_query", func(t *testing.T) {
		p, deps := newWarmupProcessor(t)

		deps.parts.EXPECT().List(gomock.Any(), gomock.Any()).Return(&domain.PartsPage{}, nil).Times(1)
		deps.cars.EXPECT().List(gomock.Any(), gomock.Any()).Return(&domain.CarsPage{}, nil).Times(1)
		deps.collections.EXPECT().Makes(gomock.Any()).Return([]domain.Make{{Name: "TOYOTA"}}, nil).Times(1)
		deps.filters.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&domain.FilterOptions{}, nil).Times(1)
		deps.reviews.EXPECT().List(gomock.Any(), 6).Return([]domain.Review{}, nil).Times(1)

		require.NoError(t, p.ProcessTask(context.Background(), workers.NewWarmupTask()))
		assert.EqualValues(t, 5, deps.client.Stats().Misses)

		// second run is served from cache; the mocks allow one call each
		require.NoError(t, p.Warm(context.Background()))
		assert.EqualValues(t, 5, deps.client.Stats().Hits)
	})

	t.Run("partial_failure_is_tolerated", func(t *testing.T) {
		p, deps := newWarmupProcessor(t)

		deps.parts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		deps.cars.EXPECT().List(gomock.Any(), gomock.Any()).Return(&domain.CarsPage{}, nil)
		deps.collections.EXPECT().Makes(gomock.Any()).Return([]domain.Make{}, nil)
		deps.filters.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&domain.FilterOptions{}, nil)
		deps.reviews.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Review{}, nil)

		assert.NoError(t, p.Warm(context.Background()))
	})

	t.Run("total_failure_is_reported", func(t *testing.T) {
		p, deps := newWarmupProcessor(t)
		boom := errors.New("backend down")

		deps.parts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom)
		deps.cars.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom)
		deps.collections.EXPECT().Makes(gomock.Any()).Return(nil, boom)
		deps.filters.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, boom)
		deps.reviews.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom)

		err := p.ProcessTask(context.Background(), asynq.NewTask(workers.TypeCatalogWarmup, nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}
