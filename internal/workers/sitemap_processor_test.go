// internal/workers/sitemap_processor_test.go
package workers_test

import (
	"context"
	"encoding/xml"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/workers"
	"github.com/ammerola/wreckers-gateway/test/helpers"
	"github.com/ammerola/wreckers-gateway/test/mocks"
)

type sitemapDeps struct {
	parts *mocks.MockPartsAPI
	cars  *mocks.MockCarsAPI
	posts *mocks.MockWpPostsAPI
	rdb   *helpers.TestRedis
}

func newSitemapProcessor(t *testing.T) (*workers.SitemapProcessor, sitemapDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := sitemapDeps{
		parts: mocks.NewMockPartsAPI(ctrl),
		cars:  mocks.NewMockCarsAPI(ctrl),
		posts: mocks.NewMockWpPostsAPI(ctrl),
		rdb:   helpers.SetupTestRedis(t),
	}
	p := workers.NewSitemapProcessor(deps.parts, deps.cars, deps.posts, deps.rdb.Cache, "https://shop.example.com/", helpers.TestLogger())
	return p, deps
}

func expectCatalog(deps sitemapDeps) {
	deps.parts.EXPECT().List(gomock.Any(), domain.PartsParams{Page: 1, PageSize: 100}).
		Return(&domain.PartsPage{
			Items: []domain.Part{
				helpers.CreateTestPart(func(p *domain.Part) { p.ID = "p-1" }),
				helpers.CreateTestPart(func(p *domain.Part) { p.ID = "p-2" }),
			},
			Pagination: domain.Pagination{Page: 1, HasNextPage: true},
		}, nil)
	deps.parts.EXPECT().List(gomock.Any(), domain.PartsParams{Page: 2, PageSize: 100}).
		Return(&domain.PartsPage{
			Items:      []domain.Part{helpers.CreateTestPart(func(p *domain.Part) { p.ID = "p-3" })},
			Pagination: domain.Pagination{Page: 2},
		}, nil)

	deps.cars.EXPECT().List(gomock.Any(), domain.CarsParams{Page: 1, PageSize: 100}).
		Return(&domain.CarsPage{
			Items: []domain.Car{
				helpers.CreateTestCar(func(c *domain.Car) { c.CID = 42; c.DateAdded = "2025-05-01 10:00:00" }),
				helpers.CreateTestCar(func(c *domain.Car) { c.CID = 0; c.ID = 0 }),
			},
		}, nil)

	deps.posts.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]domain.WpPost{
			{ID: 7, Slug: "holiday-hours", Status: "publish", UpdatedAt: "2025-06-02T08:00:00Z"},
			{ID: 8, Status: "publish"},
		}, nil)
}

func TestSitemapProcessor_Generate(t *testing.T) {
	p, deps := newSitemapProcessor(t)
	expectCatalog(deps)

	doc, count, err := p.Generate(context.Background())
	require.NoError(t, err)

	var set workers.URLSet
	require.NoError(t, xml.Unmarshal(doc, &set))
	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", set.XMLNS)
	assert.Len(t, set.URLs, count)

	locs := make(map[string]workers.SitemapURL, len(set.URLs))
	for _, u := range set.URLs {
		locs[u.Loc] = u
	}

	assert.Contains(t, locs, "https://shop.example.com/")
	assert.Contains(t, locs, "https://shop.example.com/parts")
	assert.Contains(t, locs, "https://shop.example.com/parts/p-1")
	assert.Contains(t, locs, "https://shop.example.com/parts/p-3")
	assert.Contains(t, locs, "https://shop.example.com/news/8", "posts without a slug use their id")
	assert.Equal(t, "2025-05-01", locs["https://shop.example.com/cars/42"].LastMod)
	assert.Equal(t, "2025-06-02", locs["https://shop.example.com/news/holiday-hours"].LastMod)
	assert.NotContains(t, locs, "https://shop.example.com/cars/0", "cars without an id are skipped")
}

func TestSitemapProcessor_ProcessTask(t *testing.T) {
	t.Run("stores_sitemap_and_releases_lock", func(t *testing.T) {
		p, deps := newSitemapProcessor(t)
		expectCatalog(deps)

		task, err := workers.NewSitemapTask("manual")
		require.NoError(t, err)
		require.NoError(t, p.ProcessTask(context.Background(), task))

		var doc string
		require.NoError(t, deps.rdb.Cache.Get(context.Background(), workers.SitemapKey, &doc))
		assert.Contains(t, doc, "<urlset")
		assert.Contains(t, doc, "https://shop.example.com/parts/p-2")
		assert.False(t, deps.rdb.Server.Exists("lock:sitemap"))
	})

	t.Run("skips_when_locked", func(t *testing.T) {
		p, deps := newSitemapProcessor(t)

		ok, err := deps.rdb.Cache.SetNX(context.Background(), "lock:sitemap", "other", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = p.Refresh(context.Background())
		assert.ErrorIs(t, err, workers.ErrSitemapLocked)

		task, err := workers.NewSitemapTask("manual")
		require.NoError(t, err)
		assert.NoError(t, p.ProcessTask(context.Background(), task))
		assert.False(t, deps.rdb.Server.Exists(workers.SitemapKey))
	})

	t.Run("backend_failure_keeps_previous_sitemap", func(t *testing.T) {
		p, deps := newSitemapProcessor(t)
		require.NoError(t, deps.rdb.Cache.Set(context.Background(), workers.SitemapKey, "previous"))

		deps.parts.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend down"))

		err := p.ProcessTask(context.Background(), asynq.NewTask(workers.TypeSitemapGenerate, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list parts page 1")

		var doc string
		require.NoError(t, deps.rdb.Cache.Get(context.Background(), workers.SitemapKey, &doc))
		assert.Equal(t, "previous", doc)
		assert.False(t, deps.rdb.Server.Exists("lock:sitemap"))
	})

	t.Run("bad_payload_is_not_retried", func(t *testing.T) {
		p, _ := newSitemapProcessor(t)

		err := p.ProcessTask(context.Background(), asynq.NewTask(workers.TypeSitemapGenerate, []byte("{")))
		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
