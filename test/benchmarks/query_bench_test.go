package benchmarks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/core/catalog"
	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
	"github.com/ammerola/wreckers-gateway/test/helpers"
)

func BenchmarkQueryOperations(b *testing.B) {
	mr, err := miniredis.Run()
	if err != nil {
		b.Fatal(err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	logger := helpers.TestLogger()
	client := query.NewClient(redis_a.NewCache(rdb, time.Hour, logger), logger)
	opts := query.Options{StaleTime: time.Hour, CacheTime: time.Hour, Retry: -1}
	ctx := context.Background()

	page := &domain.PartsPage{Items: make([]domain.Part, 0, 20)}
	for i := 0; i < 20; i++ {
		page.Items = append(page.Items, helpers.CreateTestPart())
	}
	fetch := func(context.Context) (*domain.PartsPage, error) { return page, nil }

	b.Run("KeyEncoding", func(b *testing.B) {
		params := domain.PartsParams{Page: 3, PageSize: 20, Make: "TOYOTA", Model: "HILUX", Year: "2012"}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = query.PartsKey(params).String()
		}
	})

	b.Run("FetchHit", func(b *testing.B) {
		key := query.PartsKey(domain.PartsParams{Page: 1})
		if _, err := query.Fetch(ctx, client, key, opts, fetch); err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = query.Fetch(ctx, client, key, opts, fetch)
		}
	})

	b.Run("FetchMiss", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			key := query.PartsKey(domain.PartsParams{Page: i + 1})
			_, _ = query.Fetch(ctx, client, key, opts, fetch)
		}
	})

	b.Run("ConcurrentHit", func(b *testing.B) {
		key := query.PartsKey(domain.PartsParams{Page: 1, Make: "FORD"})
		if _, err := query.Fetch(ctx, client, key, opts, fetch); err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = query.Fetch(ctx, client, key, opts, fetch)
			}
		})
	})

	b.Run("InvalidateFamily", func(b *testing.B) {
		for i := 0; i < 100; i++ {
			key := query.PartsKey(domain.PartsParams{Page: i + 1})
			_, _ = query.Fetch(ctx, client, key, opts, fetch)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = client.Invalidate(ctx, []query.Family{query.FamilyParts})
		}
	})
}

func BenchmarkFilterState(b *testing.B) {
	for _, q := range []string{
		"",
		"make=toyota&model=hilux",
		"year=2012&make=toyota&model=hilux&category=Engine&q=alternator&page=4",
	} {
		b.Run(fmt.Sprintf("RoundTrip/%d", len(q)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				state := catalog.Decode(q)
				_ = catalog.Encode(state)
				_ = state.Params(domain.DefaultPageSize)
			}
		})
	}
}
