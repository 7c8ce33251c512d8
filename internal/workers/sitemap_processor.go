// internal/workers/sitemap_processor.go
package workers

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/samber/lo"

	redis_a "github.com/ammerola/wreckers-gateway/internal/adapters/redis_adapter"
	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// SitemapKey is where the rendered sitemap is stored
var SitemapKey = redis_a.SitemapKey

var sitemapLockKey = redis_a.BuildKey(redis_a.PrefixLock, "sitemap")

const (
	sitemapTTL     = 48 * time.Hour
	sitemapLockTTL = 5 * time.Minute
	sitemapPage    = 100
	// sitemaps are capped at 50,000 URLs
	maxSitemapURLs = 50000
)

// staticPaths are the pages that exist regardless of inventory
var staticPaths = []string{"/", "/parts", "/cars", "/sell-your-car", "/warranty", "/contact"}

// ErrSitemapLocked means another worker is building the sitemap
var ErrSitemapLocked = errors.New("sitemap generation already running")

// SitemapURL is one <url> entry
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// URLSet is the sitemap document
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapProcessor renders sitemap.xml from the live catalog
type SitemapProcessor struct {
	parts   ports.PartsAPI
	cars    ports.CarsAPI
	posts   ports.WpPostsAPI
	cache   ports.CacheRepository
	siteURL string
	now     func() time.Time
	logger  *slog.Logger
}

// NewSitemapProcessor creates a new sitemap processor. posts may be nil.
func NewSitemapProcessor(parts ports.PartsAPI, cars ports.CarsAPI, posts ports.WpPostsAPI, cache ports.CacheRepository, siteURL string, logger *slog.Logger) *SitemapProcessor {
	return &SitemapProcessor{
		parts:   parts,
		cars:    cars,
		posts:   posts,
		cache:   cache,
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     time.Now,
		logger:  logger.With(slog.String("processor", "sitemap")),
	}
}

// ProcessTask handles TypeSitemapGenerate
func (p *SitemapProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload SitemapPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	_, err := p.Refresh(ctx)
	if errors.Is(err, ErrSitemapLocked) {
		p.logger.InfoContext(ctx, "sitemap generation skipped, already running",
			slog.String("reason", payload.Reason))
		return nil
	}
	return err
}

// Refresh builds the sitemap and stores it. It returns the number of URLs.
func (p *SitemapProcessor) Refresh(ctx context.Context) (int, error) {
	acquired, err := p.cache.SetNX(ctx, sitemapLockKey, p.now().UTC().Format(time.RFC3339), sitemapLockTTL)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire sitemap lock: %w", err)
	}
	if !acquired {
		return 0, ErrSitemapLocked
	}
	defer func() {
		if err := p.cache.Delete(context.WithoutCancel(ctx), sitemapLockKey); err != nil {
			p.logger.WarnContext(ctx, "failed to release sitemap lock", slog.String("error", err.Error()))
		}
	}()

	start := p.now()
	doc, count, err := p.Generate(ctx)
	if err != nil {
		return 0, err
	}

	if err := p.cache.SetWithTTL(ctx, SitemapKey, string(doc), sitemapTTL); err != nil {
		return 0, fmt.Errorf("failed to store sitemap: %w", err)
	}

	p.logger.InfoContext(ctx, "sitemap generated",
		slog.Int("urls", count),
		slog.Int("bytes", len(doc)),
		slog.Duration("duration", p.now().Sub(start)))
	return count, nil
}

// Generate renders the sitemap document
func (p *SitemapProcessor) Generate(ctx context.Context) ([]byte, int, error) {
	today := p.now().UTC().Format("2006-01-02")

	urls := make([]SitemapURL, 0, len(staticPaths))
	for _, path := range staticPaths {
		urls = append(urls, SitemapURL{Loc: p.siteURL + path, LastMod: today, ChangeFreq: "daily", Priority: "0.8"})
	}

	partURLs, err := p.partURLs(ctx)
	if err != nil {
		return nil, 0, err
	}
	urls = append(urls, partURLs...)

	carURLs, err := p.carURLs(ctx)
	if err != nil {
		return nil, 0, err
	}
	urls = append(urls, carURLs...)

	if p.posts != nil {
		postURLs, err := p.postURLs(ctx)
		if err != nil {
			return nil, 0, err
		}
		urls = append(urls, postURLs...)
	}

	urls = lo.UniqBy(urls, func(u SitemapURL) string { return u.Loc })
	if len(urls) > maxSitemapURLs {
		p.logger.WarnContext(ctx, "sitemap truncated", slog.Int("urls", len(urls)))
		urls = urls[:maxSitemapURLs]
	}

	out, err := xml.MarshalIndent(URLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: urls}, "", "  ")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), len(urls), nil
}

func (p *SitemapProcessor) partURLs(ctx context.Context) ([]SitemapURL, error) {
	var urls []SitemapURL
	for page := 1; len(urls) < maxSitemapURLs; page++ {
		res, err := p.parts.List(ctx, domain.PartsParams{Page: page, PageSize: sitemapPage})
		if err != nil {
			return nil, fmt.Errorf("failed to list parts page %d: %w", page, err)
		}
		for _, part := range res.Items {
			urls = append(urls, SitemapURL{Loc: p.siteURL + "/parts/" + url.PathEscape(part.ID), ChangeFreq: "weekly", Priority: "0.6"})
		}
		if !res.Pagination.HasNextPage || len(res.Items) == 0 {
			break
		}
	}
	return urls, nil
}

func (p *SitemapProcessor) carURLs(ctx context.Context) ([]SitemapURL, error) {
	var urls []SitemapURL
	for page := 1; len(urls) < maxSitemapURLs; page++ {
		res, err := p.cars.List(ctx, domain.CarsParams{Page: page, PageSize: sitemapPage})
		if err != nil {
			return nil, fmt.Errorf("failed to list cars page %d: %w", page, err)
		}
		for _, car := range res.Items {
			id := car.EffectiveID()
			if id == 0 {
				continue
			}
			urls = append(urls, SitemapURL{
				Loc:        p.siteURL + "/cars/" + strconv.FormatInt(id, 10),
				LastMod:    lastMod(string(car.DateAdded)),
				ChangeFreq: "weekly",
				Priority:   "0.5",
			})
		}
		if !res.Pagination.HasNextPage || len(res.Items) == 0 {
			break
		}
	}
	return urls, nil
}

func (p *SitemapProcessor) postURLs(ctx context.Context) ([]SitemapURL, error) {
	posts, err := p.posts.List(ctx, domain.ListParams{Page: 1, PageSize: domain.MaxPageSize, Status: "publish"})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	urls := make([]SitemapURL, 0, len(posts))
	for _, post := range posts {
		slug := string(post.Slug)
		if slug == "" {
			slug = post.ID.String()
		}
		urls = append(urls, SitemapURL{
			Loc:        p.siteURL + "/news/" + url.PathEscape(slug),
			LastMod:    lastMod(string(post.UpdatedAt)),
			ChangeFreq: "monthly",
			Priority:   "0.4",
		})
	}
	return urls, nil
}

// lastMod keeps the date part of a backend timestamp
func lastMod(ts string) string {
	if len(ts) < 10 {
		return ""
	}
	if _, err := time.Parse("2006-01-02", ts[:10]); err != nil {
		return ""
	}
	return ts[:10]
}
