package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"newsapp/internal/model"
	"newsapp/internal/store"
	"newsapp/pkg/feed"
)

// Pipeline runs one fetch-reconcile cycle per feed scope. Cycles for the
// same scope are single-flight: cursor read-then-write is not atomic, so
// overlapping runs of one scope are serialized on a per-scope mutex.
type Pipeline struct {
	feed       feed.Client
	articles   *store.Store[model.Article]
	categories *store.Store[model.Category]
	links      *store.Store[model.ArticleCategory]
	resolver   *CategoryResolver
	cursors    CursorStore

	// topStoriesCategoryID is attached to every article arriving on the
	// global feed, on top of the item's own category labels.
	topStoriesCategoryID int64

	now func() time.Time

	mu     sync.Mutex
	scopes map[string]*sync.Mutex
}

type PipelineDeps struct {
	Feed                 feed.Client
	Articles             *store.Store[model.Article]
	Categories           *store.Store[model.Category]
	Links                *store.Store[model.ArticleCategory]
	Cursors              CursorStore
	TopStoriesCategoryID int64
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		feed:                 deps.Feed,
		articles:             deps.Articles,
		categories:           deps.Categories,
		links:                deps.Links,
		resolver:             NewCategoryResolver(deps.Categories),
		cursors:              deps.Cursors,
		topStoriesCategoryID: deps.TopStoriesCategoryID,
		now:                  time.Now,
		scopes:               make(map[string]*sync.Mutex),
	}
}

// RunTopStoriesCycle fetches one page of the global feed and reconciles it.
// A feed outage ends the cycle cleanly without advancing the cursor; the
// next scheduled run retries from the same spot.
func (p *Pipeline) RunTopStoriesCycle(ctx context.Context) error {
	lock := p.scopeLock(TopStoriesScope)
	lock.Lock()
	defer lock.Unlock()

	cursor, err := p.cursors.Get(ctx, TopStoriesScope)
	if err != nil {
		return err
	}

	page, err := p.feed.TopStories(ctx, cursor)
	if err != nil {
		if errors.Is(err, feed.ErrFeedUnavailable) {
			slog.Warn("top stories feed unavailable", "error", err)
			return nil
		}
		return err
	}

	if len(page.Items) == 0 {
		return nil
	}

	for _, item := range page.Items {
		if err := p.reconcile(ctx, item, true); err != nil {
			return err
		}
	}

	if page.NextCursor != "" {
		if err := p.cursors.Set(ctx, TopStoriesScope, page.NextCursor); err != nil {
			return err
		}
	}

	return nil
}

// RunAllCategoryCycles runs one page-fetch for every known category. A
// failing category does not stop the others; failures are joined and
// surfaced to the caller.
func (p *Pipeline) RunAllCategoryCycles(ctx context.Context) error {
	categories, err := p.categories.GetMany(ctx, "", "")
	if errors.Is(err, store.ErrNoItemsAvailable) {
		return nil
	}
	if err != nil {
		return err
	}

	var failures []error
	for _, category := range categories {
		if err := p.RunCategoryCycle(ctx, category); err != nil {
			slog.Error("category cycle failed", "category", category.Description, "error", err)
			failures = append(failures, fmt.Errorf("category %q: %w", category.Description, err))
		}
	}
	return errors.Join(failures...)
}

// RunCategoryCycle fetches the next page of one category's feed. The cursor
// is an incrementing page number, advanced only after the page reconciles.
func (p *Pipeline) RunCategoryCycle(ctx context.Context, category model.Category) error {
	scope := CategoryScope(category.CategoryID)
	lock := p.scopeLock(scope)
	lock.Lock()
	defer lock.Unlock()

	cursor, err := p.cursors.Get(ctx, scope)
	if err != nil {
		return err
	}
	pageNumber := 1
	if cursor != "" {
		if n, err := strconv.Atoi(cursor); err == nil {
			pageNumber = n
		}
	}

	page, err := p.feed.CategoryPage(ctx, category.Description, category.Type, pageNumber)
	if err != nil {
		if errors.Is(err, feed.ErrFeedUnavailable) {
			slog.Warn("category feed unavailable", "category", category.Description, "error", err)
			return nil
		}
		return err
	}

	if len(page.Items) == 0 {
		return nil
	}

	for _, item := range page.Items {
		if err := p.reconcile(ctx, item, false); err != nil {
			return err
		}
	}

	return p.cursors.Set(ctx, scope, strconv.Itoa(pageNumber+1))
}

// reconcile decides create, update or no-op for one feed item. Identity is
// resolved against the current hash for fresh items and against the
// previous hash when the feed signals a rotation; keying off the current
// hash alone would duplicate the article every time upstream rotates it.
// An empty hash must never reach the lookup: the substring rule would
// match every stored row.
func (p *Pipeline) reconcile(ctx context.Context, item feed.Item, topStories bool) error {
	if item.HashID == "" {
		slog.Warn("skipping feed item without hash id", "title", item.Title)
		return nil
	}

	lookupField, lookupValue := "HashID", item.HashID
	if item.Version != 0 && item.OldHashID != "" {
		lookupField, lookupValue = "OldHashID", item.OldHashID
	}

	existing, err := p.articles.GetOne(ctx, lookupField, lookupValue)
	if errors.Is(err, store.ErrNotFound) {
		return p.create(ctx, item, topStories)
	}
	if err != nil {
		return err
	}

	// Same hash means an idempotent re-sighting; nothing to write.
	if existing.HashID == item.HashID {
		return nil
	}

	return p.update(ctx, existing, item)
}

func (p *Pipeline) create(ctx context.Context, item feed.Item, topStories bool) error {
	created, err := p.articles.Add(ctx, model.Article{
		HashID:    item.HashID,
		OldHashID: item.OldHashID,
		Title:     item.Title,
		Content:   item.Content,
		Summary:   item.Summary,
		ImgURL:    item.ImgURL,
		OriginURL: item.OriginURL,
		CreatedAt: item.CreatedAt,
		AddedAt:   p.now().UTC(),
		ImpScore:  item.ImpScore,
		SaveCount: 0,
		Status:    model.StatusPending,
	})
	if err != nil {
		return fmt.Errorf("article %q: %w: %w", item.HashID, store.ErrUnableToAddItem, err)
	}

	// Labels seen on a category feed mark the category as locally curated;
	// labels arriving with top stories describe the feed's own taxonomy.
	for _, label := range item.Categories {
		category, err := p.resolver.Resolve(ctx, label, !topStories)
		if err != nil {
			return fmt.Errorf("article %q: %w: %w", item.HashID, store.ErrUnableToAddItem, err)
		}
		if err := p.link(ctx, created.ArticleID, category.CategoryID); err != nil {
			return fmt.Errorf("article %q: %w: %w", item.HashID, store.ErrUnableToAddItem, err)
		}
	}

	if topStories {
		if err := p.link(ctx, created.ArticleID, p.topStoriesCategoryID); err != nil {
			return fmt.Errorf("article %q: %w: %w", item.HashID, store.ErrUnableToAddItem, err)
		}
	}

	return nil
}

// update overwrites content fields and shifts the hash pair forward. An
// edited article re-enters moderation whatever its prior state. Category
// links and interaction counters are left alone.
func (p *Pipeline) update(ctx context.Context, existing model.Article, item feed.Item) error {
	existing.Title = item.Title
	existing.Content = item.Content
	existing.Summary = item.Summary
	existing.ImgURL = item.ImgURL
	existing.OriginURL = item.OriginURL
	existing.CreatedAt = item.CreatedAt
	existing.AddedAt = p.now().UTC()
	existing.ImpScore = item.ImpScore
	existing.HashID = item.HashID
	existing.OldHashID = item.OldHashID
	existing.Status = model.StatusPending

	key := strconv.FormatInt(existing.ArticleID, 10)
	if _, err := p.articles.Update(ctx, existing, key); err != nil {
		return fmt.Errorf("article %q: %w: %w", item.HashID, store.ErrUnableToUpdateItem, err)
	}
	return nil
}

func (p *Pipeline) link(ctx context.Context, articleID, categoryID int64) error {
	_, err := p.links.Add(ctx, model.ArticleCategory{
		ArticleID:  articleID,
		CategoryID: categoryID,
	})
	return err
}

func (p *Pipeline) scopeLock(scope string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.scopes[scope]
	if !ok {
		lock = &sync.Mutex{}
		p.scopes[scope] = lock
	}
	return lock
}
