package feed

import (
	"context"
	"errors"
	"time"
)

// ErrFeedUnavailable covers network and parse failures reaching the feed.
// Cycles treat it as non-fatal and retry from the same cursor next run.
var ErrFeedUnavailable = errors.New("feed unavailable")

// Item is one raw feed entry. Version 0 means the item is identified by
// HashID; nonzero means the feed has rotated the hash at least once and the
// item is identified by OldHashID.
type Item struct {
	Version    int
	HashID     string
	OldHashID  string
	Title      string
	Content    string
	Summary    string
	ImgURL     string
	OriginURL  string
	CreatedAt  time.Time
	ImpScore   float64
	Categories []string
}

// Page is one fetch result plus the token the next fetch should resume from.
// An empty NextCursor means the feed offered no new resume point.
type Page struct {
	Items      []Item
	NextCursor string
}

type Client interface {
	TopStories(ctx context.Context, cursor string) (Page, error)
	CategoryPage(ctx context.Context, label, categoryType string, page int) (Page, error)
}
