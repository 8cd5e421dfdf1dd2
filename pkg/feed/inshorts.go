package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://m.inshorts.com"

// InshortsClient fetches the upstream news feed. Headers are built once and
// applied per request; the underlying http.Client is never mutated.
type InshortsClient struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
}

func NewInshortsClient(baseURL string) *InshortsClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	headers := http.Header{}
	headers.Set("Accept-Language", "en-US,en;q=0.9,en-GB;q=0.8")
	headers.Set("Cache-Control", "max-age=0")
	headers.Set("User-Agent", "Mozilla/5.0 (Linux; Android 6.0; Nexus 5 Build/MRA58N) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36")

	return &InshortsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers:    headers,
	}
}

func (c *InshortsClient) TopStories(ctx context.Context, cursor string) (Page, error) {
	endpoint := c.baseURL + "/api/in/en/news?category=top_stories&max_limit=10&include_card_data=true"
	if cursor != "" {
		endpoint += "&news_offset=" + url.QueryEscape(cursor)
	}
	return c.fetch(ctx, "top stories", endpoint)
}

func (c *InshortsClient) CategoryPage(ctx context.Context, label, categoryType string, page int) (Page, error) {
	endpoint := fmt.Sprintf("%s/api/en/search/trending_topics/%s?page=%d&type=%s",
		c.baseURL, url.PathEscape(label), page, url.QueryEscape(categoryType))
	return c.fetch(ctx, label, endpoint)
}

func (c *InshortsClient) fetch(ctx context.Context, scope, endpoint string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, fmt.Errorf("%s fetch: %w: %w", scope, ErrFeedUnavailable, err)
	}
	for key, values := range c.headers {
		req.Header[key] = values
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("%s fetch: %w: %w", scope, ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("%s fetch: status %d: %w", scope, resp.StatusCode, ErrFeedUnavailable)
	}

	var raw newsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Page{}, fmt.Errorf("%s decode: %w: %w", scope, ErrFeedUnavailable, err)
	}

	page := Page{NextCursor: raw.Data.MinNewsID}
	for _, entry := range raw.Data.NewsList {
		obj := entry.NewsObj
		if obj == nil {
			continue
		}
		page.Items = append(page.Items, Item{
			Version:    entry.Version,
			HashID:     obj.HashID,
			OldHashID:  obj.OldHashID,
			Title:      obj.Title,
			Content:    obj.Content,
			Summary:    obj.BottomHeadline,
			ImgURL:     obj.ImageURL,
			OriginURL:  obj.SourceURL,
			CreatedAt:  time.UnixMilli(obj.CreatedAt).UTC(),
			ImpScore:   obj.ImpressiveScore,
			Categories: obj.CategoryNames,
		})
	}

	return page, nil
}

type newsEnvelope struct {
	Data struct {
		NewsList  []newsEntry `json:"news_list"`
		MinNewsID string      `json:"min_news_id"`
	} `json:"data"`
}

type newsEntry struct {
	Version int      `json:"version"`
	NewsObj *newsObj `json:"news_obj"`
}

type newsObj struct {
	HashID          string   `json:"hash_id"`
	OldHashID       string   `json:"old_hash_id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	BottomHeadline  string   `json:"bottom_headline"`
	SourceURL       string   `json:"source_url"`
	ImageURL        string   `json:"image_url"`
	CreatedAt       int64    `json:"created_at"`
	ImpressiveScore float64  `json:"impressive_score"`
	CategoryNames   []string `json:"category_names"`
}
