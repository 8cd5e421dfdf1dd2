package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func feedPayload() map[string]interface{} {
	return map[string]interface{}{
		"data": map[string]interface{}{
			"min_news_id": "min-777",
			"news_list": []map[string]interface{}{
				{
					"version": 1,
					"news_obj": map[string]interface{}{
						"hash_id":          "new-hash",
						"old_hash_id":      "old-hash",
						"title":            "Markets rally",
						"content":          "Stocks rose across the board.",
						"bottom_headline":  "A broad rally",
						"source_url":       "https://example.com/story",
						"image_url":        "https://example.com/img.jpg",
						"created_at":       1721908800000,
						"impressive_score": 0.42,
						"category_names":   []string{"business", "markets"},
					},
				},
				{
					// Entries without a news_obj are skipped.
					"version": 0,
				},
			},
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*InshortsClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewInshortsClient(srv.URL), srv
}

func TestTopStories_DecodesEnvelope(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(feedPayload())
	})

	page, err := client.TopStories(context.Background(), "min-500")
	assert.Equal(t, nil, err)
	assert.Equal(t, "min-777", page.NextCursor)
	assert.Equal(t, 1, len(page.Items))

	item := page.Items[0]
	assert.Equal(t, 1, item.Version)
	assert.Equal(t, "new-hash", item.HashID)
	assert.Equal(t, "old-hash", item.OldHashID)
	assert.Equal(t, "Markets rally", item.Title)
	assert.Equal(t, "A broad rally", item.Summary)
	assert.Equal(t, "https://example.com/story", item.OriginURL)
	assert.Equal(t, []string{"business", "markets"}, item.Categories)

	// created_at arrives as epoch milliseconds.
	assert.Equal(t, time.Date(2024, time.July, 25, 12, 0, 0, 0, time.UTC), item.CreatedAt)

	assert.MatchRegex(t, gotPath, `news_offset=min-500`)
}

func TestTopStories_NoCursorOmitsOffset(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{}})
	})

	_, err := client.TopStories(context.Background(), "")
	assert.Equal(t, nil, err)
	assert.NotMatchRegex(t, gotPath, `news_offset`)
}

func TestCategoryPage_BuildsURL(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{}})
	})

	_, err := client.CategoryPage(context.Background(), "world", "CUSTOM_CATEGORY", 3)
	assert.Equal(t, nil, err)
	assert.MatchRegex(t, gotPath, `/api/en/search/trending_topics/world`)
	assert.MatchRegex(t, gotPath, `page=3`)
	assert.MatchRegex(t, gotPath, `type=CUSTOM_CATEGORY`)
}

func TestFetch_BadStatusIsFeedUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.TopStories(context.Background(), "")
	assert.Equal(t, true, errors.Is(err, ErrFeedUnavailable))
}

func TestFetch_BadJSONIsFeedUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>blocked</html>"))
	})

	_, err := client.TopStories(context.Background(), "")
	assert.Equal(t, true, errors.Is(err, ErrFeedUnavailable))
}
