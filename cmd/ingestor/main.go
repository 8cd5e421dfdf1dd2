package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsapp/db"
	"newsapp/internal/config"
	"newsapp/internal/ingest"
	"newsapp/internal/repository"
	"newsapp/internal/store"
	"newsapp/pkg/feed"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer pool.Close()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	articles := store.New(repository.NewArticleBackend(pool), repository.ArticleSchema())
	categories := store.New(repository.NewCategoryBackend(pool), repository.CategorySchema())
	links := store.New(repository.NewArticleCategoryBackend(pool), repository.ArticleCategorySchema())

	pipeline := ingest.NewPipeline(ingest.PipelineDeps{
		Feed:                 feed.NewInshortsClient(cfg.FeedBaseURL),
		Articles:             articles,
		Categories:           categories,
		Links:                links,
		Cursors:              ingest.NewRedisCursors(redisClient),
		TopStoriesCategoryID: cfg.TopStoriesCategoryID,
	})

	slog.Info("ingestor started", "interval", cfg.FetchInterval.String())

	runCycles(ctx, pipeline)

	ticker := time.NewTicker(cfg.FetchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runCycles(ctx, pipeline)
		case <-ctx.Done():
			slog.Info("ingestor stopping")
			return
		}
	}
}

func runCycles(ctx context.Context, pipeline *ingest.Pipeline) {
	start := time.Now()

	if err := pipeline.RunTopStoriesCycle(ctx); err != nil {
		slog.Error("top stories cycle failed", "error", err)
	}
	if err := pipeline.RunAllCategoryCycles(ctx); err != nil {
		slog.Error("category cycles finished with errors", "error", err)
	}

	slog.Info("ingestion cycles complete", "elapsed", time.Since(start).String())
}
