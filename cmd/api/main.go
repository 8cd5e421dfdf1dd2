package main

import (
	"log"
	"log/slog"
	"os"

	"newsapp/db"
	"newsapp/internal/config"
	"newsapp/internal/handler"
	"newsapp/internal/repository"
	"newsapp/internal/service"
	"newsapp/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer pool.Close()

	articles := store.New(repository.NewArticleBackend(pool), repository.ArticleSchema())
	categories := store.New(repository.NewCategoryBackend(pool), repository.CategorySchema())
	links := store.New(repository.NewArticleCategoryBackend(pool), repository.ArticleCategorySchema())
	prefs := store.New(repository.NewUserPreferenceBackend(pool), repository.UserPreferenceSchema())
	users := store.New(repository.NewUserBackend(pool), repository.UserSchema())

	articleService := service.NewArticleService(articles, links, categories)
	prefService := service.NewPreferenceService(prefs)

	articleHandler := handler.NewArticleHandler(articleService, pool.Ping)
	prefHandler := handler.NewPreferenceHandler(prefService)
	userHandler := handler.NewUserHandler(users)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/feed", articleHandler.GetFeed)
	r.GET("/articles", articleHandler.GetArticles)
	r.GET("/articles/most-interacted", articleHandler.GetMostInteracted)
	r.GET("/articles/count", articleHandler.GetStatusCount)
	r.PUT("/articles/:id/status", articleHandler.ChangeStatus)
	r.PUT("/articles/:id", articleHandler.EditArticle)
	r.GET("/categories", articleHandler.GetCategories)
	r.GET("/users", userHandler.GetUsers)
	r.GET("/users/:id", userHandler.GetUser)
	r.GET("/users/:id/preferences", prefHandler.GetPreferences)
	r.POST("/users/:id/preferences", prefHandler.SetPreferences)
	r.GET("/health", articleHandler.GetHealth)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
