package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"newsapp/internal/model"
	"newsapp/internal/service"
	"newsapp/internal/store"

	"github.com/gin-gonic/gin"
)

type ArticleReader interface {
	PaginatedByStatus(ctx context.Context, pageNumber, pageSize int, status model.ArticleStatus, categoryID int64) (service.ArticlePage, error)
	PaginatedForUser(ctx context.Context, pageNumber, pageSize int, categoryID int64) (service.ArticlePage, error)
	MostInteracted(ctx context.Context, kind string) (model.Article, error)
	ChangeStatus(ctx context.Context, articleID string, status model.ArticleStatus) (model.Article, error)
	Edit(ctx context.Context, edit service.ArticleEdit) (model.Article, error)
	Categories(ctx context.Context) ([]model.Category, error)
	CategoriesOf(ctx context.Context, articleID int64) ([]string, error)
	CountByStatus(ctx context.Context, status model.ArticleStatus) (int, error)
}

type ArticleHandler struct {
	service ArticleReader
	ping    func() error
}

func NewArticleHandler(service ArticleReader, ping func() error) *ArticleHandler {
	return &ArticleHandler{service: service, ping: ping}
}

// GetArticles is the admin listing: paginated by status, optionally scoped
// to one category.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	status, err := model.ParseArticleStatus(c.DefaultQuery("status", "Pending"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	page := getQueryInt("page", 1, c)
	size := getQueryInt("page_size", 10, c)
	categoryID := int64(getQueryInt("category_id", 0, c))

	result, err := h.service.PaginatedByStatus(c.Request.Context(), page, size, status, categoryID)
	if err != nil {
		writeError(c, err, "error fetching articles")
		return
	}

	res, err := h.pageResponse(c.Request.Context(), result, page, size)
	if err != nil {
		writeError(c, err, "error fetching article categories")
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetStatusCount reports how many articles sit in the given moderation
// status, for the admin dashboard.
func (h *ArticleHandler) GetStatusCount(c *gin.Context) {
	status, err := model.ParseArticleStatus(c.DefaultQuery("status", "Pending"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	count, err := h.service.CountByStatus(c.Request.Context(), status)
	if err != nil {
		writeError(c, err, "error counting articles")
		return
	}

	c.JSON(http.StatusOK, StatusCountResponse{Status: status.String(), Count: count})
}

// GetFeed is the public listing: Approved and Edited articles only.
func (h *ArticleHandler) GetFeed(c *gin.Context) {
	page := getQueryInt("page", 1, c)
	size := getQueryInt("page_size", 10, c)
	categoryID := int64(getQueryInt("category_id", 0, c))

	result, err := h.service.PaginatedForUser(c.Request.Context(), page, size, categoryID)
	if err != nil {
		writeError(c, err, "error fetching feed")
		return
	}

	res, err := h.pageResponse(c.Request.Context(), result, page, size)
	if err != nil {
		writeError(c, err, "error fetching article categories")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetMostInteracted(c *gin.Context) {
	article, err := h.service.MostInteracted(c.Request.Context(), c.DefaultQuery("type", "comment"))
	if err != nil {
		writeError(c, err, "error fetching most interacted article")
		return
	}

	res, err := h.articleResponse(c.Request.Context(), article)
	if err != nil {
		writeError(c, err, "error fetching article categories")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) ChangeStatus(c *gin.Context) {
	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := model.ParseArticleStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	article, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, err, "error changing article status")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

func (h *ArticleHandler) EditArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	var req ArticleEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := h.service.Edit(c.Request.Context(), service.ArticleEdit{
		ArticleID: articleID,
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		ImgURL:    req.ImgURL,
		OriginURL: req.OriginURL,
	})
	if err != nil {
		writeError(c, err, "error editing article")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

func (h *ArticleHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err, "error fetching categories")
		return
	}

	res := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, CategoryResponse{
			ID:          category.CategoryID,
			Name:        category.Name,
			Description: category.Description,
			Type:        category.Type,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	if err := h.ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func (h *ArticleHandler) pageResponse(ctx context.Context, page service.ArticlePage, pageNumber, pageSize int) (ArticlePageResponse, error) {
	articles := make([]ArticleResponse, 0, len(page.Articles))
	for _, article := range page.Articles {
		res, err := h.articleResponse(ctx, article)
		if err != nil {
			return ArticlePageResponse{}, err
		}
		articles = append(articles, res)
	}
	return ArticlePageResponse{
		Articles:   articles,
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// articleResponse renders one article with its category names attached.
func (h *ArticleHandler) articleResponse(ctx context.Context, a model.Article) (ArticleResponse, error) {
	res := toArticleResponse(a)
	names, err := h.service.CategoriesOf(ctx, a.ArticleID)
	if err != nil {
		return ArticleResponse{}, err
	}
	res.Categories = names
	return res, nil
}

func toArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		ID:           a.ArticleID,
		Title:        a.Title,
		Content:      a.Content,
		Summary:      a.Summary,
		ImgURL:       a.ImgURL,
		OriginURL:    a.OriginURL,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		Status:       a.Status.String(),
		ImpScore:     a.ImpScore,
		ShareCount:   a.ShareCount,
		SaveCount:    a.SaveCount,
		CommentCount: a.CommentCount,
	}
}

func writeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNoItemsAvailable):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrInvalidArgument), errors.Is(err, store.ErrFieldNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)
	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil || parsed < 0 {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param)
		return defaultValue
	}

	return parsed
}
