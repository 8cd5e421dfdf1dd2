package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

// ArticleService carries the moderation and read operations the API layer
// exposes over the article stores.
type ArticleService struct {
	articles   *store.Store[model.Article]
	links      *store.Store[model.ArticleCategory]
	categories *store.Store[model.Category]
}

func NewArticleService(
	articles *store.Store[model.Article],
	links *store.Store[model.ArticleCategory],
	categories *store.Store[model.Category],
) *ArticleService {
	return &ArticleService{articles: articles, links: links, categories: categories}
}

// ArticlePage is one page of articles ordered by CreatedAt descending.
type ArticlePage struct {
	Articles   []model.Article
	TotalPages int
}

// ArticleEdit carries the admin-editable content fields.
type ArticleEdit struct {
	ArticleID int64
	Title     string
	Content   string
	Summary   string
	ImgURL    string
	OriginURL string
}

// ChangeStatus moves an article through the moderation flow.
func (s *ArticleService) ChangeStatus(ctx context.Context, articleID string, status model.ArticleStatus) (model.Article, error) {
	article, err := s.articles.GetOne(ctx, "ArticleID", articleID)
	if err != nil {
		return model.Article{}, err
	}

	article.Status = status
	updated, err := s.articles.Update(ctx, article, articleID)
	if err != nil {
		return model.Article{}, fmt.Errorf("change status of article %s: %w: %w", articleID, store.ErrUnableToUpdateItem, err)
	}
	return updated, nil
}

// Edit applies an admin content edit and marks the article Edited.
func (s *ArticleService) Edit(ctx context.Context, edit ArticleEdit) (model.Article, error) {
	key := strconv.FormatInt(edit.ArticleID, 10)
	article, err := s.articles.GetOne(ctx, "ArticleID", key)
	if err != nil {
		return model.Article{}, err
	}

	article.Title = edit.Title
	article.Content = edit.Content
	article.Summary = edit.Summary
	article.ImgURL = edit.ImgURL
	article.OriginURL = edit.OriginURL
	article.Status = model.StatusEdited

	updated, err := s.articles.Update(ctx, article, key)
	if err != nil {
		return model.Article{}, fmt.Errorf("edit article %d: %w: %w", edit.ArticleID, store.ErrUnableToUpdateItem, err)
	}
	return updated, nil
}

// PaginatedByStatus returns the admin view: articles in one status, scoped
// to a category when categoryID is nonzero.
func (s *ArticleService) PaginatedByStatus(ctx context.Context, pageNumber, pageSize int, status model.ArticleStatus, categoryID int64) (ArticlePage, error) {
	matches, err := s.articles.GetMany(ctx, "Status", status.String())
	if err != nil {
		return ArticlePage{}, err
	}
	return s.paginate(ctx, matches, pageNumber, pageSize, categoryID)
}

// PaginatedForUser returns the public view: Approved and Edited articles,
// scoped to a category when categoryID is nonzero.
func (s *ArticleService) PaginatedForUser(ctx context.Context, pageNumber, pageSize int, categoryID int64) (ArticlePage, error) {
	all, err := s.articles.GetMany(ctx, "", "")
	if err != nil {
		return ArticlePage{}, err
	}

	var visible []model.Article
	for _, article := range all {
		if article.Status == model.StatusApproved || article.Status == model.StatusEdited {
			visible = append(visible, article)
		}
	}
	return s.paginate(ctx, visible, pageNumber, pageSize, categoryID)
}

// MostInteracted returns the article leading one interaction counter;
// kind is "comment", "saved" or "shared".
func (s *ArticleService) MostInteracted(ctx context.Context, kind string) (model.Article, error) {
	counter := func(model.Article) int { return 0 }
	switch kind {
	case "comment":
		counter = func(a model.Article) int { return a.CommentCount }
	case "saved":
		counter = func(a model.Article) int { return a.SaveCount }
	case "shared":
		counter = func(a model.Article) int { return a.ShareCount }
	default:
		return model.Article{}, fmt.Errorf("interaction type %q: %w", kind, store.ErrInvalidArgument)
	}

	all, err := s.articles.GetMany(ctx, "", "")
	if err != nil {
		return model.Article{}, err
	}

	best := all[0]
	for _, article := range all[1:] {
		if counter(article) > counter(best) {
			best = article
		}
	}
	return best, nil
}

// CountByStatus reports how many articles sit in one status.
func (s *ArticleService) CountByStatus(ctx context.Context, status model.ArticleStatus) (int, error) {
	matches, err := s.articles.GetMany(ctx, "Status", status.String())
	if errors.Is(err, store.ErrNoItemsAvailable) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// Categories lists every known category.
func (s *ArticleService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.GetMany(ctx, "", "")
}

// CategoriesOf returns the category names linked to one article.
func (s *ArticleService) CategoriesOf(ctx context.Context, articleID int64) ([]string, error) {
	links, err := s.links.GetMany(ctx, "ArticleID", strconv.FormatInt(articleID, 10))
	if errors.Is(err, store.ErrNoItemsAvailable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, link := range links {
		category, err := s.categories.GetOne(ctx, "CategoryID", strconv.FormatInt(link.CategoryID, 10))
		if err != nil {
			return nil, err
		}
		names = append(names, category.Name)
	}
	return names, nil
}

func (s *ArticleService) paginate(ctx context.Context, articles []model.Article, pageNumber, pageSize int, categoryID int64) (ArticlePage, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if categoryID != 0 {
		inCategory, err := s.articleIDsInCategory(ctx, categoryID)
		if err != nil {
			return ArticlePage{}, err
		}
		var scoped []model.Article
		for _, article := range articles {
			if inCategory[article.ArticleID] {
				scoped = append(scoped, article)
			}
		}
		articles = scoped
	}

	if len(articles) == 0 {
		return ArticlePage{}, fmt.Errorf("page %d: %w", pageNumber, store.ErrNoItemsAvailable)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})

	totalPages := int(math.Ceil(float64(len(articles)) / float64(pageSize)))
	skip := (pageNumber - 1) * pageSize
	if skip >= len(articles) {
		return ArticlePage{TotalPages: totalPages}, nil
	}
	end := skip + pageSize
	if end > len(articles) {
		end = len(articles)
	}

	return ArticlePage{Articles: articles[skip:end], TotalPages: totalPages}, nil
}

func (s *ArticleService) articleIDsInCategory(ctx context.Context, categoryID int64) (map[int64]bool, error) {
	links, err := s.links.GetMany(ctx, "CategoryID", strconv.FormatInt(categoryID, 10))
	if errors.Is(err, store.ErrNoItemsAvailable) {
		return map[int64]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]bool, len(links))
	for _, link := range links {
		ids[link.ArticleID] = true
	}
	return ids, nil
}
