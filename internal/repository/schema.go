package repository

import (
	"newsapp/internal/model"
	"newsapp/internal/store"
)

// Filterable field schemas for every entity store. Counters, timestamps and
// scores are deliberately unregistered: filtering on them via the string
// contract has no sensible comparison mode, so they report ErrFieldNotFound.

func ArticleSchema() *store.Schema[model.Article] {
	return store.NewSchema[model.Article]("Article").
		Int("ArticleID", func(a model.Article) int64 { return a.ArticleID }).
		String("HashID", func(a model.Article) string { return a.HashID }).
		String("OldHashID", func(a model.Article) string { return a.OldHashID }).
		String("Title", func(a model.Article) string { return a.Title }).
		String("Content", func(a model.Article) string { return a.Content }).
		String("Summary", func(a model.Article) string { return a.Summary }).
		String("ImgURL", func(a model.Article) string { return a.ImgURL }).
		String("OriginURL", func(a model.Article) string { return a.OriginURL }).
		Enum("Status", func(a model.Article) int { return int(a.Status) }, parseStatus)
}

func CategorySchema() *store.Schema[model.Category] {
	return store.NewSchema[model.Category]("Category").
		Int("CategoryID", func(c model.Category) int64 { return c.CategoryID }).
		String("Name", func(c model.Category) string { return c.Name }).
		String("Description", func(c model.Category) string { return c.Description }).
		String("Type", func(c model.Category) string { return c.Type })
}

func ArticleCategorySchema() *store.Schema[model.ArticleCategory] {
	return store.NewSchema[model.ArticleCategory]("ArticleCategory").
		Int("ArticleCategoryID", func(ac model.ArticleCategory) int64 { return ac.ArticleCategoryID }).
		Int("ArticleID", func(ac model.ArticleCategory) int64 { return ac.ArticleID }).
		Int("CategoryID", func(ac model.ArticleCategory) int64 { return ac.CategoryID })
}

func UserSchema() *store.Schema[model.User] {
	return store.NewSchema[model.User]("User").
		Int("UserID", func(u model.User) int64 { return u.UserID }).
		String("Name", func(u model.User) string { return u.Name }).
		String("Email", func(u model.User) string { return u.Email }).
		String("OAuthID", func(u model.User) string { return u.OAuthID }).
		String("OAuthToken", func(u model.User) string { return u.OAuthToken }).
		Enum("Role", func(u model.User) int { return int(u.Role) }, parseRole)
}

func UserPreferenceSchema() *store.Schema[model.UserPreference] {
	return store.NewSchema[model.UserPreference]("UserPreference").
		Int("UserPreferenceID", func(p model.UserPreference) int64 { return p.UserPreferenceID }).
		Int("UserID", func(p model.UserPreference) int64 { return p.UserID }).
		Int("CategoryID", func(p model.UserPreference) int64 { return p.CategoryID })
}

func parseStatus(value string) (int, error) {
	status, err := model.ParseArticleStatus(value)
	return int(status), err
}

func parseRole(value string) (int, error) {
	role, err := model.ParseUserRole(value)
	return int(role), err
}
