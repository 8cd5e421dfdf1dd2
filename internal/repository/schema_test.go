package repository

import (
	"errors"
	"testing"

	"newsapp/internal/model"
	"newsapp/internal/store"

	"github.com/go-playground/assert/v2"
)

func TestArticleSchema_IDFieldRejectsNonNumeric(t *testing.T) {
	_, err := ArticleSchema().Match("ArticleID", "not-a-number")
	assert.Equal(t, true, errors.Is(err, store.ErrInvalidArgument))
}

func TestArticleSchema_StatusRejectsUnknownToken(t *testing.T) {
	_, err := ArticleSchema().Match("Status", "Archived")
	assert.Equal(t, true, errors.Is(err, store.ErrInvalidArgument))
}

func TestArticleSchema_StatusMatchesCaseInsensitive(t *testing.T) {
	match, err := ArticleSchema().Match("Status", "approved")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.Article{Status: model.StatusApproved}))
	assert.Equal(t, false, match(model.Article{Status: model.StatusPending}))
}

func TestArticleSchema_TitleSubstringCaseInsensitive(t *testing.T) {
	match, err := ArticleSchema().Match("Title", "breaking")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.Article{Title: "Breaking News"}))
	assert.Equal(t, false, match(model.Article{Title: "Quiet Day"}))
}

func TestArticleSchema_HashIDComparesAsText(t *testing.T) {
	// HashID contains "id" but is a hash, so it must not go through the
	// integer path.
	match, err := ArticleSchema().Match("HashID", "abc123")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.Article{HashID: "abc123"}))
}

func TestArticleSchema_UnknownField(t *testing.T) {
	_, err := ArticleSchema().Match("Nonexistent", "x")
	assert.Equal(t, true, errors.Is(err, store.ErrFieldNotFound))
}

func TestArticleSchema_FieldNameCaseInsensitive(t *testing.T) {
	match, err := ArticleSchema().Match("hashid", "xyz")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.Article{HashID: "xyz"}))
}

func TestUserSchema_RoleParsesCaseInsensitive(t *testing.T) {
	match, err := UserSchema().Match("Role", "admin")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.User{Role: model.RoleAdmin}))
	assert.Equal(t, false, match(model.User{Role: model.RoleReader}))
}

func TestUserSchema_RoleRejectsUnknown(t *testing.T) {
	_, err := UserSchema().Match("Role", "Owner")
	assert.Equal(t, true, errors.Is(err, store.ErrInvalidArgument))
}

func TestUserSchema_OAuthIDComparesAsText(t *testing.T) {
	match, err := UserSchema().Match("OAuthID", "35fdsf6dts76fd6fsd")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.User{OAuthID: "35fdsf6dts76fd6fsd"}))
}

func TestCategorySchema_DescriptionSubstring(t *testing.T) {
	match, err := CategorySchema().Match("Description", "WORLD")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, match(model.Category{Description: "world"}))
}
