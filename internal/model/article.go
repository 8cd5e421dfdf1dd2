package model

import (
	"fmt"
	"strings"
	"time"
)

// ArticleStatus tracks where an article sits in the moderation flow.
// Ingestion only ever writes Pending; the other states are set by admins.
type ArticleStatus int

const (
	StatusPending ArticleStatus = iota
	StatusApproved
	StatusEdited
	StatusRejected
)

var statusNames = map[ArticleStatus]string{
	StatusPending:  "Pending",
	StatusApproved: "Approved",
	StatusEdited:   "Edited",
	StatusRejected: "Rejected",
}

func (s ArticleStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ArticleStatus(%d)", int(s))
}

// ParseArticleStatus matches status names case-insensitively.
func ParseArticleStatus(value string) (ArticleStatus, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, value) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown article status %q", value)
}

const (
	// CategoryTypeCustom marks categories first seen in feed items rather
	// than seeded locally.
	CategoryTypeCustom = "CUSTOM_CATEGORY"
	CategoryTypeNews   = "NEWS_CATEGORY"
)

type Article struct {
	ArticleID    int64
	HashID       string
	OldHashID    string
	Title        string
	Content      string
	Summary      string
	ImgURL       string
	OriginURL    string
	CreatedAt    time.Time
	AddedAt      time.Time
	ImpScore     float64
	Status       ArticleStatus
	ShareCount   int
	SaveCount    int
	CommentCount int
}

type Category struct {
	CategoryID  int64
	Name        string
	Description string
	Type        string
}

// ArticleCategory links an article to a category. Rows are written once per
// pair and never updated.
type ArticleCategory struct {
	ArticleCategoryID int64
	ArticleID         int64
	CategoryID        int64
}
