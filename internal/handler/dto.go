package handler

type ArticleResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Summary      string   `json:"summary"`
	ImgURL       string   `json:"img_url"`
	OriginURL    string   `json:"origin_url"`
	CreatedAt    string   `json:"created_at"`
	Status       string   `json:"status"`
	ImpScore     float64  `json:"imp_score"`
	ShareCount   int      `json:"share_count"`
	SaveCount    int      `json:"save_count"`
	CommentCount int      `json:"comment_count"`
	Categories   []string `json:"categories,omitempty"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ArticlePageResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

type ArticleEditRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	ImgURL    string `json:"img_url"`
	OriginURL string `json:"origin_url"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type PreferenceResponse struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	CategoryID int64 `json:"category_id"`
	Preference int   `json:"preference"`
}

type PreferenceRequest struct {
	Preferences map[int64]int `json:"preferences" binding:"required"`
}
