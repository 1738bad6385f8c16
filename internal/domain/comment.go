package domain

// CommentSummary is the reduced view of a pull request review comment.
// CreatedAt and UpdatedAt are kept exactly as the upstream sent them.
type CommentSummary struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	URL       string `json:"comment_url"`
}
