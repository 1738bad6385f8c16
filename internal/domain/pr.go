package domain

// PullRequestSummary is the reduced view of an upstream pull request.
type PullRequestSummary struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Author string `json:"author"`
	State  string `json:"state"`
	URL    string `json:"pr_url"`
}
