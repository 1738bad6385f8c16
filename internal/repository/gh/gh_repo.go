package gh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/you/pr-relay/internal/domain"
	"github.com/you/pr-relay/internal/repository"
)

const DefaultTimeout = 10 * time.Second

type Options struct {
	// Token is sent as a bearer credential on every call. Empty means
	// unauthenticated requests.
	Token string
	// BaseURL overrides the REST endpoint, e.g. for GitHub Enterprise.
	BaseURL string
	Timeout time.Duration
}

// GHRepo lists pull requests and review comments through the GitHub REST API.
// Only the first page of each listing is returned.
type GHRepo struct {
	client *github.Client
}

func NewGHRepo(ctx context.Context, opts Options) (*GHRepo, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var hc *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = timeout

	client := github.NewClient(hc)
	if opts.BaseURL != "" {
		raw := opts.BaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse github base url %q: %w", opts.BaseURL, err)
		}
		client.BaseURL = u
	}
	return &GHRepo{client: client}, nil
}

func (r *GHRepo) ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequestSummary, error) {
	path := fmt.Sprintf("repos/%s/%s/pulls", url.PathEscape(owner), url.PathEscape(repo))

	var payload []pullRequest
	if err := r.get(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("list pull requests for %s/%s: %w", owner, repo, err)
	}

	out := make([]domain.PullRequestSummary, 0, len(payload))
	for i, p := range payload {
		s, err := p.summary()
		if err != nil {
			return nil, fmt.Errorf("pull request #%d in %s/%s response: %w", i, owner, repo, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *GHRepo) ListReviewComments(ctx context.Context, owner, repo, prNumber string) ([]domain.CommentSummary, error) {
	path := fmt.Sprintf("repos/%s/%s/pulls/%s/comments",
		url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(prNumber))

	var payload []reviewComment
	if err := r.get(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("list comments for %s/%s#%s: %w", owner, repo, prNumber, err)
	}

	out := make([]domain.CommentSummary, 0, len(payload))
	for i, c := range payload {
		s, err := c.summary()
		if err != nil {
			return nil, fmt.Errorf("comment #%d in %s/%s#%s response: %w", i, owner, repo, prNumber, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// get issues one GET against path and decodes the body into v. Failures come
// back as *repository.UpstreamError.
func (r *GHRepo) get(ctx context.Context, path string, v any) error {
	req, err := r.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(ctx, req, v)
	if err != nil {
		status := 0
		if resp != nil && resp.Response != nil {
			status = resp.StatusCode
		}
		return &repository.UpstreamError{Status: status, Err: err}
	}
	return nil
}
