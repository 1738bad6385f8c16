package repository

import (
	"context"
	"errors"

	"github.com/you/pr-relay/internal/domain"
)

// ErrMalformedPayload is returned when an upstream entry lacks a field the
// projection needs.
var ErrMalformedPayload = errors.New("malformed upstream payload")

type Repo interface {
	ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequestSummary, error)
	ListReviewComments(ctx context.Context, owner, repo, prNumber string) ([]domain.CommentSummary, error)
}

// UpstreamError carries the upstream HTTP status alongside the failure.
// Status is zero when no response was received.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
