package usecase

import (
	"context"
	"errors"

	"github.com/you/pr-relay/internal/domain"
	"github.com/you/pr-relay/internal/repository"
)

var ErrOwnerRepoRequired = errors.New("owner and repo are required")

// PRUsecase relays pull request queries to the upstream repository.
type PRUsecase struct {
	Repo repository.Repo
}

func NewPRUsecase(r repository.Repo) *PRUsecase {
	return &PRUsecase{Repo: r}
}

// ListPullRequests returns the repository's pull requests in upstream order.
func (u *PRUsecase) ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequestSummary, error) {
	if owner == "" || repo == "" {
		return nil, ErrOwnerRepoRequired
	}
	return u.Repo.ListPullRequests(ctx, owner, repo)
}

// ListComments returns the review comments of one pull request. prNumber is
// forwarded as given.
func (u *PRUsecase) ListComments(ctx context.Context, owner, repo, prNumber string) ([]domain.CommentSummary, error) {
	if owner == "" || repo == "" {
		return nil, ErrOwnerRepoRequired
	}
	comments, err := u.Repo.ListReviewComments(ctx, owner, repo, prNumber)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.CommentSummary{}
	}
	return comments, nil
}
