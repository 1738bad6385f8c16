package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/you/pr-relay/internal/domain"
)

type memRepo struct {
	prs      []domain.PullRequestSummary
	comments map[string][]domain.CommentSummary
	err      error
	calls    int
}

func (m *memRepo) ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequestSummary, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.prs, nil
}

func (m *memRepo) ListReviewComments(ctx context.Context, owner, repo, prNumber string) ([]domain.CommentSummary, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.comments[prNumber], nil
}

func TestListPullRequests_MissingParams(t *testing.T) {
	cases := []struct{ owner, repo string }{
		{"", ""},
		{"octocat", ""},
		{"", "hello-world"},
	}
	for _, c := range cases {
		repo := &memRepo{}
		u := NewPRUsecase(repo)
		_, err := u.ListPullRequests(context.Background(), c.owner, c.repo)
		if !errors.Is(err, ErrOwnerRepoRequired) {
			t.Fatalf("owner=%q repo=%q: expected ErrOwnerRepoRequired, got %v", c.owner, c.repo, err)
		}
		if repo.calls != 0 {
			t.Fatalf("owner=%q repo=%q: expected no upstream call, got %d", c.owner, c.repo, repo.calls)
		}
	}
}

func TestListPullRequests_PreservesOrder(t *testing.T) {
	repo := &memRepo{prs: []domain.PullRequestSummary{
		{ID: 3, Number: 30},
		{ID: 1, Number: 10},
		{ID: 2, Number: 20},
	}}
	u := NewPRUsecase(repo)

	prs, err := u.ListPullRequests(context.Background(), "octocat", "hello-world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prs) != 3 {
		t.Fatalf("expected 3 prs, got %d", len(prs))
	}
	for i, want := range []int64{3, 1, 2} {
		if prs[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, prs[i].ID)
		}
	}
}

func TestListPullRequests_UpstreamError(t *testing.T) {
	boom := errors.New("boom")
	u := NewPRUsecase(&memRepo{err: boom})
	if _, err := u.ListPullRequests(context.Background(), "o", "r"); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestListComments_MissingParams(t *testing.T) {
	repo := &memRepo{}
	u := NewPRUsecase(repo)
	if _, err := u.ListComments(context.Background(), "octocat", "", "5"); !errors.Is(err, ErrOwnerRepoRequired) {
		t.Fatalf("expected ErrOwnerRepoRequired, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", repo.calls)
	}
}

func TestListComments_EmptyIsNonNil(t *testing.T) {
	u := NewPRUsecase(&memRepo{})
	comments, err := u.ListComments(context.Background(), "o", "r", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comments == nil || len(comments) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", comments)
	}
}

func TestListComments_PassesPRNumberThrough(t *testing.T) {
	repo := &memRepo{comments: map[string][]domain.CommentSummary{
		"not-a-number": {{ID: 9, Author: "alice"}},
	}}
	u := NewPRUsecase(repo)
	comments, err := u.ListComments(context.Background(), "o", "r", "not-a-number")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 || comments[0].Author != "alice" {
		t.Fatalf("unexpected comments: %#v", comments)
	}
}
