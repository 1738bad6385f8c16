package gh

import (
	"fmt"
	"strings"

	"github.com/you/pr-relay/internal/domain"
	"github.com/you/pr-relay/internal/repository"
)

// Upstream payloads are decoded into pointer fields so an absent key can be
// told apart from a zero value.

type account struct {
	Login *string `json:"login"`
}

type pullRequest struct {
	ID      *int64   `json:"id"`
	Number  *int     `json:"number"`
	Title   *string  `json:"title"`
	User    *account `json:"user"`
	State   *string  `json:"state"`
	HTMLURL *string  `json:"html_url"`
}

type reviewComment struct {
	ID        *int64   `json:"id"`
	User      *account `json:"user"`
	Body      *string  `json:"body"`
	CreatedAt *string  `json:"created_at"`
	UpdatedAt *string  `json:"updated_at"`
	HTMLURL   *string  `json:"html_url"`
}

func login(a *account) *string {
	if a == nil {
		return nil
	}
	return a.Login
}

type fieldCheck struct {
	missing []string
}

func (c *fieldCheck) require(name string, present bool) {
	if !present {
		c.missing = append(c.missing, name)
	}
}

func (c *fieldCheck) err() error {
	if len(c.missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s", repository.ErrMalformedPayload, strings.Join(c.missing, ", "))
}

func (p pullRequest) summary() (domain.PullRequestSummary, error) {
	author := login(p.User)

	var c fieldCheck
	c.require("id", p.ID != nil)
	c.require("number", p.Number != nil)
	c.require("title", p.Title != nil)
	c.require("user.login", author != nil)
	c.require("state", p.State != nil)
	c.require("html_url", p.HTMLURL != nil)
	if err := c.err(); err != nil {
		return domain.PullRequestSummary{}, err
	}

	return domain.PullRequestSummary{
		ID:     *p.ID,
		Number: *p.Number,
		Title:  *p.Title,
		Author: *author,
		State:  *p.State,
		URL:    *p.HTMLURL,
	}, nil
}

func (rc reviewComment) summary() (domain.CommentSummary, error) {
	author := login(rc.User)

	var c fieldCheck
	c.require("id", rc.ID != nil)
	c.require("user.login", author != nil)
	c.require("body", rc.Body != nil)
	c.require("created_at", rc.CreatedAt != nil)
	c.require("updated_at", rc.UpdatedAt != nil)
	c.require("html_url", rc.HTMLURL != nil)
	if err := c.err(); err != nil {
		return domain.CommentSummary{}, err
	}

	return domain.CommentSummary{
		ID:        *rc.ID,
		Author:    *author,
		Body:      *rc.Body,
		CreatedAt: *rc.CreatedAt,
		UpdatedAt: *rc.UpdatedAt,
		URL:       *rc.HTMLURL,
	}, nil
}
