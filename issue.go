package jira

import (
	"context"
	"fmt"
)

// Issue is a single issue record.
type Issue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	URL    string `json:"self"`
	Fields Fields `json:"fields"`
}

// Fields holds the standard issue fields.
type Fields struct {
	Assignee    Assignee    `json:"assignee"`
	Components  []Component `json:"components"`
	Description string      `json:"description"`
	Environment string      `json:"environment"`
	IssueType   IssueType   `json:"issuetype"`
	Priority    Priority    `json:"priority"`
	Project     Project     `json:"project"`
	Reporter    Assignee    `json:"reporter"`
	Summary     string      `json:"summary"`
}

// Assignee identifies a user an issue is assigned to or reported by.
type Assignee struct {
	Name string `json:"name"`
}

// IssueType identifies an issue type (bug, task, story, ...).
type IssueType struct {
	ID string `json:"id"`
}

// Priority describes an issue priority.
type Priority struct {
	ID      string `json:"id"`
	IconURL string `json:"iconUrl"`
	Name    string `json:"name"`
	URL     string `json:"self"`
}

// CustomField is a value of an instance-defined field.
type CustomField struct {
	ID    string `json:"id"`
	URL   string `json:"self"`
	Value string `json:"value"`
}

// Project identifies the project an issue belongs to.
type Project struct {
	Key string `json:"key"`
}

// Component identifies a project component.
type Component struct {
	Name string `json:"name"`
}

// CreateIssue is the payload for creating a new issue.
type CreateIssue struct {
	Fields Fields `json:"fields"`
}

// CreateResponse identifies a freshly created issue.
type CreateResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
	URL string `json:"self"`
}

// Issue retrieves a single issue by id or key.
func (c *Client) Issue(ctx context.Context, id string) (*Issue, error) {
	var issue Issue
	if err := c.get(ctx, CoreAPI, fmt.Sprintf("/issue/%s", id), &issue); err != nil {
		return nil, err
	}

	return &issue, nil
}

// IssueCreate creates a new issue.
func (c *Client) IssueCreate(ctx context.Context, data CreateIssue) (*CreateResponse, error) {
	var created CreateResponse
	if err := c.post(ctx, CoreAPI, "/issue", data, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// BoardIssues retrieves a single page of the issues on a board:
// https://docs.atlassian.com/jira-software/REST/latest/#agile/1.0/board-getIssuesForBoard
func (c *Client) BoardIssues(
	ctx context.Context,
	boardID uint64,
	opts SearchOptions,
) (*Page[Issue], error) {
	path := fmt.Sprintf("/board/%d/issue?%s", boardID, opts.encode())

	var page Page[Issue]
	if err := c.get(ctx, AgileAPI, path, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// BoardIssuesIter begins a lazy iteration over every issue on a board.
// The first page is fetched before it returns, so an unreachable board
// fails here instead of mid-iteration.
func (c *Client) BoardIssuesIter(
	ctx context.Context,
	boardID uint64,
	opts SearchOptions,
) (*Iterator[Issue], error) {
	return newIterator(ctx, func(ctx context.Context, opts SearchOptions) (*Page[Issue], error) {
		return c.BoardIssues(ctx, boardID, opts)
	}, opts)
}
