package jira

import (
	"context"
	"fmt"
)

// Board is a single agile board.
type Board struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	TypeName string `json:"type"`
	URL      string `json:"self"`
}

// Board retrieves a single board by id.
func (c *Client) Board(ctx context.Context, id uint64) (*Board, error) {
	var board Board
	if err := c.get(ctx, AgileAPI, fmt.Sprintf("/board/%d", id), &board); err != nil {
		return nil, err
	}

	return &board, nil
}

// Boards retrieves a single page of the boards visible to the caller.
func (c *Client) Boards(ctx context.Context, opts SearchOptions) (*Page[Board], error) {
	path := fmt.Sprintf("/board?%s", opts.encode())

	var page Page[Board]
	if err := c.get(ctx, AgileAPI, path, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// BoardsIter begins a lazy iteration over every board visible to the
// caller, fetching the first page before it returns.
func (c *Client) BoardsIter(ctx context.Context, opts SearchOptions) (*Iterator[Board], error) {
	return newIterator(ctx, func(ctx context.Context, opts SearchOptions) (*Page[Board], error) {
		return c.Boards(ctx, opts)
	}, opts)
}
