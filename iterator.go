package jira

import (
	"context"
	"iter"
)

// pageFunc fetches the single page of a collection selected by opts.
type pageFunc[T any] func(ctx context.Context, opts SearchOptions) (*Page[T], error)

// Iterator is a forward-only, non-restartable pull iterator over a
// paginated collection. It drains one buffered page at a time and fetches
// the next page on demand, so a consumer that stops early costs no extra
// round-trips. Follow-up requests reuse the context the iteration was
// started with.
//
// Within a page, items come out in reverse of the server-returned order;
// callers that need server ordering should collect and re-sort. A failed
// follow-up fetch ends the iteration as if the collection were exhausted,
// see [Iterator.Err].
type Iterator[T any] struct {
	ctx   context.Context
	fetch pageFunc[T]
	opts  SearchOptions

	page    *Page[T]
	done    bool
	lastErr error
}

// newIterator begins an iteration by eagerly fetching the first page, so an
// unreachable collection surfaces here rather than on the first pull.
func newIterator[T any](
	ctx context.Context,
	fetch pageFunc[T],
	opts SearchOptions,
) (*Iterator[T], error) {
	page, err := fetch(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &Iterator[T]{
		ctx:   ctx,
		fetch: fetch,
		opts:  opts,
		page:  page,
	}, nil
}

// Next returns the next item, or ok == false once the collection is
// exhausted. After the first false result every further call returns false.
func (it *Iterator[T]) Next() (item T, ok bool) {
	if it.done {
		return item, false
	}

	for {
		if n := len(it.page.Values); n > 0 {
			item = it.page.Values[n-1]
			it.page.Values = it.page.Values[:n-1]
			return item, true
		}

		if !it.page.more() {
			it.done = true
			return item, false
		}

		// Advance by the server-reported page size, keeping every other
		// criterion from the options the iteration started with.
		next := it.opts.WithPage(it.page.StartAt+it.page.MaxResults, it.page.MaxResults)

		page, err := it.fetch(it.ctx, next)
		if err != nil {
			// A failed follow-up fetch ends the sequence like natural
			// exhaustion; the error stays available through Err.
			it.lastErr = err
			it.done = true
			return item, false
		}

		it.page = page
	}
}

// Err returns the fetch error that ended the iteration early, if any.
// Errors from the construction-time fetch are returned by the function
// that started the iteration, never here.
func (it *Iterator[T]) Err() error {
	return it.lastErr
}

// All returns the remaining items as a range-over-func sequence.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
