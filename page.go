package jira

// Page is one fetched batch of a paginated collection.
type Page[T any] struct {
	// Expand is opaque expansion metadata, passed through unmodified.
	Expand string `json:"expand"`
	// MaxResults is the page size the server actually applied, which may
	// differ from the requested size.
	MaxResults uint64 `json:"maxResults"`
	// StartAt is the zero-based offset of the first value relative to the
	// full collection.
	StartAt uint64 `json:"startAt"`
	// Total is the collection size the server reported at fetch time.
	Total uint64 `json:"total"`
	// Values holds the page's items in server order.
	Values []T `json:"values"`
}

// more reports whether the collection extends beyond this page.
func (p *Page[T]) more() bool {
	return p.StartAt+p.MaxResults <= p.Total
}
