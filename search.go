package jira

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// SearchOptions narrows and pages a collection listing. The zero value
// requests the server defaults. Treat a SearchOptions as immutable once
// handed to the client; page advancement derives fresh copies via
// [SearchOptions.WithPage] instead of mutating the original.
type SearchOptions struct {
	// JQL filters results with a JQL query.
	JQL string `url:"jql,omitempty"`
	// Fields restricts which issue fields the server returns.
	Fields []string `url:"fields,comma,omitempty"`
	// Expand names additional response sections to include.
	Expand []string `url:"expand,comma,omitempty"`
	// ValidateQuery asks the server to validate the JQL query.
	ValidateQuery bool `url:"validateQuery,omitempty"`
	// MaxResults caps the page size. Zero lets the server choose.
	MaxResults uint64 `url:"maxResults,omitempty"`
	// StartAt is the zero-based offset of the first result.
	StartAt uint64 `url:"startAt,omitempty"`
}

// WithPage returns a copy of o requesting the page at startAt with
// maxResults items, leaving every other criterion untouched.
func (o SearchOptions) WithPage(startAt, maxResults uint64) SearchOptions {
	o.StartAt = startAt
	o.MaxResults = maxResults
	return o
}

// Values serializes the options to query parameters.
func (o SearchOptions) Values() (url.Values, error) {
	return query.Values(o)
}

// encode renders the options as a percent-encoded query string. Options
// that fail to serialize degrade to no query string rather than an error.
func (o SearchOptions) encode() string {
	v, err := o.Values()
	if err != nil {
		return ""
	}

	return v.Encode()
}
