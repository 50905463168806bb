package jira

import (
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
)

const modulePath = "github.com/lightshed/jira"

// API family selectors. The family picks the REST path prefix under which a
// resource lives; issues live under the core family, boards and board
// backlogs under the agile family.
const (
	// CoreAPI selects the core Jira REST API (/rest/api/latest).
	CoreAPI = "api"
	// AgileAPI selects the Jira Software agile REST API (/rest/agile/latest).
	AgileAPI = "agile"
)

// Client holds configuration needed to call the Jira REST APIs.
// Use [New] to create a new client.
type Client struct {
	baseURL *url.URL

	httpClient *http.Client
	userAgent  string
	auth       Authenticator
	logger     zerolog.Logger
}

// ClientOption configures a Client before use.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAuth configures the client to authenticate requests with the provided
// credentials. Without it the client issues anonymous requests.
func WithAuth(auth Authenticator) ClientOption {
	return func(c *Client) {
		c.auth = auth
	}
}

// WithUserAgent sets a custom User-Agent header for API requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger enables request logging on the provided logger.
// Logging is disabled by default.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Jira API client for the instance at host, e.g.
// "https://yourcompany.atlassian.net". It applies any provided options.
func New(host string, opts ...ClientOption) (*Client, error) {
	baseURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse host: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userAgent == "" {
		c.userAgent = userAgent()
	}

	return c, nil
}

// version returns the module version of the jira package.
// It returns "devel" if built without module version information.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			if dep.Version == "(devel)" {
				return "devel"
			}

			return dep.Version
		}
	}

	if info.Main.Path == modulePath {
		if info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		// If main version is (devel), we can try to read vcs revision
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return "devel+" + setting.Value[:7]
			}
		}
	}

	return "devel"
}

// userAgent returns the default User-Agent string for this package.
func userAgent() string {
	v := version()
	goVersion := runtime.Version()
	os := runtime.GOOS
	arch := runtime.GOARCH
	return fmt.Sprintf("go-jira/%s (%s; %s/%s)", v, goVersion, os, arch)
}
