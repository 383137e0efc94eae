package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/log"
)

// DefaultBaseURL is the public GitHub API.
const DefaultBaseURL = "https://api.github.com"

var (
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned for 403/429 responses.
	ErrRateLimited = errors.New("GitHub API rate limit exceeded, set GITHUB_TOKEN for higher limits")
)

// APIError carries the message of an unexpected GitHub response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GitHub API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("GitHub API returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root (tests, GitHub Enterprise).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithToken sets the token sent in the Authorization header.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a Client. GITHUB_TOKEN is used when set.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      os.Getenv("GITHUB_TOKEN"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repository is the subset of repository metadata the installer needs.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
	CloneURL      string `json:"clone_url"`
}

// TreeEntry is one file or directory of a tree listing.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Tree is a non-recursive listing of a branch's root.
type Tree struct {
	SHA       string      `json:"sha"`
	Truncated bool        `json:"truncated"`
	Entries   []TreeEntry `json:"tree"`
}

// HasRootFile reports whether name sits at the root of the tree. Truncated
// listings cannot be checked and report true.
func (t *Tree) HasRootFile(name string) bool {
	if t.Truncated {
		return true
	}
	for _, e := range t.Entries {
		if e.Path == name && e.Type != "tree" {
			return true
		}
	}
	return false
}

// Release is a published GitHub release.
type Release struct {
	TagName     string `json:"tag_name"`
	HTMLURL     string `json:"html_url"`
	PublishedAt string `json:"published_at"`
}

// GetRepository fetches repository metadata.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	var r Repository
	if err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo)), &r); err != nil {
		return nil, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, err)
	}
	if r.FullName == "" {
		return nil, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, ErrNotFound)
	}
	return &r, nil
}

// ListFiles fetches the root tree of branch. Truncated trees are returned
// as-is, without walking subtrees.
func (c *Client) ListFiles(ctx context.Context, owner, repo, branch string) (*Tree, error) {
	var t Tree
	path := fmt.Sprintf("/repos/%s/%s/git/trees/%s", url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(branch))
	if err := c.get(ctx, path, &t); err != nil {
		return nil, fmt.Errorf("listing files of %s/%s@%s: %w", owner, repo, branch, err)
	}
	return &t, nil
}

// LatestRelease fetches the latest release of "owner/repo".
func (c *Client) LatestRelease(ctx context.Context, fullName string) (*Release, error) {
	var r Release
	if err := c.get(ctx, "/repos/"+fullName+"/releases/latest", &r); err != nil {
		return nil, fmt.Errorf("fetching latest release of %s: %w", fullName, err)
	}
	return &r, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName())
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	log.Debug("GitHub API request", "url", req.URL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response JSON: %w", err)
	}
	return nil
}
