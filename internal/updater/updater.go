package updater

import (
	"context"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/github"
)

// Updater checks GitHub releases against the running version.
type Updater struct {
	currentVersion string
	client         *github.Client
	repo           string
}

// Option configures an Updater.
type Option func(*Updater)

// WithClient sets the GitHub client (useful for testing).
func WithClient(c *github.Client) Option {
	return func(u *Updater) {
		u.client = c
	}
}

// WithRepo overrides the "owner/repo" whose releases are checked.
func WithRepo(repo string) Option {
	return func(u *Updater) {
		u.repo = repo
	}
}

// New creates an Updater for currentVersion.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		client:         github.New(),
		repo:           branding.GitHubRepo(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CurrentVersion returns the version this updater was created with.
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}

// CheckLatestVersion fetches the latest release.
func (u *Updater) CheckLatestVersion(ctx context.Context) (*github.Release, error) {
	return u.client.LatestRelease(ctx, u.repo)
}
