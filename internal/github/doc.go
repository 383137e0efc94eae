// Package github is a minimal client for the GitHub REST API: repository
// metadata, the root file tree, and the latest release.
package github
