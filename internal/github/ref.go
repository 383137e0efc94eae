package github

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRef is returned when a repository reference cannot be parsed.
var ErrInvalidRef = errors.New("expected owner/repo")

// RepoRef names a repository.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string { return r.Owner + "/" + r.Name }

// ParseRepoRef accepts "owner/repo" and GitHub web or clone URLs.
func ParseRepoRef(s string) (RepoRef, error) {
	ref := strings.TrimSpace(s)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/", "git@github.com:"} {
		ref = strings.TrimPrefix(ref, prefix)
	}
	ref = strings.TrimSuffix(strings.TrimSuffix(ref, "/"), ".git")

	owner, name, ok := strings.Cut(ref, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoRef{}, fmt.Errorf("%q: %w", s, ErrInvalidRef)
	}
	return RepoRef{Owner: owner, Name: name}, nil
}
