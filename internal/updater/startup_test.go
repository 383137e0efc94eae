package updater

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johan-perso/betterpip/internal/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/johan-perso/betterpip/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.test/release"}`, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRefresh(t *testing.T) {
	srv := releaseServer(t, "v1.3.0")
	dir := t.TempDir()
	u := New("1.2.0", WithClient(github.New(github.WithBaseURL(srv.URL), github.WithToken(""))), WithRepo("johan-perso/betterpip"))

	require.NoError(t, u.Refresh(context.Background(), dir))

	cache, err := LoadCache(dir)
	require.NoError(t, err)
	require.NotNil(t, cache)
	assert.True(t, cache.UpdateAvailable)
	assert.Equal(t, "v1.3.0", cache.LatestVersion)
	assert.Equal(t, "1.2.0", cache.CurrentVersion)
	assert.Equal(t, "https://example.test/release", cache.ReleaseURL)
}

func TestCheckAndPrintBanner_FromCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveCache(dir, &VersionCache{
		LatestVersion:   "v1.3.0",
		CurrentVersion:  "1.2.0",
		CheckedAt:       time.Now(),
		UpdateAvailable: true,
	}))

	var buf bytes.Buffer
	New("1.2.0").CheckAndPrintBanner(&buf, dir)

	assert.Contains(t, buf.String(), "Update available")
	assert.Contains(t, buf.String(), "v1.3.0")
}

func TestCheckAndPrintBanner_DevBuildIsQuiet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveCache(dir, &VersionCache{
		LatestVersion:   "v1.3.0",
		CurrentVersion:  "dev",
		CheckedAt:       time.Now(),
		UpdateAvailable: true,
	}))

	var buf bytes.Buffer
	New("dev").CheckAndPrintBanner(&buf, dir)
	assert.Empty(t, buf.String())
}
