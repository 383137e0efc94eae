package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/johan-perso/betterpip/internal/log"
	"github.com/johan-perso/betterpip/internal/ui"
)

const refreshTimeout = 5 * time.Second

// CheckAndPrintBanner prints the update banner from the cached check and,
// when the cache is stale, refreshes it in the background for the next run.
// It never blocks and never fails loudly.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	if !IsReleaseBuild(u.currentVersion) {
		return
	}

	cache, err := LoadCache(configDir)
	if err != nil {
		log.Debug("ignoring unreadable version cache", "err", err)
	}

	if cache != nil && cache.UpdateAvailable && cache.CurrentVersion == u.currentVersion {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion, cache.ReleaseURL)
	}

	if u.IsCacheStale(cache, DefaultCacheMaxAge) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()
			if err := u.Refresh(ctx, configDir); err != nil {
				log.Debug("version check failed", "err", err)
			}
		}()
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest, url string) {
	lines := []string{
		fmt.Sprintf("Update available %s → %s", ui.Dim(current), ui.Green(latest)),
		fmt.Sprintf("Run %s to update", ui.Accent("go install "+branding.GoModule()+"@latest")),
	}
	if url != "" {
		lines = append(lines, ui.Dim(url))
	}
	fmt.Fprintf(w, "\n%s\n\n", ui.Box(lines...))
}

// Refresh fetches the latest release and rewrites the cache.
func (u *Updater) Refresh(ctx context.Context, configDir string) error {
	release, err := u.CheckLatestVersion(ctx)
	if err != nil {
		return err
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.TagName)
	if err != nil {
		return err
	}

	return SaveCache(configDir, &VersionCache{
		LatestVersion:   release.TagName,
		CurrentVersion:  u.currentVersion,
		ReleaseURL:      release.HTMLURL,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
