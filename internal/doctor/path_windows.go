//go:build windows

package doctor

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// addToUserPath prepends dir to HKCU\Environment\Path. It reports false when
// dir was already listed.
func addToUserPath(dir string) (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return false, fmt.Errorf("opening HKCU\\Environment: %w", err)
	}
	defer k.Close()

	old, _, err := k.GetStringValue("Path")
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return false, fmt.Errorf("reading user Path: %w", err)
	}

	for _, entry := range strings.Split(old, ";") {
		if strings.EqualFold(strings.TrimSpace(entry), dir) {
			return false, nil
		}
	}

	updated := dir
	if old != "" {
		updated = dir + ";" + old
	}
	if err := k.SetExpandStringValue("Path", updated); err != nil {
		return false, fmt.Errorf("writing user Path: %w", err)
	}
	return true, nil
}
