package platform

import (
	"os"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/branding"
)

// Windows is the GOOS value for Windows.
const Windows = "windows"

// UnixShimDir is where shims are written on Linux and macOS.
const UnixShimDir = "/usr/local/bin"

// ShimDir returns the directory holding shims for goos. A non-empty
// override always wins. On Windows the directory is
// %APPDATA%\<ShimFolder>, which `doctor` creates and adds to PATH.
func ShimDir(goos, override string) string {
	if override != "" {
		return override
	}
	if goos != Windows {
		return UnixShimDir
	}
	if appData, err := os.UserConfigDir(); err == nil {
		return filepath.Join(appData, branding.ShimFolder())
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "AppData", "Roaming", branding.ShimFolder())
}

// ShimFileName returns the file name of the shim for command on goos.
func ShimFileName(goos, command string) string {
	if goos == Windows {
		return command + ".cmd"
	}
	return command
}

// OpenCommand returns the program and arguments that open path with the
// default application.
func OpenCommand(goos, path string) (string, []string) {
	switch goos {
	case Windows:
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
