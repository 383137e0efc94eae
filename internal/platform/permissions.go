package platform

import (
	"os"
	"runtime"
)

// ExecutableMode is the permission set given to generated shims.
const ExecutableMode os.FileMode = 0o755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == Windows {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether path has any execute bit set. On Windows
// every existing file counts as executable.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if runtime.GOOS == Windows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
