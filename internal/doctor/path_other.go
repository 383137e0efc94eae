//go:build !windows

package doctor

import "errors"

func addToUserPath(string) (bool, error) {
	return false, errors.New("editing the user PATH is only supported on Windows")
}
