package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// preferredMainFiles is checked in order before falling back to the first
// Python file in the directory.
var preferredMainFiles = []string{"__init__.py", "app.py", "main.py", "index.py"}

var (
	// ErrMainFileMissing is returned when the main file does not exist.
	ErrMainFileMissing = errors.New("main file not found")
	// ErrMainFileExt is returned when the main file is not a Python file.
	ErrMainFileExt = errors.New("main file must be a .py file")
	// ErrAuthorTooLong is returned when the author exceeds AuthorMaxLength characters.
	ErrAuthorTooLong = fmt.Errorf("author must be at most %d characters", AuthorMaxLength)
)

// DetectMainFile picks the entry point of the project in dir. It returns ""
// when the directory holds no Python file.
func DetectMainFile(dir string) string {
	for _, name := range preferredMainFiles {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return name
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), MainFileExt) {
			return e.Name()
		}
	}
	return ""
}

// CheckMainFile verifies that path, relative to dir, names an existing Python file.
func CheckMainFile(dir, path string) error {
	if !strings.HasSuffix(path, MainFileExt) {
		return fmt.Errorf("%s: %w", path, ErrMainFileExt)
	}
	info, err := os.Stat(filepath.Join(dir, path))
	if err != nil || info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrMainFileMissing)
	}
	return nil
}

// CheckAuthor enforces the author length limit, counted in characters.
func CheckAuthor(author string) error {
	if utf8.RuneCountInString(author) > AuthorMaxLength {
		return ErrAuthorTooLong
	}
	return nil
}
