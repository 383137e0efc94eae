package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/johan-perso/betterpip/internal/branding"
)

// Status is the outcome of reading a descriptor from disk.
type Status int

const (
	// Found means the file exists and parsed.
	Found Status = iota
	// NotFound means there is no descriptor file in the directory.
	NotFound
	// ParseError means the file exists but is not a valid descriptor.
	ParseError
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case ParseError:
		return "parse error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// LoadResult carries the descriptor read from disk and how the read went.
// Descriptor is never nil: on NotFound or ParseError it is an empty record.
type LoadResult struct {
	Status     Status
	Descriptor *Descriptor
	Err        error
}

// Usable reports whether the result holds a non-empty descriptor.
func (r LoadResult) Usable() bool {
	return r.Status == Found && !r.Descriptor.IsEmpty()
}

// Store reads and writes the descriptor of a single project directory.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the absolute location of the descriptor file.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, branding.DescriptorFile())
}

// Exists reports whether the descriptor file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads the descriptor. It never returns an error: a missing or
// unreadable file degrades to an empty record and the Status says why.
func (s *Store) Load() LoadResult {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return LoadResult{Status: NotFound, Descriptor: &Descriptor{}}
	}
	if err != nil {
		return LoadResult{Status: ParseError, Descriptor: &Descriptor{}, Err: fmt.Errorf("reading %s: %w", s.Path(), err)}
	}

	d, err := Parse(data)
	if err != nil {
		return LoadResult{Status: ParseError, Descriptor: &Descriptor{}, Err: fmt.Errorf("parsing %s: %w", s.Path(), err)}
	}
	return LoadResult{Status: Found, Descriptor: d}
}

// Save writes d as pretty-printed JSON, replacing any existing file.
func (s *Store) Save(d *Descriptor) error {
	data, err := Format(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(), err)
	}
	return nil
}

// Parse decodes descriptor JSON.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Format encodes d with a two-space indent and a trailing newline. HTML
// characters are written as is.
func Format(d *Descriptor) ([]byte, error) {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding descriptor: %w", err)
	}
	return out.Bytes(), nil
}
