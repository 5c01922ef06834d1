package vocabulary

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFile is the vocabulary asset used when none is configured
const DefaultFile = "MySpellingWords.txt"

// Source yields the raw vocabulary bytes
type Source interface {
	// Open returns a reader over the asset. The caller closes it.
	Open() (io.ReadCloser, error)

	// Name identifies the asset in logs and errors
	Name() string
}

// FileSource reads the vocabulary from a file on disk
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source, falling back to DefaultFile
func NewFileSource(path string) *FileSource {
	if path == "" {
		path = DefaultFile
	}
	return &FileSource{Path: path}
}

// Open opens the vocabulary file
func (f *FileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	return file, nil
}

// Name returns the file path
func (f *FileSource) Name() string {
	return f.Path
}

// StringSource serves an in-memory vocabulary, mostly for tests and demos
type StringSource struct {
	Label   string
	Content string
}

// Open returns a reader over the content
func (s *StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.Content)), nil
}

// Name returns the label, or "inline" if none was given
func (s *StringSource) Name() string {
	if s.Label == "" {
		return "inline"
	}
	return s.Label
}
