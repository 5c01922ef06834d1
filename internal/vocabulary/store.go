package vocabulary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrAssetUnavailable is returned when the vocabulary asset is missing or unreadable
var ErrAssetUnavailable = errors.New("vocabulary asset unavailable")

// maxLineSize bounds a single vocabulary line
const maxLineSize = 1024 * 1024

// Store holds the immutable set of words loaded from the asset
type Store struct {
	words map[string]struct{}
}

// Load reads words from r, one per line. Lines are trimmed of
// surrounding whitespace, blank lines are dropped and duplicates
// collapse silently.
func Load(r io.Reader) (*Store, error) {
	s := &Store{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		s.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
	}

	return s, nil
}

// LoadSource opens src and loads the vocabulary from it
func LoadSource(src Source) (*Store, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetUnavailable, src.Name(), err)
	}
	defer rc.Close()

	store, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}
	return store, nil
}

// Len returns the number of distinct words
func (s *Store) Len() int {
	return len(s.words)
}

// Contains reports whether word is part of the vocabulary
func (s *Store) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Words returns a sorted copy of all words
func (s *Store) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
