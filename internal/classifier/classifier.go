package classifier

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownWord is returned when a word outside the vocabulary is classified
var ErrUnknownWord = errors.New("word is not part of the vocabulary")

// Vocabulary is the read-only word set the classifier partitions
type Vocabulary interface {
	Contains(word string) bool
	Words() []string
}

// Snapshot holds the subset sizes shown in the progress display
type Snapshot struct {
	Total      int
	Correct    int
	Incorrect  int
	NeverTried int
}

// String formats the snapshot as (total, correct, incorrect, never tried)
func (s Snapshot) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", s.Total, s.Correct, s.Incorrect, s.NeverTried)
}

type wordSet map[string]struct{}

// Classifier partitions the vocabulary into correct, incorrect and never
// tried words. It is not safe for concurrent use; all calls are expected
// to come from the single event loop driving the session.
type Classifier struct {
	all        wordSet
	correct    wordSet
	incorrect  wordSet
	neverTried wordSet
}

// New creates a classifier where every word starts as never tried
func New(vocab Vocabulary) *Classifier {
	c := &Classifier{
		all:       make(wordSet),
		correct:   make(wordSet),
		incorrect: make(wordSet),
	}
	for _, w := range vocab.Words() {
		c.all[w] = struct{}{}
	}
	c.neverTried = c.all.clone()
	return c
}

// RecordCorrect moves word into the correct subset
func (c *Classifier) RecordCorrect(word string) error {
	if _, ok := c.all[word]; !ok {
		return fmt.Errorf("record correct %q: %w", word, ErrUnknownWord)
	}
	c.correct[word] = struct{}{}
	delete(c.incorrect, word)
	delete(c.neverTried, word)
	return nil
}

// RecordIncorrect moves word into the incorrect subset
func (c *Classifier) RecordIncorrect(word string) error {
	if _, ok := c.all[word]; !ok {
		return fmt.Errorf("record incorrect %q: %w", word, ErrUnknownWord)
	}
	c.incorrect[word] = struct{}{}
	delete(c.correct, word)
	delete(c.neverTried, word)
	return nil
}

// Reset returns every word to never tried
func (c *Classifier) Reset() {
	clear(c.correct)
	clear(c.incorrect)
	for w := range c.all {
		c.neverTried[w] = struct{}{}
	}
}

// Snapshot returns the current subset sizes
func (c *Classifier) Snapshot() Snapshot {
	return Snapshot{
		Total:      len(c.all),
		Correct:    len(c.correct),
		Incorrect:  len(c.incorrect),
		NeverTried: len(c.neverTried),
	}
}

// Subset returns a read-only view of the requested word list. Unknown
// subsets resolve to never tried, the selector default.
func (c *Classifier) Subset(s Subset) View {
	return View{set: c.resolve(s)}
}

// StateOf reports which of correct, incorrect or never tried holds word
func (c *Classifier) StateOf(word string) (Subset, error) {
	switch {
	case c.correct.has(word):
		return Correct, nil
	case c.incorrect.has(word):
		return Incorrect, nil
	case c.neverTried.has(word):
		return NeverTried, nil
	default:
		return NeverTried, fmt.Errorf("state of %q: %w", word, ErrUnknownWord)
	}
}

func (c *Classifier) resolve(s Subset) wordSet {
	switch s {
	case All:
		return c.all
	case Correct:
		return c.correct
	case Incorrect:
		return c.incorrect
	default:
		return c.neverTried
	}
}

func (ws wordSet) has(word string) bool {
	_, ok := ws[word]
	return ok
}

func (ws wordSet) clone() wordSet {
	out := make(wordSet, len(ws))
	for w := range ws {
		out[w] = struct{}{}
	}
	return out
}

// View is a read-only window onto one subset. It stays live: later
// classifier changes show through.
type View struct {
	set wordSet
}

// Len returns the number of words in the subset
func (v View) Len() int {
	return len(v.set)
}

// Contains reports whether word is in the subset
func (v View) Contains(word string) bool {
	return v.set.has(word)
}

// Words returns the subset's words, sorted
func (v View) Words() []string {
	words := make([]string, 0, len(v.set))
	for w := range v.set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
