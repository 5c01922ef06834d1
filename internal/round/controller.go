package round

import (
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"codeberg.org/snonux/spellbee/internal/classifier"
)

var (
	// ErrEmptySubset is returned when the selected word list has no words
	ErrEmptySubset = errors.New("no words in the selected list")

	// ErrNoActiveWord is returned when a guess arrives before any word was pronounced
	ErrNoActiveWord = errors.New("no word has been pronounced yet")
)

// Controller holds the current word under test and the selected word list
type Controller struct {
	words     *classifier.Classifier
	speaker   Speaker
	presenter Presenter
	rng       *rand.Rand

	subset  classifier.Subset
	current string
}

// New creates a round controller. A nil rng is seeded from the clock.
func New(words *classifier.Classifier, speaker Speaker, presenter Presenter, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Controller{
		words:     words,
		speaker:   speaker,
		presenter: presenter,
		rng:       rng,
		subset:    classifier.NeverTried,
	}
}

// SelectSubset changes the word list future rounds draw from
func (c *Controller) SelectSubset(s classifier.Subset) {
	if !s.Valid() {
		s = classifier.NeverTried
	}
	c.subset = s
	slog.Debug("word list selected", "list", s.String())
}

// Subset returns the selected word list
func (c *Controller) Subset() classifier.Subset {
	return c.subset
}

// CurrentWord returns the word under test, if any
func (c *Controller) CurrentWord() (string, bool) {
	return c.current, c.current != ""
}

// Snapshot returns the current progress counts
func (c *Controller) Snapshot() classifier.Snapshot {
	return c.words.Snapshot()
}

// Refresh pushes the current progress to the presenter
func (c *Controller) Refresh() {
	c.presenter.ShowProgress(c.words.Snapshot())
}

// PronounceNext draws a word uniformly at random from the selected list
// and speaks it. The reward indicator is hidden first.
func (c *Controller) PronounceNext() error {
	c.presenter.SetRewardVisible(false)

	words := c.words.Subset(c.subset).Words()
	if len(words) == 0 {
		slog.Info("pronounce requested on empty word list", "list", c.subset.String())
		c.presenter.ShowToast(MsgEmptySubset)
		return ErrEmptySubset
	}

	c.current = words[c.rng.Intn(len(words))]
	slog.Debug("pronouncing next word", "list", c.subset.String(), "candidates", len(words))
	c.speaker.Speak(c.current)
	return nil
}

// Repeat speaks the current word again without drawing a new one
func (c *Controller) Repeat() error {
	if c.current == "" {
		c.presenter.ShowToast(MsgNoActiveWord)
		return ErrNoActiveWord
	}
	c.speaker.Speak(c.current)
	return nil
}

// SubmitGuess checks text against the current word. Surrounding
// whitespace and letter case are ignored.
func (c *Controller) SubmitGuess(text string) (bool, error) {
	if c.current == "" {
		slog.Info("guess submitted before any word was pronounced")
		c.presenter.ShowToast(MsgNoActiveWord)
		return false, ErrNoActiveWord
	}

	correct := Matches(text, c.current)
	if correct {
		if err := c.words.RecordCorrect(c.current); err != nil {
			return false, err
		}
		c.presenter.ShowToast(MsgCorrect)
		c.presenter.SetRewardVisible(true)
	} else {
		if err := c.words.RecordIncorrect(c.current); err != nil {
			return false, err
		}
		c.presenter.ShowToast(MsgIncorrect)
	}

	slog.Debug("guess checked", "correct", correct)
	c.presenter.ClearGuess()
	c.Refresh()
	return correct, nil
}

// ResetAll returns every word to never tried and immediately pronounces
// the next word from the selected list. Callers confirm with the learner
// before calling it.
func (c *Controller) ResetAll() error {
	c.words.Reset()
	c.current = ""
	slog.Info("progress reset", "total", c.words.Snapshot().Total)
	c.Refresh()
	return c.PronounceNext()
}

// Matches reports whether guess spells word, ignoring surrounding
// whitespace and case
func Matches(guess, word string) bool {
	return strings.ToLower(strings.TrimSpace(guess)) == strings.ToLower(word)
}
