package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"codeberg.org/snonux/spellbee/internal/audio"
	"codeberg.org/snonux/spellbee/internal/classifier"
	"codeberg.org/snonux/spellbee/internal/round"
	"codeberg.org/snonux/spellbee/internal/vocabulary"
)

// ErrNotInitialized is returned when the session is used before Initialize
var ErrNotInitialized = errors.New("session not initialized")

// Options configures a session
type Options struct {
	Subset      classifier.Subset
	Seed        int64         // 0 picks a seed from the clock
	InitTimeout time.Duration // Upper bound for speech engine startup
}

// Session owns the state of one practice session
type Session struct {
	options Options
	speaker audio.Speaker

	store      *vocabulary.Store
	words      *classifier.Classifier
	controller *round.Controller
}

// New creates a session that will speak through speaker
func New(speaker audio.Speaker, options Options) *Session {
	if speaker == nil {
		speaker = audio.NewSilent()
	}
	if !options.Subset.Valid() {
		options.Subset = classifier.NeverTried
	}
	if options.InitTimeout <= 0 {
		options.InitTimeout = 10 * time.Second
	}
	return &Session{options: options, speaker: speaker}
}

// Initialize loads the vocabulary from src and prepares a round that
// reports to presenter. A vocabulary that cannot be read is fatal; a
// speech engine that fails to start is replaced by silent output.
func (s *Session) Initialize(ctx context.Context, src vocabulary.Source, presenter round.Presenter) error {
	store, err := vocabulary.LoadSource(src)
	if err != nil {
		return err
	}
	slog.Info("vocabulary loaded", "source", src.Name(), "words", store.Len())

	initCtx, cancel := context.WithTimeout(ctx, s.options.InitTimeout)
	defer cancel()
	if err := s.speaker.Initialize(initCtx); err != nil {
		slog.Warn("speech output unavailable, continuing in text-only mode",
			"provider", s.speaker.Name(), "error", err)
		s.speaker = audio.NewSilent()
	} else {
		slog.Info("speech output ready", "provider", s.speaker.Name())
	}

	s.store = store
	s.words = classifier.New(store)
	s.controller = round.New(s.words, s.speaker, presenter, rand.New(rand.NewSource(s.seed())))
	s.controller.SelectSubset(s.options.Subset)
	s.controller.Refresh()
	return nil
}

func (s *Session) seed() int64 {
	if s.options.Seed != 0 {
		return s.options.Seed
	}
	return time.Now().UnixNano()
}

// Teardown stops speech output
func (s *Session) Teardown() error {
	if err := s.speaker.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down %s: %w", s.speaker.Name(), err)
	}
	slog.Debug("session torn down")
	return nil
}

// Controller returns the round controller
func (s *Session) Controller() (*round.Controller, error) {
	if s.controller == nil {
		return nil, ErrNotInitialized
	}
	return s.controller, nil
}

// Classifier returns the attempt classifier
func (s *Session) Classifier() *classifier.Classifier {
	return s.words
}

// Vocabulary returns the loaded word list
func (s *Session) Vocabulary() *vocabulary.Store {
	return s.store
}

// SpeakerName returns the name of the speech engine in use
func (s *Session) SpeakerName() string {
	return s.speaker.Name()
}
