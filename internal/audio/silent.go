package audio

import (
	"context"
	"log/slog"
)

var _ Speaker = (*Silent)(nil)

// Silent is a speaker that says nothing. Used in text-only mode.
type Silent struct{}

// NewSilent creates a silent speaker
func NewSilent() *Silent {
	return &Silent{}
}

// Initialize always succeeds
func (s *Silent) Initialize(ctx context.Context) error {
	return nil
}

// Speak only logs
func (s *Silent) Speak(text string) {
	slog.Debug("audio disabled, word not spoken")
}

// Shutdown does nothing
func (s *Silent) Shutdown() error {
	return nil
}

// Name returns the speaker name
func (s *Silent) Name() string {
	return "none"
}
