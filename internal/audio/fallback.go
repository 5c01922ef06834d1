package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var _ Speaker = (*Fallback)(nil)

// failureReporter is implemented by speakers that can report words they
// failed to synthesize after Speak returned
type failureReporter interface {
	setFailureHandler(fn func(text string))
}

// Fallback uses the primary speaker and switches to the fallback when
// the primary cannot be initialized. Words the primary fails to
// synthesize at runtime are spoken by the fallback.
type Fallback struct {
	primary  Speaker
	fallback Speaker

	mu            sync.Mutex
	active        Speaker
	fallbackReady bool
}

// NewFallback creates a speaker that falls back from primary to fallback
func NewFallback(primary, fallback Speaker) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

// Initialize initializes the primary speaker, or the fallback if the primary fails
func (f *Fallback) Initialize(ctx context.Context) error {
	primaryErr := f.primary.Initialize(ctx)
	fallbackErr := f.fallback.Initialize(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.fallbackReady = fallbackErr == nil
	switch {
	case primaryErr == nil:
		f.active = f.primary
		if f.fallbackReady {
			if reporter, ok := f.primary.(failureReporter); ok {
				reporter.setFailureHandler(f.speakFallback)
			}
		}
		return nil
	case fallbackErr == nil:
		slog.Warn("primary speaker unavailable, using fallback",
			"primary", f.primary.Name(), "fallback", f.fallback.Name(), "error", primaryErr)
		f.active = f.fallback
		return nil
	default:
		f.active = nil
		return fmt.Errorf("%w: %w", ErrAudioInitFailed, errors.Join(primaryErr, fallbackErr))
	}
}

// Speak pronounces text with the active speaker
func (f *Fallback) Speak(text string) {
	f.mu.Lock()
	active := f.active
	f.mu.Unlock()

	if active == nil {
		slog.Warn("speaker used before initialization", "provider", f.Name())
		return
	}
	active.Speak(text)
}

func (f *Fallback) speakFallback(text string) {
	slog.Info("speaking word with fallback", "fallback", f.fallback.Name())
	f.fallback.Speak(text)
}

// Shutdown shuts down both speakers
func (f *Fallback) Shutdown() error {
	f.mu.Lock()
	f.active = nil
	f.mu.Unlock()

	return errors.Join(f.primary.Shutdown(), f.fallback.Shutdown())
}

// Name returns the primary name with the fallback in parentheses
func (f *Fallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", f.primary.Name(), f.fallback.Name())
}

// Active returns the name of the speaker in use
func (f *Fallback) Active() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == nil {
		return ""
	}
	return f.active.Name()
}
