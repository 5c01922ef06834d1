package audio

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sony/gobreaker"
)

// playback is what remote speakers need from a Player
type playback interface {
	Play(ctx context.Context, file string) error
	Available() error
}

// synthesizer turns text into encoded audio bytes
type synthesizer func(ctx context.Context, text string) ([]byte, error)

// remote holds the machinery shared by API-backed speakers: on-disk
// cache, circuit breaker, background job runner and local playback.
type remote struct {
	name     string
	ext      string
	settings []string

	cache   *Cache
	player  playback
	breaker *gobreaker.CircuitBreaker
	run     *flusher
	synth   synthesizer

	mu        sync.Mutex
	ready     bool
	onFailure func(text string)
}

func newRemote(name, ext string, config *Config, synth synthesizer, settings ...string) *remote {
	return &remote{
		name:     name,
		ext:      ext,
		settings: settings,
		cache:    NewCache(config.CacheDir),
		player:   NewPlayer(),
		breaker:  newBreaker(name),
		run:      newFlusher(config.Timeout),
		synth:    synth,
	}
}

func (r *remote) setReady(ready bool) {
	r.mu.Lock()
	r.ready = ready
	r.mu.Unlock()
}

// setFailureHandler registers a callback for words that could not be synthesized
func (r *remote) setFailureHandler(fn func(text string)) {
	r.mu.Lock()
	r.onFailure = fn
	r.mu.Unlock()
}

// fetch returns a local file with the audio for text, synthesizing it on a cache miss
func (r *remote) fetch(ctx context.Context, text string) (string, error) {
	path := r.cache.Path(text, r.ext, r.settings...)
	if r.cache.Has(path) {
		return path, nil
	}

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.synth(ctx, text)
	})
	if err != nil {
		return "", fmt.Errorf("%s synthesis: %w", r.name, err)
	}

	if err := r.cache.Store(path, result.([]byte)); err != nil {
		return "", err
	}
	return path, nil
}

func (r *remote) speak(text string) {
	if err := ValidateText(text); err != nil {
		slog.Warn("not speaking invalid text", "error", err)
		return
	}

	r.mu.Lock()
	ready, onFailure := r.ready, r.onFailure
	r.mu.Unlock()
	if !ready {
		slog.Warn("speaker used before initialization", "provider", r.name)
		return
	}

	r.run.run(func(ctx context.Context) {
		path, err := r.fetch(ctx, text)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("speech synthesis failed", "provider", r.name, "error", err)
			if onFailure != nil {
				onFailure(text)
			}
			return
		}

		if err := r.player.Play(ctx, path); err != nil && ctx.Err() == nil {
			slog.Error("audio playback failed", "provider", r.name, "error", err)
		}
	})
}

func (r *remote) shutdown() error {
	r.run.stop()
	r.setReady(false)
	return nil
}
