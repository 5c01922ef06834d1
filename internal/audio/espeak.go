package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

// ESpeak speaks words through the local espeak-ng engine
type ESpeak struct {
	config *Config
	run    *flusher

	mu    sync.Mutex
	ready bool
}

// NewESpeak creates an espeak-ng speaker. Call Initialize before Speak.
func NewESpeak(config *Config) *ESpeak {
	if config == nil {
		config = DefaultConfig()
	}

	e := &ESpeak{config: config, run: newFlusher(config.Timeout)}
	if e.config.Voice == "" {
		e.config.Voice = "en-us"
	}
	e.SetSpeed(config.Speed)
	e.SetPitch(config.Pitch)
	e.SetAmplitude(config.Amplitude)
	return e
}

// Initialize checks that espeak-ng is installed and has a US English voice
func (e *ESpeak) Initialize(ctx context.Context) error {
	if err := checkESpeakInstalled(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioInitFailed, err)
	}

	output, err := exec.CommandContext(ctx, "espeak-ng", "--voices=en").Output()
	if err != nil {
		return fmt.Errorf("%w: listing espeak-ng voices: %w", ErrAudioInitFailed, err)
	}
	if !hasVoice(string(output), baseVoice(e.config.Voice)) {
		return fmt.Errorf("%w: espeak-ng voice %q is not supported", ErrAudioInitFailed, e.config.Voice)
	}

	e.mu.Lock()
	e.ready = true
	e.mu.Unlock()
	return nil
}

// Speak pronounces text in the background
func (e *ESpeak) Speak(text string) {
	if err := ValidateText(text); err != nil {
		slog.Warn("not speaking invalid text", "error", err)
		return
	}

	e.mu.Lock()
	ready := e.ready
	e.mu.Unlock()
	if !ready {
		slog.Warn("espeak-ng speaker used before initialization")
		return
	}

	args := e.args(text)
	e.run.run(func(ctx context.Context) {
		output, err := exec.CommandContext(ctx, "espeak-ng", args...).CombinedOutput()
		if err != nil && ctx.Err() == nil {
			slog.Error("espeak-ng failed", "error", err, "output", strings.TrimSpace(string(output)))
		}
	})
}

// Shutdown stops any speech in progress
func (e *ESpeak) Shutdown() error {
	e.run.stop()
	e.mu.Lock()
	e.ready = false
	e.mu.Unlock()
	return nil
}

// Name returns the speaker name
func (e *ESpeak) Name() string {
	return "espeak-ng"
}

// args builds the espeak-ng command line for text
func (e *ESpeak) args(text string) []string {
	return []string{
		"-v", e.config.Voice,
		"-s", fmt.Sprintf("%d", e.config.Speed),
		"-p", fmt.Sprintf("%d", e.config.Pitch),
		"-a", fmt.Sprintf("%d", e.config.Amplitude),
		"--", text,
	}
}

// SetSpeed updates the speech speed
func (e *ESpeak) SetSpeed(speed int) {
	if speed == 0 {
		speed = 140
	}
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	e.config.Speed = speed
}

// SetPitch updates the pitch (0-99, 50 is default)
func (e *ESpeak) SetPitch(pitch int) {
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}
	e.config.Pitch = pitch
}

// SetAmplitude updates the volume/amplitude (0-200, 100 is default)
func (e *ESpeak) SetAmplitude(amplitude int) {
	if amplitude <= 0 {
		amplitude = 100
	} else if amplitude > 200 {
		amplitude = 200
	}
	e.config.Amplitude = amplitude
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled(ctx context.Context) error {
	if err := exec.CommandContext(ctx, "espeak-ng", "--version").Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// baseVoice strips a variant suffix such as "+f3"
func baseVoice(voice string) string {
	if i := strings.Index(voice, "+"); i >= 0 {
		return voice[:i]
	}
	return voice
}

// hasVoice looks for voice in the output of `espeak-ng --voices`
func hasVoice(listing, voice string) bool {
	for _, line := range strings.Split(listing, "\n") {
		for _, field := range strings.Fields(line) {
			if strings.EqualFold(field, voice) {
				return true
			}
		}
	}
	return false
}

// ListVoices returns the US English voice variants espeak-ng ships with
func ListVoices() []string {
	return []string{
		"en-us",    // Default US English voice
		"en-us+m1", // Male voice 1
		"en-us+m3", // Male voice 3
		"en-us+f1", // Female voice 1
		"en-us+f3", // Female voice 3
		"en-us+klatt",
	}
}
