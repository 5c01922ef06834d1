package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrAudioInitFailed is returned when no speech engine could be initialized
var ErrAudioInitFailed = errors.New("audio initialization failed")

// Speaker defines the interface for text-to-speech output
type Speaker interface {
	// Initialize prepares the engine. Failure leaves the speaker unusable.
	Initialize(ctx context.Context) error

	// Speak pronounces text asynchronously, interrupting any earlier speech
	Speak(text string)

	// Shutdown stops playback and releases the engine
	Shutdown() error

	// Name returns the speaker name
	Name() string
}

// Config holds configuration for all speakers
type Config struct {
	Provider string        // "espeak", "openai", "gemini" or "none"
	CacheDir string        // Directory for synthesized audio
	Timeout  time.Duration // Upper bound for synthesis plus playback of one word

	// espeak-ng settings
	Voice     string // Voice variant, e.g. "en-us", "en-us+f3"
	Speed     int    // Words per minute
	Pitch     int    // 0 to 99
	Amplitude int    // 0 to 200

	// OpenAI settings
	OpenAIKey         string
	OpenAIModel       string  // "tts-1", "tts-1-hd" or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "nova", ...
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts
	OpenAIBaseURL     string  // Override for the API endpoint

	// Gemini settings
	GeminiKey   string
	GeminiModel string
	GeminiVoice string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:          "espeak",
		CacheDir:          defaultCacheDir(),
		Timeout:           60 * time.Second,
		Voice:             "en-us",
		Speed:             140,
		Pitch:             50,
		Amplitude:         100,
		OpenAIModel:       "gpt-4o-mini-tts",
		OpenAIVoice:       "nova",
		OpenAISpeed:       0.9,
		OpenAIInstruction: "Speak in a clear US English accent. Pronounce the single word slowly and carefully for a child practising spelling.",
		GeminiModel:       "gemini-2.5-flash-preview-tts",
		GeminiVoice:       "Kore",
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "spellbee", "audio")
	}
	return filepath.Join(os.TempDir(), "spellbee-audio")
}

// NewSpeaker creates the speaker named by config.Provider. Remote
// providers fall back to espeak-ng.
func NewSpeaker(config *Config) (Speaker, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "espeak", "":
		return NewESpeak(config), nil
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewFallback(NewOpenAI(config), NewESpeak(config)), nil
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewFallback(NewGemini(config), NewESpeak(config)), nil
	case "none":
		return NewSilent(), nil
	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
}
