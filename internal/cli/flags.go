package cli

import "codeberg.org/snonux/spellbee/internal/vocabulary"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	WordsFile  string
	Subset     string
	TextMode   bool
	Seed       int64
	LogLevel   string
	ListVoices bool

	// Audio flags
	AudioProvider string
	Voice         string
	Speed         int
	CacheDir      string

	// OpenAI flags
	OpenAIModel string
	OpenAIVoice string
	OpenAISpeed float64

	// Gemini flags
	GeminiModel string
	GeminiVoice string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		WordsFile:     vocabulary.DefaultFile,
		Subset:        "neverTriedWords",
		LogLevel:      "info",
		AudioProvider: "espeak",
		Voice:         "en-us",
		Speed:         140,
		OpenAIModel:   "gpt-4o-mini-tts",
		OpenAIVoice:   "nova",
		OpenAISpeed:   0.9,
		GeminiModel:   "gemini-2.5-flash-preview-tts",
		GeminiVoice:   "Kore",
	}
}
