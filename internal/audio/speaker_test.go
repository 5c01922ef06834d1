package audio

import (
	"testing"
)

func TestNewSpeaker(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{"nil config", nil, "espeak-ng", false},
		{"default provider", &Config{}, "espeak-ng", false},
		{"espeak", &Config{Provider: "espeak"}, "espeak-ng", false},
		{"none", &Config{Provider: "none"}, "none", false},
		{"openai", &Config{Provider: "openai", OpenAIKey: "k"}, "openai (fallback: espeak-ng)", false},
		{"openai without key", &Config{Provider: "openai"}, "", true},
		{"gemini", &Config{Provider: "gemini", GeminiKey: "k"}, "gemini (fallback: espeak-ng)", false},
		{"gemini without key", &Config{Provider: "gemini"}, "", true},
		{"unknown", &Config{Provider: "festival"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speaker, err := NewSpeaker(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSpeaker() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if speaker.Name() != tt.wantName {
				t.Errorf("Name() = %s, want %s", speaker.Name(), tt.wantName)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "espeak" {
		t.Errorf("Provider = %s, want espeak", config.Provider)
	}
	if config.Voice != "en-us" {
		t.Errorf("Voice = %s, want en-us", config.Voice)
	}
	if config.CacheDir == "" {
		t.Error("CacheDir should not be empty")
	}
}
