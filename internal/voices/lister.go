package voices

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/spellbee/internal/audio"
)

// OpenAIVoices are the voices accepted by the OpenAI speech endpoint
var OpenAIVoices = []string{
	"alloy", "ash", "ballad", "coral", "echo", "fable",
	"nova", "onyx", "sage", "shimmer", "verse",
}

// GeminiVoices are a selection of the Gemini prebuilt voices
var GeminiVoices = []string{
	"Aoede", "Charon", "Fenrir", "Kore", "Leda", "Orus", "Puck", "Zephyr",
}

// Lister prints available voices and models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a lister writing to out. An empty apiKey skips the
// OpenAI model query.
func NewLister(apiKey, baseURL string, out io.Writer) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
		out:    out,
	}
}

// List prints the voices of every speech provider
func (l *Lister) List(ctx context.Context) error {
	l.section("espeak-ng voices (--voice)", audio.ListVoices())
	l.section("OpenAI voices (--openai-voice)", OpenAIVoices)
	l.section("Gemini voices (--gemini-voice)", GeminiVoices)

	if l.apiKey == "" {
		fmt.Fprintln(l.out, "\nSet OPENAI_API_KEY to list the OpenAI TTS models available to you.")
		return nil
	}

	models, err := l.TTSModels(ctx)
	if err != nil {
		return err
	}
	l.section("OpenAI TTS models (--openai-model)", models)
	return nil
}

// TTSModels returns the sorted ids of the speech models the key can use
func (l *Lister) TTSModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .spellbee.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ttsModels := []string{}
	for _, model := range models.Models {
		if strings.Contains(model.ID, "tts") {
			ttsModels = append(ttsModels, model.ID)
		}
	}
	sort.Strings(ttsModels)
	return ttsModels, nil
}

func (l *Lister) section(title string, names []string) {
	fmt.Fprintf(l.out, "\n%s:\n", title)
	if len(names) == 0 {
		fmt.Fprintln(l.out, "  none found")
		return
	}
	for _, name := range names {
		fmt.Fprintf(l.out, "  %s\n", name)
	}
}
