package audio

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"
)

var _ Speaker = (*Gemini)(nil)

const geminiSampleRate = 24000

// Gemini speaks words with the Gemini text-to-speech models
type Gemini struct {
	*remote
	config *Config

	clientMu sync.Mutex
	client   *genai.Client
}

// NewGemini creates a Gemini speaker. Call Initialize before Speak.
func NewGemini(config *Config) *Gemini {
	g := &Gemini{config: config}
	g.remote = newRemote("gemini", ".wav", config, g.synthesize,
		config.GeminiModel, config.GeminiVoice)
	return g
}

// Initialize creates the API client and checks local playback
func (g *Gemini) Initialize(ctx context.Context) error {
	if g.config.GeminiKey == "" {
		return fmt.Errorf("%w: Gemini API key not configured", ErrAudioInitFailed)
	}
	if err := g.player.Available(); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioInitFailed, err)
	}
	if err := os.MkdirAll(g.config.CacheDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create cache directory: %w", ErrAudioInitFailed, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create Gemini client: %w", ErrAudioInitFailed, err)
	}

	g.clientMu.Lock()
	g.client = client
	g.clientMu.Unlock()

	g.setReady(true)
	return nil
}

// Speak synthesizes (or loads from cache) and plays text in the background
func (g *Gemini) Speak(text string) {
	g.speak(strings.TrimSpace(text))
}

// Shutdown stops synthesis and playback
func (g *Gemini) Shutdown() error {
	return g.shutdown()
}

// Name returns the speaker name
func (g *Gemini) Name() string {
	return "gemini"
}

// synthesize requests PCM audio for text and wraps it into a WAV file
func (g *Gemini) synthesize(ctx context.Context, text string) ([]byte, error) {
	g.clientMu.Lock()
	client := g.client
	g.clientMu.Unlock()
	if client == nil {
		return nil, fmt.Errorf("Gemini client not initialized")
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			LanguageCode: "en-US",
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: g.config.GeminiVoice,
				},
			},
		},
	}

	prompt := "Say clearly in US English: " + text
	resp, err := client.Models.GenerateContent(ctx, g.config.GeminiModel, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("Gemini TTS API error: %w", err)
	}

	return extractWAV(resp)
}

// extractWAV collects the inline PCM parts of a response into one WAV file
func extractWAV(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no audio data received from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("Gemini blocked the request")
	}

	var pcm []byte
	rate := 0
	for _, part := range candidate.Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		if rate == 0 {
			rate = sampleRateFromMIME(part.InlineData.MIMEType, geminiSampleRate)
		}
		pcm = append(pcm, part.InlineData.Data...)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio data received from Gemini")
	}

	return pcmToWAV(pcm, rate, 1, 16), nil
}
