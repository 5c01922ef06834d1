package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var _ Speaker = (*OpenAI)(nil)

// OpenAI speaks words with the OpenAI text-to-speech API
type OpenAI struct {
	*remote
	config *Config
	client *openai.Client
}

// NewOpenAI creates an OpenAI speaker. Call Initialize before Speak.
func NewOpenAI(config *Config) *OpenAI {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	o := &OpenAI{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
	o.remote = newRemote("openai", ".mp3", config, o.synthesize,
		config.OpenAIModel, config.OpenAIVoice,
		fmt.Sprintf("%.2f", config.OpenAISpeed), o.instruction())
	return o
}

// Initialize checks the API key, the local player and the cache directory
func (o *OpenAI) Initialize(ctx context.Context) error {
	if o.config.OpenAIKey == "" {
		return fmt.Errorf("%w: OpenAI API key not configured", ErrAudioInitFailed)
	}
	if err := o.player.Available(); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioInitFailed, err)
	}
	if err := os.MkdirAll(o.config.CacheDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create cache directory: %w", ErrAudioInitFailed, err)
	}

	o.setReady(true)
	return nil
}

// Speak synthesizes (or loads from cache) and plays text in the background
func (o *OpenAI) Speak(text string) {
	o.speak(strings.TrimSpace(text))
}

// Shutdown stops synthesis and playback
func (o *OpenAI) Shutdown() error {
	return o.shutdown()
}

// Name returns the speaker name
func (o *OpenAI) Name() string {
	return "openai"
}

// instruction returns the voice instruction for models that support one
func (o *OpenAI) instruction() string {
	if o.config.OpenAIModel == "gpt-4o-mini-tts" {
		return o.config.OpenAIInstruction
	}
	return ""
}

// synthesize fetches MP3 audio for text from the API
func (o *OpenAI) synthesize(ctx context.Context, text string) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(o.config.OpenAIVoice),
		Speed:          o.config.OpenAISpeed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Instructions:   o.instruction(),
	}

	response, err := o.client.CreateSpeech(ctx, req)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "does not have access to model") && o.config.OpenAIModel == "gpt-4o-mini-tts" {
			return nil, fmt.Errorf("OpenAI TTS API error: %w\nNote: The %s model requires access. Try using --openai-model tts-1-hd instead", err, o.config.OpenAIModel)
		}
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no audio data received from OpenAI")
	}
	return data, nil
}
