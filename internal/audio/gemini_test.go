package audio

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestExtractWAV(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: "audio/L16;codec=pcm;rate=16000", Data: []byte{1, 2, 3, 4}}},
				{Text: "ignored"},
				{InlineData: &genai.Blob{MIMEType: "audio/L16;codec=pcm;rate=16000", Data: []byte{5, 6}}},
			}},
		}},
	}

	wav, err := extractWAV(resp)
	if err != nil {
		t.Fatalf("extractWAV() error = %v", err)
	}
	if !bytes.HasPrefix(wav, []byte("RIFF")) {
		t.Error("result is not a RIFF file")
	}
	if !bytes.HasSuffix(wav, []byte{1, 2, 3, 4, 5, 6}) {
		t.Error("PCM parts were not concatenated in order")
	}
	want := pcmToWAV([]byte{1, 2, 3, 4, 5, 6}, 16000, 1, 16)
	if !bytes.Equal(wav, want) {
		t.Error("sample rate from MIME type was not used")
	}
}

func TestExtractWAVErrors(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"no content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"text only", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "hello"}}},
		}}}},
		{"blocked", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonSafety,
			Content:      &genai.Content{},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := extractWAV(tt.resp); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGeminiInitializeWithoutKey(t *testing.T) {
	g := NewGemini(&Config{CacheDir: t.TempDir()})
	if err := g.Initialize(context.Background()); !errors.Is(err, ErrAudioInitFailed) {
		t.Errorf("Initialize() error = %v, want ErrAudioInitFailed", err)
	}
	if g.Name() != "gemini" {
		t.Errorf("Name() = %s", g.Name())
	}
}

func TestGeminiSynthesizeWithoutClient(t *testing.T) {
	g := NewGemini(DefaultConfig())
	if _, err := g.synthesize(context.Background(), "apple"); err == nil {
		t.Error("expected error without client")
	}
}
