package gemini

import (
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"

	"interviewcoach/internal/platform/config"
)

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("What is "), genai.Text("a mutex?")}},
		}},
	}
	got, err := extractText(resp)
	if err != nil || got != "What is a mutex?" {
		t.Fatalf("extractText = %q, %v", got, err)
	}

	bad := []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
		{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "audio/wav"}}}}}},
	}
	for i, r := range bad {
		if _, err := extractText(r); err == nil {
			t.Fatalf("case %d: want error", i)
		}
	}
}

func TestAudioMIME(t *testing.T) {
	cases := map[string]string{
		"":                         "audio/wav",
		"audio/x-wav":              "audio/wav",
		"audio/mpeg":               "audio/mp3",
		"audio/webm;codecs=opus":   "audio/webm",
		"application/octet-stream": "audio/wav",
		" Audio/OGG ":              "audio/ogg",
	}
	for in, want := range cases {
		if got := AudioMIME(in); got != want {
			t.Fatalf("AudioMIME(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	t.Setenv("SERVICE_GEMINI_API_KEY", "")
	t.Setenv("SERVICE_GEMINI_EMBED_CACHE_TTL", "5m")

	c := FromConfig(config.New())
	if c.Enabled() {
		t.Fatal("empty key should disable the adapter")
	}
	if c.EmbeddingModel != "text-embedding-004" || c.GenerationModel != "gemini-1.5-flash" {
		t.Fatalf("models = %q %q", c.EmbeddingModel, c.GenerationModel)
	}
	if c.CacheTTL != 5*time.Minute {
		t.Fatalf("ttl = %v", c.CacheTTL)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(t.Context(), Config{}); err == nil {
		t.Fatal("want error without key")
	}
	var c *Client
	if err := c.Close(); err != nil {
		t.Fatalf("nil Close = %v", err)
	}
}
