// Package gemini adapts the Google Gemini API to the embedding, generation and
// transcription ports used by scoring and the question service
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/patrickmn/go-cache"
	"google.golang.org/api/option"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/platform/logger"
)

const transcribeInstruction = "Transcribe the spoken answer in this recording verbatim. " +
	"Return only the words that were spoken, with normal punctuation and no commentary."

// Client talks to Gemini. It is safe for concurrent use
type Client struct {
	cfg    Config
	client *genai.Client
	vecs   *cache.Cache
}

// New dials Gemini with the configured key
func New(ctx context.Context, cfg Config) (*Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("gemini: API key is required")
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Client{cfg: cfg, client: gc, vecs: cache.New(ttl, 2*ttl)}, nil
}

// Close releases the underlying connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EmbeddingLoader probes the embedding model so the gate turns ready only when it answers
func (c *Client) EmbeddingLoader() capability.Loader {
	return func(ctx context.Context) error {
		if _, err := c.client.EmbeddingModel(c.cfg.EmbeddingModel).Info(ctx); err != nil {
			return capability.Fail(capability.ErrEmbeddingUnavailable, err)
		}
		return nil
	}
}

// GenerationLoader probes the generation model
func (c *Client) GenerationLoader() capability.Loader {
	return func(ctx context.Context) error {
		if _, err := c.client.GenerativeModel(c.cfg.GenerationModel).Info(ctx); err != nil {
			return capability.Fail(capability.ErrGenerationUnavailable, err)
		}
		return nil
	}
}

// Embed returns one vector per text in input order. Vectors are cached per model and text
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var missing []int

	for i, t := range texts {
		if v, ok := c.vecs.Get(cacheKey(c.cfg.EmbeddingModel, t)); ok {
			out[i] = v.([]float32)
			continue
		}
		missing = append(missing, i)
	}
	if len(missing) == 0 {
		return out, nil
	}

	em := c.client.EmbeddingModel(c.cfg.EmbeddingModel)
	batch := em.NewBatch()
	for _, i := range missing {
		batch.AddContent(genai.Text(texts[i]))
	}
	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, capability.Fail(capability.ErrEmbeddingUnavailable, err)
	}
	if len(resp.Embeddings) != len(missing) {
		return nil, capability.Fail(capability.ErrEmbeddingUnavailable,
			fmt.Errorf("got %d embeddings for %d texts", len(resp.Embeddings), len(missing)))
	}

	for j, i := range missing {
		e := resp.Embeddings[j]
		if e == nil || len(e.Values) == 0 {
			return nil, capability.Fail(capability.ErrEmbeddingUnavailable, fmt.Errorf("empty embedding at %d", i))
		}
		out[i] = e.Values
		c.vecs.SetDefault(cacheKey(c.cfg.EmbeddingModel, texts[i]), e.Values)
	}

	logger.C(ctx).Debug().
		Int("texts", len(texts)).
		Int("fetched", len(missing)).
		Msg("gemini: embedded")
	return out, nil
}

// Generate completes prompt with the generation model
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.cfg.GenerationModel)
	model.SetTemperature(float32(c.cfg.Temperature))
	if c.cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(int32(c.cfg.MaxOutputTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", capability.Fail(capability.ErrGenerationUnavailable, err)
	}
	text, err := extractText(resp)
	if err != nil {
		return "", capability.Fail(capability.ErrGenerationUnavailable, err)
	}
	return text, nil
}

// Transcribe turns recorded audio into text
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", capability.Fail(capability.ErrTranscription, errors.New("empty audio"))
	}

	model := c.client.GenerativeModel(c.cfg.TranscriptionModel)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: AudioMIME(mimeType), Data: audio},
		genai.Text(transcribeInstruction),
	)
	if err != nil {
		return "", capability.Fail(capability.ErrTranscription, err)
	}
	text, err := extractText(resp)
	if err != nil {
		return "", capability.Fail(capability.ErrTranscription, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", capability.Fail(capability.ErrTranscription, errors.New("no speech recognised"))
	}
	return text, nil
}

// AudioMIME maps an upload content type to one Gemini accepts, defaulting to wav
func AudioMIME(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return "audio/wav"
	case "audio/mpeg", "audio/mp3":
		return "audio/mp3"
	case "audio/webm", "audio/ogg", "audio/flac", "audio/aac", "audio/aiff":
		return ct
	default:
		return "audio/wav"
	}
}

func cacheKey(model, text string) string { return model + "\x00" + text }

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}

	var parts []string
	for _, p := range cand.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
