package gemini

import (
	"time"

	"interviewcoach/internal/platform/config"
)

// Config selects the hosted models behind the embedding, generation and transcription ports
type Config struct {
	APIKey             string
	EmbeddingModel     string
	GenerationModel    string
	TranscriptionModel string
	Temperature        float64
	MaxOutputTokens    int
	CacheTTL           time.Duration
}

// Enabled reports whether an API key was supplied
func (c Config) Enabled() bool { return c.APIKey != "" }

// FromConfig reads with SERVICE_GEMINI_ prefix
func FromConfig(cfg config.Conf) Config {
	c := cfg.Prefix("SERVICE_GEMINI_")
	return Config{
		APIKey:             c.MayString("API_KEY", ""),
		EmbeddingModel:     c.MayString("EMBEDDING_MODEL", "text-embedding-004"),
		GenerationModel:    c.MayString("GENERATION_MODEL", "gemini-1.5-flash"),
		TranscriptionModel: c.MayString("TRANSCRIPTION_MODEL", "gemini-1.5-flash"),
		Temperature:        c.MayFloat64("TEMPERATURE", 0.7),
		MaxOutputTokens:    c.MayInt("MAX_OUTPUT_TOKENS", 100),
		CacheTTL:           c.MayDuration("EMBED_CACHE_TTL", time.Hour),
	}
}
