package module

import (
	"time"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/scoring"
	"interviewcoach/internal/platform/config"
	esvc "interviewcoach/internal/services/evaluation/service"
)

// Options groups the CORE_EVALUATION_ settings
type Options struct {
	Technical scoring.TechnicalOptions
	Service   esvc.Options
	MaxAudio  int64
}

// FromConfig reads CORE_EVALUATION_ keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_EVALUATION_")
	return Options{
		Technical: scoring.TechnicalOptions{
			CapabilityWait:  c.MayDuration("CAPABILITY_WAIT", capability.DefaultWait),
			SemanticTimeout: c.MayDuration("SEMANTIC_TIMEOUT", 10*time.Second),
		},
		Service: esvc.Options{
			TranscribeTimeout: c.MayDuration("TRANSCRIBE_TIMEOUT", 30*time.Second),
			DefaultMime:       c.MayString("DEFAULT_MIME", "audio/webm"),
		},
		MaxAudio: int64(c.MayInt("MAX_AUDIO_BYTES", 25<<20)),
	}
}
