package module

import (
	"time"

	"interviewcoach/internal/platform/config"
)

// Options configures the memory store; ignored when postgres backs sessions
type Options struct {
	TTL     time.Duration
	Cleanup time.Duration
}

// FromConfig reads CORE_SESSIONS_TTL and CORE_SESSIONS_CLEANUP
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_SESSIONS_")
	return Options{
		TTL:     c.MayDuration("TTL", 2*time.Hour),
		Cleanup: c.MayDuration("CLEANUP", 10*time.Minute),
	}
}
