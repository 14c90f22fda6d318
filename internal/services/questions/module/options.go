package module

import (
	"time"

	"interviewcoach/internal/platform/config"
	qsvc "interviewcoach/internal/services/questions/service"
)

// FromConfig reads CORE_QUESTIONS_CAPABILITY_WAIT and CORE_QUESTIONS_GENERATION_TIMEOUT
func FromConfig(cfg config.Conf) qsvc.Options {
	c := cfg.Prefix("CORE_QUESTIONS_")
	return qsvc.Options{
		CapabilityWait:    c.MayDuration("CAPABILITY_WAIT", time.Second),
		GenerationTimeout: c.MayDuration("GENERATION_TIMEOUT", 15*time.Second),
	}
}
