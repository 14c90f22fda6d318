package module

import (
	"time"

	"interviewcoach/internal/platform/config"
	asvc "interviewcoach/internal/services/analytics/service"
)

// FromConfig reads CORE_ANALYTICS_ buffering knobs
func FromConfig(cfg config.Conf) asvc.Options {
	c := cfg.Prefix("CORE_ANALYTICS_")
	return asvc.Options{
		Buffer:   c.MayInt("BUFFER", 1024),
		Batch:    c.MayInt("BATCH", 256),
		Interval: c.MayDuration("INTERVAL", 2*time.Second),
		MaxDays:  c.MayInt("MAX_DAYS", 365),
	}
}

// Table reads SERVICE_CLICKHOUSE_TABLE
func Table(cfg config.Conf) string {
	return cfg.Prefix("SERVICE_CLICKHOUSE_").MayString("TABLE", "turn_scores")
}
