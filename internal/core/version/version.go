// Package version reports what binary is running
package version

import (
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X interviewcoach/internal/core/version.version=v1.2.3"
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo describes the running build
type BuildInfo struct {
	Service   string `json:"service" example:"coach-api"`
	Version   string `json:"version" example:"v1.0.0"`
	Commit    string `json:"commit" example:"3f1c2ab"`
	Date      string `json:"date" example:"2026-01-02T03:04:05Z"`
	GoVersion string `json:"go_version" example:"go1.24.4"`
}

// Info returns build details for service. Commit and date fall back to the
// vcs stamp the toolchain embeds when ldflags did not set them
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date, GoVersion: runtime.Version()}
	if bi.Commit != "" && bi.Date != "" {
		return bi
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.Date == "" {
					bi.Date = s.Value
				}
			}
		}
	}
	if bi.Commit == "" {
		bi.Commit = "none"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}
