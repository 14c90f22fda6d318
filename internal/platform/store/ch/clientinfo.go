package ch

import (
	"os"
	"runtime"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"interviewcoach/internal/core/version"
)

// BuildClientInfo labels the connection so system.query_log shows which binary
// and build issued a query. role is "api" or "coachctl".
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	commit := version.Info(role).Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}

	info := clickhouse.ClientInfo{}
	for _, p := range [][2]string{
		{"interviewcoach", tag},
		{"role", role},
		{"go", runtime.Version()},
		{"commit", commit},
		{"host", host},
	} {
		info.Products = append(info.Products, struct{ Name, Version string }{p[0], strings.TrimSpace(p[1])})
	}
	return info
}
