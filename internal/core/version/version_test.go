package version

import (
	"runtime"
	"testing"
)

func TestInfoFillsEveryField(t *testing.T) {
	bi := Info("coach-api")
	if bi.Service != "coach-api" || bi.Version != "dev" {
		t.Fatalf("info = %+v", bi)
	}
	if bi.Commit == "" || bi.Date == "" {
		t.Fatalf("commit/date should never be empty: %+v", bi)
	}
	if bi.GoVersion != runtime.Version() {
		t.Fatalf("go version = %q", bi.GoVersion)
	}
}

func TestInfoPrefersLinkerValues(t *testing.T) {
	oc, od := commit, date
	t.Cleanup(func() { commit, date = oc, od })
	commit, date = "abc123", "2026-01-01"

	bi := Info("x")
	if bi.Commit != "abc123" || bi.Date != "2026-01-01" {
		t.Fatalf("info = %+v", bi)
	}
}
