package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"interviewcoach/internal/core/capability"
	phttp "interviewcoach/internal/platform/net/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) {
	t.Helper()
	mux := chi.NewRouter()
	phttp.AdaptChi(mux).Route("/meta", func(r phttp.Router) { Register(r, d) })

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("%s status = %d body %s", path, rec.Code, rec.Body.String())
	}
	env := struct {
		Data any `json:"data"`
	}{Data: out}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestReady(t *testing.T) {
	readyCaps := capability.NewRegistry(capability.Embedding)
	readyCaps.Gate(capability.Embedding).Start(context.Background(), func(context.Context) error { return nil }).Wait(context.Background())

	cases := []struct {
		name string
		deps Deps
		want string
	}{
		{"nothing configured", Deps{}, "ok"},
		{"stores up, capability ready", Deps{PG: pinger{}, CH: pinger{}, Capabilities: readyCaps}, "ok"},
		{"capability unloaded", Deps{PG: pinger{}, Capabilities: capability.NewRegistry(capability.Generation)}, "degraded"},
		{"store without ping", Deps{PG: struct{}{}}, "degraded"},
		{"pg down", Deps{PG: pinger{err: errors.New("refused")}, Capabilities: readyCaps}, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out ReadyResponse
			get(t, tc.deps, "/meta/ready", &out)
			if out.Status != tc.want {
				t.Fatalf("status = %q, want %q (%+v)", out.Status, tc.want, out.Checks)
			}
		})
	}
}

func TestReadyFailedCapabilityOnlyDegrades(t *testing.T) {
	caps := capability.NewRegistry(capability.Generation)
	caps.Gate(capability.Generation).MarkFailed(errors.New("no key"))

	var out ReadyResponse
	get(t, Deps{Capabilities: caps}, "/meta/ready", &out)
	if out.Status != "degraded" || len(out.Checks) != 3 || out.Checks[2].Status != "fail" {
		t.Fatalf("ready = %+v", out)
	}
}

func TestHealthVersionCapabilities(t *testing.T) {
	d := Deps{ServiceName: "coach-api", StartedAt: time.Now().Add(-time.Minute), Capabilities: capability.NewRegistry(capability.Embedding, capability.Generation)}

	var h HealthResponse
	get(t, d, "/meta/health", &h)
	if !h.OK || h.Service != "coach-api" || h.Uptime < 59 {
		t.Fatalf("health = %+v", h)
	}

	var v map[string]any
	get(t, d, "/meta/version", &v)
	if v["service"] != "coach-api" || v["go_version"] == "" {
		t.Fatalf("version = %v", v)
	}

	var c struct {
		Capabilities []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
			Ready  bool   `json:"ready"`
		} `json:"capabilities"`
	}
	get(t, d, "/meta/capabilities", &c)
	if len(c.Capabilities) != 2 || c.Capabilities[0].Name != "embedding" || c.Capabilities[0].Status != "unloaded" {
		t.Fatalf("capabilities = %+v", c)
	}
}
