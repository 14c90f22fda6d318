// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/version"
	"interviewcoach/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies. PG and CH are nil when not configured
type Deps struct {
	ServiceName  string
	StartedAt    time.Time
	PG           any
	CH           any
	Capabilities *capability.Registry
	PingTimeout  time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.PingTimeout <= 0 {
		d.PingTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/capabilities", h.capabilities)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"coach-api"`
	Started string `json:"started" example:"2026-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown loading
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// CapabilitiesResponse lists capability gates
type CapabilitiesResponse struct {
	Capabilities []capability.State `json:"capabilities"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Readiness with store and capability checks
// @Description Stores that are not configured are skipped; a capability that
// @Description is not ready degrades the service since scoring falls back to neutral
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.PingTimeout)
	defer cancel()

	checks := []ReadyCheck{ping(ctx, "pg", h.deps.PG), ping(ctx, "ch", h.deps.CH)}
	if h.deps.Capabilities != nil {
		for _, st := range h.deps.Capabilities.Snapshot() {
			c := ReadyCheck{Name: st.Name, Status: "ok"}
			switch st.Status {
			case capability.Ready:
			case capability.Failed:
				c.Status = "fail"
			default:
				c.Status = st.Status.String()
			}
			checks = append(checks, c)
		}
	}

	return ReadyResponse{
		Status: overall(checks),
		Checks: checks,
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

func ping(ctx stdctx.Context, name string, c any) ReadyCheck {
	if c == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := c.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// overall fails only when a configured store is down. Skipped stores are
// fine and a capability problem only degrades
func overall(checks []ReadyCheck) string {
	status := "ok"
	for _, c := range checks {
		switch {
		case c.Status == "ok", c.Status == "skipped":
		case c.Status == "fail" && (c.Name == "pg" || c.Name == "ch"):
			return "fail"
		default:
			status = "degraded"
		}
	}
	return status
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Capability gate snapshot
// @Tags Meta
// @Produce json
// @Success 200 {object} CapabilitiesResponse "ok"
// @Router /meta/capabilities [get]
func (h *handlers) capabilities(_ *http.Request) (any, error) {
	out := CapabilitiesResponse{Capabilities: []capability.State{}}
	if h.deps.Capabilities != nil {
		out.Capabilities = h.deps.Capabilities.Snapshot()
	}
	return out, nil
}
