// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"
	"strconv"

	"interviewcoach/internal/modkit/httpkit"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/services/analytics/domain"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/domains", h.domains)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Score aggregates per domain
// @Description Averages of recorded turns over the last days (default 30)
// @Tags Analytics
// @Produce json
// @Param days query int false "Window in days"
// @Success 200 {object} domain.DomainsOutput "ok"
// @Router /analytics/domains [get]
func (h *handlers) domains(r *stdhttp.Request) (any, error) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, perr.WithField(perr.InvalidArgf("days must be a non negative integer"), "days")
		}
		days = n
	}
	return h.svc.ByDomain(r.Context(), days)
}
