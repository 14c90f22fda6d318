// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"

	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/services/reports/domain"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.GenerateInput](r, "/generate", h.generate)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Generate an improvement report
// @Description From a stored session or an inline history
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Session or history"
// @Success 200 {object} report.Report "ok"
// @Router /reports/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.svc.Generate(r.Context(), in)
}
