// Package http provides http transport for questions
package http

import (
	stdhttp "net/http"

	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/services/questions/domain"
)

// Register mounts question endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/domains", h.domains)
	httpkit.PostJSON[domain.GenerateInput](r, "/generate", h.generate)
	httpkit.PostJSON[domain.NextInput](r, "/next", h.next)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Supported interview domains
// @Tags Questions
// @Produce json
// @Success 200 {object} domain.DomainsOutput "ok"
// @Router /questions/domains [get]
func (h *handlers) domains(_ *stdhttp.Request) (any, error) {
	return h.svc.Domains(), nil
}

// @Summary Generate an opening question
// @Description Uses the generation model when ready, a template otherwise
// @Tags Questions
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Domain and level"
// @Success 200 {object} domain.Question "ok"
// @Router /questions/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.svc.Generate(r.Context(), in)
}

// @Summary Follow-up question
// @Tags Questions
// @Accept json
// @Produce json
// @Param payload body domain.NextInput true "Domain, level and previous answers"
// @Success 200 {object} domain.Question "ok"
// @Router /questions/next [post]
func (h *handlers) next(r *stdhttp.Request, in domain.NextInput) (any, error) {
	return h.svc.Next(r.Context(), in)
}
