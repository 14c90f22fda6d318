// Package http provides http transport for sessions
package http

import (
	stdhttp "net/http"

	"github.com/google/uuid"

	"interviewcoach/internal/modkit/httpkit"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/services/sessions/domain"
	svc "interviewcoach/internal/services/sessions/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.StartInput](r, "/start", h.start)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Post(r, "/{id}/next", h.next)
}

type handlers struct{ svc svc.Service }

// @Summary Start an interview session
// @Description Creates a session and generates its first question
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body domain.StartInput true "Domain and level"
// @Success 201 {object} domain.StartOutput "created"
// @Router /sessions/start [post]
func (h *handlers) start(r *stdhttp.Request, in domain.StartInput) (any, error) {
	out, err := h.svc.Start(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Ask the next question of a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.NextOutput "ok"
// @Router /sessions/{id}/next [post]
func (h *handlers) next(r *stdhttp.Request) (any, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Next(r.Context(), id)
}

func sessionID(r *stdhttp.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(httpkit.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("session id must be a uuid"), "id")
	}
	return id, nil
}
