// Package http provides http transport for answer evaluation and transcription
package http

import (
	"errors"
	"io"
	stdhttp "net/http"

	"interviewcoach/internal/modkit/httpkit"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/services/evaluation/domain"
)

// DefaultMaxAudio caps an uploaded answer recording
const DefaultMaxAudio int64 = 25 << 20

// Register mounts evaluation endpoints on the given router.
// maxAudio caps multipart uploads; zero uses DefaultMaxAudio
func Register(r httpkit.Router, s domain.ServicePort, maxAudio int64) {
	if maxAudio <= 0 {
		maxAudio = DefaultMaxAudio
	}
	h := &handlers{svc: s, maxAudio: maxAudio}

	httpkit.PostJSON[domain.EvaluateInput](r, "/evaluate", h.evaluate)
	httpkit.PostJSON[domain.CommunicationInput](r, "/communication", h.communication)
	httpkit.Post(r, "/transcribe", h.transcribe)
	httpkit.PostJSON[domain.ChunkInput](r, "/transcribe-chunk", h.chunk)
	httpkit.Get(r, "/capabilities/{name}", h.capability)
}

type handlers struct {
	svc      domain.ServicePort
	maxAudio int64
}

// @Summary Evaluate an answer
// @Description Scores communication and technical quality; appends to the session when session_id is set
// @Tags Interview
// @Accept json
// @Produce json
// @Param payload body domain.EvaluateInput true "Question and transcript"
// @Success 200 {object} domain.EvaluateOutput "ok"
// @Router /interview/evaluate [post]
func (h *handlers) evaluate(r *stdhttp.Request, in domain.EvaluateInput) (any, error) {
	return h.svc.Evaluate(r.Context(), in)
}

// @Summary Score communication only
// @Tags Interview
// @Accept json
// @Produce json
// @Param payload body domain.CommunicationInput true "Transcript"
// @Success 200 {object} scoring.CommunicationResult "ok"
// @Router /interview/communication [post]
func (h *handlers) communication(r *stdhttp.Request, in domain.CommunicationInput) (any, error) {
	return h.svc.Communication(r.Context(), in)
}

// @Summary Transcribe a recorded answer
// @Tags Interview
// @Accept mpfd
// @Produce json
// @Param audio_file formData file true "Recording"
// @Success 200 {object} domain.TranscriptOutput "ok"
// @Router /interview/transcribe [post]
func (h *handlers) transcribe(r *stdhttp.Request) (any, error) {
	r.Body = stdhttp.MaxBytesReader(nil, r.Body, h.maxAudio+1<<20)
	if err := r.ParseMultipartForm(h.maxAudio); err != nil {
		var tooBig *stdhttp.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, perr.WithField(perr.InvalidArgf("audio must be at most %d bytes", h.maxAudio), "audio_file")
		}
		return nil, perr.WithField(perr.InvalidArgf("expected a multipart form"), "audio_file")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, hdr, err := r.FormFile("audio_file")
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("audio_file is required"), "audio_file")
	}
	defer func() { _ = f.Close() }()

	if hdr.Size > h.maxAudio {
		return nil, perr.WithField(perr.InvalidArgf("audio must be at most %d bytes", h.maxAudio), "audio_file")
	}
	audio, err := io.ReadAll(f)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read audio")
	}
	return h.svc.Transcribe(r.Context(), audio, hdr.Header.Get("Content-Type"))
}

// @Summary Transcribe a live audio chunk
// @Description Empty text when the chunk cannot be transcribed
// @Tags Interview
// @Accept json
// @Produce json
// @Param payload body domain.ChunkInput true "Base64 audio"
// @Success 200 {object} domain.ChunkOutput "ok"
// @Router /interview/transcribe-chunk [post]
func (h *handlers) chunk(r *stdhttp.Request, in domain.ChunkInput) (any, error) {
	return h.svc.TranscribeChunk(r.Context(), in)
}

// @Summary Capability readiness
// @Tags Interview
// @Produce json
// @Param name path string true "embedding or generation"
// @Success 200 {object} capability.State "ok"
// @Router /interview/capabilities/{name} [get]
func (h *handlers) capability(r *stdhttp.Request) (any, error) {
	return h.svc.Capability(r.Context(), httpkit.URLParam(r, "name"))
}
