// Package service evaluates interview answers and transcribes recorded audio
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	adomain "interviewcoach/internal/services/analytics/domain"
	"interviewcoach/internal/services/evaluation/domain"
)

// Service is the evaluation contract
type Service interface {
	domain.ServicePort
}

// Options bounds transcription
type Options struct {
	TranscribeTimeout time.Duration
	DefaultMime       string
}

// Deps are the collaborators of Svc. Sessions, Sink and Transcriber may be nil
type Deps struct {
	Evaluator   *scoring.Evaluator
	Caps        *capability.Registry
	Sessions    domain.SessionLog
	Sink        adomain.Sink
	Transcriber capability.Transcriber
}

// Svc implements Service
type Svc struct {
	d   Deps
	opt Options
}

// New wires the service
func New(d Deps, opt Options) *Svc {
	if d.Evaluator == nil || d.Evaluator.Comm == nil || d.Evaluator.Tech == nil {
		panic("evaluation service requires an evaluator")
	}
	if d.Caps == nil {
		panic("evaluation service requires a capability registry")
	}
	if opt.TranscribeTimeout <= 0 {
		opt.TranscribeTimeout = 30 * time.Second
	}
	if opt.DefaultMime == "" {
		opt.DefaultMime = "audio/webm"
	}
	return &Svc{d: d, opt: opt}
}

// Evaluate scores the answer. With a session id the session must exist, its
// domain fills an empty input domain and the turn is appended to its history
func (s *Svc) Evaluate(ctx context.Context, in domain.EvaluateInput) (domain.EvaluateOutput, error) {
	d := lexicon.NormalizeDomain(in.Domain)

	var sid uuid.UUID
	if in.SessionID != "" {
		if s.d.Sessions == nil {
			return domain.EvaluateOutput{}, perr.Unavailablef("sessions are not enabled")
		}
		id, err := uuid.Parse(in.SessionID)
		if err != nil {
			return domain.EvaluateOutput{}, perr.WithField(perr.InvalidArgf("session id must be a uuid"), "session_id")
		}
		sess, err := s.d.Sessions.Get(ctx, id)
		if err != nil {
			return domain.EvaluateOutput{}, err
		}
		if strings.TrimSpace(in.Domain) == "" {
			d = sess.Domain
		}
		sid = id
		ctx = logger.WithSession(ctx, id.String())
	}

	fb := s.d.Evaluator.EvaluateTurn(ctx, in.Question, in.Transcript, d)
	out := domain.EvaluateOutput{TurnFeedback: fb}

	if sid != uuid.Nil {
		sess, err := s.d.Sessions.AppendTurn(ctx, sid, fb)
		if err != nil {
			return domain.EvaluateOutput{}, err
		}
		out.SessionID = sid.String()
		out.TurnsRecorded = len(sess.History)
	}

	if s.d.Sink != nil {
		s.d.Sink.Record(ctx, adomain.TurnEvent{
			At:            fb.Timestamp,
			SessionID:     out.SessionID,
			Domain:        string(fb.Domain),
			Overall:       fb.OverallScore,
			Communication: fb.Communication.Score,
			Technical:     fb.Technical.Score,
			Clarity:       fb.Communication.ClarityScore,
			Fillers:       fb.Communication.FillerWordsCount,
			Degraded:      len(fb.Degraded) > 0,
		})
	}

	logger.C(ctx).Debug().
		Str("domain", string(d)).
		Float64("overall", fb.OverallScore).
		Strs("degraded", fb.Degraded).
		Msg("turn evaluated")
	return out, nil
}

// Communication scores only the delivery of a transcript
func (s *Svc) Communication(ctx context.Context, in domain.CommunicationInput) (scoring.CommunicationResult, error) {
	out := s.d.Evaluator.Comm.Score(in.Transcript)
	if out.IsDegraded() {
		logger.C(ctx).Warn().Str("reason", out.Reason).Msg("communication score degraded")
	}
	return out.Value, nil
}

// Transcribe turns a recorded answer into text
func (s *Svc) Transcribe(ctx context.Context, audio []byte, mimeType string) (domain.TranscriptOutput, error) {
	if s.d.Transcriber == nil {
		return domain.TranscriptOutput{}, perr.Unavailablef("transcription is not configured")
	}
	if len(audio) == 0 {
		return domain.TranscriptOutput{}, perr.WithField(perr.InvalidArgf("audio is empty"), "audio_file")
	}
	if mimeType == "" {
		mimeType = s.opt.DefaultMime
	}

	tctx, cancel := context.WithTimeout(ctx, s.opt.TranscribeTimeout)
	defer cancel()

	text, err := s.d.Transcriber.Transcribe(tctx, audio, mimeType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.TranscriptOutput{}, capability.Fail(capability.ErrTranscription, err)
		}
		return domain.TranscriptOutput{}, err
	}
	return domain.TranscriptOutput{Transcript: strings.TrimSpace(text)}, nil
}

// TranscribeChunk decodes one live chunk. A chunk that cannot be transcribed
// yields empty text so the recorder keeps streaming
func (s *Svc) TranscribeChunk(ctx context.Context, in domain.ChunkInput) (domain.ChunkOutput, error) {
	audio, err := DecodeAudio(in.AudioData)
	if err != nil {
		return domain.ChunkOutput{}, perr.WithField(perr.InvalidArgf("audio data must be base64"), "audio_data")
	}

	out := domain.ChunkOutput{Type: "transcript"}
	res, err := s.Transcribe(ctx, audio, in.MimeType)
	switch {
	case err == nil:
		out.Text = res.Transcript
	case perr.IsCode(err, perr.ErrorCodeUnavailable):
		return domain.ChunkOutput{}, err
	default:
		logger.C(ctx).Warn().Err(err).Int("bytes", len(audio)).Msg("chunk transcription failed")
	}
	return out, nil
}

// Capability reports one gate. Unknown names are not found
func (s *Svc) Capability(_ context.Context, name string) (capability.State, error) {
	for _, st := range s.d.Caps.Snapshot() {
		if st.Name == name {
			return st, nil
		}
	}
	return capability.State{}, perr.NotFoundf("capability %q not found", name)
}

// DecodeAudio accepts standard or url safe base64, with or without padding
// and with an optional data url prefix
func DecodeAudio(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, errors.New("data url without payload")
		}
		s = s[i+1:]
	}
	if s == "" {
		return nil, errors.New("empty payload")
	}
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, errors.New("invalid base64")
}
