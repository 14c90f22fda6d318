package capability

import (
	"fmt"

	perr "interviewcoach/internal/platform/errors"
)

// Port failures surfaced by inference adapters. Wrap them with Fail so callers
// can match with errors.Is and the transport maps them to a status code
var (
	ErrEmbeddingUnavailable  = perr.New(perr.ErrorCodeUnavailable, "embedding unavailable")
	ErrGenerationUnavailable = perr.New(perr.ErrorCodeUnavailable, "text generation unavailable")
	ErrTranscription         = perr.New(perr.ErrorCodeInvalidArgument, "audio could not be transcribed")
)

// Fail wraps cause under one of the port sentinels
func Fail(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}
