// Package bind decodes and validates JSON request bodies into typed inputs
package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// JSONOptions tunes ParseJSON. The zero value means no size cap and unknown fields allowed.
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSONOptions caps bodies at 1 MiB and rejects unknown fields
var DefaultJSONOptions = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON decodes the body into T and validates it.
// Decode problems are ErrorCodeJSON; a broken rule is ErrorCodeValidation tagged with the json field.
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst T
	o := DefaultJSONOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	var src io.Reader = r.Body
	if o.MaxBytes > 0 {
		src = io.LimitReader(src, o.MaxBytes)
	}
	br := bufio.NewReader(src)

	if _, err := br.Peek(1); err != nil {
		if !o.AllowEmptyBody {
			return dst, perr.JSONErrf("empty body")
		}
	} else if err := decode(br, &dst, o.DisallowUnknown); err != nil {
		return dst, err
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator misuse")
			return dst, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return dst, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

func decode(r io.Reader, dst any, strict bool) error {
	dec := json.NewDecoder(r)
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return perr.JSONErrf("unexpected trailing data")
	}
	return nil
}
