package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	pnet "interviewcoach/internal/platform/net"
	phttp "interviewcoach/internal/platform/net/http"
)

// panicResponse is the envelope every recovered panic produces
var panicResponse = phttp.Handle(func(*http.Request) phttp.Response {
	return phttp.Error(perr.PanicErrf("panic recovered"))
})

// RecoverJSON converts a handler panic into a 500 envelope and logs the stack.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if id := pnet.RequestID(r.Context()); id != "" {
				w.Header().Set("X-Request-ID", id)
			}
			panicResponse(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}
