package logger

import "context"

type ctxField string

// fields C copies from the context, in output order
var ctxFields = []ctxField{"request_id", "session_id"}

func with(ctx context.Context, k ctxField, v string) context.Context {
	if v == "" {
		return ctx
	}
	return context.WithValue(ctx, k, v)
}

// WithRequest stores the request id for C
func WithRequest(ctx context.Context, id string) context.Context { return with(ctx, "request_id", id) }

// WithSession stores the interview session id for C
func WithSession(ctx context.Context, id string) context.Context { return with(ctx, "session_id", id) }

// C is the root logger plus whatever ids ctx carries
func C(ctx context.Context) *Logger {
	wc := Get().With()
	for _, k := range ctxFields {
		if v, _ := ctx.Value(k).(string); v != "" {
			wc = wc.Str(string(k), v)
		}
	}
	l := wc.Logger()
	return &l
}

// Named is the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
