package logger

import "context"

type ctxKey uint8

const (
	keyRequestID ctxKey = iota
	keyLocale
)

// WithRequest annotates ctx with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithLocale annotates ctx with the locale profile serving the request
func WithLocale(ctx context.Context, locale string) context.Context {
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, keyLocale, locale)
}

// C returns a child logger carrying request_id and locale from ctx
func C(ctx context.Context) *Logger {
	b := Get().With()
	if s, _ := ctx.Value(keyRequestID).(string); s != "" {
		b = b.Str("request_id", s)
	}
	if s, _ := ctx.Value(keyLocale).(string); s != "" {
		b = b.Str("locale", s)
	}
	l := b.Logger()
	return &l
}
