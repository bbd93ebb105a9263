// Package net provides transport agnostic helpers for request contexts
package net

import (
	"context"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in and out of the API
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds ids accepted from clients
const maxRequestIDLen = 128

// WithRequestID stores reqID under chi's RequestIDKey so chimw.GetReqID sees it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// NewRequestID returns a time ordered UUIDv7, falling back to v4 if the clock source fails
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// SanitizeRequestID keeps a client supplied id only when it is short printable ASCII
func SanitizeRequestID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxRequestIDLen {
		return ""
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return ""
		}
	}
	return s
}
