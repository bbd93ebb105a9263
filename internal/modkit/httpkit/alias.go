// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "txdc/internal/platform/net/http"
	"txdc/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// JSONOptions tunes request body decoding
	JSONOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// BodyLimit returns decode options capped at n bytes; n <= 0 keeps the bind default
func BodyLimit(n int64) JSONOptions {
	o := bind.DefaultJSONOptions()
	if n > 0 {
		o.MaxBytes = n
	}
	return o
}

// JSON decodes and validates a T from the body, then calls fn
// a Response returned by fn is written as is, anything else is wrapped in OK
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return phttp.Error(err)
		}
		return result(fn(r, in))
	})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

func result(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}
