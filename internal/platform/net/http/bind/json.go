package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "txdc/internal/platform/errors"
	"txdc/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// JSONOptions controls request body decoding
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSONOptions caps bodies at 1MB and rejects unknown fields and empty bodies
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// seam for the trailing data check
var jsonMore = func(dec *json.Decoder) bool { return dec.More() }

// ParseJSON decodes one JSON value into T and validates it
// a body over MaxBytes, or over an upstream http.MaxBytesReader, is ErrorCodeTooLarge;
// an empty body is tolerated for GET, HEAD and OPTIONS
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var dst T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("closing request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	}
	br := bufio.NewReader(body)
	if _, err := br.Peek(1); err != nil && !o.AllowEmptyBody {
		if tooLarge(err) != nil {
			return dst, tooLarge(err)
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return dst, nil
		}
		return dst, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		if e := tooLarge(err); e != nil {
			return dst, e
		}
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, check(r, dst)
}

// check runs struct validation and maps the first failure to a field error
func check(r *http.Request, v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
}

func tooLarge(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return perr.TooLargef("request body exceeds %d bytes", mbe.Limit)
	}
	return nil
}
