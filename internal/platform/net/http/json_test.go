package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "txdc/internal/platform/errors"
	phttp "txdc/internal/platform/net/http"
	"txdc/internal/platform/net/http/bind"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

type echoOut struct {
	Text string `json:"text"`
	Len  int    `json:"len"`
}

func newRouter() phttp.Router {
	return phttp.AdaptChi(chi.NewRouter())
}

func TestPostJSON_RoundTrip(t *testing.T) {
	r := newRouter()
	phttp.PostJSON(r, "/echo", func(_ *http.Request, in echoIn) (any, error) {
		return echoOut{Text: strings.ToUpper(in.Text), Len: len(in.Text)}, nil
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/echo", strings.NewReader(`{"text":"abc"}`)))
	if rec.Code != 200 {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data echoOut `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data != (echoOut{Text: "ABC", Len: 3}) {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestPostJSON_Errors(t *testing.T) {
	r := newRouter()
	phttp.PostJSON(r, "/echo", func(_ *http.Request, in echoIn) (any, error) {
		if in.Text == "fail" {
			return nil, perr.Unsupportedf("cannot serve %q", in.Text)
		}
		return in, nil
	}, bind.JSONOptions{MaxBytes: 32, DisallowUnknown: true})

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"empty body", ``, 400},
		{"validation", `{}`, 400},
		{"unknown field", `{"text":"a","x":1}`, 400},
		{"too large", `{"text":"` + strings.Repeat("a", 64) + `"}`, 413},
		{"handler error", `{"text":"fail"}`, 501},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest("POST", "/echo", strings.NewReader(c.body)))
			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, c.status, rec.Body.String())
			}
		})
	}
}

func TestGetJSON(t *testing.T) {
	r := newRouter()
	phttp.GetJSON(r, "/ok", func(*http.Request) (any, error) { return []string{"fr"}, nil })
	phttp.GetJSON(r, "/err", func(*http.Request) (any, error) { return nil, errors.New("boom") })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ok", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"data":["fr"]`) {
		t.Fatalf("GET /ok = %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/err", nil))
	if rec.Code != 500 {
		t.Fatalf("GET /err = %d", rec.Code)
	}
}
