package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"txdc/internal/core/normalize"
	"txdc/internal/core/typography"
	phttp "txdc/internal/platform/net/http"
	"txdc/internal/services/api/clean/service"

	"github.com/go-chi/chi/v5"
)

func newRouter(maxBytes int64) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, service.New(typography.Builtin(), service.Defaults{Form: normalize.FormNFKC}), maxBytes)
	return r.Mux()
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) (int, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, rr.Body.String())
	}
	return rr.Code, env
}

func TestHandlers(t *testing.T) {
	h := newRouter(0)
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
		want   string
	}{
		{"trim", stdhttp.MethodPost, "/trim", `{"text":"  salut  "}`, 200, `{"text":"salut"}`},
		{"clean", stdhttp.MethodPost, "/clean", `{"text":"voici:la suite","locale":"fr-FR"}`, 200, `"text":"voici : la suite"`},
		{"clean stages", stdhttp.MethodPost, "/clean", `{"text":"x","form":"none","typography":false}`, 200, `"stages":["substitute:french","strip-control","whitespace"]`},
		{"typography", stdhttp.MethodPost, "/typography", `{"text":"« oui »"}`, 200, `{"text":"\" oui \""}`},
		{"profiles", stdhttp.MethodGet, "/profiles", ``, 200, `"name":"french"`},
		{"bad form", stdhttp.MethodPost, "/clean", `{"text":"x","form":"nfx"}`, 400, ""},
		{"bad locale tag", stdhttp.MethodPost, "/clean", `{"text":"x","locale":"not a tag"}`, 400, ""},
		{"unknown locale", stdhttp.MethodPost, "/typography", `{"text":"x","locale":"ja"}`, 404, ""},
		{"unknown field", stdhttp.MethodPost, "/trim", `{"txt":"x"}`, 400, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, env := do(t, h, c.method, c.path, c.body)
			if code != c.code || env.StatusCode != c.code {
				t.Fatalf("status = %d (envelope %d), want %d: %+v", code, env.StatusCode, c.code, env)
			}
			if c.want == "" {
				if env.Error == "" {
					t.Fatalf("expected an error message, got %+v", env)
				}
				return
			}
			data, _ := json.Marshal(env.Data)
			if !strings.Contains(string(data), c.want) {
				t.Fatalf("data %s missing %s", data, c.want)
			}
		})
	}
}

func TestHandlers_BodyLimit(t *testing.T) {
	h := newRouter(16)
	code, env := do(t, h, stdhttp.MethodPost, "/clean", `{"text":"`+strings.Repeat("a", 64)+`"}`)
	if code != stdhttp.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %+v", code, env)
	}
}

func TestHandlers_ValidationField(t *testing.T) {
	_, env := do(t, newRouter(0), stdhttp.MethodPost, "/clean", `{"text":"x","form":"nfx"}`)
	if env.Field != "form" {
		t.Fatalf("expected field=form, got %+v", env)
	}
}
