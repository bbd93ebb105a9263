package httpkit

import (
	"net/http"
	"strings"
	"testing"
)

func TestSugar_RegistersVerbs(t *testing.T) {
	r := &fakeRouter{}
	noop := func(*http.Request) (any, error) { return "ok", nil }

	Get(r, "/profiles", noop)
	Post(r, "/ping", noop)
	PostJSON(r, "/clean", func(_ *http.Request, in textIn) (any, error) { return in.Text, nil }, BodyLimit(128))

	want := []struct{ verb, path string }{
		{http.MethodGet, "/profiles"},
		{http.MethodPost, "/ping"},
		{http.MethodPost, "/clean"},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("expected %d registrations, got %d", len(want), len(r.calls))
	}
	for i, w := range want {
		if r.calls[i].verb != w.verb || r.calls[i].path != w.path || r.calls[i].ph == nil {
			t.Fatalf("call %d = %+v, want %s %s", i, r.calls[i], w.verb, w.path)
		}
	}
}

func TestPostJSON_HandlerHonorsLimit(t *testing.T) {
	r := &fakeRouter{}
	PostJSON(r, "/clean", func(_ *http.Request, in textIn) (any, error) { return in.Text, nil }, BodyLimit(8))

	code, _ := run(r.calls[0].ph, mkReq(t, http.MethodPost, strings.NewReader(`{"text":"bien trop long"}`)))
	if code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", code)
	}
}
