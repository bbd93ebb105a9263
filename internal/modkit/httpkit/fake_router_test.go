package httpkit

import (
	"net/http"

	phttp "txdc/internal/platform/net/http"
)

type call struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records every registration and passes itself as the subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	calls     []call
}

func (f *fakeRouter) Get(path string, h phttp.Handler)  { f.Method(http.MethodGet, path, h) }
func (f *fakeRouter) Post(path string, h phttp.Handler) { f.Method(http.MethodPost, path, h) }

func (f *fakeRouter) Method(m, path string, h phttp.Handler) {
	f.calls = append(f.calls, call{verb: m, path: path, ph: h})
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.calls = append(f.calls, call{verb: "HANDLE", path: path, h: h})
}

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) NotFound(phttp.Handler)         {}
func (f *fakeRouter) MethodNotAllowed(phttp.Handler) {}
func (f *fakeRouter) Mux() http.Handler              { return http.NewServeMux() }

var _ Router = (*fakeRouter)(nil)
