// Package logger provides a zerolog wrapper with opinionated defaults and
// request-scoped logging support
package logger

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"txdc/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer // stderr when nil
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the logger-free raw config view
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "info")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", ""),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Get returns the root logger, initializing it from env on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Init builds the root logger; only the first call has an effect
func Init(opt Options) {
	once.Do(func() { root.Store(build(opt)) })
}

func build(opt Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	fields := map[string]string{"service": opt.Service, "component": opt.Component}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields["go_version"] = bi.GoVersion
	}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	for k, v := range fields {
		if v != "" {
			ctx = ctx.Str(k, v)
		}
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return &l
}

// parseLevel accepts zerolog names plus warning and off; anything else is info
func parseLevel(s string) zerolog.Level {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	case "", "nolevel":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
