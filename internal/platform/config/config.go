// Package config handles application configuration via environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"txdc/internal/platform/logger"

	"golang.org/x/text/language"
)

// Conf is a namespaced view over environment variables (e.g. "TXDC_API_", "TXDC_CLEAN_")
// Use New() for global access, or Prefix("TXDC_") for module scopes
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

// parsed reads key through parse; missing values give def, bad values warn and give def
func parsed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("invalid value; using default")
		return def
	}
	return v
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	return parsed(c, key, def, func(s string) (string, error) { return s, nil })
}

// MayInt64 reads a non-negative size or counter
func (c Conf) MayInt64(key string, def int64) int64 {
	return parsed(c, key, def, func(s string) (int64, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil && n < 0 {
			err = strconv.ErrRange
		}
		return n, err
	})
}

// MayBool reads a strconv.ParseBool value
func (c Conf) MayBool(key string, def bool) bool { return parsed(c, key, def, strconv.ParseBool) }

// MayDuration reads a time.ParseDuration value such as 15s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated list, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayPort returns a net/http addr like ":4000" from "4000", ":4000" or "host:4000"
// port 0 asks the kernel for a free port; anything outside 0..65535 panics
func (c Conf) MayPort(key, def string) string {
	s := c.MayString(key, def)
	host, port := "", s
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		host, port = s[:i], s[i+1:]
	}
	if p, err := strconv.Atoi(port); err != nil || p < 0 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 0..65535")
	}
	return host + ":" + port
}

// MayEnum returns the lower cased allowed value matching key, def when unset; panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayTag parses a BCP 47 language tag; panics on a malformed tag
func (c Conf) MayTag(key string, def language.Tag) language.Tag {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	t, err := language.Parse(s)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", c.key(key)).Str("value", s).Msg("invalid language tag")
	}
	return t
}
