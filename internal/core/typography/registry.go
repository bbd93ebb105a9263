package typography

import (
	"sort"
	"strings"
	"sync"

	perr "txdc/internal/platform/errors"

	"golang.org/x/text/language"
)

// Registry resolves locale tags to profiles
// Safe for concurrent use
type Registry struct {
	mu       sync.RWMutex
	profiles []*Profile
	byName   map[string]*Profile
	matcher  language.Matcher
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Profile)}
}

// Builtin returns a registry holding the profiles shipped with the module
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(French())
	return r
}

// Register adds p, replacing any profile with the same name or tag
func (r *Registry) Register(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.profiles[:0]
	for _, old := range r.profiles {
		if old.name == p.name || old.tag == p.tag {
			delete(r.byName, strings.ToLower(old.name))
			continue
		}
		kept = append(kept, old)
	}
	r.profiles = append(kept, p)
	r.byName[strings.ToLower(p.name)] = p

	tags := make([]language.Tag, len(r.profiles))
	for i, q := range r.profiles {
		tags[i] = q.tag
	}
	r.matcher = language.NewMatcher(tags)
}

// Lookup finds a profile by name or by the closest matching BCP 47 tag
func (r *Registry) Lookup(s string) (*Profile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, perr.InvalidArgf("empty locale")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byName[strings.ToLower(s)]; ok {
		return p, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid locale %q", s)
	}
	if len(r.profiles) == 0 {
		return nil, perr.NotFoundf("no typography profile for %q", s)
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return nil, perr.NotFoundf("no typography profile for %q", s)
	}
	return r.profiles[idx], nil
}

// Profiles returns the registered profiles sorted by name
func (r *Registry) Profiles() []*Profile {
	r.mu.RLock()
	out := append([]*Profile(nil), r.profiles...)
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
