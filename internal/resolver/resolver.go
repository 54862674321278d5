package resolver

import (
	"os"
	"os/exec"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Source records how an executable was located.
type Source string

const (
	SourcePath     Source = "path"
	SourceFallback Source = "fallback"
)

// Result is the cached outcome of a single lookup. Found is false when the
// tool is absent from both the search path and the fallback table; that is
// the normal "not installed" case, not an error.
type Result struct {
	Path   string
	Source Source
	Found  bool
}

// Resolver locates executables by command name, first on PATH and then in
// the platform fallback directories. Outcomes are memoized for the process
// lifetime, so a tool installed mid-session keeps reporting as missing
// until restart.
type Resolver struct {
	cache map[string]Result

	goos       string
	lookPath   func(string) (string, error)
	statExists func(string) bool
	candidates map[string][]string
}

// Option adjusts resolver behaviour, used by tests to substitute the PATH
// probe, platform, and candidate table.
type Option func(*Resolver)

func WithGOOS(goos string) Option {
	return func(r *Resolver) { r.goos = goos }
}

func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Resolver) { r.lookPath = fn }
}

func WithCandidates(candidates map[string][]string) Option {
	return func(r *Resolver) { r.candidates = candidates }
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		cache:      map[string]Result{},
		goos:       runtime.GOOS,
		lookPath:   exec.LookPath,
		statExists: fileExists,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.candidates == nil {
		r.candidates = fallbackCandidates()
	}
	return r
}

// Resolve returns the absolute path for command and whether it was found.
// PATH always wins over the fallback table; the fallback table is consulted
// only on Windows. Repeated calls return the memoized first outcome.
func (r *Resolver) Resolve(command string) Result {
	if cached, ok := r.cache[command]; ok {
		return cached
	}
	result := r.probe(command)
	r.cache[command] = result
	return result
}

func (r *Resolver) probe(command string) Result {
	if path, err := r.lookPath(command); err == nil {
		return Result{Path: path, Source: SourcePath, Found: true}
	}

	if r.goos != "windows" {
		return Result{}
	}
	for _, candidate := range r.candidates[command] {
		for _, path := range r.expand(candidate) {
			if r.statExists(path) {
				return Result{Path: path, Source: SourceFallback, Found: true}
			}
		}
	}
	return Result{}
}

// expand turns a candidate entry into concrete paths. Plain entries pass
// through untouched; glob entries (versioned vendor directories) expand to
// their matches in lexical order.
func (r *Resolver) expand(candidate string) []string {
	if !hasGlobMeta(candidate) {
		return []string{candidate}
	}
	matches, err := doublestar.FilepathGlob(candidate)
	if err != nil || len(matches) == 0 {
		return nil
	}
	sort.Strings(matches)
	return matches
}

func hasGlobMeta(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
