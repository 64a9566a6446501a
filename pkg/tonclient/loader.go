package tonclient

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient/logging"
)

// Opener maps a module file into the process. A bare file name goes through
// the platform search path; anything else is opened as given.
type Opener func(path string) (Native, error)

// Strategy is one way of making a candidate module callable. Errors should
// match ErrModuleNotFound or ErrPermission when the failure has that class.
type Strategy interface {
	Name() string
	Load(candidate string) (path string, module Native, err error)
}

// StandardPath opens the platform file name of a candidate, first from each
// of Dirs and then through the platform search path.
type StandardPath struct {
	OS     string
	Dirs   []string
	Opener Opener
}

func (s StandardPath) Name() string { return "standard-path" }

func (s StandardPath) Load(candidate string) (string, Native, error) {
	name := LibraryFileName(osOrHost(s.OS), candidate)
	open := openerOrDefault(s.Opener)

	var errs []error
	for _, dir := range s.Dirs {
		path := filepath.Join(dir, name)
		mod, err := open(path)
		if err == nil {
			return path, mod, nil
		}
		if errors.Is(err, ErrPermission) {
			return path, nil, err
		}
		errs = append(errs, err)
	}
	mod, err := open(name)
	if err != nil {
		return name, nil, errors.Join(append(errs, err)...)
	}
	return name, mod, nil
}

// Extract copies the resource "<candidate><suffix>" out of Bundle into
// TempDir and opens it by absolute path. A previous copy is replaced by
// rename, never rewritten in place, so processes that mapped it keep working.
type Extract struct {
	OS      string
	Bundle  fs.FS
	TempDir string
	Opener  Opener
}

func (e Extract) Name() string { return "extract" }

func (e Extract) Load(candidate string) (string, Native, error) {
	name := ResourceName(osOrHost(e.OS), candidate)
	if e.Bundle == nil {
		return "", nil, fmt.Errorf("%w: %s: no bundle configured", ErrResourceMissing, name)
	}

	data, err := fs.ReadFile(e.Bundle, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: %s", ErrResourceMissing, name)
		}
		return "", nil, fmt.Errorf("read bundled %s: %w", name, err)
	}

	dir := e.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", nil, fmt.Errorf("resolve extraction path: %w", err)
	}
	if err := replaceFile(path, data); err != nil {
		return path, nil, fmt.Errorf("extract %s: %w", name, err)
	}

	mod, err := openerOrDefault(e.Opener)(path)
	if err != nil {
		return path, nil, err
	}
	return path, mod, nil
}

// replaceFile writes data next to path and renames it over path.
func replaceFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// #nosec G302 -- the extracted module has to be mappable as executable code
	if err := os.Chmod(tmp, 0o755); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Config controls how a Loader finds the native module.
type Config struct {
	// Candidates are module base names tried in order. Empty means
	// DefaultCandidates.
	Candidates []string

	// Strategies replaces the default StandardPath then Extract sequence.
	// When set, SearchDirs, Bundle, TempDir and Opener are ignored.
	Strategies []Strategy

	// SearchDirs are checked before the platform search path.
	SearchDirs []string

	// Bundle holds fallback module resources named "<candidate><suffix>",
	// typically an embed.FS compiled into the calling binary.
	Bundle fs.FS

	// TempDir receives extracted modules. Empty means os.TempDir().
	TempDir string

	// OS overrides the host operating system for file naming. Empty means
	// runtime.GOOS.
	OS string

	// Opener overrides the dynamic loader. Nil means OpenLibrary.
	Opener Opener

	// Logger receives one record per load attempt and is handed on to the
	// bridge. Nil means logging.New(nil).
	Logger logging.Logger
}

func (c Config) candidates() []string {
	if len(c.Candidates) == 0 {
		return DefaultCandidates
	}
	return c.Candidates
}

func (c Config) strategies() []Strategy {
	if len(c.Strategies) > 0 {
		return c.Strategies
	}
	return []Strategy{
		StandardPath{OS: c.OS, Dirs: c.SearchDirs, Opener: c.Opener},
		Extract{OS: c.OS, Bundle: c.Bundle, TempDir: c.TempDir, Opener: c.Opener},
	}
}

// LoadResult describes the module a Loader settled on and every attempt made
// on the way.
type LoadResult struct {
	Module    Native
	Candidate string
	Strategy  string
	Path      string
	Outcomes  []Outcome
}

// Loader resolves the native module once. Every later call to Load or
// Bridge returns the result of the first run.
type Loader struct {
	cfg  Config
	base logging.Logger
	log  logging.Logger

	once   sync.Once
	result *LoadResult
	bridge *Bridge
	err    error
}

func NewLoader(cfg Config) *Loader {
	log := cfg.Logger
	if log == nil {
		log = logging.New(nil)
	}
	return &Loader{cfg: cfg, base: log, log: log.With("component", "loader")}
}

// Load evaluates every strategy for each candidate until one succeeds. A
// permission-class failure, or a build without native bindings, ends the
// attempts for that candidate. When no candidate loads the error is a
// *LoadError.
func (l *Loader) Load(ctx context.Context) (*LoadResult, error) {
	l.once.Do(func() {
		l.result, l.err = l.load(ctx)
		if l.err == nil {
			l.bridge = NewBridge(l.result.Module, l.base)
		}
	})
	return l.result, l.err
}

func (l *Loader) load(ctx context.Context) (*LoadResult, error) {
	candidates := l.cfg.candidates()
	strategies := l.cfg.strategies()
	var outcomes []Outcome

	for i, candidate := range candidates {
		for _, s := range strategies {
			path, mod, err := s.Load(candidate)
			outcomes = append(outcomes, Outcome{Candidate: candidate, Strategy: s.Name(), Path: path, Err: err})
			if err == nil {
				l.log.Info(ctx, "loaded native module", "candidate", candidate, "strategy", s.Name(), "path", path)
				for _, rest := range candidates[i+1:] {
					outcomes = append(outcomes, Outcome{Candidate: rest, Err: errSkipped})
				}
				return &LoadResult{
					Module:    mod,
					Candidate: candidate,
					Strategy:  s.Name(),
					Path:      path,
					Outcomes:  outcomes,
				}, nil
			}
			l.log.Warn(ctx, "native module load failed", "candidate", candidate, "strategy", s.Name(), "path", path, "error", err)
			if errors.Is(err, ErrPermission) || errors.Is(err, ErrNotBuilt) {
				break
			}
		}
	}

	err := &LoadError{Outcomes: outcomes}
	l.log.Error(ctx, "no native module could be loaded", "candidates", candidates, "attempts", len(outcomes))
	return nil, err
}

// Bridge returns the bridge over the loaded module, loading it first if
// needed. Repeated calls return the same *Bridge.
func (l *Loader) Bridge(ctx context.Context) (*Bridge, error) {
	if _, err := l.Load(ctx); err != nil {
		return nil, err
	}
	return l.bridge, nil
}

var (
	processOnce   sync.Once
	processLoader *Loader
)

// Open loads the native module once per process and returns the bridge over
// it. The first call decides the Config; later calls ignore theirs and return
// the first result, the same *Bridge or the same error. Use NewLoader for
// independently configured loaders.
func Open(ctx context.Context, cfg Config) (*Bridge, error) {
	processOnce.Do(func() {
		processLoader = NewLoader(cfg)
	})
	return processLoader.Bridge(ctx)
}

func osOrHost(id string) string {
	if id == "" {
		return runtime.GOOS
	}
	return id
}

func openerOrDefault(o Opener) Opener {
	if o == nil {
		return OpenLibrary
	}
	return o
}
