package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mouse-blink/gitex/internal/adapter"
	m "github.com/mouse-blink/gitex/internal/model"
)

// ErrInvalidExercise is returned when an identifier does not resolve to a
// registered rule-set. It is a usage error, not a verification failure.
var ErrInvalidExercise = errors.New("wrong exercise")

// NormalizeExerciseID maps a branch-like slug to its registry key: the last
// path component with dash-separated words joined in PascalCase, so
// "refs/heads/intro-to-loops" becomes "IntroToLoops". A dash is dropped and
// the byte following it upper-cased; only ASCII letters change case.
func NormalizeExerciseID(id string) string {
	id = strings.TrimRight(id, "/")
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}

	var b strings.Builder

	b.Grow(len(id))

	for i := 0; i < len(id); i++ {
		c := id[i]
		if c == '-' {
			if i+1 < len(id) {
				i++
				b.WriteByte(upperASCII(id[i]))
			}

			continue
		}

		b.WriteByte(c)
	}

	out := b.String()
	if out == "" {
		return out
	}

	return string(upperASCII(out[0])) + out[1:]
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

// Registry maps normalized exercise names to rule-set constructors. It is
// populated at start-up and read-only afterwards.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a rule-set under name. The name must already be in its
// normalized form.
func (r *Registry) Register(name string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("nil constructor for exercise %q", name)
	}

	if name == "" || NormalizeExerciseID(name) != name {
		return fmt.Errorf("exercise name %q is not normalized", name)
	}

	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("exercise %q registered twice", name)
	}

	r.constructors[name] = ctor

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, ctor Constructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Resolve normalizes exerciseID and returns the registered name and constructor.
func (r *Registry) Resolve(exerciseID string) (string, Constructor, error) {
	name := NormalizeExerciseID(exerciseID)

	ctor, ok := r.constructors[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidExercise, exerciseID)
	}

	return name, ctor, nil
}

// Names returns the registered exercise names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Factory creates Verifications for exercise identifiers.
type Factory interface {
	Create(exerciseID string, oldRev, newRev m.Revision) (*Verification, error)
}

type factory struct {
	registry *Registry
	vcs      adapter.VCSAdapter
	hints    adapter.HintStore
}

// NewFactory creates a Factory resolving exercises through registry.
func NewFactory(registry *Registry, vcs adapter.VCSAdapter, hints adapter.HintStore) Factory {
	return &factory{
		registry: registry,
		vcs:      vcs,
		hints:    hints,
	}
}

func (f *factory) Create(exerciseID string, oldRev, newRev m.Revision) (*Verification, error) {
	name, ctor, err := f.registry.Resolve(exerciseID)
	if err != nil {
		return nil, err
	}

	toolkit := NewToolkit(name, m.RevisionRange{Old: oldRev, New: newRev}, f.vcs, f.hints)

	return &Verification{
		Toolkit: toolkit,
		rule:    ctor(toolkit),
	}, nil
}
