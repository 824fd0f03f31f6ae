package mergeop

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	ErrFrozen  = errors.New("operator registry is frozen")
	ErrBadName = errors.New("bad operator name")
)

// Registry maps operator names to operators. It is safe for concurrent
// use.
type Registry struct {
	mu     sync.RWMutex
	d      map[string]Op
	frozen bool
}

func NewRegistry() *Registry {
	return &Registry{d: map[string]Op{}}
}

// NewDefaultRegistry returns a registry holding the built in operators.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, o := range Builtins() {
		if err := r.Register(o); err != nil {
			panic(err)
		}
	}
	return r
}

// Builtins returns the operators every default registry starts with.
func Builtins() []Op {
	return []Op{
		Set(),
		Unset(),
		Inc(),
		Push(),

		Rename(),
		Min(),
		Max(),
		Mul(),
		AddToSet(),
		Pop(),
		Pull(),
		JSONPatch(),
	}
}

// Register adds o under o.String(), replacing any operator of the same
// name.
func (r *Registry) Register(o Op) error {
	key := o.String()
	if err := checkName(key); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%s: %w", key, ErrFrozen)
	}
	r.d[key] = o
	return nil
}

func checkName(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty", ErrBadName)
	case strings.HasPrefix(key, "$"):
		return fmt.Errorf("%w: %q must be given without '$'", ErrBadName, key)
	case strings.Contains(key, "."):
		return fmt.Errorf("%w: %q must not contain '.'", ErrBadName, key)
	}
	return nil
}

// Freeze makes all further registrations fail.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the operator registered under s, or nil.
func (r *Registry) Lookup(s string) Op {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.d[s]
}

// Symbols returns the registered operator names, sorted.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.d))
	for s := range r.d {
		res = append(res, s)
	}
	slices.Sort(res)
	return res
}

var def = NewDefaultRegistry()

// Default returns the process wide registry used when no other registry
// is given.
func Default() *Registry {
	return def
}

func Register(o Op) error {
	return def.Register(o)
}

func Lookup(s string) Op {
	return def.Lookup(s)
}

func Symbols() []string {
	return def.Symbols()
}
