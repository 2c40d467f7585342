// pkg/functions/registry.go
package functions

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps function names to Definitions. Registration is write-once per
// name for the life of the Registry; no update or remove operation exists.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Definition
	log     *zap.Logger
}

type Option func(*Registry)

// WithLogger attaches a logger for registration events. Default is a nop.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Definition),
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register binds name to body under kind. The check-then-insert is atomic with
// respect to every other call on the Registry: a duplicate name fails with
// AlreadyRegisteredError and leaves the map untouched, and no two concurrent
// calls for one name can both succeed. Empty names are accepted; rejecting
// them is a caller responsibility. Returns the Registry for chaining.
func (r *Registry) Register(name string, kind Kind, body any) (*Registry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[name]; dup {
		return nil, &AlreadyRegisteredError{Name: name}
	}
	r.entries[name] = Definition{name: name, kind: kind, body: body}
	registrations.WithLabelValues(string(kind)).Inc()
	r.log.Info("function registered",
		zap.String("name", name),
		zap.String("kind", string(kind)),
	)
	return r, nil
}

// MustRegister is Register for setup-time chaining; a duplicate name is a
// configuration defect, so it panics.
func (r *Registry) MustRegister(name string, kind Kind, body any) *Registry {
	reg, err := r.Register(name, kind, body)
	if err != nil {
		panic(err)
	}
	return reg
}

// RegisterHTTP binds fn under kind "http".
func (r *Registry) RegisterHTTP(name string, fn HTTPFunction) (*Registry, error) {
	return r.Register(name, KindHTTP, fn)
}

// RegisterEvent binds fn under kind "event".
func (r *Registry) RegisterEvent(name string, fn EventFunction) (*Registry, error) {
	return r.Register(name, KindEvent, fn)
}

// RegisterCloudEvent binds fn under kind "cloud_event".
func (r *Registry) RegisterCloudEvent(name string, fn CloudEventFunction) (*Registry, error) {
	return r.Register(name, KindCloudEvent, fn)
}

// Lookup resolves name to its Definition. A miss is (zero, false), not an
// error; a hit is always a fully formed Definition.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	d, ok := r.entries[name]
	r.mu.RUnlock()
	return d, ok
}

// Names returns every registered name in ascending lexicographic order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.entries))
	for n := range r.entries {
		out = append(out, n)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Len reports the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
