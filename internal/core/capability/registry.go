package capability

import (
	"sort"
	"sync"
)

// Well known capability names
const (
	Embedding  = "embedding"
	Generation = "generation"
)

// Registry owns the gates of a process
type Registry struct {
	mu    sync.RWMutex
	gates map[string]*Gate
}

// NewRegistry creates gates for names
func NewRegistry(names ...string) *Registry {
	r := &Registry{gates: make(map[string]*Gate, len(names))}
	for _, n := range names {
		r.gates[n] = NewGate(n)
	}
	return r
}

// Gate returns the named gate, creating it Unloaded on first use
func (r *Registry) Gate(name string) *Gate {
	r.mu.RLock()
	g, ok := r.gates[name]
	r.mu.RUnlock()
	if ok {
		return g
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok = r.gates[name]; ok {
		return g
	}
	g = NewGate(name)
	r.gates[name] = g
	return g
}

// IsReady reports whether the named capability is Ready; unknown names are not
func (r *Registry) IsReady(name string) bool {
	r.mu.RLock()
	g, ok := r.gates[name]
	r.mu.RUnlock()
	return ok && g.IsReady()
}

// State is one entry of a snapshot
type State struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Ready  bool   `json:"ready"`
}

// Snapshot lists every gate sorted by name
func (r *Registry) Snapshot() []State {
	r.mu.RLock()
	out := make([]State, 0, len(r.gates))
	for name, g := range r.gates {
		st := g.Status()
		out = append(out, State{Name: name, Status: st, Ready: st == Ready})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
