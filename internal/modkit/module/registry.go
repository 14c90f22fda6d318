package module

import "sync"

// the process registry is filled once at boot by api.Mount and read by late binders
var registry = struct {
	sync.RWMutex
	byName map[string]any
}{byName: map[string]any{}}

// Register records the ports of a mounted module under its name, replacing any previous entry
func Register(name string, ports any) {
	registry.Lock()
	defer registry.Unlock()
	registry.byName[name] = ports
}

// PortsAs returns the ports registered under name when they are a T
func PortsAs[T any](name string) (T, bool) {
	registry.RLock()
	v, found := registry.byName[name]
	registry.RUnlock()

	out, ok := v.(T)
	return out, found && ok
}

// Reset empties the registry
func Reset() {
	registry.Lock()
	defer registry.Unlock()
	registry.byName = map[string]any{}
}
