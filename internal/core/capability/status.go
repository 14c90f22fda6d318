// Package capability tracks the lifecycle of optional, slow-to-load inference
// back ends and runs their calls on a bounded pool off the request goroutine.
//
// A Gate moves Unloaded -> Loading -> Ready or Failed exactly once. Readers
// never block on it; callers that want to give a loader a moment use
// AwaitReady with a short explicit wait and fall back when it is not ready
package capability

import "fmt"

// Status is the observable state of a gate
type Status int32

// Gate states; Ready and Failed are terminal
const (
	Unloaded Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int32(s))
	}
}

// Terminal reports whether no further transition can happen
func (s Status) Terminal() bool { return s == Ready || s == Failed }

// MarshalText renders the status as its lowercase name in JSON
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
