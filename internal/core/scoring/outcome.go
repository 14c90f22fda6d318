// Package scoring turns a transcript into communication and technical scores.
//
// Scorers never return errors. Each returns an Outcome that is either Ok or
// Degraded; a degraded outcome still carries a well formed neutral value and a
// reason suitable for logs
package scoring

import "math"

// OutcomeStatus tags how a value was produced
type OutcomeStatus string

// Outcome states
const (
	StatusOK       OutcomeStatus = "ok"
	StatusDegraded OutcomeStatus = "degraded"
)

// Outcome wraps a scorer result with its provenance
type Outcome[T any] struct {
	Value  T
	Status OutcomeStatus
	Reason string
}

// OK wraps a fully computed value
func OK[T any](v T) Outcome[T] { return Outcome[T]{Value: v, Status: StatusOK} }

// Degraded wraps a fallback or partially neutral value
func Degraded[T any](v T, reason string) Outcome[T] {
	return Outcome[T]{Value: v, Status: StatusDegraded, Reason: reason}
}

// IsDegraded reports whether a fallback path was taken
func (o Outcome[T]) IsDegraded() bool { return o.Status == StatusDegraded }

// Neutral is the mid-range score used whenever a signal cannot be computed
const Neutral = 0.5

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}

// Round2 rounds half away from zero to two decimals
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
