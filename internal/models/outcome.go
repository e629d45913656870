package models

// Outcome describes how a read-through lookup was satisfied.
type Outcome string

const (
	// OutcomeCached means a fresh entry was served without contacting the
	// upstream API.
	OutcomeCached Outcome = "cached"

	// OutcomeFresh means the upstream API was called and returned new data.
	OutcomeFresh Outcome = "fresh"

	// OutcomeFallback means the upstream call failed and the last
	// successfully cached value was served instead. Consumers are expected
	// to surface a degraded-data warning.
	OutcomeFallback Outcome = "stale-fallback"
)

// Degraded reports whether the outcome should be surfaced to the consumer
// as possibly out-of-date data.
func (o Outcome) Degraded() bool {
	return o == OutcomeFallback
}
