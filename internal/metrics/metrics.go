// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserSignup()
	IncUserSignin()
	IncAuthFailure(reason string) // reason: "missing_header" or "invalid_token"

	// Post metrics
	IncPostCreated()
	IncPostUpdated()

	// Read cache metrics
	IncPostCacheHit()
	IncPostCacheMiss()
	IncFeedCacheHit()
	IncFeedCacheMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
