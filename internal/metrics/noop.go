package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserSignup is a no-op.
func (n *NoopRecorder) IncUserSignup() {}

// IncUserSignin is a no-op.
func (n *NoopRecorder) IncUserSignin() {}

// IncAuthFailure is a no-op.
func (n *NoopRecorder) IncAuthFailure(reason string) {}

// IncPostCreated is a no-op.
func (n *NoopRecorder) IncPostCreated() {}

// IncPostUpdated is a no-op.
func (n *NoopRecorder) IncPostUpdated() {}

// IncPostCacheHit is a no-op.
func (n *NoopRecorder) IncPostCacheHit() {}

// IncPostCacheMiss is a no-op.
func (n *NoopRecorder) IncPostCacheMiss() {}

// IncFeedCacheHit is a no-op.
func (n *NoopRecorder) IncFeedCacheHit() {}

// IncFeedCacheMiss is a no-op.
func (n *NoopRecorder) IncFeedCacheMiss() {}
