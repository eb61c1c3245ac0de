package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UserSignups       uint64
	UserSignins       uint64
	AuthMissingHeader uint64
	AuthInvalidToken  uint64
	PostsCreated      uint64
	PostsUpdated      uint64
	PostCacheHits     uint64
	PostCacheMisses   uint64
	FeedCacheHits     uint64
	FeedCacheMisses   uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	userSignups       uint64
	userSignins       uint64
	authMissingHeader uint64
	authInvalidToken  uint64
	postsCreated      uint64
	postsUpdated      uint64
	postCacheHits     uint64
	postCacheMisses   uint64
	feedCacheHits     uint64
	feedCacheMisses   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UserSignups:       atomic.LoadUint64(&m.userSignups),
		UserSignins:       atomic.LoadUint64(&m.userSignins),
		AuthMissingHeader: atomic.LoadUint64(&m.authMissingHeader),
		AuthInvalidToken:  atomic.LoadUint64(&m.authInvalidToken),
		PostsCreated:      atomic.LoadUint64(&m.postsCreated),
		PostsUpdated:      atomic.LoadUint64(&m.postsUpdated),
		PostCacheHits:     atomic.LoadUint64(&m.postCacheHits),
		PostCacheMisses:   atomic.LoadUint64(&m.postCacheMisses),
		FeedCacheHits:     atomic.LoadUint64(&m.feedCacheHits),
		FeedCacheMisses:   atomic.LoadUint64(&m.feedCacheMisses),
	}
}

// IncUserSignup increments the signup counter.
func (m *InMemoryRecorder) IncUserSignup() {
	atomic.AddUint64(&m.userSignups, 1)
}

// IncUserSignin increments the signin counter.
func (m *InMemoryRecorder) IncUserSignin() {
	atomic.AddUint64(&m.userSignins, 1)
}

// IncAuthFailure increments the failure counter for the given reason.
func (m *InMemoryRecorder) IncAuthFailure(reason string) {
	switch reason {
	case "missing_header":
		atomic.AddUint64(&m.authMissingHeader, 1)
	default:
		atomic.AddUint64(&m.authInvalidToken, 1)
	}
}

// IncPostCreated increments the post created counter.
func (m *InMemoryRecorder) IncPostCreated() {
	atomic.AddUint64(&m.postsCreated, 1)
}

// IncPostUpdated increments the post updated counter.
func (m *InMemoryRecorder) IncPostUpdated() {
	atomic.AddUint64(&m.postsUpdated, 1)
}

// IncPostCacheHit increments the post cache hit counter.
func (m *InMemoryRecorder) IncPostCacheHit() {
	atomic.AddUint64(&m.postCacheHits, 1)
}

// IncPostCacheMiss increments the post cache miss counter.
func (m *InMemoryRecorder) IncPostCacheMiss() {
	atomic.AddUint64(&m.postCacheMisses, 1)
}

// IncFeedCacheHit increments the feed cache hit counter.
func (m *InMemoryRecorder) IncFeedCacheHit() {
	atomic.AddUint64(&m.feedCacheHits, 1)
}

// IncFeedCacheMiss increments the feed cache miss counter.
func (m *InMemoryRecorder) IncFeedCacheMiss() {
	atomic.AddUint64(&m.feedCacheMisses, 1)
}
