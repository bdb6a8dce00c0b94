package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type projectionStats struct {
	served   int
	notFound int
}

// Recorder keeps in-memory counters for slate sources and projections and
// mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu          sync.Mutex
	sources     map[string]*sourceStats
	projections map[string]*projectionStats
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources:     make(map[string]*sourceStats),
		projections: make(map[string]*projectionStats),
		otel:        otel,
	}
}

// RecordSourceAttempt counts a slate fetch against a source and keeps the last latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureSource(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, err)
	}
}

// RecordRateLimit tracks a rate-limited slate fetch and the last Retry-After seen.
func (r *Recorder) RecordRateLimit(source string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureSource(source)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(source, retryAfter)
	}
}

// RecordProjection counts a projection query by stat and whether the player resolved.
func (r *Recorder) RecordProjection(stat string, found bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.projections[stat]
	if !ok {
		stats = &projectionStats{}
		r.projections[stat] = stats
	}
	if found {
		stats.served++
	} else {
		stats.notFound++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProjection(stat, found)
	}
}

// Snapshot is a copy of one source's counters.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the source.
func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.sources[source]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SourceCalls returns the total attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// SourceErrors returns the failed attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// Projections returns served and not-found counts for a stat.
func (r *Recorder) Projections(stat string) (served, notFound int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.projections[stat]; ok {
		return stats.served, stats.notFound
	}
	return 0, 0
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ensureSource must be called with r.mu held.
func (r *Recorder) ensureSource(source string) *sourceStats {
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	return stats
}
