package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type pipelineStats struct {
	enrichSuccesses int
	enrichFailures  int
	rankingCycles   int
	rankingErrors   int
	gamesRanked     int
}

// Recorder captures lightweight, in-memory metrics about provider calls
// and the ranking pipeline. It is intentionally simple so it can be
// swapped for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	pipeline pipelineStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, op, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordEnrichment tracks the outcome of enriching a single game.
func (r *Recorder) RecordEnrichment(ok bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if ok {
		r.pipeline.enrichSuccesses++
	} else {
		r.pipeline.enrichFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEnrichment(ok)
	}
}

// RecordRanking tracks one ranking cycle, how many games it scored and
// how long it took.
func (r *Recorder) RecordRanking(games int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.pipeline.rankingCycles++
	r.pipeline.gamesRanked += games
	if err != nil {
		r.pipeline.rankingErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRanking(games, duration, err)
	}
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
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

// PipelineSnapshot is a copy of the current pipeline counters.
type PipelineSnapshot struct {
	EnrichSuccesses int
	EnrichFailures  int
	RankingCycles   int
	RankingErrors   int
	GamesRanked     int
}

func (r *Recorder) Pipeline() PipelineSnapshot {
	if r == nil {
		return PipelineSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return PipelineSnapshot{
		EnrichSuccesses: r.pipeline.enrichSuccesses,
		EnrichFailures:  r.pipeline.enrichFailures,
		RankingCycles:   r.pipeline.rankingCycles,
		RankingErrors:   r.pipeline.rankingErrors,
		GamesRanked:     r.pipeline.gamesRanked,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
