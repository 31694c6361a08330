package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"gameday-ranker/internal/logging"
	"gameday-ranker/internal/metrics"
	"gameday-ranker/internal/providers/statsapi"
)

const (
	defaultRetryAttempts  = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential retry/backoff.
type retryingProvider struct {
	inner          DataProvider
	logger         *slog.Logger
	metrics        *metrics.Recorder
	maxAttempts    int
	initialBackoff time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Every
// attempt is recorded on rec (which may be nil). If
// maxAttempts/initialBackoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, rec *metrics.Recorder, maxAttempts int, initialBackoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:          inner,
		logger:         logger,
		metrics:        rec,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, date string) (*statsapi.SchedulePayload, error) {
	return fetchWithRetry(ctx, r, "schedule", func() (*statsapi.SchedulePayload, error) {
		return r.inner.FetchSchedule(ctx, date)
	})
}

func (r *retryingProvider) FetchStandings(ctx context.Context, date string) (*statsapi.StandingsPayload, error) {
	return fetchWithRetry(ctx, r, "standings", func() (*statsapi.StandingsPayload, error) {
		return r.inner.FetchStandings(ctx, date)
	})
}

func (r *retryingProvider) FetchBoxScore(ctx context.Context, gameID int64) (*statsapi.BoxScorePayload, error) {
	return fetchWithRetry(ctx, r, "boxscore", func() (*statsapi.BoxScorePayload, error) {
		return r.inner.FetchBoxScore(ctx, gameID)
	})
}

func (r *retryingProvider) FetchRoster(ctx context.Context, teamID int64) (*statsapi.RosterPayload, error) {
	return fetchWithRetry(ctx, r, "roster", func() (*statsapi.RosterPayload, error) {
		return r.inner.FetchRoster(ctx, teamID)
	})
}

func (r *retryingProvider) FetchPlayerStats(ctx context.Context, playerID int64) (*statsapi.PlayerStatsPayload, error) {
	return fetchWithRetry(ctx, r, "player_stats", func() (*statsapi.PlayerStatsPayload, error) {
		return r.inner.FetchPlayerStats(ctx, playerID)
	})
}

// retryAfterBackOff stretches the next wait to at least the upstream
// Retry-After hint when the last attempt hit a rate limit, so a 429 is
// never re-hit before the upstream said it was safe.
type retryAfterBackOff struct {
	next       backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) hint(d time.Duration) { b.retryAfter = d }

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	d := b.next.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if b.retryAfter > d {
		d = b.retryAfter
	}
	return d
}

func (b *retryAfterBackOff) Reset() {
	b.retryAfter = 0
	b.next.Reset()
}

func fetchWithRetry[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var result T

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.initialBackoff
	hinted := &retryAfterBackOff{next: exp}
	bo := backoff.WithContext(backoff.WithMaxRetries(hinted, uint64(r.maxAttempts-1)), ctx)

	operation := func() error {
		start := time.Now()
		v, err := fn()
		r.metrics.RecordProviderAttempt(statsapi.ProviderName, op, time.Since(start), err)
		if err != nil {
			if rl, ok := statsapi.AsRateLimitError(err); ok {
				hinted.hint(rl.RetryAfter)
				r.metrics.RecordRateLimit(statsapi.ProviderName, rl.RetryAfter)
			} else {
				hinted.hint(0)
			}
			return err
		}
		result = v
		return nil
	}
	notify := func(err error, delay time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch retry",
			"op", op,
			logging.FieldDurationMS, delay.Milliseconds(),
			"err", err,
		)
	}

	if err := backoff.RetryNotify(operation, bo, notify); err != nil {
		var zero T
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", err)
		return zero, err
	}
	return result, nil
}
