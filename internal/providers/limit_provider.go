package providers

import (
	"context"
	"log/slog"
	"time"

	"gameday-ranker/internal/providers/statsapi"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between upstream calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the
// given interval. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, date string) (*statsapi.SchedulePayload, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, date)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, date string) (*statsapi.StandingsPayload, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, date)
}

func (p *rateLimitedProvider) FetchBoxScore(ctx context.Context, gameID int64) (*statsapi.BoxScorePayload, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchBoxScore(ctx, gameID)
}

func (p *rateLimitedProvider) FetchRoster(ctx context.Context, teamID int64) (*statsapi.RosterPayload, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchRoster(ctx, teamID)
}

func (p *rateLimitedProvider) FetchPlayerStats(ctx context.Context, playerID int64) (*statsapi.PlayerStatsPayload, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayerStats(ctx, playerID)
}
