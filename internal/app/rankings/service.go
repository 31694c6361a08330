// Package rankings orchestrates the daily pipeline: fetch the raw
// schedule, normalize it, enrich the games and rank them by excitement.
package rankings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/enrich"
	"gameday-ranker/internal/logging"
	"gameday-ranker/internal/metrics"
	"gameday-ranker/internal/milestones"
	"gameday-ranker/internal/normalize"
	"gameday-ranker/internal/providers"
	"gameday-ranker/internal/scoring"
	"gameday-ranker/internal/timeutil"
)

// Config wires a Service.
type Config struct {
	Provider    providers.DataProvider
	Factors     scoring.FactorSet
	Rivalries   milestones.Table
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Concurrency int
}

// Service runs ranking pipelines for a single day at a time.
type Service struct {
	provider   providers.DataProvider
	normalizer *normalize.Normalizer
	enricher   *enrich.Enricher
	factors    scoring.FactorSet
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// New constructs a Service.
func New(cfg Config) *Service {
	return &Service{
		provider:   cfg.Provider,
		normalizer: normalize.New(cfg.Logger),
		enricher: enrich.New(enrich.Config{
			BoxScores:   cfg.Provider,
			Standings:   cfg.Provider,
			Rivalries:   cfg.Rivalries,
			Logger:      cfg.Logger,
			Metrics:     cfg.Metrics,
			Concurrency: cfg.Concurrency,
		}),
		factors: cfg.Factors,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// RankDate fetches, normalizes, enriches and ranks the completed games
// of one day. A day with no completed games is an empty response, not
// an error; only an upstream fetch failure is an error.
func (s *Service) RankDate(ctx context.Context, date string) (domain.RankingsResponse, error) {
	start := time.Now()
	resolved := resolveDate(date)

	payload, err := s.provider.FetchSchedule(ctx, resolved)
	if err != nil {
		s.metrics.RecordRanking(0, time.Since(start), err)
		return domain.RankingsResponse{}, fmt.Errorf("fetch schedule: %w", err)
	}

	games := s.normalizer.Games(payload)
	if len(games) == 0 {
		s.metrics.RecordRanking(0, time.Since(start), nil)
		return domain.NewRankingsResponse(resolved, []domain.Game{}), nil
	}

	enriched := s.enricher.EnrichAll(ctx, resolved, games)
	ranked := scoring.Rank(enriched, s.factors)

	s.metrics.RecordRanking(len(ranked), time.Since(start), nil)
	logging.Info(s.logger, "ranked games",
		logging.FieldDate, resolved,
		logging.FieldCount, len(ranked),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return domain.NewRankingsResponse(resolved, ranked), nil
}

// PreviewDate ranks a day's scheduled games on what is knowable before
// first pitch: rankings, rivalry and seasonal context. Milestone and
// in-game factors score zero for games without a played inning, so the
// ordering reflects matchup appeal only.
func (s *Service) PreviewDate(ctx context.Context, date string) (domain.RankingsResponse, error) {
	start := time.Now()
	resolved := resolveDate(date)

	payload, err := s.provider.FetchSchedule(ctx, resolved)
	if err != nil {
		s.metrics.RecordRanking(0, time.Since(start), err)
		return domain.RankingsResponse{}, fmt.Errorf("fetch schedule: %w", err)
	}

	games := s.normalizer.FutureGames(payload)
	if len(games) == 0 {
		s.metrics.RecordRanking(0, time.Since(start), nil)
		return domain.NewRankingsResponse(resolved, []domain.Game{}), nil
	}

	enriched := s.enricher.EnrichAll(ctx, resolved, games)
	ranked := scoring.Rank(enriched, s.factors)

	s.metrics.RecordRanking(len(ranked), time.Since(start), nil)
	logging.Info(s.logger, "ranked scheduled games",
		logging.FieldDate, resolved,
		logging.FieldCount, len(ranked),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return domain.NewRankingsResponse(resolved, ranked), nil
}

func resolveDate(date string) string {
	if date != "" {
		return date
	}
	return timeutil.FormatDate(time.Now().UTC())
}
