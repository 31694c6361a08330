package enrich

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/logging"
	"gameday-ranker/internal/metrics"
	"gameday-ranker/internal/milestones"
	"gameday-ranker/internal/providers"
)

const defaultConcurrency = 4

// Config wires an Enricher. Any provider may be nil, in which case that
// enrichment is skipped for every game.
type Config struct {
	BoxScores   providers.BoxScoreProvider
	Standings   providers.StandingsProvider
	Rivalries   milestones.Table
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Concurrency int
}

// Enricher attaches optional context (milestones, standings, rivalry) to
// normalized games. Enrichment of each game is independent: one game's
// failure degrades only that game, never the batch.
type Enricher struct {
	boxScores   providers.BoxScoreProvider
	standings   providers.StandingsProvider
	rivalries   milestones.Table
	logger      *slog.Logger
	metrics     *metrics.Recorder
	concurrency int
}

// New constructs an Enricher with sane defaults.
func New(cfg Config) *Enricher {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Enricher{
		boxScores:   cfg.BoxScores,
		standings:   cfg.Standings,
		rivalries:   cfg.Rivalries,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		concurrency: concurrency,
	}
}

// EnrichAll returns enriched copies of the given games. The input slice
// and its elements are never mutated. Standings are fetched once per
// call and shared; box scores are fetched per game with bounded
// concurrency.
func (e *Enricher) EnrichAll(ctx context.Context, date string, games []domain.Game) []domain.Game {
	out := make([]domain.Game, len(games))
	copy(out, games)
	if len(out) == 0 {
		return out
	}

	standings := e.fetchStandings(ctx, date)

	grp := new(errgroup.Group)
	grp.SetLimit(e.concurrency)
	for i := range out {
		i := i
		grp.Go(func() error {
			e.enrichGame(ctx, &out[i], standings)
			return nil
		})
	}
	// Workers always return nil; failures are per-game degradations.
	_ = grp.Wait()
	return out
}

func (e *Enricher) fetchStandings(ctx context.Context, date string) map[string]domain.TeamStandings {
	if e.standings == nil {
		return nil
	}
	payload, err := e.standings.FetchStandings(ctx, date)
	if err != nil {
		logging.Warn(e.logger, "standings fetch failed, scoring degrades to schedule snapshot",
			logging.FieldDate, date,
			"err", err,
		)
		return nil
	}
	return milestones.SeasonalContext(payload)
}

func (e *Enricher) enrichGame(ctx context.Context, g *domain.Game, standings map[string]domain.TeamStandings) {
	g.Rivalry = milestones.Classify(g.Away.Name, g.Home.Name, e.rivalries)

	if st, ok := standings[g.Away.TeamID]; ok {
		stCopy := st
		g.AwayStandings = &stCopy
	}
	if st, ok := standings[g.Home.TeamID]; ok {
		stCopy := st
		g.HomeStandings = &stCopy
	}

	// Milestones only exist for completed games.
	if e.boxScores == nil || g.Status != domain.StatusFinal {
		return
	}

	start := time.Now()
	box, err := e.boxScores.FetchBoxScore(ctx, g.UpstreamGameID)
	if err != nil {
		logging.Warn(e.logger, "box score fetch failed, game scores without milestones",
			logging.FieldGame, g.ID,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
			"err", err,
		)
		if e.metrics != nil {
			e.metrics.RecordEnrichment(false)
		}
		return
	}

	g.AwayMilestones, g.HomeMilestones = milestones.Extract(box)
	if e.metrics != nil {
		e.metrics.RecordEnrichment(true)
	}
}
