package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"gameday-ranker/internal/app/rankings"
	"gameday-ranker/internal/config"
	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/logging"
	"gameday-ranker/internal/metrics"
	"gameday-ranker/internal/milestones"
	"gameday-ranker/internal/pitching"
	"gameday-ranker/internal/providers"
	"gameday-ranker/internal/providers/fixture"
	"gameday-ranker/internal/providers/statsapi"
	"gameday-ranker/internal/scoring"
	"gameday-ranker/internal/snapshots"
)

type rankOptions struct {
	date    string
	top     int
	disable []string
	format  string
	out     string
}

// runtime bundles the pieces every command wires up from config.
type runtime struct {
	cfg      config.Config
	logger   *slog.Logger
	provider providers.DataProvider
	metrics  *metrics.Recorder
	shutdown func(context.Context) error
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func buildRuntime(ctx context.Context) (*runtime, error) {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "gameday-ranker",
		Version: appVersion,
	})

	rec, _, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Telemetry.Enabled,
		ServiceName:  cfg.Telemetry.ServiceName,
		OtlpEndpoint: cfg.Telemetry.OtlpEndpoint,
		OtlpInsecure: cfg.Telemetry.OtlpInsecure,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry setup: %w", err)
	}

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		provider: buildProvider(cfg, logger, rec),
		metrics:  rec,
		shutdown: shutdown,
	}, nil
}

func buildProvider(cfg config.Config, logger *slog.Logger, rec *metrics.Recorder) providers.DataProvider {
	if strings.EqualFold(cfg.Provider, fixture.ProviderName) {
		return fixture.New()
	}

	var provider providers.DataProvider = statsapi.NewClient(statsapi.Config{
		BaseURL:    cfg.StatsAPI.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.StatsAPI.Timeout},
	})
	provider = providers.NewRateLimitedProvider(provider, cfg.StatsAPI.RateInterval, logger)
	provider = providers.NewRetryingProvider(provider, logger, rec, cfg.Retry.MaxAttempts, cfg.Retry.InitialBackoff)
	return provider
}

func buildService(rt *runtime, disable []string) (*rankings.Service, error) {
	factors, err := buildFactors(rt.cfg, disable)
	if err != nil {
		return nil, err
	}
	rivalries, err := buildRivalries(rt.cfg)
	if err != nil {
		return nil, err
	}

	return rankings.New(rankings.Config{
		Provider:    rt.provider,
		Factors:     factors,
		Rivalries:   rivalries,
		Logger:      rt.logger,
		Metrics:     rt.metrics,
		Concurrency: rt.cfg.Enrichment.Concurrency,
	}), nil
}

func buildFactors(cfg config.Config, disable []string) (scoring.FactorSet, error) {
	set := scoring.AllFactors()
	if cfg.Scoring.FactorFile != "" {
		loaded, err := scoring.LoadFactorFile(cfg.Scoring.FactorFile)
		if err != nil {
			return nil, err
		}
		set = loaded
	}
	if len(disable) > 0 {
		set = set.Without(disable...)
	}
	return set, nil
}

func buildRivalries(cfg config.Config) (milestones.Table, error) {
	if cfg.Scoring.RivalryFile == "" {
		return milestones.DefaultTable(), nil
	}
	return milestones.LoadTable(cfg.Scoring.RivalryFile)
}

func runRank(_ context.Context, opts rankOptions) error {
	ctx, stop := signalContext()
	defer stop()

	rt, err := buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rt.shutdown(context.Background()) }()

	svc, err := buildService(rt, opts.disable)
	if err != nil {
		return err
	}

	resp, err := svc.RankDate(ctx, opts.date)
	if err != nil {
		return err
	}

	if opts.out != "" {
		writer := snapshots.NewWriter(opts.out, rt.cfg.Snapshots.RetentionDays)
		if err := writer.WriteRankingsSnapshot(resp.Date, resp); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	return renderRankings(os.Stdout, resp, opts)
}

func runPreview(_ context.Context, opts rankOptions) error {
	ctx, stop := signalContext()
	defer stop()

	rt, err := buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rt.shutdown(context.Background()) }()

	svc, err := buildService(rt, opts.disable)
	if err != nil {
		return err
	}

	resp, err := svc.PreviewDate(ctx, opts.date)
	if err != nil {
		return err
	}
	return renderRankings(os.Stdout, resp, opts)
}

func runRotation(_ context.Context, teamID int64, format string) error {
	ctx, stop := signalContext()
	defer stop()

	rt, err := buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rt.shutdown(context.Background()) }()

	rotation, err := pitching.BuildRotation(ctx, rt.provider, rt.provider, teamID, rt.logger)
	if err != nil {
		return err
	}

	if strings.EqualFold(format, "json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rotation)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPITCHER\tERA\tIP\tW-L\tK")
	for i, p := range rotation.Pitchers {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.1f\t%d-%d\t%d\n",
			i+1, p.Name, p.ERA, p.InningsPitched, p.Wins, p.Losses, p.StrikeOuts)
	}
	return w.Flush()
}

func renderRankings(out *os.File, resp domain.RankingsResponse, opts rankOptions) error {
	games := resp.Games
	if opts.top > 0 && opts.top < len(games) {
		games = games[:opts.top]
	}

	if strings.EqualFold(opts.format, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(domain.NewRankingsResponse(resp.Date, games))
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Rankings for %s\n", resp.Date)
	fmt.Fprintln(w, "#\tMATCHUP\tSCORE\tSTARS\tNOTES")
	for i, g := range games {
		fmt.Fprintf(w, "%d\t%s @ %s\t%.1f\t%.1f\t%s\n",
			i+1,
			g.Away.Name, g.Home.Name,
			g.ExcitementScore,
			scoring.Stars(g.ExcitementScore),
			gameNotes(g),
		)
	}
	return w.Flush()
}

// gameNotes condenses the headline reasons a game scored well.
func gameNotes(g domain.Game) string {
	var notes []string
	if g.Analytics.WalkOff {
		notes = append(notes, "walk-off")
	}
	if g.Analytics.ComebackWin {
		notes = append(notes, "comeback")
	}
	if g.Analytics.ExtraInnings {
		notes = append(notes, fmt.Sprintf("%d innings", g.Analytics.InningsPlayed))
	}
	if g.Rivalry == domain.RivalryIconic {
		notes = append(notes, "iconic rivalry")
	} else if g.Rivalry == domain.RivalryRecent {
		notes = append(notes, "rivalry")
	}
	if count := milestoneCount(g); count > 0 {
		notes = append(notes, fmt.Sprintf("%d milestones", count))
	}
	if len(notes) == 0 {
		return "-"
	}
	return strings.Join(notes, ", ")
}

func milestoneCount(g domain.Game) int {
	count := 0
	for _, m := range []*domain.Milestones{g.AwayMilestones, g.HomeMilestones} {
		if !m.Any() {
			continue
		}
		if m.NoHitter {
			count++
		}
		if m.PerfectGame {
			count++
		}
		count += len(m.CycleHitters) + len(m.MultiHomerHitters) + len(m.HighRBIHitters)
		if m.HighStrikeoutPitcher != nil {
			count++
		}
	}
	return count
}
