package rankings

import (
	"context"
	"errors"
	"testing"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/metrics"
	"gameday-ranker/internal/milestones"
	"gameday-ranker/internal/providers/fixture"
	"gameday-ranker/internal/providers/statsapi"
)

type emptyProvider struct {
	*fixture.Provider
}

func (emptyProvider) FetchSchedule(context.Context, string) (*statsapi.SchedulePayload, error) {
	return &statsapi.SchedulePayload{}, nil
}

type failingProvider struct {
	*fixture.Provider
}

func (failingProvider) FetchSchedule(context.Context, string) (*statsapi.SchedulePayload, error) {
	return nil, errors.New("upstream down")
}

func newFixtureService(rec *metrics.Recorder) *Service {
	return New(Config{
		Provider:  fixture.New(),
		Rivalries: milestones.DefaultTable(),
		Metrics:   rec,
	})
}

func TestRankDateRanksCompletedGames(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := newFixtureService(rec)

	resp, err := svc.RankDate(context.Background(), "2025-09-12")
	if err != nil {
		t.Fatalf("rank date: %v", err)
	}

	if resp.Date != "2025-09-12" {
		t.Fatalf("unexpected date %q", resp.Date)
	}
	if len(resp.Games) != 2 {
		t.Fatalf("expected 2 final games, got %d", len(resp.Games))
	}
	for _, g := range resp.Games {
		if g.Status != domain.StatusFinal {
			t.Fatalf("non-final game in rankings: %+v", g)
		}
	}
	// The walk-off comeback beats the blowout.
	if resp.Games[0].Home.Name != "Boston Red Sox" {
		t.Fatalf("expected the walk-off game first, got %s @ %s",
			resp.Games[0].Away.Name, resp.Games[0].Home.Name)
	}
	if resp.Games[0].ExcitementScore <= resp.Games[1].ExcitementScore {
		t.Fatalf("scores not descending: %v then %v",
			resp.Games[0].ExcitementScore, resp.Games[1].ExcitementScore)
	}
	if !resp.Games[0].Analytics.WalkOff || !resp.Games[0].Analytics.ComebackWin {
		t.Fatalf("expected walk-off comeback analytics, got %+v", resp.Games[0].Analytics)
	}
	if resp.Games[0].Rivalry != domain.RivalryIconic {
		t.Fatalf("expected iconic rivalry enrichment, got %q", resp.Games[0].Rivalry)
	}
	if resp.Games[0].HomeStandings == nil {
		t.Fatal("expected standings enrichment")
	}

	if p := rec.Pipeline(); p.RankingCycles != 1 || p.GamesRanked != 2 {
		t.Fatalf("unexpected pipeline counters %+v", p)
	}
}

func TestRankDateEmptyDayIsNotAnError(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := New(Config{Provider: emptyProvider{}, Metrics: rec})

	resp, err := svc.RankDate(context.Background(), "2025-01-01")
	if err != nil {
		t.Fatalf("empty day must not error: %v", err)
	}
	if resp.Games == nil || len(resp.Games) != 0 {
		t.Fatalf("expected empty-but-valid games slice, got %+v", resp.Games)
	}
	if resp.Date != "2025-01-01" {
		t.Fatalf("unexpected date %q", resp.Date)
	}
}

func TestRankDateFetchFailureIsAnError(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := New(Config{Provider: failingProvider{}, Metrics: rec})

	if _, err := svc.RankDate(context.Background(), "2025-09-12"); err == nil {
		t.Fatal("expected fetch error")
	}
	if p := rec.Pipeline(); p.RankingErrors != 1 {
		t.Fatalf("expected a recorded ranking error, got %+v", p)
	}
}

func TestPreviewDateRanksScheduledGames(t *testing.T) {
	svc := newFixtureService(metrics.NewRecorder())

	resp, err := svc.PreviewDate(context.Background(), "2025-09-12")
	if err != nil {
		t.Fatalf("preview date: %v", err)
	}
	if len(resp.Games) != 1 {
		t.Fatalf("expected 1 scheduled game, got %d", len(resp.Games))
	}
	g := resp.Games[0]
	if g.Status != domain.StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %q", g.Status)
	}
	if g.Away.Pitcher != "Justin Steele" {
		t.Fatalf("expected probable pitcher mapped, got %q", g.Away.Pitcher)
	}
	if g.Home.Pitcher != "TBD" {
		t.Fatalf("expected TBD pitcher, got %q", g.Home.Pitcher)
	}
	if g.AwayMilestones != nil {
		t.Fatal("scheduled games must not carry milestones")
	}
}
