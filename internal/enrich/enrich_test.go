package enrich

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/metrics"
	"gameday-ranker/internal/milestones"
	"gameday-ranker/internal/providers/statsapi"
)

type stubBoxScores struct {
	payloads map[int64]*statsapi.BoxScorePayload
	calls    int
}

func (s *stubBoxScores) FetchBoxScore(_ context.Context, gameID int64) (*statsapi.BoxScorePayload, error) {
	s.calls++
	box, ok := s.payloads[gameID]
	if !ok {
		return nil, errors.New("no box score")
	}
	return box, nil
}

type stubStandings struct {
	payload *statsapi.StandingsPayload
	err     error
	calls   int
}

func (s *stubStandings) FetchStandings(context.Context, string) (*statsapi.StandingsPayload, error) {
	s.calls++
	return s.payload, s.err
}

func finalGame(id int64, awayTeam, homeTeam string) domain.Game {
	return domain.Game{
		ID:             fmt.Sprintf("statsapi-%d", id),
		UpstreamGameID: id,
		Status:         domain.StatusFinal,
		Away:           domain.TeamSide{TeamID: "team-1", Name: awayTeam},
		Home:           domain.TeamSide{TeamID: "team-2", Name: homeTeam},
	}
}

func TestEnrichAllAttachesMilestonesAndRivalry(t *testing.T) {
	box := &statsapi.BoxScorePayload{
		Teams: statsapi.BoxScoreTeams{
			Away: statsapi.BoxScoreTeam{TeamStats: statsapi.TeamStats{Batting: statsapi.BattingStats{Hits: 0}}},
			Home: statsapi.BoxScoreTeam{TeamStats: statsapi.TeamStats{Batting: statsapi.BattingStats{Hits: 9}}},
		},
	}
	e := New(Config{
		BoxScores: &stubBoxScores{payloads: map[int64]*statsapi.BoxScorePayload{7: box}},
		Rivalries: milestones.Table{Iconic: [][]string{{"New York Yankees", "Boston Red Sox"}}},
		Metrics:   metrics.NewRecorder(),
	})

	games := []domain.Game{finalGame(7, "New York Yankees", "Boston Red Sox")}
	out := e.EnrichAll(context.Background(), "2025-09-12", games)

	if out[0].Rivalry != domain.RivalryIconic {
		t.Fatalf("expected iconic rivalry, got %q", out[0].Rivalry)
	}
	if out[0].HomeMilestones == nil || !out[0].HomeMilestones.NoHitter {
		t.Fatalf("expected home no-hitter milestone, got %+v", out[0].HomeMilestones)
	}
}

func TestEnrichAllAttachesStandings(t *testing.T) {
	standings := &stubStandings{payload: &statsapi.StandingsPayload{
		Records: []statsapi.DivisionRecord{
			{
				Division: statsapi.Division{Name: "American League East"},
				TeamRecords: []statsapi.TeamStanding{
					{Team: statsapi.Team{ID: 1}, DivisionRank: "1", GamesBack: "-"},
					{Team: statsapi.Team{ID: 2}, DivisionRank: "2", GamesBack: "2.0"},
				},
			},
		},
	}}
	e := New(Config{Standings: standings})

	games := []domain.Game{finalGame(7, "A", "B"), finalGame(8, "C", "D")}
	out := e.EnrichAll(context.Background(), "2025-09-12", games)

	if standings.calls != 1 {
		t.Fatalf("standings should be fetched once per batch, got %d calls", standings.calls)
	}
	for _, g := range out {
		if g.AwayStandings == nil || !g.AwayStandings.FirstPlace {
			t.Fatalf("expected away standings attached, got %+v", g.AwayStandings)
		}
		if g.HomeStandings == nil || g.HomeStandings.DivisionRank != 2 {
			t.Fatalf("expected home standings attached, got %+v", g.HomeStandings)
		}
	}
}

func TestEnrichAllSingleGameFailureDegrades(t *testing.T) {
	rec := metrics.NewRecorder()
	e := New(Config{
		BoxScores: &stubBoxScores{payloads: map[int64]*statsapi.BoxScorePayload{}},
		Metrics:   rec,
	})

	games := []domain.Game{finalGame(7, "A", "B")}
	out := e.EnrichAll(context.Background(), "2025-09-12", games)

	if len(out) != 1 {
		t.Fatalf("failed enrichment must not drop the game, got %d", len(out))
	}
	if out[0].AwayMilestones != nil || out[0].HomeMilestones != nil {
		t.Fatal("milestones should stay nil on failure")
	}
	if p := rec.Pipeline(); p.EnrichFailures != 1 {
		t.Fatalf("expected 1 recorded failure, got %+v", p)
	}
}

func TestEnrichAllSkipsBoxScoresForScheduledGames(t *testing.T) {
	boxes := &stubBoxScores{payloads: map[int64]*statsapi.BoxScorePayload{}}
	e := New(Config{BoxScores: boxes})

	g := finalGame(7, "A", "B")
	g.Status = domain.StatusScheduled
	_ = e.EnrichAll(context.Background(), "2025-09-12", []domain.Game{g})

	if boxes.calls != 0 {
		t.Fatalf("scheduled games must not fetch box scores, got %d calls", boxes.calls)
	}
}

func TestEnrichAllDoesNotMutateInput(t *testing.T) {
	standings := &stubStandings{err: errors.New("down")}
	e := New(Config{Standings: standings})

	games := []domain.Game{finalGame(7, "A", "B")}
	snapshot := make([]domain.Game, len(games))
	copy(snapshot, games)

	_ = e.EnrichAll(context.Background(), "2025-09-12", games)

	if !reflect.DeepEqual(games, snapshot) {
		t.Fatal("input slice was mutated")
	}
}

func TestEnrichAllEmptyInput(t *testing.T) {
	standings := &stubStandings{}
	e := New(Config{Standings: standings})

	out := e.EnrichAll(context.Background(), "2025-09-12", nil)

	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d", len(out))
	}
	if standings.calls != 0 {
		t.Fatal("no games means no standings fetch")
	}
}
