package scoring

import (
	"math"
	"testing"
	"time"

	"gameday-ranker/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCloseGame(t *testing.T) {
	cases := []struct {
		diff int
		want float64
	}{
		{0, 1.0},
		{1, 0.85},
		{2, 0.65},
		{3, 0.4},
		{4, 0.2},
		{5, 0.1},
		{6, 0.0},
		{10, 0.0},
	}
	for _, tc := range cases {
		g := domain.Game{Analytics: domain.Analytics{RunDifference: tc.diff, InningsPlayed: 9}}
		if got := closeGame(g); !almostEqual(got, tc.want) {
			t.Fatalf("closeGame(diff=%d) = %v, want %v", tc.diff, got, tc.want)
		}
	}
}

func TestCloseGameScoresZeroBeforeFirstPitch(t *testing.T) {
	// A scheduled game is 0-0 by zero value, not a tie.
	if got := closeGame(domain.Game{}); got != 0 {
		t.Fatalf("unplayed game = 0, got %v", got)
	}
}

func TestLeadChangesSubScore(t *testing.T) {
	cases := []struct {
		count      int
		lastInning int
		want       float64
	}{
		{0, 0, 0},
		{1, 3, 0.2},
		{3, 5, 0.6},
		{5, 2, 1.0},
		{8, 1, 1.0},
		{3, 7, 0.72},
		{5, 9, 1.0},
	}
	for _, tc := range cases {
		g := domain.Game{Analytics: domain.Analytics{
			LeadChanges:          tc.count,
			LastLeadChangeInning: tc.lastInning,
		}}
		if got := leadChanges(g); !almostEqual(got, tc.want) {
			t.Fatalf("leadChanges(count=%d, last=%d) = %v, want %v", tc.count, tc.lastInning, got, tc.want)
		}
	}
}

func TestLateGameDrama(t *testing.T) {
	walkOffThriller := domain.Game{Analytics: domain.Analytics{
		RunDifference:        1,
		InningsPlayed:        9,
		LastLeadChangeInning: 9,
		WalkOff:              true,
	}}
	if got := lateGameDrama(walkOffThriller); !almostEqual(got, 1.0) {
		t.Fatalf("thriller should cap at 1.0, got %v", got)
	}

	quietBlowout := domain.Game{Analytics: domain.Analytics{
		RunDifference: 7,
		InningsPlayed: 9,
	}}
	if got := lateGameDrama(quietBlowout); !almostEqual(got, 0) {
		t.Fatalf("blowout should score 0, got %v", got)
	}

	moderate := domain.Game{Analytics: domain.Analytics{
		RunDifference:        2,
		InningsPlayed:        9,
		LastLeadChangeInning: 7,
	}}
	if got := lateGameDrama(moderate); !almostEqual(got, 0.7) {
		t.Fatalf("expected 0.4+0.3, got %v", got)
	}
}

func TestComebackWinSubScore(t *testing.T) {
	cases := []struct {
		comeback bool
		maxLead  int
		want     float64
	}{
		{false, 6, 0},
		{true, 3, 0.5},
		{true, 4, 0.7},
		{true, 5, 0.85},
		{true, 6, 1.0},
	}
	for _, tc := range cases {
		g := domain.Game{Analytics: domain.Analytics{ComebackWin: tc.comeback, MaxLead: tc.maxLead}}
		if got := comebackWin(g); !almostEqual(got, tc.want) {
			t.Fatalf("comebackWin(lead=%d) = %v, want %v", tc.maxLead, got, tc.want)
		}
	}
}

func TestExtraInningsSubScore(t *testing.T) {
	cases := []struct {
		innings int
		want    float64
	}{
		{10, 0.2},
		{11, 0.4},
		{14, 1.0},
		{18, 1.0},
	}
	for _, tc := range cases {
		g := domain.Game{Analytics: domain.Analytics{ExtraInnings: true, InningsPlayed: tc.innings}}
		if got := extraInnings(g); !almostEqual(got, tc.want) {
			t.Fatalf("extraInnings(%d) = %v, want %v", tc.innings, got, tc.want)
		}
	}

	nine := domain.Game{Analytics: domain.Analytics{InningsPlayed: 9}}
	if got := extraInnings(nine); got != 0 {
		t.Fatalf("nine innings scores 0, got %v", got)
	}
}

func TestHighScoring(t *testing.T) {
	cases := []struct {
		runs int
		diff int
		want float64
	}{
		{3, 1, 0},
		{6, 3, 0.1},
		{8, 3, 0.3},
		{10, 5, 0.5},
		{12, 5, 0.7},
		{15, 5, 1.0},
		{10, 2, 0.6},  // close slugfest bonus
		{15, 1, 1.0},  // capped
	}
	for _, tc := range cases {
		g := domain.Game{Analytics: domain.Analytics{TotalRuns: tc.runs, RunDifference: tc.diff}}
		if got := highScoring(g); !almostEqual(got, tc.want) {
			t.Fatalf("highScoring(runs=%d diff=%d) = %v, want %v", tc.runs, tc.diff, got, tc.want)
		}
	}
}

func TestTeamRankingsPrefersDetailedStandings(t *testing.T) {
	g := domain.Game{
		Away:          domain.TeamSide{DivisionRank: 5},
		Home:          domain.TeamSide{DivisionRank: 5},
		AwayStandings: &domain.TeamStandings{DivisionRank: 1},
		HomeStandings: &domain.TeamStandings{DivisionRank: 1},
	}
	// avg 1 -> (5-1)/4 = 1.0, plus the both-top-2 bonus, capped.
	if got := teamRankings(g); !almostEqual(got, 1.0) {
		t.Fatalf("two division leaders = 1.0, got %v", got)
	}
}

func TestTeamRankingsDefaultsWithoutData(t *testing.T) {
	g := domain.Game{}
	// Both sides default to rank 5: (5-5)/4 = 0, no bonus.
	if got := teamRankings(g); !almostEqual(got, 0) {
		t.Fatalf("unknown ranks = 0, got %v", got)
	}
}

func TestTotalHits(t *testing.T) {
	cases := []struct {
		hits int
		want float64
	}{
		{4, 0}, {5, 0.2}, {10, 0.4}, {15, 0.6}, {20, 0.8}, {25, 1.0},
	}
	for _, tc := range cases {
		g := domain.Game{Away: domain.TeamSide{Hits: tc.hits}}
		if got := totalHits(g); !almostEqual(got, tc.want) {
			t.Fatalf("totalHits(%d) = %v, want %v", tc.hits, got, tc.want)
		}
	}
}

func TestFieldingErrors(t *testing.T) {
	cases := []struct {
		errs int
		want float64
	}{
		{0, 0}, {1, 0.25}, {2, 0.5}, {3, 0.75}, {4, 1.0}, {6, 1.0},
	}
	for _, tc := range cases {
		g := domain.Game{Home: domain.TeamSide{Errors: tc.errs}}
		if got := fieldingErrors(g); !almostEqual(got, tc.want) {
			t.Fatalf("fieldingErrors(%d) = %v, want %v", tc.errs, got, tc.want)
		}
	}
}

func TestScoringDistribution(t *testing.T) {
	cases := []struct {
		scoring int
		played  int
		want    float64
	}{
		{9, 9, 1.0},
		{8, 9, 0.9},   // 0.888... -> 0.8 band
		{5, 9, 0.5},   // 0.555 -> 0.5 band
		{2, 9, 0.1},   // 0.22 -> lowest band
		{0, 0, 0},
	}
	for i, tc := range cases {
		g := domain.Game{Analytics: domain.Analytics{ScoringInnings: tc.scoring, InningsPlayed: tc.played}}
		got := scoringDistribution(g)
		if i == 1 {
			// 8/9 = 0.889 lands in the >=0.8 band.
			if !almostEqual(got, 0.9) {
				t.Fatalf("scoringDistribution(8/9) = %v, want 0.9", got)
			}
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Fatalf("scoringDistribution(%d/%d) = %v, want %v", tc.scoring, tc.played, got, tc.want)
		}
	}
}

func TestRivalrySubScore(t *testing.T) {
	if got := rivalry(domain.Game{Rivalry: domain.RivalryIconic}); !almostEqual(got, 1.0) {
		t.Fatalf("iconic = 1.0, got %v", got)
	}
	if got := rivalry(domain.Game{Rivalry: domain.RivalryRecent}); !almostEqual(got, 0.7) {
		t.Fatalf("recent = 0.7, got %v", got)
	}
	if got := rivalry(domain.Game{}); got != 0 {
		t.Fatalf("none = 0, got %v", got)
	}
}

func TestPlayerMilestonesFallbackWithoutBoxScore(t *testing.T) {
	hitless := domain.Game{
		Away:      domain.TeamSide{Hits: 7},
		Analytics: domain.Analytics{InningsPlayed: 9},
	}
	if got := playerMilestones(hitless); !almostEqual(got, 1.0) {
		t.Fatalf("hitless side without box score = 1.0, got %v", got)
	}

	ordinary := domain.Game{
		Home:      domain.TeamSide{Hits: 8},
		Away:      domain.TeamSide{Hits: 7},
		Analytics: domain.Analytics{InningsPlayed: 9},
	}
	if got := playerMilestones(ordinary); got != 0 {
		t.Fatalf("no data, no milestones = 0, got %v", got)
	}

	// Zero hits on both sides of a scheduled game mean nothing yet.
	if got := playerMilestones(domain.Game{}); got != 0 {
		t.Fatalf("unplayed game = 0, got %v", got)
	}
}

func TestPlayerMilestonesBestFeatWins(t *testing.T) {
	g := domain.Game{
		AwayMilestones: &domain.Milestones{
			MultiHomerHitters: []domain.BatterMilestone{{Name: "A", HomeRuns: 2}},
		},
		HomeMilestones: &domain.Milestones{
			NoHitter: true,
		},
	}
	if got := playerMilestones(g); !almostEqual(got, 0.95) {
		t.Fatalf("no-hitter should dominate, got %v", got)
	}

	perfect := domain.Game{HomeMilestones: &domain.Milestones{NoHitter: true, PerfectGame: true}}
	if got := playerMilestones(perfect); !almostEqual(got, 1.0) {
		t.Fatalf("perfect game = 1.0, got %v", got)
	}
}

func TestPlayerMilestonesGradedFeats(t *testing.T) {
	threeHomers := domain.Game{AwayMilestones: &domain.Milestones{
		MultiHomerHitters: []domain.BatterMilestone{{HomeRuns: 3}},
	}}
	if got := playerMilestones(threeHomers); !almostEqual(got, 0.8) {
		t.Fatalf("3-homer game = 0.8, got %v", got)
	}

	bigRBI := domain.Game{HomeMilestones: &domain.Milestones{
		HighRBIHitters: []domain.BatterMilestone{{RBI: 8}},
	}}
	if got := playerMilestones(bigRBI); !almostEqual(got, 0.85) {
		t.Fatalf("8-RBI game = 0.85, got %v", got)
	}

	bigK := domain.Game{HomeMilestones: &domain.Milestones{
		HighStrikeoutPitcher: &domain.PitcherMilestone{StrikeOuts: 15},
	}}
	if got := playerMilestones(bigK); !almostEqual(got, 0.9) {
		t.Fatalf("15-K game = 0.9, got %v", got)
	}
}

func TestSeasonalContextDetailed(t *testing.T) {
	september := time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)

	divisionRace := domain.Game{
		Date:          september,
		AwayStandings: &domain.TeamStandings{Division: "AL East", FirstPlace: true, GamesBack: 0, WildCardGamesBack: 99, EliminationNumber: 30},
		HomeStandings: &domain.TeamStandings{Division: "AL East", DivisionRank: 2, GamesBack: 1.5, WildCardGamesBack: 99, EliminationNumber: 30},
	}
	// Same division within 2 games, late season: 0.6 + 0.2.
	if got := seasonalContext(divisionRace); !almostEqual(got, 0.8) {
		t.Fatalf("division race = 0.8, got %v", got)
	}

	bothLeaders := domain.Game{
		Date:          september,
		AwayStandings: &domain.TeamStandings{Division: "AL East", FirstPlace: true, WildCardGamesBack: 99, EliminationNumber: 30},
		HomeStandings: &domain.TeamStandings{Division: "NL West", FirstPlace: true, WildCardGamesBack: 99, EliminationNumber: 30},
	}
	// First place vs first place late: 0.7 + 0.2.
	if got := seasonalContext(bothLeaders); !almostEqual(got, 0.9) {
		t.Fatalf("leaders matchup = 0.9, got %v", got)
	}

	elimination := domain.Game{
		Date:          september,
		AwayStandings: &domain.TeamStandings{Division: "AL East", DivisionRank: 5, GamesBack: 20, WildCardGamesBack: 15, EliminationNumber: 1},
		HomeStandings: &domain.TeamStandings{Division: "NL West", DivisionRank: 4, GamesBack: 18, WildCardGamesBack: 12, EliminationNumber: 20},
	}
	if got := seasonalContext(elimination); !almostEqual(got, 0.8) {
		t.Fatalf("imminent elimination = 0.8, got %v", got)
	}
}

func TestSeasonalContextCoarseFallback(t *testing.T) {
	june := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	sameDivision := domain.Game{
		Date: june,
		Away: domain.TeamSide{Division: "AL East", DivisionRank: 1, GamesBack: 0},
		Home: domain.TeamSide{Division: "AL East", DivisionRank: 2, GamesBack: 2.5},
	}
	// Coarse rule: same division 0.7 + contenders 0.5, capped at 1.0.
	if got := seasonalContext(sameDivision); !almostEqual(got, 1.0) {
		t.Fatalf("coarse same-division contenders = 1.0, got %v", got)
	}

	crossDivision := domain.Game{
		Date: june,
		Away: domain.TeamSide{Division: "AL East", DivisionRank: 2, GamesBack: 3},
		Home: domain.TeamSide{Division: "NL West", DivisionRank: 1, GamesBack: 0},
	}
	if got := seasonalContext(crossDivision); !almostEqual(got, 0.5) {
		t.Fatalf("coarse cross-division contenders = 0.5, got %v", got)
	}

	noData := domain.Game{Date: june}
	if got := seasonalContext(noData); got != 0 {
		t.Fatalf("no standings data = 0, got %v", got)
	}

	outOfIt := domain.Game{
		Date: june,
		Away: domain.TeamSide{Division: "AL East", DivisionRank: 5, GamesBack: 15},
		Home: domain.TeamSide{Division: "AL East", DivisionRank: 1, GamesBack: 0},
	}
	if got := seasonalContext(outOfIt); got != 0 {
		t.Fatalf("a side 15 back is not a contender, got %v", got)
	}
}
