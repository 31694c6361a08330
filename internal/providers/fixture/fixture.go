// Package fixture provides a deterministic in-memory DataProvider for
// local development and offline demos. The payloads mirror the shapes
// the live upstream returns, including a walk-off comeback, a routine
// blowout and an unplayed scheduled game.
package fixture

import (
	"context"
	"fmt"

	"gameday-ranker/internal/providers/statsapi"
)

// ProviderName identifies fixture-backed games in provenance fields.
const ProviderName = "fixture"

// Provider serves canned payloads keyed by the shapes the client
// would fetch. It implements providers.DataProvider.
type Provider struct {
	schedule  *statsapi.SchedulePayload
	standings *statsapi.StandingsPayload
	boxScores map[int64]*statsapi.BoxScorePayload
	rosters   map[int64]*statsapi.RosterPayload
	stats     map[int64]*statsapi.PlayerStatsPayload
}

// New returns a Provider loaded with the default fixture day.
func New() *Provider {
	return &Provider{
		schedule:  defaultSchedule(),
		standings: defaultStandings(),
		boxScores: defaultBoxScores(),
		rosters:   defaultRosters(),
		stats:     defaultPlayerStats(),
	}
}

// FetchSchedule returns the fixture day regardless of the requested
// date; callers get a stable, repeatable slate.
func (p *Provider) FetchSchedule(_ context.Context, date string) (*statsapi.SchedulePayload, error) {
	payload := *p.schedule
	if date != "" {
		dates := make([]statsapi.ScheduleDate, len(payload.Dates))
		copy(dates, payload.Dates)
		for i := range dates {
			dates[i].Date = date
		}
		payload.Dates = dates
	}
	return &payload, nil
}

func (p *Provider) FetchStandings(_ context.Context, _ string) (*statsapi.StandingsPayload, error) {
	return p.standings, nil
}

func (p *Provider) FetchBoxScore(_ context.Context, gameID int64) (*statsapi.BoxScorePayload, error) {
	box, ok := p.boxScores[gameID]
	if !ok {
		return nil, fmt.Errorf("fixture: no box score for game %d", gameID)
	}
	return box, nil
}

func (p *Provider) FetchRoster(_ context.Context, teamID int64) (*statsapi.RosterPayload, error) {
	roster, ok := p.rosters[teamID]
	if !ok {
		return nil, fmt.Errorf("fixture: no roster for team %d", teamID)
	}
	return roster, nil
}

func (p *Provider) FetchPlayerStats(_ context.Context, playerID int64) (*statsapi.PlayerStatsPayload, error) {
	stats, ok := p.stats[playerID]
	if !ok {
		return nil, fmt.Errorf("fixture: no stats for player %d", playerID)
	}
	return stats, nil
}

func intp(v int) *int { return &v }

// Game 1001: Yankees at Red Sox, a 3-run comeback capped by a walk-off
// single in the bottom of the ninth.
// Game 1002: Dodgers at Giants, a quiet 8-1 blowout.
// Game 1003: Cubs at Cardinals, still scheduled.
func defaultSchedule() *statsapi.SchedulePayload {
	return &statsapi.SchedulePayload{
		TotalGames: 3,
		Dates: []statsapi.ScheduleDate{
			{
				Date: "2025-09-12",
				Games: []statsapi.ScheduleGame{
					{
						GamePk:   1001,
						GameDate: "2025-09-12T23:10:00Z",
						Status:   statsapi.GameStatus{AbstractGameState: "Final", DetailedState: "Final"},
						Venue:    statsapi.Venue{ID: 3, Name: "Fenway Park"},
						Teams: statsapi.ScheduleTeams{
							Away: statsapi.ScheduleTeamSide{
								Team: statsapi.Team{
									ID: 147, Name: "New York Yankees", Abbreviation: "NYY",
									Record: &statsapi.TeamRecord{DivisionRank: "1", GamesBack: "-", Division: "AL East"},
								},
								Score:        intp(5),
								LeagueRecord: statsapi.LeagueRecord{Wins: 88, Losses: 58},
							},
							Home: statsapi.ScheduleTeamSide{
								Team: statsapi.Team{
									ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS",
									Record: &statsapi.TeamRecord{DivisionRank: "2", GamesBack: "2.5", Division: "AL East"},
								},
								Score:        intp(6),
								LeagueRecord: statsapi.LeagueRecord{Wins: 85, Losses: 61},
							},
						},
						Linescore: &statsapi.Linescore{
							Innings: []statsapi.Inning{
								{Num: 1, Away: statsapi.InningHalf{Runs: intp(2)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 2, Away: statsapi.InningHalf{Runs: intp(1)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 3, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(1)}},
								{Num: 4, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 5, Away: statsapi.InningHalf{Runs: intp(1)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 6, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(2)}},
								{Num: 7, Away: statsapi.InningHalf{Runs: intp(1)}, Home: statsapi.InningHalf{Runs: intp(1)}},
								{Num: 8, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(1)}},
								{Num: 9, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(1)}},
							},
							Teams: statsapi.LinescoreTeams{
								Away: statsapi.LinescoreLine{Runs: 5, Hits: 11, Errors: 1},
								Home: statsapi.LinescoreLine{Runs: 6, Hits: 12, Errors: 0},
							},
						},
					},
					{
						GamePk:   1002,
						GameDate: "2025-09-12T02:10:00Z",
						Status:   statsapi.GameStatus{AbstractGameState: "Final", DetailedState: "Final"},
						Venue:    statsapi.Venue{ID: 2395, Name: "Oracle Park"},
						Teams: statsapi.ScheduleTeams{
							Away: statsapi.ScheduleTeamSide{
								Team: statsapi.Team{
									ID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD",
									Record: &statsapi.TeamRecord{DivisionRank: "1", GamesBack: "-", Division: "NL West"},
								},
								Score:        intp(8),
								LeagueRecord: statsapi.LeagueRecord{Wins: 92, Losses: 54},
							},
							Home: statsapi.ScheduleTeamSide{
								Team: statsapi.Team{
									ID: 137, Name: "San Francisco Giants", Abbreviation: "SF",
									Record: &statsapi.TeamRecord{DivisionRank: "4", GamesBack: "18.0", Division: "NL West"},
								},
								Score:        intp(1),
								LeagueRecord: statsapi.LeagueRecord{Wins: 72, Losses: 74},
							},
						},
						Linescore: &statsapi.Linescore{
							Innings: []statsapi.Inning{
								{Num: 1, Away: statsapi.InningHalf{Runs: intp(3)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 2, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 3, Away: statsapi.InningHalf{Runs: intp(2)}, Home: statsapi.InningHalf{Runs: intp(1)}},
								{Num: 4, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 5, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 6, Away: statsapi.InningHalf{Runs: intp(3)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 7, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 8, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
								{Num: 9, Away: statsapi.InningHalf{Runs: intp(0)}, Home: statsapi.InningHalf{Runs: intp(0)}},
							},
							Teams: statsapi.LinescoreTeams{
								Away: statsapi.LinescoreLine{Runs: 8, Hits: 13, Errors: 0},
								Home: statsapi.LinescoreLine{Runs: 1, Hits: 4, Errors: 2},
							},
						},
					},
					{
						GamePk:   1003,
						GameDate: "2025-09-12T18:15:00Z",
						Status:   statsapi.GameStatus{AbstractGameState: "Preview", DetailedState: "Scheduled"},
						Venue:    statsapi.Venue{ID: 2889, Name: "Busch Stadium"},
						Teams: statsapi.ScheduleTeams{
							Away: statsapi.ScheduleTeamSide{
								Team: statsapi.Team{
									ID: 112, Name: "Chicago Cubs", Abbreviation: "CHC",
									Record: &statsapi.TeamRecord{DivisionRank: "2", GamesBack: "3.0", Division: "NL Central"},
								},
								LeagueRecord:    statsapi.LeagueRecord{Wins: 82, Losses: 64},
								ProbablePitcher: &statsapi.Person{ID: 543037, FullName: "Justin Steele"},
							},
							Home: statsapi.ScheduleTeamSide{
								Team: statsapi.Team{
									ID: 138, Name: "St. Louis Cardinals", Abbreviation: "STL",
									Record: &statsapi.TeamRecord{DivisionRank: "3", GamesBack: "6.5", Division: "NL Central"},
								},
								LeagueRecord: statsapi.LeagueRecord{Wins: 78, Losses: 68},
							},
						},
						Lineups: &statsapi.GameLineups{
							AwayPlayers: []statsapi.Person{
								{ID: 1, FullName: "Nico Hoerner"},
								{ID: 2, FullName: "Seiya Suzuki"},
							},
							HomePlayers: []statsapi.Person{
								{ID: 3, FullName: "Masyn Winn"},
								{ID: 4, FullName: "Willson Contreras"},
							},
						},
					},
				},
			},
		},
	}
}

func defaultStandings() *statsapi.StandingsPayload {
	return &statsapi.StandingsPayload{
		Records: []statsapi.DivisionRecord{
			{
				Division: statsapi.Division{ID: 201, Name: "American League East"},
				TeamRecords: []statsapi.TeamStanding{
					{
						Team:              statsapi.Team{ID: 147, Name: "New York Yankees"},
						LeagueRecord:      statsapi.LeagueRecord{Wins: 88, Losses: 58},
						DivisionRank:      "1",
						GamesBack:         "-",
						WildCardRank:      "-",
						WildCardGamesBack: "-",
						EliminationNumber: "-",
					},
					{
						Team:              statsapi.Team{ID: 111, Name: "Boston Red Sox"},
						LeagueRecord:      statsapi.LeagueRecord{Wins: 85, Losses: 61},
						DivisionRank:      "2",
						GamesBack:         "2.5",
						WildCardRank:      "1",
						WildCardGamesBack: "-",
						EliminationNumber: "-",
					},
				},
			},
			{
				Division: statsapi.Division{ID: 203, Name: "National League West"},
				TeamRecords: []statsapi.TeamStanding{
					{
						Team:              statsapi.Team{ID: 119, Name: "Los Angeles Dodgers"},
						LeagueRecord:      statsapi.LeagueRecord{Wins: 92, Losses: 54},
						DivisionRank:      "1",
						GamesBack:         "-",
						EliminationNumber: "-",
					},
					{
						Team:              statsapi.Team{ID: 137, Name: "San Francisco Giants"},
						LeagueRecord:      statsapi.LeagueRecord{Wins: 72, Losses: 74},
						DivisionRank:      "4",
						GamesBack:         "18.0",
						WildCardRank:      "8",
						WildCardGamesBack: "12.0",
						EliminationNumber: "1",
					},
				},
			},
		},
	}
}

func defaultBoxScores() map[int64]*statsapi.BoxScorePayload {
	return map[int64]*statsapi.BoxScorePayload{
		1001: {
			Teams: statsapi.BoxScoreTeams{
				Away: statsapi.BoxScoreTeam{
					Team: statsapi.Team{ID: 147, Name: "New York Yankees"},
					TeamStats: statsapi.TeamStats{
						Batting:  statsapi.BattingStats{Hits: 11, HomeRuns: 2, RBI: 5, BaseOnBalls: 3, StrikeOuts: 9},
						Fielding: statsapi.FieldingStats{Errors: 1},
					},
					Players: map[string]statsapi.BoxScorePlayer{
						"ID660271": {
							Person: statsapi.Person{ID: 660271, FullName: "Aaron Judge"},
							Stats: statsapi.PlayerStats{
								Batting: statsapi.BattingStats{Hits: 3, HomeRuns: 2, RBI: 4},
							},
						},
					},
				},
				Home: statsapi.BoxScoreTeam{
					Team: statsapi.Team{ID: 111, Name: "Boston Red Sox"},
					TeamStats: statsapi.TeamStats{
						Batting:  statsapi.BattingStats{Hits: 12, HomeRuns: 1, RBI: 6, BaseOnBalls: 4, StrikeOuts: 8},
						Fielding: statsapi.FieldingStats{},
					},
					Players: map[string]statsapi.BoxScorePlayer{
						"ID646240": {
							Person: statsapi.Person{ID: 646240, FullName: "Rafael Devers"},
							Stats: statsapi.PlayerStats{
								Batting: statsapi.BattingStats{Hits: 2, HomeRuns: 1, RBI: 3},
							},
						},
						"ID678394": {
							Person: statsapi.Person{ID: 678394, FullName: "Brayan Bello"},
							Stats: statsapi.PlayerStats{
								Pitching: statsapi.PitchingStats{StrikeOuts: 11, InningsPitched: "7.0"},
							},
						},
					},
				},
			},
		},
		1002: {
			Teams: statsapi.BoxScoreTeams{
				Away: statsapi.BoxScoreTeam{
					Team: statsapi.Team{ID: 119, Name: "Los Angeles Dodgers"},
					TeamStats: statsapi.TeamStats{
						Batting:  statsapi.BattingStats{Hits: 13, HomeRuns: 2, RBI: 8, BaseOnBalls: 5, StrikeOuts: 6},
						Fielding: statsapi.FieldingStats{},
					},
					Players: map[string]statsapi.BoxScorePlayer{
						"ID605141": {
							Person: statsapi.Person{ID: 605141, FullName: "Mookie Betts"},
							Stats: statsapi.PlayerStats{
								Batting: statsapi.BattingStats{Hits: 3, Doubles: 1, RBI: 2},
							},
						},
					},
				},
				Home: statsapi.BoxScoreTeam{
					Team: statsapi.Team{ID: 137, Name: "San Francisco Giants"},
					TeamStats: statsapi.TeamStats{
						Batting:  statsapi.BattingStats{Hits: 4, RBI: 1, BaseOnBalls: 2, StrikeOuts: 12},
						Fielding: statsapi.FieldingStats{Errors: 2},
					},
					Players: map[string]statsapi.BoxScorePlayer{},
				},
			},
		},
	}
}

func defaultRosters() map[int64]*statsapi.RosterPayload {
	return map[int64]*statsapi.RosterPayload{
		111: {
			Roster: []statsapi.RosterEntry{
				{
					Person:   statsapi.Person{ID: 678394, FullName: "Brayan Bello"},
					Position: statsapi.Position{Code: "1", Type: "Pitcher", Abbreviation: "P"},
				},
				{
					Person:   statsapi.Person{ID: 656756, FullName: "Tanner Houck"},
					Position: statsapi.Position{Code: "1", Type: "Pitcher", Abbreviation: "P"},
				},
				{
					Person:   statsapi.Person{ID: 646240, FullName: "Rafael Devers"},
					Position: statsapi.Position{Code: "5", Type: "Infielder", Abbreviation: "3B"},
				},
			},
		},
	}
}

func defaultPlayerStats() map[int64]*statsapi.PlayerStatsPayload {
	return map[int64]*statsapi.PlayerStatsPayload{
		678394: {
			Stats: []statsapi.StatGroup{
				{
					Group: statsapi.StatGroupMeta{DisplayName: "pitching"},
					Splits: []statsapi.StatSplit{
						{Stat: statsapi.SeasonPitchingStats{ERA: "3.12", InningsPitched: "158.1", Wins: 12, Losses: 7, StrikeOuts: 161}},
					},
				},
			},
		},
		656756: {
			Stats: []statsapi.StatGroup{
				{
					Group: statsapi.StatGroupMeta{DisplayName: "pitching"},
					Splits: []statsapi.StatSplit{
						{Stat: statsapi.SeasonPitchingStats{ERA: "3.88", InningsPitched: "141.0", Wins: 9, Losses: 9, StrikeOuts: 128}},
					},
				},
			},
		},
	}
}
