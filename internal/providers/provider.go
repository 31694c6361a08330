package providers

import (
	"context"

	"gameday-ranker/internal/providers/statsapi"
)

// ScheduleProvider fetches the raw date-bucketed schedule payload.
// The date, when provided, should be a YYYY-MM-DD string; providers
// should interpret an empty date as "today".
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) (*statsapi.SchedulePayload, error)
}

// StandingsProvider fetches raw standings as of a date.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, date string) (*statsapi.StandingsPayload, error)
}

// BoxScoreProvider fetches the detailed box score for one game.
type BoxScoreProvider interface {
	FetchBoxScore(ctx context.Context, gameID int64) (*statsapi.BoxScorePayload, error)
}

// RosterProvider fetches a team's active roster.
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID int64) (*statsapi.RosterPayload, error)
}

// SeasonStatsProvider fetches a player's season stats.
type SeasonStatsProvider interface {
	FetchPlayerStats(ctx context.Context, playerID int64) (*statsapi.PlayerStatsPayload, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	StandingsProvider
	BoxScoreProvider
	RosterProvider
	SeasonStatsProvider
}
