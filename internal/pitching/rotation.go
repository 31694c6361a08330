package pitching

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"gameday-ranker/internal/logging"
	"gameday-ranker/internal/providers"
	"gameday-ranker/internal/providers/statsapi"
)

// minInningsPitched filters out pitchers without a meaningful sample.
const minInningsPitched = 10.0

const unknownPlayer = "Unknown Player"

// PitcherRanking is one pitcher's season line within a rotation table.
type PitcherRanking struct {
	PlayerID       int64   `json:"playerId"`
	Name           string  `json:"name"`
	ERA            float64 `json:"era"`
	InningsPitched float64 `json:"inningsPitched"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	StrikeOuts     int     `json:"strikeOuts"`
}

// Rotation is a team's pitchers ranked by season ERA ascending.
type Rotation struct {
	TeamID   string           `json:"teamId"`
	Pitchers []PitcherRanking `json:"pitchers"`
}

// BuildRotation fetches a team's roster and each pitcher's season stats,
// returning the team's pitchers ranked by ERA. A pitcher whose stats
// cannot be fetched is skipped with a warning; the rest of the table is
// still built.
func BuildRotation(ctx context.Context, roster providers.RosterProvider, stats providers.SeasonStatsProvider, teamID int64, logger *slog.Logger) (Rotation, error) {
	rotation := Rotation{TeamID: fmt.Sprintf("team-%d", teamID)}

	payload, err := roster.FetchRoster(ctx, teamID)
	if err != nil {
		return rotation, fmt.Errorf("fetch roster: %w", err)
	}

	for _, entry := range payload.Roster {
		if entry.Position.Type != "Pitcher" {
			continue
		}
		statsPayload, err := stats.FetchPlayerStats(ctx, entry.Person.ID)
		if err != nil {
			logging.Warn(logger, "player stats fetch failed, skipping pitcher",
				logging.FieldTeam, rotation.TeamID,
				"player_id", entry.Person.ID,
				"err", err,
			)
			continue
		}

		line, ok := seasonPitchingLine(statsPayload)
		if !ok {
			continue
		}
		innings := statsapi.ParseInningsPitched(line.InningsPitched)
		if innings < minInningsPitched {
			continue
		}
		era, err := strconv.ParseFloat(line.ERA, 64)
		if err != nil {
			continue
		}

		rotation.Pitchers = append(rotation.Pitchers, PitcherRanking{
			PlayerID:       entry.Person.ID,
			Name:           entry.Person.DisplayName(unknownPlayer),
			ERA:            era,
			InningsPitched: innings,
			Wins:           line.Wins,
			Losses:         line.Losses,
			StrikeOuts:     line.StrikeOuts,
		})
	}

	sort.SliceStable(rotation.Pitchers, func(i, j int) bool {
		return rotation.Pitchers[i].ERA < rotation.Pitchers[j].ERA
	})
	return rotation, nil
}

func seasonPitchingLine(payload *statsapi.PlayerStatsPayload) (statsapi.SeasonPitchingStats, bool) {
	if payload == nil {
		return statsapi.SeasonPitchingStats{}, false
	}
	for _, group := range payload.Stats {
		if group.Group.DisplayName != "" && group.Group.DisplayName != "pitching" {
			continue
		}
		for _, split := range group.Splits {
			return split.Stat, true
		}
	}
	return statsapi.SeasonPitchingStats{}, false
}
