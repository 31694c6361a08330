package milestones

import (
	"fmt"
	"strings"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/providers/statsapi"
)

// wildCardSpots is how many wild-card ranks count as a qualifying position.
const wildCardSpots = 3

// SeasonalContext maps a raw standings payload into detailed per-team
// context, keyed by canonical team ID.
func SeasonalContext(payload *statsapi.StandingsPayload) map[string]domain.TeamStandings {
	if payload == nil {
		return nil
	}

	out := make(map[string]domain.TeamStandings)
	for _, record := range payload.Records {
		division := abbreviateLeague(record.Division.Name)
		for _, ts := range record.TeamRecords {
			if ts.Team.ID == 0 {
				continue
			}
			rank := statsapi.ParseRank(ts.DivisionRank)
			wcRank := statsapi.ParseRank(ts.WildCardRank)
			out[fmt.Sprintf("team-%d", ts.Team.ID)] = domain.TeamStandings{
				Division:          division,
				DivisionRank:      rank,
				GamesBack:         statsapi.ParseGamesBack(ts.GamesBack),
				WildCardRank:      wcRank,
				WildCardGamesBack: statsapi.ParseGamesBack(ts.WildCardGamesBack),
				EliminationNumber: statsapi.ParseEliminationNumber(ts.EliminationNumber),
				FirstPlace:        rank == 1,
				WildCardSpot:      wcRank >= 1 && wcRank <= wildCardSpots,
			}
		}
	}
	return out
}

// abbreviateLeague shortens the league prefix of a division name, e.g.
// "American League East" becomes "AL East".
func abbreviateLeague(name string) string {
	name = strings.TrimSpace(name)
	if rest, ok := strings.CutPrefix(name, "American League"); ok {
		return "AL" + rest
	}
	if rest, ok := strings.CutPrefix(name, "National League"); ok {
		return "NL" + rest
	}
	return name
}
