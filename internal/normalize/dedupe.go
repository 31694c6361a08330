package normalize

import (
	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/timeutil"
)

// Dedupe drops duplicate records sharing a calendar day and an unordered
// team pair, keeping the record with the higher run total. Order of first
// occurrence is preserved.
func Dedupe(games []domain.Game) []domain.Game {
	if len(games) < 2 {
		return games
	}

	index := make(map[string]int, len(games))
	out := make([]domain.Game, 0, len(games))
	for _, g := range games {
		key := dedupeKey(g)
		if i, ok := index[key]; ok {
			if g.Analytics.TotalRuns > out[i].Analytics.TotalRuns {
				out[i] = g
			}
			continue
		}
		index[key] = len(out)
		out = append(out, g)
	}
	return out
}

func dedupeKey(g domain.Game) string {
	a, b := g.Away.TeamID, g.Home.TeamID
	if b < a {
		a, b = b, a
	}
	return timeutil.FormatDate(g.Date) + "|" + a + "|" + b
}
