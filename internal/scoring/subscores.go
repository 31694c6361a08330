package scoring

import (
	"math"
	"time"

	"gameday-ranker/internal/domain"
)

// Every sub-score returns a value in [0,1]; Score applies the weights.

func closeGame(g domain.Game) float64 {
	if g.Analytics.InningsPlayed == 0 {
		// Nothing has been played; a 0-0 zero value is not a tie game.
		return 0
	}
	switch diff := g.Analytics.RunDifference; diff {
	case 0:
		return 1.0
	case 1:
		return 0.85
	case 2:
		return 0.65
	case 3:
		return 0.4
	default:
		return math.Max(0, 0.2-0.1*float64(diff-4))
	}
}

func leadChanges(g domain.Game) float64 {
	var base float64
	switch count := g.Analytics.LeadChanges; {
	case count >= 5:
		base = 1.0
	case count > 0:
		base = 0.2 * float64(count)
	}
	// A late last lead change makes the same count more dramatic.
	if g.Analytics.LastLeadChangeInning >= 7 {
		base = math.Min(1.0, base*1.2)
	}
	return base
}

func lateGameDrama(g domain.Game) float64 {
	a := g.Analytics
	drama := 0.0

	if a.RunDifference <= 1 && a.InningsPlayed >= 8 {
		drama += 0.7
	} else if a.RunDifference <= 2 && a.InningsPlayed >= 7 {
		drama += 0.4
	}

	if a.LastLeadChangeInning >= 8 {
		drama += 0.5
	} else if a.LastLeadChangeInning >= 7 {
		drama += 0.3
	}

	if a.WalkOff {
		drama += 0.5
	}
	return math.Min(1.0, drama)
}

func comebackWin(g domain.Game) float64 {
	if !g.Analytics.ComebackWin {
		return 0
	}
	switch lead := g.Analytics.MaxLead; {
	case lead >= 6:
		return 1.0
	case lead >= 5:
		return 0.85
	case lead >= 4:
		return 0.7
	default:
		return 0.5
	}
}

func extraInnings(g domain.Game) float64 {
	if !g.Analytics.ExtraInnings {
		return 0
	}
	extra := g.Analytics.InningsPlayed - 9
	return math.Min(1.0, 0.2*float64(extra))
}

func highScoring(g domain.Game) float64 {
	var base float64
	switch runs := g.Analytics.TotalRuns; {
	case runs >= 15:
		base = 1.0
	case runs >= 12:
		base = 0.7
	case runs >= 10:
		base = 0.5
	case runs >= 8:
		base = 0.3
	case runs >= 6:
		base = 0.1
	}
	// A slugfest that stayed close beats a blowout with the same total.
	if g.Analytics.TotalRuns >= 10 && g.Analytics.RunDifference <= 2 {
		base = math.Min(1.0, base*1.2)
	}
	return base
}

func teamRankings(g domain.Game) float64 {
	awayRank := divisionRank(g.Away, g.AwayStandings)
	homeRank := divisionRank(g.Home, g.HomeStandings)

	avg := float64(awayRank+homeRank) / 2
	score := math.Max(0, (5-avg)/4)

	if awayRank <= 2 && homeRank <= 2 {
		score += 0.2
	} else if awayRank <= 3 && homeRank <= 3 {
		score += 0.1
	}
	return math.Min(1.0, score)
}

// divisionRank prefers the detailed standings rank, falls back to the
// schedule snapshot, and defaults to 5 when neither is known.
func divisionRank(side domain.TeamSide, st *domain.TeamStandings) int {
	if st != nil && st.DivisionRank > 0 {
		return st.DivisionRank
	}
	if side.DivisionRank > 0 {
		return side.DivisionRank
	}
	return 5
}

func totalHits(g domain.Game) float64 {
	switch hits := g.Away.Hits + g.Home.Hits; {
	case hits >= 25:
		return 1.0
	case hits >= 20:
		return 0.8
	case hits >= 15:
		return 0.6
	case hits >= 10:
		return 0.4
	case hits >= 5:
		return 0.2
	default:
		return 0
	}
}

func fieldingErrors(g domain.Game) float64 {
	switch errs := g.Away.Errors + g.Home.Errors; {
	case errs >= 4:
		return 1.0
	case errs == 3:
		return 0.75
	case errs == 2:
		return 0.5
	case errs == 1:
		return 0.25
	default:
		return 0
	}
}

func scoringDistribution(g domain.Game) float64 {
	a := g.Analytics
	if a.InningsPlayed == 0 {
		return 0
	}
	ratio := float64(a.ScoringInnings) / float64(a.InningsPlayed)
	switch {
	case ratio >= 0.9:
		return 1.0
	case ratio >= 0.8:
		return 0.9
	case ratio >= 0.7:
		return 0.8
	case ratio >= 0.6:
		return 0.65
	case ratio >= 0.5:
		return 0.5
	case ratio >= 0.4:
		return 0.3
	case ratio >= 0.3:
		return 0.2
	default:
		return 0.1
	}
}

func rivalry(g domain.Game) float64 {
	switch g.Rivalry {
	case domain.RivalryIconic:
		return 1.0
	case domain.RivalryRecent:
		return 0.7
	default:
		return 0
	}
}

func playerMilestones(g domain.Game) float64 {
	if g.AwayMilestones == nil && g.HomeMilestones == nil {
		// No detailed data: a hitless side is the only visible milestone,
		// and only once the game has actually been played.
		if g.Analytics.InningsPlayed > 0 && (g.Away.Hits == 0 || g.Home.Hits == 0) {
			return 1.0
		}
		return 0
	}

	best := 0.0
	for _, m := range []*domain.Milestones{g.AwayMilestones, g.HomeMilestones} {
		if m == nil {
			continue
		}
		if m.PerfectGame {
			best = math.Max(best, 1.0)
		} else if m.NoHitter {
			best = math.Max(best, 0.95)
		}
		if len(m.CycleHitters) > 0 {
			best = math.Max(best, 0.9)
		}
		best = math.Max(best, multiHomerScore(m.MultiHomerHitters))
		best = math.Max(best, highRBIScore(m.HighRBIHitters))
		if p := m.HighStrikeoutPitcher; p != nil {
			best = math.Max(best, highStrikeoutScore(p.StrikeOuts))
		}
	}
	return best
}

func multiHomerScore(hitters []domain.BatterMilestone) float64 {
	if len(hitters) == 0 {
		return 0
	}
	maxHomers := 0
	for _, h := range hitters {
		if h.HomeRuns > maxHomers {
			maxHomers = h.HomeRuns
		}
	}
	switch {
	case maxHomers >= 4:
		return 0.9
	case maxHomers == 3:
		return 0.8
	case len(hitters) > 1:
		return 0.7
	default:
		return 0.6
	}
}

func highRBIScore(hitters []domain.BatterMilestone) float64 {
	if len(hitters) == 0 {
		return 0
	}
	maxRBI := 0
	for _, h := range hitters {
		if h.RBI > maxRBI {
			maxRBI = h.RBI
		}
	}
	switch {
	case maxRBI >= 8:
		return 0.85
	case maxRBI >= 7:
		return 0.75
	case maxRBI >= 6:
		return 0.65
	default:
		return 0.55
	}
}

func highStrikeoutScore(strikeouts int) float64 {
	switch {
	case strikeouts >= 15:
		return 0.9
	case strikeouts >= 13:
		return 0.8
	case strikeouts >= 11:
		return 0.7
	default:
		return 0.6
	}
}

func seasonalContext(g domain.Game) float64 {
	late := lateSeason(g.Date)
	away, home := g.AwayStandings, g.HomeStandings
	if away == nil || home == nil {
		return coarseSeasonalContext(g, late)
	}

	score := 0.0
	if away.FirstPlace && home.FirstPlace {
		score += 0.7
		if late {
			score += 0.2
		}
	}
	if wildCardContender(away) && wildCardContender(home) {
		score += 0.5
		if late {
			score += 0.2
		}
	}
	if away.Division != "" && away.Division == home.Division {
		gamesBack := math.Min(away.GamesBack, home.GamesBack)
		if gamesBack <= 2 {
			score += 0.6
			if late {
				score += 0.2
			}
		} else if gamesBack <= 5 {
			score += 0.4
			if late {
				score += 0.2
			}
		}
	}
	if late && (eliminationImminent(away) || eliminationImminent(home)) {
		score += 0.8
	}
	return math.Min(1.0, score)
}

// coarseSeasonalContext is the degraded rule when detailed standings are
// missing, using only the schedule's division/games-back snapshot.
func coarseSeasonalContext(g domain.Game, late bool) float64 {
	// Without even a coarse snapshot there is nothing to infer.
	if g.Away.DivisionRank == 0 || g.Home.DivisionRank == 0 {
		return 0
	}
	if g.Away.GamesBack > 5 || g.Home.GamesBack > 5 {
		return 0
	}

	score := 0.0
	if g.Away.Division != "" && g.Away.Division == g.Home.Division {
		score += 0.7
		if late {
			score += 0.3
		}
	}
	score += 0.5
	if late {
		score += 0.2
	}
	return math.Min(1.0, score)
}

func wildCardContender(st *domain.TeamStandings) bool {
	return st.WildCardSpot || st.WildCardGamesBack <= 5
}

func eliminationImminent(st *domain.TeamStandings) bool {
	return st.EliminationNumber >= 0 && st.EliminationNumber <= 1
}

func lateSeason(date time.Time) bool {
	return date.Month() >= time.September
}
