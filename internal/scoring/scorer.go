package scoring

import (
	"math"
	"sort"

	"gameday-ranker/internal/domain"
)

// Score computes the 0-100 excitement score for a normalized game.
//
// Each enabled factor contributes its weighted sub-score; the total is
// divided by the sum of enabled weights so any subset of factors still
// spans the full range. The extra-innings factor drops out of both
// numerator and denominator for nine-inning games.
func Score(g domain.Game, enabled FactorSet) float64 {
	var total, weightSum float64

	for _, f := range factorOrder {
		if !enabled.Enabled(f) {
			continue
		}
		if f == FactorExtraInnings && !g.Analytics.ExtraInnings {
			continue
		}
		w := weights[f]
		total += subScore(f, g) * w
		weightSum += w
	}

	if weightSum == 0 {
		return 0
	}
	return clamp(total/weightSum*100, 0, 100)
}

// Rank returns the games sorted by excitement score descending, each
// carrying its score. The input slice is left untouched; equal scores
// keep their input order.
func Rank(games []domain.Game, enabled FactorSet) []domain.Game {
	ranked := make([]domain.Game, len(games))
	copy(ranked, games)

	for i := range ranked {
		ranked[i].ExcitementScore = Score(ranked[i], enabled)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ExcitementScore > ranked[j].ExcitementScore
	})
	return ranked
}

func subScore(f Factor, g domain.Game) float64 {
	switch f {
	case FactorCloseGame:
		return closeGame(g)
	case FactorLeadChanges:
		return leadChanges(g)
	case FactorLateGameDrama:
		return lateGameDrama(g)
	case FactorComebackWin:
		return comebackWin(g)
	case FactorExtraInnings:
		return extraInnings(g)
	case FactorHighScoring:
		return highScoring(g)
	case FactorTeamRankings:
		return teamRankings(g)
	case FactorTotalHits:
		return totalHits(g)
	case FactorErrors:
		return fieldingErrors(g)
	case FactorScoringDistribution:
		return scoringDistribution(g)
	case FactorRivalry:
		return rivalry(g)
	case FactorPlayerMilestones:
		return playerMilestones(g)
	case FactorSeasonalContext:
		return seasonalContext(g)
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
