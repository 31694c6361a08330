package normalize

import "gameday-ranker/internal/domain"

// comebackDeficit is the smallest blown lead that counts as a comeback win.
const comebackDeficit = 3

func computeAnalytics(innings []domain.InningScore, awayRuns, homeRuns int) domain.Analytics {
	a := domain.Analytics{
		InningsPlayed: len(innings),
		ExtraInnings:  len(innings) > 9,
		TotalRuns:     awayRuns + homeRuns,
		RunDifference: abs(awayRuns - homeRuns),
	}

	a.LeadChanges, a.LastLeadChangeInning = leadChanges(innings)
	a.WalkOff = walkOff(innings, awayRuns, homeRuns)
	a.MaxLead, a.MaxLeadSide = maxLead(innings)
	a.ScoringInnings = scoringInnings(innings)

	winner := finalWinner(awayRuns, homeRuns)
	if a.MaxLead >= comebackDeficit && a.MaxLeadSide != domain.SideNone &&
		winner != domain.SideNone && winner != a.MaxLeadSide {
		a.ComebackWin = true
		a.ComebackSide = winner
	}
	return a
}

// leadChanges walks the inning sequence in strict away-then-home order.
// A change is counted only when the previous leader was the other side;
// taking the lead from a tie sets the leader without counting. A tie
// after the home half resets the leader to none.
func leadChanges(innings []domain.InningScore) (count, lastInning int) {
	away, home := 0, 0
	leader := domain.SideNone

	for _, in := range innings {
		away += in.AwayRuns
		if away > home {
			if leader == domain.SideHome {
				count++
				lastInning = in.Inning
			}
			leader = domain.SideAway
		}

		home += in.HomeRuns
		if home > away {
			if leader == domain.SideAway {
				count++
				lastInning = in.Inning
			}
			leader = domain.SideHome
		} else if home == away {
			leader = domain.SideNone
		}
	}
	return count, lastInning
}

// walkOff is true when the home team won a game that reached the ninth
// inning and was tied or trailing entering its final at-bat.
func walkOff(innings []domain.InningScore, awayRuns, homeRuns int) bool {
	if homeRuns <= awayRuns || len(innings) < 9 {
		return false
	}
	last := innings[len(innings)-1]
	return homeRuns-last.HomeRuns <= awayRuns
}

// maxLead reports the largest lead either side held at any point of the
// same away-then-home walk, and which side held it.
func maxLead(innings []domain.InningScore) (int, domain.Side) {
	away, home := 0, 0
	lead := 0
	side := domain.SideNone

	for _, in := range innings {
		away += in.AwayRuns
		if diff := away - home; diff > lead {
			lead = diff
			side = domain.SideAway
		}

		home += in.HomeRuns
		if diff := home - away; diff > lead {
			lead = diff
			side = domain.SideHome
		}
	}
	return lead, side
}

func scoringInnings(innings []domain.InningScore) int {
	count := 0
	for _, in := range innings {
		if in.AwayRuns > 0 || in.HomeRuns > 0 {
			count++
		}
	}
	return count
}

func finalWinner(awayRuns, homeRuns int) domain.Side {
	switch {
	case homeRuns > awayRuns:
		return domain.SideHome
	case awayRuns > homeRuns:
		return domain.SideAway
	default:
		return domain.SideNone
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
