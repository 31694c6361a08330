package milestones

import (
	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/providers/statsapi"
)

// Qualifying thresholds for single-game milestone facts.
const (
	multiHomerMin     = 2
	highRBIMin        = 5
	highStrikeoutsMin = 10
)

const unknownPlayer = "Unknown Player"

// Extract derives per-side milestone facts from a detailed box score.
// Pitching feats for a side are judged against the other side's batting
// line plus that side's own fielding errors.
func Extract(box *statsapi.BoxScorePayload) (away, home *domain.Milestones) {
	if box == nil {
		return nil, nil
	}
	return sideMilestones(box.Teams.Away, box.Teams.Home),
		sideMilestones(box.Teams.Home, box.Teams.Away)
}

func sideMilestones(side, opponent statsapi.BoxScoreTeam) *domain.Milestones {
	m := &domain.Milestones{}

	m.NoHitter = opponent.TeamStats.Batting.Hits == 0
	m.PerfectGame = m.NoHitter &&
		opponent.TeamStats.Batting.BaseOnBalls == 0 &&
		opponent.TeamStats.Batting.HitByPitch == 0 &&
		side.TeamStats.Fielding.Errors == 0

	for _, player := range side.Players {
		name := player.Person.DisplayName(unknownPlayer)
		batting := player.Stats.Batting

		if hitForCycle(batting) {
			m.CycleHitters = append(m.CycleHitters, name)
		}
		if batting.HomeRuns >= multiHomerMin {
			m.MultiHomerHitters = append(m.MultiHomerHitters, domain.BatterMilestone{
				Name:     name,
				HomeRuns: batting.HomeRuns,
			})
		}
		if batting.RBI >= highRBIMin {
			m.HighRBIHitters = append(m.HighRBIHitters, domain.BatterMilestone{
				Name: name,
				RBI:  batting.RBI,
			})
		}

		// Only the side's best qualifying strikeout performance is kept.
		if ks := player.Stats.Pitching.StrikeOuts; ks >= highStrikeoutsMin {
			if m.HighStrikeoutPitcher == nil || ks > m.HighStrikeoutPitcher.StrikeOuts {
				m.HighStrikeoutPitcher = &domain.PitcherMilestone{
					Name:       name,
					StrikeOuts: ks,
				}
			}
		}
	}
	return m
}

// hitForCycle reports a single, double, triple and home run in one game.
// Singles are not reported upstream and are derived from the other hits.
func hitForCycle(b statsapi.BattingStats) bool {
	singles := b.Hits - b.Doubles - b.Triples - b.HomeRuns
	return singles >= 1 && b.Doubles >= 1 && b.Triples >= 1 && b.HomeRuns >= 1
}
