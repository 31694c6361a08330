package domain

// RivalryTier classifies a matchup against the configured rivalry table.
type RivalryTier string

const (
	RivalryNone   RivalryTier = "none"
	RivalryRecent RivalryTier = "recent"
	RivalryIconic RivalryTier = "iconic"
)

// BatterMilestone names a batter and the single-game line that qualified them.
type BatterMilestone struct {
	Name     string `json:"name"`
	HomeRuns int    `json:"homeRuns,omitempty"`
	RBI      int    `json:"rbi,omitempty"`
}

// PitcherMilestone names a pitcher and their single-game strikeout total.
type PitcherMilestone struct {
	Name       string `json:"name"`
	StrikeOuts int    `json:"strikeOuts"`
}

// Milestones holds the rare individual feats detected for one side of a
// game from the detailed box score.
type Milestones struct {
	NoHitter             bool              `json:"noHitter"`
	PerfectGame          bool              `json:"perfectGame"`
	CycleHitters         []string          `json:"cycleHitters,omitempty"`
	MultiHomerHitters    []BatterMilestone `json:"multiHomerHitters,omitempty"`
	HighRBIHitters       []BatterMilestone `json:"highRBIHitters,omitempty"`
	HighStrikeoutPitcher *PitcherMilestone `json:"highStrikeoutPitcher,omitempty"`
}

// Any reports whether at least one milestone was detected.
func (m *Milestones) Any() bool {
	if m == nil {
		return false
	}
	return m.NoHitter || m.PerfectGame || len(m.CycleHitters) > 0 ||
		len(m.MultiHomerHitters) > 0 || len(m.HighRBIHitters) > 0 ||
		m.HighStrikeoutPitcher != nil
}

// TeamStandings is the detailed seasonal context for one team.
// EliminationNumber is -1 when the upstream value was not numeric
// (division leaders report "-", eliminated teams report "E").
type TeamStandings struct {
	Division          string  `json:"division"`
	DivisionRank      int     `json:"divisionRank"`
	GamesBack         float64 `json:"gamesBack"`
	WildCardRank      int     `json:"wildCardRank,omitempty"`
	WildCardGamesBack float64 `json:"wildCardGamesBack,omitempty"`
	EliminationNumber int     `json:"eliminationNumber,omitempty"`
	FirstPlace        bool    `json:"firstPlace"`
	WildCardSpot      bool    `json:"wildCardSpot"`
}
