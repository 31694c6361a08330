package domain

import "time"

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Side identifies which half of a matchup a value refers to.
type Side string

const (
	SideNone Side = ""
	SideAway Side = "away"
	SideHome Side = "home"
)

// InningScore records the runs each side scored in one inning.
type InningScore struct {
	Inning   int `json:"inning"`
	AwayRuns int `json:"awayRuns"`
	HomeRuns int `json:"homeRuns"`
}

// TeamSide is one team's view of a game: identity, line, record and a
// coarse standings snapshot as carried on the schedule payload.
type TeamSide struct {
	TeamID       string   `json:"teamId"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	LogoURL      string   `json:"logoUrl,omitempty"`
	Runs         int      `json:"runs"`
	Hits         int      `json:"hits"`
	Errors       int      `json:"errors"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Division     string   `json:"division,omitempty"`
	DivisionRank int      `json:"divisionRank,omitempty"`
	GamesBack    float64  `json:"gamesBack,omitempty"`
	Pitcher      string   `json:"pitcher,omitempty"`
	Lineup       []string `json:"lineup,omitempty"`
}

// Game is the canonical game shape the scorer consumes. Analytics are
// computed once during normalization and never rewritten; enrichment
// fields are attached later and may stay nil.
type Game struct {
	ID             string        `json:"id"`
	Provider       string        `json:"provider"`
	UpstreamGameID int64         `json:"upstreamGameId"`
	Date           time.Time     `json:"date"`
	Venue          string        `json:"venue,omitempty"`
	Status         GameStatus    `json:"status"`
	Away           TeamSide      `json:"away"`
	Home           TeamSide      `json:"home"`
	Innings        []InningScore `json:"innings,omitempty"`
	Analytics      Analytics     `json:"analytics"`

	AwayMilestones *Milestones    `json:"awayMilestones,omitempty"`
	HomeMilestones *Milestones    `json:"homeMilestones,omitempty"`
	AwayStandings  *TeamStandings `json:"awayStandings,omitempty"`
	HomeStandings  *TeamStandings `json:"homeStandings,omitempty"`
	Rivalry        RivalryTier    `json:"rivalry,omitempty"`

	ExcitementScore float64 `json:"excitementScore"`
}

// Winner reports which side won a completed game, or SideNone for a tie
// or a game without a final score.
func (g Game) Winner() Side {
	switch {
	case g.Home.Runs > g.Away.Runs:
		return SideHome
	case g.Away.Runs > g.Home.Runs:
		return SideAway
	default:
		return SideNone
	}
}

// RankingsResponse is the payload written for a ranked day of games.
type RankingsResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewRankingsResponse builds a RankingsResponse payload.
func NewRankingsResponse(date string, games []Game) RankingsResponse {
	return RankingsResponse{
		Date:  date,
		Games: games,
	}
}
