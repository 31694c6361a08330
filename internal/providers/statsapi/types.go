package statsapi

// Raw payload shapes as the upstream API returns them. Optional numeric
// fields use pointers so "not yet played" is distinguishable from zero.

// SchedulePayload is the date-bucketed response of the schedule endpoint.
type SchedulePayload struct {
	TotalGames int            `json:"totalGames"`
	Dates      []ScheduleDate `json:"dates"`
}

// ScheduleDate is one calendar day's bucket of games.
type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// ScheduleGame is one raw game record within a date bucket.
type ScheduleGame struct {
	GamePk    int64          `json:"gamePk"`
	GameDate  string         `json:"gameDate"`
	Status    GameStatus     `json:"status"`
	Teams     ScheduleTeams  `json:"teams"`
	Venue     Venue          `json:"venue"`
	Linescore *Linescore     `json:"linescore,omitempty"`
	Lineups   *GameLineups   `json:"lineups,omitempty"`
}

// GameStatus carries the upstream's two status granularities.
type GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

// ScheduleTeams pairs the two sides of a scheduled game.
type ScheduleTeams struct {
	Away ScheduleTeamSide `json:"away"`
	Home ScheduleTeamSide `json:"home"`
}

// ScheduleTeamSide is one side's team, score and record on the schedule.
type ScheduleTeamSide struct {
	Team            Team         `json:"team"`
	Score           *int         `json:"score,omitempty"`
	LeagueRecord    LeagueRecord `json:"leagueRecord"`
	ProbablePitcher *Person      `json:"probablePitcher,omitempty"`
}

// Team identifies an upstream team; Record is only present on some
// hydrated payloads.
type Team struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Abbreviation string      `json:"abbreviation,omitempty"`
	Record       *TeamRecord `json:"record,omitempty"`
}

// TeamRecord is the coarse standings snapshot attached to a team.
type TeamRecord struct {
	DivisionRank string `json:"divisionRank,omitempty"`
	GamesBack    string `json:"gamesBack,omitempty"`
	Division     string `json:"division,omitempty"`
}

// LeagueRecord is a team's win-loss record.
type LeagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct,omitempty"`
}

// Venue names where a game is played.
type Venue struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// GameLineups carries announced batting orders when hydrated.
type GameLineups struct {
	AwayPlayers []Person `json:"awayPlayers,omitempty"`
	HomePlayers []Person `json:"homePlayers,omitempty"`
}

// Linescore is the inning-by-inning scoring summary.
type Linescore struct {
	CurrentInning int            `json:"currentInning,omitempty"`
	Innings       []Inning       `json:"innings"`
	Teams         LinescoreTeams `json:"teams"`
}

// Inning holds both halves of one inning.
type Inning struct {
	Num  int        `json:"num"`
	Away InningHalf `json:"away"`
	Home InningHalf `json:"home"`
}

// InningHalf holds one side's line for one inning. Runs is nil when the
// half has not been played (e.g. a skipped bottom of the ninth).
type InningHalf struct {
	Runs   *int `json:"runs,omitempty"`
	Hits   *int `json:"hits,omitempty"`
	Errors *int `json:"errors,omitempty"`
}

// LinescoreTeams carries per-side game totals.
type LinescoreTeams struct {
	Away LinescoreLine `json:"away"`
	Home LinescoreLine `json:"home"`
}

// LinescoreLine is one side's runs/hits/errors totals.
type LinescoreLine struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// BoxScorePayload is the detailed per-player response of the boxscore endpoint.
type BoxScorePayload struct {
	Teams BoxScoreTeams `json:"teams"`
}

// BoxScoreTeams pairs the two sides of a box score.
type BoxScoreTeams struct {
	Away BoxScoreTeam `json:"away"`
	Home BoxScoreTeam `json:"home"`
}

// BoxScoreTeam is one side's aggregate stats and per-player lines.
type BoxScoreTeam struct {
	Team      Team                      `json:"team"`
	TeamStats TeamStats                 `json:"teamStats"`
	Players   map[string]BoxScorePlayer `json:"players"`
}

// TeamStats aggregates one side's batting, pitching and fielding totals.
type TeamStats struct {
	Batting  BattingStats  `json:"batting"`
	Pitching PitchingStats `json:"pitching"`
	Fielding FieldingStats `json:"fielding"`
}

// BattingStats is a batting line, per player or per team.
type BattingStats struct {
	Hits        int `json:"hits"`
	Doubles     int `json:"doubles"`
	Triples     int `json:"triples"`
	HomeRuns    int `json:"homeRuns"`
	RBI         int `json:"rbi"`
	BaseOnBalls int `json:"baseOnBalls"`
	HitByPitch  int `json:"hitByPitch"`
	StrikeOuts  int `json:"strikeOuts"`
}

// PitchingStats is a pitching line, per player or per team.
type PitchingStats struct {
	StrikeOuts     int    `json:"strikeOuts"`
	InningsPitched string `json:"inningsPitched,omitempty"`
}

// FieldingStats is a fielding line, per player or per team.
type FieldingStats struct {
	Errors int `json:"errors"`
}

// BoxScorePlayer is one player's box score entry.
type BoxScorePlayer struct {
	Person Person      `json:"person"`
	Stats  PlayerStats `json:"stats"`
}

// PlayerStats groups a player's batting and pitching lines for one game.
type PlayerStats struct {
	Batting  BattingStats  `json:"batting"`
	Pitching PitchingStats `json:"pitching"`
}

// StandingsPayload is the per-division response of the standings endpoint.
type StandingsPayload struct {
	Records []DivisionRecord `json:"records"`
}

// DivisionRecord groups team standings under one division.
type DivisionRecord struct {
	Division    Division       `json:"division"`
	TeamRecords []TeamStanding `json:"teamRecords"`
}

// Division identifies a division; Name includes the league prefix
// (e.g. "American League East").
type Division struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TeamStanding is one team's detailed standings line. Rank and
// games-back fields arrive as strings ("-" for leaders, "E" once
// eliminated).
type TeamStanding struct {
	Team              Team         `json:"team"`
	LeagueRecord      LeagueRecord `json:"leagueRecord"`
	DivisionRank      string       `json:"divisionRank"`
	GamesBack         string       `json:"gamesBack"`
	WildCardRank      string       `json:"wildCardRank,omitempty"`
	WildCardGamesBack string       `json:"wildCardGamesBack,omitempty"`
	EliminationNumber string       `json:"eliminationNumber,omitempty"`
}

// RosterPayload is the response of the team roster endpoint.
type RosterPayload struct {
	Roster []RosterEntry `json:"roster"`
}

// RosterEntry is one player on a team roster.
type RosterEntry struct {
	Person   Person   `json:"person"`
	Position Position `json:"position"`
}

// Position describes a roster player's fielding position.
type Position struct {
	Code         string `json:"code,omitempty"`
	Type         string `json:"type,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// PlayerStatsPayload is the response of the player season stats endpoint.
type PlayerStatsPayload struct {
	Stats []StatGroup `json:"stats"`
}

// StatGroup is one stat grouping (e.g. season pitching) with its splits.
type StatGroup struct {
	Group  StatGroupMeta `json:"group"`
	Splits []StatSplit   `json:"splits"`
}

// StatGroupMeta names a stat grouping.
type StatGroupMeta struct {
	DisplayName string `json:"displayName"`
}

// StatSplit is one split row within a stat group.
type StatSplit struct {
	Stat SeasonPitchingStats `json:"stat"`
}

// SeasonPitchingStats is a pitcher's season line. ERA and innings
// arrive as strings.
type SeasonPitchingStats struct {
	ERA            string `json:"era"`
	InningsPitched string `json:"inningsPitched"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	StrikeOuts     int    `json:"strikeOuts"`
}
