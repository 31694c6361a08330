package normalize

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/logging"
	"gameday-ranker/internal/providers/statsapi"
	"gameday-ranker/internal/timeutil"
)

// Placeholder names used when no upstream name shape matches.
const (
	UnknownPlayer = "Unknown Player"
	TBDPitcher    = "TBD"
)

// Normalizer converts raw schedule payloads into canonical games with
// derived analytics. A malformed record is skipped and logged; it never
// aborts the batch.
type Normalizer struct {
	logger *slog.Logger
}

// New constructs a Normalizer.
func New(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Games returns the canonical, deduplicated list of completed games in
// the payload. Records with any other status are silently dropped.
func (n *Normalizer) Games(payload *statsapi.SchedulePayload) []domain.Game {
	return n.normalize(payload, domain.StatusFinal)
}

// FutureGames returns the canonical list of not-yet-played games in the
// payload. Records with any other status are silently dropped.
func (n *Normalizer) FutureGames(payload *statsapi.SchedulePayload) []domain.Game {
	return n.normalize(payload, domain.StatusScheduled)
}

func (n *Normalizer) normalize(payload *statsapi.SchedulePayload, want domain.GameStatus) []domain.Game {
	if payload == nil {
		return nil
	}

	games := make([]domain.Game, 0)
	for _, bucket := range payload.Dates {
		for _, raw := range bucket.Games {
			if mapStatus(raw.Status) != want {
				continue
			}
			game, err := mapGame(raw)
			if err != nil {
				logging.Warn(n.logger, "skipping malformed game record",
					logging.FieldGame, raw.GamePk,
					logging.FieldDate, bucket.Date,
					"err", err,
				)
				continue
			}
			games = append(games, game)
		}
	}
	return Dedupe(games)
}

func mapGame(raw statsapi.ScheduleGame) (domain.Game, error) {
	if raw.GamePk == 0 {
		return domain.Game{}, errors.New("missing game id")
	}
	if raw.Teams.Away.Team.ID == 0 || raw.Teams.Home.Team.ID == 0 {
		return domain.Game{}, errors.New("missing team record")
	}
	date, err := timeutil.ParseTimestamp(raw.GameDate)
	if err != nil {
		return domain.Game{}, fmt.Errorf("invalid game date %q: %w", raw.GameDate, err)
	}

	status := mapStatus(raw.Status)

	var awayLineup, homeLineup []statsapi.Person
	if raw.Lineups != nil {
		awayLineup = raw.Lineups.AwayPlayers
		homeLineup = raw.Lineups.HomePlayers
	}
	away := mapTeamSide(raw.Teams.Away, status, awayLineup)
	home := mapTeamSide(raw.Teams.Home, status, homeLineup)

	innings := mapInnings(raw.Linescore)
	if raw.Linescore != nil {
		applyLine(&away, raw.Teams.Away.Score, raw.Linescore.Teams.Away)
		applyLine(&home, raw.Teams.Home.Score, raw.Linescore.Teams.Home)
	} else {
		applyLine(&away, raw.Teams.Away.Score, statsapi.LinescoreLine{})
		applyLine(&home, raw.Teams.Home.Score, statsapi.LinescoreLine{})
	}

	game := domain.Game{
		ID:             fmt.Sprintf("%s-%d", statsapi.ProviderName, raw.GamePk),
		Provider:       statsapi.ProviderName,
		UpstreamGameID: raw.GamePk,
		Date:           date,
		Venue:          raw.Venue.Name,
		Status:         status,
		Away:           away,
		Home:           home,
		Innings:        innings,
	}
	game.Analytics = computeAnalytics(innings, away.Runs, home.Runs)
	return game, nil
}

func mapTeamSide(raw statsapi.ScheduleTeamSide, status domain.GameStatus, lineup []statsapi.Person) domain.TeamSide {
	side := domain.TeamSide{
		TeamID:       fmt.Sprintf("team-%d", raw.Team.ID),
		Name:         raw.Team.Name,
		Abbreviation: raw.Team.Abbreviation,
		LogoURL:      fmt.Sprintf("https://www.mlbstatic.com/team-logos/%d.svg", raw.Team.ID),
		Wins:         raw.LeagueRecord.Wins,
		Losses:       raw.LeagueRecord.Losses,
	}

	if rec := raw.Team.Record; rec != nil {
		side.DivisionRank = statsapi.ParseRank(rec.DivisionRank)
		side.GamesBack = statsapi.ParseGamesBack(rec.GamesBack)
		side.Division = rec.Division
	}

	pitcherFallback := UnknownPlayer
	if status == domain.StatusScheduled {
		pitcherFallback = TBDPitcher
	}
	if raw.ProbablePitcher != nil {
		side.Pitcher = raw.ProbablePitcher.DisplayName(pitcherFallback)
	} else if status == domain.StatusScheduled {
		side.Pitcher = TBDPitcher
	}

	for _, p := range lineup {
		side.Lineup = append(side.Lineup, p.DisplayName(UnknownPlayer))
	}
	return side
}

// applyLine fills a side's final line, preferring the schedule score and
// falling back to linescore totals.
func applyLine(side *domain.TeamSide, score *int, line statsapi.LinescoreLine) {
	if score != nil {
		side.Runs = *score
	} else {
		side.Runs = line.Runs
	}
	side.Hits = line.Hits
	side.Errors = line.Errors
}

// mapInnings keeps only innings that were actually played: an inning
// counts once either half has recorded runs.
func mapInnings(line *statsapi.Linescore) []domain.InningScore {
	if line == nil || len(line.Innings) == 0 {
		return nil
	}
	innings := make([]domain.InningScore, 0, len(line.Innings))
	for _, in := range line.Innings {
		if in.Away.Runs == nil && in.Home.Runs == nil {
			continue
		}
		innings = append(innings, domain.InningScore{
			Inning:   in.Num,
			AwayRuns: runsOrZero(in.Away.Runs),
			HomeRuns: runsOrZero(in.Home.Runs),
		})
	}
	return innings
}

func runsOrZero(runs *int) int {
	if runs == nil {
		return 0
	}
	return *runs
}

func mapStatus(status statsapi.GameStatus) domain.GameStatus {
	switch strings.ToLower(status.DetailedState) {
	case "postponed":
		return domain.StatusPostponed
	case "canceled", "cancelled":
		return domain.StatusCanceled
	}
	switch strings.ToLower(status.AbstractGameState) {
	case "final":
		return domain.StatusFinal
	case "live":
		return domain.StatusInProgress
	default:
		return domain.StatusScheduled
	}
}
