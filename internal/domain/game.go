package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type ResultType string

const (
	ResultRegulation ResultType = "REG"
	ResultOvertime   ResultType = "OT"
	ResultShootout   ResultType = "SO"
)

// Round labels as they appear in imported fixtures.
var (
	PrelimRounds  = mapset.NewSet("Preliminary Round", "Group Stage", "Round Robin")
	PlayoffRounds = mapset.NewSet("Quarterfinals", "Semifinals", "Final", "Bronze Medal Game", "Gold Medal Game", "Playoff")
)

// Game is a scheduled or completed match of one championship year.
// Team1Code and Team2Code hold either a final 3-letter team code or a
// symbolic placeholder such as "A1", "W(57)" or "L(SF1)".
type Game struct {
	ID         int
	YearID     int
	Number     int
	Round      string
	Group      string
	Date       time.Time
	Venue      string
	Team1Code  string
	Team2Code  string
	Team1Score *int
	Team2Score *int
	Result     ResultType
}

// HasResult reports whether the game has a definite result. Scores are
// entered together with the result type, never one without the other.
func (g Game) HasResult() bool {
	return g.Team1Score != nil && g.Team2Score != nil
}

func (g Game) IsPreliminary() bool {
	return PrelimRounds.Contains(g.Round)
}

func (g Game) IsPlayoff() bool {
	return PlayoffRounds.Contains(g.Round)
}

// WinnerLoser returns the two team codes of the game ordered by the score.
// The codes are returned as stored, they may still be placeholders.
func (g Game) WinnerLoser() (winner, loser string, ok bool) {
	if !g.HasResult() {
		return "", "", false
	}
	if *g.Team1Score > *g.Team2Score {
		return g.Team1Code, g.Team2Code, true
	}
	return g.Team2Code, g.Team1Code, true
}

// ChampionshipYear is one edition of the tournament.
type ChampionshipYear struct {
	ID   int
	Name string
	Year int
}

// GameView is a game together with the best currently known identity of
// both participants. Unresolved participants keep the placeholder code.
type GameView struct {
	Game
	Team1Resolved string
	Team2Resolved string
}
