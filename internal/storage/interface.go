package storage

import (
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

type YearStorage interface {
	ListYears() ([]domain.ChampionshipYear, error)
	GetYear(id int) (domain.ChampionshipYear, error)
	AddYear(domain.ChampionshipYear) (domain.ChampionshipYear, error)

	ImportYears([]domain.ChampionshipYear) error
}

type GameStorage interface {
	ListGames(yearID int) ([]domain.Game, error)
	GetGameByNumber(yearID, number int) (domain.Game, error)
	AddGame(domain.Game) (domain.Game, error)
	UpdateScore(gameID int, team1Score, team2Score int, result domain.ResultType) error

	ImportGames([]domain.Game) error
}

type OverrideStorage interface {
	// ListOverrides returns the configured seeding overrides of one
	// championship year as a code to team map.
	ListOverrides(yearID int) (map[string]string, error)
	SetOverride(yearID int, code, teamCode string) error
}
