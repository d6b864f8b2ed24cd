package sqlite

import (
	"database/sql"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/milchgeldkassierer/iihf-stats/gen/model"
	"github.com/milchgeldkassierer/iihf-stats/gen/table"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
	"github.com/milchgeldkassierer/iihf-stats/internal/storage"
)

type Storage struct {
	db *sql.DB
}

var _ storage.YearStorage = (*Storage)(nil)
var _ storage.GameStorage = (*Storage)(nil)
var _ storage.OverrideStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) ListYears() ([]domain.ChampionshipYear, error) {
	var years []model.ChampionshipYears
	err := table.ChampionshipYears.
		SELECT(table.ChampionshipYears.AllColumns).
		FROM(table.ChampionshipYears).
		ORDER_BY(table.ChampionshipYears.Year.ASC()).
		Query(s.db, &years)
	if err != nil {
		return nil, err
	}
	return convertYears(years), nil
}

func (s *Storage) GetYear(id int) (domain.ChampionshipYear, error) {
	var year model.ChampionshipYears
	err := table.ChampionshipYears.
		SELECT(table.ChampionshipYears.AllColumns).
		FROM(table.ChampionshipYears).
		WHERE(table.ChampionshipYears.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &year)
	if err != nil {
		return domain.ChampionshipYear{}, err
	}
	return convertYear(year), nil
}

func (s *Storage) AddYear(year domain.ChampionshipYear) (domain.ChampionshipYear, error) {
	var inserted model.ChampionshipYears
	err := table.ChampionshipYears.
		INSERT(table.ChampionshipYears.MutableColumns).
		MODEL(convertYearFromDomain(year)).
		RETURNING(table.ChampionshipYears.AllColumns).
		Query(s.db, &inserted)
	if err != nil {
		return domain.ChampionshipYear{}, err
	}
	return convertYear(inserted), nil
}

func (s *Storage) ImportYears(years []domain.ChampionshipYear) error {
	for _, year := range years {
		var inserted model.ChampionshipYears
		err := table.ChampionshipYears.
			INSERT(table.ChampionshipYears.AllColumns).
			MODEL(convertYearFromDomain(year)).
			RETURNING(table.ChampionshipYears.AllColumns).
			Query(s.db, &inserted)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) ListGames(yearID int) ([]domain.Game, error) {
	var games []model.Games
	err := table.Games.
		SELECT(table.Games.AllColumns).
		FROM(table.Games).
		WHERE(table.Games.YearID.EQ(sqlite.Int(int64(yearID)))).
		ORDER_BY(table.Games.Number.ASC()).
		Query(s.db, &games)
	if err != nil {
		return nil, err
	}
	return convertGames(games), nil
}

func (s *Storage) GetGameByNumber(yearID, number int) (domain.Game, error) {
	var game model.Games
	err := table.Games.
		SELECT(table.Games.AllColumns).
		FROM(table.Games).
		WHERE(
			table.Games.YearID.EQ(sqlite.Int(int64(yearID))).
				AND(table.Games.Number.EQ(sqlite.Int(int64(number)))),
		).
		Query(s.db, &game)
	if err != nil {
		return domain.Game{}, err
	}
	return convertGame(game), nil
}

func (s *Storage) AddGame(game domain.Game) (domain.Game, error) {
	var inserted model.Games
	err := table.Games.
		INSERT(table.Games.MutableColumns).
		MODEL(convertGameFromDomain(game)).
		RETURNING(table.Games.AllColumns).
		Query(s.db, &inserted)
	if err != nil {
		return domain.Game{}, err
	}
	return convertGame(inserted), nil
}

func (s *Storage) UpdateScore(gameID int, team1Score, team2Score int, result domain.ResultType) error {
	res := string(result)
	_, err := table.Games.
		UPDATE(table.Games.Team1Score, table.Games.Team2Score, table.Games.Result).
		SET(
			sqlite.Int(int64(team1Score)),
			sqlite.Int(int64(team2Score)),
			sqlite.String(res),
		).
		WHERE(table.Games.ID.EQ(sqlite.Int(int64(gameID)))).
		Exec(s.db)
	return err
}

func (s *Storage) ImportGames(games []domain.Game) error {
	for _, game := range games {
		var inserted model.Games
		err := table.Games.
			INSERT(table.Games.AllColumns).
			MODEL(convertGameFromDomain(game)).
			RETURNING(table.Games.AllColumns).
			Query(s.db, &inserted)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) ListOverrides(yearID int) (map[string]string, error) {
	var overrides []model.SeedingOverrides
	err := table.SeedingOverrides.
		SELECT(table.SeedingOverrides.AllColumns).
		FROM(table.SeedingOverrides).
		WHERE(table.SeedingOverrides.YearID.EQ(sqlite.Int(int64(yearID)))).
		Query(s.db, &overrides)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(overrides))
	for _, o := range overrides {
		m[o.Code] = o.TeamCode
	}
	return m, nil
}

func (s *Storage) SetOverride(yearID int, code, teamCode string) error {
	_, err := table.SeedingOverrides.
		DELETE().
		WHERE(
			table.SeedingOverrides.YearID.EQ(sqlite.Int(int64(yearID))).
				AND(table.SeedingOverrides.Code.EQ(sqlite.String(code))),
		).
		Exec(s.db)
	if err != nil {
		return err
	}
	_, err = table.SeedingOverrides.
		INSERT(table.SeedingOverrides.MutableColumns).
		MODEL(model.SeedingOverrides{
			YearID:   int32(yearID),
			Code:     code,
			TeamCode: teamCode,
		}).
		Exec(s.db)
	return err
}
