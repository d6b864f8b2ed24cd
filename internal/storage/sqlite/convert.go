package sqlite

import (
	"github.com/milchgeldkassierer/iihf-stats/gen/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
)

func convertYears(years []model.ChampionshipYears) []domain.ChampionshipYear {
	converted := make([]domain.ChampionshipYear, 0, len(years))
	for _, year := range years {
		converted = append(converted, convertYear(year))
	}
	return converted
}

func convertYear(year model.ChampionshipYears) domain.ChampionshipYear {
	return domain.ChampionshipYear{
		ID:   int(year.ID),
		Name: year.Name,
		Year: int(year.Year),
	}
}

func convertYearFromDomain(year domain.ChampionshipYear) model.ChampionshipYears {
	return model.ChampionshipYears{
		ID:   int32(year.ID),
		Name: year.Name,
		Year: int32(year.Year),
	}
}

func convertGames(games []model.Games) []domain.Game {
	converted := make([]domain.Game, 0, len(games))
	for _, game := range games {
		converted = append(converted, convertGame(game))
	}
	return converted
}

func convertGame(game model.Games) domain.Game {
	converted := domain.Game{
		ID:        int(game.ID),
		YearID:    int(game.YearID),
		Number:    int(game.Number),
		Round:     game.Round,
		Group:     game.GroupName,
		Team1Code: game.Team1Code,
		Team2Code: game.Team2Code,
	}
	if game.Date != nil {
		converted.Date = *game.Date
	}
	if game.Venue != nil {
		converted.Venue = *game.Venue
	}
	if game.Team1Score != nil {
		score := int(*game.Team1Score)
		converted.Team1Score = &score
	}
	if game.Team2Score != nil {
		score := int(*game.Team2Score)
		converted.Team2Score = &score
	}
	if game.Result != nil {
		converted.Result = domain.ResultType(*game.Result)
	}
	return converted
}

func convertGameFromDomain(game domain.Game) model.Games {
	converted := model.Games{
		ID:        int32(game.ID),
		YearID:    int32(game.YearID),
		Number:    int32(game.Number),
		Round:     game.Round,
		GroupName: game.Group,
		Team1Code: game.Team1Code,
		Team2Code: game.Team2Code,
	}
	if !game.Date.IsZero() {
		date := game.Date
		converted.Date = &date
	}
	if game.Venue != "" {
		venue := game.Venue
		converted.Venue = &venue
	}
	if game.Team1Score != nil {
		score := int32(*game.Team1Score)
		converted.Team1Score = &score
	}
	if game.Team2Score != nil {
		score := int32(*game.Team2Score)
		converted.Team2Score = &score
	}
	if game.Result != "" {
		result := string(game.Result)
		converted.Result = &result
	}
	return converted
}
