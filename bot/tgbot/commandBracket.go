package tgbot

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/milchgeldkassierer/iihf-stats/bot/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
)

type BracketCommand struct {
	tournaments *service.TournamentService
}

func (c *BracketCommand) Run(_ model.User, args string) (string, error) {
	year, err := yearByNumber(c.tournaments, args)
	if err != nil {
		return "", err
	}
	views, err := c.tournaments.GamesWithResolvedTeams(year.ID)
	if err != nil {
		return "", err
	}

	var buffer strings.Builder
	for _, v := range views {
		if !v.IsPlayoff() {
			continue
		}
		buffer.WriteString(strconv.Itoa(v.Number))
		buffer.WriteString(". ")
		buffer.WriteString(v.Round)
		buffer.WriteString(": ")
		buffer.WriteString(v.Team1Resolved)
		buffer.WriteString(" v ")
		buffer.WriteString(v.Team2Resolved)
		if v.HasResult() {
			buffer.WriteString(" ")
			buffer.WriteString(strconv.Itoa(*v.Team1Score))
			buffer.WriteString(":")
			buffer.WriteString(strconv.Itoa(*v.Team2Score))
		}
		buffer.WriteString("\n")
	}
	medals, err := c.tournaments.Medalists(year.ID)
	if err != nil {
		return "", err
	}
	if medals.Gold != "" {
		buffer.WriteString("\nGold: ")
		buffer.WriteString(medals.Gold)
		buffer.WriteString("\nSilver: ")
		buffer.WriteString(medals.Silver)
		buffer.WriteString("\nBronze: ")
		buffer.WriteString(medals.Bronze)
		buffer.WriteString("\n")
	}
	return buffer.String(), nil
}

func (c *BracketCommand) Help() string {
	return "playoff bracket, e.g. /bracket 2024"
}

func (c *BracketCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleUser)
}
