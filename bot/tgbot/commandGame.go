package tgbot

import (
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/milchgeldkassierer/iihf-stats/bot/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
)

type GameCommand struct {
	tournaments *service.TournamentService
}

var errGameArgs = errors.New("usage: /game <year> <game number>")

func (c *GameCommand) Run(_ model.User, args string) (string, error) {
	yearArg, numberArg, ok := strings.Cut(args, " ")
	if !ok {
		return "", errGameArgs
	}
	year, err := yearByNumber(c.tournaments, yearArg)
	if err != nil {
		return "", err
	}
	number, err := strconv.Atoi(strings.TrimSpace(numberArg))
	if err != nil {
		return "", errGameArgs
	}
	view, err := c.tournaments.ResolveParticipants(year.ID, number)
	if err != nil {
		return "", err
	}

	var buffer strings.Builder
	buffer.WriteString("Game ")
	buffer.WriteString(strconv.Itoa(view.Number))
	buffer.WriteString(" (")
	buffer.WriteString(view.Round)
	buffer.WriteString("): ")
	buffer.WriteString(view.Team1Resolved)
	buffer.WriteString(" v ")
	buffer.WriteString(view.Team2Resolved)
	if view.HasResult() {
		buffer.WriteString(" ")
		buffer.WriteString(strconv.Itoa(*view.Team1Score))
		buffer.WriteString(":")
		buffer.WriteString(strconv.Itoa(*view.Team2Score))
		buffer.WriteString(" ")
		buffer.WriteString(string(view.Result))
	}
	return buffer.String(), nil
}

func (c *GameCommand) Help() string {
	return "one game with resolved teams, e.g. /game 2024 57"
}

func (c *GameCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleUser)
}
