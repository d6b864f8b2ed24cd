package tgbot

import (
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/milchgeldkassierer/iihf-stats/bot/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
	"github.com/milchgeldkassierer/iihf-stats/internal/normalize"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
)

type HeadToHeadCommand struct {
	tournaments *service.TournamentService
}

var errH2HArgs = errors.New("usage: /h2h <team> <team>, e.g. /h2h CAN FIN")

func (c *HeadToHeadCommand) Run(_ model.User, args string) (string, error) {
	first, second, ok := strings.Cut(args, " ")
	if !ok {
		return "", errH2HArgs
	}
	teamA := normalize.Code(first)
	teamB := normalize.Code(second)
	if !domain.IsFinalCode(teamA) || !domain.IsFinalCode(teamB) {
		return "", errH2HArgs
	}
	h2h, err := c.tournaments.HeadToHead(teamA, teamB)
	if err != nil {
		return "", err
	}
	if h2h.Games == 0 {
		return teamA + " and " + teamB + " have not played each other", nil
	}

	var buffer strings.Builder
	buffer.WriteString(teamA)
	buffer.WriteString(" v ")
	buffer.WriteString(teamB)
	buffer.WriteString(": ")
	buffer.WriteString(strconv.Itoa(h2h.Games))
	buffer.WriteString(" games, ")
	buffer.WriteString(strconv.Itoa(h2h.WinsA))
	buffer.WriteString("-")
	buffer.WriteString(strconv.Itoa(h2h.WinsB))
	buffer.WriteString(" wins, goals ")
	buffer.WriteString(strconv.Itoa(h2h.GoalsA))
	buffer.WriteString(":")
	buffer.WriteString(strconv.Itoa(h2h.GoalsB))
	return buffer.String(), nil
}

func (c *HeadToHeadCommand) Help() string {
	return "all-time record between two teams, e.g. /h2h CAN FIN"
}

func (c *HeadToHeadCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleUser)
}
