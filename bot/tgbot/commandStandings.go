package tgbot

import (
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/milchgeldkassierer/iihf-stats/bot/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
)

type StandingsCommand struct {
	tournaments *service.TournamentService
}

func (c *StandingsCommand) Run(_ model.User, args string) (string, error) {
	year, err := yearByNumber(c.tournaments, args)
	if err != nil {
		return "", err
	}
	groups, err := c.tournaments.Standings(year.ID)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var buffer strings.Builder
	for _, name := range names {
		buffer.WriteString(name)
		buffer.WriteString("\n")
		for _, ts := range groups[name] {
			buffer.WriteString(strconv.Itoa(ts.RankInGroup))
			buffer.WriteString(". ")
			buffer.WriteString(ts.Name)
			buffer.WriteString(" - ")
			buffer.WriteString(strconv.Itoa(ts.Points))
			buffer.WriteString(" pts\n")
		}
		buffer.WriteString("\n")
	}
	return buffer.String(), nil
}

func (c *StandingsCommand) Help() string {
	return "group standings, e.g. /standings 2024"
}

func (c *StandingsCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleUser)
}
