package tgbot

import (
	"errors"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/milchgeldkassierer/iihf-stats/bot/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/domain"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
)

type Command interface {
	Run(user model.User, args string) (string, error)
	Help() string
	Permission() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(ts *service.TournamentService) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"standings": &StandingsCommand{
				tournaments: ts,
			},
			"game": &GameCommand{
				tournaments: ts,
			},
			"bracket": &BracketCommand{
				tournaments: ts,
			},
			"h2h": &HeadToHeadCommand{
				tournaments: ts,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(user, args)
			}
		}
	}
	return "", ErrBadRequest
}

var errUnknownYear = errors.New("unknown championship year")

// yearByNumber finds the championship whose calendar year matches the
// first command argument.
func yearByNumber(ts *service.TournamentService, arg string) (domain.ChampionshipYear, error) {
	yearNum, err := strconv.Atoi(arg)
	if err != nil {
		return domain.ChampionshipYear{}, errUnknownYear
	}
	years, err := ts.ListYears()
	if err != nil {
		return domain.ChampionshipYear{}, err
	}
	for _, year := range years {
		if year.Year == yearNum {
			return year, nil
		}
	}
	return domain.ChampionshipYear{}, errUnknownYear
}
