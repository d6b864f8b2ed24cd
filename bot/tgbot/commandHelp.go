package tgbot

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/milchgeldkassierer/iihf-stats/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ model.User, _ string) (string, error) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var buffer strings.Builder
	for _, name := range names {
		buffer.WriteString("/")
		buffer.WriteString(name)
		buffer.WriteString(" - ")
		buffer.WriteString(c.commands[name].Help())
		buffer.WriteString("\n")
	}
	return buffer.String(), nil
}

func (c *HelpCommand) Help() string {
	return "list all commands"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleUser)
}
