package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
	SqliteFile   string `toml:"sqlite_file"`
}

// Tournament is the per-year playoff layout. Years without an entry use
// the default world championship bracket.
type Tournament struct {
	Year           int      `toml:"year"`
	Hosts          []string `toml:"hosts"`
	Quarterfinals  []int    `toml:"quarterfinals"`
	Semifinals     []int    `toml:"semifinals"`
	Bronze         int      `toml:"bronze"`
	Gold           int      `toml:"gold"`
	MaxPrelimGames int      `toml:"max_prelim_games"`
}

type Tournaments struct {
	Tournament []Tournament `toml:"tournament"`
}

type Config struct {
	TgBot       TgBot
	Server      Server
	Tournaments Tournaments
}

func New() (Config, error) {
	var tgBotCfg TgBot
	_, err := toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	var serverCfg Server
	_, err = toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if serverCfg.SqliteFile == "" {
		serverCfg.SqliteFile = "iihf.sqlite"
	}

	// Bracket metadata is optional: without the file every year uses
	// the standard bracket.
	var tournamentsCfg Tournaments
	_, err = toml.DecodeFile("configs/tournaments.toml", &tournamentsCfg)
	if err != nil {
		logrus.WithError(err).Warn("tournaments config unavailable, using standard bracket for all years")
		tournamentsCfg = Tournaments{}
	}

	return Config{
		TgBot:       tgBotCfg,
		Server:      serverCfg,
		Tournaments: tournamentsCfg,
	}, nil
}

// ForYear returns the tournament entry of the given year, if configured.
func (t Tournaments) ForYear(year int) (Tournament, bool) {
	for _, tournament := range t.Tournament {
		if tournament.Year == year {
			return tournament, true
		}
	}
	return Tournament{}, false
}
