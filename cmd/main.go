package main

import (
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/milchgeldkassierer/iihf-stats/bot/tgbot"
	"github.com/milchgeldkassierer/iihf-stats/internal/cache/mem"
	"github.com/milchgeldkassierer/iihf-stats/internal/config"
	"github.com/milchgeldkassierer/iihf-stats/internal/logger"
	migrate "github.com/milchgeldkassierer/iihf-stats/internal/migrate"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
	"github.com/milchgeldkassierer/iihf-stats/internal/storage"
	"github.com/milchgeldkassierer/iihf-stats/internal/storage/sqlite"
	"github.com/milchgeldkassierer/iihf-stats/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := storage.New(cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("closing database")
		}
	}()
	err = migrate.Up(db)
	if err != nil {
		return err
	}

	store := sqlite.New(db)
	tournaments := service.New(store, store, store, mem.New(), cfg.Tournaments, log)

	if cfg.Server.TgBotEnabled {
		bot, err := tgbot.New(tournaments, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(tournaments, cfg.Server, log)
	if err != nil {
		return err
	}
	return server.Serve()
}
