package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	botmodel "github.com/milchgeldkassierer/iihf-stats/bot/model"
	"github.com/milchgeldkassierer/iihf-stats/internal/config"
	"github.com/milchgeldkassierer/iihf-stats/internal/service"
)

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(ts *service.TournamentService, cfg config.Config, log *logrus.Logger) (Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return Bot{}, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return Bot{}, err
	}

	return Bot{
		bot:      bot,
		log:      log.WithField("name", "tg_bot"),
		commands: NewCommands(ts),
	}, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user := botmodel.User{
		ID:        int(tgUser.ID),
		FirstName: tgUser.FirstName,
		Username:  tgUser.UserName,
		Role:      botmodel.RoleUser,
	}

	cmd, args := splitCommand(update.Message.Text)
	text, err := b.commands.RunCommand(user, cmd, args)
	if err != nil {
		text = err.Error()
	}
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, text)
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func splitCommand(text string) (cmd, args string) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "/")
	cmd, args, _ = strings.Cut(text, " ")
	return cmd, strings.TrimSpace(args)
}
