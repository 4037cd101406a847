// Package bot implements the Telegram surface: commands, navigation
// callbacks, and card formatting.
package bot

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"apod_bot/internal/apod"
	"apod_bot/internal/config"
	"apod_bot/internal/session"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot is the Telegram bot that serves APOD cards and navigation.
type Bot struct {
	api      telegramAPI
	cfg      *config.Config
	client   *apod.Client
	sessions *session.Registry
	log      zerolog.Logger
}

// New creates a Bot from the given config, connecting to the Telegram API.
func New(cfg *config.Config, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	b := &Bot{
		api:    api,
		cfg:    cfg,
		client: apod.New(http.DefaultClient, cfg.NASAAPIKey, cfg.APODBaseURL),
		log:    log,
	}
	b.sessions = session.NewRegistry(b.disableControls, log)
	return b, nil
}

// Run starts the session janitor and the bot's long-polling loop,
// blocking until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	go b.sessions.Run(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.CallbackQuery != nil {
				b.handleCallback(ctx, update.CallbackQuery)
				continue
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if update.Message.From == nil || !b.cfg.IsUserAllowed(update.Message.From.ID) {
				b.reply(update.Message.Chat.ID, "Access denied.")
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("send message")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cmd := msg.Command()
	args := strings.TrimSpace(msg.CommandArguments())
	chatID := msg.Chat.ID

	b.log.Debug().Str("cmd", cmd).Str("args", args).Int64("chat_id", chatID).Msg("command")

	switch cmd {
	case "start":
		b.handleStart(chatID)
	case "help":
		b.handleHelp(chatID)
	case "today":
		b.handleToday(ctx, chatID)
	case "random":
		b.handleRandom(ctx, chatID, args)
	case "date":
		b.handleDate(ctx, chatID, args)
	default:
		b.reply(chatID, "Unknown command. Use /help for a list of commands.")
	}
}

// disableControls strips the inline keyboard from an expired session's
// message. Called exactly once per session by the registry.
func (b *Bot) disableControls(s *session.Session) {
	edit := tgbotapi.NewEditMessageReplyMarkup(s.ChatID, s.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := b.api.Request(edit); err != nil {
		b.log.Error().Err(err).Int64("chat_id", s.ChatID).Int("message_id", s.MessageID).Msg("disable controls")
	}
}
