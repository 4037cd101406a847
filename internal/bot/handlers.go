package bot

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"apod_bot/internal/apod"
	"apod_bot/internal/article"
	"apod_bot/internal/card"
	"apod_bot/internal/metrics"
	"apod_bot/internal/session"
)

func (b *Bot) handleStart(chatID int64) {
	b.reply(chatID, `Welcome to the Astronomy Picture of the Day bot!

/today — today's picture
/random — a random picture from the archive
/date <day> <month> <year> — the picture for a specific date

Use the Previous/Next buttons under a card to browse the archive.`)
}

func (b *Bot) handleHelp(chatID int64) {
	b.reply(chatID, `Commands:
/today — today's Astronomy Picture of the Day
/random [count] — random picture(s), count between 1 and 10
/date <day> <month> <year> — picture for a date (16 6 1995 or later)

Every card has Previous/Next buttons to page through the archive by
date. Cards with a video get a YouTube button. Buttons stop working
after a while; just request a fresh card.`)
}

func (b *Bot) handleToday(ctx context.Context, chatID int64) {
	metrics.CommandsTotal.WithLabelValues("today").Inc()

	rec, err := b.client.FetchOne(ctx, time.Time{}, true)
	if err != nil {
		b.replyFetchError(chatID, err)
		return
	}
	b.sendCard(chatID, rec)
}

func (b *Bot) handleRandom(ctx context.Context, chatID int64, args string) {
	metrics.CommandsTotal.WithLabelValues("random").Inc()

	count, err := ParseCountArg(args)
	if err != nil {
		b.reply(chatID, "Usage: /random [count], count between 1 and 10.")
		return
	}

	recs, err := b.client.FetchRandom(ctx, count, true)
	if err != nil {
		b.replyFetchError(chatID, err)
		return
	}
	if len(recs) == 0 {
		b.reply(chatID, "The APOD service returned no entries. Please try again.")
		return
	}

	// The first record gets navigation; any extras are plain cards.
	b.sendCard(chatID, recs[0])
	for _, rec := range recs[1:] {
		b.sendPlainCard(chatID, rec)
	}
}

func (b *Bot) handleDate(ctx context.Context, chatID int64, args string) {
	metrics.CommandsTotal.WithLabelValues("date").Inc()

	d, err := ParseDateArgs(args)
	if err != nil {
		b.reply(chatID, "Usage: /date <day> <month> <year>, for example /date 16 6 1995.")
		return
	}

	rec, err := b.client.FetchOne(ctx, d, true)
	if err != nil {
		b.replyFetchError(chatID, err)
		return
	}
	b.sendCard(chatID, rec)
}

// sendCard renders a record, replies with the card, and attaches a
// navigation session to the reply.
func (b *Bot) sendCard(chatID int64, rec apod.Record) {
	a, err := article.Parse(rec)
	if err != nil {
		b.log.Error().Err(err).Msg("parse record")
		b.reply(chatID, "The APOD service returned an unexpected response. Please try again.")
		return
	}
	c := card.Render(a)

	s := session.New(a, c, chatID, b.client, b.cfg.SessionTTL)

	msg := tgbotapi.NewMessage(chatID, FormatCard(c))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = NavKeyboard(s.ID, c)

	sent, err := b.api.Send(msg)
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("send card")
		return
	}

	s.Bind(sent.MessageID)
	b.sessions.Add(s)
}

// sendPlainCard replies with a card that has no navigation attached.
func (b *Bot) sendPlainCard(chatID int64, rec apod.Record) {
	a, err := article.Parse(rec)
	if err != nil {
		b.log.Error().Err(err).Msg("parse record")
		return
	}
	c := card.Render(a)

	msg := tgbotapi.NewMessage(chatID, FormatCard(c))
	msg.ParseMode = tgbotapi.ModeHTML
	if c.IsVideo() {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("▶️ YouTube", c.WatchURL),
			),
		)
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("send card")
	}
}

// replyFetchError maps client errors to user notices. Validation errors
// are user mistakes and are not logged; upstream failures are.
func (b *Bot) replyFetchError(chatID int64, err error) {
	switch {
	case errors.Is(err, apod.ErrDateOutOfRange):
		b.reply(chatID, "APOD entries exist from 16 Jun 1995 up to today. Pick a date in that range.")
	case errors.Is(err, apod.ErrInvalidOrdering):
		b.reply(chatID, "The start date must not be after the end date.")
	case errors.Is(err, apod.ErrInvalidArgument):
		b.reply(chatID, "Usage: /random [count], count between 1 and 10.")
	default:
		b.log.Error().Err(err).Msg("fetch apod")
		b.reply(chatID, "Could not reach the APOD service. Please try again later.")
	}
}
