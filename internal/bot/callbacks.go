package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"apod_bot/internal/metrics"
	"apod_bot/internal/session"
)

const navPrefix = "nav"

// handleCallback processes a Previous/Next button press. Every outcome
// answers the callback query; failed transitions leave the card as is.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || !b.cfg.IsUserAllowed(cb.From.ID) {
		b.answer(cb.ID, "Access denied.")
		return
	}

	parts := strings.Split(cb.Data, ":")
	if len(parts) != 3 || parts[0] != navPrefix {
		b.answer(cb.ID, "")
		return
	}

	s, ok := b.sessions.Get(parts[1])
	if !ok {
		b.answer(cb.ID, "This card is no longer active. Request a fresh one.")
		return
	}

	var dir session.Direction
	switch parts[2] {
	case "prev":
		dir = session.Backward
	case "next":
		dir = session.Forward
	default:
		b.answer(cb.ID, "")
		return
	}

	b.log.Info().
		Str("session_id", s.ID).
		Str("direction", parts[2]).
		Int64("chat_id", s.ChatID).
		Msg("page")

	c, err := s.Page(ctx, dir)
	switch {
	case err == nil:
		metrics.PageTransitionsTotal.WithLabelValues("success").Inc()
		edit := tgbotapi.NewEditMessageTextAndMarkup(s.ChatID, s.MessageID, FormatCard(c), NavKeyboard(s.ID, c))
		edit.ParseMode = tgbotapi.ModeHTML
		if _, sendErr := b.api.Send(edit); sendErr != nil {
			b.log.Error().Err(sendErr).Int64("chat_id", s.ChatID).Msg("edit card")
		}
		b.answer(cb.ID, "")

	case errors.Is(err, session.ErrAtBoundary):
		metrics.PageTransitionsTotal.WithLabelValues("boundary").Inc()
		if dir == session.Backward {
			b.answer(cb.ID, "You reached the earliest Astronomy Picture of the Day!")
		} else {
			b.answer(cb.ID, "You reached the latest Astronomy Picture of the Day!")
		}

	case errors.Is(err, session.ErrExpired):
		metrics.PageTransitionsTotal.WithLabelValues("expired").Inc()
		b.answer(cb.ID, "This card is no longer active. Request a fresh one.")

	default:
		metrics.PageTransitionsTotal.WithLabelValues("error").Inc()
		b.log.Error().Err(err).Str("session_id", s.ID).Msg("page transition")
		b.answer(cb.ID, "Could not load that entry. Please try again.")
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.Error().Err(err).Msg("answer callback")
	}
}
