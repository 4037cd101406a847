package bot

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"apod_bot/internal/card"
)

// FormatCard renders a card as a Telegram HTML message. The leading
// zero-width link pins the message preview to the picture (or to the
// video thumbnail), which is how the image block is displayed.
func FormatCard(c card.Card) string {
	var b strings.Builder

	preview := c.ImageURL
	if c.IsVideo() {
		preview = c.ThumbnailURL
	}
	if preview != "" {
		fmt.Fprintf(&b, "<a href=\"%s\">&#8205;</a>", html.EscapeString(preview))
	}

	fmt.Fprintf(&b, "<b><a href=\"%s\">%s</a></b>\n", c.Permalink, html.EscapeString(c.Title))
	b.WriteString(c.AuthorLine)
	b.WriteString("\n\n")
	b.WriteString(html.EscapeString(c.Body))

	if c.Attribution != "" {
		b.WriteString("\n\n<i>")
		b.WriteString(html.EscapeString(c.Attribution))
		b.WriteString("</i>")
	}
	return b.String()
}

// NavKeyboard builds the inline keyboard for a card. The YouTube row is
// recomputed from the card on every call, so a stale video button can
// never survive a kind change.
func NavKeyboard(sessionID string, c card.Card) tgbotapi.InlineKeyboardMarkup {
	nav := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Previous", navPrefix+":"+sessionID+":prev"),
		tgbotapi.NewInlineKeyboardButtonData("Next ➡️", navPrefix+":"+sessionID+":next"),
	)
	if c.IsVideo() {
		return tgbotapi.NewInlineKeyboardMarkup(
			nav,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("▶️ YouTube", c.WatchURL),
			),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(nav)
}
