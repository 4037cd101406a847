package bot

import (
	"strings"
	"testing"

	"apod_bot/internal/card"
)

func TestFormatCard(t *testing.T) {
	t.Run("image card", func(t *testing.T) {
		c := card.Card{
			Title:       "M31: The <Andromeda> Galaxy",
			Permalink:   "https://apod.nasa.gov/apod/ap230101.html",
			Body:        "Our nearest large neighbour & friend.",
			AuthorLine:  "01 Jan 2023",
			Attribution: "Image Credit & Copyright: Someone",
			ImageURL:    "https://example.com/m31.jpg",
		}
		got := FormatCard(c)

		requireContains(t, got, `<a href="https://example.com/m31.jpg">&#8205;</a>`)
		requireContains(t, got, `<a href="https://apod.nasa.gov/apod/ap230101.html">`)
		requireContains(t, got, "M31: The &lt;Andromeda&gt; Galaxy")
		requireContains(t, got, "01 Jan 2023")
		requireContains(t, got, "neighbour &amp; friend")
		requireContains(t, got, "<i>Image Credit &amp; Copyright: Someone</i>")
	})

	t.Run("video card uses the thumbnail preview", func(t *testing.T) {
		c := card.Card{
			Title:        "Orbiting the Moon",
			Permalink:    "https://apod.nasa.gov/apod/ap220704.html",
			Body:         "A time-lapse.",
			AuthorLine:   "04 Jul 2022",
			ThumbnailURL: "https://img.youtube.com/vi/4seVqZNZs4E/0.jpg",
			WatchURL:     "https://www.youtube.com/watch?v=4seVqZNZs4E",
		}
		got := FormatCard(c)
		requireContains(t, got, `<a href="https://img.youtube.com/vi/4seVqZNZs4E/0.jpg">&#8205;</a>`)
	})

	t.Run("no attribution, no footer", func(t *testing.T) {
		c := card.Card{
			Title:      "Untitled",
			Permalink:  "https://apod.nasa.gov/apod/ap230101.html",
			Body:       "Body.",
			AuthorLine: "01 Jan 2023",
			ImageURL:   "https://example.com/x.jpg",
		}
		if strings.Contains(FormatCard(c), "<i>") {
			t.Error("footer rendered without attribution")
		}
	})
}

func TestNavKeyboard(t *testing.T) {
	image := card.Card{ImageURL: "https://example.com/x.jpg"}
	video := card.Card{
		ThumbnailURL: "https://img.youtube.com/vi/abc/0.jpg",
		WatchURL:     "https://www.youtube.com/watch?v=abc",
	}

	t.Run("image card", func(t *testing.T) {
		kb := NavKeyboard("sid", image)
		if len(kb.InlineKeyboard) != 1 {
			t.Fatalf("got %d rows, want 1", len(kb.InlineKeyboard))
		}
		row := kb.InlineKeyboard[0]
		if len(row) != 2 {
			t.Fatalf("got %d buttons, want 2", len(row))
		}
		if *row[0].CallbackData != "nav:sid:prev" || *row[1].CallbackData != "nav:sid:next" {
			t.Errorf("unexpected callback data: %q, %q", *row[0].CallbackData, *row[1].CallbackData)
		}
	})

	t.Run("video card adds the link row", func(t *testing.T) {
		kb := NavKeyboard("sid", video)
		if len(kb.InlineKeyboard) != 2 {
			t.Fatalf("got %d rows, want 2", len(kb.InlineKeyboard))
		}
		button := kb.InlineKeyboard[1][0]
		if button.URL == nil || *button.URL != video.WatchURL {
			t.Errorf("unexpected link button: %+v", button)
		}
	})
}
