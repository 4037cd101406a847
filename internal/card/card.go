// Package card turns articles into displayable card payloads.
package card

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"apod_bot/internal/article"
)

// Card is the platform-neutral payload rendered from an article. Exactly
// one of ImageURL or the ThumbnailURL/WatchURL pair is populated,
// depending on the media kind.
type Card struct {
	Title        string
	Permalink    string
	Body         string
	AuthorLine   string
	Attribution  string
	ImageURL     string
	ThumbnailURL string
	WatchURL     string
}

// IsVideo reports whether the card carries a video action link.
func (c Card) IsVideo() bool { return c.WatchURL != "" }

// Render builds the card for an article. It assumes the article already
// satisfies its invariants and cannot fail.
func Render(a article.Article) Card {
	c := Card{
		Title:      a.Title,
		Permalink:  fmt.Sprintf("https://apod.nasa.gov/apod/ap%s.html", a.Date.Format("060102")),
		Body:       a.Explanation,
		AuthorLine: a.Date.Format("02 Jan 2006"),
	}
	if a.Media.HasCopyright() {
		c.Attribution = "Image Credit & Copyright: " + a.Media.Copyright
	}
	if a.Media.IsVideo() {
		c.ThumbnailURL = a.Media.ThumbnailURL
		c.WatchURL = WatchURL(a.Media.PrimaryURL)
	} else {
		c.ImageURL = a.Media.PrimaryURL
	}
	return c
}

// WatchURL rewrites an embed-style video URL into its canonical YouTube
// watch page by taking the video id from the last path segment and
// dropping any query parameters.
func WatchURL(embedURL string) string {
	id := embedURL
	if u, err := url.Parse(embedURL); err == nil && u.Path != "" {
		id = path.Base(u.Path)
	} else {
		if i := strings.LastIndexByte(id, '/'); i >= 0 {
			id = id[i+1:]
		}
		if i := strings.IndexByte(id, '?'); i >= 0 {
			id = id[:i]
		}
	}
	return "https://www.youtube.com/watch?v=" + id
}
