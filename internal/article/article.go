// Package article normalizes raw APOD records into domain values.
package article

import (
	"errors"
	"fmt"
	"time"

	"apod_bot/internal/apod"
)

// ErrMalformedRecord is returned when a record is missing required fields.
var ErrMalformedRecord = errors.New("malformed apod record")

// MediaKind distinguishes how an entry's content is displayed.
type MediaKind string

// Known media kinds. The API may introduce new ones; anything that is not
// a video is rendered as an image.
const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// Media describes the displayable content of an article.
type Media struct {
	Kind         MediaKind
	PrimaryURL   string
	ThumbnailURL string
	Copyright    string
}

// IsVideo reports whether the media is a video.
func (m Media) IsVideo() bool { return m.Kind == KindVideo }

// HasCopyright reports whether an attribution line is present.
func (m Media) HasCopyright() bool { return m.Copyright != "" }

// Article is one normalized entry of the feed.
type Article struct {
	Title       string
	Explanation string
	Media       Media
	Date        time.Time
}

// Parse validates and converts a raw record. Title, explanation, and a
// parsable date are required; everything else is optional.
func Parse(rec apod.Record) (Article, error) {
	if rec.Title == "" {
		return Article{}, fmt.Errorf("%w: missing title", ErrMalformedRecord)
	}
	if rec.Explanation == "" {
		return Article{}, fmt.Errorf("%w: missing explanation", ErrMalformedRecord)
	}
	if rec.Date == "" {
		return Article{}, fmt.Errorf("%w: missing date", ErrMalformedRecord)
	}

	date, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return Article{}, fmt.Errorf("%w: bad date %q", ErrMalformedRecord, rec.Date)
	}

	kind := KindImage
	if rec.MediaType == string(KindVideo) {
		kind = KindVideo
	}

	primary := rec.HDURL
	if primary == "" {
		primary = rec.URL
	}

	return Article{
		Title:       rec.Title,
		Explanation: rec.Explanation,
		Media: Media{
			Kind:         kind,
			PrimaryURL:   primary,
			ThumbnailURL: rec.ThumbnailURL,
			Copyright:    rec.Copyright,
		},
		Date: date,
	}, nil
}
