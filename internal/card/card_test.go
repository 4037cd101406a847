package card

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"apod_bot/internal/article"
)

func TestRenderImage(t *testing.T) {
	a := article.Article{
		Title:       "Neutron Star Earth",
		Explanation: "A dense Earth.",
		Media: article.Media{
			Kind:       article.KindImage,
			PrimaryURL: "https://apod.nasa.gov/apod/image/e_lens.gif",
			Copyright:  "R. Nemiroff",
		},
		Date: time.Date(1995, 6, 16, 0, 0, 0, 0, time.UTC),
	}

	want := Card{
		Title:       "Neutron Star Earth",
		Permalink:   "https://apod.nasa.gov/apod/ap950616.html",
		Body:        "A dense Earth.",
		AuthorLine:  "16 Jun 1995",
		Attribution: "Image Credit & Copyright: R. Nemiroff",
		ImageURL:    "https://apod.nasa.gov/apod/image/e_lens.gif",
	}

	got := Render(a)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	if got.IsVideo() {
		t.Error("image card should not report IsVideo")
	}
}

func TestRenderVideo(t *testing.T) {
	a := article.Article{
		Title:       "Orbiting the Moon",
		Explanation: "A time-lapse.",
		Media: article.Media{
			Kind:         article.KindVideo,
			PrimaryURL:   "https://www.youtube.com/embed/4seVqZNZs4E?rel=0",
			ThumbnailURL: "https://img.youtube.com/vi/4seVqZNZs4E/0.jpg",
		},
		Date: time.Date(2022, 7, 4, 0, 0, 0, 0, time.UTC),
	}

	want := Card{
		Title:        "Orbiting the Moon",
		Permalink:    "https://apod.nasa.gov/apod/ap220704.html",
		Body:         "A time-lapse.",
		AuthorLine:   "04 Jul 2022",
		ThumbnailURL: "https://img.youtube.com/vi/4seVqZNZs4E/0.jpg",
		WatchURL:     "https://www.youtube.com/watch?v=4seVqZNZs4E",
	}

	got := Render(a)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	if !got.IsVideo() {
		t.Error("video card should report IsVideo")
	}
}

func TestWatchURL(t *testing.T) {
	tests := []struct {
		name  string
		embed string
		want  string
	}{
		{
			name:  "embed url with query",
			embed: "https://www.youtube.com/embed/4seVqZNZs4E?rel=0",
			want:  "https://www.youtube.com/watch?v=4seVqZNZs4E",
		},
		{
			name:  "embed url without query",
			embed: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:  "nested path",
			embed: "https://player.example.com/a/b/vid123?autoplay=1&mute=1",
			want:  "https://www.youtube.com/watch?v=vid123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WatchURL(tt.embed); got != tt.want {
				t.Errorf("WatchURL(%q) = %q, want %q", tt.embed, got, tt.want)
			}
		})
	}
}
