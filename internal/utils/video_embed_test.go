package utils

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"youtube watch", "https://youtube.com/watch?v=abc123", "https://www.youtube.com/embed/abc123"},
		{"youtube watch with params", "https://www.youtube.com/watch?v=KxqlJblhzfI&t=42", "https://www.youtube.com/embed/KxqlJblhzfI"},
		{"youtu.be", "https://youtu.be/xyz", "https://www.youtube.com/embed/xyz"},
		{"youtu.be with query", "https://youtu.be/xyz?si=share", "https://www.youtube.com/embed/xyz"},
		{"youtube embed", "https://www.youtube.com/embed/q1w2", "https://www.youtube.com/embed/q1w2"},
		{"vimeo", "https://vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
		{"vimeo video path", "https://vimeo.com/video/123", "https://player.vimeo.com/video/123"},
		{"vimeo non numeric", "https://vimeo.com/channels/staff", "https://vimeo.com/channels/staff"},
		{"drive file", "https://drive.google.com/file/d/ID123/view", "https://drive.google.com/file/d/ID123/preview"},
		{"drive file sharing", "https://drive.google.com/file/d/1x2z3ExampleId/view?usp=sharing", "https://drive.google.com/file/d/1x2z3ExampleId/preview"},
		{"drive open", "https://drive.google.com/open?id=ABC&authuser=0", "https://drive.google.com/file/d/ABC/preview"},
		{"unrecognised", "https://example.com/video.mp4", "https://example.com/video.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmbedURL(tt.in); got != tt.want {
				t.Errorf("EmbedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// A link carrying both a YouTube and a Vimeo id resolves to YouTube.
func TestEmbedURL_ProviderOrder(t *testing.T) {
	in := "https://youtube.com/watch?v=yt1&ref=https://vimeo.com/999"
	if got := EmbedURL(in); got != "https://www.youtube.com/embed/yt1" {
		t.Errorf("unexpected %q", got)
	}
}

func TestEmbedURL_Properties(t *testing.T) {
	idGen := rapid.StringMatching(`[A-Za-z0-9_-]{1,16}`)

	t.Run("youtube ids round trip", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			id := idGen.Draw(t, "id")
			form := rapid.SampledFrom([]string{
				"https://www.youtube.com/watch?v=%s",
				"https://youtu.be/%s",
				"https://youtube.com/embed/%s",
			}).Draw(t, "form")

			got := EmbedURL(strings.Replace(form, "%s", id, 1))
			if got != "https://www.youtube.com/embed/"+id {
				t.Fatalf("got %q for id %q", got, id)
			}
		})
	})

	t.Run("vimeo ids round trip", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			id := rapid.StringMatching(`[1-9][0-9]{0,10}`).Draw(t, "id")
			if got := EmbedURL("https://vimeo.com/" + id); got != "https://player.vimeo.com/video/"+id {
				t.Fatalf("got %q for id %q", got, id)
			}
		})
	})

	t.Run("unknown hosts are unchanged", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			path := rapid.StringMatching(`[a-z0-9/]{0,24}`).Draw(t, "path")
			in := "https://media.example.org/" + path
			if got := EmbedURL(in); got != in {
				t.Fatalf("got %q, want input %q", got, in)
			}
		})
	})
}
