package naming

import (
	"path/filepath"
	"testing"

	"github.com/backmassage/sheetmaster/internal/config"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		video    string
		explicit string
		format   config.SheetFormat
		want     string
	}{
		{
			"derived beside the video",
			"/media/films/heat.mkv", "", config.FormatJPEG,
			"/media/films/heat_contact.jpg",
		},
		{
			"explicit output wins",
			"/media/films/heat.mkv", "/tmp/sheet.jpg", config.FormatJPEG,
			"/tmp/sheet.jpg",
		},
		{
			"png extension follows format",
			"/media/films/heat.mkv", "", config.FormatPNG,
			"/media/films/heat_contact.png",
		},
		{
			"relative path",
			"clip.mp4", "", config.FormatJPEG,
			"clip_contact.jpg",
		},
		{
			"dotted stem keeps inner dots",
			"/v/Show.S01E01.1080p.mkv", "", config.FormatWebP,
			"/v/Show.S01E01.1080p_contact.webp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.video, tt.explicit, tt.format)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("OutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollisionResolver(t *testing.T) {
	cr := NewCollisionResolver()

	first := cr.Resolve("/a/movie.mkv", "/out/movie_contact.jpg")
	if first != "/out/movie_contact.jpg" {
		t.Errorf("first claim: got %q", first)
	}

	// Same input re-resolving keeps its claim.
	again := cr.Resolve("/a/movie.mkv", "/out/movie_contact.jpg")
	if again != first {
		t.Errorf("re-resolve changed path: %q", again)
	}

	second := cr.Resolve("/b/movie.mkv", "/out/movie_contact.jpg")
	want := filepath.Join("/out", "movie_contact (2).jpg")
	if second != want {
		t.Errorf("second claim: got %q, want %q", second, want)
	}

	third := cr.Resolve("/c/movie.mkv", "/out/movie_contact.jpg")
	want = filepath.Join("/out", "movie_contact (3).jpg")
	if third != want {
		t.Errorf("third claim: got %q, want %q", third, want)
	}

	// No path handed out twice across distinct inputs.
	seen := map[string]bool{first: true, second: true, third: true}
	if len(seen) != 3 {
		t.Errorf("duplicate paths handed out: %v", seen)
	}
}
