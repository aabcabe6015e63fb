package ui

import (
	"testing"

	"github.com/five82/shelf/internal/catalog"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestNextTheme(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestGetTheme_UnknownFallsBackToSlate(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Slate" {
		t.Fatalf("GetTheme(nope) = %q, want Slate", got)
	}
}

func TestThemesColorEveryGenre(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, g := range catalog.Genres {
			if g == catalog.AllGenres {
				continue
			}
			if th.GenreColors[g] == "" {
				t.Errorf("%s theme has no color for %q", name, g)
			}
		}
	}
}
