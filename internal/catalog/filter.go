package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Query is the transient filter state: free text plus a genre chip.
type Query struct {
	Search string
	Genre  string
}

// SelectedGenre returns the genre to match, treating blank as AllGenres.
func (q Query) SelectedGenre() string {
	if strings.TrimSpace(q.Genre) == "" {
		return AllGenres
	}
	return q.Genre
}

// IsZero reports whether the query matches every book.
func (q Query) IsZero() bool {
	return q.Search == "" && q.SelectedGenre() == AllGenres
}

// Filter returns the books whose title or author contains q.Search
// (case-insensitive) and whose genre equals q.Genre unless it is AllGenres.
// The input is never modified and the result never aliases it.
func Filter(books []Book, q Query) []Book {
	// Casers carry state and must not be shared across goroutines.
	fold := cases.Fold()
	needle := fold.String(q.Search)
	genre := q.SelectedGenre()

	out := make([]Book, 0, len(books))
	for _, book := range books {
		if genre != AllGenres && book.Genre != genre {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(book.Title), needle) &&
			!strings.Contains(fold.String(book.Author), needle) {
			continue
		}
		out = append(out, book)
	}
	return out
}

// NextGenre returns the genre after current in Genres, wrapping around.
func NextGenre(current string) string {
	return stepGenre(current, 1)
}

// PrevGenre returns the genre before current in Genres, wrapping around.
func PrevGenre(current string) string {
	return stepGenre(current, -1)
}

func stepGenre(current string, delta int) string {
	n := len(Genres)
	for i, g := range Genres {
		if g == current {
			return Genres[((i+delta)%n+n)%n]
		}
	}
	return AllGenres
}

// KnownGenre reports whether g is one of the offered genre chips.
func KnownGenre(g string) bool {
	for _, known := range Genres {
		if known == g {
			return true
		}
	}
	return false
}
