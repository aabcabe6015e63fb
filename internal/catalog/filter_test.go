package catalog

import (
	"strings"
	"testing"
)

func sampleBooks() []Book {
	return []Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"},
		{ID: 2, Title: "The Lean Startup", Author: "Eric Ries", Genre: "Business"},
		{ID: 3, Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Mystery"},
		{ID: 4, Title: "Foundation", Author: "Isaac Asimov", Genre: "Science Fiction"},
		{ID: 5, Title: "Straße der Ölsucher", Author: "Jürgen Groß", Genre: "History"},
	}
}

func ids(books []Book) []int64 {
	out := make([]int64, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	books := sampleBooks()

	tests := []struct {
		name  string
		query Query
		want  []int64
	}{
		{"zero query keeps all", Query{}, []int64{1, 2, 3, 4, 5}},
		{"all sentinel keeps all", Query{Genre: AllGenres}, []int64{1, 2, 3, 4, 5}},
		{"title substring", Query{Search: "found"}, []int64{4}},
		{"author substring", Query{Search: "herb"}, []int64{1}},
		{"case insensitive", Query{Search: "GONE"}, []int64{3}},
		{"unicode folding", Query{Search: "GROSS"}, []int64{5}},
		{"genre exact", Query{Genre: "Science Fiction"}, []int64{1, 4}},
		{"genre is not substring", Query{Genre: "Science"}, []int64{}},
		{"genre is case sensitive", Query{Genre: "business"}, []int64{}},
		{"search and genre", Query{Search: "a", Genre: "Science Fiction"}, []int64{1, 4}},
		{"no match", Query{Search: "zzz"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(books, tt.query))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%+v) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Filter(%+v) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestFilter_ResultIsMatchingSubset(t *testing.T) {
	books := sampleBooks()
	for _, q := range []string{"", "a", "E", "on", "ri", "x"} {
		for _, genre := range Genres {
			got := Filter(books, Query{Search: q, Genre: genre})
			if len(got) > len(books) {
				t.Fatalf("Filter returned more books than it was given")
			}
			for _, b := range got {
				lq := strings.ToLower(q)
				if !strings.Contains(strings.ToLower(b.Title), lq) && !strings.Contains(strings.ToLower(b.Author), lq) {
					t.Fatalf("book %q by %q does not contain %q", b.Title, b.Author, q)
				}
				if genre != AllGenres && b.Genre != genre {
					t.Fatalf("book genre %q, want %q", b.Genre, genre)
				}
			}
		}
	}
}

func TestFilter_DoesNotAliasOrMutateInput(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, Query{})
	got[0].Title = "changed"
	if books[0].Title != "Dune" {
		t.Fatalf("input mutated through result: %q", books[0].Title)
	}
}

func TestQuery_SelectedGenreAndIsZero(t *testing.T) {
	if got := (Query{Genre: "  "}).SelectedGenre(); got != AllGenres {
		t.Fatalf("SelectedGenre(blank) = %q, want %q", got, AllGenres)
	}
	if !(Query{Genre: AllGenres}).IsZero() {
		t.Fatalf("IsZero = false for All with no search")
	}
	if (Query{Search: " "}).IsZero() {
		t.Fatalf("IsZero = true for whitespace search")
	}
}

func TestGenreStepping(t *testing.T) {
	if got := NextGenre(AllGenres); got != Genres[1] {
		t.Fatalf("NextGenre(All) = %q, want %q", got, Genres[1])
	}
	if got := NextGenre(Genres[len(Genres)-1]); got != AllGenres {
		t.Fatalf("NextGenre(last) = %q, want wrap to All", got)
	}
	if got := PrevGenre(AllGenres); got != Genres[len(Genres)-1] {
		t.Fatalf("PrevGenre(All) = %q, want %q", got, Genres[len(Genres)-1])
	}
	if got := NextGenre("Poetry"); got != AllGenres {
		t.Fatalf("NextGenre(unknown) = %q, want All", got)
	}
	if !KnownGenre("Health & Fitness") || KnownGenre("Poetry") {
		t.Fatalf("KnownGenre mismatch")
	}
}
