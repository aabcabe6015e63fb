package catalog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// AllGenres is the genre sentinel meaning "no genre restriction".
const AllGenres = "All"

// Genres lists the genre chips offered by the front ends, sentinel first.
var Genres = []string{
	AllGenres,
	"Modern Fiction",
	"Science Fiction",
	"Romance",
	"Business",
	"Mystery",
	"Self-Help",
	"Health & Fitness",
	"Biography",
	"History",
	"Technology",
}

// Book mirrors a catalog entry returned by /books.
type Book struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	Author            string  `json:"author"`
	Genre             string  `json:"genre"`
	Rating            float64 `json:"rating"`
	Reviews           int     `json:"reviews"`
	Description       string  `json:"description"`
	ImageFilename     string  `json:"image_filename"`
	ContentLockerLink string  `json:"content_locker_link"`
	AmazonLink        string  `json:"amazon_link"`
}

// BooksResponse mirrors /books.
type BooksResponse struct {
	Success bool   `json:"success"`
	Books   []Book `json:"books"`
	Error   string `json:"error"`
}

// SettingValue is the wrapper the API puts around every setting.
type SettingValue struct {
	Value string `json:"value"`
}

// SettingsResponse mirrors /settings.
type SettingsResponse struct {
	Success  bool                    `json:"success"`
	Settings map[string]SettingValue `json:"settings"`
	Error    string                  `json:"error"`
}

// Flatten unwraps the {key: {value}} payload into a plain key/value map.
func (r SettingsResponse) Flatten() Settings {
	out := make(Settings, len(r.Settings))
	for key, wrapped := range r.Settings {
		out[key] = wrapped.Value
	}
	return out
}

var descriptionPolicy = bluemonday.StrictPolicy()

// PlainDescription returns the description with any markup stripped and
// entities decoded, ready for either a terminal or an escaping template.
func (b Book) PlainDescription() string {
	clean := descriptionPolicy.Sanitize(b.Description)
	return strings.TrimSpace(html.UnescapeString(clean))
}

// HasDownload reports whether the book offers a content-locker download.
func (b Book) HasDownload() bool {
	return strings.TrimSpace(b.ContentLockerLink) != ""
}

// HasPurchase reports whether the book has an affiliate purchase link.
func (b Book) HasPurchase() bool {
	return strings.TrimSpace(b.AmazonLink) != ""
}

// CloneBooks returns an independent copy of books.
func CloneBooks(books []Book) []Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]Book, len(books))
	copy(dup, books)
	return dup
}
