package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestSettingsResponse_Flatten(t *testing.T) {
	var resp SettingsResponse
	raw := `{"success": true, "settings": {"site_name": {"value": "X"}, "stats_books": {"value": "12"}}}`
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	flat := resp.Flatten()
	if len(flat) != 2 || flat["site_name"] != "X" || flat["stats_books"] != "12" {
		t.Fatalf("Flatten = %#v, want site_name=X stats_books=12", flat)
	}
	if flat.SiteName() != "X" {
		t.Fatalf("SiteName = %q, want X", flat.SiteName())
	}
}

func TestSettings_Fallbacks(t *testing.T) {
	var empty Settings
	if empty.SiteName() != DefaultSiteName {
		t.Fatalf("SiteName = %q, want %q", empty.SiteName(), DefaultSiteName)
	}
	if empty.Tagline() != DefaultSiteTagline || empty.StatsUsers() != DefaultStatsUsers || empty.StatsBooks() != DefaultStatsBooks {
		t.Fatalf("fallbacks not applied: %q %q %q", empty.Tagline(), empty.StatsUsers(), empty.StatsBooks())
	}
	if empty.HeroDescription() == empty.FooterDescription() {
		t.Fatalf("hero and footer descriptions should fall back differently")
	}

	blank := Settings{KeySiteName: "   ", KeySiteDescription: "Books."}
	if blank.SiteName() != DefaultSiteName {
		t.Fatalf("blank site_name should fall back, got %q", blank.SiteName())
	}
	if blank.HeroDescription() != "Books." || blank.FooterDescription() != "Books." {
		t.Fatalf("site_description should feed both hero and footer")
	}

	clone := blank.Clone()
	clone[KeySiteName] = "changed"
	if blank[KeySiteName] != "   " {
		t.Fatalf("Clone shares storage with original")
	}
	if Settings(nil).Clone() != nil {
		t.Fatalf("Clone(nil) should stay nil")
	}
}

func TestBook_PlainDescriptionAndLinks(t *testing.T) {
	b := Book{Description: ` <p>Spice &amp; <b>sand</b></p><script>alert(1)</script> `}
	if got := b.PlainDescription(); got != "Spice & sand" {
		t.Fatalf("PlainDescription = %q, want %q", got, "Spice & sand")
	}
	if b.HasDownload() || b.HasPurchase() {
		t.Fatalf("book without links reports links")
	}
	b.ContentLockerLink = "https://locker.test/1"
	b.AmazonLink = "https://amazon.test/1"
	if !b.HasDownload() || !b.HasPurchase() {
		t.Fatalf("book with links reports none")
	}
}

func TestSourceErrors(t *testing.T) {
	if got := BooksFailure("db down").Error(); got != "db down" {
		t.Fatalf("BooksFailure = %q, want server text", got)
	}
	if got := BooksFailure("  db down\n").Error(); got != "  db down\n" {
		t.Fatalf("BooksFailure = %q, want server text unchanged", got)
	}
	if got := BooksFailure(" \t").Error(); got != DefaultBooksError {
		t.Fatalf("BooksFailure(blank) = %q, want %q", got, DefaultBooksError)
	}
	if got := BooksFailure("").Error(); got != DefaultBooksError {
		t.Fatalf("BooksFailure(empty) = %q, want %q", got, DefaultBooksError)
	}
	settings := SettingsFailure("missing table")
	if settings.Error() != DefaultSettingsError || settings.Detail != "missing table" {
		t.Fatalf("SettingsFailure = %#v", settings)
	}

	cause := errors.New("connection refused")
	transport := TransportFailure(SourceBooks, cause)
	if !errors.Is(transport, cause) {
		t.Fatalf("TransportFailure should unwrap to cause")
	}
	if !strings.HasPrefix(transport.Error(), "Error fetching data: ") || !strings.Contains(transport.Error(), "connection refused") {
		t.Fatalf("TransportFailure = %q", transport.Error())
	}
	if transport.Kind.String() != "transport" || settings.Kind.String() != "application" {
		t.Fatalf("kind strings = %q/%q", transport.Kind, settings.Kind)
	}

	joined := JoinErrors([]*SourceError{BooksFailure("a"), nil, SettingsFailure("")})
	if joined != "a; "+DefaultSettingsError {
		t.Fatalf("JoinErrors = %q", joined)
	}
}
