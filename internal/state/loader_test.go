package state

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/five82/shelf/internal/catalog"
)

type fakeFetcher struct {
	books         *catalog.BooksResponse
	booksErr      error
	settings      *catalog.SettingsResponse
	settingsErr   error
	settingsDelay time.Duration
}

func (f fakeFetcher) FetchBooks(ctx context.Context) (*catalog.BooksResponse, error) {
	return f.books, f.booksErr
}

func (f fakeFetcher) FetchSettings(ctx context.Context) (*catalog.SettingsResponse, error) {
	if f.settingsDelay > 0 {
		time.Sleep(f.settingsDelay)
	}
	return f.settings, f.settingsErr
}

func okSettings(pairs ...string) *catalog.SettingsResponse {
	resp := &catalog.SettingsResponse{Success: true, Settings: map[string]catalog.SettingValue{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		resp.Settings[pairs[i]] = catalog.SettingValue{Value: pairs[i+1]}
	}
	return resp
}

func TestLoad_Success(t *testing.T) {
	var store Store
	f := fakeFetcher{
		books:    &catalog.BooksResponse{Success: true, Books: []catalog.Book{{ID: 1, Title: "Dune"}}},
		settings: okSettings("site_name", "X"),
	}

	res := Load(context.Background(), f, &store)
	if len(res.Errors) != 0 {
		t.Fatalf("Errors = %v, want none", res.Errors)
	}

	snap := store.Snapshot()
	if snap.Loading || snap.HasError() {
		t.Fatalf("snapshot = %#v, want loaded without error", snap)
	}
	if len(snap.Books) != 1 || snap.Settings.SiteName() != "X" {
		t.Fatalf("snapshot data = %#v", snap)
	}
	if snap.Phase(snap.Books) != PhasePopulated {
		t.Fatalf("Phase = %v, want populated", snap.Phase(snap.Books))
	}
}

func TestLoad_BooksApplicationErrorUsesServerText(t *testing.T) {
	var store Store
	Load(context.Background(), fakeFetcher{
		books:    &catalog.BooksResponse{Success: false, Error: "catalog offline"},
		settings: okSettings(),
	}, &store)

	snap := store.Snapshot()
	if got := snap.ErrorText(); got != "catalog offline" {
		t.Fatalf("ErrorText = %q, want server text", got)
	}
	if snap.Loading {
		t.Fatalf("Loading should be cleared")
	}
}

func TestLoad_BooksApplicationErrorDefaultText(t *testing.T) {
	var store Store
	Load(context.Background(), fakeFetcher{
		books:    &catalog.BooksResponse{Success: false},
		settings: okSettings(),
	}, &store)

	if got := store.Snapshot().ErrorText(); got != catalog.DefaultBooksError {
		t.Fatalf("ErrorText = %q, want %q", got, catalog.DefaultBooksError)
	}
}

func TestLoad_BothFailKeepsSourceOrder(t *testing.T) {
	var store Store
	// Settings finishes last; its error must still come second.
	Load(context.Background(), fakeFetcher{
		books:         &catalog.BooksResponse{Success: false, Error: "books broke"},
		settings:      &catalog.SettingsResponse{Success: false, Error: "settings broke"},
		settingsDelay: 10 * time.Millisecond,
	}, &store)

	got := store.Snapshot().ErrorText()
	want := "books broke; " + catalog.DefaultSettingsError
	if got != want {
		t.Fatalf("ErrorText = %q, want %q", got, want)
	}
}

func TestLoad_TransportErrors(t *testing.T) {
	var store Store
	Load(context.Background(), fakeFetcher{
		booksErr:    errors.New("dial tcp: connection refused"),
		settingsErr: errors.New("context deadline exceeded"),
	}, &store)

	snap := store.Snapshot()
	text := snap.ErrorText()
	if !strings.Contains(text, "Error fetching data: dial tcp: connection refused") {
		t.Fatalf("ErrorText = %q, want books transport failure", text)
	}
	if !strings.Contains(text, "context deadline exceeded") {
		t.Fatalf("ErrorText = %q, want settings transport failure", text)
	}
	if len(snap.Errors) != 2 || snap.Errors[0].Source != catalog.SourceBooks || snap.Errors[1].Kind != catalog.KindTransport {
		t.Fatalf("Errors = %#v", snap.Errors)
	}
	if snap.Loading {
		t.Fatalf("Loading should be cleared after transport failure")
	}
}

func TestLoad_SettingsFailureStillStoresBooks(t *testing.T) {
	var store Store
	Load(context.Background(), fakeFetcher{
		books:    &catalog.BooksResponse{Success: true, Books: []catalog.Book{{ID: 3}}},
		settings: &catalog.SettingsResponse{Success: false, Error: "no settings table"},
	}, &store)

	snap := store.Snapshot()
	if len(snap.Books) != 1 {
		t.Fatalf("Books = %#v, want stored", snap.Books)
	}
	if snap.ErrorText() != catalog.DefaultSettingsError {
		t.Fatalf("ErrorText = %q", snap.ErrorText())
	}
	if snap.Settings.SiteName() != catalog.DefaultSiteName {
		t.Fatalf("SiteName = %q, want fallback", snap.Settings.SiteName())
	}
	if snap.Phase(snap.Books) != PhaseError {
		t.Fatalf("Phase = %v, want error", snap.Phase(snap.Books))
	}
}
