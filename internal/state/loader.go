package state

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/logger"
)

// Load performs one load round-trip into store: it marks the store as
// loading, fetches both endpoints, and records the result. The loading
// flag is cleared on every path. There is no retry.
func Load(ctx context.Context, fetcher catalog.Fetcher, store *Store) Result {
	store.Begin()
	var res Result
	defer func() { store.Finish(res) }()

	res = Fetch(ctx, fetcher)
	return res
}

// Fetch issues the books and settings requests concurrently and joins their
// outcomes. Errors are ordered by source regardless of which request
// finished first.
func Fetch(ctx context.Context, fetcher catalog.Fetcher) Result {
	defer logger.Track(ctx, "catalog load")()

	var (
		wg          sync.WaitGroup
		books       *catalog.BooksResponse
		booksErr    error
		settings    *catalog.SettingsResponse
		settingsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		books, booksErr = fetcher.FetchBooks(ctx)
	}()
	go func() {
		defer wg.Done()
		settings, settingsErr = fetcher.FetchSettings(ctx)
	}()
	wg.Wait()

	var res Result
	switch {
	case booksErr != nil:
		res.Errors = append(res.Errors, catalog.TransportFailure(catalog.SourceBooks, booksErr))
	case books == nil || !books.Success:
		var text string
		if books != nil {
			text = books.Error
		}
		res.Errors = append(res.Errors, catalog.BooksFailure(text))
	default:
		res.Books = books.Books
		res.HasBooks = true
	}

	switch {
	case settingsErr != nil:
		res.Errors = append(res.Errors, catalog.TransportFailure(catalog.SourceSettings, settingsErr))
	case settings == nil || !settings.Success:
		var text string
		if settings != nil {
			text = settings.Error
		}
		res.Errors = append(res.Errors, catalog.SettingsFailure(text))
	default:
		res.Settings = settings.Flatten()
		res.HasSettings = true
	}

	for _, e := range res.Errors {
		entry := logger.For(ctx).WithFields(logrus.Fields{
			"source": string(e.Source),
			"kind":   e.Kind.String(),
		})
		if e.Detail != "" {
			entry = entry.WithField("detail", e.Detail)
		}
		if e.Err != nil {
			entry = entry.WithError(e.Err)
		}
		entry.Warn("catalog request failed")
	}
	if len(res.Errors) == 0 {
		logger.For(ctx).WithFields(logrus.Fields{
			"books":    len(res.Books),
			"settings": len(res.Settings),
		}).Info("catalog loaded")
	}
	return res
}
