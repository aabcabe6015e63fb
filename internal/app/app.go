package app

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logger"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the shelf terminal application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	APIURL     string // overrides the configured catalog API when set
}

// Run boots the shelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.APIURL = cmp.Or(strings.TrimSpace(opts.APIURL), cfg.APIURL)

	logFile, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logFile.Close()

	client, err := catalog.NewClient(cfg.APIURL, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	logger.For(ctx).WithField("api", client.BaseURL()).Info("shelf starting")

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Covers:    client.CoverURL,
		Store:     &state.Store{},
		LogPath:   cfg.LogFile,
		ThemeName: userPrefs.Theme,
		Genre:     userPrefs.Genre,
		PrefsPath: opts.PrefsPath,
	})
}
