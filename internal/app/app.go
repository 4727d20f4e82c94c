package app

import (
	"context"
	"log"

	"github.com/five82/chartail/internal/config"
	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/prefs"
	"github.com/five82/chartail/internal/scale"
	"github.com/five82/chartail/internal/state"
	"github.com/five82/chartail/internal/ui"
)

// Options configure a chartail run.
type Options struct {
	Settings  config.Settings
	Scales    *scale.Config // parsed from Settings.Scales by Validate
	PrefsPath string        // empty uses default ~/.config/chartail/prefs.toml
}

// Run boots the chartail TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := opts.Settings

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	themeName := s.Theme
	if themeName == "" {
		themeName = userPrefs.Theme
	}

	fetchOpts := s.FetchOptions()
	src := s.Source()
	fetcher := fetch.New(src, fetchOpts)
	st := state.New(state.Options{
		Mode:    fetchOpts.Mode,
		Refresh: s.Refresh,
		Scales:  opts.Scales,
		Order:   fetchOpts.Order,
	})

	log.Printf("reading %s in %s mode", src, fetchOpts.Mode)
	fetcher.Start(ctx)
	if fetchOpts.Mode == fetch.Autorefresh {
		StartTicker(ctx, fetcher, s.Refresh)
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Feed:       fetcher,
		State:      st,
		ThemeName:  themeName,
		HideCursor: userPrefs.HideCursor,
		PrefsPath:  prefsPath,
	})
}
