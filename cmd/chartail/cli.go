package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/five82/chartail/internal/app"
	"github.com/five82/chartail/internal/config"
	"github.com/five82/chartail/internal/scale"
)

const envPrefix = "CHARTAIL"

var errNoInput = errors.New("no input: pipe data in, or pass --file or a command after --")

// cli holds what the commands share: the context and the viper instance the
// flags are bound to.
type cli struct {
	ctx context.Context
	v   *viper.Viper

	// stdinIsTerminal is swapped in tests.
	stdinIsTerminal func() bool
}

func newCLI(ctx context.Context) *cli {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &cli{
		ctx: ctx,
		v:   v,
		stdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// rootCmd is the command-line entrypoint: it charts the input live.
func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chartail [flags] [-- command...]",
		Short: "Chart numeric columns of delimited text live in the terminal.",
		Long: `chartail reads CSV (or "title: value" records) from stdin, a file, or the
repeated output of a shell command, and draws every numeric column as a
scrolling chart.

Examples:
  vmstat -n 1 | tr -s ' ' ',' | chartail
  chartail -r 1s -- 'ps -eo rss,vsz --no-headers | awk ...'
  chartail -f metrics.csv -x time -s 'cpu:0..100,auto'`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, scales, err := c.settings(cmd, args)
			if err != nil {
				return err
			}
			if s.ReadsStdin() && c.stdinIsTerminal() {
				return errNoInput
			}

			closeLog, err := setupLog(s.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			return app.Run(c.ctx, app.Options{Settings: s, Scales: scales})
		},
	}
	// Everything after the first positional argument belongs to the command.
	root.Flags().SetInterspersed(false)

	flags := root.PersistentFlags()
	flags.StringP("file", "f", "", "read input from a file instead of stdin")
	flags.StringP("x-title", "x", "", "title of the X axis column")
	flags.IntP("x-index", "i", -1, "index of the X axis column")
	flags.StringP("epoch", "t", "", "column whose value changes start a new batch")
	flags.StringP("refresh", "r", "", "re-run the input at this interval, e.g. 1s (bare integers are ms)")
	flags.StringP("scales", "s", "", `series scales, e.g. "cpu:0..100,mem:16G,auto"`)
	flags.BoolP("paired", "p", false, `read "title: value" records instead of CSV`)
	flags.String("sort", "", "series order: values or titles")
	flags.String("theme", "", "color theme: Dracula, Slate or Classic")
	flags.String("config", "", "config file (default "+config.DefaultPath()+")")
	flags.String("log-file", "", "write logs to this file")
	_ = c.v.BindPFlags(flags)

	root.AddCommand(c.summaryCmd())
	return root
}

// settings merges flags, CHARTAIL_* variables and the config file, then
// validates the result.
func (c *cli) settings(cmd *cobra.Command, args []string) (config.Settings, *scale.Config, error) {
	file, err := config.Load(c.v.GetString("config"))
	if err != nil {
		return config.Settings{}, nil, fmt.Errorf("load config: %w", err)
	}

	c.v.SetDefault("scales", file.Scales)
	c.v.SetDefault("refresh", file.Refresh)
	c.v.SetDefault("sort", file.Sort)
	c.v.SetDefault("theme", file.Theme)
	c.v.SetDefault("x-title", file.XTitle)
	c.v.SetDefault("x-index", -1)
	c.v.SetDefault("epoch", file.Epoch)
	c.v.SetDefault("paired", file.Paired)
	c.v.SetDefault("log-file", file.LogFile)

	refresh, err := config.ParseRefresh(c.v.GetString("refresh"))
	if err != nil {
		return config.Settings{}, nil, err
	}

	s := config.Settings{
		File:    strings.TrimSpace(c.v.GetString("file")),
		Command: args,
		XTitle:  strings.TrimSpace(c.v.GetString("x-title")),
		XIndex:  c.v.GetInt("x-index"),
		Epoch:   strings.TrimSpace(c.v.GetString("epoch")),
		Refresh: refresh,
		Scales:  c.v.GetString("scales"),
		Paired:  c.v.GetBool("paired"),
		Sort:    strings.TrimSpace(c.v.GetString("sort")),
		Theme:   strings.TrimSpace(c.v.GetString("theme")),
		LogFile: strings.TrimSpace(c.v.GetString("log-file")),
	}

	// An index given on the command line beats a title from the config file.
	if cmd.Flags().Changed("x-index") && !cmd.Flags().Changed("x-title") {
		s.XTitle = ""
	}
	if s.File != "" {
		if s.File, err = config.ExpandPath(s.File); err != nil {
			return config.Settings{}, nil, fmt.Errorf("resolve input file: %w", err)
		}
	}
	if s.LogFile != "" {
		if s.LogFile, err = config.ExpandPath(s.LogFile); err != nil {
			return config.Settings{}, nil, fmt.Errorf("resolve log file: %w", err)
		}
	}

	scales, err := s.Validate()
	if err != nil {
		return config.Settings{}, nil, err
	}
	return s, scales, nil
}

// setupLog sends the standard logger to path, or discards it: the terminal
// belongs to the UI.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "chartail")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
