// Package config loads chartail defaults and validates run settings.
//
// # Overview
//
// Settings come from three layers. The cmd package merges them with viper;
// this package supplies the bottom layer and checks the result:
//
//  1. Command-line flags (highest precedence)
//  2. CHARTAIL_* environment variables
//  3. The TOML config file, ~/.config/chartail/config.toml by default
//  4. Built-in defaults
//
// A missing config file is not an error. A file that exists but does not
// parse is.
//
// # Config File
//
//	scales = "cpu:auto,ram:16G"
//	refresh = "1s"        # bare integers are milliseconds
//	sort = "values"       # or "titles"
//	theme = "Dracula"
//	x_title = "time"
//	epoch = "run"
//	paired = false
//	log_file = "~/.cache/chartail.log"
//
// # Validation
//
// Settings.Validate rejects contradictory input (an X column given both by
// title and index, a file together with a command, a refresh rate with
// nothing to re-run) and parses the scale string. Every failure is returned
// before the UI starts.
//
// # Modes
//
// Settings.Mode picks how input is ingested: a non-zero refresh rate means
// autorefresh, an epoch column means batch, anything else streams
// incrementally.
package config
