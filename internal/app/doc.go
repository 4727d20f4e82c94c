// Package app wires chartail together.
//
// # Overview
//
// Run is the composition root. It turns validated settings into the running
// pieces and blocks in the UI until the user quits:
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> prefs.Load()          Theme and cursor visibility
//	       ├─────> Settings.Source()     File, stdin or sh -c command
//	       ├─────> fetch.New()           Reader loop for the ingestion mode
//	       ├─────> state.New()           Windows, epochs, error message
//	       ├─────> fetcher.Start()       Background read goroutine
//	       ├─────> StartTicker()         Autorefresh only
//	       └─────> ui.Run()              Bubble Tea program (blocks)
//
// # Goroutines
//
// Three loops run while the UI is up: Bubble Tea's own input reader, the
// fetcher, and in autorefresh mode the ticker. The ticker sends one Tick at
// start and one per refresh interval; the fetcher re-runs its source on
// every Tick it receives while not paused. Only the UI loop writes the
// state.
//
// Quitting cancels the context, which stops the ticker and the fetcher and
// kills a running command.
//
// # Error Handling
//
// Everything that can be checked up front (flags, scales, conflicting
// inputs) is validated by the caller before Run. Errors after that point,
// such as an unreadable file or a failing command, reach the UI as fetch
// events and are shown in the status bar.
package app
