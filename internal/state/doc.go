// Package state holds what the chart screen shows: the epoch store, the
// horizontal and vertical windows, the scale configuration, the pause flag
// and the last ingestion error.
//
// # Ownership
//
// State has a single writer, the UI update loop. The fetch goroutine never
// touches it; its events arrive as messages and are applied here:
//
//	Fetcher goroutine:             UI loop:
//	┌────────────────┐            ┌──────────────────┐
//	│ reader.Next()  │            │ Update(msg)      │
//	│      ↓         │  channel   │      ↓           │
//	│ events <- ev   │───────────→│ state.Extend()   │
//	│      ↓         │            │ state.Apply()    │
//	│  repeat...     │            │ render View()    │
//	└────────────────┘            └──────────────────┘
//
// No locking is needed and none is done.
//
// # Ingestion
//
// Every ingestion handler follows the same steps:
//
//	state.AppendSlice(slice, width)
//	→ error message cleared
//	→ data merged into the current set
//	→ X window revalidated against the new series length
//	→ X window moved to the end, unless paused
//
// A failed fetch is recorded with OnError. The data on screen is kept and the
// message stays until the next successful ingestion clears it.
//
// # Pausing
//
// Pause flips the auto-tail flag immediately. The fetcher is told
// separately, so rows already read before it noticed are still merged; they
// simply no longer move the view.
package state
