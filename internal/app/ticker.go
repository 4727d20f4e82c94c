package app

import (
	"context"
	"time"

	"github.com/five82/chartail/internal/fetch"
)

// Sender accepts fetch control messages.
type Sender interface {
	Send(ctx context.Context, c fetch.Control)
}

// StartTicker launches a background goroutine that asks for a refresh right
// away and then at a fixed cadence. A non-positive interval sends only the
// first tick. It returns immediately.
func StartTicker(ctx context.Context, f Sender, interval time.Duration) {
	go func() {
		f.Send(ctx, fetch.Tick)
		if interval <= 0 {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.Send(ctx, fetch.Tick)
			}
		}
	}()
}
