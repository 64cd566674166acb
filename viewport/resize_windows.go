//go:build windows

package viewport

import (
	"context"
	"time"
)

const pollInterval = 500 * time.Millisecond

// resizeEvents polls m on Windows, which has no resize signal, and emits
// whenever the measured size changes.
func resizeEvents(ctx context.Context, m Measurer) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		lastWidth, lastHeight, _ := m.Measure()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				width, height, ok := m.Measure()
				if !ok || (width == lastWidth && height == lastHeight) {
					continue
				}
				lastWidth, lastHeight = width, height
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
