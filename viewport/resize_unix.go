//go:build !windows

package viewport

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// resizeEvents emits on every SIGWINCH until ctx is done.
func resizeEvents(ctx context.Context, _ Measurer) <-chan struct{} {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)

	out := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(sig)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
