//go:build unix

package lineloop

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Resizes delivers one value per SIGWINCH until ctx is done.
func Resizes(ctx context.Context) <-chan struct{} {
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
				default: // one pending notice is enough
				}
			}
		}
	}()
	return out
}
