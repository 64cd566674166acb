//go:build !windows

package viewport

import (
	"context"
	"reactive-breakpoints/breakpoint"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRunRefreshesOnSIGWINCH(t *testing.T) {
	m := NewStatic()
	m.Set(100, 100)
	b := breakpoint.New(nil)
	d := NewDriver(b, m, testDelay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = d.Run(ctx) }()

	require.Eventually(t, d.Listening, time.Second, 5*time.Millisecond)
	m.Set(1024, 600)

	require.Eventually(t, func() bool {
		_ = unix.Kill(unix.Getpid(), unix.SIGWINCH)
		return b.Name() == breakpoint.LG
	}, 2*time.Second, 50*time.Millisecond)
}
