package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"sitegen/internal/adapters/cli"
)

func TestWatcherCoalescesEvents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "blog"), 0o755))

	w, err := cli.NewWatcher([]string{root}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// A burst of writes should come out as one rebuild.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "blog", "post.md"), []byte("x"), 0o644))
		time.Sleep(50 * time.Millisecond)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never fired")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherFiresOncePerBurst(t *testing.T) {
	root := t.TempDir()

	w, err := cli.NewWatcher([]string{root}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	go func() {
		_ = w.Run(ctx, func() { changed <- struct{}{} })
	}()

	waitFire := func() {
		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			t.Fatal("watcher never fired")
		}
	}

	// Two separate bursts of writes, with a quiet gap between them, must
	// come out as exactly two rebuilds: the second burst reuses the timer
	// that already fired, which must not trip it again immediately.
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.md"), []byte("x"), 0o644))
	waitFire()

	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("yy"), 0o644))
	waitFire()

	select {
	case <-changed:
		t.Fatal("watcher fired more than once per burst")
	case <-time.After(time.Second):
	}
}

func TestWatcherSkipsMissingRoots(t *testing.T) {
	w, err := cli.NewWatcher([]string{filepath.Join(t.TempDir(), "absent")}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
