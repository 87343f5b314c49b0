package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchFile_RerunsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n"), 0o600))

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, zap.NewNop(), func() error {
			runs.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	// Keep touching the file until the watcher has picked up a change; the
	// watch is registered asynchronously after the first run.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("1,2,3\n4,5,6\n"), 0o600)
		return runs.Load() >= 2
	}, 5*time.Second, 200*time.Millisecond)

	// Writes to sibling files are ignored. Let any debounce still pending
	// from the loop above fire first.
	time.Sleep(3 * watchDebounce)
	before := runs.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(3 * watchDebounce)
	require.Equal(t, before, runs.Load())

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
}

func TestSplitLines(t *testing.T) {
	require.Equal(t, []string{"ab", "cd"}, splitLines("ab\r\ncd\n\n"))
	require.Equal(t, []string{"ab", "", "cd"}, splitLines("ab\n\ncd"))
	require.Empty(t, splitLines("\n\n"))
}
