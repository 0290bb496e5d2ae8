package page

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, LayoutName)
	require.NoError(t, os.WriteFile(layout, []byte("before"), 0o644))

	// The reload timer may outlive the test, so no test-bound logger here.
	r, err := New(os.DirFS(dir), testOptions, nil)
	require.NoError(t, err)
	r.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx, dir) }()

	assert.Eventually(t, func() bool {
		// Keep writing until the watcher has been registered and picked it up.
		if err := os.WriteFile(layout, []byte("after"), 0o644); err != nil {
			return false
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, nil); err != nil {
			return false
		}
		return buf.String() == "after"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatch_MissingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LayoutName), []byte("x"), 0o644))
	r, err := New(os.DirFS(dir), testOptions, nil)
	require.NoError(t, err)

	err = r.Watch(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
