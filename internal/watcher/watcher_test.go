package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingDirectory(t *testing.T) {
	source := filepath.Join(t.TempDir(), "no-such-dir", "contentTypes.d.ts")

	_, err := New(source, 50*time.Millisecond, func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestWatcherTriggersOnSourceChange(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "contentTypes.d.ts")
	require.NoError(t, os.WriteFile(source, []byte("v1"), 0644))

	changed := make(chan struct{}, 8)
	sw, err := New(source, 50*time.Millisecond, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sw.Start(ctx)
	defer sw.Stop()

	require.NoError(t, os.WriteFile(source, []byte("v2"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired after source write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "contentTypes.d.ts")
	require.NoError(t, os.WriteFile(source, []byte("v1"), 0644))

	changed := make(chan struct{}, 8)
	sw, err := New(source, 50*time.Millisecond, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sw.Start(ctx)
	defer sw.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.ts"), []byte("x"), 0644))

	select {
	case <-changed:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "contentTypes.d.ts")
	require.NoError(t, os.WriteFile(source, []byte("v1"), 0644))

	changed := make(chan struct{}, 8)
	sw, err := New(source, 200*time.Millisecond, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sw.Start(ctx)
	defer sw.Stop()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(source, []byte("burst"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired after burst of writes")
	}

	select {
	case <-changed:
		t.Fatal("burst of writes produced more than one callback")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "contentTypes.d.ts")
	require.NoError(t, os.WriteFile(source, []byte("v1"), 0644))

	sw, err := New(source, 50*time.Millisecond, func() {})
	require.NoError(t, err)

	sw.Start(context.Background())
	sw.Stop()
	sw.Stop()
}

func TestShouldProcessEvent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "contentTypes.d.ts")
	require.NoError(t, os.WriteFile(source, []byte("v1"), 0644))

	sw, err := New(source, 50*time.Millisecond, func() {})
	require.NoError(t, err)
	defer sw.watcher.Close()

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "write to source",
			event:    fsnotify.Event{Name: source, Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "create of source",
			event:    fsnotify.Event{Name: source, Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "rename of source",
			event:    fsnotify.Event{Name: source, Op: fsnotify.Rename},
			expected: true,
		},
		{
			name:     "chmod of source",
			event:    fsnotify.Event{Name: source, Op: fsnotify.Chmod},
			expected: false,
		},
		{
			name:     "write to sibling",
			event:    fsnotify.Event{Name: filepath.Join(dir, "other.ts"), Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "unclean path still matches",
			event:    fsnotify.Event{Name: filepath.Join(dir, ".", "contentTypes.d.ts"), Op: fsnotify.Write},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sw.shouldProcessEvent(tt.event))
		})
	}
}
