package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatchProfilesReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("desktop:\n  worldSize: 4000\n"), 0o644))

	w, err := WatchProfiles(path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("desktop:\n  worldSize: 5000\n"), 0o644))

	select {
	case set := <-w.Updates:
		assert.Equal(t, 5000.0, set.Desktop.WorldSize)
	case <-time.After(3 * time.Second):
		t.Fatal("no profile update")
	}

	require.NoError(t, w.Close())
	_, open := <-w.Updates
	assert.False(t, open)
}

func TestWatchProfilesIgnoresOtherFilesAndBadYAML(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := WatchProfiles(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("desktop:\n  depthReference: 0\n"), 0o644))

	select {
	case <-w.Updates:
		t.Fatal("unexpected update")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchProfilesMissingDir(t *testing.T) {
	_, err := WatchProfiles(filepath.Join(t.TempDir(), "nope", "profiles.yaml"), nil)
	assert.Error(t, err)
}
