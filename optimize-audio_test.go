package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUploadable_SmallFilePassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("small audio"), 0644))

	optimizer := NewAudioOptimizer()
	got, cleanup, err := optimizer.EnsureUploadable(context.Background(), path)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, path, got)

	// Cleanup of a pass-through must not remove the original.
	cleanup()
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestEnsureUploadable_MissingFile(t *testing.T) {
	optimizer := NewAudioOptimizer()

	_, _, err := optimizer.EnsureUploadable(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	require.ErrorIs(t, err, ErrTranscription)
}

func TestEnsureUploadable_FfmpegMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.mp3")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(maxUploadBytes+1))
	require.NoError(t, f.Close())

	optimizer := &AudioOptimizer{FfmpegPath: "ffmpeg-definitely-not-installed", AudioBitrate: "64k"}

	_, _, err = optimizer.EnsureUploadable(context.Background(), path)
	require.ErrorIs(t, err, ErrTranscription)
	assert.Contains(t, err.Error(), "not found in PATH")
}
