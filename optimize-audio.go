package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// maxUploadBytes is the transcription API's upload limit (25 MB).
const maxUploadBytes = 25 * 1024 * 1024

// AudioOptimizer re-encodes oversize audio so it fits the transcription
// API's upload limit.
type AudioOptimizer struct {
	FfmpegPath   string
	AudioBitrate string // "64k" is decent quality for voice
}

func NewAudioOptimizer() *AudioOptimizer {
	return &AudioOptimizer{
		FfmpegPath:   "ffmpeg",
		AudioBitrate: "64k",
	}
}

// EnsureUploadable returns a path to audio within the upload limit. When
// the input is already small enough it is returned unchanged; otherwise a
// re-encoded temp copy is produced and the returned cleanup removes it.
func (o *AudioOptimizer) EnsureUploadable(ctx context.Context, path string) (string, func(), error) {
	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading audio file: %v", ErrTranscription, err)
	}
	if stat.Size() <= maxUploadBytes {
		return path, func() {}, nil
	}

	log.Printf("Audio file is %d bytes, re-encoding at %s for upload", stat.Size(), o.AudioBitrate)
	optimized := filepath.Join(os.TempDir(), fmt.Sprintf("optimized_%s.mp3", uuid.NewString()))
	cleanup := func() { os.Remove(optimized) }

	cmd := exec.CommandContext(ctx, o.FfmpegPath,
		"-i", path,
		"-ac", "1",
		"-b:a", o.AudioBitrate,
		"-y",
		optimized)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		cleanup()
		if errors.Is(err, exec.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: ffmpeg not found in PATH, needed for audio over %d bytes", ErrTranscription, maxUploadBytes)
		}
		return "", nil, fmt.Errorf("%w: ffmpeg: %v\nstderr: %s", ErrTranscription, err, stderr.String())
	}

	optStat, err := os.Stat(optimized)
	if err != nil || optStat.Size() == 0 {
		cleanup()
		return "", nil, fmt.Errorf("%w: ffmpeg produced no output for %s", ErrTranscription, path)
	}
	if optStat.Size() > maxUploadBytes {
		cleanup()
		return "", nil, fmt.Errorf("%w: audio still exceeds the %d byte upload limit after re-encoding", ErrTranscription, maxUploadBytes)
	}

	return optimized, cleanup, nil
}
