package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// AudioFetcher downloads a video's audio track with yt-dlp.
type AudioFetcher struct {
	YtDlpPath string // binary name or absolute path
}

func NewAudioFetcher() *AudioFetcher {
	return &AudioFetcher{YtDlpPath: "yt-dlp"}
}

type videoInfo struct {
	Title string `json:"title"`
}

// Fetch downloads the audio track for req into the output directory and
// returns the local asset plus the resolved video title. The file is kept
// on disk after the run so a failed analysis can be retried without
// re-downloading.
func (f *AudioFetcher) Fetch(ctx context.Context, req VideoRequest) (AudioAsset, error) {
	log.Printf("Downloading audio from: %s", req.URL)

	videoID := req.VideoID
	if videoID == "" {
		videoID = uuid.NewString()
	}

	title := "YouTube_Video_" + videoID
	info, err := f.probe(ctx, req.URL)
	if err != nil {
		return AudioAsset{}, err
	}
	if info.Title != "" {
		title = info.Title
	}
	log.Printf("Video title: %s", title)

	timestamp := time.Now().Format(timestampLayout)
	outputPath := filepath.Join(req.OutputDir, fmt.Sprintf("%s_%s.mp3", timestamp, videoID))

	cmd := exec.CommandContext(ctx, f.YtDlpPath,
		"-f", "bestaudio",
		"-x",
		"--audio-format", "mp3",
		"-o", outputPath,
		"--no-playlist",
		req.URL)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return AudioAsset{}, fmt.Errorf("%w: yt-dlp not found in PATH, install it first", ErrDownload)
		}
		return AudioAsset{}, fmt.Errorf("%w: yt-dlp: %v\nstderr: %s", ErrDownload, err, stderr.String())
	}

	if stat, err := os.Stat(outputPath); err != nil || stat.Size() == 0 {
		return AudioAsset{}, fmt.Errorf("%w: yt-dlp produced no audio file at %s", ErrDownload, outputPath)
	}

	log.Printf("Audio downloaded to: %s", outputPath)
	return AudioAsset{Path: outputPath, Title: title}, nil
}

// probe asks yt-dlp for the video metadata without downloading anything.
func (f *AudioFetcher) probe(ctx context.Context, videoURL string) (videoInfo, error) {
	cmd := exec.CommandContext(ctx, f.YtDlpPath, "--dump-json", "--no-playlist", videoURL)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return videoInfo{}, fmt.Errorf("%w: yt-dlp not found in PATH, install it first", ErrDownload)
		}
		return videoInfo{}, fmt.Errorf("%w: fetching video info: %v\nstderr: %s", ErrDownload, err, stderr.String())
	}

	var info videoInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return videoInfo{}, fmt.Errorf("%w: parsing video info: %v", ErrDownload, err)
	}
	return info, nil
}
