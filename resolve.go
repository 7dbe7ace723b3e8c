package main

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

const defaultModel = "claude-3-7-sonnet-20250219"

var youtubeHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
	"youtu.be":          true,
}

// ResolveInput validates the video URL, extracts the video ID and prepares
// the output directory.
func ResolveInput(rawURL, outputDir string) (VideoRequest, error) {
	if strings.TrimSpace(rawURL) == "" {
		return VideoRequest{}, fmt.Errorf("%w: empty URL", ErrInvalidInput)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return VideoRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return VideoRequest{}, fmt.Errorf("%w: URL must use http or https: %s", ErrInvalidInput, rawURL)
	}
	if !youtubeHosts[parsed.Hostname()] {
		return VideoRequest{}, fmt.Errorf("%w: not a recognized YouTube URL: %s", ErrInvalidInput, rawURL)
	}

	if outputDir == "" {
		outputDir = "output"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return VideoRequest{}, fmt.Errorf("%w: creating output directory: %v", ErrInvalidInput, err)
	}

	return VideoRequest{
		URL:       rawURL,
		VideoID:   extractVideoID(parsed),
		OutputDir: outputDir,
	}, nil
}

// videoIDPattern matches the characters YouTube uses in video IDs. The
// extracted ID ends up in the audio filename, so anything else is treated
// as no ID and the uuid fallback takes over.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// extractVideoID pulls the video ID from a watch URL or a youtu.be short
// link. Returns "" when the URL carries no recognizable ID.
func extractVideoID(parsed *url.URL) string {
	var id string
	switch {
	case parsed.Hostname() == "youtu.be":
		id = strings.Trim(parsed.Path, "/")
	case parsed.Query().Get("v") != "":
		id = parsed.Query().Get("v")
	default:
		// Shorts, embeds and live links keep the ID as the last path segment
		for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
			if strings.HasPrefix(parsed.Path, prefix) {
				id = strings.Trim(strings.TrimPrefix(parsed.Path, prefix), "/")
				break
			}
		}
	}

	if !videoIDPattern.MatchString(id) {
		return ""
	}
	return id
}
