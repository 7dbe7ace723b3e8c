package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInput_ValidURLs(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		videoID string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=Y9QfOPxmxVI", "Y9QfOPxmxVI"},
		{"bare host", "https://youtube.com/watch?v=abc123", "abc123"},
		{"mobile host", "https://m.youtube.com/watch?v=abc123", "abc123"},
		{"music host", "https://music.youtube.com/watch?v=abc123", "abc123"},
		{"short link", "https://youtu.be/wAzBl6xllzE", "wAzBl6xllzE"},
		{"shorts", "https://www.youtube.com/shorts/xyz789", "xyz789"},
		{"embed", "https://www.youtube.com/embed/xyz789", "xyz789"},
		{"live", "https://www.youtube.com/live/xyz789", "xyz789"},
		{"http scheme", "http://www.youtube.com/watch?v=abc123", "abc123"},
		{"no extractable ID", "https://www.youtube.com/playlist?list=PL123", ""},
		{"encoded slash in ID", "https://www.youtube.com/watch?v=abc%2Fdef", ""},
		{"quote in ID", "https://www.youtube.com/watch?v=abc%22def", ""},
		{"short link with extra path", "https://youtu.be/abc123/extra", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := filepath.Join(t.TempDir(), "out")

			req, err := ResolveInput(tt.url, outputDir)
			require.NoError(t, err)
			assert.Equal(t, tt.url, req.URL)
			assert.Equal(t, tt.videoID, req.VideoID)
			assert.Equal(t, outputDir, req.OutputDir)

			stat, err := os.Stat(outputDir)
			require.NoError(t, err)
			assert.True(t, stat.IsDir())
		})
	}
}

func TestResolveInput_InvalidURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no scheme", "www.youtube.com/watch?v=abc"},
		{"unparseable", "://bad"},
		{"wrong scheme", "ftp://www.youtube.com/watch?v=abc"},
		{"wrong host", "https://vimeo.com/12345"},
		{"lookalike host", "https://notyoutube.com/watch?v=abc"},
		{"plain text", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveInput(tt.url, t.TempDir())
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestResolveInput_DefaultOutputDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	req, err := ResolveInput("https://www.youtube.com/watch?v=abc123", "")
	require.NoError(t, err)
	assert.Equal(t, "output", req.OutputDir)

	stat, err := os.Stat("output")
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestResolveInput_OutputDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := ResolveInput("https://www.youtube.com/watch?v=abc123", blocker)
	require.ErrorIs(t, err, ErrInvalidInput)
}
