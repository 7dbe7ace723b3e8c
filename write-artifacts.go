package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const timestampLayout = "20060102_150405"

// maxTitleLength bounds sanitized titles so full output paths stay well
// under filesystem path limits.
const maxTitleLength = 50

// SanitizeTitle makes a video title safe for use in filenames. ASCII
// letters, digits, spaces, underscores and hyphens are kept; everything
// else becomes an underscore. The result is trimmed and capped at
// maxTitleLength. Applying it twice yields the same string.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	safe := strings.TrimSpace(b.String())
	if len(safe) > maxTitleLength {
		safe = strings.TrimSpace(safe[:maxTitleLength])
	}
	return safe
}

// WriteArtifacts persists the transcript and analysis for one run and
// returns their paths. The transcript is written first; if the analysis
// write fails, the transcript stays on disk.
func WriteArtifacts(req VideoRequest, transcript Transcript, analysis AnalysisResult) (string, string, error) {
	timestamp := transcript.CreatedAt.Format(timestampLayout)
	safeTitle := SanitizeTitle(transcript.Title)

	transcriptPath := filepath.Join(req.OutputDir, fmt.Sprintf("%s_%s_transcript.txt", timestamp, safeTitle))
	if err := os.WriteFile(transcriptPath, []byte(transcript.Text), 0644); err != nil {
		return "", "", fmt.Errorf("%w: saving transcript: %v", ErrWriteOutput, err)
	}
	log.Printf("Transcript saved to: %s", transcriptPath)

	analysisPath := filepath.Join(req.OutputDir, fmt.Sprintf("%s_%s_analysis.md", timestamp, safeTitle))
	content := fmt.Sprintf("# Analysis of: %s\n\n%s", transcript.Title, analysis.Text)
	if err := os.WriteFile(analysisPath, []byte(content), 0644); err != nil {
		return transcriptPath, "", fmt.Errorf("%w: saving analysis: %v", ErrWriteOutput, err)
	}
	log.Printf("Analysis saved to: %s", analysisPath)

	return transcriptPath, analysisPath, nil
}
