package main

import "time"

// VideoRequest identifies the video to process and where output goes
type VideoRequest struct {
	URL       string
	VideoID   string
	OutputDir string
}

// AudioAsset holds the path of a downloaded audio file and the resolved video title
type AudioAsset struct {
	Path  string
	Title string
}

// Transcript is the speech-to-text output for one video
type Transcript struct {
	Text      string
	Title     string
	CreatedAt time.Time
}

// AnalysisResult is the raw markdown returned by the LLM
type AnalysisResult struct {
	Text string
}
