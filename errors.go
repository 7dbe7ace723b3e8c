package main

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per pipeline failure class.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDownload         = errors.New("download failed")
	ErrTranscription    = errors.New("transcription failed")
	ErrAnalysis         = errors.New("analysis failed")
	ErrUnsupportedModel = errors.New("unsupported model")
	ErrWriteOutput      = errors.New("writing output failed")
)

// Stage names the pipeline step a run is in.
type Stage string

const (
	StageInitialized  Stage = "initialized"
	StageDownloading  Stage = "downloading"
	StageTranscribing Stage = "transcribing"
	StageAnalyzing    Stage = "analyzing"
	StageWriting      Stage = "writing"
	StageDone         Stage = "done"
)

// StageError reports which stage a run failed in and why.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
