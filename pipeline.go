package main

import "context"

type audioFetcher interface {
	Fetch(ctx context.Context, req VideoRequest) (AudioAsset, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, asset AudioAsset) (Transcript, error)
}

type artifactWriter func(req VideoRequest, transcript Transcript, analysis AnalysisResult) (string, string, error)

// Pipeline runs one video through download, transcription, analysis and
// artifact writing, strictly in that order. Any stage failure aborts the
// run with a StageError naming the stage.
type Pipeline struct {
	fetcher     audioFetcher
	transcriber transcriber
	backend     analyzer
	write       artifactWriter
	stage       Stage
}

// RunResult reports where a finished run left its artifacts.
type RunResult struct {
	Title          string
	TranscriptPath string
	AnalysisPath   string
}

// NewPipeline wires the real collaborators. The analyzer and transcriber
// check their credentials here, so a missing API key fails before any
// download or network call.
func NewPipeline(model, whisperModel string) (*Pipeline, error) {
	backend, err := NewAnalyzer(model)
	if err != nil {
		return nil, &StageError{Stage: StageAnalyzing, Err: err}
	}

	t, err := NewTranscriber(whisperModel)
	if err != nil {
		return nil, &StageError{Stage: StageTranscribing, Err: err}
	}

	return &Pipeline{
		fetcher:     NewAudioFetcher(),
		transcriber: t,
		backend:     backend,
		write:       WriteArtifacts,
		stage:       StageInitialized,
	}, nil
}

// Run executes the pipeline for one video. Output files are only written
// after both the transcript and the analysis succeeded.
func (p *Pipeline) Run(ctx context.Context, req VideoRequest) (RunResult, error) {
	p.stage = StageDownloading
	asset, err := p.fetcher.Fetch(ctx, req)
	if err != nil {
		return RunResult{}, &StageError{Stage: p.stage, Err: err}
	}

	p.stage = StageTranscribing
	transcript, err := p.transcriber.Transcribe(ctx, asset)
	if err != nil {
		return RunResult{}, &StageError{Stage: p.stage, Err: err}
	}

	p.stage = StageAnalyzing
	analysis, err := AnalyzeTranscript(ctx, p.backend, transcript)
	if err != nil {
		return RunResult{}, &StageError{Stage: p.stage, Err: err}
	}

	p.stage = StageWriting
	transcriptPath, analysisPath, err := p.write(req, transcript, analysis)
	if err != nil {
		return RunResult{}, &StageError{Stage: p.stage, Err: err}
	}

	p.stage = StageDone
	return RunResult{
		Title:          transcript.Title,
		TranscriptPath: transcriptPath,
		AnalysisPath:   analysisPath,
	}, nil
}
