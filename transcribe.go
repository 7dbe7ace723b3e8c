package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const defaultWhisperModel = openai.Whisper1

// Transcriber converts downloaded audio into plain text using an
// OpenAI-compatible speech-to-text endpoint.
type Transcriber struct {
	client    *openai.Client
	model     string
	optimizer *AudioOptimizer
}

// NewTranscriber builds a Transcriber from environment configuration.
// SPEECH_API_BASE_URL and SPEECH_API_KEY allow pointing at Lemonfox or a
// local Whisper server; by default the OpenAI endpoint and key are used.
// The key is checked here so a misconfigured run fails before downloading.
func NewTranscriber(model string) (*Transcriber, error) {
	apiKey := os.Getenv("SPEECH_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: SPEECH_API_KEY or OPENAI_API_KEY must be set", ErrTranscription)
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("SPEECH_API_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = defaultWhisperModel
	}

	return &Transcriber{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		optimizer: NewAudioOptimizer(),
	}, nil
}

// Transcribe runs speech-to-text over the audio asset.
func (t *Transcriber) Transcribe(ctx context.Context, asset AudioAsset) (Transcript, error) {
	log.Printf("Transcribing audio with model %s...", t.model)

	path, cleanup, err := t.optimizer.EnsureUploadable(ctx, asset.Path)
	if err != nil {
		return Transcript{}, err
	}
	defer cleanup()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: path,
	})
	if err != nil {
		return Transcript{}, fmt.Errorf("%w: %v", ErrTranscription, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Transcript{}, fmt.Errorf("%w: empty transcript", ErrTranscription)
	}

	log.Printf("Transcription completed: %d characters", len(text))
	return Transcript{Text: text, Title: asset.Title, CreatedAt: time.Now()}, nil
}
