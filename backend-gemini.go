package main

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiAnalyzer talks to the Gemini API.
type geminiAnalyzer struct {
	apiKey string
	model  string
}

func newGeminiAnalyzer(model string) (*geminiAnalyzer, error) {
	apiKey, err := requireEnv("GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}
	return &geminiAnalyzer{apiKey: apiKey, model: model}, nil
}

func (a *geminiAnalyzer) Name() string { return a.model }

func (a *geminiAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: creating Gemini client: %v", ErrAnalysis, err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	model.SetMaxOutputTokens(analysisMaxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(analysisSystemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: Gemini API: %v", ErrAnalysis, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: Gemini API returned no content, possible safety filter", ErrAnalysis)
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: expected text part in Gemini response, got %T", ErrAnalysis, resp.Candidates[0].Content.Parts[0])
	}
	return string(text), nil
}
