package main

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

// claudeAnalyzer talks to the Anthropic messages API.
type claudeAnalyzer struct {
	client *anthropic.Client
	model  string
}

func newClaudeAnalyzer(model string) (*claudeAnalyzer, error) {
	apiKey, err := requireEnv("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}
	return &claudeAnalyzer{client: anthropic.NewClient(apiKey), model: model}, nil
}

func (a *claudeAnalyzer) Name() string { return a.model }

func (a *claudeAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: analysisMaxTokens,
		System:    analysisSystemPrompt,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: Anthropic API: %v", ErrAnalysis, err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: Anthropic API returned no content", ErrAnalysis)
	}
	return resp.Content[0].GetText(), nil
}
