package main

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// openaiAnalyzer talks to the OpenAI chat completion API.
type openaiAnalyzer struct {
	client *openai.Client
	model  string
}

func newOpenAIAnalyzer(model string) (*openaiAnalyzer, error) {
	apiKey, err := requireEnv("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}
	return &openaiAnalyzer{client: openai.NewClient(apiKey), model: model}, nil
}

func (a *openaiAnalyzer) Name() string { return a.model }

func (a *openaiAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: analysisMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful financial analysis assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: OpenAI API: %v", ErrAnalysis, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: OpenAI API returned no choices", ErrAnalysis)
	}
	return resp.Choices[0].Message.Content, nil
}
