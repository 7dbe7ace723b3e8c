package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

const analysisMaxTokens = 4000

const analysisSystemPrompt = "You are a helpful financial analysis assistant that specializes in extracting investment insights."

const analysisPromptTemplate = `The following is a transcript from a YouTube video titled "%s".

Transcript:
%s

Please provide:
1. A detailed summary of the main ideas with emphasis on explaining the macroeconomic behavior. I understand a lot of economic fundamentals but there are holes in my knowledge so I need some educating on how everything fits together. Explain like i'm 10y/o.
2. Specific investment trades or opportunities suggested or implied
3. Potential risks, downsides, and tradeoffs for each suggested trade
4. Any limitations or biases in the analysis presented in the video

Format your response in clear sections with ## headings.`

// analyzer is implemented once per LLM provider family.
type analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
	Name() string
}

// buildAnalysisPrompt renders the instruction prompt for a transcript.
// The output depends only on the title and transcript text.
func buildAnalysisPrompt(title, transcript string) string {
	return fmt.Sprintf(analysisPromptTemplate, title, transcript)
}

// NewAnalyzer picks the provider backend from the model identifier prefix.
// Unrecognized identifiers are rejected here, before any network call.
func NewAnalyzer(model string) (analyzer, error) {
	lower := strings.ToLower(model)
	switch {
	case strings.HasPrefix(lower, "claude"):
		return newClaudeAnalyzer(model)
	case hasAnyPrefix(lower, "gpt", "o1", "o3", "o4", "chatgpt"):
		return newOpenAIAnalyzer(model)
	case strings.HasPrefix(lower, "gemini"):
		return newGeminiAnalyzer(model)
	default:
		return nil, fmt.Errorf("%w: %q (expected a claude, gpt/o, or gemini family model)", ErrUnsupportedModel, model)
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// AnalyzeTranscript sends the transcript to the selected backend and
// returns the raw markdown response.
func AnalyzeTranscript(ctx context.Context, backend analyzer, transcript Transcript) (AnalysisResult, error) {
	log.Printf("Analyzing transcript with %s...", backend.Name())

	prompt := buildAnalysisPrompt(transcript.Title, transcript.Text)
	text, err := backend.Analyze(ctx, prompt)
	if err != nil {
		return AnalysisResult{}, err
	}

	if strings.TrimSpace(text) == "" {
		return AnalysisResult{}, fmt.Errorf("%w: %s returned an empty response", ErrAnalysis, backend.Name())
	}

	log.Printf("Analysis completed: %d characters", len(text))
	return AnalysisResult{Text: text}, nil
}

// requireEnv reads a provider API key, failing before any network call
// when it is missing.
func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s not set in environment", ErrAnalysis, name)
	}
	return value, nil
}
