// main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yt-insights <video-url>",
	Short: "Analyze YouTube videos for investment insights",
	Long: `Downloads a YouTube video's audio with yt-dlp, transcribes it with a
speech-to-text model and asks an LLM for a structured investment analysis.
The transcript and the analysis are written to timestamped files in the
output directory.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output-dir")
		model, _ := cmd.Flags().GetString("model")
		whisperModel, _ := cmd.Flags().GetString("whisper-model")

		req, err := ResolveInput(args[0], outputDir)
		if err != nil {
			return &StageError{Stage: StageInitialized, Err: err}
		}

		pipeline, err := NewPipeline(model, whisperModel)
		if err != nil {
			return err
		}

		result, err := pipeline.Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Println("\nAnalysis completed successfully!")
		fmt.Printf("Video: %s\n", result.Title)
		fmt.Printf("Transcript: %s\n", result.TranscriptPath)
		fmt.Printf("Analysis: %s\n", result.AnalysisPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().String("output-dir", "output", "Directory to save output files")
	rootCmd.Flags().String("model", defaultModel, "LLM model to use for analysis")
	rootCmd.Flags().String("whisper-model", defaultWhisperModel, "Speech-to-text model for transcription")
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
