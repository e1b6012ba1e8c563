package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-synth/internal/extraction"
	"github.com/jonathan/resume-synth/internal/observability"
	"github.com/jonathan/resume-synth/internal/pipeline"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured resumes from free text via the AI service",
	Long: `Reads a JSONL dump of free-text resumes ({"user_id", "updated_ts", "text"} per line),
asks the configured Gemini model for a structured JSON-resume guess, and writes a raw
extraction dump that the run and deserialize commands accept.

Requires GEMINI_API_KEY (or --api-key). With --perturb, each text is randomly mutated
first (truncation, tail shuffle, or head drop) to produce harder training inputs.`,
	RunE: runExtractCmd,
}

var (
	extractInput   string
	extractOutput  string
	extractModel   string
	extractAPIKey  string
	extractPerturb bool
	extractSeed    int64
	extractVerbose bool
)

func init() {
	extractCommand.Flags().StringVarP(&extractInput, "input", "i", "", "Path to JSONL dump of free-text resumes")
	extractCommand.Flags().StringVarP(&extractOutput, "output", "o", "", "Path for the raw extraction dump JSONL")
	extractCommand.Flags().StringVar(&extractModel, "model", "", "Gemini model name (default "+extraction.DefaultModel+")")
	extractCommand.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY env var)")
	extractCommand.Flags().BoolVar(&extractPerturb, "perturb", false, "Randomly mutate each text before extraction")
	extractCommand.Flags().Int64Var(&extractSeed, "seed", 0, "RNG seed for reproducible perturbation")
	extractCommand.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = extractCommand.MarkFlagRequired("input")
	_ = extractCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("--api-key is required (or set GEMINI_API_KEY)")
	}

	extractor, err := extraction.NewGeminiExtractor(ctx, apiKey, extractModel)
	if err != nil {
		return err
	}
	defer extractor.Close()

	return pipeline.RunExtract(ctx, extractor, &pipeline.ExtractOptions{
		InputPath:  extractInput,
		OutputPath: extractOutput,
		Perturb:    extractPerturb,
		Seed:       extractSeed,
		Reporter:   observability.NewReporter(os.Stdout, extractVerbose),
	})
}
