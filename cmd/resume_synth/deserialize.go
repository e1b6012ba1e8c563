package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-synth/internal/observability"
	"github.com/jonathan/resume-synth/internal/pipeline"
)

var deserializeCommand = &cobra.Command{
	Use:   "deserialize",
	Short: "Normalize and deserialize a raw extraction dump",
	Long:  "Reads a raw JSONL extraction dump, deduplicates by user, normalizes and validates each record, and writes the surviving resumes as plain-mapping JSONL for a later render step.",
	RunE:  runDeserializeCmd,
}

var (
	deserializeInput       string
	deserializeOutput      string
	deserializeEnglishOnly bool
	deserializeVerbose     bool
)

func init() {
	deserializeCommand.Flags().StringVarP(&deserializeInput, "input", "i", "", "Path to raw JSONL extraction dump")
	deserializeCommand.Flags().StringVarP(&deserializeOutput, "output", "o", "", "Path for the deserialized resumes JSONL")
	deserializeCommand.Flags().BoolVar(&deserializeEnglishOnly, "english-only", false, "Drop records whose language metadata is not \"en\"")
	deserializeCommand.Flags().BoolVarP(&deserializeVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = deserializeCommand.MarkFlagRequired("input")
	_ = deserializeCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(deserializeCommand)
}

func runDeserializeCmd(_ *cobra.Command, _ []string) error {
	opts := &pipeline.Options{
		InputPath:   deserializeInput,
		EnglishOnly: deserializeEnglishOnly,
		Reporter:    observability.NewReporter(os.Stdout, deserializeVerbose),
	}
	resumes, err := pipeline.RunDeserialize(context.Background(), opts)
	if err != nil {
		return err
	}
	if err := pipeline.WriteResumes(deserializeOutput, resumes); err != nil {
		return err
	}
	opts.Reporter.Stepf("Done! %d resumes written to %s.", len(resumes), deserializeOutput)
	return nil
}
