package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-synth/internal/observability"
	"github.com/jonathan/resume-synth/internal/pipeline"
)

var sampleCommand = &cobra.Command{
	Use:   "sample",
	Short: "Extract a small dev sample covering every section",
	Long:  "Draws a small subset of the raw dump in which every resume section appears in at least some records, for fast iteration on templates and normalization.",
	RunE:  runSampleCmd,
}

var (
	sampleInput      string
	sampleOutput     string
	samplePerSection int
	sampleSeed       int64
)

func init() {
	sampleCommand.Flags().StringVarP(&sampleInput, "input", "i", "", "Path to raw JSONL extraction dump")
	sampleCommand.Flags().StringVarP(&sampleOutput, "output", "o", "", "Path for the sampled JSONL")
	sampleCommand.Flags().IntVar(&samplePerSection, "per-section", 0, "Records to draw per section (default 100)")
	sampleCommand.Flags().Int64Var(&sampleSeed, "seed", 0, "RNG seed for reproducible sampling")
	_ = sampleCommand.MarkFlagRequired("input")
	_ = sampleCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(sampleCommand)
}

func runSampleCmd(_ *cobra.Command, _ []string) error {
	rep := observability.NewReporter(os.Stdout, false)
	return pipeline.SampleDevData(sampleInput, sampleOutput, samplePerSection, sampleSeed, rep)
}
