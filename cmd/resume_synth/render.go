package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-synth/internal/observability"
	"github.com/jonathan/resume-synth/internal/pipeline"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render deserialized resumes into a training corpus",
	Long:  "Reads deserialized resumes, draws a random render configuration per sample, renders each resume to plain text, and writes the text/label pairs as corpus JSONL.",
	RunE:  runRenderCmd,
}

var (
	renderInput       string
	renderOutput      string
	renderTemplateDir string
	renderMinLength   int
	renderWorkers     int
	renderSeed        int64
	renderVerbose     bool
	renderDatabaseURL string
)

func init() {
	renderCommand.Flags().StringVarP(&renderInput, "input", "i", "", "Path to deserialized resumes JSONL")
	renderCommand.Flags().StringVarP(&renderOutput, "output", "o", "", "Path for the rendered corpus JSONL")
	renderCommand.Flags().StringVarP(&renderTemplateDir, "template-dir", "t", "", "Directory of render templates")
	renderCommand.Flags().IntVar(&renderMinLength, "min-length", 0, "Minimum rendered text length to keep a sample")
	renderCommand.Flags().IntVar(&renderWorkers, "workers", 0, "Parallel render workers")
	renderCommand.Flags().Int64Var(&renderSeed, "seed", 0, "RNG seed for reproducible sampling")
	renderCommand.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")
	renderCommand.Flags().StringVar(&renderDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	_ = renderCommand.MarkFlagRequired("input")
	_ = renderCommand.MarkFlagRequired("output")
	_ = renderCommand.MarkFlagRequired("template-dir")

	rootCmd.AddCommand(renderCommand)
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	databaseURL := renderDatabaseURL
	if !cmd.Flags().Changed("db-url") {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	rep := observability.NewReporter(os.Stdout, renderVerbose)
	resumes, err := pipeline.LoadResumes(renderInput)
	if err != nil {
		return err
	}
	rep.Stepf("Loaded %d resumes from %s.", len(resumes), renderInput)

	opts := &pipeline.Options{
		InputPath:   renderInput,
		OutputPath:  renderOutput,
		TemplateDir: renderTemplateDir,
		MinLength:   renderMinLength,
		Workers:     renderWorkers,
		Seed:        renderSeed,
		DatabaseURL: databaseURL,
		Reporter:    rep,
	}
	stats, err := pipeline.RunRender(context.Background(), resumes, opts)
	if err != nil {
		return err
	}
	rep.PrintBatchSummary("RENDER SUMMARY")
	rep.Stepf("Done! %d samples written to %s.", stats.Samples, renderOutput)
	return nil
}
