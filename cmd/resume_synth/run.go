package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-synth/internal/config"
	"github.com/jonathan/resume-synth/internal/observability"
	"github.com/jonathan/resume-synth/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full corpus synthesis pipeline end-to-end",
	Long: `Orchestrates the whole process: read raw dump -> dedup -> normalize -> deserialize -> post-process -> sample configs -> render -> harmonize -> write corpus.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runInput        string
	runOutput       string
	runTemplateDir  string
	runMinLength    int
	runWorkers      int
	runSeed         int64
	runEnglishOnly  bool
	runVerbose      bool
	runDatabaseURL  string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to raw JSONL extraction dump")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path for the rendered corpus JSONL")
	runCommand.Flags().StringVarP(&runTemplateDir, "template-dir", "t", "", "Directory of render templates")
	runCommand.Flags().IntVar(&runMinLength, "min-length", 0, "Minimum rendered text length to keep a sample")
	runCommand.Flags().IntVar(&runWorkers, "workers", 0, "Parallel render workers")
	runCommand.Flags().Int64Var(&runSeed, "seed", 0, "RNG seed for reproducible sampling")
	runCommand.Flags().BoolVar(&runEnglishOnly, "english-only", false, "Drop records whose language metadata is not \"en\"")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for corpus persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("--input is required (or set 'input' in the config file)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--output is required (or set 'output' in the config file)")
	}
	if cfg.TemplateDir == "" {
		return fmt.Errorf("--template-dir is required (or set 'template_dir' in the config file)")
	}

	opts := optionsFromConfig(cfg)
	return pipeline.Run(ctx, opts)
}

// loadRunConfig merges the optional config file with explicitly set flags,
// flags winning.
func loadRunConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("template-dir") {
		cfg.TemplateDir = runTemplateDir
	}
	if cmd.Flags().Changed("min-length") {
		cfg.MinLength = runMinLength
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = runWorkers
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = runSeed
	}
	if cmd.Flags().Changed("english-only") {
		cfg.EnglishOnly = runEnglishOnly
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	} else if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

func optionsFromConfig(cfg config.Config) *pipeline.Options {
	return &pipeline.Options{
		InputPath:   cfg.Input,
		OutputPath:  cfg.Output,
		TemplateDir: cfg.TemplateDir,
		MinLength:   cfg.MinLength,
		Workers:     cfg.Workers,
		Seed:        cfg.Seed,
		EnglishOnly: cfg.EnglishOnly,
		DatabaseURL: cfg.DatabaseURL,
		Reporter:    observability.NewReporter(os.Stdout, cfg.Verbose),
	}
}
