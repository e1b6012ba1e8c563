// Package main provides the entry point for the resume corpus synthesis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_synth",
	Short: "Resume training-corpus synthesizer",
	Long:  "Resume Synth normalizes raw resume extraction dumps into typed resumes and renders them into randomized plain-text training samples paired with structured labels.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
