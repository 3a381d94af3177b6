// Package main provides the entry point for the skill gap analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap",
	Short: "CV skill gap analysis",
	Long:  "Skillgap analyzes a CV against a target role's market requirements and produces a Markdown report with a gap table and a six-week upskilling roadmap.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
