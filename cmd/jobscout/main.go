// Package main provides the entry point for the jobscout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Singapore job posting search and ranking CLI",
	Long:  "jobscout searches Singapore job sites for a target role, scores and deduplicates the postings, and writes a ranked Excel report with run diagnostics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
