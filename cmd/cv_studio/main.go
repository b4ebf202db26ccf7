// Package main provides the entry point for the CV Studio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_studio",
	Short: "CV Studio CLI and editor server",
	Long:  "CV Studio edits, previews, analyzes and exports CV documents stored as JSON, with an optional local HTTP editor server and AI-assisted suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
