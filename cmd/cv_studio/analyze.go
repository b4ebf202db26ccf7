package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/observability"
	"github.com/jonathan/cv-studio/internal/store"
)

var (
	analyzeDocument string
	analyzeConfig   string
	analyzeDataDir  string
	analyzeAPIKey   string
	analyzeLanguage string
	analyzeVerbose  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Get an AI review of the CV",
	Long:  "Sends the CV to the completion service and prints the overall score, expected impact and a prioritized list of suggestions.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDocument, "document", "d", "", "Path to the CV document JSON file")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeDataDir, "data-dir", "", "Settings database directory")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Completion service API key (remembered for later runs)")
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "", "Response language (default: detect from the CV)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Also print a document overview")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(analyzeConfig)
	if err != nil {
		return err
	}
	if analyzeDocument != "" {
		cfg.Document = analyzeDocument
	}
	if analyzeDataDir != "" {
		cfg.DataDir = analyzeDataDir
	}
	if analyzeAPIKey != "" {
		cfg.APIKey = analyzeAPIKey
	}
	if analyzeLanguage != "" {
		cfg.Language = analyzeLanguage
	}

	doc, err := store.Load(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	st := openSettings(cfg.DataDir)
	defer closeSettings(st)

	client, err := ai.NewClient(resolveAIConfig(cfg, st))
	if err != nil {
		return err
	}
	engine := ai.NewEngine(client)

	analysis, err := engine.Analyze(context.Background(), doc, resolveLanguage(cfg, st))
	if err != nil {
		clearKeyOnAuthFailure(err, st)
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose {
		printer.PrintDocumentSummary(doc)
	}
	printer.PrintAnalysis(analysis)
	return nil
}
