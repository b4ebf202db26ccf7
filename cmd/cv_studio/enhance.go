package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/store"
)

var (
	enhanceDocument string
	enhanceConfig   string
	enhanceDataDir  string
	enhanceAPIKey   string
	enhanceLanguage string
	enhanceSection  string
	enhanceItem     string
	enhanceApply    bool
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Get an AI rewrite of one section or item",
	Long: `Asks the completion service for an improved version of a section's text.
The section may be referenced by id or by type name (for example "summary").
Skills suggestions are always advisory: they are printed but never written
back into the document, even with --apply.`,
	RunE: runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceDocument, "document", "d", "", "Path to the CV document JSON file")
	enhanceCmd.Flags().StringVar(&enhanceConfig, "config", "", "Path to a JSON config file")
	enhanceCmd.Flags().StringVar(&enhanceDataDir, "data-dir", "", "Settings database directory")
	enhanceCmd.Flags().StringVar(&enhanceAPIKey, "api-key", "", "Completion service API key (remembered for later runs)")
	enhanceCmd.Flags().StringVarP(&enhanceLanguage, "language", "l", "", "Response language (default: detect from the CV)")
	enhanceCmd.Flags().StringVarP(&enhanceSection, "section", "s", "", "Section id or type name (required)")
	enhanceCmd.Flags().StringVar(&enhanceItem, "item", "", "Item id inside the section (list sections)")
	enhanceCmd.Flags().BoolVar(&enhanceApply, "apply", false, "Write the suggestion back into the document")

	if err := enhanceCmd.MarkFlagRequired("section"); err != nil {
		panic(fmt.Sprintf("failed to mark section flag as required: %v", err))
	}

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(enhanceConfig)
	if err != nil {
		return err
	}
	if enhanceDocument != "" {
		cfg.Document = enhanceDocument
	}
	if enhanceDataDir != "" {
		cfg.DataDir = enhanceDataDir
	}
	if enhanceAPIKey != "" {
		cfg.APIKey = enhanceAPIKey
	}
	if enhanceLanguage != "" {
		cfg.Language = enhanceLanguage
	}

	doc, err := store.Load(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	sec := findSection(doc, enhanceSection)
	if sec == nil {
		return fmt.Errorf("section not found: %s", enhanceSection)
	}

	st := openSettings(cfg.DataDir)
	defer closeSettings(st)

	client, err := ai.NewClient(resolveAIConfig(cfg, st))
	if err != nil {
		return err
	}
	engine := ai.NewEngine(client)

	suggestion, err := engine.Enhance(context.Background(), *sec, enhanceItem, resolveLanguage(cfg, st))
	if err != nil {
		clearKeyOnAuthFailure(err, st)
		return fmt.Errorf("enhancement failed: %w", err)
	}

	fmt.Printf("Suggestion for %q:\n\n%s\n", sec.Title, suggestion)

	if !enhanceApply {
		return nil
	}

	if !ai.ApplyEnhancement(sec, enhanceItem, suggestion) {
		fmt.Println("\nNot applied: suggestions for this section are advisory only.")
		return nil
	}
	if err := store.Save(doc, cfg.Document); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	fmt.Printf("\nApplied and saved to %s\n", cfg.Document)
	return nil
}
