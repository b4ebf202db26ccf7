package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/render"
	"github.com/jonathan/cv-studio/internal/store"
)

var (
	exportDocument string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the CV as a printable HTML page",
	Long:  "Renders the CV document into a standalone HTML page with print styling, suitable for the browser's print dialog.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDocument, "document", "d", "cv.json", "Path to the CV document JSON file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "cv.html", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	doc, err := store.Load(exportDocument)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	page := store.RenderPrintable(doc, render.Preview(doc))
	if err := os.WriteFile(exportOut, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}

	fmt.Printf("Exported %s\n", exportOut)
	return nil
}
