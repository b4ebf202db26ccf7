package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/render"
	"github.com/jonathan/cv-studio/internal/store"
)

var (
	pdfDocument string
	pdfOut      string
	pdfTimeout  time.Duration
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export the CV as a PDF",
	Long:  "Renders the CV document to an A4 PDF using a local headless Chrome (set CHROME_PATH to pick the browser binary).",
	RunE:  runPDF,
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfDocument, "document", "d", "cv.json", "Path to the CV document JSON file")
	pdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "cv.pdf", "Output file path")
	pdfCmd.Flags().DurationVar(&pdfTimeout, "timeout", 2*time.Minute, "Render timeout")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(_ *cobra.Command, _ []string) error {
	doc, err := store.Load(pdfDocument)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	page := store.RenderPrintable(doc, render.Preview(doc))

	ctx, cancel := context.WithTimeout(context.Background(), pdfTimeout)
	defer cancel()

	pdf, err := store.RenderPDF(ctx, page)
	if err != nil {
		return fmt.Errorf("PDF render failed: %w", err)
	}

	if err := os.WriteFile(pdfOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Exported %s (%d bytes)\n", pdfOut, len(pdf))
	return nil
}
