// Package observability provides formatted output utilities for CLI results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/document"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a CV review.
func (p *Printer) PrintAnalysis(analysis *ai.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall score: %d/100\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Impact level:  %s\n", analysis.Impact))

	if len(analysis.Suggestions) == 0 {
		sb.WriteString("\nNo suggestions.")
		p.printBox("CV ANALYSIS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("\nSuggestions (%d):\n", len(analysis.Suggestions)))
	count := min(len(analysis.Suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sug := analysis.Suggestions[i]
		sb.WriteString(fmt.Sprintf("%2d. [%s/%s]\n", i+1, sug.Priority, sug.Type))
		sb.WriteString(fmt.Sprintf("    %s\n", sug.Text))
	}
	if len(analysis.Suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(analysis.Suggestions)-maxItemsToShow))
	}

	p.printBox("CV ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentSummary outputs a one-box overview of the document: who it
// is for and which sections it contains.
func (p *Printer) PrintDocumentSummary(doc *document.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	if doc.PersonalInfo.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.PersonalInfo.FullName))
	}
	if doc.PersonalInfo.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.PersonalInfo.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Language: %s\n\n", doc.PersonalInfo.Language))

	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(doc.Sections)))
	for _, sec := range doc.Sections {
		marker := "•"
		if !sec.Visible {
			marker = "·"
		}
		line := fmt.Sprintf("  %s %s", marker, sec.Title)
		if !sec.Visible {
			line += " (hidden)"
		}
		if len(sec.Items) > 0 {
			line += fmt.Sprintf(" — %d item(s)", len(sec.Items))
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("CV DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}
