package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/document"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &ai.Analysis{
		Score:  82,
		Impact: ai.PriorityHigh,
		Suggestions: []ai.Suggestion{
			{Priority: ai.PriorityHigh, Type: ai.TypeContent, Text: "Add measurable outcomes"},
			{Priority: ai.PriorityLow, Type: ai.TypeFormatting, Text: "Shorten the summary"},
		},
	}

	p.PrintAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "CV ANALYSIS")
	assert.Contains(t, output, "82/100")
	assert.Contains(t, output, "High")
	assert.Contains(t, output, "[High/Content]")
	assert.Contains(t, output, "Add measurable outcomes")
}

func TestPrintAnalysis_NoSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&ai.Analysis{Score: 90, Impact: ai.PriorityLow})

	assert.Contains(t, buf.String(), "No suggestions.")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &ai.Analysis{Score: 70, Impact: ai.PriorityMedium}
	for i := 0; i < 8; i++ {
		analysis.Suggestions = append(analysis.Suggestions, ai.Suggestion{
			Priority: ai.PriorityMedium,
			Type:     ai.TypeGeneral,
			Text:     "suggestion",
		})
	}

	p.PrintAnalysis(analysis)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := document.New()
	doc.PersonalInfo.FullName = "Ada Lovelace"
	doc.PersonalInfo.JobTitle = "Engineer"
	hidden := document.NewSection(document.SectionExperience)
	hidden.Visible = false
	doc.Sections = append(doc.Sections, hidden)

	p.PrintDocumentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "CV DOCUMENT")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Professional Summary")
	assert.Contains(t, output, "(hidden)")
}

func TestPrintDocumentSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocumentSummary(nil)

	assert.Empty(t, buf.String())
}
