package ai

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-studio/internal/document"
)

// Snapshot flattens the document into the plain-text form sent to the
// completion service: personal info first, then each visible section as a
// title/type header followed by one "key: value" line per non-empty field,
// with blank lines between sections. No structured JSON ever leaves the
// process.
func Snapshot(doc *document.Document) string {
	var blocks []string

	blocks = append(blocks, personalBlock(doc.PersonalInfo))

	for _, sec := range doc.Sections {
		if !sec.Visible {
			continue
		}
		blocks = append(blocks, sectionBlock(sec))
	}

	return strings.Join(blocks, "\n\n")
}

func personalBlock(info document.PersonalInfo) string {
	var lines []string
	appendField(&lines, "name", info.FullName)
	appendField(&lines, "title", info.JobTitle)
	appendField(&lines, "email", info.Email)
	appendField(&lines, "phone", info.Phone)
	appendField(&lines, "location", info.Location)
	for _, site := range info.Websites {
		appendField(&lines, string(site.Type), site.URL)
	}
	return strings.Join(lines, "\n")
}

func sectionBlock(sec document.Section) string {
	lines := []string{fmt.Sprintf("## %s (%s)", sec.Title, sec.Type)}

	if document.ShapeOf(sec.Type) == document.ShapeText {
		appendField(&lines, "content", sec.Content)
		return strings.Join(lines, "\n")
	}

	for _, item := range sec.Items {
		if !document.ItemHasContent(item) {
			continue
		}
		appendField(&lines, "company", item.Company)
		appendField(&lines, "position", item.Position)
		appendField(&lines, "duration", item.Duration)
		appendField(&lines, "location", item.Location)
		appendField(&lines, "description", item.Description)
		appendField(&lines, "institution", item.Institution)
		appendField(&lines, "degree", item.Degree)
		appendField(&lines, "year", item.Year)
		appendField(&lines, "details", item.Details)
		appendField(&lines, "category", item.Category)
		if len(item.Skills) > 0 {
			appendField(&lines, "skills", strings.Join(item.Skills, ", "))
		}
	}

	return strings.Join(lines, "\n")
}

func appendField(lines *[]string, key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	*lines = append(*lines, fmt.Sprintf("%s: %s", key, value))
}
