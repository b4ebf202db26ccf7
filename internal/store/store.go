// Package store persists CV documents as JSON and exports them as
// printable HTML and PDF.
package store

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/schemas"
)

// documentWire is the persisted top-level shape
type documentWire struct {
	PersonalInfo document.PersonalInfo `json:"personalInfo"`
	Sections     []sectionWire         `json:"sections"`
}

// sectionWire uses pointers so that absent and null fields are
// distinguishable from zero values on import, and so text sections always
// serialize their content field even when empty
type sectionWire struct {
	ID      string           `json:"id"`
	Type    string           `json:"type"`
	Title   *string          `json:"title,omitempty"`
	Visible *bool            `json:"visible,omitempty"`
	Content *string          `json:"content,omitempty"`
	Items   *[]document.Item `json:"items,omitempty"`
}

// Serialize encodes the document for persistence. Fields inapplicable to a
// section's shape are omitted entirely.
func Serialize(doc *document.Document) ([]byte, error) {
	wire := documentWire{
		PersonalInfo: doc.PersonalInfo,
		Sections:     make([]sectionWire, 0, len(doc.Sections)),
	}

	for i := range doc.Sections {
		sec := doc.Sections[i]
		entry := sectionWire{
			ID:      sec.ID,
			Type:    string(sec.Type),
			Title:   &sec.Title,
			Visible: &sec.Visible,
		}
		if document.ShapeOf(sec.Type) == document.ShapeList {
			items := sec.Items
			entry.Items = &items
		} else {
			content := sec.Content
			entry.Content = &content
		}
		wire.Sections = append(wire.Sections, entry)
	}

	return json.MarshalIndent(wire, "", "  ")
}

// Deserialize decodes a persisted document. A top-level value that is not
// an object, or unparseable JSON, fails with FormatError. Section entries
// missing an id or type are skipped with a logged warning; accepted
// sections have missing fields filled from registry defaults so that a
// partially-specified import never crashes the renderer.
func Deserialize(data []byte) (*document.Document, error) {
	if err := schemas.ValidateShape(data); err != nil {
		return nil, &FormatError{Message: "document must be a JSON object", Cause: err}
	}

	var wire documentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &FormatError{Message: "failed to decode document", Cause: err}
	}

	doc := &document.Document{
		PersonalInfo: wire.PersonalInfo,
		Sections:     make([]document.Section, 0, len(wire.Sections)),
	}

	for i, entry := range wire.Sections {
		if entry.ID == "" || entry.Type == "" {
			log.Printf("[IMPORT] skipping section %d: missing id or type", i)
			continue
		}
		doc.Sections = append(doc.Sections, restoreSection(entry))
	}

	doc.Normalize()
	return doc, nil
}

// restoreSection builds a model section from a wire entry, filling absent
// fields with the same defaults NewSection uses
func restoreSection(entry sectionWire) document.Section {
	secType := document.SectionType(entry.Type)
	sec := document.Section{
		ID:      entry.ID,
		Type:    secType,
		Title:   document.DefaultTitle(secType),
		Visible: true,
	}
	if entry.Title != nil {
		sec.Title = *entry.Title
	}
	if entry.Visible != nil {
		sec.Visible = *entry.Visible
	}

	if document.ShapeOf(secType) == document.ShapeList {
		if entry.Items != nil && len(*entry.Items) > 0 {
			sec.Items = *entry.Items
			for i := range sec.Items {
				if sec.Items[i].ID == "" {
					sec.Items[i].ID = uuid.NewString()
				}
			}
		} else {
			sec.Items = document.DefaultItems(secType)
		}
		return sec
	}

	if entry.Content != nil {
		sec.Content = *entry.Content
	} else {
		sec.Content = document.DefaultContent(secType)
	}
	return sec
}

// Load reads and deserializes a document file
func Load(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Deserialize(data)
}

// Save serializes the document and writes it to path
func Save(doc *document.Document, path string) error {
	data, err := Serialize(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
