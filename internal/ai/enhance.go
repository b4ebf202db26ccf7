package ai

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/prompts"
)

// Engine coordinates AI operations against a completion service client.
// Enhancement requests for the same target are coalesced through a
// singleflight group, so rapid duplicate triggers share one in-flight call
// instead of racing their write-backs.
type Engine struct {
	client *Client
	group  singleflight.Group
}

// NewEngine creates an Engine around a completion service client
func NewEngine(client *Client) *Engine {
	return &Engine{client: client}
}

// enhanceKey returns the prompt key for a section type
func enhanceKey(t document.SectionType) string {
	switch t {
	case document.SectionSummary:
		return "enhance-summary"
	case document.SectionExperience:
		return "enhance-experience"
	case document.SectionEducation:
		return "enhance-education"
	case document.SectionSkills:
		return "enhance-skills"
	default:
		return "enhance-custom"
	}
}

// Enhance asks the service to improve one section (or, for list sections,
// the item identified by itemID) and returns the raw trimmed reply. The
// caller decides what to do with it: text rewrites are written back into
// the model via ApplyEnhancement, while skills suggestions are display-only
// advisory additions and must never be auto-applied.
func (e *Engine) Enhance(ctx context.Context, sec document.Section, itemID, lang string) (string, error) {
	body := sectionBlock(sec)
	if item := findItem(sec, itemID); item != nil {
		body = itemBlock(*item)
	}

	key := fmt.Sprintf("%s:%s", sec.ID, itemID)
	result, err, _ := e.group.Do(key, func() (any, error) {
		prompt := prompts.Format(prompts.MustGet("enhance.json", enhanceKey(sec.Type)), map[string]string{
			"LanguageDirective": LanguageDirective(lang),
			"Title":             sec.Title,
			"Body":              body,
		})
		return e.client.Complete(ctx, prompts.MustGet("enhance.json", "system"), prompt)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// ApplyEnhancement writes an enhancement reply back into the section. For
// list sections the reply lands in the free-text field of the targeted
// item (description for experience, details for education). Skills
// sections are advisory-only and are left untouched. The boolean reports
// whether the model changed.
func ApplyEnhancement(sec *document.Section, itemID, reply string) bool {
	if sec.Type == document.SectionSkills {
		return false
	}

	if document.ShapeOf(sec.Type) == document.ShapeText {
		sec.Content = reply
		return true
	}

	for i := range sec.Items {
		if sec.Items[i].ID != itemID {
			continue
		}
		if sec.Type == document.SectionEducation {
			sec.Items[i].Details = reply
		} else {
			sec.Items[i].Description = reply
		}
		return true
	}
	return false
}

func findItem(sec document.Section, itemID string) *document.Item {
	if itemID == "" {
		return nil
	}
	for i := range sec.Items {
		if sec.Items[i].ID == itemID {
			return &sec.Items[i]
		}
	}
	return nil
}

// itemBlock renders a single item the same way sectionBlock renders a
// whole section, for item-targeted enhancement prompts
func itemBlock(item document.Item) string {
	sec := document.Section{Type: document.SectionExperience, Title: "entry", Items: []document.Item{item}}
	return sectionBlock(sec)
}
