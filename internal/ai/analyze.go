package ai

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/prompts"
)

// Priority ranks a suggestion's urgency
type Priority string

// Priority vocabulary (English-fixed)
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// SuggestionType categorizes what a suggestion is about
type SuggestionType string

// Suggestion type vocabulary (English-fixed)
const (
	TypeContent    SuggestionType = "Content"
	TypeFormatting SuggestionType = "Formatting"
	TypeSkills     SuggestionType = "Skills"
	TypeExperience SuggestionType = "Experience"
	TypeGeneral    SuggestionType = "General"
)

// Suggestion is one piece of AI advice about the CV. Transient: produced
// per analysis request and replaced by the next one.
type Suggestion struct {
	Priority Priority       `json:"priority"`
	Type     SuggestionType `json:"type"`
	Text     string         `json:"text"`
}

// Analysis is the structured result of one CV review
type Analysis struct {
	Score       int          `json:"score"`
	Impact      Priority     `json:"impact"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Defaults applied when the reply omits the score or impact header.
// Analysis never fails outright over those two fields.
const (
	defaultScore  = 75
	defaultImpact = PriorityMedium
)

var (
	scoreRe  = regexp.MustCompile(`(?i)OVERALL\s+SCORE\s*[:\-]?\s*(\d{1,3})`)
	impactRe = regexp.MustCompile(`(?i)IMPACT\s+LEVEL\s*[:\-]?\s*([\p{L}]+)`)
)

// Analyze snapshots the document, requests a review from the completion
// service, and parses the free-text reply into an Analysis. The language
// directive comes from caller configuration and is passed through verbatim
// into the prompt.
func (e *Engine) Analyze(ctx context.Context, doc *document.Document, lang string) (*Analysis, error) {
	prompt := prompts.Format(prompts.MustGet("analysis.json", "analyze-cv"), map[string]string{
		"LanguageDirective": LanguageDirective(lang),
		"Snapshot":          Snapshot(doc),
	})

	raw, err := e.client.Complete(ctx, prompts.MustGet("analysis.json", "system"), prompt)
	if err != nil {
		return nil, err
	}

	return ParseAnalysis(raw), nil
}

// LanguageDirective renders the explicit language instruction carried by
// every prompt. An empty selection asks for the content's own language.
func LanguageDirective(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "Respond in the same language the CV content is written in."
	}
	return "Respond in " + lang + "."
}

// ParseAnalysis extracts score, impact level, and suggestions from a raw
// service reply. It is deterministic and tolerant of format drift: missing
// headers fall back to defaults and suggestion extraction runs through a
// prioritized strategy cascade.
func ParseAnalysis(raw string) *Analysis {
	analysis := &Analysis{
		Score:       defaultScore,
		Impact:      defaultImpact,
		Suggestions: parseSuggestions(raw),
	}

	if m := scoreRe.FindStringSubmatch(raw); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil && score >= 0 && score <= 100 {
			analysis.Score = score
		}
	}
	if m := impactRe.FindStringSubmatch(raw); m != nil {
		analysis.Impact = NormalizePriority(m[1])
	}

	return analysis
}

// suggestionStrategy is one parser in the fallback chain. Strategies are
// tried in order; the first that yields at least one suggestion wins.
type suggestionStrategy struct {
	name  string
	parse func(lines []string) []Suggestion
}

var strategies = []suggestionStrategy{
	{name: "bracket-tags", parse: parseBracketTags},
	{name: "numbered-list", parse: parseNumberedList},
	{name: "heuristic-lines", parse: parseHeuristicLines},
}

func parseSuggestions(raw string) []Suggestion {
	lines := strings.Split(raw, "\n")
	for _, strategy := range strategies {
		if found := strategy.parse(lines); len(found) > 0 {
			return found
		}
	}
	// Only "no strategy matched" yields an empty list; the caller shows
	// "no suggestions found", not an error.
	return nil
}

// parseBracketTags tries each locale's [Priority:...] [Type:...] pattern
// and keeps the first locale that matches at least one line
func parseBracketTags(lines []string) []Suggestion {
	for _, pattern := range tagPatterns {
		var found []Suggestion
		for _, line := range lines {
			m := pattern.re.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			found = append(found, Suggestion{
				Priority: NormalizePriority(m[1]),
				Type:     NormalizeType(m[2]),
				Text:     strings.TrimSpace(m[3]),
			})
		}
		if len(found) > 0 {
			return found
		}
	}
	return nil
}

var numberedRe = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)`)

// parseNumberedList falls back to "1. ..." lines, assigning priority by
// position: first two High, next two Medium, the rest Low
func parseNumberedList(lines []string) []Suggestion {
	var found []Suggestion
	for _, line := range lines {
		m := numberedRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		found = append(found, Suggestion{
			Priority: positionPriority(len(found)),
			Type:     TypeGeneral,
			Text:     strings.TrimSpace(m[1]),
		})
	}
	return found
}

// maxHeuristicSuggestions caps the last-resort extractor
const maxHeuristicSuggestions = 6

// parseHeuristicLines is the last resort: any line longer than 20
// characters carrying a hyphen or a numbered prefix, capped at 6 results
func parseHeuristicLines(lines []string) []Suggestion {
	var found []Suggestion
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 20 {
			continue
		}
		if !strings.Contains(trimmed, "-") && !numberedRe.MatchString(trimmed) {
			continue
		}
		found = append(found, Suggestion{
			Priority: positionPriority(len(found)),
			Type:     TypeGeneral,
			Text:     stripLinePrefix(trimmed),
		})
		if len(found) == maxHeuristicSuggestions {
			break
		}
	}
	return found
}

// stripLinePrefix removes a leading bullet or numbering marker
func stripLinePrefix(line string) string {
	if m := numberedRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	line = strings.TrimLeft(line, "-•* ")
	return strings.TrimSpace(line)
}

func positionPriority(pos int) Priority {
	switch {
	case pos < 2:
		return PriorityHigh
	case pos < 4:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
