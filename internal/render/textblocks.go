package render

import "strings"

// FormatTextBlocks converts plain text into paragraph and list markup.
// Lines starting with "- " or "* " become list items; consecutive bullet
// lines are grouped into a single <ul> run. Every other non-empty line
// becomes its own paragraph. Blank lines produce no output nodes. All text
// is escaped exactly once before embedding.
func FormatTextBlocks(text string) string {
	var sb strings.Builder
	var listOpen bool

	closeList := func() {
		if listOpen {
			sb.WriteString("</ul>")
			listOpen = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			closeList()
			continue
		}

		if bullet, ok := bulletText(trimmed); ok {
			if !listOpen {
				sb.WriteString(`<ul class="text-list">`)
				listOpen = true
			}
			sb.WriteString("<li>")
			sb.WriteString(EscapeHTML(bullet))
			sb.WriteString("</li>")
			continue
		}

		closeList()
		sb.WriteString("<p>")
		sb.WriteString(EscapeHTML(trimmed))
		sb.WriteString("</p>")
	}
	closeList()

	return sb.String()
}

// bulletText strips a leading "- " or "* " marker, reporting whether the
// line is a bullet
func bulletText(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:]), true
	}
	return "", false
}
