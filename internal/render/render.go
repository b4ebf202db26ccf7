package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-studio/internal/document"
)

// Preview renders the document into preview HTML. Invisible sections are
// skipped entirely, not merely styled hidden; list items whose non-id
// fields are all empty are skipped silently.
func Preview(doc *document.Document) string {
	var sb strings.Builder

	sb.WriteString(`<div class="cv-preview">`)
	renderHeader(&sb, doc.PersonalInfo)

	for _, sec := range doc.Sections {
		if !sec.Visible {
			continue
		}
		renderSection(&sb, sec)
	}

	sb.WriteString("</div>")
	return sb.String()
}

func renderHeader(sb *strings.Builder, info document.PersonalInfo) {
	sb.WriteString(`<header class="cv-header">`)
	if info.FullName != "" {
		fmt.Fprintf(sb, `<h1 class="cv-name">%s</h1>`, EscapeHTML(info.FullName))
	}
	if info.JobTitle != "" {
		fmt.Fprintf(sb, `<p class="cv-title">%s</p>`, EscapeHTML(info.JobTitle))
	}

	var contact []string
	for _, field := range []string{info.Email, info.Phone, info.Location} {
		if strings.TrimSpace(field) != "" {
			contact = append(contact, EscapeHTML(field))
		}
	}
	if len(contact) > 0 {
		fmt.Fprintf(sb, `<p class="cv-contact">%s</p>`, strings.Join(contact, " · "))
	}

	var links []string
	for _, site := range info.Websites {
		if strings.TrimSpace(site.URL) == "" {
			continue
		}
		links = append(links, fmt.Sprintf(
			`<a class="cv-link %s" href="%s">%s</a>`,
			EscapeHTML(document.WebsiteIconClass(site.Type)),
			EscapeHTML(WebsiteHref(site.URL)),
			EscapeHTML(WebsiteDisplay(site.URL)),
		))
	}
	if len(links) > 0 {
		fmt.Fprintf(sb, `<p class="cv-links">%s</p>`, strings.Join(links, " "))
	}

	sb.WriteString("</header>")
}

func renderSection(sb *strings.Builder, sec document.Section) {
	fmt.Fprintf(sb, `<section class="cv-section cv-section-%s" data-section-id="%s">`,
		EscapeHTML(string(sec.Type)), EscapeHTML(sec.ID))
	fmt.Fprintf(sb, `<h2 class="cv-section-title">%s</h2>`, EscapeHTML(sec.Title))

	if !document.SectionHasContent(sec) {
		sb.WriteString(`<p class="cv-empty">No content added yet</p></section>`)
		return
	}

	switch {
	case sec.Type == document.SectionSkills:
		renderSkills(sb, sec)
	case document.ShapeOf(sec.Type) == document.ShapeList:
		renderItems(sb, sec)
	default:
		sb.WriteString(FormatTextBlocks(sec.Content))
	}

	sb.WriteString("</section>")
}

func renderItems(sb *strings.Builder, sec document.Section) {
	for _, item := range sec.Items {
		if !document.ItemHasContent(item) {
			continue
		}
		sb.WriteString(`<div class="cv-entry">`)

		heading, subheading := entryHeadings(sec.Type, item)
		if heading != "" {
			fmt.Fprintf(sb, `<h3 class="cv-entry-heading">%s</h3>`, heading)
		}
		if subheading != "" {
			fmt.Fprintf(sb, `<p class="cv-entry-meta">%s</p>`, subheading)
		}

		body := item.Description
		if sec.Type == document.SectionEducation {
			body = item.Details
		}
		if strings.TrimSpace(body) != "" {
			sb.WriteString(FormatTextBlocks(body))
		}

		sb.WriteString("</div>")
	}
}

// entryHeadings builds the escaped heading and meta line for one entry
func entryHeadings(t document.SectionType, item document.Item) (string, string) {
	var primary, secondary []string
	switch t {
	case document.SectionEducation:
		primary = []string{item.Degree, item.Institution}
		secondary = []string{item.Year, item.Location}
	default:
		primary = []string{item.Position, item.Company}
		secondary = []string{item.Duration, item.Location}
	}
	return joinEscaped(primary, " — "), joinEscaped(secondary, " · ")
}

func joinEscaped(parts []string, sep string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, EscapeHTML(p))
		}
	}
	return strings.Join(kept, sep)
}

func renderSkills(sb *strings.Builder, sec document.Section) {
	for _, item := range sec.Items {
		if !document.ItemHasContent(item) {
			continue
		}
		sb.WriteString(`<div class="cv-skill-group">`)
		if strings.TrimSpace(item.Category) != "" {
			fmt.Fprintf(sb, `<h3 class="cv-skill-category">%s</h3>`, EscapeHTML(item.Category))
		}
		sb.WriteString(`<div class="cv-skill-chips">`)
		for _, skill := range item.Skills {
			if strings.TrimSpace(skill) == "" {
				continue
			}
			fmt.Fprintf(sb, `<span class="cv-skill-chip">%s</span>`, EscapeHTML(skill))
		}
		sb.WriteString("</div></div>")
	}
}
