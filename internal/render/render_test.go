package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-studio/internal/document"
)

func parsePreview(t *testing.T, doc *document.Document) *goquery.Document {
	t.Helper()
	html := Preview(doc)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return parsed
}

func sampleDocument() *document.Document {
	exp := document.NewSection(document.SectionExperience)
	exp.Items[0].Company = "Acme Corp"
	exp.Items[0].Position = "Senior Engineer"
	exp.Items[0].Duration = "2020 - Present"
	exp.Items[0].Description = "Owned billing platform\n- Migrated to event sourcing\n- Cut costs 30%"

	skills := document.NewSection(document.SectionSkills)
	skills.Items[0].Category = "Backend"
	skills.Items[0].Skills = []string{"Go", "PostgreSQL", "Redis"}

	summary := document.NewSection(document.SectionSummary)
	summary.Content = "Backend engineer with 8 years of experience."

	return &document.Document{
		PersonalInfo: document.PersonalInfo{
			FullName: "Jane Doe",
			JobTitle: "Backend Engineer",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Language: document.DefaultLanguage,
			Websites: []document.Website{
				{URL: "github.com/jane", Type: document.WebsiteGitHub},
			},
		},
		Sections: []document.Section{summary, exp, skills},
	}
}

func TestPreview_Header(t *testing.T) {
	page := parsePreview(t, sampleDocument())

	assert.Equal(t, "Jane Doe", page.Find("h1.cv-name").Text())
	assert.Equal(t, "Backend Engineer", page.Find("p.cv-title").Text())
	assert.Contains(t, page.Find("p.cv-contact").Text(), "jane@example.com")

	link := page.Find("a.cv-link")
	require.Equal(t, 1, link.Length())
	href, _ := link.Attr("href")
	assert.Equal(t, "https://github.com/jane", href, "href is scheme-complete")
	assert.Equal(t, "github.com/jane", link.Text(), "display text has no scheme")
}

func TestPreview_SkipsInvisibleSections(t *testing.T) {
	doc := sampleDocument()
	doc.Sections[1].Visible = false

	page := parsePreview(t, doc)

	assert.Equal(t, 2, page.Find("section.cv-section").Length())
	assert.Equal(t, 0, page.Find("section.cv-section-experience").Length(),
		"invisible sections are absent, not hidden")
}

func TestPreview_ExperienceEntries(t *testing.T) {
	page := parsePreview(t, sampleDocument())

	entry := page.Find("section.cv-section-experience .cv-entry")
	require.Equal(t, 1, entry.Length())
	assert.Equal(t, "Senior Engineer — Acme Corp", entry.Find("h3.cv-entry-heading").Text())
	assert.Contains(t, entry.Find("p.cv-entry-meta").Text(), "2020 - Present")
	assert.Equal(t, 2, entry.Find("ul.text-list li").Length())
	assert.Equal(t, "Owned billing platform", entry.Find("p:not(.cv-entry-meta)").First().Text())
}

func TestPreview_EmptyItemsAreSkipped(t *testing.T) {
	doc := sampleDocument()
	sec := doc.Section(doc.Sections[1].ID)
	document.AddItem(sec) // empty item

	page := parsePreview(t, doc)

	assert.Equal(t, 1, page.Find(".cv-entry").Length(),
		"rendered entry count can be less than items length")
}

func TestPreview_SkillChips(t *testing.T) {
	page := parsePreview(t, sampleDocument())

	group := page.Find(".cv-skill-group")
	require.Equal(t, 1, group.Length())
	assert.Equal(t, "Backend", group.Find("h3.cv-skill-category").Text())

	chips := group.Find("span.cv-skill-chip")
	require.Equal(t, 3, chips.Length())
	assert.Equal(t, "Go", chips.First().Text())
}

func TestPreview_SkillCategoryOptional(t *testing.T) {
	doc := sampleDocument()
	skills := doc.Section(doc.Sections[2].ID)
	skills.Items[0].Category = ""

	page := parsePreview(t, doc)

	assert.Equal(t, 0, page.Find("h3.cv-skill-category").Length())
	assert.Equal(t, 3, page.Find("span.cv-skill-chip").Length())
}

func TestPreview_EmptySectionPlaceholder(t *testing.T) {
	doc := &document.Document{Sections: []document.Section{document.NewSection(document.SectionExperience)}}

	page := parsePreview(t, doc)

	assert.Equal(t, "No content added yet", page.Find("p.cv-empty").Text())
}

func TestPreview_EscapesUserText(t *testing.T) {
	doc := sampleDocument()
	doc.PersonalInfo.FullName = `Jane <b>"Doe"</b> & Co`

	html := Preview(doc)

	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "Jane &lt;b&gt;&quot;Doe&quot;&lt;/b&gt; &amp; Co")
}

func TestPreview_IsPure(t *testing.T) {
	doc := sampleDocument()

	first := Preview(doc)
	second := Preview(doc)

	assert.Equal(t, first, second, "rendering is a pure projection")
}
