package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTextBlocks_PlainParagraphs(t *testing.T) {
	out := FormatTextBlocks("Hello\n\nWorld")

	assert.Equal(t, "<p>Hello</p><p>World</p>", out)
	assert.NotContains(t, out, "<ul")
	assert.NotContains(t, out, "<li")
}

func TestFormatTextBlocks_GroupsConsecutiveBullets(t *testing.T) {
	input := "Led backend team\n- Shipped v2 API\n- Cut latency 40%\nAlso mentored juniors\n* one more"
	out := FormatTextBlocks(input)

	assert.Equal(t,
		`<p>Led backend team</p><ul class="text-list"><li>Shipped v2 API</li><li>Cut latency 40%</li></ul>`+
			`<p>Also mentored juniors</p><ul class="text-list"><li>one more</li></ul>`,
		out)
}

func TestFormatTextBlocks_BlankLinesSplitListRuns(t *testing.T) {
	out := FormatTextBlocks("- a\n\n- b")
	assert.Equal(t, 2, strings.Count(out, "<ul"), "blank line ends a list run")
}

func TestFormatTextBlocks_LeadingTrailingBlanksProduceNothing(t *testing.T) {
	assert.Empty(t, FormatTextBlocks("\n\n  \n"))
	assert.Equal(t, "<p>x</p>", FormatTextBlocks("\n\nx\n\n"))
}

func TestFormatTextBlocks_EscapesOnce(t *testing.T) {
	out := FormatTextBlocks(`R&D on "fast" <paths>`)

	assert.Equal(t, "<p>R&amp;D on &quot;fast&quot; &lt;paths&gt;</p>", out)

	// Rendering the same input again must not escape twice
	again := FormatTextBlocks(`R&D on "fast" <paths>`)
	assert.Equal(t, out, again)
	assert.NotContains(t, again, "&amp;amp;")
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<script>", "&lt;script&gt;"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#39;s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EscapeHTML(tt.input))
	}
}

func TestWebsiteDisplayAndHref(t *testing.T) {
	assert.Equal(t, "github.com/jane", WebsiteDisplay("https://github.com/jane"))
	assert.Equal(t, "github.com/jane", WebsiteDisplay("http://github.com/jane"))
	assert.Equal(t, "github.com/jane", WebsiteDisplay("github.com/jane"))

	assert.Equal(t, "https://github.com/jane", WebsiteHref("github.com/jane"))
	assert.Equal(t, "http://legacy.example", WebsiteHref("http://legacy.example"), "existing scheme kept")
	assert.Empty(t, WebsiteHref("  "))
}
