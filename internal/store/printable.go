package store

import (
	"strings"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/render"
)

// printShell wraps preview markup in a standalone HTML document suitable
// for print media and offline viewing
const printShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{TITLE}}</title>
<style>
@page {
  size: A4;
  margin: 18mm 16mm;
}
* { box-sizing: border-box; }
body {
  font-family: "Helvetica Neue", Arial, sans-serif;
  font-size: 10.5pt;
  line-height: 1.45;
  color: #1a1a2e;
  margin: 0;
}
.cv-preview { max-width: 180mm; margin: 0 auto; }
.cv-header { border-bottom: 2px solid #1a1a2e; padding-bottom: 8px; margin-bottom: 14px; }
.cv-name { font-size: 22pt; margin: 0; }
.cv-title { font-size: 12pt; color: #444; margin: 2px 0 6px; }
.cv-contact, .cv-links { margin: 2px 0; color: #555; }
.cv-link { color: #1a56a0; text-decoration: none; margin-right: 8px; }
.cv-section { margin-bottom: 14px; }
.cv-section-title {
  font-size: 13pt;
  text-transform: uppercase;
  letter-spacing: 0.06em;
  border-bottom: 1px solid #ccc;
  padding-bottom: 3px;
  margin: 0 0 8px;
  break-after: avoid;
}
.cv-entry { margin-bottom: 10px; break-inside: avoid; }
.cv-entry-heading { font-size: 11pt; margin: 0; break-after: avoid; }
.cv-entry-meta { color: #666; font-size: 9.5pt; margin: 1px 0 4px; }
.cv-skill-group { margin-bottom: 8px; break-inside: avoid; }
.cv-skill-category { font-size: 10.5pt; margin: 0 0 4px; }
.cv-skill-chip {
  display: inline-block;
  background: #eef1f6;
  border-radius: 3px;
  padding: 1px 8px;
  margin: 0 4px 4px 0;
}
.text-list { margin: 4px 0; padding-left: 18px; }
.cv-empty { color: #999; font-style: italic; }
@media print {
  body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .cv-link { color: #1a1a2e; }
}
</style>
</head>
<body>
{{BODY}}
</body>
</html>
`

// RenderPrintable wraps already-rendered preview markup in a standalone
// printable HTML document. Pure templating; no document logic lives here.
func RenderPrintable(doc *document.Document, previewHTML string) string {
	title := strings.TrimSpace(doc.PersonalInfo.FullName)
	if title == "" {
		title = "CV"
	} else {
		title += " - CV"
	}

	out := strings.ReplaceAll(printShell, "{{TITLE}}", render.EscapeHTML(title))
	return strings.ReplaceAll(out, "{{BODY}}", previewHTML)
}
