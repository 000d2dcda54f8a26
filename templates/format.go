package templates

import (
	"html/template"
	"strings"
)

// FormatContent escapes message content and turns newlines into <br> so
// multi-line messages survive rendering. Everything else is plain text;
// anonymous input is never trusted as markup.
func FormatContent(content string) template.HTML {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}
