// Package renderer turns fincalc results into markdown documents,
// ready for terminal rendering or inclusion in a report.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// ScheduleMarkdown renders a complete amortization table to markdown.
func ScheduleMarkdown(s *Schedule) string {
	return renderTemplate("schedule", "schedule.md", s)
}

// ResultMarkdown renders a single computed value, with the inputs it
// was computed from, to markdown.
func ResultMarkdown(r *Result) string {
	return renderTemplate("result", "result.md", r)
}

// renderTemplate is a generic utility to render one embedded template.
func renderTemplate(templateName, mainFile string, data any) string {
	content, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", mainFile, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
