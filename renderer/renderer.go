// Package renderer turns journal reports into Markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/journal"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// TrackerReport is everything shown in the recommendation tracker report.
type TrackerReport struct {
	AsOf    time.Time
	Summary journal.Summary
	Due     []journal.Recommendation
}

// Tracker renders the recommendation tracker report.
func Tracker(r *TrackerReport) string {
	partials := map[string]string{
		"tracker_stats":    "tracker_stats.md",
		"tracker_contexts": "tracker_contexts.md",
		"tracker_due":      "tracker_due.md",
	}
	return renderTemplate("tracker", "tracker.md", partials, r)
}

// Due renders only the recommendations due for follow-up.
func Due(r *TrackerReport) string {
	return renderTemplate("due", "due.md", map[string]string{"tracker_due": "tracker_due.md"}, r)
}

var funcs = template.FuncMap{
	"percent": func(d decimal.Decimal) string { return d.StringFixed(1) + "%" },
	"day":     func(t time.Time) string { return t.Format("2006-01-02") },
	"minute":  func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
