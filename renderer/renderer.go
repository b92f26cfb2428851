// Package renderer turns reports and charts into documents: markdown from
// embedded templates, HTML from that markdown and styled terminal views.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	ttemplate "text/template"

	"github.com/etnz/stockavg"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.md templates/*.html
var templates embed.FS

// RenderOptions holds configuration for rendering a report.
type RenderOptions struct {
	SkipFooter bool // Do not render the disclaimer.
}

// Markdown renders the report to a markdown string.
func Markdown(r *stockavg.Report) string {
	return RenderReport(r, RenderOptions{})
}

// RenderReport renders the report to a markdown string with options.
func RenderReport(r *stockavg.Report, opts RenderOptions) string {
	partials := map[string]string{
		"report_title":     "templates/report_title.md",
		"report_summary":   "templates/report_summary.md",
		"report_purchases": "templates/report_purchases.md",
		"report_footer":    "templates/report_footer.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipFooter {
		partials["report_footer"] = ""
	}
	return renderTemplate("report", "templates/report.md", partials, r)
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts markdown into a standalone HTML page titled title.
func HTML(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("could not convert markdown: %w", err)
	}
	page, err := template.ParseFS(templates, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse page template: %w", err)
	}
	var b bytes.Buffer
	err = page.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("could not render page: %w", err)
	}
	return b.Bytes(), nil
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := ttemplate.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
