package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/famfin/telemetry"
)

//go:embed *.md
var templates embed.FS

// RenderDashboard renders the full dashboard to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title":   "dashboard_title.md",
		"dashboard_summary": "dashboard_summary.md",
		"dashboard_bills":   "dashboard_bills.md",
		"cashflow_table":    "cashflow_table.md",
		"spending_table":    "spending_table.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderCashFlow renders the cash-flow section of the dashboard alone.
func RenderCashFlow(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title": "dashboard_title.md",
		"cashflow_table":  "cashflow_table.md",
	}
	return renderTemplate("cashflow", "cashflow.md", partials, d)
}

// RenderSpending renders the spending section of the dashboard alone.
func RenderSpending(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title": "dashboard_title.md",
		"spending_table":  "spending_table.md",
	}
	return renderTemplate("spending", "spending.md", partials, d)
}

// RenderHealth renders a telemetry health report.
func RenderHealth(r telemetry.HealthReport) string {
	return renderTemplate("health", "health.md", nil, r)
}

// RenderValidation renders a validation report.
func RenderValidation(v *Validation) string {
	return renderTemplate("validation", "validation.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
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
