package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vitae/internal/model"
)

// AverageNamePlaceholder fills the Name cell of the Average row in the
// summary table; the average has no single associated office-holder.
const AverageNamePlaceholder = "—"

// Renderer writes the report as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the records table and the summary table
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Subject)
	fmt.Fprintf(&b, "Source: %s (fetched %s)\n\n", report.SourceURL, report.FetchedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Office-holders\n\n")
	b.WriteString("| Name | Birth | Death | Age at death |\n")
	b.WriteString("|------|-------|-------|--------------|\n")
	for _, rec := range report.Records {
		death, age := "", ""
		if rec.DeathYear != nil {
			death = strconv.Itoa(*rec.DeathYear)
		}
		if rec.AgeAtDeath != nil {
			age = strconv.Itoa(*rec.AgeAtDeath)
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", rec.Name, rec.BirthYear, death, age)
	}
	b.WriteString("\n")

	b.WriteString("## Summary\n\n")
	if report.Summary != nil {
		s := report.Summary
		b.WriteString("| Metric | Name | Age |\n")
		b.WriteString("|--------|------|-----|\n")
		fmt.Fprintf(&b, "| Minimum Age | %s | %d |\n", s.MinAgeName, s.MinAge)
		fmt.Fprintf(&b, "| Maximum Age | %s | %d |\n", s.MaxAgeName, s.MaxAge)
		fmt.Fprintf(&b, "| Average Age | %s | %d |\n", AverageNamePlaceholder, s.AverageAge)
	} else {
		b.WriteString("No deceased records to summarize.\n")
	}
	b.WriteString("\n")

	if len(report.Skipped) > 0 {
		b.WriteString("## Skipped records\n\n")
		for _, sk := range report.Skipped {
			fmt.Fprintf(&b, "- record %d: %s: `%s`\n", sk.Index, sk.Reason, sk.Cell)
		}
		b.WriteString("\n")
	}

	if report.Narrative != nil {
		b.WriteString("## Narrative\n\n")
		b.WriteString(report.Narrative.Text)
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "*Generated by %s/%s; descriptive prose only.*\n\n", report.Narrative.Provider, report.Narrative.Model)
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by vitae.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a compact human summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("%s — %d records", report.Subject, len(report.Records))
	if len(report.Skipped) > 0 {
		fmt.Printf(" (%d skipped)", len(report.Skipped))
	}
	fmt.Println()

	if report.Summary != nil {
		s := report.Summary
		fmt.Printf("Ages at death: min %d (%s), avg %d, max %d (%s)\n",
			s.MinAge, s.MinAgeName, s.AverageAge, s.MaxAge, s.MaxAgeName)
		fmt.Printf("Deceased: %d, living: %d\n", s.Deceased, s.Living)
	} else {
		fmt.Println("No deceased records to summarize.")
	}
}
