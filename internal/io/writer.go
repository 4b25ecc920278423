package io

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/namongk/fast-linkedin-scraper/internal/scraper"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"github.com/olekukonko/tablewriter"
)

// Output formats accepted by the writers.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// PlanWriter renders navigation plans
type PlanWriter struct {
	Out    io.Writer
	Format string
}

// NewPlanWriter creates a new plan writer
func NewPlanWriter(out io.Writer, format string) *PlanWriter {
	return &PlanWriter{Out: out, Format: format}
}

// Write renders plan in the configured format.
func (w *PlanWriter) Write(plan scraper.Plan) error {
	switch w.Format {
	case FormatJSON:
		return writeJSON(w.Out, plan)
	case FormatTable, "":
		table := tablewriter.NewWriter(w.Out)
		table.Header("#", "Section", "Kind", "URL", "Wait", "Estimate")
		for i, s := range plan.Steps {
			if err := table.Append([]string{
				strconv.Itoa(i + 1), s.Section, string(s.Kind), s.URL, s.Wait.String(), s.Estimate.String(),
			}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w.Out, "%s %s: %d steps, ~%s\n", plan.Target.Kind, plan.Target.URL, len(plan.Steps), plan.Estimate())
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", w.Format)
	}
}

// ResultWriter renders run summaries. Page content is never written.
type ResultWriter struct {
	Out    io.Writer
	Format string
}

// NewResultWriter creates a new result writer
func NewResultWriter(out io.Writer, format string) *ResultWriter {
	return &ResultWriter{Out: out, Format: format}
}

// Write renders results in the configured format.
func (w *ResultWriter) Write(results []models.Result) error {
	switch w.Format {
	case FormatJSON:
		return writeJSON(w.Out, results)
	case FormatTable, "":
		table := tablewriter.NewWriter(w.Out)
		table.Header("URL", "Section", "Title", "Duration", "Error")
		for _, r := range results {
			if err := table.Append([]string{r.URL, r.Section, r.Title, r.Duration.String(), r.Err}); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported output format: %s", w.Format)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
