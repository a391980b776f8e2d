// Package chart renders the lifespan chart: one horizontal bar per
// office-holder spanning birth year to death year, with living records
// drawn to the current year in a distinct color.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"vitae/internal/model"
)

const (
	deceasedColor = "#5470c6"
	livingColor   = "#91cc75"

	// The offset series only positions each bar at its birth year.
	offsetColor = "rgba(0,0,0,0)"
)

// Write renders the chart as a standalone HTML file
func Write(report *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	return Render(report, f)
}

// Render writes the chart HTML to w. A range bar is encoded as a stacked
// pair: an invisible offset bar of height birthYear under a visible span
// bar of height (end - birthYear).
func Render(report *model.Report, w io.Writer) error {
	names := make([]string, 0, len(report.Records))
	offsets := make([]opts.BarData, 0, len(report.Records))
	spans := make([]opts.BarData, 0, len(report.Records))

	for _, rec := range report.Records {
		end := rec.SpanEnd(report.CurrentYear)
		color := deceasedColor
		if rec.Living() {
			color = livingColor
		}

		names = append(names, rec.Name)
		offsets = append(offsets, opts.BarData{
			Value:     rec.BirthYear,
			ItemStyle: &opts.ItemStyle{Color: offsetColor},
		})
		spans = append(spans, opts.BarData{
			Value:     end - rec.BirthYear,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    report.Subject,
			Subtitle: fmt.Sprintf("Lifespans; green bars are living as of %d", report.CurrentYear),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: report.Subject,
			Width:     "1000px",
			Height:    "800px",
		}),
	)

	bar.SetXAxis(names).
		AddSeries("", offsets, charts.WithBarChartOpts(opts.BarChart{Stack: "lifespan"})).
		AddSeries("lifespan", spans, charts.WithBarChartOpts(opts.BarChart{Stack: "lifespan"}))
	bar.XYReversal()

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
