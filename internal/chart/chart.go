// Package chart renders the harm report as horizontal bar chart pages.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/couchcryptid/storm-harm-report/internal/report"
)

// RenderHumanHarm writes the fatalities and injuries charts as one HTML page.
func RenderHumanHarm(w io.Writer, rep *report.Report) error {
	page := components.NewPage()
	page.PageTitle = "Storm events: human harm"
	page.AddCharts(
		newBar("Fatalities by event type", rep.Fatalities),
		newBar("Injuries by event type", rep.Injuries),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render human harm page: %w", err)
	}
	return nil
}

// RenderEconomicHarm writes the property and crop damage charts as one HTML page.
func RenderEconomicHarm(w io.Writer, rep *report.Report) error {
	page := components.NewPage()
	page.PageTitle = "Storm events: economic harm"
	page.AddCharts(
		newBar("Property damage by event type", rep.PropertyDamage),
		newBar("Crop damage by event type", rep.CropDamage),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render economic harm page: %w", err)
	}
	return nil
}

// newBar builds one horizontal bar chart from a ranked list. Horizontal
// bars draw the category axis bottom-up, so entries are reversed to
// ascending order to put the largest value on top.
func newBar(title string, list report.RankedList) *charts.Bar {
	categories := make([]string, len(list.Entries))
	values := make([]opts.BarData, len(list.Entries))
	for i, e := range list.Entries {
		j := len(list.Entries) - 1 - i
		categories[j] = e.Category
		values[j] = opts.BarData{Value: e.Value}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("top %d, %s", len(list.Entries), list.Unit),
		}),
	)
	bar.SetXAxis(categories).AddSeries(string(list.Field), values)
	bar.XYReversal()
	return bar
}
