package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"caffind-server/models/cafe"
)

// RenderRatingsChart writes an HTML bar chart of catalog ratings and
// review counts to w.
func RenderRatingsChart(w io.Writer, cafes []cafe.Cafe) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Caffind Catalog Insights",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Moradabad cafes",
			Subtitle: "rating and review count per cafe",
		}),
	)

	names := make([]string, 0, len(cafes))
	ratings := make([]opts.BarData, 0, len(cafes))
	reviews := make([]opts.BarData, 0, len(cafes))
	for _, c := range cafes {
		names = append(names, c.Name)
		ratings = append(ratings, opts.BarData{Value: c.Rating})
		reviews = append(reviews, opts.BarData{Value: c.ReviewCount})
	}

	bar.SetXAxis(names).
		AddSeries("rating", ratings).
		AddSeries("reviews", reviews)

	return bar.Render(w)
}
