package util

import (
	"fmt"
	"io"

	"events-server/geo"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotGeohashCell renders the cell a search geoPoint covers as an HTML map.
func PlotGeohashCell(w io.Writer, hash string) error {
	if hash == "" {
		return fmt.Errorf("empty geohash")
	}
	b := geo.CellBounds(hash)

	// Corners of the cell, closed back to SW.
	points := []opts.GeoData{
		{Name: "SW", Value: []float64{b.LngMin, b.LatMin}},
		{Name: "NW", Value: []float64{b.LngMin, b.LatMax}},
		{Name: "NE", Value: []float64{b.LngMax, b.LatMax}},
		{Name: "SE", Value: []float64{b.LngMax, b.LatMin}},
		{Name: "SW", Value: []float64{b.LngMin, b.LatMin}},
	}

	chart := charts.NewGeo()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Geohash " + hash,
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "geoPoint " + hash,
			Subtitle: fmt.Sprintf("lat %.5f..%.5f lng %.5f..%.5f", b.LatMin, b.LatMax, b.LngMin, b.LngMax),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	chart.AddSeries("Cell", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return chart.Render(w)
}
