// Command geocell renders the geohash cell that /api/search sends upstream
// for a coordinate pair.
//
//	geocell -lat 34.0522 -lng -118.2437 -out cell.html
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"events-server/geo"
	"events-server/util"
)

func main() {
	lat := flag.String("lat", "", "latitude")
	lng := flag.String("lng", "", "longitude")
	out := flag.String("out", "geohash_cell.html", "output HTML file")
	flag.Parse()

	hash, err := geo.EncodeRaw(*lat, *lng)
	if err != nil {
		slog.Error("[GeoCell] Invalid coordinates", "error", err)
		os.Exit(2)
	}

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("[GeoCell] Failed to create HTML file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := util.PlotGeohashCell(f, hash); err != nil {
		slog.Error("[GeoCell] Failed to render chart", "error", err)
		os.Exit(1)
	}

	fmt.Printf("geoPoint %s rendered to %s\n", hash, *out)
}
