package models

import (
	"net/url"
	"strconv"

	"events-server/config"
)

// SearchEventsParams mirrors the /events.json query args. Use zero-values to omit.
type SearchEventsParams struct {
	Keyword   string // optional
	GeoPoint  string // geohash
	Radius    string // defaults to config.DEFAULT_SEARCH_DISTANCE
	Unit      string // "miles" (default) | "km"
	Size      int    // capped at config.MAX_EVENTS_PER_SEARCH
	SegmentID string // optional category filter
}

// CappedSize is the page size actually sent upstream.
func (p SearchEventsParams) CappedSize() int {
	if p.Size <= 0 || p.Size > config.MAX_EVENTS_PER_SEARCH {
		return config.MAX_EVENTS_PER_SEARCH
	}
	return p.Size
}

func (p SearchEventsParams) ToValues() url.Values {
	q := url.Values{}

	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.GeoPoint != "" {
		q.Set("geoPoint", p.GeoPoint)
	}

	radius := p.Radius
	if radius == "" {
		radius = config.DEFAULT_SEARCH_DISTANCE
	}
	q.Set("radius", radius)

	unit := p.Unit
	if unit == "" {
		unit = config.DEFAULT_SEARCH_UNIT
	}
	q.Set("unit", unit)

	q.Set("size", strconv.Itoa(p.CappedSize()))

	if p.SegmentID != "" {
		q.Set("segmentId", p.SegmentID)
	}
	return q
}
