package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchEventsParams_ToValues(t *testing.T) {
	q := SearchEventsParams{
		Keyword:   "jazz",
		GeoPoint:  "9q5ct",
		Radius:    "25",
		Size:      5,
		SegmentID: "KZFzniwnSyZfZ7v7nJ",
	}.ToValues()

	assert.Equal(t, "jazz", q.Get("keyword"))
	assert.Equal(t, "9q5ct", q.Get("geoPoint"))
	assert.Equal(t, "25", q.Get("radius"))
	assert.Equal(t, "miles", q.Get("unit"))
	assert.Equal(t, "5", q.Get("size"))
	assert.Equal(t, "KZFzniwnSyZfZ7v7nJ", q.Get("segmentId"))
}

func TestSearchEventsParams_ToValues_OmitsAndDefaults(t *testing.T) {
	q := SearchEventsParams{GeoPoint: "9q5ct"}.ToValues()

	assert.False(t, q.Has("keyword"))
	assert.False(t, q.Has("segmentId"))
	assert.Equal(t, "10", q.Get("radius"))
	assert.Equal(t, "20", q.Get("size"))
}

func TestSearchEventsParams_CappedSize(t *testing.T) {
	assert.Equal(t, 20, SearchEventsParams{Size: 0}.CappedSize())
	assert.Equal(t, 20, SearchEventsParams{Size: -3}.CappedSize())
	assert.Equal(t, 20, SearchEventsParams{Size: 200}.CappedSize())
	assert.Equal(t, 7, SearchEventsParams{Size: 7}.CappedSize())
}
