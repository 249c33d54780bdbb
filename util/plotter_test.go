package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotGeohashCell(t *testing.T) {
	var buf bytes.Buffer

	err := PlotGeohashCell(&buf, "9q5ct")

	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "Geohash 9q5ct")
	assert.Contains(t, html, "echarts")
}

func TestPlotGeohashCell_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PlotGeohashCell(&buf, ""))
	assert.Zero(t, buf.Len())
}
