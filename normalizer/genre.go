package normalizer

import (
	"strings"

	"events-server/models"
)

const GENRE_CHAIN_SEPARATOR = " | "

// GenreChain joins the classification labels of the first classification,
// most specific first, skipping "Undefined" in any case. It returns nil when
// nothing survives.
func GenreChain(classifications []models.Classification) *string {
	if len(classifications) == 0 {
		return nil
	}
	c := classifications[0]
	ordered := []*models.ClassificationItem{c.SubGenre, c.Genre, c.Segment, c.SubType, c.Type}

	var parts []string
	for _, item := range ordered {
		if item == nil || item.Name == nil || *item.Name == "" {
			continue
		}
		if strings.EqualFold(*item.Name, "undefined") {
			continue
		}
		parts = append(parts, *item.Name)
	}
	if len(parts) == 0 {
		return nil
	}
	return strPtr(strings.Join(parts, GENRE_CHAIN_SEPARATOR))
}

// Segment is the single genre label shown in the results table.
func Segment(classifications []models.Classification) *string {
	if len(classifications) == 0 || classifications[0].Segment == nil {
		return nil
	}
	return classifications[0].Segment.Name
}
