package normalizer

import (
	"events-server/models"
	"events-server/models/view"
)

const (
	THUMBNAIL_MIN_WIDTH = 100
	THUMBNAIL_MAX_WIDTH = 300
	LOGO_MAX_SIDE       = 200
)

// Thumbnail picks the first image whose width is within
// [THUMBNAIL_MIN_WIDTH, THUMBNAIL_MAX_WIDTH], then the first image, then "".
// A missing width counts as 0.
func Thumbnail(images []models.Image) string {
	chosen := ""
	for _, img := range images {
		w := floatOrZero(img.Width)
		if w >= THUMBNAIL_MIN_WIDTH && w <= THUMBNAIL_MAX_WIDTH {
			chosen = stringOr(img.URL, "")
			break
		}
	}
	if chosen == "" && len(images) > 0 {
		chosen = stringOr(images[0].URL, "")
	}
	return chosen
}

// Logo picks the first image no larger than LOGO_MAX_SIDE on both sides, then
// the first image, then "N/A".
func Logo(images []models.Image) string {
	chosen := view.NOT_AVAILABLE
	for _, img := range images {
		if floatOrZero(img.Width) <= LOGO_MAX_SIDE && floatOrZero(img.Height) <= LOGO_MAX_SIDE {
			chosen = stringOr(img.URL, view.NOT_AVAILABLE)
			break
		}
	}
	if chosen == view.NOT_AVAILABLE && len(images) > 0 {
		chosen = stringOr(images[0].URL, view.NOT_AVAILABLE)
	}
	return chosen
}
