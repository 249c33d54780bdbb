package models

type Image struct {
	Ratio  *string  `json:"ratio"`
	URL    *string  `json:"url"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}
