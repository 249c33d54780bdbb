package normalizer

import "events-server/models"

// Suggestions returns the names of suggested attractions, skipping unnamed ones.
func Suggestions(resp *models.SuggestResponse) []string {
	names := []string{}
	for _, a := range resp.Attractions() {
		if a.Name != nil && *a.Name != "" {
			names = append(names, *a.Name)
		}
	}
	return names
}
