package category

// DEFAULT_CATEGORY is what the client sends when no category is picked.
const DEFAULT_CATEGORY = "Default"

// segmentIDs maps UI categories to Ticketmaster segment ids. Arts and Theatre
// share one upstream segment.
var segmentIDs = map[string]string{
	"Music":         "KZFzniwnSyZfZ7v7nJ",
	"Sports":        "KZFzniwnSyZfZ7v7nE",
	"Arts":          "KZFzniwnSyZfZ7v7na",
	"Theatre":       "KZFzniwnSyZfZ7v7na",
	"Film":          "KZFzniwnSyZfZ7v7nn",
	"Miscellaneous": "KZFzniwnSyZfZ7v7n1",
}

// Resolve returns the segment id for label. ok is false for the default
// category and for unknown labels, meaning the search is not filtered.
func Resolve(label string) (segmentID string, ok bool) {
	if label == DEFAULT_CATEGORY {
		return "", false
	}
	segmentID, ok = segmentIDs[label]
	return segmentID, ok
}
