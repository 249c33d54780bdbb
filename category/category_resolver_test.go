package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label  string
		wantID string
		wantOK bool
	}{
		{"Music", "KZFzniwnSyZfZ7v7nJ", true},
		{"Sports", "KZFzniwnSyZfZ7v7nE", true},
		{"Arts", "KZFzniwnSyZfZ7v7na", true},
		{"Theatre", "KZFzniwnSyZfZ7v7na", true},
		{"Film", "KZFzniwnSyZfZ7v7nn", true},
		{"Miscellaneous", "KZFzniwnSyZfZ7v7n1", true},
		{DEFAULT_CATEGORY, "", false},
		{"music", "", false},
		{"Arts & Theatre", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			id, ok := Resolve(test.label)
			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantID, id)
		})
	}
}

func TestResolve_ArtsAndTheatreShareSegment(t *testing.T) {
	arts, _ := Resolve("Arts")
	theatre, _ := Resolve("Theatre")
	assert.Equal(t, arts, theatre)
}
