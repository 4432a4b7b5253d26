package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Inception", "inception"},
		{"The Dark Knight", "the-dark-knight"},
		{"The Dark  Knight!", "the-dark-knight"},
		{"Se7en", "se7en"},
		{"Ocean's Eleven", "oceans-eleven"},
		{"  Heat  ", "heat"},
		{"WALL-E", "wall-e"},
		{"2001: A Space Odyssey", "2001-a-space-odyssey"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GenerateSlug(tt.input), "input %q", tt.input)
	}
}
