package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	tests := []struct {
		text     string
		keywords []string
		want     bool
	}{
		{"linear algebra", []string{"algebra"}, true},
		{"went for a walk", []string{"algebra", "math"}, false},
		{"dsa: dp", []string{"dp "}, true},
		{"dp\nrevision", []string{"dp "}, true},
		{"dp. then graphs", []string{"dp "}, true},
		{"dpsp", []string{"dp "}, false},
		{"dpsp and dp", []string{"dp "}, true},
		{"anything", []string{""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, containsAny(tt.text, tt.keywords))
		})
	}
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("a"))
	assert.Equal(t, 3, countLines("a\n\nb"))
	assert.Equal(t, 3, countLines("a\nb\n"))
}
