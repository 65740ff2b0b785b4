package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "trims every element",
			input:    " Ableton Live ,Serum",
			expected: []string{"Ableton Live", "Serum"},
		},
		{
			name:     "drops empty elements",
			input:    "Serum,, ,Pro-Q 3,",
			expected: []string{"Serum", "Pro-Q 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitCommaList(tt.input))
		})
	}
}

func TestDeduplicateSlice(t *testing.T) {
	t.Run("should keep the first occurrence", func(t *testing.T) {
		result := DeduplicateSlice([]string{"Serum", "serum", "Ableton", "SERUM"}, strings.ToLower)
		assert.Equal(t, []string{"Serum", "Ableton"}, result)
	})
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 33.33, RoundTo(100.0/3, 2))
	assert.Equal(t, 40.0, RoundTo(40, 1))
}

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil("  "))
	assert.Equal(t, "0xabc", *EmptyThenNil("0xabc"))
}
