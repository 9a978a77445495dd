package service

import (
	"testing"

	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.WordPair
	}{
		{
			name:     "simple",
			input:    "apple - яблоко",
			expected: domain.WordPair{En: "apple", Ru: "яблоко"},
		},
		{
			name:     "surrounding whitespace and case",
			input:    "  Apple  -  Яблоко ",
			expected: domain.WordPair{En: "apple", Ru: "яблоко"},
		},
		{
			name:     "no spaces around separator",
			input:    "dog-собака",
			expected: domain.WordPair{En: "dog", Ru: "собака"},
		},
		{
			name:     "phrases",
			input:    "ice cream - мороженое с ягодами",
			expected: domain.WordPair{En: "ice cream", Ru: "мороженое с ягодами"},
		},
		{
			name:     "yo letter",
			input:    "Hedgehog - Ёжик",
			expected: domain.WordPair{En: "hedgehog", Ru: "ёжик"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParseEntry(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, pair)
		})
	}
}

func TestParseEntry_FormatError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing separator", input: "apple яблоко"},
		{name: "digits in english", input: "apple2 - яблоко"},
		{name: "digits in russian", input: "apple - яблоко2"},
		{name: "reversed languages", input: "яблоко - apple"},
		{name: "two separators", input: "apple - яблоко - груша"},
		{name: "punctuation", input: "apple! - яблоко"},
		{name: "blank english side", input: "   - яблоко"},
		{name: "blank russian side", input: "apple -   "},
		{name: "latin in russian side", input: "apple - yabloko"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry(tt.input)

			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}
