package service

import (
	"regexp"
	"strings"

	"wordtrainer/internal/domain"
)

var entryPattern = regexp.MustCompile(`^([a-zA-Z\s]+)\s*-\s*([а-яА-ЯёЁ\s]+)$`)

// ParseEntry parses "english - русский" into a lower-cased, trimmed pair.
// Anything else yields domain.ErrFormat.
func ParseEntry(text string) (domain.WordPair, error) {
	m := entryPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.WordPair{}, domain.ErrFormat
	}

	pair := domain.WordPair{
		En: strings.ToLower(strings.TrimSpace(m[1])),
		Ru: strings.ToLower(strings.TrimSpace(m[2])),
	}
	if pair.En == "" || pair.Ru == "" {
		return domain.WordPair{}, domain.ErrFormat
	}
	return pair, nil
}
