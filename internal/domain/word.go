package domain

import (
	"sort"
	"strings"
)

// WordPair is an English word with its Russian translation
type WordPair struct {
	En string `db:"en_word"`
	Ru string `db:"ru_word"`
}

// String renders the pair the way it is shown on keyboards: "en - ru"
func (p WordPair) String() string {
	return p.En + " - " + p.Ru
}

// Vocabulary maps an English word to its translations
type Vocabulary map[string][]string

// MergeVocabulary builds a user's training vocabulary. Personal words
// override shared words with the same English spelling.
func MergeVocabulary(shared, personal []WordPair) Vocabulary {
	v := make(Vocabulary, len(shared)+len(personal))
	for _, w := range shared {
		v[w.En] = []string{w.Ru}
	}
	for _, w := range personal {
		v[w.En] = []string{w.Ru}
	}
	return v
}

// Pairs returns the vocabulary as pairs sorted by English word.
// Multiple translations are joined with ", ".
func (v Vocabulary) Pairs() []WordPair {
	words := make([]string, 0, len(v))
	for en := range v {
		words = append(words, en)
	}
	sort.Strings(words)

	pairs := make([]WordPair, 0, len(words))
	for _, en := range words {
		pairs = append(pairs, WordPair{En: en, Ru: strings.Join(v[en], ", ")})
	}
	return pairs
}
