package service

import (
	"math/rand"
	"sync"
	"time"

	"wordtrainer/internal/domain"
)

// RoundSize is the maximum number of words in one training round
const RoundSize = 4

// Sampler draws training rounds. It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler creates a sampler seeded from the clock
func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler creates a sampler with a fixed seed
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Sample returns up to RoundSize distinct pairs drawn uniformly from the
// vocabulary. The first pair is the round's prompt.
func (s *Sampler) Sample(v domain.Vocabulary) []domain.WordPair {
	pairs := v.Pairs()
	if len(pairs) == 0 {
		return []domain.WordPair{}
	}

	s.mu.Lock()
	s.rnd.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	s.mu.Unlock()

	if len(pairs) > RoundSize {
		pairs = pairs[:RoundSize]
	}
	return pairs
}

// Options returns the round's English words in a fresh random order
func (s *Sampler) Options(round []domain.WordPair) []string {
	words := make([]string, len(round))
	for i, w := range round {
		words[i] = w.En
	}

	s.mu.Lock()
	s.rnd.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	s.mu.Unlock()

	return words
}
