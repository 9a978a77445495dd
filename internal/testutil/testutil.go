package testutil

import (
	"fmt"
	"time"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, telegramID int64) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: telegramID,
		CreatedAt:  time.Now(),
	}
}

// NewTestVocabulary creates a vocabulary of n distinct words
func NewTestVocabulary(n int) domain.Vocabulary {
	v := make(domain.Vocabulary, n)
	for i := 0; i < n; i++ {
		v[fmt.Sprintf("word%c", 'a'+rune(i))] = []string{fmt.Sprintf("слово%d", i)}
	}
	return v
}

// SharedWords is a small general dictionary for scenario tests
func SharedWords() []domain.WordPair {
	return []domain.WordPair{
		{En: "cat", Ru: "кошка"},
		{En: "dog", Ru: "собака"},
		{En: "house", Ru: "дом"},
		{En: "water", Ru: "вода"},
		{En: "sun", Ru: "солнце"},
	}
}
