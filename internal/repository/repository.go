package repository

import (
	"wordtrainer/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// FindByTelegramID returns nil without error when the user is absent
	FindByTelegramID(telegramID int64) (*domain.User, error)
	Create(telegramID int64) (*domain.User, error)
}

// WordRepository defines word data operations.
// userID is the internal user id, not the Telegram one.
type WordRepository interface {
	SharedWords() ([]domain.WordPair, error)
	PersonalWords(userID int64) ([]domain.WordPair, error)
	// AddPersonalWord returns domain.ErrAlreadyExists or domain.ErrNoSuchUser
	AddPersonalWord(userID int64, en, ru string) error
	// DeletePersonalWord returns domain.ErrNotFound when the user has no such word
	DeletePersonalWord(userID int64, en string) error
}
