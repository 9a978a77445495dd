package service

import (
	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// Vocabulary returns the user's training vocabulary: shared words plus
// personal ones, personal winning on the same English word
func (s *WordService) Vocabulary(user *domain.User) (domain.Vocabulary, error) {
	personal, err := s.wordRepo.PersonalWords(user.ID)
	if err != nil {
		return nil, storeError("personal words", err)
	}
	shared, err := s.wordRepo.SharedWords()
	if err != nil {
		return nil, storeError("shared words", err)
	}
	return domain.MergeVocabulary(shared, personal), nil
}

// PersonalWords lists the user's own dictionary
func (s *WordService) PersonalWords(user *domain.User) ([]domain.WordPair, error) {
	words, err := s.wordRepo.PersonalWords(user.ID)
	if err != nil {
		return nil, storeError("personal words", err)
	}
	return words, nil
}

// AddWord stores a normalized pair in the user's dictionary
func (s *WordService) AddWord(user *domain.User, pair domain.WordPair) error {
	if pair.En == "" || pair.Ru == "" {
		return domain.ErrFormat
	}
	return storeError("add word", s.wordRepo.AddPersonalWord(user.ID, pair.En, pair.Ru))
}

// DeleteWord removes an English word from the user's dictionary
func (s *WordService) DeleteWord(user *domain.User, en string) error {
	if en == "" {
		return domain.ErrFormat
	}
	return storeError("delete word", s.wordRepo.DeletePersonalWord(user.ID, en))
}
