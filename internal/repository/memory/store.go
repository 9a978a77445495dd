// Package memory keeps users and words in process memory. It follows the
// same uniqueness rules as the postgres schema and is meant for local runs
// and tests.
package memory

import (
	"sync"
	"time"

	"wordtrainer/internal/domain"
)

// Store implements repository.UserRepository and repository.WordRepository
type Store struct {
	mu       sync.RWMutex
	nextID   int64
	users    map[int64]*domain.User // by telegram id
	ids      map[int64]struct{}     // internal ids
	shared   []domain.WordPair
	personal map[int64][]domain.WordPair // by internal id
}

// NewStore creates a store seeded with the shared dictionary. Shared words
// repeating an English or Russian word already seeded are skipped.
func NewStore(shared []domain.WordPair) *Store {
	s := &Store{
		users:    make(map[int64]*domain.User),
		ids:      make(map[int64]struct{}),
		personal: make(map[int64][]domain.WordPair),
	}

	seenEn := make(map[string]struct{}, len(shared))
	seenRu := make(map[string]struct{}, len(shared))
	for _, w := range shared {
		if _, ok := seenEn[w.En]; ok {
			continue
		}
		if _, ok := seenRu[w.Ru]; ok {
			continue
		}
		seenEn[w.En] = struct{}{}
		seenRu[w.Ru] = struct{}{}
		s.shared = append(s.shared, w)
	}
	return s
}

// FindByTelegramID returns nil when the user has never been created
func (s *Store) FindByTelegramID(telegramID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[telegramID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// Create inserts the user, or returns the existing one
func (s *Store) Create(telegramID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[telegramID]
	if !ok {
		s.nextID++
		u = &domain.User{ID: s.nextID, TelegramID: telegramID, CreatedAt: time.Now()}
		s.users[telegramID] = u
		s.ids[u.ID] = struct{}{}
	}
	cp := *u
	return &cp, nil
}

// DeleteUser removes the user and, by cascade, all of their words
func (s *Store) DeleteUser(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[telegramID]
	if !ok {
		return
	}
	delete(s.users, telegramID)
	delete(s.ids, u.ID)
	delete(s.personal, u.ID)
}

func (s *Store) SharedWords() ([]domain.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.WordPair{}, s.shared...), nil
}

func (s *Store) PersonalWords(userID int64) ([]domain.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.WordPair{}, s.personal[userID]...), nil
}

func (s *Store) AddPersonalWord(userID int64, en, ru string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[userID]; !ok {
		return domain.ErrNoSuchUser
	}
	for _, w := range s.personal[userID] {
		if w.En == en {
			return domain.ErrAlreadyExists
		}
	}
	s.personal[userID] = append(s.personal[userID], domain.WordPair{En: en, Ru: ru})
	return nil
}

func (s *Store) DeletePersonalWord(userID int64, en string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.personal[userID]
	for i, w := range words {
		if w.En == en {
			s.personal[userID] = append(words[:i:i], words[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
