package service

import (
	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// UserService resolves Telegram users to store records
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Find returns nil when the user has not been registered yet
func (s *UserService) Find(telegramID int64) (*domain.User, error) {
	u, err := s.userRepo.FindByTelegramID(telegramID)
	if err != nil {
		return nil, storeError("find user", err)
	}
	return u, nil
}

// Resolve returns the user, creating the record on first use
func (s *UserService) Resolve(telegramID int64) (*domain.User, error) {
	u, err := s.Find(telegramID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u, err = s.userRepo.Create(telegramID)
	if err != nil {
		return nil, storeError("create user", err)
	}
	return u, nil
}
