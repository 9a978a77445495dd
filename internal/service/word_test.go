package service

import (
	"fmt"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordService_Vocabulary(t *testing.T) {
	user := testutil.NewTestUser(1, 123)
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("PersonalWords", int64(1)).Return([]domain.WordPair{{En: "cat", Ru: "кот"}, {En: "apple", Ru: "яблоко"}}, nil)
	mockRepo.On("SharedWords").Return([]domain.WordPair{{En: "cat", Ru: "кошка"}, {En: "dog", Ru: "собака"}}, nil)

	service := NewWordService(mockRepo)

	v, err := service.Vocabulary(user)

	assert.NoError(t, err)
	assert.Equal(t, domain.Vocabulary{
		"cat":   {"кот"},
		"apple": {"яблоко"},
		"dog":   {"собака"},
	}, v)
	mockRepo.AssertExpectations(t)
}

func TestWordService_Vocabulary_StoreErrors(t *testing.T) {
	tests := []struct {
		name          string
		personalError error
		sharedError   error
	}{
		{
			name:          "personal words fail",
			personalError: fmt.Errorf("db error"),
		},
		{
			name:        "shared words fail",
			sharedError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testutil.NewTestUser(1, 123)
			mockRepo := new(testutil.MockWordRepository)
			if tt.personalError != nil {
				mockRepo.On("PersonalWords", int64(1)).Return(nil, tt.personalError)
			} else {
				mockRepo.On("PersonalWords", int64(1)).Return([]domain.WordPair{}, nil)
				mockRepo.On("SharedWords").Return(nil, tt.sharedError)
			}

			service := NewWordService(mockRepo)

			v, err := service.Vocabulary(user)

			assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			assert.Nil(t, v)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_AddWord(t *testing.T) {
	tests := []struct {
		name          string
		pair          domain.WordPair
		mockError     error
		callsRepo     bool
		expectedError error
	}{
		{
			name:      "valid pair",
			pair:      domain.WordPair{En: "apple", Ru: "яблоко"},
			callsRepo: true,
		},
		{
			name:          "duplicate",
			pair:          domain.WordPair{En: "apple", Ru: "яблоко"},
			mockError:     domain.ErrAlreadyExists,
			callsRepo:     true,
			expectedError: domain.ErrAlreadyExists,
		},
		{
			name:          "missing user",
			pair:          domain.WordPair{En: "apple", Ru: "яблоко"},
			mockError:     domain.ErrNoSuchUser,
			callsRepo:     true,
			expectedError: domain.ErrNoSuchUser,
		},
		{
			name:          "connectivity failure",
			pair:          domain.WordPair{En: "apple", Ru: "яблоко"},
			mockError:     fmt.Errorf("connection reset"),
			callsRepo:     true,
			expectedError: domain.ErrStoreUnavailable,
		},
		{
			name:          "empty english word",
			pair:          domain.WordPair{Ru: "яблоко"},
			expectedError: domain.ErrFormat,
		},
		{
			name:          "empty translation",
			pair:          domain.WordPair{En: "apple"},
			expectedError: domain.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testutil.NewTestUser(1, 123)
			mockRepo := new(testutil.MockWordRepository)
			if tt.callsRepo {
				mockRepo.On("AddPersonalWord", int64(1), tt.pair.En, tt.pair.Ru).Return(tt.mockError)
			}

			service := NewWordService(mockRepo)

			err := service.AddWord(user, tt.pair)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_DeleteWord(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError error
	}{
		{
			name: "deleted",
		},
		{
			name:          "not found",
			mockError:     domain.ErrNotFound,
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "connectivity failure",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testutil.NewTestUser(1, 123)
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("DeletePersonalWord", int64(1), "apple").Return(tt.mockError)

			service := NewWordService(mockRepo)

			err := service.DeleteWord(user, "apple")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_DeleteWord_Empty(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	service := NewWordService(mockRepo)

	err := service.DeleteWord(testutil.NewTestUser(1, 123), "")

	assert.ErrorIs(t, err, domain.ErrFormat)
	mockRepo.AssertNotCalled(t, "DeletePersonalWord", int64(1), "")
}

func TestWordService_PersonalWords(t *testing.T) {
	user := testutil.NewTestUser(1, 123)
	words := []domain.WordPair{{En: "apple", Ru: "яблоко"}}
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("PersonalWords", int64(1)).Return(words, nil)

	service := NewWordService(mockRepo)

	got, err := service.PersonalWords(user)

	assert.NoError(t, err)
	assert.Equal(t, words, got)
	mockRepo.AssertExpectations(t)
}
