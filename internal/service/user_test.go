package service

import (
	"fmt"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_Find(t *testing.T) {
	user := testutil.NewTestUser(1, 123)

	tests := []struct {
		name          string
		mockReturn    *domain.User
		mockError     error
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:         "registered user",
			mockReturn:   user,
			expectedUser: user,
		},
		{
			name: "unknown user",
		},
		{
			name:          "store failure",
			mockError:     fmt.Errorf("connection refused"),
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("FindByTelegramID", int64(123)).Return(tt.mockReturn, tt.mockError)

			service := NewUserService(mockRepo)

			found, err := service.Find(123)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedUser, found)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Resolve_Existing(t *testing.T) {
	user := testutil.NewTestUser(1, 123)
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("FindByTelegramID", int64(123)).Return(user, nil)

	service := NewUserService(mockRepo)

	resolved, err := service.Resolve(123)

	assert.NoError(t, err)
	assert.Equal(t, user, resolved)
	mockRepo.AssertNotCalled(t, "Create", int64(123))
}

func TestUserService_Resolve_Creates(t *testing.T) {
	user := testutil.NewTestUser(1, 123)
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("FindByTelegramID", int64(123)).Return(nil, nil)
	mockRepo.On("Create", int64(123)).Return(user, nil)

	service := NewUserService(mockRepo)

	resolved, err := service.Resolve(123)

	assert.NoError(t, err)
	assert.Equal(t, user, resolved)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Resolve_CreateFails(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("FindByTelegramID", int64(123)).Return(nil, nil)
	mockRepo.On("Create", int64(123)).Return(nil, fmt.Errorf("db error"))

	service := NewUserService(mockRepo)

	resolved, err := service.Resolve(123)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Nil(t, resolved)
	mockRepo.AssertExpectations(t)
}
