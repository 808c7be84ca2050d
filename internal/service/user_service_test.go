package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
)

func TestUserService_Get(t *testing.T) {
	target := &model.User{ID: 5, Name: "Target", Email: "target@example.com", Role: model.RoleUser}

	tests := []struct {
		name          string
		caller        auth.Identity
		id            uint
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:   "self access",
			caller: auth.Identity{ID: 5, Role: model.RoleUser},
			id:     5,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(target, nil)
			},
		},
		{
			name:   "admin access",
			caller: auth.Identity{ID: 1, Role: model.RoleAdmin},
			id:     5,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(target, nil)
			},
		},
		{
			name:   "non-admin accessing another user",
			caller: auth.Identity{ID: 2, Role: model.RoleUser},
			id:     5,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(target, nil)
			},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:   "user not found",
			caller: auth.Identity{ID: 1, Role: model.RoleAdmin},
			id:     99,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, new(MockStorage))
			user, err := svc.Get(context.Background(), tt.caller, tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	oldHash, _ := bcrypt.GenerateFromPassword([]byte("original-pass"), 10)

	makeTarget := func() *model.User {
		return &model.User{
			ID:           5,
			Name:         "Before",
			Email:        "before@example.com",
			PasswordHash: string(oldHash),
			Role:         model.RoleUser,
		}
	}

	t.Run("forbidden for another non-admin", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(makeTarget(), nil)

		svc := NewUserService(mockRepo, new(MockStorage))
		user, err := svc.Update(context.Background(), auth.Identity{ID: 9, Role: model.RoleUser}, 5, UpdateUserInput{
			Name: stringPtr("Hacked"),
		})

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("applies only supplied fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(makeTarget(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, new(MockStorage))
		user, err := svc.Update(context.Background(), auth.Identity{ID: 5, Role: model.RoleUser}, 5, UpdateUserInput{
			Name: stringPtr("After"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "After", user.Name)
		assert.Equal(t, "before@example.com", user.Email)
		assert.Equal(t, string(oldHash), user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rehashes a supplied password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(makeTarget(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, new(MockStorage))
		user, err := svc.Update(context.Background(), auth.Identity{ID: 5, Role: model.RoleUser}, 5, UpdateUserInput{
			Password: stringPtr("fresh-password"),
		})

		assert.NoError(t, err)
		assert.NotEqual(t, string(oldHash), user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("fresh-password")))
	})

	t.Run("email change checks uniqueness excluding self", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(makeTarget(), nil)
		mockRepo.On("EmailTaken", mock.Anything, "taken@example.com", uint(5)).Return(true, nil)

		svc := NewUserService(mockRepo, new(MockStorage))
		_, err := svc.Update(context.Background(), auth.Identity{ID: 5, Role: model.RoleUser}, 5, UpdateUserInput{
			Email: stringPtr("taken@example.com"),
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("single coordinate leaves location untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(makeTarget(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, new(MockStorage))
		user, err := svc.Update(context.Background(), auth.Identity{ID: 5, Role: model.RoleUser}, 5, UpdateUserInput{
			Longitude: float64Ptr(13.405),
		})

		assert.NoError(t, err)
		assert.Nil(t, user.Latitude)
		assert.Nil(t, user.Longitude)
	})

	t.Run("both coordinates set the location", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(makeTarget(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, new(MockStorage))
		user, err := svc.Update(context.Background(), auth.Identity{ID: 5, Role: model.RoleUser}, 5, UpdateUserInput{
			Latitude:  float64Ptr(-33.86),
			Longitude: float64Ptr(151.2),
		})

		assert.NoError(t, err)
		assert.Equal(t, -33.86, *user.Latitude)
		assert.Equal(t, 151.2, *user.Longitude)
	})
}

func TestUserService_Search(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Search", mock.Anything, "ali", model.RoleAdmin).Return([]model.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: model.RoleAdmin},
	}, nil)

	svc := NewUserService(mockRepo, new(MockStorage))
	users, err := svc.Search(context.Background(), "ali", model.RoleAdmin)

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
	mockRepo.AssertExpectations(t)
}
