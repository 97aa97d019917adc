package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/errors"
	"backoffice/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name           string
		input          UserInput
		setupMock      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name:  "hashes password and defaults role",
			input: UserInput{Username: "  alice ", Password: "secret"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Username == "alice" &&
						u.Role == model.RoleUser &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
				})).Return(nil)
			},
		},
		{
			name:           "blank username",
			input:          UserInput{Username: "   ", Password: "secret"},
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			input:          UserInput{Username: "bob"},
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			user, err := NewUserService(mockRepo, nil).CreateUser(context.Background(), tt.input)
			if tt.expectedStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.expectedStatus, errors.StatusOf(err))
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUserLeavesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Update", mock.Anything, uint(3), &model.User{Username: "carol", Role: model.RoleViewer}).
		Return(&model.User{ID: 3, Username: "carol", Role: model.RoleViewer}, nil)

	user, err := NewUserService(mockRepo, nil).UpdateUser(context.Background(), 3, UserInput{Username: "carol", Role: model.RoleViewer, Password: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleViewer, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdatePassword", mock.Anything, uint(3), mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")) == nil
	})).Return(int64(1), nil)

	svc := NewUserService(mockRepo, nil)
	n, err := svc.ChangePassword(context.Background(), 3, "new-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.ChangePassword(context.Background(), 3, "")
	assert.Equal(t, http.StatusBadRequest, errors.StatusOf(err))
	mockRepo.AssertExpectations(t)
}
