package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/auth"
	"backoffice/internal/errors"
	"backoffice/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, user *model.User) (*model.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) (int64, error) {
	args := m.Called(ctx, id, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, subject auth.TokenSubject, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, subject, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (auth.TokenSubject, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(auth.TokenSubject), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "admin123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.User{
					ID:           1,
					Username:     "admin",
					Role:         model.RoleAdmin,
					PasswordHash: hashed(t, "admin123"),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything,
					auth.TokenSubject{UserID: 1, Username: "admin", Role: model.RoleAdmin}, auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "whatever",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.User{
					ID:           1,
					Username:     "admin",
					PasswordHash: hashed(t, "admin123"),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			svc := NewAuthService(NewUserService(mockRepo, nil), auth.NewJWTService("test-secret"), mockTokenStore)
			tokens, user, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, tokens.AccessToken)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken(1, "admin", model.RoleAdmin)
	require.NoError(t, err)

	t.Run("stored token", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(auth.TokenSubject{UserID: 1, Username: "admin", Role: model.RoleAdmin}, nil)

		svc := NewAuthService(NewUserService(new(MockUserRepository), nil), jwtService, mockTokenStore)
		access, err := svc.RefreshToken(context.Background(), refresh)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(access)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("revoked token", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(auth.TokenSubject{}, auth.ErrTokenNotFound)

		svc := NewAuthService(NewUserService(new(MockUserRepository), nil), jwtService, mockTokenStore)
		_, err := svc.RefreshToken(context.Background(), refresh)
		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})

	t.Run("garbage", func(t *testing.T) {
		svc := NewAuthService(NewUserService(new(MockUserRepository), nil), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, errors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken(1, "admin", model.RoleAdmin)
	require.NoError(t, err)
	access, err := jwtService.GenerateAccessToken(1, "admin", model.RoleAdmin)
	require.NoError(t, err)
	accessClaims, err := jwtService.ValidateToken(access)
	require.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
	mockTokenStore.On("BlacklistAccessToken", mock.Anything, accessClaims.ID, mock.AnythingOfType("time.Duration")).Return(nil)

	svc := NewAuthService(NewUserService(new(MockUserRepository), nil), jwtService, mockTokenStore)
	require.NoError(t, svc.Logout(context.Background(), refresh, access))
	mockTokenStore.AssertExpectations(t)
}
