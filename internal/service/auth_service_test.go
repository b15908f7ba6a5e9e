package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"rxinsight/internal/auth"
	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
)

// MockCredentialStore is a mock implementation of repository.CredentialStore.
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCredentialStore) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, email, name string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, email, name, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockCredentialStore, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful signup",
			userName: "E2E Tester",
			email:    "e2e@example.test",
			password: "password123",
			setupMock: func(mStore *MockCredentialStore, mToken *MockTokenStore) {
				mStore.On("GetByEmail", mock.Anything, "e2e@example.test").Return(nil, apperrors.ErrUserNotFound)
				mStore.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "e2e@example.test", "E2E Tester", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "duplicate email",
			userName: "E2E Tester",
			email:    "e2e@example.test",
			password: "password123",
			setupMock: func(mStore *MockCredentialStore, mToken *MockTokenStore) {
				mStore.On("GetByEmail", mock.Anything, "e2e@example.test").Return(&model.User{Email: "e2e@example.test"}, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name:     "duplicate detected by the store on insert",
			userName: "Racer",
			email:    "race@example.test",
			password: "password123",
			setupMock: func(mStore *MockCredentialStore, mToken *MockTokenStore) {
				mStore.On("GetByEmail", mock.Anything, "race@example.test").Return(nil, apperrors.ErrUserNotFound)
				mStore.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apperrors.ErrEmailExists)
			},
			expectedError: apperrors.ErrEmailExists,
		},
		{
			name:          "missing name",
			userName:      "",
			email:         "someone@example.test",
			password:      "password123",
			setupMock:     func(*MockCredentialStore, *MockTokenStore) {},
			expectedError: apperrors.ErrMissingFields,
		},
		{
			name:          "missing password",
			userName:      "Someone",
			email:         "someone@example.test",
			password:      "",
			setupMock:     func(*MockCredentialStore, *MockTokenStore) {},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockCredentialStore)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockStore, mockTokenStore)

			svc := NewAuthService(mockStore, auth.NewJWTService("test-secret"), mockTokenStore)
			user, accessToken, refreshToken, err := svc.Signup(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &model.UserSummary{Name: tt.userName, Email: tt.email}, user)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
			}

			mockStore.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_SignupHashesPassword(t *testing.T) {
	mockStore := new(MockCredentialStore)
	mockTokenStore := new(MockTokenStore)

	var created *model.User
	mockStore.On("GetByEmail", mock.Anything, "hash@example.test").Return(nil, apperrors.ErrUserNotFound)
	mockStore.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
	}).Return(nil)
	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(mockStore, auth.NewJWTService("test-secret"), mockTokenStore)
	_, _, _, err := svc.Signup(context.Background(), "Hasher", "hash@example.test", "password123")

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestAuthService_Signup_TokenIssuanceFailureStillSucceeds(t *testing.T) {
	mockStore := new(MockCredentialStore)
	mockTokenStore := new(MockTokenStore)

	mockStore.On("GetByEmail", mock.Anything, "asha@example.test").Return(nil, apperrors.ErrUserNotFound)
	mockStore.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	svc := NewAuthService(mockStore, auth.NewJWTService("test-secret"), mockTokenStore)
	user, accessToken, refreshToken, err := svc.Signup(context.Background(), "Asha", "asha@example.test", "password123")

	// The credential row was written, so the signup must not report failure;
	// a retry would hit the duplicate-email path.
	assert.NoError(t, err)
	assert.Equal(t, &model.UserSummary{Name: "Asha", Email: "asha@example.test"}, user)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	mockStore.AssertExpectations(t)
	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	stored := &model.User{
		Email:        "e2e@example.test",
		Name:         "E2E Tester",
		PasswordHash: string(hashed),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockCredentialStore, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "e2e@example.test",
			password: "password123",
			setupMock: func(mStore *MockCredentialStore, mToken *MockTokenStore) {
				mStore.On("GetByEmail", mock.Anything, "e2e@example.test").Return(stored, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "e2e@example.test", "E2E Tester", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.test",
			password: "password123",
			setupMock: func(mStore *MockCredentialStore, mToken *MockTokenStore) {
				mStore.On("GetByEmail", mock.Anything, "nobody@example.test").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "e2e@example.test",
			password: "wrong-password",
			setupMock: func(mStore *MockCredentialStore, mToken *MockTokenStore) {
				mStore.On("GetByEmail", mock.Anything, "e2e@example.test").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "missing password",
			email:         "e2e@example.test",
			password:      "",
			setupMock:     func(*MockCredentialStore, *MockTokenStore) {},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockCredentialStore)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockStore, mockTokenStore)

			svc := NewAuthService(mockStore, auth.NewJWTService("test-secret"), mockTokenStore)
			user, accessToken, refreshToken, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &model.UserSummary{Name: "E2E Tester", Email: "e2e@example.test"}, user)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
			}

			mockStore.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("e2e@example.test", "E2E Tester")
	assert.NoError(t, err)

	mockStore := new(MockCredentialStore)
	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return("e2e@example.test", "E2E Tester", nil)

	svc := NewAuthService(mockStore, jwtService, mockTokenStore)

	accessToken, err := svc.Refresh(context.Background(), refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	_, err = svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	mockTokenStore.AssertExpectations(t)
}
