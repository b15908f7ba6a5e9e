package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"rxinsight/internal/auth"
	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
	"rxinsight/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login against the credential store. Tokens
// are issued here so the handler layer only shapes responses.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.UserSummary, string, string, error)
	Login(ctx context.Context, email, password string) (*model.UserSummary, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	store      repository.CredentialStore
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(store repository.CredentialStore, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		store:      store,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Signup creates a new user with a freshly salted password hash. Exactly one
// credential record is written on success.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.UserSummary, string, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", "", apperrors.ErrMissingFields
	}

	existing, err := s.store.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", "", apperrors.ErrEmailExists
	}
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, "", "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	// The store's own uniqueness guarantee decides races between concurrent
	// signups; the lookup above only short-circuits the common case.
	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			return nil, "", "", apperrors.ErrEmailExists
		}
		return nil, "", "", fmt.Errorf("create user: %w", err)
	}

	summary := user.Summary()
	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		// The account exists at this point, so the signup still succeeds;
		// tokens can be obtained by logging in.
		log.Printf("signup %s: token issuance failed: %v", email, err)
		return &summary, "", "", nil
	}
	return &summary, accessToken, refreshToken, nil
}

// Login verifies the password against the stored hash and issues tokens. It
// has no side effect on the credential store.
func (s *authService) Login(ctx context.Context, email, password string) (*model.UserSummary, string, string, error) {
	if email == "" || password == "" {
		return nil, "", "", apperrors.ErrMissingFields
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", "", apperrors.ErrUserNotFound
		}
		return nil, "", "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", apperrors.ErrInvalidCredentials
	}

	summary := user.Summary()
	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return &summary, accessToken, refreshToken, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return "", apperrors.ErrInvalidToken
	}

	storedEmail, storedName, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}
	if storedEmail != claims.Email {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(storedEmail, storedName)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (string, string, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.Email, user.Name)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.Email, user.Name)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.Email, user.Name, auth.RefreshTokenExpiry); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}
