package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
)

// CredentialStore defines persistence operations for user credentials. Two
// implementations exist: a GORM-backed store (MySQL or SQLite) and a JSON-file
// fallback. The backing is chosen by configuration at startup, never by
// runtime probing.
type CredentialStore interface {
	// GetByEmail returns the user or apperrors.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Create inserts a new user, returning apperrors.ErrEmailExists when the
	// email is already registered.
	Create(ctx context.Context, user *model.User) error
}

type gormCredentialStore struct {
	db *gorm.DB
}

// NewCredentialStore builds a GORM-backed credential store.
func NewCredentialStore(db *gorm.DB) CredentialStore {
	return &gormCredentialStore{db: db}
}

func (r *gormCredentialStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormCredentialStore) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique key on email is the real guard against concurrent
		// signups; the service-level existence check is only a fast path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailExists
		}
		return err
	}
	return nil
}
