package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	apperrors "rxinsight/internal/errors"
	"rxinsight/internal/model"
)

// jsonUserRecord is the on-disk shape: a flat array of these records.
type jsonUserRecord struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

// JSONFileCredentialStore persists users in a flat JSON file. It exists for
// deployments without a relational store. The mutex serializes the
// check-then-write of Create, since the file itself has no uniqueness
// constraint to lean on.
type JSONFileCredentialStore struct {
	path string
	mu   sync.Mutex
}

var _ CredentialStore = (*JSONFileCredentialStore)(nil)

// NewJSONFileCredentialStore builds a store backed by the file at path. The
// file is created on first write.
func NewJSONFileCredentialStore(path string) *JSONFileCredentialStore {
	return &JSONFileCredentialStore{path: path}
}

// GetByEmail returns the user or apperrors.ErrUserNotFound.
func (s *JSONFileCredentialStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Email == email {
			return &model.User{
				Email:        rec.Email,
				Name:         rec.Name,
				PasswordHash: rec.PasswordHash,
			}, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Create appends a new user record, failing with apperrors.ErrEmailExists on a
// duplicate email.
func (s *JSONFileCredentialStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Email == user.Email {
			return apperrors.ErrEmailExists
		}
	}
	records = append(records, jsonUserRecord{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	})
	return s.writeAll(records)
}

func (s *JSONFileCredentialStore) readAll() ([]jsonUserRecord, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var records []jsonUserRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return records, nil
}

func (s *JSONFileCredentialStore) writeAll(records []jsonUserRecord) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
