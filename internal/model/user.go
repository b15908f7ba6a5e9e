package model

import "time"

// User represents a dashboard account. Email is the natural key, matching the
// users table the import tooling provisions.
type User struct {
	Email        string    `json:"email" gorm:"primaryKey;size:255"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the only user shape that crosses the API boundary.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary strips everything but the public identity fields.
func (u *User) Summary() UserSummary {
	return UserSummary{Name: u.Name, Email: u.Email}
}
