package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       int64     `json:"id" db:"user_id"`          // Primary key
	Username     string    `json:"username" db:"username"`   // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`     // bcrypt digest, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
