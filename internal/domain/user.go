package domain

import "time"

// User represents a registered account. Email is unique across users.
type User struct {
	ID           string
	Name         string
	FirstName    string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
