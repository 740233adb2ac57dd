package domain

import "time"

// User represents a registered passenger account.
type User struct {
	ID           string
	Name         string
	Phone        string
	PasswordHash string
	Email        string
	Address      string
	CreatedAt    time.Time
}
