package domain

import "time"

// Account is a registered customer. Username and Email are unique across the
// store; Email is stored lowercase.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
