// Package models defines the persistent entities of the trading platform.
package models

import "time"

// User is a registered trading account. PasswordHash is a bcrypt hash and is
// never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
