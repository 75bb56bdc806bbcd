// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// User is an account that can sign up and log in.
// Username and Email are each unique across the store; Email is always stored lowercased.
type User struct {
	ID           string    // Store-assigned identifier, opaque outside the persistence layer.
	Username     string    // Display handle chosen at signup. Never changes.
	Email        string    // Login identifier, normalized by NormalizeEmail.
	PasswordHash string    // Output of the password hasher, never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// NormalizeEmail returns the canonical form of an email address used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
