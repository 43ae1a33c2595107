package utils

import "github.com/google/uuid"

// GenerateUserID returns a new random user identifier.
func GenerateUserID() string {
	return uuid.NewString()
}
