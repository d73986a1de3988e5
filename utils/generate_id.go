package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique id for users, notes and tags.
func GenerateID() string {
	return uuid.New().String()
}
