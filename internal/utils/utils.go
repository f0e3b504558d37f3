// Package utils provides the structured logger and small helpers shared by
// the devinfo agent
//
//nolint:revive // utils is a common pattern for internal utilities
package utils

import (
	"github.com/google/uuid"
)

// GenerateRandomID creates a random identifier string UUID-like
func GenerateRandomID() string {
	return uuid.New().String()
}
