package utils

import (
	"github.com/google/uuid"
)

// ParseStringToUUID parses s, returning uuid.Nil on any error.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}
