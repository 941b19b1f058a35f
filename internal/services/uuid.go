package services

import "github.com/google/uuid"

// UUIDGenerator produces random (v4) identifiers.
type UUIDGenerator func() string

func NewUUIDGenerator() UUIDGenerator {
	return uuid.NewString
}
