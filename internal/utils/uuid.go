package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered ids for sync cycles. The zero value is
// ready to use.
type UUIDGenerator struct{}

// Generate returns a UUIDv7, falling back to a random v4 when the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
