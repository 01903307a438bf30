// Package utils provides general-purpose helper utilities
// used across different parts of the stellar kit.
// Includes tools for working with context, type-safe keys, exact ledger
// amounts, observable values, HTTP response writing, HTTP client
// initialization, JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the authenticated API caller (the
// "sub" claim of its bearer token) is stored.
var SubjectCtxKey = contextKey("subject")

// CycleIDCtxKey is the key under which the id of the running sync cycle is
// stored.
var CycleIDCtxKey = contextKey("cycleID")

// GetSubjectFromContext retrieves the authenticated caller from ctx.
// ok is false when the value is missing or not a string.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}

// GetCycleIDFromContext retrieves the sync cycle id from ctx.
func GetCycleIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CycleIDCtxKey).(string)
	return id, ok
}
