// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"strconv"
	"time"
)

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// UTC normalizes an instant to UTC. Store adapters call this once on read so
// every timestamp in the system has a single canonical form (RFC3339 UTC on
// the wire).
func UTC(t time.Time) time.Time { return t.UTC() }

// UTCPtr normalizes an optional instant to UTC, preserving nil.
func UTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
