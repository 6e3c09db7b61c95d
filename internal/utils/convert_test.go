package utils

import (
	"testing"
	"time"
)

func TestAtoiDefault(t *testing.T) {
	if got := AtoiDefault("42", 0); got != 42 {
		t.Errorf("AtoiDefault(42) = %d", got)
	}
	if got := AtoiDefault("", 10); got != 10 {
		t.Errorf("AtoiDefault(empty) = %d", got)
	}
	if got := AtoiDefault("x", 5); got != 5 {
		t.Errorf("AtoiDefault(x) = %d", got)
	}
}

func TestUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2024, 6, 1, 13, 0, 0, 0, loc)
	got := UTC(in)
	if got.Location() != time.UTC || got.Hour() != 12 {
		t.Errorf("UTC(%v) = %v", in, got)
	}
}

func TestUTCPtr(t *testing.T) {
	if UTCPtr(nil) != nil {
		t.Fatalf("UTCPtr(nil) must be nil")
	}
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2024, 6, 1, 13, 0, 0, 0, loc)
	got := UTCPtr(&in)
	if got == nil || got.Location() != time.UTC {
		t.Errorf("UTCPtr = %v", got)
	}
}
