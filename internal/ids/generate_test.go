package ids

import (
	"testing"
	"time"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("Buy milk", DefaultLength)
	b := Generate("Buy milk", DefaultLength)
	if a != b {
		t.Errorf("expected identical IDs, got %q and %q", a, b)
	}
	if len(a) != DefaultLength {
		t.Errorf("expected %d-char ID, got %q", DefaultLength, a)
	}
}

func TestGenerate_Lowercase(t *testing.T) {
	id := Generate("SHOUTING TITLE", 16)
	for _, r := range id {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("expected lowercase ID, got %q", id)
		}
	}
}

func TestGenerate_ZeroLength(t *testing.T) {
	if id := Generate("anything", 0); id != "" {
		t.Errorf("expected empty ID for zero length, got %q", id)
	}
}

func TestGenerateWithTimestamp_DistinguishesTimes(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := GenerateWithTimestamp("Buy milk", base, DefaultLength)
	b := GenerateWithTimestamp("Buy milk", base.Add(time.Nanosecond), DefaultLength)
	if a == b {
		t.Errorf("expected distinct IDs for distinct timestamps, both %q", a)
	}
}
