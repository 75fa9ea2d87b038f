package main

import "testing"

func TestLogHighlighterUsesPrefixLength(t *testing.T) {
	highlight := logHighlighter(map[string]int{"abc12345": 3}, func(id string, prefixLen int) string {
		if prefixLen != 3 {
			t.Errorf("expected prefix length 3, got %d", prefixLen)
		}
		return "H:" + id
	})

	if got := highlight("abc12345"); got != "H:abc12345" {
		t.Fatalf("unexpected highlight output: %q", got)
	}
}

func TestLogHighlighterUnknownID(t *testing.T) {
	highlight := logHighlighter(map[string]int{"abc12345": 3}, func(id string, prefixLen int) string {
		if prefixLen != 0 {
			t.Errorf("expected prefix length 0 for unknown ID, got %d", prefixLen)
		}
		return id
	})

	if got := highlight("zzz99999"); got != "zzz99999" {
		t.Fatalf("unexpected highlight output: %q", got)
	}
}

func TestLogHighlighterEmptyID(t *testing.T) {
	called := false
	highlight := logHighlighter(nil, func(id string, prefixLen int) string {
		called = true
		return id
	})

	if got := highlight(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if called {
		t.Fatal("highlight func should not run for empty IDs")
	}
}
