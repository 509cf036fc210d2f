// File path: internal/kb/terms_test.go
package kb

import (
	"reflect"
	"testing"
)

func TestExtractTermsDropsStopWords(t *testing.T) {
	got := ExtractTerms("Please help me with Python Programming")
	want := []string{"python", "programming"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTermsStopListNotLengthDrivesRemoval(t *testing.T) {
	// "with" survives the length filter; only the stop list removes it.
	got := ExtractTerms("with widgets")
	if len(got) != 1 || got[0] != "widgets" {
		t.Fatalf("expected [widgets], got %v", got)
	}
}

func TestExtractTermsStripsPunctuation(t *testing.T) {
	got := ExtractTerms("What is recursion?!")
	want := []string{"what", "recursion"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTermsCapsAtFive(t *testing.T) {
	got := ExtractTerms("alpha bravo charlie delta echo foxtrot golf")
	want := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected first five terms in order, got %v", got)
	}
}

func TestExtractTermsShortTokensDropped(t *testing.T) {
	got := ExtractTerms("go ml ai databases")
	if len(got) != 1 || got[0] != "databases" {
		t.Fatalf("expected short tokens dropped, got %v", got)
	}
}

func TestExtractTermsEmptyInput(t *testing.T) {
	if got := ExtractTerms(""); len(got) != 0 {
		t.Fatalf("expected no terms for empty query, got %v", got)
	}
	if got := ExtractTerms("the and of"); len(got) != 0 {
		t.Fatalf("expected no terms for stop-word query, got %v", got)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("  Faculty ")
	if err != nil {
		t.Fatalf("parse role: %v", err)
	}
	if role != RoleFaculty {
		t.Fatalf("expected faculty, got %q", role)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
