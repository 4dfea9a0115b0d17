package utils

import (
	"errors"
	"testing"

	"digistore/apperr"
)

func TestRequireFields_MissingKeyed(t *testing.T) {
	err := RequireFields(map[string]string{
		"buyer":   "",
		"contact": "0812",
	})
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apperr.Error, got %v", err)
	}
	if ae.Status != 400 {
		t.Fatalf("expected 400, got %d", ae.Status)
	}
	if _, ok := ae.Fields["buyer"]; !ok {
		t.Fatal("expected buyer in field errors")
	}
	if _, ok := ae.Fields["contact"]; ok {
		t.Fatal("contact should not be in field errors")
	}
}

func TestRequireFields_AllPresent(t *testing.T) {
	if err := RequireFields(map[string]string{"buyer": "x"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user @example.com", false},
	}
	for _, c := range cases {
		err := ValidateEmail(c.email)
		if c.ok && err != nil {
			t.Errorf("%q: expected valid, got %v", c.email, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%q: expected invalid", c.email)
		}
	}
}

func TestValidateEnum(t *testing.T) {
	if err := ValidateEnum("percent", []string{"percent", "amount"}, "type"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := ValidateEnum("half", []string{"percent", "amount"}, "type"); err == nil {
		t.Fatal("expected invalid enum value to fail")
	}
}

func TestSanitizePtr(t *testing.T) {
	s := "  note  "
	if got := SanitizePtr(&s); got == nil || *got != "note" {
		t.Fatalf("expected trimmed note, got %v", got)
	}
	empty := "   "
	if got := SanitizePtr(&empty); got != nil {
		t.Fatalf("expected nil for blank input, got %q", *got)
	}
	if got := SanitizePtr(nil); got != nil {
		t.Fatal("expected nil for nil input")
	}
}
