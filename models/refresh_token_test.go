package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewRefreshToken(t *testing.T) {
	rt, err := NewRefreshToken(42, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if !strings.HasPrefix(rt.ID, "rt_") {
		t.Fatalf("expected rt_ prefix, got %q", rt.ID)
	}
	if len(rt.ID) != 3+64 {
		t.Fatalf("expected 32 random bytes hex-encoded, got id of length %d", len(rt.ID))
	}
	if rt.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", rt.UserID)
	}
	if rt.Revoked {
		t.Fatal("new token must not be revoked")
	}
	until := time.Until(rt.ExpiresAt)
	if until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Fatalf("expected expiry around 7 days out, got %s", until)
	}
}

func TestNewRefreshToken_Unique(t *testing.T) {
	a, err := NewRefreshToken(1, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	b, err := NewRefreshToken(1, time.Hour)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("two tokens must not share an id")
	}
}
