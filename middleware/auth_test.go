package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"digistore/utils"
)

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req := httptest.NewRequest("GET", "http://example.local/api/cart", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(42, "alice", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	var gotID uint
	var gotRole string
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserID(r)
		gotRole = utils.GetUserRole(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "http://example.local/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if gotID != 42 {
		t.Fatalf("expected user id 42, got %d", gotID)
	}
	if gotRole != "user" {
		t.Fatalf("expected role user, got %q", gotRole)
	}
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	}))

	req := httptest.NewRequest("GET", "http://example.local/api/cart", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
