package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRefreshRouteRegistered(t *testing.T) {
	router := InitRouter()

	// An empty body reaches the handler's field validation, so anything but
	// 404/405 proves the route is wired.
	req := httptest.NewRequest(http.MethodPost, "http://example.local/api/auth/refresh", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code == http.StatusNotFound || rr.Code == http.StatusMethodNotAllowed {
		t.Fatalf("refresh route not registered, got %d", rr.Code)
	}
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing refresh_token, got %d body=%s", rr.Code, rr.Body.String())
	}
}
