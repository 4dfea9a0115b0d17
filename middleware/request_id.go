package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"digistore/utils"
)

// RequestID tags each request with an id for log correlation, honoring a
// caller-supplied X-Request-ID when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), utils.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
