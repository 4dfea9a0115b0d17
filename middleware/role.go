package middleware

import (
	"net/http"

	"digistore/utils"
)

// RequireRoles gates a handler behind one or more roles. It assumes
// AuthMiddleware already ran and stored the role in the request context.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := utils.GetUserRole(r)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
				Success: false,
				Message: "Forbidden: insufficient role",
			})
		})
	}
}

// AdminOnly is the common admin gate.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRoles("admin")(next)
}

// AdminOrReseller allows catalog management for both roles.
func AdminOrReseller(next http.Handler) http.Handler {
	return RequireRoles("admin", "reseller")(next)
}
