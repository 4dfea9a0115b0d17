package auth

import (
	"net/http"
	"strings"

	"digistore/database"
	"digistore/utils"
)

// LogoutHandler revokes the presented token's jti in Redis and every live
// refresh token of the user. Without Redis the access token is simply
// discarded client-side.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

	if _, claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
		_ = utils.RevokeToken(claims)
	}
	if userID, ok := utils.GetUserID(r); ok {
		_ = utils.RevokeRefreshTokens(database.DB, userID)
	}

	utils.WriteSuccess(w, nil, "Logged out")
}
